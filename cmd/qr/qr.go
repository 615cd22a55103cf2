// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qr writes QR codes encoding its arguments or standard input.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	qr "github.com/unixdj/qrenc"
	"github.com/unixdj/qrenc/coding"
)

var g = struct {
	scale  int        // scale
	border int        // quiet zone
	rev    bool       // reverse colours
	fn     string     // filename
	fext   string     // filename suffix
	opt    qr.Options // encoding options
	lev    qr.Level   // QR correction level
	format int        // output file format
	upper  bool       // uppercase
	multi  bool       // one code per argument
	debug  bool       // log encoding details
}{}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Strings are joined with spaces unless -S is
given.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii", "dump", "dumpi",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	eps,
	func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.String())
		return err
	},
	func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.ASCII())
		return err
	},
	dump,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.multi, 'S', `encode each string as a separate `+
		`QR code; with -o, "-01", "-02" etc. is appended to the `+
		`filename before suffix`)
	getopt.Flag(&g.debug, 'd', "log encoding details to standard error")
	getopt.Flag(&g.border, 'm', `quiet zone width in modules [4]`,
		"margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version, 0 for the smallest that fits", "ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	mode := getopt.Enum('M', []string{"auto", "numeric",
		"alphanumeric", "byte", "n", "a", "b"}, "auto",
		"data mode; alphanumeric mode converts input to uppercase",
		"mode")
	mask := getopt.String('x', "0",
		"mask pattern, 0 to 7 or as 3 binary digits", "mask")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels (type eps[i]: points) per QR module; `+
			`ignored for types utf8[i], ascii[i] and dump[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.opt.Version = coding.Version(*ver)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if *mode != "auto" {
		m, err := coding.ParseMode(*mode)
		if err != nil {
			log.Fatalln(err)
		}
		g.opt.Mode = qr.PinMode(m)
	}
	m, err := coding.ParseMask(*mask)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}
	g.opt.Mask = m
	if !getopt.IsSet('m') {
		g.border = -1
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var texts []string
	if args := getopt.Args(); len(args) == 0 {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ := strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
		texts = []string{s}
	} else if g.multi {
		texts = args
	} else {
		texts = []string{strings.Join(args, " ")}
	}
	if g.upper {
		for i := range texts {
			texts[i] = strings.ToUpper(texts[i])
		}
	}

	if g.multi {
		g.fext = path.Ext(g.fn)
		g.fn = g.fn[:len(g.fn)-len(g.fext)]
		cc, err := qr.EncodeAll(context.Background(), texts, g.lev, &g.opt)
		if err != nil {
			log.Fatalln(err)
		}
		for i := range cc {
			write(i, cc[i])
		}
	} else {
		c, err := qr.Encode(texts[0], g.lev, &g.opt)
		if err != nil {
			log.Fatalln(err)
		}
		write(-1, c)
	}
}

func write(i int, c *qr.Code) {
	if g.debug {
		var b bytes.Buffer
		dump(c, &b)
		log.Print(b.String())
	}
	fn := g.fn
	open := fn != "" || g.fext != ""
	var w = os.Stdout
	if open {
		if i >= 0 {
			fn = fmt.Sprintf("%s-%02d%s", fn, i+1, g.fext)
		}
		var err error
		if w, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Reverse = g.rev
	if g.border >= 0 {
		c.Border = g.border
	}
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size()
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	fmt.Fprintf(w, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: QR https://github.com/unixdj/qrenc
%%%%Title: QR Code
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row %d def
/p { 0 rmoveto 0 rlineto } def
/r { %d row 1 add dup /row exch def moveto } def
newpath %d %d moveto
`,
		xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale, -bord, -bord, -bord, -bord)
	// one stroke per run of black modules, quiet zone included
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; {
			s := x
			for x < siz+bord && !c.Ink(x, y) {
				x++
			}
			if x == siz+bord {
				break
			}
			b := x
			for x < siz+bord && c.Ink(x, y) {
				x++
			}
			fmt.Fprintf(w, "%d %d p ", x-b, b-s)
		}
		fmt.Fprintln(w, "r")
	}
	_, err := fmt.Fprintf(w, "stroke grestore\nend\n%%%%Trailer\n")
	return err
}

// dump writes the encoding stages of c and its module grid.
func dump(c *qr.Code, w io.Writer) error {
	fmt.Fprintf(w, "version %d-%s, %s mode, mask %s\n",
		c.Version, c.Level, c.Segment.Mode, c.Mask)
	fmt.Fprintf(w, "stream    %s\n", c.Stream)
	fmt.Fprintf(w, "codewords % x\n", c.Codewords)
	for i := range c.DataBlocks {
		fmt.Fprintf(w, "block %-3d % x | % x\n",
			i+1, c.DataBlocks[i], c.ECBlocks[i])
	}
	fmt.Fprintf(w, "sequence  % x\n", c.Sequence)
	_, err := io.WriteString(w, c.Grid.String())
	return err
}
