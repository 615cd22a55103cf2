// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Text is encoded as a single segment in numeric, alphanumeric or byte
mode, in the smallest version that holds it unless the version is
pinned.  The resulting Code renders as an image, PBM, PNG or text.
Packages coding and split expose the encoding stages.
*/
package qr // import "github.com/unixdj/qrenc"

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/unixdj/qrenc/coding"
	"github.com/unixdj/qrenc/split"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// A Mode pins the data mode of a code.  The zero Mode, Auto, selects
// it from the text.
type Mode int

const (
	Auto         Mode = iota // chosen by split.Classify
	Numeric                  // coding.Numeric
	Alphanumeric             // coding.Alphanumeric
	Byte                     // coding.Byte
)

// PinMode returns the Mode selecting m.
func PinMode(m coding.Mode) Mode { return Mode(m + 1) }

// coding returns the mode as passed to split.Split.
func (m Mode) coding() coding.Mode {
	if m == Auto {
		return split.Auto
	}
	return coding.Mode(m - 1)
}

func (m Mode) String() string {
	if m == Auto {
		return "auto"
	}
	return m.coding().String()
}

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// Options control encoding.  The zero Options, like a nil *Options,
// select the mode and version automatically with mask 0.
type Options struct {
	Version coding.Version   // 0 selects the smallest version
	Mode    Mode             // Auto selects the mode
	Mask    coding.Mask      // data mask pattern
	Ref     coding.Reference // tables, nil for coding.ISO
}

// Encode returns an encoding of text at the given error correction
// level.
func Encode(text string, level Level, opt *Options) (*Code, error) {
	var o Options
	if opt != nil {
		o = *opt
	}
	seg, v, err := split.Split(o.Ref, text, o.Mode.coding(), level)
	if err != nil {
		return nil, err
	}
	if o.Version != 0 {
		v = o.Version
	}
	opts := []coding.Option{coding.WithMask(o.Mask)}
	if o.Ref != nil {
		opts = append(opts, coding.WithReference(o.Ref))
	}
	s, err := coding.Encode(v, level, seg, opts...)
	if err != nil {
		return nil, err
	}
	return &Code{Symbol: s, Scale: 8, Border: 4}, nil
}

// EncodeText is Encode with default options.
func EncodeText(text string, level Level) (*Code, error) {
	return Encode(text, level, nil)
}

// EncodeAll encodes each of texts in parallel and returns the codes
// in the same order.  It returns the first error encountered.  Texts
// not yet started when ctx is done are not encoded.
func EncodeAll(ctx context.Context, texts []string, level Level, opt *Options) ([]*Code, error) {
	codes := make([]*Code, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := Encode(text, level, opt)
			if err != nil {
				return fmt.Errorf("text %d: %w", i+1, err)
			}
			codes[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return codes, nil
}

// A Code is an encoded QR code with rendering parameters.
type Code struct {
	*coding.Symbol

	Scale   int  // number of image pixels per module
	Border  int  // quiet zone width in modules
	Reverse bool // swap black and white
}

func (c *Code) isValid() bool {
	return c != nil && c.Symbol != nil && c.Grid != nil &&
		c.Scale > 0 && c.Border >= 0
}

// Ink reports whether the module at (x, y) is drawn black, taking
// Reverse into account.  Modules outside the symbol belong to the
// quiet zone.
func (c *Code) Ink(x, y int) bool {
	return c.Black(x, y) != c.Reverse
}

// Pixels returns the number of image pixels on a side.
func (c *Code) Pixels() int {
	return c.Scale * (c.Size() + 2*c.Border)
}
