// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	qr "github.com/unixdj/qrenc"
)

// epsRows replays the strokes written by eps into rows of '#' and '.'.
func epsRows(t *testing.T, s string, width int) []string {
	t.Helper()
	body := s[strings.Index(s, "moveto\n")+len("moveto\n"):]
	body = body[:strings.Index(body, "stroke grestore")]
	var rows []string
	for _, line := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
		f := strings.Fields(line)
		if len(f) == 0 || f[len(f)-1] != "r" || len(f)%3 != 1 {
			t.Fatalf("bad eps line %q", line)
		}
		row := []byte(strings.Repeat(".", width))
		x := 0
		for i := 0; i+2 < len(f); i += 3 {
			n, err1 := strconv.Atoi(f[i])
			skip, err2 := strconv.Atoi(f[i+1])
			if err1 != nil || err2 != nil || f[i+2] != "p" {
				t.Fatalf("bad stroke in %q", line)
			}
			x += skip
			for ; n > 0; n-- {
				row[x] = '#'
				x++
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}

func TestEPS(t *testing.T) {
	for _, rev := range []bool{false, true} {
		c, err := qr.EncodeText("HELLO WORLD", qr.Q)
		if err != nil {
			t.Fatal(err)
		}
		c.Scale, c.Border, c.Reverse = 3, 2, rev
		var b bytes.Buffer
		if err := eps(c, &b); err != nil {
			t.Fatal(err)
		}
		width := c.Size() + 2*c.Border
		rows := epsRows(t, b.String(), width)
		if len(rows) != width {
			t.Fatalf("reverse %v: %d rows, want %d", rev, len(rows), width)
		}
		for i, r := range rows {
			y := i - c.Border
			want := make([]byte, width)
			for j := range want {
				want[j] = '.'
				if c.Ink(j-c.Border, y) {
					want[j] = '#'
				}
			}
			if r != string(want) {
				t.Errorf("reverse %v: row %d = %s, want %s", rev, y, r, want)
			}
		}
		// the quiet zone is inked only when reversed
		zone := "."
		if rev {
			zone = "#"
		}
		if border := rows[0]; border != strings.Repeat(zone, width) {
			t.Errorf("reverse %v: quiet zone row = %s", rev, border)
		}
	}
}

func TestDump(t *testing.T) {
	c, err := qr.Encode("01234567", qr.M, &qr.Options{Version: 1})
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := dump(c, &b); err != nil {
		t.Fatal(err)
	}
	if line, _, _ := strings.Cut(b.String(), "\n"); line != "version 1-M, numeric mode, mask 000" {
		t.Errorf("first line = %q", line)
	}
}
