// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// halfBlock is indexed by the top and bottom module, 2 for black top.
var halfBlock = [4]string{" ", "▄", "▀", "█"}

// String returns the code drawn with Unicode half blocks, two module
// rows per line, with black as the foreground colour.  Scale is
// ignored.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	var b strings.Builder
	end := c.Size() + c.Border
	for y := -c.Border; y < end; y += 2 {
		for x := -c.Border; x < end; x++ {
			i := 0
			if c.Ink(x, y) {
				i |= 2
			}
			if y+1 < end && c.Ink(x, y+1) {
				i |= 1
			}
			b.WriteString(halfBlock[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ASCII returns the code drawn with "##" for black modules and two
// spaces for white.  Scale is ignored.
func (c *Code) ASCII() string {
	if !c.isValid() {
		return ""
	}
	var b strings.Builder
	end := c.Size() + c.Border
	for y := -c.Border; y < end; y++ {
		for x := -c.Border; x < end; x++ {
			if c.Ink(x, y) {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
