// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	length := c.Pixels()
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -c.Border; y < c.Size()+c.Border; y++ {
		c.pbmRow(row, y)
		for i := 0; i < c.Scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow fills row with the pixels of module row y, most significant
// bit first, 1 for black.
func (c *Code) pbmRow(row []byte, y int) {
	clear(row)
	scale, bord := c.Scale, c.Border
	for x, j := -bord, 0; x < c.Size()+bord; x++ {
		if !c.Ink(x, y) {
			j += scale
			continue
		}
		for end := j + scale; j < end; j++ {
			row[j>>3] |= 0x80 >> (j & 7)
		}
	}
}
