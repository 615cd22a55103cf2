// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

// maxPixels limits the side of rendered images.
const maxPixels = 32767 * 8

var palette = color.Palette{color.Gray{0xff}, color.Gray{0x00}}

// Image returns a paletted image displaying the code, with index 1
// for black pixels.  Image returns nil if the code is invalid or the
// image too large.
func (c *Code) Image() *image.Paletted {
	if !c.isValid() || c.Pixels() > maxPixels {
		return nil
	}
	d := c.Pixels()
	img := image.NewPaletted(image.Rect(0, 0, d, d), palette)
	row := make([]byte, d)
	for y := -c.Border; y < c.Size()+c.Border; y++ {
		for x, j := -c.Border, 0; x < c.Size()+c.Border; x++ {
			var v byte
			if c.Ink(x, y) {
				v = 1
			}
			for end := j + c.Scale; j < end; j++ {
				row[j] = v
			}
		}
		for i := 0; i < c.Scale; i++ {
			off := ((y+c.Border)*c.Scale + i) * img.Stride
			copy(img.Pix[off:off+d], row)
		}
	}
	return img
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	if c.Pixels() > maxPixels {
		return ErrLargeImage
	}
	return pngEncoder.Encode(w, c.Image())
}

// PNG returns a PNG image displaying the code, or nil on error.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}
