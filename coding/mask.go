// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
)

// A Mask is a QR data mask pattern number, 0 to 7.
type Mask int

func (m Mask) String() string { return BinString(uint32(m), 3) }

// IsValid reports whether m is a valid mask pattern number.
func (m Mask) IsValid() bool { return 0 <= m && m <= 7 }

// ParseMask returns the Mask numbered by s, in decimal or as three
// binary digits.
func ParseMask(s string) (Mask, error) {
	base := 10
	if len(s) == 3 {
		base = 2
	}
	n, err := strconv.ParseUint(s, base, 8)
	if m := Mask(n); err == nil && m.IsValid() {
		return m, nil
	}
	return 0, fmt.Errorf("%w %q", ErrMask, s)
}

// Invert reports whether the mask inverts the module in column x and
// row y.
//
//	0: (x+y)%2 == 0           4: (y/2+x/3)%2 == 0
//	1: y%2 == 0               5: xy%2 + xy%3 == 0
//	2: x%3 == 0               6: (xy%2 + xy%3)%2 == 0
//	3: (x+y)%3 == 0           7: ((x+y)%2 + xy%3)%2 == 0
func (m Mask) Invert(x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	}
	return false
}

// bch returns data followed by the remainder of data·x^n divided by
// the generator polynomial poly of degree n, both over GF(2).
func bch(data, poly uint32, n int) uint32 {
	rem := data << n
	for i := 31; i >= n; i-- {
		if rem>>i&1 != 0 {
			rem ^= poly << (i - n)
		}
	}
	return data<<n | rem
}

// FormatBits returns the 15 bit format information for the error
// correction level and mask: the level indicator and the mask number
// with a BCH(15,5) remainder, XORed with 101010000010010.
func FormatBits(l Level, m Mask) uint16 {
	const (
		formatPoly = 0x537 // x^10 + x^8 + x^5 + x^4 + x^2 + x + 1
		formatMask = 0x5412
	)
	data := uint32(l.indicator())<<3 | uint32(m&7)
	return uint16(bch(data, formatPoly, 10) ^ formatMask)
}

// place writes the bits of s to the unassigned modules of g in
// zigzag order: two columns at a time from the right, alternately
// upwards and downwards, skipping the vertical timing pattern.
// Every unassigned module must receive exactly one bit of s.
func (g *Grid) place(s *BitStream) error {
	siz := g.size
	for right := siz - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		up := (right+1)&2 == 0
		for vert := 0; vert < siz; vert++ {
			y := vert
			if up {
				y = siz - 1 - vert
			}
			for x := right; x >= right-1; x-- {
				if g.At(x, y) != Unassigned {
					continue
				}
				if s.Len() == 0 {
					return fmt.Errorf("%w: data ends at module (%d, %d)",
						ErrInternal, x, y)
				}
				m := LightData
				if s.Next() != 0 {
					m = DarkData
				}
				g.m[y*siz+x] = m
			}
		}
	}
	if n := s.Len(); n != 0 {
		return fmt.Errorf("%w: %d data bits left after placement",
			ErrInternal, n)
	}
	return nil
}

// mask inverts the data modules selected by m.
func (g *Grid) mask(m Mask) error {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if v := g.At(x, y); v.IsData() && m.Invert(x, y) {
				if err := g.Set(x, y, v^LightData^DarkData); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// writeFormat writes both copies of the format information into the
// reserved modules, bit 0 first.
func (g *Grid) writeFormat(fb uint16) error {
	for i := 0; i < 15; i++ {
		x1, y1, x2, y2 := formatPos(g.size, i)
		dark := fb>>i&1 != 0
		if err := g.setFunction(x1, y1, dark); err != nil {
			return err
		}
		if err := g.setFunction(x2, y2, dark); err != nil {
			return err
		}
	}
	return nil
}

// check reports an error if any module of g is unassigned or
// reserved.
func (g *Grid) check() error {
	for i, v := range g.m {
		if !v.IsFunction() && !v.IsData() {
			return fmt.Errorf("%w: module (%d, %d) is %s",
				ErrInternal, i%g.size, i/g.size, v)
		}
	}
	return nil
}
