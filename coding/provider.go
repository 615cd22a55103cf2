// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"sync"

	"github.com/unixdj/qrenc/gf256"
)

// A Reference provides the tables of ISO/IEC 18004 that the encoder
// consults.  Lookups of versions, levels or modes missing from the
// tables fail with an error wrapping ErrVersion or ErrLevel.
//
// ISO is the complete implementation.  A partial one may be passed
// to an Encoder with WithReference.
type Reference interface {
	// SymbolSize returns the number of modules on a side.
	SymbolSize(v Version) int

	// CountBits returns the length of the character count field.
	CountBits(v Version, mode Mode) (int, error)

	// MaxChars returns the maximum number of characters encodable
	// in a single segment.
	MaxChars(mode Mode, v Version, l Level) (int, error)

	// DataCodewords returns the number of data codewords.
	DataCodewords(v Version, l Level) (int, error)

	// ECCodewords returns the total number of error correction
	// codewords over all blocks.
	ECCodewords(v Version, l Level) (int, error)

	// BlockSizes returns the number of data codewords in each block,
	// in order.
	BlockSizes(v Version, l Level) ([]int, error)

	// GeneratorExponents returns the generator polynomial of degree
	// n as base-α logarithms of its coefficients, highest degree
	// first.
	GeneratorExponents(n int) ([]int, error)

	// AlignmentCenters returns the row and column coordinates of
	// alignment pattern centres, empty for version 1.
	AlignmentCenters(v Version) ([]int, error)

	// VersionInfo returns the 18 bit version information, or 0
	// below version 7.
	VersionInfo(v Version) (uint32, error)

	// RemainderBits returns the number of bits left over after
	// placing all codewords.
	RemainderBits(v Version) (int, error)
}

// A version describes metadata associated with a version.
type version struct {
	align     []int    // alignment pattern centres
	words     int      // total codewords
	remainder int      // remainder bits
	pattern   uint32   // version information
	level     [4]level // per error correction level
}

type level struct {
	nblock int // number of blocks
	check  int // error correction codewords in all blocks
}

// ISO is the Reference for QR Code Model 2 as specified by
// ISO/IEC 18004.
var ISO Reference = iso{}

type iso struct{}

func lookup(v Version) (*version, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w %d", ErrVersion, v)
	}
	return &vtab[v], nil
}

func lookupLevel(v Version, l Level) (*version, *level, error) {
	vt, err := lookup(v)
	if err != nil {
		return nil, nil, err
	}
	if !l.IsValid() {
		return nil, nil, fmt.Errorf("%w %d", ErrLevel, l)
	}
	return vt, &vt.level[l], nil
}

func (iso) SymbolSize(v Version) int { return v.Size() }

func (iso) CountBits(v Version, mode Mode) (int, error) {
	if !v.IsValid() {
		return 0, fmt.Errorf("%w %d", ErrVersion, v)
	}
	m := getMode(mode)
	if m == nil {
		return 0, ModeError(mode)
	}
	return int(m.CountLength[v.SizeClass()]), nil
}

func (r iso) MaxChars(mode Mode, v Version, l Level) (int, error) {
	n, err := r.DataCodewords(v, l)
	if err != nil {
		return 0, err
	}
	cb, err := r.CountBits(v, mode)
	if err != nil {
		return 0, err
	}
	return maxChars(mode, n*8-4-cb), nil
}

// maxChars returns the number of characters encodable in mode in
// the given number of bits after the segment header.
func maxChars(mode Mode, bits int) int {
	if bits <= 0 {
		return 0
	}
	switch mode {
	case Numeric:
		n := bits / 10 * 3
		switch r := bits % 10; {
		case r >= 7:
			n += 2
		case r >= 4:
			n++
		}
		return n
	case Alphanumeric:
		n := bits / 11 * 2
		if bits%11 >= 6 {
			n++
		}
		return n
	case Byte:
		return bits / 8
	case Kanji:
		return bits / 13
	}
	return 0
}

func (iso) DataCodewords(v Version, l Level) (int, error) {
	vt, lev, err := lookupLevel(v, l)
	if err != nil {
		return 0, err
	}
	return vt.words - lev.check, nil
}

func (iso) ECCodewords(v Version, l Level) (int, error) {
	_, lev, err := lookupLevel(v, l)
	if err != nil {
		return 0, err
	}
	return lev.check, nil
}

// BlockSizes returns the block sizes.  Blocks of the second group
// are one codeword longer than those of the first.
func (iso) BlockSizes(v Version, l Level) ([]int, error) {
	vt, lev, err := lookupLevel(v, l)
	if err != nil {
		return nil, err
	}
	nd := vt.words - lev.check
	db := nd / lev.nblock
	normal := (db+1)*lev.nblock - nd
	sizes := make([]int, lev.nblock)
	for i := range sizes {
		if i == normal {
			db++
		}
		sizes[i] = db
	}
	return sizes, nil
}

// Generator polynomials are created the first time a degree is used.
var generators [255]struct {
	once sync.Once
	exp  []int
}

func (iso) GeneratorExponents(n int) ([]int, error) {
	if n < 1 || n >= len(generators) {
		return nil, fmt.Errorf("%w: no generator polynomial of degree %d",
			ErrVersion, n)
	}
	g := &generators[n]
	g.once.Do(func() {
		c := gf256.Generator(Field, n).Coefficients()
		g.exp = make([]int, len(c))
		for i, x := range c {
			// Below degree 255 no coefficient is zero.
			g.exp[i], _ = Field.Log(x)
		}
	})
	return append([]int(nil), g.exp...), nil
}

func (iso) AlignmentCenters(v Version) ([]int, error) {
	vt, err := lookup(v)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), vt.align...), nil
}

func (iso) VersionInfo(v Version) (uint32, error) {
	vt, err := lookup(v)
	if err != nil {
		return 0, err
	}
	return vt.pattern, nil
}

func (iso) RemainderBits(v Version) (int, error) {
	vt, err := lookup(v)
	if err != nil {
		return 0, err
	}
	return vt.remainder, nil
}
