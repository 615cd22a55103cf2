// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256),
// polynomials over that field and Reed-Solomon encoding.
package gf256 // import "github.com/unixdj/qrenc/gf256"

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidArgument is returned when zero is passed where a
	// non-zero element or a non-negative degree is required.
	ErrInvalidArgument = errors.New("gf256: invalid argument")

	// ErrMalformedPolynomial is returned on division by the zero
	// polynomial.
	ErrMalformedPolynomial = errors.New("gf256: division by zero polynomial")

	// ErrFieldMismatch is returned by operations on polynomials over
	// different fields.
	ErrFieldMismatch = errors.New("gf256: polynomials over different fields")
)

// A Field represents an instance of GF(256) defined by a specific
// polynomial.  Its tables are built by NewField and never change.
type Field struct {
	poly int
	α    int
	log  [256]byte // log[0] is unused
	exp  [510]byte // exp[i] == exp[i+255]
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The polynomial is given as an integer with bit i
// set for the coefficient of x^i; the standard QR polynomial
// x^8 + x^4 + x^3 + x^2 + 1 is 0x11d.  NewField panics if poly is not
// of degree 8 or α does not generate the multiplicative group.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	f := &Field{poly: poly, α: α}
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	return f
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Poly returns the polynomial defining f.
func (f *Field) Poly() int { return f.poly }

func (f *Field) String() string {
	return "GF(256)/" + strconv.FormatInt(int64(f.poly), 16)
}

// Add returns the sum of x and y in the field.  Subtraction is the
// same operation.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
func (f *Field) Log(x byte) (int, error) {
	if x == 0 {
		return 0, ErrInvalidArgument
	}
	return int(f.log[x]), nil
}

// Inv returns the multiplicative inverse of x in the field.
func (f *Field) Inv(x byte) (byte, error) {
	if x == 0 {
		return 0, ErrInvalidArgument
	}
	return f.exp[255-int(f.log[x])], nil
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}
