// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// Generator returns the Reed-Solomon generator polynomial of degree n,
// the product of (x - α^i) for 0 <= i < n.
func Generator(f *Field, n int) *Poly {
	g := f.One()
	for i := 0; i < n; i++ {
		// Same field, cannot fail.
		g, _ = g.Mul(&Poly{f: f, c: []byte{1, f.Exp(i)}})
	}
	return g
}

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given generator polynomial.
type RSEncoder struct {
	gen *Poly
	c   int
}

// NewRSEncoder returns a new Reed-Solomon encoder dividing by the
// generator polynomial gen and producing gen.Degree() check bytes.
func NewRSEncoder(gen *Poly) (*RSEncoder, error) {
	if gen.IsZero() {
		return nil, ErrMalformedPolynomial
	}
	return &RSEncoder{gen: gen, c: gen.Degree()}, nil
}

// Check returns the number of check bytes produced by rs.
func (rs *RSEncoder) Check() int { return rs.c }

// ECC writes to check the error correcting code bytes for data,
// the remainder of data·x^c divided by the generator polynomial.
// The remainder is left-padded with zeros to exactly c bytes.
// check must be c bytes long.
func (rs *RSEncoder) ECC(data, check []byte) error {
	if len(check) != rs.c {
		return ErrInvalidArgument
	}
	msg, err := NewPoly(rs.gen.f, data...).MulMonomial(rs.c, 1)
	if err != nil {
		return err
	}
	_, rem, err := msg.Divide(rs.gen)
	if err != nil {
		return err
	}
	clear(check)
	if !rem.IsZero() {
		copy(check[rs.c-len(rem.c):], rem.c)
	}
	return nil
}
