// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "strconv"

// A Poly is a polynomial over a Field.  Coefficients are stored
// highest degree first with no leading zeros; the zero polynomial has
// the single coefficient 0.  A Poly is never modified after creation.
type Poly struct {
	f *Field
	c []byte
}

// NewPoly returns the polynomial over f with the given coefficients,
// highest degree first.  The coefficients are copied.
func NewPoly(f *Field, coeff ...byte) *Poly {
	i := 0
	for i < len(coeff)-1 && coeff[i] == 0 {
		i++
	}
	c := make([]byte, max(len(coeff)-i, 1))
	copy(c, coeff[i:])
	return &Poly{f: f, c: c}
}

// newPoly is NewPoly for a slice owned by the caller.
func newPoly(f *Field, c []byte) *Poly {
	i := 0
	for i < len(c)-1 && c[i] == 0 {
		i++
	}
	if len(c) == 0 {
		c = []byte{0}
	}
	return &Poly{f: f, c: c[i:]}
}

// Zero returns the zero polynomial over f.
func (f *Field) Zero() *Poly { return &Poly{f: f, c: []byte{0}} }

// One returns the constant polynomial 1 over f.
func (f *Field) One() *Poly { return &Poly{f: f, c: []byte{1}} }

// Monomial returns coeff·x^degree over f.
func (f *Field) Monomial(degree int, coeff byte) (*Poly, error) {
	if degree < 0 {
		return nil, ErrInvalidArgument
	}
	if coeff == 0 {
		return f.Zero(), nil
	}
	c := make([]byte, degree+1)
	c[0] = coeff
	return &Poly{f: f, c: c}, nil
}

// Field returns the field p is defined over.
func (p *Poly) Field() *Field { return p.f }

// Degree returns the degree of p.  The zero polynomial has degree 0.
func (p *Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return p.c[0] == 0 }

// Coefficients returns a copy of the coefficients of p, highest
// degree first.
func (p *Poly) Coefficients() []byte {
	return append([]byte(nil), p.c...)
}

// Coefficient returns the coefficient of x^degree.
func (p *Poly) Coefficient(degree int) byte {
	if degree < 0 || degree >= len(p.c) {
		return 0
	}
	return p.c[len(p.c)-1-degree]
}

// Equal reports whether p and q are the same polynomial over the
// same field.
func (p *Poly) Equal(q *Poly) bool {
	if p.f != q.f || len(p.c) != len(q.c) {
		return false
	}
	for i, v := range p.c {
		if q.c[i] != v {
			return false
		}
	}
	return true
}

// Eval returns the value of p at x.
func (p *Poly) Eval(x byte) byte {
	var y byte
	for _, c := range p.c {
		y = p.f.Mul(y, x) ^ c
	}
	return y
}

// Add returns p + q.  Subtraction is the same operation.
func (p *Poly) Add(q *Poly) (*Poly, error) {
	if p.f != q.f {
		return nil, ErrFieldMismatch
	}
	a, b := p.c, q.c
	if len(a) < len(b) {
		a, b = b, a
	}
	c := make([]byte, len(a))
	d := len(a) - len(b)
	copy(c, a[:d])
	for i, v := range b {
		c[d+i] = a[d+i] ^ v
	}
	return newPoly(p.f, c), nil
}

// Mul returns p·q.
func (p *Poly) Mul(q *Poly) (*Poly, error) {
	if p.f != q.f {
		return nil, ErrFieldMismatch
	}
	if p.IsZero() || q.IsZero() {
		return p.f.Zero(), nil
	}
	c := make([]byte, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		for j, b := range q.c {
			c[i+j] ^= p.f.Mul(a, b)
		}
	}
	return newPoly(p.f, c), nil
}

// MulMonomial returns p·coeff·x^degree.
func (p *Poly) MulMonomial(degree int, coeff byte) (*Poly, error) {
	if degree < 0 {
		return nil, ErrInvalidArgument
	}
	if coeff == 0 {
		return p.f.Zero(), nil
	}
	c := make([]byte, len(p.c)+degree)
	for i, v := range p.c {
		c[i] = p.f.Mul(v, coeff)
	}
	return newPoly(p.f, c), nil
}

// Divide returns the quotient and remainder of p divided by d.
func (p *Poly) Divide(d *Poly) (quo, rem *Poly, err error) {
	if p.f != d.f {
		return nil, nil, ErrFieldMismatch
	}
	if d.IsZero() {
		return nil, nil, ErrMalformedPolynomial
	}
	inv, err := p.f.Inv(d.c[0])
	if err != nil {
		return nil, nil, err
	}
	quo, rem = p.f.Zero(), p
	for rem.Degree() >= d.Degree() && !rem.IsZero() {
		deg := rem.Degree() - d.Degree()
		scale := p.f.Mul(rem.c[0], inv)
		term, err := d.MulMonomial(deg, scale)
		if err != nil {
			return nil, nil, err
		}
		mono, err := p.f.Monomial(deg, scale)
		if err != nil {
			return nil, nil, err
		}
		if quo, err = quo.Add(mono); err != nil {
			return nil, nil, err
		}
		if rem, err = rem.Add(term); err != nil {
			return nil, nil, err
		}
	}
	return quo, rem, nil
}

func (p *Poly) String() string {
	b := make([]byte, 0, len(p.c)*4+6)
	b = append(b, "Poly["...)
	for i, v := range p.c {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendUint(b, uint64(v), 10)
	}
	return string(append(b, ']'))
}
