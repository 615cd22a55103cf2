// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"bytes"
	"errors"
	"testing"
)

func TestCanonical(t *testing.T) {
	for _, tt := range []struct {
		in   []byte
		want []byte
	}{
		{nil, []byte{0}},
		{[]byte{0, 0, 0}, []byte{0}},
		{[]byte{0, 0, 3, 0}, []byte{3, 0}},
		{[]byte{7}, []byte{7}},
	} {
		p := NewPoly(f, tt.in...)
		if c := p.Coefficients(); !bytes.Equal(c, tt.want) {
			t.Errorf("NewPoly(%v) = %v, want %v", tt.in, c, tt.want)
		}
		if p.Degree() != len(tt.want)-1 {
			t.Errorf("NewPoly(%v).Degree() = %d", tt.in, p.Degree())
		}
	}
}

func TestPolyAdd(t *testing.T) {
	p := NewPoly(f, 1, 2, 3)
	q := NewPoly(f, 5, 3)
	s, err := p.Add(q)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewPoly(f, 1, 7, 0); !s.Equal(want) {
		t.Errorf("%v + %v = %v, want %v", p, q, s, want)
	}
	// leading terms cancel
	s, _ = p.Add(NewPoly(f, 1, 2, 4))
	if want := NewPoly(f, 7); !s.Equal(want) {
		t.Errorf("cancel: got %v, want %v", s, want)
	}
	if s, _ = p.Add(p); !s.IsZero() {
		t.Errorf("p + p = %v, want 0", s)
	}
}

func TestPolyMul(t *testing.T) {
	p := NewPoly(f, 1, 2)
	q := NewPoly(f, 1, 3)
	r, err := p.Mul(q)
	if err != nil {
		t.Fatal(err)
	}
	// (x+2)(x+3) = x² + (2^3)x + 2·3
	if want := NewPoly(f, 1, 1, 6); !r.Equal(want) {
		t.Errorf("%v * %v = %v, want %v", p, q, r, want)
	}
	if len(r.Coefficients()) != 3 {
		t.Errorf("product length %d, want 3", len(r.Coefficients()))
	}
	if r, _ = p.Mul(f.Zero()); !r.IsZero() {
		t.Errorf("p * 0 = %v", r)
	}
}

func TestMulMonomial(t *testing.T) {
	p := NewPoly(f, 3, 1)
	r, err := p.MulMonomial(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewPoly(f, 6, 2, 0, 0); !r.Equal(want) {
		t.Errorf("got %v, want %v", r, want)
	}
	if r, _ = p.MulMonomial(3, 0); !r.IsZero() {
		t.Errorf("coeff 0: got %v, want 0", r)
	}
	if _, err = p.MulMonomial(-1, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("degree -1: err = %v", err)
	}
	if _, err = f.Monomial(-1, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Monomial(-1): err = %v", err)
	}
}

func TestDivide(t *testing.T) {
	for _, c := range [][2][]byte{
		{{1, 2, 3, 4, 5, 6, 7}, {1, 9, 4}},
		{{200, 0, 0, 17}, {3, 0, 1}},
		{{5}, {1, 2}},
		{{9, 8, 7}, {4}},
	} {
		p, d := NewPoly(f, c[0]...), NewPoly(f, c[1]...)
		quo, rem, err := p.Divide(d)
		if err != nil {
			t.Fatal(err)
		}
		if !rem.IsZero() && rem.Degree() >= d.Degree() {
			t.Errorf("%v / %v: remainder %v too large", p, d, rem)
		}
		back, _ := quo.Mul(d)
		back, _ = back.Add(rem)
		if !back.Equal(p) {
			t.Errorf("%v / %v = %v rem %v; q*d+r = %v",
				p, d, quo, rem, back)
		}
	}
}

func TestDivideErrors(t *testing.T) {
	p := NewPoly(f, 1, 2, 3)
	if _, _, err := p.Divide(f.Zero()); !errors.Is(err, ErrMalformedPolynomial) {
		t.Errorf("divide by zero: err = %v", err)
	}
	g := NewField(0x11d, 2)
	q := NewPoly(g, 1, 2, 3)
	if p.Equal(q) {
		t.Errorf("polynomials over different fields are equal")
	}
	if _, err := p.Add(q); !errors.Is(err, ErrFieldMismatch) {
		t.Errorf("Add: err = %v", err)
	}
	if _, err := p.Mul(q); !errors.Is(err, ErrFieldMismatch) {
		t.Errorf("Mul: err = %v", err)
	}
	if _, _, err := p.Divide(q); !errors.Is(err, ErrFieldMismatch) {
		t.Errorf("Divide: err = %v", err)
	}
}

func TestEval(t *testing.T) {
	gen := Generator(f, 10)
	for i := 0; i < 10; i++ {
		if y := gen.Eval(f.Exp(i)); y != 0 {
			t.Errorf("gen(α^%d) = %d, want 0", i, y)
		}
	}
	if y := gen.Eval(f.Exp(10)); y == 0 {
		t.Errorf("gen(α^10) = 0")
	}
}

func TestGenerator(t *testing.T) {
	want := []int{0, 43, 139, 206, 78, 43, 239, 123, 206, 214, 147, 24,
		99, 150, 39, 243, 163, 136}
	gen := Generator(f, 17)
	c := gen.Coefficients()
	if len(c) != len(want) {
		t.Fatalf("degree %d, want %d", gen.Degree(), len(want)-1)
	}
	for i, v := range c {
		if l, _ := f.Log(v); l != want[i] {
			t.Errorf("coefficient %d = α^%d, want α^%d", i, l, want[i])
		}
	}
}

func TestECC(t *testing.T) {
	for _, tt := range []struct {
		data, check []byte
	}{
		{ // ISO/IEC 18004 Annex I, "01234567" at 1-M
			data: []byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11,
				0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11},
			check: []byte{165, 36, 212, 193, 237, 54, 199, 135, 44, 85},
		},
		{ // "ABCDE123" alphanumeric at 1-H
			data:  []byte{32, 65, 205, 69, 41, 220, 46, 128, 236},
			check: []byte{42, 159, 74, 221, 244, 169, 239, 150, 138, 70,
				237, 85, 224, 96, 74, 219, 61},
		},
	} {
		rs, err := NewRSEncoder(Generator(f, len(tt.check)))
		if err != nil {
			t.Fatal(err)
		}
		check := make([]byte, rs.Check())
		if err := rs.ECC(tt.data, check); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(check, tt.check) {
			t.Errorf("ECC(%v) = %v, want %v", tt.data, check, tt.check)
		}
	}
}

func TestECCZeroPadding(t *testing.T) {
	rs, _ := NewRSEncoder(Generator(f, 7))
	check := []byte{1, 2, 3, 4, 5, 6, 7}
	if err := rs.ECC(make([]byte, 19), check); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(check, make([]byte, 7)) {
		t.Errorf("ECC(zeros) = %v, want zeros", check)
	}
	if err := rs.ECC([]byte{1}, check[:3]); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("short check: err = %v", err)
	}
}

func BenchmarkECC(b *testing.B) {
	data := []byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11}
	check := []byte{0x29, 0x41, 0xb3, 0x93, 0x8, 0xe8, 0xa3, 0xe9, 0x91, 0x21, 0x63, 0x9d, 0x1b, 0x34, 0xbd, 0xa6, 0x17, 0xf3, 0x3c, 0x21, 0xaa, 0xf1, 0x95, 0x78, 0x4b, 0xda}
	rs, _ := NewRSEncoder(Generator(f, len(check)))
	out := make([]byte, len(check))
	for i := 0; i < b.N; i++ {
		rs.ECC(data, out)
	}
}
