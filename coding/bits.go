// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
	"strings"
)

// Bits is a bit string written most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with capacity for n bytes.
func NewBits(n int) *Bits {
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the bytes written to b.  The unwritten bits of a
// trailing fractional byte are zero.
func (b *Bits) Bytes() []byte { return b.b }

// Bit returns bit i of b as 0 or 1.
func (b *Bits) Bit(i int) byte {
	return b.b[i>>3] >> (7 &^ i) & 1
}

// Write appends the low nbit bits of v to b.  It panics unless
// 0 <= nbit <= 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	if nbit < 0 || nbit > 32 {
		panic("qr: Bits.Write of " + strconv.Itoa(nbit) + " bits")
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Append appends the bytes of s, 8 bits each, to b.
func (b *Bits) Append(s string) {
	if b.nbit&7 != 0 {
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
		return
	}
	b.b = append(b.b, s...)
	b.nbit += len(s) * 8
}

// Terminate appends up to 4 zero bits to b without exceeding n bits.
// It returns an error wrapping ErrCapacity if b is already longer
// than n bits.
func (b *Bits) Terminate(n int) error {
	if b.nbit > n {
		return fmt.Errorf("%w: cannot fit %d bits into %d-bit code",
			ErrCapacity, b.nbit, n)
	}
	b.Write(0, min(4, n-b.nbit))
	return nil
}

// PadTo pads b with zero bits to a byte boundary, then with
// alternating pad codewords 11101100 and 00010001 to n bytes.
func (b *Bits) PadTo(n int) error {
	if b.nbit > n*8 {
		return fmt.Errorf("%w: cannot fit %d bits into %d codewords",
			ErrCapacity, b.nbit, n)
	}
	b.nbit = len(b.b) * 8
	for pad := byte(0xec); len(b.b) < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
	}
	b.nbit = n * 8
	return nil
}

// Clone returns a copy of b.
func (b *Bits) Clone() *Bits {
	return &Bits{b: append([]byte(nil), b.b...), nbit: b.nbit}
}

// String returns b as a string of '0' and '1' characters.
func (b *Bits) String() string {
	var s strings.Builder
	s.Grow(b.nbit)
	for i := 0; i < b.nbit; i++ {
		s.WriteByte('0' + b.Bit(i))
	}
	return s.String()
}

// BinString returns the low n bits of x as a string of '0' and '1'
// characters, most significant first.
func BinString(x uint32, n int) string {
	s := strconv.FormatUint(uint64(x), 2)
	if len(s) >= n {
		return s[len(s)-n:]
	}
	return strings.Repeat("0", n-len(s)) + s
}

// ParseBinString returns the value of the string of '0' and '1'
// characters s.
func ParseBinString(s string) (uint32, error) {
	x, err := strconv.ParseUint(s, 2, 32)
	return uint32(x), err
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	n   int
	pos int
}

// NewBitStream returns a BitStream reading the bytes of b followed by
// pad zero bits.
func NewBitStream(b []byte, pad int) *BitStream {
	return &BitStream{b: b, n: len(b)*8 + pad}
}

// Len returns the number of unread bits.
func (s *BitStream) Len() int { return s.n - s.pos }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
	}
	s.pos++
	return b
}
