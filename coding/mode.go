// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// QR segment encoding modes.
const (
	Numeric      Mode = iota // numeric mode, ASCII digits
	Alphanumeric             // alphanumeric mode, upper case ASCII
	Byte                     // byte mode, Latin-1 or UTF-8 text
	Kanji                    // kanji mode, not implemented
)

// A Mode is a QR segment encoding mode.
type Mode int

// modeEncoder implements a QR segment encoding.
//
// Transform, if set, is called before validation and returns the
// string to be encoded.  Encode3, Encode2 and Encode1 return the
// encoding of the bytes and its length in bits; the encoder calls a
// non-nil Encode{N} repeatedly as long as N source bytes are
// available, in descending order of N.  If all are nil, each byte is
// encoded as 8 bits.
type modeEncoder struct {
	Name      string // Name for error reporting
	Indicator byte   // 4 bit mode indicator

	// CountLength lists lengths of the character count field in
	// three version size classes.
	CountLength [3]byte

	// EncodedLength returns the encoded data length in bits of a
	// valid string of n characters.
	EncodedLength func(n int) int

	Accepts   func(byte) bool
	Transform func(string) string

	Encode3 func([3]byte) (uint32, int)
	Encode2 func([2]byte) (uint32, int)
	Encode1 func(byte) (uint32, int)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// IsAlphanumeric reports whether c is in the alphanumeric mode
// character set.
func IsAlphanumeric(c byte) bool {
	return c >= ' ' && c < 0x60 && alphamask>>(c-' ')&1 != 0
}

// IsNumeric reports whether c is an ASCII digit.
func IsNumeric(c byte) bool { return c-'0' < 10 }

var modes = [...]modeEncoder{
	Numeric: {
		Name:          "numeric",
		Indicator:     1,
		CountLength:   [3]byte{10, 12, 14},
		EncodedLength: func(n int) int { return (10*n + 2) / 3 },
		Accepts:       IsNumeric,
		Encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
		Encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0])*10 + uint32(b[1]) - '0'*11&0x7f, 7
		},
		Encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0])*100 + uint32(b[1])*10 +
				uint32(b[2]) + -'0'*111&0x3ff, 10
		},
	},
	Alphanumeric: {
		Name:          "alphanumeric",
		Indicator:     2,
		CountLength:   [3]byte{9, 11, 13},
		EncodedLength: func(n int) int { return (11*n + 1) / 2 },
		Accepts:       IsAlphanumeric,
		Transform:     upper,
		Encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
		Encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
	},
	Byte: {
		Name:          "byte",
		Indicator:     4,
		CountLength:   [3]byte{8, 16, 16},
		EncodedLength: func(n int) int { return n * 8 },
		Transform:     latin1,
	},
	Kanji: {
		Name:          "kanji",
		Indicator:     8,
		CountLength:   [3]byte{8, 10, 12},
		EncodedLength: func(n int) int { return n * 13 },
	},
}

// upper maps ASCII lower case letters to upper case.
func upper(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			r -= 'a' - 'A'
		}
		return r
	}, s)
}

// latin1 returns s encoded as ISO 8859-1 if every character of s is
// in the Latin-1 range, or s unchanged otherwise.
func latin1(s string) string {
	for _, r := range s {
		if r >= 0x100 {
			return s
		}
	}
	if !utf8.ValidString(s) {
		return s
	}
	if t, err := charmap.ISO8859_1.NewEncoder().String(s); err == nil {
		return t
	}
	return s
}

func getMode(mode Mode) *modeEncoder {
	if mode >= 0 && int(mode) < len(modes) {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.Name
	}
	return strconv.Itoa(int(mode))
}

// Indicator returns the 4 bit mode indicator of mode.
func (mode Mode) Indicator() int {
	if m := getMode(mode); m != nil {
		return int(m.Indicator)
	}
	return 0
}

// ParseMode returns the Mode named by s or its first letter.
func ParseMode(s string) (Mode, error) {
	for i := range modes {
		if name := modes[i].Name; s == name || s == name[:1] {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("qr: unknown mode %q", s)
}

// Length returns the length in bits of a segment of n characters
// encoded in mode with a character count field of countBits bits,
// including the header.  Length returns 0 if mode is invalid.
func (mode Mode) Length(n, countBits int) int {
	if m := getMode(mode); m != nil {
		return 4 + countBits + m.EncodedLength(n)
	}
	return 0
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents an invalid Segment.
type SegmentError Segment

func (e SegmentError) Error() string {
	if m := getMode(e.Mode); m != nil {
		return fmt.Sprintf("qr: non-%s string %#q", m.Name, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// ModeError represents an invalid or unimplemented Mode.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}

// transform returns seg transformed for encoding and its encoder.
func (seg Segment) transform() (string, *modeEncoder, error) {
	m := getMode(seg.Mode)
	if m == nil || seg.Mode == Kanji {
		return "", nil, ModeError(seg.Mode)
	}
	s := seg.Text
	if m.Transform != nil {
		s = m.Transform(s)
	}
	if is := m.Accepts; is != nil {
		for i := 0; i < len(s); i++ {
			if !is(s[i]) {
				return "", nil, SegmentError(seg)
			}
		}
	}
	return s, m, nil
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	_, _, err := seg.transform()
	return err == nil
}

// Count returns the character count of seg after transformation,
// the number of bytes for Byte mode.
func (seg Segment) Count() (int, error) {
	s, _, err := seg.transform()
	return len(s), err
}

// Encode writes seg to b: the mode indicator, a character count field
// of countBits bits and the encoded data.  The number of bits written
// is checked against Mode.Length.
func (seg Segment) Encode(b *Bits, countBits int) error {
	s, m, err := seg.transform()
	if err != nil {
		return err
	}
	if len(s) >= 1<<countBits {
		return fmt.Errorf("%w: %d characters do not fit in %d bit count",
			ErrCapacity, len(s), countBits)
	}
	start := b.Bits()
	b.Write(uint32(m.Indicator), 4)
	b.Write(uint32(len(s)), countBits)
	if err := m.encode(b, s); err != nil {
		return err
	}
	if n, want := b.Bits()-start, seg.Mode.Length(len(s), countBits); n != want {
		return fmt.Errorf("%w: %s segment of %d characters is %d bits, want %d",
			ErrInternal, m.Name, len(s), n, want)
	}
	return nil
}

// encode writes the data bits of the transformed string s to b.
func (m *modeEncoder) encode(b *Bits, s string) error {
	enc3, enc2, enc1 := m.Encode3, m.Encode2, m.Encode1
	if enc3 == nil && enc2 == nil && enc1 == nil {
		b.Append(s)
		return nil
	}
	if enc3 != nil {
		for len(s) >= 3 {
			b.Write(enc3([3]byte{s[0], s[1], s[2]}))
			s = s[3:]
		}
	}
	if enc2 != nil {
		for len(s) >= 2 {
			b.Write(enc2([2]byte{s[0], s[1]}))
			s = s[2:]
		}
	}
	if enc1 != nil {
		for len(s) >= 1 {
			b.Write(enc1(s[0]))
			s = s[1:]
		}
	}
	if s != "" {
		return fmt.Errorf("%w: %s mode left %d bytes", ErrInternal,
			m.Name, len(s))
	}
	return nil
}
