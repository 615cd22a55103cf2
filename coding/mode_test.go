// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNumericData(t *testing.T) {
	b := NewBits(4)
	if err := modes[Numeric].encode(b, "01234567"); err != nil {
		t.Fatal(err)
	}
	if want := "000000110001010110011000011"; b.String() != want {
		t.Errorf("numeric 01234567 = %s, want %s", b, want)
	}
}

func TestSegmentEncode(t *testing.T) {
	for _, tt := range []struct {
		seg   Segment
		cbits int
		want  string
	}{
		{
			Segment{"01234567", Numeric}, 10,
			"0001" + "0000001000" + "000000110001010110011000011",
		},
		{
			Segment{"AC-42", Alphanumeric}, 9,
			"0010" + "000000101" + "00111001110" + "11100111001" + "000010",
		},
		{
			Segment{"ac-42", Alphanumeric}, 9,
			"0010" + "000000101" + "00111001110" + "11100111001" + "000010",
		},
		{
			Segment{"é", Byte}, 8,
			"0100" + "00000001" + "11101001",
		},
		{
			Segment{"€", Byte}, 8,
			"0100" + "00000011" + "11100010" + "10000010" + "10101100",
		},
		{
			Segment{"", Numeric}, 10,
			"0001" + "0000000000",
		},
	} {
		b := NewBits(8)
		if err := tt.seg.Encode(b, tt.cbits); err != nil {
			t.Errorf("%+v: %v", tt.seg, err)
			continue
		}
		if b.String() != tt.want {
			t.Errorf("%+v:\nhave %s\nwant %s", tt.seg, b, tt.want)
		}
	}
}

func TestSegmentLength(t *testing.T) {
	const digits = "0123456789"
	for n := 0; n < 30; n++ {
		for _, seg := range []Segment{
			{strings.Repeat(digits, 3)[:n], Numeric},
			{strings.Repeat("AZ $%*+-./:", 3)[:n], Alphanumeric},
			{strings.Repeat("x\x00\xff", 10)[:n], Byte},
		} {
			b := NewBits(32)
			b.Write(1, 3) // unaligned start
			if err := seg.Encode(b, 9); err != nil {
				t.Fatalf("%+v: %v", seg, err)
			}
			if got, want := b.Bits()-3, seg.Mode.Length(n, 9); got != want {
				t.Errorf("%s %d: %d bits, want %d", seg.Mode, n, got, want)
			}
		}
	}
}

func TestSegmentErrors(t *testing.T) {
	b := NewBits(8)
	var se SegmentError
	for _, seg := range []Segment{
		{"12a", Numeric},
		{"ABC#", Alphanumeric},
		{"Ab\u00e9", Alphanumeric},
	} {
		if err := seg.Encode(b, 10); !errors.As(err, &se) || Segment(se) != seg {
			t.Errorf("%+v: err = %v", seg, err)
		}
		if seg.IsValid() {
			t.Errorf("%+v is valid", seg)
		}
	}
	var me ModeError
	for _, mode := range []Mode{Kanji, -1, 4} {
		seg := Segment{"1", mode}
		if err := seg.Encode(b, 10); !errors.As(err, &me) || Mode(me) != mode {
			t.Errorf("%+v: err = %v", seg, err)
		}
	}
	long := Segment{strings.Repeat("x", 256), Byte}
	if err := long.Encode(b, 8); !errors.Is(err, ErrCapacity) {
		t.Errorf("256 bytes with 8 bit count: err = %v", err)
	}
}

func TestLatin1(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"\u00e9t\u00e9", "\xe9t\xe9"},
		{"\u00ff\u0100", "\u00ff\u0100"},
		{"\xff", "\xff"},
	} {
		if s := latin1(tt.in); s != tt.want {
			t.Errorf("latin1(%q) = %q, want %q", tt.in, s, tt.want)
		}
	}
	if n, err := (Segment{"\u00e9t\u00e9", Byte}).Count(); n != 3 || err != nil {
		t.Errorf("Count = %d, %v, want 3", n, err)
	}
}

func TestModeNames(t *testing.T) {
	for _, mode := range []Mode{Numeric, Alphanumeric, Byte, Kanji} {
		m, err := ParseMode(mode.String())
		if err != nil || m != mode {
			t.Errorf("ParseMode(%q) = %v, %v", mode.String(), m, err)
		}
		m, err = ParseMode(mode.String()[:1])
		if err != nil || m != mode {
			t.Errorf("ParseMode(%q) = %v, %v", mode.String()[:1], m, err)
		}
	}
	if _, err := ParseMode("eci"); err == nil {
		t.Errorf("ParseMode(eci) succeeded")
	}
	want := []int{1, 2, 4, 8}
	for i, mode := range []Mode{Numeric, Alphanumeric, Byte, Kanji} {
		if ind := mode.Indicator(); ind != want[i] {
			t.Errorf("%s indicator %04b, want %04b", mode, ind, want[i])
		}
	}
}

func TestCharsets(t *testing.T) {
	var num, alnum []byte
	for c := 0; c < 256; c++ {
		if IsNumeric(byte(c)) {
			num = append(num, byte(c))
		}
		if IsAlphanumeric(byte(c)) {
			alnum = append(alnum, byte(c))
		}
	}
	if string(num) != "0123456789" {
		t.Errorf("numeric set %q", num)
	}
	if want := " $%*+-./0123456789:ABCDEFGHIJKLMNOPQRSTUVWXYZ"; string(alnum) != want {
		t.Errorf("alphanumeric set %q, want %q", alnum, want)
	}
	// code values follow the order of the alphanumeric table
	const table = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
	for i := 0; i < len(table); i++ {
		if v, _ := modes[Alphanumeric].Encode1(table[i]); v != uint32(i) {
			t.Errorf("code of %q = %d, want %d", table[i], v, i)
		}
	}
	if !bytes.Equal([]byte(upper("a-z{")), []byte("A-Z{")) {
		t.Errorf("upper(a-z{) = %q", upper("a-z{"))
	}
}
