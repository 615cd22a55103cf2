// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"
)

func TestFormatBits(t *testing.T) {
	for _, tt := range []struct {
		l    Level
		m    Mask
		want string
	}{
		{L, 0, "111011111000100"},
		{M, 5, "100000011001110"},
		{H, 7, "000100000111011"},
	} {
		if fb := BinString(uint32(FormatBits(tt.l, tt.m)), 15); fb != tt.want {
			t.Errorf("FormatBits(%s, %s) = %s, want %s", tt.l, tt.m, fb, tt.want)
		}
	}
	// BCH(15,5) has minimum distance 7.
	var all []uint16
	for l := L; l <= H; l++ {
		for m := Mask(0); m < 8; m++ {
			all = append(all, FormatBits(l, m))
		}
	}
	for i, a := range all {
		for _, b := range all[:i] {
			if d := popcount(uint32(a ^ b)); d < 7 {
				t.Errorf("format bits %015b and %015b differ in %d bits",
					a, b, d)
			}
		}
	}
}

func popcount(x uint32) int {
	n := 0
	for ; x != 0; x &= x - 1 {
		n++
	}
	return n
}

func TestBCH(t *testing.T) {
	if x := bch(7, 0x1f25, 12); x != 0x07c94 {
		t.Errorf("bch(7) = %#x, want 0x07c94", x)
	}
	if x := bch(40, 0x1f25, 12); x != 0x28c69 {
		t.Errorf("bch(40) = %#x, want 0x28c69", x)
	}
}

func TestMaskInvert(t *testing.T) {
	// top left 6×6 corner of each mask, '#' where inverted
	want := [8][6]string{
		{"#.#.#.", ".#.#.#", "#.#.#.", ".#.#.#", "#.#.#.", ".#.#.#"},
		{"######", "......", "######", "......", "######", "......"},
		{"#..#..", "#..#..", "#..#..", "#..#..", "#..#..", "#..#.."},
		{"#..#..", "..#..#", ".#..#.", "#..#..", "..#..#", ".#..#."},
		{"###...", "###...", "...###", "...###", "###...", "###..."},
		{"######", "#.....", "#..#..", "#.#.#.", "#..#..", "#....."},
		{"######", "###...", "##.##.", "#.#.#.", "#.##.#", "#...##"},
		{"#.#.#.", "...###", "#...##", ".#.#.#", "###...", ".###.."},
	}
	for m := Mask(0); m < 8; m++ {
		for y, row := range want[m] {
			got := make([]byte, 6)
			for x := range got {
				got[x] = '.'
				if m.Invert(x, y) {
					got[x] = '#'
				}
			}
			if string(got) != row {
				t.Errorf("mask %s row %d = %s, want %s", m, y, got, row)
			}
		}
	}
	if Mask(8).Invert(0, 0) {
		t.Errorf("mask 8 inverts")
	}
}

func TestParseMask(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want Mask
	}{
		{"0", 0}, {"7", 7}, {"000", 0}, {"101", 5}, {"111", 7},
	} {
		if m, err := ParseMask(tt.s); err != nil || m != tt.want {
			t.Errorf("ParseMask(%q) = %v, %v, want %v", tt.s, m, err, tt.want)
		}
	}
	for _, s := range []string{"8", "", "-1", "102", "1000"} {
		if _, err := ParseMask(s); !errors.Is(err, ErrMask) {
			t.Errorf("ParseMask(%q): err = %v", s, err)
		}
	}
}
