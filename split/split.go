// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package split chooses the mode and version for encoding a string as a
single QR code segment.

Classify picks the most compact mode accepting the whole string,
MinVersion the smallest version holding a given number of characters,
and Split does both.
*/
package split // import "github.com/unixdj/qrenc/split"

import (
	"fmt"

	"github.com/unixdj/qrenc/coding"
)

// Auto is passed to Split to select the mode with Classify.
const Auto coding.Mode = -1

// Character sets as bit fields indexed by byte value - ' '.
const (
	alpha = 0x07ff_fffe_07ff_ec31 // SPACE $% *+ -./ [0-9] : [A-Z]
	digit = 0x0000_0000_03ff_0000 // [0-9]
)

// Classify returns Numeric if text consists of digits, Alphanumeric
// if it is in the alphanumeric character set and Byte otherwise.
// Lower case letters are classified as Byte.
func Classify(text string) coding.Mode {
	m := coding.Numeric
	for i := 0; i < len(text); i++ {
		bit := uint64(1) << (uint(text[i]) - ' ')
		if digit&bit != 0 {
			continue
		}
		if alpha&bit == 0 {
			return coding.Byte
		}
		m = coding.Alphanumeric
	}
	return m
}

var sizeClass = [3]struct{ min, max coding.Version }{
	{1, 9}, {10, 26}, {27, 40},
}

// MinVersion returns the smallest version in which n characters fit
// in the given mode at the given error correction level, according to
// the character capacities of ref.  If ref is nil, it defaults to
// coding.ISO.
func MinVersion(ref coding.Reference, n int, mode coding.Mode, level coding.Level) (coding.Version, error) {
	if ref == nil {
		ref = coding.ISO
	}
	if !level.IsValid() {
		return 0, fmt.Errorf("%w %d", coding.ErrLevel, level)
	}
	fits := func(v coding.Version) (bool, error) {
		max, err := ref.MaxChars(mode, v, level)
		return n <= max, err
	}

	// Find the size class, then binary search within it.
	for _, c := range sizeClass {
		ok, err := fits(c.max)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		v := c.min
		for max := c.max; v < max; {
			mid := (v + max) / 2
			ok, err := fits(mid)
			if err != nil {
				return 0, err
			}
			if ok {
				max = mid
			} else {
				v = mid + 1
			}
		}
		return v, nil
	}
	return 0, fmt.Errorf("%w: %d %s characters at level %s",
		coding.ErrCapacity, n, mode, level)
}

// Split returns a segment for text in the given mode, or in the mode
// chosen by Classify if mode is Auto, and the smallest version it fits
// in at the given level.
func Split(ref coding.Reference, text string, mode coding.Mode, level coding.Level) (coding.Segment, coding.Version, error) {
	if mode == Auto {
		mode = Classify(text)
	}
	seg := coding.Segment{Text: text, Mode: mode}
	n, err := seg.Count()
	if err != nil {
		return seg, 0, err
	}
	v, err := MinVersion(ref, n, mode, level)
	return seg, v, err
}
