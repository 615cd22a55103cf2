// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: the
// reference tables, the data bit stream, Reed-Solomon blocks and the
// module grid.
package coding // import "github.com/unixdj/qrenc/coding"

import (
	"errors"
	"strconv"
	"strings"

	"github.com/unixdj/qrenc/gf256"
)

var (
	ErrCapacity = errors.New("qr: data too long")
	ErrInternal = errors.New("qr: internal error")
	ErrLevel    = errors.New("qr: invalid level")
	ErrMask     = errors.New("qr: invalid mask")
	ErrVersion  = errors.New("qr: invalid version")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is between MinVersion and MaxVersion.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a code of version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// QR version size classes, selecting character count field lengths.
const (
	Class0 = iota // versions 1 to 9
	Class1        // versions 10 to 26
	Class2        // versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// indicator returns the two bit error correction level indicator.
func (l Level) indicator() uint16 { return uint16(l ^ 1) }

// ParseLevel returns the Level named by s, ignoring case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("LMQH", s[0]&^0x20); i >= 0 {
			return Level(i), nil
		}
	}
	return 0, ErrLevel
}
