// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"github.com/unixdj/qrenc/gf256"
)

// An Option configures an Encoder.
type Option func(*Encoder) error

// WithReference sets the tables the Encoder consults.
// The default is ISO.
func WithReference(ref Reference) Option {
	return func(e *Encoder) error {
		if ref == nil {
			return fmt.Errorf("%w: nil reference", ErrInternal)
		}
		e.ref = ref
		return nil
	}
}

// WithField sets the field for Reed-Solomon error correction.
// The default is Field.
func WithField(f *gf256.Field) Option {
	return func(e *Encoder) error {
		if f == nil {
			return fmt.Errorf("%w: nil field", ErrInternal)
		}
		e.field = f
		return nil
	}
}

// WithMask sets the data mask pattern.  The default is 0.
func WithMask(m Mask) Option {
	return func(e *Encoder) error {
		if !m.IsValid() {
			return fmt.Errorf("%w %d", ErrMask, m)
		}
		e.mask = m
		return nil
	}
}

// Encoder encodes QR codes of a specific version and level.
// An Encoder may be used concurrently.
type Encoder struct {
	p     *Plan
	level Level
	ref   Reference
	field *gf256.Field
	mask  Mask
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(v Version, l Level, opts ...Option) (*Encoder, error) {
	e := &Encoder{level: l, ref: ISO, field: Field}
	for _, o := range opts {
		if err := o(e); err != nil {
			return nil, err
		}
	}
	if !l.IsValid() {
		return nil, fmt.Errorf("%w %d", ErrLevel, l)
	}
	p, err := NewPlan(e.ref, v)
	if err != nil {
		return nil, err
	}
	e.p = p
	return e, nil
}

// Plan returns the plan used by e.
func (e *Encoder) Plan() *Plan { return e.p }

// A Symbol is an encoded QR code with the intermediate results of
// encoding.
type Symbol struct {
	Version Version
	Level   Level
	Mask    Mask
	Segment Segment

	// Stream is the segment with its header and terminator.
	Stream *Bits

	// Codewords is the stream padded to the data capacity.
	Codewords []byte

	// DataBlocks and ECBlocks are the data codewords split into
	// blocks and the error correction codewords of each block.
	DataBlocks [][]byte
	ECBlocks   [][]byte

	// Sequence is the interleaved codeword sequence.
	Sequence []byte

	// Grid is the module grid.
	Grid *Grid
}

// Size returns the number of modules on a side.
func (s *Symbol) Size() int { return s.Grid.Size() }

// Black reports whether the module in column x and row y is dark.
func (s *Symbol) Black(x, y int) bool { return s.Grid.At(x, y).IsDark() }

// Encode encodes seg into a QR code.
func (e *Encoder) Encode(seg Segment) (*Symbol, error) {
	v, l, ref := e.p.Version, e.level, e.ref
	cbits, err := ref.CountBits(v, seg.Mode)
	if err != nil {
		return nil, err
	}
	nd, err := ref.DataCodewords(v, l)
	if err != nil {
		return nil, err
	}

	// data bits
	b := NewBits(nd)
	if err := seg.Encode(b, cbits); err != nil {
		return nil, err
	}
	if err := b.Terminate(nd * 8); err != nil {
		return nil, fmt.Errorf("%w (version %d-%s)", err, v, l)
	}
	stream := b.Clone()
	if err := b.PadTo(nd); err != nil {
		return nil, err
	}
	codewords := b.Bytes()

	// error correction
	sizes, err := ref.BlockSizes(v, l)
	if err != nil {
		return nil, err
	}
	nc, err := ref.ECCodewords(v, l)
	if err != nil {
		return nil, err
	}
	if len(sizes) == 0 || nc%len(sizes) != 0 {
		return nil, fmt.Errorf("%w: %d error correction codewords in %d blocks",
			ErrInternal, nc, len(sizes))
	}
	exps, err := ref.GeneratorExponents(nc / len(sizes))
	if err != nil {
		return nil, err
	}
	data, err := SplitBlocks(codewords, sizes)
	if err != nil {
		return nil, err
	}
	ec, err := ECBlocks(e.field, exps, data)
	if err != nil {
		return nil, err
	}
	seq := Interleave(data, ec)

	// module grid
	rem, err := ref.RemainderBits(v)
	if err != nil {
		return nil, err
	}
	g := e.p.Grid()
	if err := g.place(NewBitStream(seq, rem)); err != nil {
		return nil, err
	}
	if err := g.mask(e.mask); err != nil {
		return nil, err
	}
	if err := g.writeFormat(FormatBits(l, e.mask)); err != nil {
		return nil, err
	}
	if err := g.check(); err != nil {
		return nil, err
	}
	return &Symbol{
		Version:    v,
		Level:      l,
		Mask:       e.mask,
		Segment:    seg,
		Stream:     stream,
		Codewords:  codewords,
		DataBlocks: data,
		ECBlocks:   ec,
		Sequence:   seq,
		Grid:       g,
	}, nil
}

// Encode encodes seg using an Encoder with the given version, level
// and options.
func Encode(v Version, l Level, seg Segment, opts ...Option) (*Symbol, error) {
	e, err := NewEncoder(v, l, opts...)
	if err != nil {
		return nil, err
	}
	return e.Encode(seg)
}
