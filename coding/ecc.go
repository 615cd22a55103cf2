// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"github.com/unixdj/qrenc/gf256"
)

// SplitBlocks partitions data into consecutive blocks of the given
// sizes, which must add up to len(data).  The blocks share the
// underlying array of data.
func SplitBlocks(data []byte, sizes []int) ([][]byte, error) {
	blocks := make([][]byte, len(sizes))
	for i, n := range sizes {
		if n < 0 || n > len(data) {
			return nil, fmt.Errorf("%w: block %d of %d codewords, %d left",
				ErrInternal, i, n, len(data))
		}
		blocks[i], data = data[:n:n], data[n:]
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%w: %d codewords left after splitting",
			ErrInternal, len(data))
	}
	return blocks, nil
}

// ECBlocks returns the error correction codewords for each data
// block, computed over f with the generator polynomial given by the
// base-α logarithms of its coefficients.
func ECBlocks(f *gf256.Field, exps []int, blocks [][]byte) ([][]byte, error) {
	c := make([]byte, len(exps))
	for i, e := range exps {
		c[i] = f.Exp(e)
	}
	rs, err := gf256.NewRSEncoder(gf256.NewPoly(f, c...))
	if err != nil {
		return nil, err
	}
	n := rs.Check()
	buf := make([]byte, n*len(blocks))
	ec := make([][]byte, len(blocks))
	for i, b := range blocks {
		ec[i], buf = buf[:n:n], buf[n:]
		if err := rs.ECC(b, ec[i]); err != nil {
			return nil, err
		}
	}
	return ec, nil
}

// Interleave returns the final codeword sequence: the i-th codeword
// of every data block that has one, for increasing i, followed by
// the error correction codewords interleaved the same way.
func Interleave(data, ec [][]byte) []byte {
	n := 0
	for i := range data {
		n += len(data[i])
	}
	for i := range ec {
		n += len(ec[i])
	}
	seq := make([]byte, 0, n)
	return interleave(interleave(seq, data), ec)
}

// interleave appends the codewords of blocks to dst column by column.
func interleave(dst []byte, blocks [][]byte) []byte {
	for i := 0; ; i++ {
		done := true
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
				done = false
			}
		}
		if done {
			return dst
		}
	}
}
