// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strings"
)

// A Module is the state of one cell of a QR code.
type Module byte

// Module states.
const (
	Unassigned Module = iota // not yet written
	Light                    // light function pattern module
	Dark                     // dark function pattern module
	LightData                // light data or error correction module
	DarkData                 // dark data or error correction module
	Reserved                 // format information placeholder
)

// IsDark reports whether m is a dark module.
func (m Module) IsDark() bool { return m == Dark || m == DarkData }

// IsFunction reports whether m belongs to a function pattern.
func (m Module) IsFunction() bool { return m == Light || m == Dark }

// IsData reports whether m holds a data or error correction bit.
func (m Module) IsData() bool { return m == LightData || m == DarkData }

func (m Module) String() string {
	if int(m) < len(moduleNames) {
		return moduleNames[m]
	}
	return fmt.Sprintf("Module(%d)", byte(m))
}

var moduleNames = [...]string{
	"unassigned", "light", "dark", "light-data", "dark-data", "reserved",
}

// allowed[from] is the set of states a module in state from may
// change to.
var allowed = [...]uint8{
	Unassigned: 1<<Light | 1<<Dark | 1<<LightData | 1<<DarkData | 1<<Reserved,
	Reserved:   1<<Light | 1<<Dark,
	LightData:  1 << DarkData,
	DarkData:   1 << LightData,
}

// A Grid is a square grid of modules.
type Grid struct {
	size int
	m    []Module
}

// NewGrid returns a size×size grid of Unassigned modules.
func NewGrid(size int) *Grid {
	return &Grid{size: size, m: make([]Module, size*size)}
}

// Size returns the number of modules on a side.
func (g *Grid) Size() int { return g.size }

// At returns the module in column x and row y.  Modules outside the
// grid are Light.
func (g *Grid) At(x, y int) Module {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return Light
	}
	return g.m[y*g.size+x]
}

// Set changes the module in column x and row y to m.  It returns an
// error wrapping ErrInternal if the module is outside the grid or the
// change is not one the construction steps make.
func (g *Grid) Set(x, y int, m Module) error {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return fmt.Errorf("%w: module (%d, %d) outside %d×%d grid",
			ErrInternal, x, y, g.size, g.size)
	}
	p := &g.m[y*g.size+x]
	if int(*p) >= len(allowed) || allowed[*p]>>m&1 == 0 {
		return fmt.Errorf("%w: module (%d, %d) set from %s to %s",
			ErrInternal, x, y, *p, m)
	}
	*p = m
	return nil
}

// setFunction sets a function pattern module.
func (g *Grid) setFunction(x, y int, dark bool) error {
	m := Light
	if dark {
		m = Dark
	}
	return g.Set(x, y, m)
}

// Count returns the number of modules in state m.
func (g *Grid) Count(m Module) int {
	n := 0
	for _, v := range g.m {
		if v == m {
			n++
		}
	}
	return n
}

// Rows returns the modules of g, row by row.
func (g *Grid) Rows() [][]Module {
	rows := make([][]Module, g.size)
	m := append([]Module(nil), g.m...)
	for y := range rows {
		rows[y], m = m[:g.size:g.size], m[g.size:]
	}
	return rows
}

// Clone returns a copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, m: append([]Module(nil), g.m...)}
}

// Equal reports whether g and h hold the same modules.
func (g *Grid) Equal(h *Grid) bool {
	if g.size != h.size {
		return false
	}
	for i, v := range g.m {
		if h.m[i] != v {
			return false
		}
	}
	return true
}

// String returns g as text, one line per row: '#' dark, '.' light,
// '+' dark data, '-' light data, 'r' reserved and '?' unassigned.
func (g *Grid) String() string {
	var s strings.Builder
	s.Grow((g.size + 1) * g.size)
	for i, v := range g.m {
		s.WriteByte("?.#-+r"[v])
		if i%g.size == g.size-1 {
			s.WriteByte('\n')
		}
	}
	return s.String()
}

// A Plan describes the function patterns of a QR code of a specific
// version: the grid with every module not available for data set.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of modules on a side

	// DataBits is the number of modules available for data and
	// error correction codewords and remainder bits.
	DataBits int

	grid *Grid
}

// NewPlan returns a Plan for a QR code with the given version,
// with tables looked up in ref.
func NewPlan(ref Reference, v Version) (*Plan, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w %d", ErrVersion, v)
	}
	siz := ref.SymbolSize(v)
	if siz != v.Size() {
		return nil, fmt.Errorf("%w: version %d symbol size %d",
			ErrVersion, v, siz)
	}
	align, err := ref.AlignmentCenters(v)
	if err != nil {
		return nil, err
	}
	info, err := ref.VersionInfo(v)
	if err != nil {
		return nil, err
	}
	g := NewGrid(siz)
	for _, step := range []func() error{
		g.finders,
		func() error { return g.alignment(align) },
		g.timing,
		func() error { return g.versionInfo(v, info) },
		g.reserveFormat,
	} {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return &Plan{
		Version:  v,
		Size:     siz,
		DataBits: g.Count(Unassigned),
		grid:     g,
	}, nil
}

// Grid returns a copy of the grid of p.
func (p *Plan) Grid() *Grid { return p.grid.Clone() }

// finders draws the three finder patterns with their separators:
// 8×8 boxes in the top left, top right and bottom left corners.
func (g *Grid) finders() error {
	for _, c := range [3][2]int{{3, 3}, {g.size - 4, 3}, {3, g.size - 4}} {
		for dy := -4; dy <= 4; dy++ {
			for dx := -4; dx <= 4; dx++ {
				x, y := c[0]+dx, c[1]+dy
				if x < 0 || x >= g.size || y < 0 || y >= g.size {
					continue
				}
				// rings at distance 0-1 and 3 are dark
				d := max(abs(dx), abs(dy))
				if err := g.setFunction(x, y, d != 2 && d != 4); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// alignment draws alignment patterns centred on every pair of
// centres except those overlapping the finder patterns.
func (g *Grid) alignment(c []int) error {
	last := len(c) - 1
	for i, y := range c {
		for j, x := range c {
			if i == 0 && j == 0 || i == 0 && j == last ||
				i == last && j == 0 {
				continue
			}
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					d := max(abs(dx), abs(dy))
					if err := g.setFunction(x+dx, y+dy, d != 1); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// timing draws the timing patterns in row and column 6 where no
// other pattern has been drawn.
func (g *Grid) timing() error {
	for i := 8; i < g.size-8; i++ {
		for _, c := range [2][2]int{{i, 6}, {6, i}} {
			if g.At(c[0], c[1]) != Unassigned {
				continue
			}
			if err := g.setFunction(c[0], c[1], i&1 == 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// versionInfo draws the two copies of the version information for
// versions 7 and up: bit i in column size-11+i%3, row i/3, and
// transposed.
func (g *Grid) versionInfo(v Version, info uint32) error {
	if v < 7 {
		return nil
	}
	if info>>12 != uint32(v) {
		return fmt.Errorf("%w: version information %#x for version %d",
			ErrVersion, info, v)
	}
	for i := 0; i < 18; i++ {
		a, b := g.size-11+i%3, i/3
		dark := info>>i&1 != 0
		if err := g.setFunction(a, b, dark); err != nil {
			return err
		}
		if err := g.setFunction(b, a, dark); err != nil {
			return err
		}
	}
	return nil
}

// formatPos returns the positions of bit i of the two copies of
// the format information.
func formatPos(size, i int) (x1, y1, x2, y2 int) {
	switch {
	case i < 6:
		x1, y1 = 8, i
	case i < 8:
		x1, y1 = 8, i+1
	case i == 8:
		x1, y1 = 7, 8
	default:
		x1, y1 = 14-i, 8
	}
	if i < 8 {
		x2, y2 = size-1-i, 8
	} else {
		x2, y2 = 8, size-15+i
	}
	return
}

// reserveFormat reserves the modules of both copies of the format
// information and sets the dark module next to the bottom left
// finder pattern.
func (g *Grid) reserveFormat() error {
	for i := 0; i < 15; i++ {
		x1, y1, x2, y2 := formatPos(g.size, i)
		if err := g.Set(x1, y1, Reserved); err != nil {
			return err
		}
		if err := g.Set(x2, y2, Reserved); err != nil {
			return err
		}
	}
	return g.Set(8, g.size-8, Dark)
}
