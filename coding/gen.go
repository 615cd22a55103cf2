//go:build ignore

// Gen generates tables.go.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// tables from qrencode-3.1.1/qrspec.c

var capacity = [41]struct {
	words     int
	remainder int
	ec        [4]int
}{
	{0, 0, [4]int{0, 0, 0, 0}},
	{26, 0, [4]int{7, 10, 13, 17}}, // 1
	{44, 7, [4]int{10, 16, 22, 28}},
	{70, 7, [4]int{15, 26, 36, 44}},
	{100, 7, [4]int{20, 36, 52, 64}},
	{134, 7, [4]int{26, 48, 72, 88}}, // 5
	{172, 7, [4]int{36, 64, 96, 112}},
	{196, 0, [4]int{40, 72, 108, 130}},
	{242, 0, [4]int{48, 88, 132, 156}},
	{292, 0, [4]int{60, 110, 160, 192}},
	{346, 0, [4]int{72, 130, 192, 224}}, // 10
	{404, 0, [4]int{80, 150, 224, 264}},
	{466, 0, [4]int{96, 176, 260, 308}},
	{532, 0, [4]int{104, 198, 288, 352}},
	{581, 3, [4]int{120, 216, 320, 384}},
	{655, 3, [4]int{132, 240, 360, 432}}, // 15
	{733, 3, [4]int{144, 280, 408, 480}},
	{815, 3, [4]int{168, 308, 448, 532}},
	{901, 3, [4]int{180, 338, 504, 588}},
	{991, 3, [4]int{196, 364, 546, 650}},
	{1085, 3, [4]int{224, 416, 600, 700}}, // 20
	{1156, 4, [4]int{224, 442, 644, 750}},
	{1258, 4, [4]int{252, 476, 690, 816}},
	{1364, 4, [4]int{270, 504, 750, 900}},
	{1474, 4, [4]int{300, 560, 810, 960}},
	{1588, 4, [4]int{312, 588, 870, 1050}}, // 25
	{1706, 4, [4]int{336, 644, 952, 1110}},
	{1828, 4, [4]int{360, 700, 1020, 1200}},
	{1921, 3, [4]int{390, 728, 1050, 1260}},
	{2051, 3, [4]int{420, 784, 1140, 1350}},
	{2185, 3, [4]int{450, 812, 1200, 1440}}, // 30
	{2323, 3, [4]int{480, 868, 1290, 1530}},
	{2465, 3, [4]int{510, 924, 1350, 1620}},
	{2611, 3, [4]int{540, 980, 1440, 1710}},
	{2761, 3, [4]int{570, 1036, 1530, 1800}},
	{2876, 0, [4]int{570, 1064, 1590, 1890}}, // 35
	{3034, 0, [4]int{600, 1120, 1680, 1980}},
	{3196, 0, [4]int{630, 1204, 1770, 2100}},
	{3362, 0, [4]int{660, 1260, 1860, 2220}},
	{3532, 0, [4]int{720, 1316, 1950, 2310}},
	{3706, 0, [4]int{750, 1372, 2040, 2430}}, // 40
}

var eccTable = [41][4][2]int{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // 1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {2, 0}, {2, 0}},
	{{1, 0}, {2, 0}, {2, 0}, {4, 0}},
	{{1, 0}, {2, 0}, {2, 2}, {2, 2}}, // 5
	{{2, 0}, {4, 0}, {4, 0}, {4, 0}},
	{{2, 0}, {4, 0}, {2, 4}, {4, 1}},
	{{2, 0}, {2, 2}, {4, 2}, {4, 2}},
	{{2, 0}, {3, 2}, {4, 4}, {4, 4}},
	{{2, 2}, {4, 1}, {6, 2}, {6, 2}}, // 10
	{{4, 0}, {1, 4}, {4, 4}, {3, 8}},
	{{2, 2}, {6, 2}, {4, 6}, {7, 4}},
	{{4, 0}, {8, 1}, {8, 4}, {12, 4}},
	{{3, 1}, {4, 5}, {11, 5}, {11, 5}},
	{{5, 1}, {5, 5}, {5, 7}, {11, 7}}, // 15
	{{5, 1}, {7, 3}, {15, 2}, {3, 13}},
	{{1, 5}, {10, 1}, {1, 15}, {2, 17}},
	{{5, 1}, {9, 4}, {17, 1}, {2, 19}},
	{{3, 4}, {3, 11}, {17, 4}, {9, 16}},
	{{3, 5}, {3, 13}, {15, 5}, {15, 10}}, // 20
	{{4, 4}, {17, 0}, {17, 6}, {19, 6}},
	{{2, 7}, {17, 0}, {7, 16}, {34, 0}},
	{{4, 5}, {4, 14}, {11, 14}, {16, 14}},
	{{6, 4}, {6, 14}, {11, 16}, {30, 2}},
	{{8, 4}, {8, 13}, {7, 22}, {22, 13}}, // 25
	{{10, 2}, {19, 4}, {28, 6}, {33, 4}},
	{{8, 4}, {22, 3}, {8, 26}, {12, 28}},
	{{3, 10}, {3, 23}, {4, 31}, {11, 31}},
	{{7, 7}, {21, 7}, {1, 37}, {19, 26}},
	{{5, 10}, {19, 10}, {15, 25}, {23, 25}}, // 30
	{{13, 3}, {2, 29}, {42, 1}, {23, 28}},
	{{17, 0}, {10, 23}, {10, 35}, {19, 35}},
	{{17, 1}, {14, 21}, {29, 19}, {11, 46}},
	{{13, 6}, {14, 23}, {44, 7}, {59, 1}},
	{{12, 7}, {12, 26}, {39, 14}, {22, 41}}, // 35
	{{6, 14}, {6, 34}, {46, 10}, {2, 64}},
	{{17, 4}, {29, 14}, {49, 10}, {24, 46}},
	{{4, 18}, {13, 32}, {48, 14}, {42, 32}},
	{{20, 4}, {40, 7}, {43, 22}, {10, 67}},
	{{19, 6}, {18, 31}, {34, 34}, {20, 61}}, // 40
}

// alignment returns the alignment pattern centres of version v,
// spaced evenly from the bottom right with an uneven gap after 6.
func alignment(v int) []int {
	if v == 1 {
		return nil
	}
	n := v/7 + 2
	step := (v*4 + n*2 + 1) / (n*2 - 2) * 2
	if v == 32 {
		step = 26
	}
	c := make([]int, n)
	c[0] = 6
	for i, pos := n-1, v*4+10; i > 0; i, pos = i-1, pos-step {
		c[i] = pos
	}
	return c
}

// versionInfo returns the 18-bit version information of v:
// 6 data bits followed by a BCH(18,6) remainder.
func versionInfo(v int) uint32 {
	if v < 7 {
		return 0
	}
	const poly = 0x1f25
	rem := uint32(v)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*poly
	}
	return uint32(v)<<12 | rem
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Version table.
var vtab = [MaxVersion + 1]version{
`)
	for v := 1; v <= 40; v++ {
		align := "nil"
		if c := alignment(v); c != nil {
			s := make([]string, len(c))
			for i, x := range c {
				s[i] = strconv.Itoa(x)
			}
			align = "[]int{" + strings.Join(s, ", ") + "}"
		}
		pat := "0"
		if p := versionInfo(v); p != 0 {
			pat = fmt.Sprintf("%#x", p)
		}
		fmt.Fprintf(w, "\t%d: {%s, %d, %d, %s, [4]level{", v, align,
			capacity[v].words, capacity[v].remainder, pat)
		for l := 0; l < 4; l++ {
			if l > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "{%d, %d}",
				eccTable[v][l][0]+eccTable[v][l][1],
				capacity[v].ec[l])
		}
		fmt.Fprintln(w, "}},")
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
