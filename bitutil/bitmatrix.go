package bitutil

import (
	"fmt"
	"strings"
)

// BitMatrix is a width x height raster of bits. x is the column and y the
// row, with the origin at the top-left.
type BitMatrix struct {
	width  int
	height int
	stride int // words per row
	words  []uint64
}

// NewBitMatrixWithSize creates a new BitMatrix with the given width and height.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	stride := (width + 63) / 64
	return &BitMatrix{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint64, stride*height),
	}
}

// ParseStringMatrix parses the output of StringWithChars back into a
// BitMatrix. Blank lines are ignored and every row must have the same width.
func ParseStringMatrix(repr, setStr, unsetStr string) (*BitMatrix, error) {
	var rows [][]bool
	for _, line := range strings.Split(strings.ReplaceAll(repr, "\r", ""), "\n") {
		if line == "" {
			continue
		}
		var row []bool
		for len(line) > 0 {
			switch {
			case strings.HasPrefix(line, setStr):
				row = append(row, true)
				line = line[len(setStr):]
			case strings.HasPrefix(line, unsetStr):
				row = append(row, false)
				line = line[len(unsetStr):]
			default:
				return nil, fmt.Errorf("bitmatrix: illegal character in row %d: %q", len(rows), line[:1])
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("bitmatrix: row %d has %d bits, want %d", len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("bitmatrix: empty matrix")
	}

	bm := NewBitMatrixWithSize(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, set := range row {
			if set {
				bm.Set(x, y)
			}
		}
	}
	return bm, nil
}

func (bm *BitMatrix) index(x, y int) (int, uint64) {
	return y*bm.stride + x>>6, 1 << uint(x&0x3f)
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	i, mask := bm.index(x, y)
	return bm.words[i]&mask != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	i, mask := bm.index(x, y)
	bm.words[i] |= mask
}

// SetRegion sets every bit of the width x height rectangle at (left, top).
// The rectangle must lie inside the matrix.
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 || height < 1 || width < 1 ||
		left+width > bm.width || top+height > bm.height {
		panic(fmt.Sprintf("bitmatrix: region %dx%d at (%d,%d) outside %dx%d",
			width, height, left, top, bm.width, bm.height))
	}
	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			bm.Set(x, y)
		}
	}
}

// Width returns the width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height.
func (bm *BitMatrix) Height() int { return bm.height }

// String returns a representation using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns one line per row using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals reports whether both matrices have the same size and bits.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height {
		return false
	}
	for i, w := range bm.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}
