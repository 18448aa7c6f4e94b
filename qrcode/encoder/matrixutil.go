package encoder

import (
	"github.com/ericlevine/qrsymbol/qrcode/symbol"
)

const formatInfoBits = 15

// Position detection pattern with its separator, anchored at the top-left
// corner. The other two corners receive mirror images.
var positionDetectionPattern = [8][8]Module{
	{1, 1, 1, 1, 1, 1, 1, 0},
	{1, 0, 0, 0, 0, 0, 1, 0},
	{1, 0, 1, 1, 1, 0, 1, 0},
	{1, 0, 1, 1, 1, 0, 1, 0},
	{1, 0, 1, 1, 1, 0, 1, 0},
	{1, 0, 0, 0, 0, 0, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

// Position adjustment pattern (5x5 alignment pattern)
var positionAdjustmentPattern = [5][5]Module{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// Format information coordinates around the top-left finder, as (x, y),
// indexed by bit position starting from the least significant bit.
var formatInfoCoordinates = [formatInfoBits][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// embedBasicPatterns places finders with separators, alignment patterns and
// timing patterns. Alignment goes before timing so that timing only fills
// what is left.
func embedBasicPatterns(version *symbol.Version, matrix *ByteMatrix) {
	embedPositionDetectionPatterns(matrix)
	if version.Number >= 2 {
		embedPositionAdjustmentPatterns(version, matrix)
	}
	embedTimingPatterns(matrix)
}

func embedPositionDetectionPatterns(matrix *ByteMatrix) {
	last := matrix.Width - 1
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m := positionDetectionPattern[y][x]
			matrix.Set(x, y, m)      // top-left
			matrix.Set(last-x, y, m) // top-right
			matrix.Set(x, last-y, m) // bottom-left
		}
	}
}

func embedPositionAdjustmentPatterns(version *symbol.Version, matrix *ByteMatrix) {
	centers := version.AlignmentPatternCenters
	for _, cy := range centers {
		for _, cx := range centers {
			// Centers inside a finder are already occupied.
			if !matrix.IsUnset(cx, cy) {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					matrix.Set(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(matrix *ByteMatrix) {
	for i := 8; i < matrix.Width-8; i++ {
		bit := Module((i + 1) & 1)
		if matrix.IsUnset(i, 6) {
			matrix.Set(i, 6, bit)
		}
		if matrix.IsUnset(6, i) {
			matrix.Set(6, i, bit)
		}
	}
}

// embedFormatInfo writes both copies of the 15 format bits, least significant
// bit first, and the dark module.
func embedFormatInfo(ecLevel symbol.ErrorCorrectionLevel, maskPattern int, matrix *ByteMatrix) error {
	formatBits, err := symbol.FormatBits(ecLevel, maskPattern)
	if err != nil {
		return err
	}

	for i := 0; i < formatInfoBits; i++ {
		bit := Module((formatBits >> uint(i)) & 1)
		coord := formatInfoCoordinates[i]
		matrix.Set(coord[0], coord[1], bit)

		if i < 8 {
			matrix.Set(matrix.Width-1-i, 8, bit)
		} else {
			matrix.Set(8, matrix.Height-7+(i-8), bit)
		}
	}

	matrix.Set(8, matrix.Height-8, Dark)
	return nil
}

// readFormatInfo collects the two copies of the format bits from a built
// matrix, in the order embedFormatInfo writes them.
func readFormatInfo(matrix *ByteMatrix) (first, second int) {
	for i := 0; i < formatInfoBits; i++ {
		coord := formatInfoCoordinates[i]
		if matrix.Get(coord[0], coord[1]) == Dark {
			first |= 1 << uint(i)
		}
		var m Module
		if i < 8 {
			m = matrix.Get(matrix.Width-1-i, 8)
		} else {
			m = matrix.Get(8, matrix.Height-7+(i-8))
		}
		if m == Dark {
			second |= 1 << uint(i)
		}
	}
	return first, second
}
