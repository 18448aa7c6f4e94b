package symbol

import (
	"fmt"

	qrsymbol "github.com/ericlevine/qrsymbol"
)

// NumMaskPatterns is the number of data mask patterns.
const NumMaskPatterns = 8

// DataMaskFunc reports whether the module at (row, col) is inverted.
type DataMaskFunc func(row, col int) bool

// DataMasks contains the 8 QR code data mask patterns.
var DataMasks = [NumMaskPatterns]DataMaskFunc{
	func(i, j int) bool { return (i+j)%2 == 0 },             // 000
	func(i, j int) bool { return i%2 == 0 },                 // 001
	func(i, j int) bool { return j%3 == 0 },                 // 010
	func(i, j int) bool { return (i+j)%3 == 0 },             // 011
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },         // 100
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },     // 101
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)%2 == 0 }, // 110
	func(i, j int) bool { return ((i*j)%3+(i+j)%2)%2 == 0 }, // 111
}

// MaskFunc returns the data mask for a pattern id.
func MaskFunc(maskPattern int) (DataMaskFunc, error) {
	if !IsValidMaskPattern(maskPattern) {
		return nil, fmt.Errorf("%w: %d", qrsymbol.ErrInvalidMaskPattern, maskPattern)
	}
	return DataMasks[maskPattern], nil
}

// IsValidMaskPattern reports whether maskPattern is in 0-7.
func IsValidMaskPattern(maskPattern int) bool {
	return maskPattern >= 0 && maskPattern < NumMaskPatterns
}
