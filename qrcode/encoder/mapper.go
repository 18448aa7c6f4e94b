package encoder

import (
	"fmt"

	qrsymbol "github.com/ericlevine/qrsymbol"
	"github.com/ericlevine/qrsymbol/bitutil"
	"github.com/ericlevine/qrsymbol/qrcode/symbol"
)

const timingColumn = 6

// embedDataBits walks the matrix in two-column strips from the bottom-right
// corner, alternating upward and downward, and fills every Unset cell with
// the next data bit XOR the mask. Bits past the end of dataBits are 0.
func embedDataBits(dataBits *bitutil.BitArray, mask symbol.DataMaskFunc, matrix *ByteMatrix) error {
	bitIndex := 0
	direction := -1
	x := matrix.Width - 1
	y := matrix.Height - 1
	for x > 0 {
		if x == timingColumn {
			x--
		}
		for y >= 0 && y < matrix.Height {
			for i := 0; i < 2; i++ {
				xx := x - i
				if !matrix.IsUnset(xx, y) {
					continue
				}
				var bit bool
				if bitIndex < dataBits.Size() {
					bit = dataBits.Get(bitIndex)
					bitIndex++
				}
				if mask(y, xx) {
					bit = !bit
				}
				matrix.SetBool(xx, y, bit)
			}
			y += direction
		}
		direction = -direction
		y += direction
		x -= 2
	}

	if bitIndex != dataBits.Size() {
		return fmt.Errorf("%w: placed %d of %d data bits", qrsymbol.ErrCapacityExceeded, bitIndex, dataBits.Size())
	}
	return nil
}
