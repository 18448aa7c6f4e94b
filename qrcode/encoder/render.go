package encoder

import "github.com/ericlevine/qrsymbol/bitutil"

// RenderResult renders a Symbol to a BitMatrix of at least width x height.
// Each module becomes a square of the largest integer size that leaves room
// for quietZone light modules on every side; the symbol is centred.
func RenderResult(code *Symbol, width, height, quietZone int) *bitutil.BitMatrix {
	size := code.Size()
	span := size + 2*quietZone
	width = max(width, span)
	height = max(height, span)

	scale := min(width/span, height/span)
	left := (width - size*scale) / 2
	top := (height - size*scale) / 2

	output := bitutil.NewBitMatrixWithSize(width, height)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if code.Dark(x, y) {
				output.SetRegion(left+x*scale, top+y*scale, scale, scale)
			}
		}
	}
	return output
}
