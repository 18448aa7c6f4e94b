package encoder

// Module is the state of one cell of a symbol.
type Module byte

const (
	Light Module = 0
	Dark  Module = 1
	Unset Module = 0xFF // not yet placed
)

// ByteMatrix is a simple 2D module matrix for QR code encoding.
type ByteMatrix struct {
	Data          [][]Module
	Width, Height int
}

// NewByteMatrix creates a new ByteMatrix with every cell Unset.
func NewByteMatrix(width, height int) *ByteMatrix {
	data := make([][]Module, height)
	for i := range data {
		data[i] = make([]Module, width)
	}
	bm := &ByteMatrix{Data: data, Width: width, Height: height}
	bm.Clear(Unset)
	return bm
}

// Get returns the value at (x, y).
func (bm *ByteMatrix) Get(x, y int) Module { return bm.Data[y][x] }

// Set sets the value at (x, y).
func (bm *ByteMatrix) Set(x, y int, value Module) { bm.Data[y][x] = value }

// SetBool sets the value at (x, y) as Dark (true) or Light (false).
func (bm *ByteMatrix) SetBool(x, y int, value bool) {
	if value {
		bm.Data[y][x] = Dark
	} else {
		bm.Data[y][x] = Light
	}
}

// IsUnset reports whether (x, y) has not been placed yet.
func (bm *ByteMatrix) IsUnset(x, y int) bool { return bm.Data[y][x] == Unset }

// Clear fills the matrix with the given value.
func (bm *ByteMatrix) Clear(value Module) {
	for y := range bm.Data {
		for x := range bm.Data[y] {
			bm.Data[y][x] = value
		}
	}
}

// CountUnset returns the number of cells still Unset.
func (bm *ByteMatrix) CountUnset() int {
	n := 0
	for y := range bm.Data {
		for _, m := range bm.Data[y] {
			if m == Unset {
				n++
			}
		}
	}
	return n
}
