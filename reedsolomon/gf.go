// Package reedsolomon implements Reed-Solomon error correction coding over
// GF(256) for QR code symbols.
package reedsolomon

const (
	fieldSize  = 256
	fieldOrder = fieldSize - 1
)

// Field is GF(256) represented by exponent and logarithm tables.
// Instances are immutable once built.
type Field struct {
	expTable  [fieldSize]int
	logTable  [fieldSize]int
	primitive int
}

// QRCodeField256 is the field used by QR codes: x^8 + x^4 + x^3 + x^2 + 1.
var QRCodeField256 = NewField(0x011D)

// NewField builds GF(256) for the given primitive polynomial.
func NewField(primitive int) *Field {
	f := &Field{primitive: primitive}
	for i := 0; i < 8; i++ {
		f.expTable[i] = 1 << uint(i)
		f.logTable[f.expTable[i]] = i
	}
	for i := 8; i < fieldOrder; i++ {
		x := f.expTable[i-1] << 1
		if x >= fieldSize {
			x ^= primitive
		}
		f.expTable[i] = x
		f.logTable[x] = i
	}
	f.expTable[fieldOrder] = f.expTable[0]
	return f
}

// Mod reduces an exponent into 0..254. Negative exponents wrap.
func Mod(n int) int {
	return (n%fieldOrder + fieldOrder) % fieldOrder
}

// Exp returns α^n for any integer n.
func (f *Field) Exp(n int) int {
	return f.expTable[Mod(n)]
}

// Log returns the discrete logarithm of v for v in 1..255.
func (f *Field) Log(v int) int {
	if v == 0 {
		panic("reedsolomon: log(0)")
	}
	return f.logTable[v]
}

// AddOrSubtract computes a XOR b (addition and subtraction are the same in GF(2^n)).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Multiply returns a * b in this field.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.Exp(f.logTable[a] + f.logTable[b])
}
