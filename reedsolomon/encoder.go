package reedsolomon

import "sync"

// Encoder performs Reed-Solomon encoding. Generator polynomials are cached per
// encoder; an Encoder is safe for concurrent use.
type Encoder struct {
	field *Field

	mu               sync.Mutex
	cachedGenerators []*Poly
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *Field) *Encoder {
	e := &Encoder{
		field:            field,
		cachedGenerators: make([]*Poly, 1),
	}
	e.cachedGenerators[0] = NewPoly(field, []int{1})
	return e
}

func (e *Encoder) buildGenerator(degree int) *Poly {
	e.mu.Lock()
	defer e.mu.Unlock()
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	lastGenerator := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		nextGenerator := lastGenerator.MultiplyPoly(NewPoly(e.field, []int{1, e.field.Exp(d - 1)}))
		e.cachedGenerators = append(e.cachedGenerators, nextGenerator)
		lastGenerator = nextGenerator
	}
	return e.cachedGenerators[degree]
}

// Generator returns the generator polynomial for ecBytes error correction
// codewords in logarithm form, highest degree first. The result has
// ecBytes+1 terms and starts with 0 (α^0 = 1).
func (e *Encoder) Generator(ecBytes int) []int {
	if ecBytes < 1 {
		panic("reedsolomon: no error correction bytes")
	}
	return e.buildGenerator(ecBytes).LogCoefficients()
}

// ECBytes divides the message polynomial formed by data by generator (given in
// logarithm form) and returns the len(generator)-1 remainder bytes. Empty data
// yields no bytes.
//
// A zero leading term of the running remainder is divided as if it were α^0.
// Whenever that happens the result departs from textbook Reed-Solomon;
// existing symbols depend on it.
func (e *Encoder) ECBytes(data []byte, generator []int) []byte {
	if len(generator) == 0 {
		panic("reedsolomon: empty generator")
	}
	numDataBytes := len(data)
	if numDataBytes == 0 {
		return []byte{}
	}
	numECBytes := len(generator) - 1

	remainder := make([]int, numDataBytes+numECBytes)
	for i, b := range data {
		remainder[i] = int(b)
	}
	// lead indexes the highest remaining term; each pass cancels it.
	for lead := 0; lead < numDataBytes; lead++ {
		leadLog := 0
		if remainder[lead] != 0 {
			leadLog = e.field.Log(remainder[lead])
		}
		for j, exponent := range generator {
			remainder[lead+j] = AddOrSubtract(remainder[lead+j], e.field.Exp(exponent+leadLog))
		}
	}

	ecBytes := make([]byte, numECBytes)
	for i := range ecBytes {
		ecBytes[i] = byte(remainder[numDataBytes+i])
	}
	return ecBytes
}

// Encode returns data followed by its error correction bytes.
func (e *Encoder) Encode(data []byte, generator []int) []byte {
	ecBytes := e.ECBytes(data, generator)
	codewords := make([]byte, 0, len(data)+len(ecBytes))
	codewords = append(codewords, data...)
	return append(codewords, ecBytes...)
}
