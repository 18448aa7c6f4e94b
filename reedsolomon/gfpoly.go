package reedsolomon

// Poly represents a polynomial whose coefficients are elements of a Field.
// Instances are immutable.
type Poly struct {
	field        *Field
	coefficients []int
}

// NewPoly creates a new polynomial. Coefficients are ordered from
// highest-degree to lowest-degree; leading zeros are stripped.
func NewPoly(field *Field, coefficients []int) *Poly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	if len(coefficients) > 1 && coefficients[0] == 0 {
		firstNonZero := 1
		for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
			firstNonZero++
		}
		if firstNonZero == len(coefficients) {
			coefficients = []int{0}
		} else {
			newCoeff := make([]int, len(coefficients)-firstNonZero)
			copy(newCoeff, coefficients[firstNonZero:])
			coefficients = newCoeff
		}
	}
	return &Poly{field: field, coefficients: coefficients}
}

// Coefficients returns the polynomial coefficients.
func (p *Poly) Coefficients() []int {
	return p.coefficients
}

// IsZero returns true if this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coefficients[0] == 0
}

// MultiplyPoly multiplies this polynomial by other.
func (p *Poly) MultiplyPoly(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return NewPoly(p.field, []int{0})
	}
	aCoefficients := p.coefficients
	bCoefficients := other.coefficients
	product := make([]int, len(aCoefficients)+len(bCoefficients)-1)
	for i, aCoeff := range aCoefficients {
		for j, bCoeff := range bCoefficients {
			product[i+j] = AddOrSubtract(product[i+j], p.field.Multiply(aCoeff, bCoeff))
		}
	}
	return NewPoly(p.field, product)
}

// LogCoefficients returns the coefficients in logarithm form. The polynomial
// must not have zero coefficients.
func (p *Poly) LogCoefficients() []int {
	exponents := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		exponents[i] = p.field.Log(c)
	}
	return exponents
}
