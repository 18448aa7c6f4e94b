// Package symbol holds the QR code tables shared by the encoder: error
// correction levels, modes, versions, data masks and format information.
package symbol

import (
	"fmt"
	"strings"

	qrsymbol "github.com/ericlevine/qrsymbol"
)

// ErrorCorrectionLevel represents the four QR code error correction levels,
// in order of increasing redundancy.
type ErrorCorrectionLevel int

const (
	ECLevelL ErrorCorrectionLevel = iota // ~7% correction
	ECLevelM                             // ~15% correction
	ECLevelQ                             // ~25% correction
	ECLevelH                             // ~30% correction
)

const ecLevelNames = "LMQH"

// formatBits is indexed by level; the 2-bit field does not follow level order.
var formatBits = [4]int{ECLevelL: 0x01, ECLevelM: 0x00, ECLevelQ: 0x03, ECLevelH: 0x02}

func (ecl ErrorCorrectionLevel) valid() bool {
	return ecl >= ECLevelL && ecl <= ECLevelH
}

// Bits returns the 2-bit encoding of this level in the format information.
// It panics for a level outside L-H.
func (ecl ErrorCorrectionLevel) Bits() int {
	if !ecl.valid() {
		panic(fmt.Sprintf("symbol: invalid error correction level %d", int(ecl)))
	}
	return formatBits[ecl]
}

// Ordinal returns the ordinal position (L=0, M=1, Q=2, H=3).
func (ecl ErrorCorrectionLevel) Ordinal() int {
	return int(ecl)
}

func (ecl ErrorCorrectionLevel) String() string {
	if !ecl.valid() {
		return "?"
	}
	return ecLevelNames[ecl : ecl+1]
}

// ECLevelForBits returns the level whose format field is bits.
func ECLevelForBits(bits int) (ErrorCorrectionLevel, error) {
	for ecl, b := range formatBits {
		if b == bits {
			return ErrorCorrectionLevel(ecl), nil
		}
	}
	return 0, fmt.Errorf("%w: error correction bits %d", qrsymbol.ErrUnsupported, bits)
}

// ParseECLevel parses "L", "M", "Q" or "H", ignoring case.
func ParseECLevel(name string) (ErrorCorrectionLevel, error) {
	if len(name) == 1 {
		if i := strings.Index(ecLevelNames, strings.ToUpper(name)); i >= 0 {
			return ErrorCorrectionLevel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown error correction level %q", qrsymbol.ErrUnsupported, name)
}
