// Package charset maps character set names to the single-byte encodings that
// can supply QR byte-mode code units.
package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	qrsymbol "github.com/ericlevine/qrsymbol"
)

// ECI represents a Character Set Extended Channel Interpretation whose
// characters each occupy one byte.
type ECI struct {
	Value    int
	Name     string
	Aliases  []string
	encoding encoding.Encoding
}

// pre-defined ECIs
var (
	ECICp437      = &ECI{2, "Cp437", []string{"IBM437"}, charmap.CodePage437}
	ECIISO8859_1  = &ECI{3, "ISO8859_1", []string{"ISO-8859-1", "Latin1"}, charmap.ISO8859_1}
	ECIISO8859_2  = &ECI{4, "ISO8859_2", []string{"ISO-8859-2"}, charmap.ISO8859_2}
	ECIISO8859_3  = &ECI{5, "ISO8859_3", []string{"ISO-8859-3"}, charmap.ISO8859_3}
	ECIISO8859_4  = &ECI{6, "ISO8859_4", []string{"ISO-8859-4"}, charmap.ISO8859_4}
	ECIISO8859_5  = &ECI{7, "ISO8859_5", []string{"ISO-8859-5"}, charmap.ISO8859_5}
	ECIISO8859_6  = &ECI{8, "ISO8859_6", []string{"ISO-8859-6"}, charmap.ISO8859_6}
	ECIISO8859_7  = &ECI{9, "ISO8859_7", []string{"ISO-8859-7"}, charmap.ISO8859_7}
	ECIISO8859_8  = &ECI{10, "ISO8859_8", []string{"ISO-8859-8"}, charmap.ISO8859_8}
	ECIISO8859_9  = &ECI{11, "ISO8859_9", []string{"ISO-8859-9"}, charmap.ISO8859_9}
	ECIISO8859_10 = &ECI{12, "ISO8859_10", []string{"ISO-8859-10"}, charmap.ISO8859_10}
	ECIISO8859_13 = &ECI{15, "ISO8859_13", []string{"ISO-8859-13"}, charmap.ISO8859_13}
	ECIISO8859_14 = &ECI{16, "ISO8859_14", []string{"ISO-8859-14"}, charmap.ISO8859_14}
	ECIISO8859_15 = &ECI{17, "ISO8859_15", []string{"ISO-8859-15"}, charmap.ISO8859_15}
	ECIISO8859_16 = &ECI{18, "ISO8859_16", []string{"ISO-8859-16"}, charmap.ISO8859_16}
	ECICp1250     = &ECI{21, "Cp1250", []string{"windows-1250"}, charmap.Windows1250}
	ECICp1251     = &ECI{22, "Cp1251", []string{"windows-1251"}, charmap.Windows1251}
	ECICp1252     = &ECI{23, "Cp1252", []string{"windows-1252"}, charmap.Windows1252}
	ECICp1256     = &ECI{24, "Cp1256", []string{"windows-1256"}, charmap.Windows1256}
)

// Default is the character set used when none is named.
var Default = ECIISO8859_1

var nameToECI map[string]*ECI

func init() {
	nameToECI = make(map[string]*ECI)

	allECIs := []*ECI{
		ECICp437, ECIISO8859_1, ECIISO8859_2, ECIISO8859_3, ECIISO8859_4,
		ECIISO8859_5, ECIISO8859_6, ECIISO8859_7, ECIISO8859_8, ECIISO8859_9,
		ECIISO8859_10, ECIISO8859_13, ECIISO8859_14, ECIISO8859_15,
		ECIISO8859_16, ECICp1250, ECICp1251, ECICp1252, ECICp1256,
	}
	for _, eci := range allECIs {
		nameToECI[strings.ToUpper(eci.Name)] = eci
		for _, alias := range eci.Aliases {
			nameToECI[strings.ToUpper(alias)] = eci
		}
	}
}

// GetECIByName returns the ECI for the given encoding name, ignoring case.
// The empty name selects Default.
func GetECIByName(name string) (*ECI, error) {
	if name == "" {
		return Default, nil
	}
	eci, ok := nameToECI[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: character set %q", qrsymbol.ErrUnsupported, name)
	}
	return eci, nil
}

// Encode converts content to one byte per character.
func (e *ECI) Encode(content string) ([]byte, error) {
	b, err := e.encoding.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", qrsymbol.ErrUnencodable, e.Name, err)
	}
	return b, nil
}

// String returns the ECI name.
func (e *ECI) String() string {
	return e.Name
}
