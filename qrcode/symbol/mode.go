package symbol

// Mode represents a QR code data encoding mode indicator.
type Mode int

const (
	ModeTerminator Mode = 0x00
	ModeByte       Mode = 0x04
)

// CharacterCountBits returns the number of bits used to encode the character
// count for this mode in the given version.
func (m Mode) CharacterCountBits(version *Version) int {
	if m != ModeByte {
		return 0
	}
	if version.Number <= 9 {
		return 8
	}
	return 16
}

// Bits returns the 4-bit encoding of this mode.
func (m Mode) Bits() int {
	return int(m)
}
