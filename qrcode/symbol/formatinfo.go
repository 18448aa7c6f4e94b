package symbol

import "math/bits"

const (
	formatInfoPoly    = 0x537  // x^10 + x^8 + x^5 + x^4 + x^2 + x + 1
	formatInfoMaskQR  = 0x5412 // 101010000010010
	formatInfoBits    = 15
	formatInfoECCBits = 10
)

// FormatInformation encapsulates a QR code's format info (EC level + data mask).
type FormatInformation struct {
	ECLevel  ErrorCorrectionLevel
	DataMask byte
}

// FormatDescriptor returns the 5-bit value protected by the format information.
func FormatDescriptor(ecLevel ErrorCorrectionLevel, maskPattern int) int {
	return (ecLevel.Bits() << 3) | maskPattern
}

// EncodeFormatInformation appends the 10-bit BCH remainder to a 5-bit
// descriptor and applies the format mask, returning 15 bits.
func EncodeFormatInformation(descriptor int) int {
	return ((descriptor << formatInfoECCBits) | calculateBCHCode(descriptor, formatInfoPoly)) ^ formatInfoMaskQR
}

// FormatBits returns the 15 protected format bits for a level and mask.
func FormatBits(ecLevel ErrorCorrectionLevel, maskPattern int) (int, error) {
	if _, err := MaskFunc(maskPattern); err != nil {
		return 0, err
	}
	return EncodeFormatInformation(FormatDescriptor(ecLevel, maskPattern)), nil
}

// calculateBCHCode returns the remainder of value * x^degree(poly) divided by
// poly over GF(2).
func calculateBCHCode(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	return bits.Len(uint(value))
}

var formatInfoDecodeLookup = [][2]int{
	{0x5412, 0x00}, {0x5125, 0x01}, {0x5E7C, 0x02}, {0x5B4B, 0x03},
	{0x45F9, 0x04}, {0x40CE, 0x05}, {0x4F97, 0x06}, {0x4AA0, 0x07},
	{0x77C4, 0x08}, {0x72F3, 0x09}, {0x7DAA, 0x0A}, {0x789D, 0x0B},
	{0x662F, 0x0C}, {0x6318, 0x0D}, {0x6C41, 0x0E}, {0x6976, 0x0F},
	{0x1689, 0x10}, {0x13BE, 0x11}, {0x1CE7, 0x12}, {0x19D0, 0x13},
	{0x0762, 0x14}, {0x0255, 0x15}, {0x0D0C, 0x16}, {0x083B, 0x17},
	{0x355F, 0x18}, {0x3068, 0x19}, {0x3F31, 0x1A}, {0x3A06, 0x1B},
	{0x24B4, 0x1C}, {0x2183, 0x1D}, {0x2EDA, 0x1E}, {0x2BED, 0x1F},
}

func newFormatInformation(descriptor int) *FormatInformation {
	ecLevel, _ := ECLevelForBits((descriptor >> 3) & 0x03)
	return &FormatInformation{
		ECLevel:  ecLevel,
		DataMask: byte(descriptor & 0x07),
	}
}

// DecodeFormatInformation maps 15 masked format bits back to the level and
// mask they protect, tolerating up to 3 bit errors. It returns nil when no
// table entry is close enough.
func DecodeFormatInformation(maskedFormatInfo int) *FormatInformation {
	bestDifference := 32
	bestFormatInfo := 0
	for _, entry := range formatInfoDecodeLookup {
		target := entry[0]
		if target == maskedFormatInfo {
			return newFormatInformation(entry[1])
		}
		bitsDiff := bits.OnesCount(uint(maskedFormatInfo ^ target))
		if bitsDiff < bestDifference {
			bestFormatInfo = entry[1]
			bestDifference = bitsDiff
		}
	}
	if bestDifference <= 3 {
		return newFormatInformation(bestFormatInfo)
	}
	return nil
}
