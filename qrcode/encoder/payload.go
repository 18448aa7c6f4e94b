package encoder

import (
	"fmt"

	qrsymbol "github.com/ericlevine/qrsymbol"
	"github.com/ericlevine/qrsymbol/bitutil"
	"github.com/ericlevine/qrsymbol/qrcode/symbol"
)

// Pad codewords alternate to fill the data segment (1110110000010001).
const (
	padCodeword1 = 0xEC
	padCodeword2 = 0x11
)

// payloadBits builds the byte-mode bit stream for data: mode indicator,
// character count, one 8-bit code unit per byte and a 4-bit terminator.
func payloadBits(data []byte, version *symbol.Version) (*bitutil.BitArray, error) {
	mode := symbol.ModeByte
	countBits := mode.CharacterCountBits(version)
	if len(data) >= 1<<uint(countBits) {
		return nil, fmt.Errorf("%w: %d bytes do not fit a %d-bit count", qrsymbol.ErrCapacityExceeded, len(data), countBits)
	}

	bits := bitutil.NewBitArray(12 + 8*len(data) + 4)
	bits.AppendBits(uint32(mode.Bits()), 4)
	bits.AppendBits(uint32(len(data)), countBits)
	for _, b := range data {
		bits.AppendBits(uint32(b), 8)
	}
	bits.AppendBits(uint32(symbol.ModeTerminator.Bits()), 4)
	return bits, nil
}

// terminateBits pads bits to exactly numDataBytes bytes: zeros to the next
// byte boundary, then the alternating pad codewords.
func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: %d bits > %d", qrsymbol.ErrCapacityExceeded, bits.Size(), capacity)
	}
	for bits.Size()&0x07 != 0 {
		bits.AppendBit(false)
	}
	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i&0x01 == 0 {
			bits.AppendBits(padCodeword1, 8)
		} else {
			bits.AppendBits(padCodeword2, 8)
		}
	}
	if bits.Size() != capacity {
		return fmt.Errorf("encoder: padded to %d bits, want %d", bits.Size(), capacity)
	}
	return nil
}

// encodePayload returns the data codewords for data. Every codeword is
// reduced modulo 255, so a 0xFF byte is carried as 0x00.
func encodePayload(data []byte, version *symbol.Version, ecLevel symbol.ErrorCorrectionLevel) ([]byte, error) {
	bits, err := payloadBits(data, version)
	if err != nil {
		return nil, err
	}
	numDataBytes := version.DataCodewords(ecLevel)
	if err := terminateBits(numDataBytes, bits); err != nil {
		return nil, err
	}
	codewords := bits.Bytes()
	for i, c := range codewords {
		codewords[i] = byte(int(c) % 255)
	}
	return codewords, nil
}
