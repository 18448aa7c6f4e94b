// Package bitutil provides the bit buffer used to assemble codewords and the
// bit matrix used to render symbols.
package bitutil

// BitArray is a growable sequence of bits packed most significant bit first
// into bytes, so that bit 0 is the top bit of the first byte. The zero value
// is an empty array ready to use.
type BitArray struct {
	data []byte
	size int
}

// NewBitArray creates an empty BitArray with room for capacity bits.
func NewBitArray(capacity int) *BitArray {
	return &BitArray{data: make([]byte, 0, (capacity+7)/8)}
}

// NewBitArrayFromBytes creates a BitArray holding all bits of b.
func NewBitArrayFromBytes(b []byte) *BitArray {
	data := make([]byte, len(b))
	copy(data, b)
	return &BitArray{data: data, size: len(b) * 8}
}

// Size returns the number of bits.
func (ba *BitArray) Size() int {
	return ba.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (ba *BitArray) SizeInBytes() int {
	return len(ba.data)
}

// Get returns the bit at index i.
func (ba *BitArray) Get(i int) bool {
	if i < 0 || i >= ba.size {
		panic("bitarray: index out of range")
	}
	return ba.data[i>>3]&(0x80>>uint(i&0x07)) != 0
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	if ba.size&0x07 == 0 {
		ba.data = append(ba.data, 0)
	}
	if bit {
		ba.data[ba.size>>3] |= 0x80 >> uint(ba.size&0x07)
	}
	ba.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	for shift := numBits - 1; shift >= 0; shift-- {
		ba.AppendBit(value&(1<<uint(shift)) != 0)
	}
}

// Bytes returns a copy of the packed bits. A trailing partial byte is padded
// with zero bits.
func (ba *BitArray) Bytes() []byte {
	out := make([]byte, len(ba.data))
	copy(out, ba.data)
	return out
}
