package reedsolomon

import (
	"bytes"
	"sync"
	"testing"
)

// generator10 is the QR generator polynomial for 10 EC codewords in log form.
var generator10 = []int{0, 251, 67, 46, 61, 118, 70, 64, 94, 32, 45}

func padded(prefix []byte, total int) []byte {
	data := make([]byte, 0, total)
	data = append(data, prefix...)
	for i := 0; len(data) < total; i++ {
		if i%2 == 0 {
			data = append(data, 0xEC)
		} else {
			data = append(data, 0x11)
		}
	}
	return data
}

// evaluate returns the value of the polynomial with the given coefficients,
// highest degree first, at a.
func evaluate(field *Field, coefficients []int, a int) int {
	result := 0
	for _, c := range coefficients {
		result = AddOrSubtract(field.Multiply(a, result), c)
	}
	return result
}

func TestFieldInverseLaw(t *testing.T) {
	field := QRCodeField256
	for v := 1; v < 256; v++ {
		if got := field.Exp(field.Log(v)); got != v {
			t.Errorf("exp(log(%d)) = %d", v, got)
		}
	}
	for i := 0; i < 255; i++ {
		if got := field.Log(field.Exp(i)); got != i {
			t.Errorf("log(exp(%d)) = %d", i, got)
		}
	}
}

func TestFieldPeriodicity(t *testing.T) {
	field := QRCodeField256
	if field.Exp(255) != 1 || field.Exp(0) != 1 {
		t.Errorf("exp(255) = %d, exp(0) = %d, want 1", field.Exp(255), field.Exp(0))
	}
	if field.expTable[255] != field.expTable[0] {
		t.Error("expTable[255] should equal expTable[0]")
	}
	if got, want := field.Exp(275), field.Exp(20); got != want {
		t.Errorf("exp(275) = %d, want %d", got, want)
	}
	if got, want := field.Exp(-1), field.Exp(254); got != want {
		t.Errorf("exp(-1) = %d, want %d", got, want)
	}
}

func TestFieldKnownValues(t *testing.T) {
	field := QRCodeField256
	tests := []struct{ exp, value int }{
		{0, 1}, {7, 128}, {8, 29}, {9, 58}, {25, 3}, {254, 142},
	}
	for _, tt := range tests {
		if got := field.Exp(tt.exp); got != tt.value {
			t.Errorf("exp(%d) = %d, want %d", tt.exp, got, tt.value)
		}
	}
}

func TestFieldLogZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Log(0) should panic")
		}
	}()
	QRCodeField256.Log(0)
}

func TestFieldMultiply(t *testing.T) {
	field := QRCodeField256
	if field.Multiply(0, 100) != 0 || field.Multiply(100, 0) != 0 {
		t.Error("multiply by 0 should be 0")
	}
	for a := 1; a < 256; a++ {
		if got := field.Multiply(a, 1); got != a {
			t.Errorf("%d * 1 = %d", a, got)
		}
	}
	if AddOrSubtract(42, 42) != 0 {
		t.Error("a XOR a should be 0")
	}
}

func TestGeneratorMatchesTable(t *testing.T) {
	enc := NewEncoder(QRCodeField256)
	got := enc.Generator(10)
	if len(got) != len(generator10) {
		t.Fatalf("len = %d, want %d", len(got), len(generator10))
	}
	for i := range got {
		if got[i] != generator10[i] {
			t.Errorf("generator[%d] = %d, want %d", i, got[i], generator10[i])
		}
	}

	// 7 EC codewords, version 1-L.
	want7 := []int{0, 87, 229, 146, 149, 238, 102, 21}
	got7 := enc.Generator(7)
	for i := range want7 {
		if got7[i] != want7[i] {
			t.Errorf("generator7[%d] = %d, want %d", i, got7[i], want7[i])
		}
	}
}

func TestECBytesHello(t *testing.T) {
	data := padded([]byte{64, 84, 132, 84, 196, 196, 240}, 34)
	want := []byte{167, 10, 22, 19, 125, 12, 178, 129, 193, 14}

	enc := NewEncoder(QRCodeField256)
	got := enc.ECBytes(data, generator10)
	if !bytes.Equal(got, want) {
		t.Errorf("ECBytes = %v, want %v", got, want)
	}
}

func TestECBytesLeadingZero(t *testing.T) {
	// Empty payload: the second data codeword is zero.
	data := padded([]byte{64, 0}, 34)
	want := []byte{32, 59, 20, 123, 162, 217, 98, 105, 215, 147}

	got := NewEncoder(QRCodeField256).ECBytes(data, generator10)
	if !bytes.Equal(got, want) {
		t.Errorf("ECBytes = %v, want %v", got, want)
	}
}

func TestECBytesLength(t *testing.T) {
	enc := NewEncoder(QRCodeField256)
	for _, ec := range []int{7, 10, 13, 17, 26} {
		generator := enc.Generator(ec)
		got := enc.ECBytes([]byte{1, 2, 3, 4, 5}, generator)
		if len(got) != len(generator)-1 {
			t.Errorf("ec=%d: len = %d, want %d", ec, len(got), len(generator)-1)
		}
	}
}

func TestECBytesDeterministic(t *testing.T) {
	enc := NewEncoder(QRCodeField256)
	data := []byte("The quick brown fox jumps over")
	first := enc.ECBytes(data, generator10)
	second := NewEncoder(QRCodeField256).ECBytes(data, generator10)
	if !bytes.Equal(first, second) {
		t.Errorf("EC bytes differ: %v vs %v", first, second)
	}
	if string(data) != "The quick brown fox jumps over" {
		t.Error("input data was modified")
	}
}

func TestECBytesEmpty(t *testing.T) {
	got := NewEncoder(QRCodeField256).ECBytes(nil, generator10)
	if len(got) != 0 {
		t.Errorf("ECBytes(nil) = %v, want empty", got)
	}
	if got := NewEncoder(QRCodeField256).Encode(nil, generator10); len(got) != 0 {
		t.Errorf("Encode(nil) = %v, want empty", got)
	}
}

func TestEncodeProducesCodeword(t *testing.T) {
	field := QRCodeField256
	enc := NewEncoder(field)
	// None of these divisions meets a zero leading term, so the remainder is
	// a textbook Reed-Solomon parity.
	for _, ec := range []int{10, 16} {
		data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17}
		codewords := enc.Encode(data, enc.Generator(ec))
		if !bytes.Equal(codewords[:len(data)], data) {
			t.Fatalf("ec=%d: data prefix changed", ec)
		}
		coefficients := make([]int, len(codewords))
		for i, c := range codewords {
			coefficients[i] = int(c)
		}
		for i := 0; i < ec; i++ {
			if s := evaluate(field, coefficients, field.Exp(i)); s != 0 {
				t.Errorf("ec=%d: syndrome %d = %d, want 0", ec, i, s)
			}
		}
	}
}

func TestPoly(t *testing.T) {
	field := QRCodeField256

	zero := NewPoly(field, []int{0, 0, 0})
	if !zero.IsZero() || len(zero.Coefficients()) != 1 {
		t.Error("leading zeros should collapse to the zero polynomial")
	}

	// p(x) = 2x + 3
	p := NewPoly(field, []int{0, 2, 3})
	if c := p.Coefficients(); len(c) != 2 || c[0] != 2 || c[1] != 3 {
		t.Errorf("coefficients = %v, want [2 3]", c)
	}

	// (x + 1)(x + 1) = x^2 + 1 in characteristic 2
	q := NewPoly(field, []int{1, 1})
	sq := q.MultiplyPoly(q)
	want := []int{1, 0, 1}
	for i, c := range sq.Coefficients() {
		if c != want[i] {
			t.Errorf("coefficient %d = %d, want %d", i, c, want[i])
		}
	}
	if !q.MultiplyPoly(zero).IsZero() {
		t.Error("product with zero should be zero")
	}
}

func TestGeneratorCached(t *testing.T) {
	enc := NewEncoder(QRCodeField256)
	first := enc.buildGenerator(10)
	if len(enc.cachedGenerators) != 11 {
		t.Fatalf("cached %d generators, want 11", len(enc.cachedGenerators))
	}
	if enc.buildGenerator(10) != first {
		t.Error("generator 10 was rebuilt")
	}
	enc.Generator(7)
	if len(enc.cachedGenerators) != 11 {
		t.Errorf("smaller degree grew the cache to %d", len(enc.cachedGenerators))
	}
}

func TestEncoderConcurrentUse(t *testing.T) {
	enc := NewEncoder(QRCodeField256)
	data := padded([]byte{64, 84, 132, 84, 196, 196, 240}, 34)
	want := NewEncoder(QRCodeField256).ECBytes(data, generator10)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(degree int) {
			defer wg.Done()
			enc.Generator(degree)
			if got := enc.ECBytes(data, enc.Generator(10)); !bytes.Equal(got, want) {
				t.Errorf("degree %d: ec bytes = %v, want %v", degree, got, want)
			}
		}(7 + i*2)
	}
	wg.Wait()
}
