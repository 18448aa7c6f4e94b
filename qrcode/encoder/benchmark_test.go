package encoder

import (
	"strings"
	"testing"
)

var benchmarkContents = []struct {
	name    string
	content string
}{
	{"Empty", ""},
	{"Hello", "HELLO"},
	{"Full", strings.Repeat("x", 32)},
}

func BenchmarkEncode(b *testing.B) {
	for _, tc := range benchmarkContents {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := New(tc.content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
