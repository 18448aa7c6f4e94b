// Package encoder builds QR code symbols from byte-mode payloads.
//
// A symbol is assembled in a fixed order: structural patterns, format
// information, payload codewords with their Reed-Solomon check bytes, and
// finally the masked zig-zag data placement. The default configuration is
// version 2, error correction level L, mask pattern 7.
package encoder

import (
	"fmt"
	"strings"

	qrsymbol "github.com/ericlevine/qrsymbol"
	"github.com/ericlevine/qrsymbol/bitutil"
	"github.com/ericlevine/qrsymbol/charset"
	"github.com/ericlevine/qrsymbol/qrcode/symbol"
	"github.com/ericlevine/qrsymbol/reedsolomon"
)

// Config selects the symbol layout.
type Config struct {
	Version      int
	ECLevel      symbol.ErrorCorrectionLevel
	MaskPattern  int
	CharacterSet string // empty selects ISO-8859-1
}

// DefaultConfig returns version 2, level L, mask 7, ISO-8859-1.
func DefaultConfig() Config {
	return Config{
		Version:      2,
		ECLevel:      symbol.ECLevelL,
		MaskPattern:  7,
		CharacterSet: charset.Default.Name,
	}
}

// resolve checks the configuration and returns its version and mask.
func (c Config) resolve() (*symbol.Version, symbol.DataMaskFunc, error) {
	version, err := symbol.GetVersionForNumber(c.Version)
	if err != nil {
		return nil, nil, err
	}
	if c.ECLevel < symbol.ECLevelL || c.ECLevel > symbol.ECLevelH {
		return nil, nil, fmt.Errorf("%w: error correction level %d", qrsymbol.ErrUnsupported, int(c.ECLevel))
	}
	if n := version.ECBlocksForLevel(c.ECLevel).NumBlocks(); n != 1 {
		return nil, nil, fmt.Errorf("%w: version %d-%s uses %d blocks", qrsymbol.ErrUnsupported, c.Version, c.ECLevel, n)
	}
	mask, err := symbol.MaskFunc(c.MaskPattern)
	if err != nil {
		return nil, nil, err
	}
	return version, mask, nil
}

// Symbol is an encoded QR code. It is immutable once returned.
type Symbol struct {
	config    Config
	version   *symbol.Version
	codewords []byte
	matrix    *ByteMatrix
}

// New encodes content with DefaultConfig.
func New(content string) (*Symbol, error) {
	return Encode(content, DefaultConfig())
}

// Encode converts content to code units with cfg.CharacterSet and encodes
// them.
func Encode(content string, cfg Config) (*Symbol, error) {
	eci, err := charset.GetECIByName(cfg.CharacterSet)
	if err != nil {
		return nil, err
	}
	data, err := eci.Encode(content)
	if err != nil {
		return nil, err
	}
	return EncodeBytes(data, cfg)
}

// EncodeBytes encodes raw byte-mode code units. On error no Symbol is
// returned.
func EncodeBytes(data []byte, cfg Config) (*Symbol, error) {
	version, mask, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	dimension := version.Dimension()
	matrix := NewByteMatrix(dimension, dimension)
	embedBasicPatterns(version, matrix)
	if err := embedFormatInfo(cfg.ECLevel, cfg.MaskPattern, matrix); err != nil {
		return nil, err
	}

	dataBytes, err := encodePayload(data, version, cfg.ECLevel)
	if err != nil {
		return nil, err
	}
	numECBytes := version.ECBlocksForLevel(cfg.ECLevel).ECCodewordsPerBlock
	codewords := generateCodewords(dataBytes, numECBytes)

	if err := embedDataBits(bitutil.NewBitArrayFromBytes(codewords), mask, matrix); err != nil {
		return nil, err
	}
	if err := checkAllPlaced(matrix); err != nil {
		return nil, err
	}

	Logger().Debug("encoded symbol",
		"version", version.Number,
		"level", cfg.ECLevel.String(),
		"mask", cfg.MaskPattern,
		"payload_bytes", len(data),
		"data_codewords", len(dataBytes),
		"ec_codewords", numECBytes)

	return &Symbol{
		config:    cfg,
		version:   version,
		codewords: codewords,
		matrix:    matrix,
	}, nil
}

// checkAllPlaced fails when the version table and the layout disagree, leaving
// cells no pattern or data bit claimed.
func checkAllPlaced(matrix *ByteMatrix) error {
	if n := matrix.CountUnset(); n != 0 {
		return fmt.Errorf("%w: %d modules left unset", qrsymbol.ErrUnsupported, n)
	}
	return nil
}

var rsEncoder = reedsolomon.NewEncoder(reedsolomon.QRCodeField256)

// generateCodewords returns dataBytes followed by numECBytes check bytes.
func generateCodewords(dataBytes []byte, numECBytes int) []byte {
	return rsEncoder.Encode(dataBytes, rsEncoder.Generator(numECBytes))
}

// Size returns the number of modules per side.
func (s *Symbol) Size() int { return s.matrix.Width }

// Module returns the module at column x, row y.
func (s *Symbol) Module(x, y int) Module { return s.matrix.Get(x, y) }

// Dark reports whether the module at column x, row y is dark.
func (s *Symbol) Dark(x, y int) bool { return s.matrix.Get(x, y) == Dark }

// Config returns the configuration the symbol was built with.
func (s *Symbol) Config() Config { return s.config }

// Version returns the symbol version.
func (s *Symbol) Version() *symbol.Version { return s.version }

// Codewords returns a copy of the data and error correction codewords in
// placement order.
func (s *Symbol) Codewords() []byte {
	out := make([]byte, len(s.codewords))
	copy(out, s.codewords)
	return out
}

// ToBitMatrix converts the symbol to a BitMatrix with no quiet zone.
func (s *Symbol) ToBitMatrix() *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrixWithSize(s.matrix.Width, s.matrix.Height)
	for y := 0; y < s.matrix.Height; y++ {
		for x := 0; x < s.matrix.Width; x++ {
			if s.matrix.Get(x, y) == Dark {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// String returns a visual representation of the symbol.
func (s *Symbol) String() string {
	var sb strings.Builder
	sb.Grow(s.matrix.Height * (2*s.matrix.Width + 1))
	for y := 0; y < s.matrix.Height; y++ {
		for x := 0; x < s.matrix.Width; x++ {
			if s.matrix.Get(x, y) == Dark {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
