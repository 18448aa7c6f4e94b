package main

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/ericlevine/qrsymbol/qrcode/encoder"
)

const (
	darkBlock  = "██"
	lightBlock = "  "
)

// jsonSymbol is the JSON form of an encoded symbol. Modules are indexed
// [row][column], true for dark.
type jsonSymbol struct {
	Version int      `json:"version"`
	Level   string   `json:"level"`
	Mask    int      `json:"mask"`
	Size    int      `json:"size"`
	Modules [][]bool `json:"modules"`
}

func writeJSON(w io.Writer, s *encoder.Symbol) error {
	cfg := s.Config()
	out := jsonSymbol{
		Version: s.Version().Number,
		Level:   cfg.ECLevel.String(),
		Mask:    cfg.MaskPattern,
		Size:    s.Size(),
		Modules: make([][]bool, s.Size()),
	}
	for y := range out.Modules {
		row := make([]bool, s.Size())
		for x := range row {
			row[x] = s.Dark(x, y)
		}
		out.Modules[y] = row
	}
	return json.NewEncoder(w).Encode(out)
}

// writeText prints the symbol with its quiet zone, two characters per module.
func writeText(w io.Writer, s *encoder.Symbol, margin int) error {
	bm := encoder.RenderResult(s, 0, 0, margin)
	_, err := io.WriteString(w, bm.StringWithChars(darkBlock, lightBlock))
	return err
}
