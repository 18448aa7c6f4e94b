// Package qrcode renders encoded QR symbols into bit matrices.
package qrcode

import (
	"fmt"

	qrsymbol "github.com/ericlevine/qrsymbol"
	"github.com/ericlevine/qrsymbol/bitutil"
	"github.com/ericlevine/qrsymbol/qrcode/encoder"
	"github.com/ericlevine/qrsymbol/qrcode/symbol"
)

const defaultQuietZoneSize = 4

// Writer encodes QR codes.
type Writer struct{}

// NewWriter creates a new QR code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes the given contents into a QR code BitMatrix of at least
// width x height, including the quiet zone.
func (w *Writer) Encode(contents string, width, height int, opts *qrsymbol.EncodeOptions) (*bitutil.BitMatrix, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("requested dimensions are too small: %dx%d", width, height)
	}

	cfg, quietZone, err := ConfigFromOptions(opts)
	if err != nil {
		return nil, err
	}

	code, err := encoder.Encode(contents, cfg)
	if err != nil {
		return nil, err
	}
	return encoder.RenderResult(code, width, height, quietZone), nil
}

// ConfigFromOptions maps EncodeOptions onto an encoder configuration and a
// quiet zone size. Nil options select the defaults.
func ConfigFromOptions(opts *qrsymbol.EncodeOptions) (encoder.Config, int, error) {
	cfg := encoder.DefaultConfig()
	quietZone := defaultQuietZoneSize
	if opts == nil {
		return cfg, quietZone, nil
	}

	if opts.ErrorCorrection != "" {
		ecLevel, err := symbol.ParseECLevel(opts.ErrorCorrection)
		if err != nil {
			return cfg, 0, err
		}
		cfg.ECLevel = ecLevel
	}
	if opts.CharacterSet != "" {
		cfg.CharacterSet = opts.CharacterSet
	}
	if opts.Margin != nil {
		if *opts.Margin < 0 {
			return cfg, 0, fmt.Errorf("negative margin: %d", *opts.Margin)
		}
		quietZone = *opts.Margin
	}
	if opts.QRVersion > 0 {
		cfg.Version = opts.QRVersion
	}
	if opts.QRMaskPattern != nil {
		cfg.MaskPattern = *opts.QRMaskPattern
	}
	return cfg, quietZone, nil
}
