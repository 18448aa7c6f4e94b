package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qrsymbol "github.com/ericlevine/qrsymbol"
	"github.com/ericlevine/qrsymbol/qrcode/encoder"
	"github.com/ericlevine/qrsymbol/qrcode/symbol"
)

func TestWriterEncode(t *testing.T) {
	w := NewWriter()
	result, err := w.Encode("Hello", 100, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Width())
	assert.Equal(t, 100, result.Height())
}

func TestWriterEncodeMinimumSize(t *testing.T) {
	result, err := NewWriter().Encode("Hello", 0, 0, nil)
	require.NoError(t, err)
	// 25 modules plus a 4-module quiet zone on each side.
	assert.Equal(t, 33, result.Width())
	assert.Equal(t, 33, result.Height())
	assert.False(t, result.Get(0, 0))
	assert.True(t, result.Get(4, 4))
}

func TestWriterEncodeWithOptions(t *testing.T) {
	margin := 1
	mask := 3
	opts := &qrsymbol.EncodeOptions{
		ErrorCorrection: "H",
		Margin:          &margin,
		QRVersion:       1,
		QRMaskPattern:   &mask,
	}
	result, err := NewWriter().Encode("Test", 0, 0, opts)
	require.NoError(t, err)
	assert.Equal(t, 23, result.Width())

	want, err := encoder.Encode("Test", encoder.Config{Version: 1, ECLevel: symbol.ECLevelH, MaskPattern: 3})
	require.NoError(t, err)
	bm := want.ToBitMatrix()
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			require.Equal(t, bm.Get(x, y), result.Get(x+1, y+1), "(%d,%d)", x, y)
		}
	}
}

func TestWriterEncodeErrors(t *testing.T) {
	w := NewWriter()

	_, err := w.Encode("Hello", -1, 10, nil)
	assert.Error(t, err)

	_, err = w.Encode("Hello", 10, 10, &qrsymbol.EncodeOptions{ErrorCorrection: "Z"})
	assert.ErrorIs(t, err, qrsymbol.ErrUnsupported)

	mask := 9
	_, err = w.Encode("Hello", 10, 10, &qrsymbol.EncodeOptions{QRMaskPattern: &mask})
	assert.ErrorIs(t, err, qrsymbol.ErrInvalidMaskPattern)

	_, err = w.Encode("this payload is far too long for version 2-L", 10, 10, nil)
	assert.ErrorIs(t, err, qrsymbol.ErrCapacityExceeded)

	margin := -2
	_, err = w.Encode("Hello", 10, 10, &qrsymbol.EncodeOptions{Margin: &margin})
	assert.Error(t, err)
}

func TestConfigFromOptionsDefaults(t *testing.T) {
	cfg, quietZone, err := ConfigFromOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, encoder.DefaultConfig(), cfg)
	assert.Equal(t, 4, quietZone)

	cfg, _, err = ConfigFromOptions(&qrsymbol.EncodeOptions{CharacterSet: "Cp1252", ErrorCorrection: "m"})
	require.NoError(t, err)
	assert.Equal(t, "Cp1252", cfg.CharacterSet)
	assert.Equal(t, symbol.ECLevelM, cfg.ECLevel)
	assert.Equal(t, 2, cfg.Version)
	assert.Equal(t, 7, cfg.MaskPattern)
}
