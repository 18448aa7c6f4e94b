// Package qrsymbol encodes short byte-mode payloads into QR code symbols.
//
// The symbol itself is built by the qrcode/encoder package; qrcode.Writer
// scales it into a BitMatrix for renderers. This package holds the options and
// errors shared by both.
package qrsymbol

// EncodeOptions configures QR symbol encoding.
type EncodeOptions struct {
	// ErrorCorrection specifies the error correction level ("L", "M", "Q", "H").
	ErrorCorrection string

	// CharacterSet names the single-byte character set used for byte mode.
	CharacterSet string

	// Margin specifies the margin (quiet zone) in modules around the symbol.
	Margin *int

	// QRVersion forces a specific QR version (1-5). Zero selects version 2.
	QRVersion int

	// QRMaskPattern forces a specific QR mask pattern (0-7). Nil selects 7.
	QRMaskPattern *int
}
