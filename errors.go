package qrsymbol

import "errors"

var (
	// ErrCapacityExceeded is returned when the encoded payload does not fit in
	// the data codewords of the selected configuration.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidMaskPattern is returned for a mask pattern id outside 0-7.
	ErrInvalidMaskPattern = errors.New("invalid mask pattern")

	// ErrUnencodable is returned when a character has no 8-bit code unit in
	// the selected character set.
	ErrUnencodable = errors.New("unencodable character")

	// ErrUnsupported is returned for a version or error correction level the
	// encoder cannot build.
	ErrUnsupported = errors.New("unsupported configuration")
)
