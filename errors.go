package iconbuilder

import "errors"

var (
	ErrInputNotFound     = errors.New("input not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidRamp       = errors.New("invalid color ramp")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrExternalTool      = errors.New("external tool failed")
	ErrPartialWrite      = errors.New("partial write")
)
