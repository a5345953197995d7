package entity

import "errors"

var (
	// Conversion errors
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrDecode            = errors.New("invalid image data")
	ErrTransform         = errors.New("sketch transform failed")
	ErrEncode            = errors.New("failed to encode result image")

	// Upload errors
	ErrFileTooLarge = errors.New("file too large")
)
