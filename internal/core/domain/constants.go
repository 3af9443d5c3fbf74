package domain

import "errors"

// DefaultMaxDimension is the long edge bound used when none is configured.
const DefaultMaxDimension = 800

var (
	// ErrInputNotFound is returned when the source image does not exist or cannot be read.
	ErrInputNotFound = errors.New("input image not found")
	// ErrProcessing covers every other failure: decoding, resampling, creating directories, encoding and writing.
	ErrProcessing = errors.New("failed to process image")
)
