package port

import (
	"image"
	"io"

	"imgresize/internal/core/domain"
)

type ImageCodec interface {
	// Decode reads an image of any registered format from r.
	Decode(r io.Reader) (image.Image, error)
	// Resample scales img to exactly size using a smoothing filter.
	Resample(img image.Image, size domain.Dimensions) image.Image
	// CheckFormat reports whether an image can be encoded for the extension of path.
	CheckFormat(path string) error
	// Encode writes img to w in the format matching the extension of path.
	Encode(w io.Writer, img image.Image, path string) error
	// Blank returns a solid image of the given size filled with the named color.
	Blank(size domain.Dimensions, color string) (image.Image, error)
}
