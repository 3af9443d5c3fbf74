package converter

import (
	"fmt"
	"image"
	"io"
	"strings"

	"imgresize/internal/core/domain"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/colornames"
	_ "golang.org/x/image/webp" // registers the WebP decoder
)

const DefaultJPEGQuality = 75

// ImagingCodec decodes, resamples and encodes images with the imaging package.
type ImagingCodec struct {
	jpegQuality int
}

func NewImagingCodec(jpegQuality int) *ImagingCodec {
	if jpegQuality < 1 || jpegQuality > 100 {
		log.Warn().Int("jpegQuality", jpegQuality).Int("fallback", DefaultJPEGQuality).
			Msg("jpeg quality out of range, using default")
		jpegQuality = DefaultJPEGQuality
	}

	return &ImagingCodec{jpegQuality: jpegQuality}
}

func (c *ImagingCodec) Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	return img, nil
}

// Resample uses Lanczos, the closest match to the usual "antialias" filter of other imaging toolkits.
func (c *ImagingCodec) Resample(img image.Image, size domain.Dimensions) image.Image {
	log.Debug().Str("size", size.String()).Msg("resampling with lanczos")
	return imaging.Resize(img, size.Width, size.Height, imaging.Lanczos)
}

func (c *ImagingCodec) CheckFormat(path string) error {
	_, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("cannot encode %q: %w", path, err)
	}

	return nil
}

func (c *ImagingCodec) Encode(w io.Writer, img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("cannot encode %q: %w", path, err)
	}

	log.Debug().Str("format", format.String()).Str("path", path).Msg("encoding image")

	err = imaging.Encode(w, img, format, imaging.JPEGQuality(c.jpegQuality))
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", format, err)
	}

	return nil
}

func (c *ImagingCodec) Blank(size domain.Dimensions, color string) (image.Image, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("invalid placeholder size %s", size)
	}

	fill, ok := colornames.Map[strings.ToLower(strings.TrimSpace(color))]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", color)
	}

	return imaging.New(size.Width, size.Height, fill), nil
}
