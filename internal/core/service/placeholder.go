package service

import (
	"fmt"
	"io"

	"imgresize/internal/core/domain"
	"imgresize/internal/core/port"

	"github.com/rs/zerolog/log"
)

// PlaceholderWriter creates stand-in input images for demo runs.
type PlaceholderWriter struct {
	codec port.ImageCodec
	files port.FileStore
}

func NewPlaceholderWriter(codec port.ImageCodec, files port.FileStore) *PlaceholderWriter {
	return &PlaceholderWriter{codec: codec, files: files}
}

// Ensure writes a solid color image to path unless a file is already there. It reports whether it created one.
func (p *PlaceholderWriter) Ensure(path string, placeholder domain.Placeholder) (bool, error) {
	exists, err := p.files.Exists(path)
	if err != nil {
		return false, fmt.Errorf("%w: checking %s: %w", domain.ErrProcessing, path, err)
	}
	if exists {
		log.Debug().Str("path", path).Msg("input present, no placeholder needed")
		return false, nil
	}

	log.Info().Str("path", path).Str("size", placeholder.Size.String()).Str("color", placeholder.Color).
		Msg("input not found, creating placeholder image")

	if err := p.codec.CheckFormat(path); err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrProcessing, err)
	}

	img, err := p.codec.Blank(placeholder.Size, placeholder.Color)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrProcessing, err)
	}

	if err := p.files.EnsureDir(path); err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrProcessing, err)
	}

	err = p.files.WriteAtomic(path, func(w io.Writer) error {
		return p.codec.Encode(w, img, path)
	})
	if err != nil {
		return false, fmt.Errorf("%w: writing placeholder %s: %w", domain.ErrProcessing, path, err)
	}

	log.Info().Str("path", path).Msg("created placeholder image")

	return true, nil
}
