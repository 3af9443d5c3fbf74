package service

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"imgresize/internal/core/domain"
	"imgresize/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Resizer struct {
	codec port.ImageCodec
	files port.FileStore
}

func NewResizer(codec port.ImageCodec, files port.FileStore) *Resizer {
	return &Resizer{codec: codec, files: files}
}

// Resize scales the image at inputPath so that its long edge equals maxDimension and writes it to
// outputPath, creating missing parent directories. The output format follows the extension of outputPath.
//
// A missing or unreadable input yields domain.ErrInputNotFound; every other failure yields
// domain.ErrProcessing. The output file is either written completely or not at all.
func (r *Resizer) Resize(inputPath, outputPath string, maxDimension int) (domain.ResizeReport, error) {
	l := log.With().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("maxDimension", maxDimension).
		Logger()

	l.Debug().Msg("resizing image")

	report, err := r.resize(inputPath, outputPath, maxDimension)
	if err != nil {
		l.Error().Err(err).Msg("resize failed")
		return domain.ResizeReport{}, err
	}

	l.Info().
		Str("original", report.Original.String()).
		Str("resized", report.Resized.String()).
		Msg("image resized")

	return report, nil
}

func (r *Resizer) resize(inputPath, outputPath string, maxDimension int) (domain.ResizeReport, error) {
	src, err := r.files.Open(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return domain.ResizeReport{}, fmt.Errorf("%w: %s: %w", domain.ErrInputNotFound, inputPath, err)
		}
		return domain.ResizeReport{}, fmt.Errorf("%w: opening %s: %w", domain.ErrProcessing, inputPath, err)
	}
	defer src.Close()

	if err := r.codec.CheckFormat(outputPath); err != nil {
		return domain.ResizeReport{}, fmt.Errorf("%w: %w", domain.ErrProcessing, err)
	}

	img, err := r.codec.Decode(src)
	if err != nil {
		return domain.ResizeReport{}, fmt.Errorf("%w: %s: %w", domain.ErrProcessing, inputPath, err)
	}

	original := domain.Dimensions{Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}

	target, err := domain.TargetDimensions(original, maxDimension)
	if err != nil {
		return domain.ResizeReport{}, err
	}

	resized := r.codec.Resample(img, target)

	if err := r.files.EnsureDir(outputPath); err != nil {
		return domain.ResizeReport{}, fmt.Errorf("%w: %w", domain.ErrProcessing, err)
	}

	err = r.files.WriteAtomic(outputPath, func(w io.Writer) error {
		return r.codec.Encode(w, resized, outputPath)
	})
	if err != nil {
		return domain.ResizeReport{}, fmt.Errorf("%w: writing %s: %w", domain.ErrProcessing, outputPath, err)
	}

	return domain.ResizeReport{
		Input:    inputPath,
		Output:   outputPath,
		Original: original,
		Resized:  target,
		Ratio:    domain.ScaleRatio(original, maxDimension),
	}, nil
}
