package domain

import "fmt"

// ScaleRatio returns the factor that maps the long edge of original onto maxDimension.
func ScaleRatio(original Dimensions, maxDimension int) float64 {
	if original.Width > original.Height {
		return float64(maxDimension) / float64(original.Width)
	}

	return float64(maxDimension) / float64(original.Height)
}

// TargetDimensions scales original so that its long edge equals maxDimension, keeping the aspect ratio.
// The short edge is truncated, never rounded. Integer arithmetic keeps the long edge at exactly
// maxDimension for every input.
func TargetDimensions(original Dimensions, maxDimension int) (Dimensions, error) {
	if !original.Valid() {
		return Dimensions{}, fmt.Errorf("%w: invalid source dimensions %s", ErrProcessing, original)
	}
	if maxDimension <= 0 {
		return Dimensions{}, fmt.Errorf("%w: max dimension must be positive, got %d", ErrProcessing, maxDimension)
	}

	long := int64(original.LongEdge())
	bound := int64(maxDimension)

	target := Dimensions{
		Width:  int(int64(original.Width) * bound / long),
		Height: int(int64(original.Height) * bound / long),
	}

	if !target.Valid() {
		return Dimensions{}, fmt.Errorf("%w: %s scaled to %d collapses to %s", ErrProcessing, original,
			maxDimension, target)
	}

	return target, nil
}
