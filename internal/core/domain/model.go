package domain

import "fmt"

type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// LongEdge returns the larger of width and height.
func (d Dimensions) LongEdge() int {
	return max(d.Width, d.Height)
}

func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// ResizeReport describes a finished resize.
type ResizeReport struct {
	Input    string
	Output   string
	Original Dimensions
	Resized  Dimensions
	Ratio    float64
}

// Placeholder is a solid color image synthesized when the demo input is missing.
type Placeholder struct {
	Size  Dimensions
	Color string
}

var DefaultPlaceholder = Placeholder{
	Size:  Dimensions{Width: 1920, Height: 1080},
	Color: "white",
}
