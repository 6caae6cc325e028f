package configurator

import (
	"fmt"

	"github.com/icykcyber/genbot/internal/domain/common/errorz"
)

const (
	MinAspectIndex = 0
	MaxAspectIndex = 14
	// DefaultAspectIndex points at 1:1, the initial slider position.
	DefaultAspectIndex = 7
	// PreviewMaxSize is the side of the preview box in the configurator.
	PreviewMaxSize = 30.0
)

// AspectRatio is a width:height pair of the ratio table.
type AspectRatio struct {
	Width  int
	Height int
}

// String returns the "w:h" label used by the UI.
func (r AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", r.Width, r.Height)
}

// Dimensions is the size of a preview box.
type Dimensions struct {
	Width  float64
	Height float64
}

// aspectRatios goes from widest landscape through square to tallest portrait.
// The position of every entry is part of the deep link format, do not reorder.
var aspectRatios = [MaxAspectIndex + 1]AspectRatio{
	{2, 1},
	{16, 9},
	{10, 6},
	{3, 2},
	{14, 10},
	{4, 3},
	{5, 4},
	{1, 1},
	{4, 5},
	{3, 4},
	{10, 14},
	{2, 3},
	{6, 10},
	{9, 16},
	{1, 2},
}

// Ratios returns a copy of the ratio table.
func Ratios() []AspectRatio {
	out := make([]AspectRatio, len(aspectRatios))
	copy(out, aspectRatios[:])
	return out
}

// RatioOf returns the ratio at index.
func RatioOf(index int) (AspectRatio, error) {
	if index < MinAspectIndex || index > MaxAspectIndex {
		return AspectRatio{}, fmt.Errorf("%w: %d", errorz.ErrAspectOutOfRange, index)
	}
	return aspectRatios[index], nil
}

// IndexOf looks up the table position of a "w:h" label.
func IndexOf(label string) (int, bool) {
	for i, r := range aspectRatios {
		if r.String() == label {
			return i, true
		}
	}
	return 0, false
}

// ClampAspectIndex forces v into the table bounds.
func ClampAspectIndex(v int) int {
	return clamp(v, MinAspectIndex, MaxAspectIndex)
}

// PreviewDimensions fits the ratio at index into a maxSize square: the larger
// side equals maxSize and the smaller one keeps the exact proportion.
func PreviewDimensions(index int, maxSize float64) (Dimensions, error) {
	ratio, err := RatioOf(index)
	if err != nil {
		return Dimensions{}, err
	}

	w, h := float64(ratio.Width), float64(ratio.Height)
	dims := Dimensions{Width: maxSize, Height: maxSize}
	if w > h {
		dims.Height = maxSize * (h / w)
	} else {
		dims.Width = maxSize * (w / h)
	}
	return dims, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
