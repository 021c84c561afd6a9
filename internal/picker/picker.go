// Package picker implements the two canvas-rendered HSV pickers: a
// saturation/value field and the hue strip that drives the field's hue.
package picker

import (
	"github.com/example/paintchrome/internal/hsv"
	"github.com/example/paintchrome/internal/raster"
)

// ColorSource is the slice of the application controller the pickers use.
type ColorSource interface {
	SetCurColor(c hsv.Color)
	OnColorChange(fn func(hsv.Color)) (cancel func())
	OnColorModeChange(fn func(hsv.Mode)) (cancel func())
}

// Surface is the 2D target a picker paints into. Contrast strokes must
// stay visible over any underlying color (an exclusion-style composite).
type Surface interface {
	WritePixels(b *raster.Bitmap)
	ContrastLine(x0, y0, x1, y1, width float64)
	ContrastCircle(cx, cy, radius, width float64)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// ratio returns n/d, or 0 when d is zero.
func ratio(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}
