package picker

import (
	"math"

	"github.com/example/paintchrome/internal/drag"
	"github.com/example/paintchrome/internal/hsv"
	"github.com/example/paintchrome/internal/pointer"
	"github.com/example/paintchrome/internal/raster"
)

// FieldSize is the on-screen side of the saturation/value field in
// device-independent pixels.
const FieldSize = 128

const (
	cursorRadius = 5
	cursorWidth  = 1.5
)

// Field is the square saturation/value picker. Columns run from
// saturation 0 to 255, rows from value 255 down to 0, at the hue of the
// current color.
type Field struct {
	src     ColorSource
	capture drag.Capturer

	origin           pointer.Point
	scale            float64
	width, height    int
	canvasW, canvasH int

	color      hsv.Color
	greyscale  bool
	bitmap     *raster.Bitmap
	dirty      bool
	needsPaint bool

	session drag.Session
	cancels []func()
}

// NewField creates a field for the given device pixel ratio and
// subscribes it to color and mode changes.
func NewField(src ColorSource, capture drag.Capturer, initial hsv.Color, scale float64) *Field {
	if scale <= 0 {
		scale = 1
	}
	f := &Field{
		src:        src,
		capture:    capture,
		scale:      scale,
		width:      FieldSize,
		height:     FieldSize,
		canvasW:    int(math.Round(FieldSize * scale)),
		canvasH:    int(math.Round(FieldSize * scale)),
		color:      initial,
		dirty:      true,
		needsPaint: true,
	}
	f.bitmap = raster.NewBitmap(f.canvasW, f.canvasH, raster.RGBA)
	f.cancels = append(f.cancels,
		src.OnColorChange(f.onColorChange),
		src.OnColorModeChange(f.onColorModeChange),
	)
	return f
}

func (f *Field) onColorChange(c hsv.Color) {
	f.color = c
	f.invalidate()
}

func (f *Field) onColorModeChange(m hsv.Mode) {
	f.greyscale = m == hsv.ModeGreyscale
	f.invalidate()
}

func (f *Field) invalidate() {
	f.dirty = true
	f.needsPaint = true
}

// SetOrigin places the field's top-left corner in viewport coordinates.
func (f *Field) SetOrigin(p pointer.Point) { f.origin = p }

func (f *Field) Origin() pointer.Point { return f.origin }

// Size returns the on-screen size.
func (f *Field) Size() (w, h int) { return f.width, f.height }

// CanvasSize returns the backing bitmap size in device pixels.
func (f *Field) CanvasSize() (w, h int) { return f.canvasW, f.canvasH }

func (f *Field) Scale() float64 { return f.scale }

// Contains reports whether p, in viewport coordinates, is over the field.
func (f *Field) Contains(p pointer.Point) bool {
	l := p.Sub(f.origin)
	return l.X >= 0 && l.Y >= 0 && l.X < float64(f.width) && l.Y < float64(f.height)
}

func (f *Field) Color() hsv.Color { return f.color }

func (f *Field) Greyscale() bool { return f.greyscale }

// Dirty reports whether the bitmap will be rebuilt on the next Paint.
func (f *Field) Dirty() bool { return f.dirty }

// NeedsPaint reports whether anything visible changed since the last Paint.
func (f *Field) NeedsPaint() bool { return f.needsPaint }

// HandlePointer runs the pick drag: a press captures the pointer and
// picks, moves of the same pointer keep picking, a release ends it.
func (f *Field) HandlePointer(e pointer.Event) {
	switch e.Kind {
	case pointer.Press:
		if !f.session.Begin(f.capture, e.ID, f, e.Pos, drag.Pick) && !f.session.Owns(e.ID) {
			return
		}
		f.pickAt(e.Pos)
	case pointer.Move:
		if f.session.Owns(e.ID) {
			f.pickAt(e.Pos)
		}
	case pointer.Release, pointer.Cancel:
		if f.session.Owns(e.ID) {
			f.session.End()
		}
	}
}

func (f *Field) pickAt(p pointer.Point) {
	l := p.Sub(f.origin)
	f.Pick(l.X, l.Y)
}

// Pick sets the color from a position local to the field and publishes
// it through the controller.
func (f *Field) Pick(x, y float64) {
	value := ValueAt(y, f.height)
	if f.greyscale {
		f.color.SetGreyscale(value)
	} else {
		f.color.SetHsv(f.color.Hue(), SaturationAt(x, f.width), value)
	}
	f.needsPaint = true
	f.src.SetCurColor(f.color)
}

// ValueAt maps a vertical position in a picker of the given height to a
// value: 255 at the top, 0 at the bottom row.
func ValueAt(y float64, height int) int {
	return clampInt(255-int(math.Round(ratio(y*255, float64(height-1)))), 0, 255)
}

// SaturationAt maps a horizontal position to a saturation: 0 at the left,
// 255 at the right column.
func SaturationAt(x float64, width int) int {
	return clampInt(int(math.Round(ratio(x*255, float64(width-1)))), 0, 255)
}

// SetHue changes the hue axis of the field, publishing the new color if
// the hue actually changed.
func (f *Field) SetHue(hue int) {
	if f.color.Hue() == hue {
		return
	}
	f.color.SetHue(hue)
	f.invalidate()
	f.src.SetCurColor(f.color)
}

// Cursor returns the cursor center in canvas pixels.
func (f *Field) Cursor() (x, y float64) {
	x = float64(f.color.Saturation()) / 255 * float64(f.canvasW-1)
	y = float64(255-f.color.Value()) / 255 * float64(f.canvasH-1)
	return x, y
}

// Paint draws the field, rebuilding the bitmap first if it is dirty.
func (f *Field) Paint(s Surface) {
	if f.dirty {
		f.makeBitmap()
	}
	s.WritePixels(f.bitmap)

	cx, cy := f.Cursor()
	if f.greyscale {
		s.ContrastLine(0, cy, float64(f.canvasW), cy, cursorWidth*f.scale)
	} else {
		s.ContrastCircle(cx, cy, cursorRadius*f.scale, cursorWidth*f.scale)
	}
	f.needsPaint = false
}

// Bitmap returns the backing bitmap as of the last rebuild.
func (f *Field) Bitmap() *raster.Bitmap { return f.bitmap }

func (f *Field) makeBitmap() {
	col := f.color
	for y := 0; y < f.canvasH; y++ {
		value := 255 - int(math.Round(ratio(float64(y), float64(f.canvasH-1))*255))
		if f.greyscale {
			grey := uint32(value)
			rgb := grey<<16 | grey<<8 | grey
			for x := 0; x < f.canvasW; x++ {
				f.bitmap.SetRGB(x, y, rgb)
			}
			continue
		}
		col.SetValue(value)
		for x := 0; x < f.canvasW; x++ {
			col.SetSaturation(int(math.Round(ratio(float64(x), float64(f.canvasW-1)) * 255)))
			f.bitmap.SetRGB(x, y, col.RGB())
		}
	}
	f.dirty = false
}

// Close unsubscribes the field and ends any drag in progress.
func (f *Field) Close() {
	for _, cancel := range f.cancels {
		cancel()
	}
	f.cancels = nil
	f.session.End()
}
