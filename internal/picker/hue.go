package picker

import (
	"math"

	"github.com/example/paintchrome/internal/drag"
	"github.com/example/paintchrome/internal/hsv"
	"github.com/example/paintchrome/internal/pointer"
	"github.com/example/paintchrome/internal/raster"
)

const (
	StripWidth  = 24
	StripHeight = 128
)

// HueTarget receives hues picked on the strip.
type HueTarget interface {
	SetHue(hue int)
}

// HueStrip is the vertical hue gradient beside the field. Its bitmap is
// built once; only the cursor moves afterwards.
type HueStrip struct {
	target  HueTarget
	capture drag.Capturer

	origin        pointer.Point
	width, height int
	bitmap        *raster.Bitmap

	hue        int
	visible    bool
	needsPaint bool

	session drag.Session
	cancels []func()
}

// NewHueStrip builds the strip and subscribes it to the controller. Hues
// picked on the strip go straight to target, not through the controller.
func NewHueStrip(src ColorSource, target HueTarget, capture drag.Capturer, initialHue int) *HueStrip {
	h := &HueStrip{
		target:     target,
		capture:    capture,
		width:      StripWidth,
		height:     StripHeight,
		hue:        initialHue,
		visible:    true,
		needsPaint: true,
	}
	h.makeBitmap()
	h.cancels = append(h.cancels,
		src.OnColorChange(func(c hsv.Color) { h.SetHue(c.Hue()) }),
		src.OnColorModeChange(h.onColorModeChange),
	)
	return h
}

func (h *HueStrip) makeBitmap() {
	h.bitmap = raster.NewBitmap(h.width, h.height, raster.RGBA)
	for y := 0; y < h.height; y++ {
		rgb := hsv.New(HueAt(float64(y), h.height), 255, 255).RGB()
		for x := 0; x < h.width; x++ {
			h.bitmap.SetRGB(x, y, rgb)
		}
	}
}

func (h *HueStrip) onColorModeChange(m hsv.Mode) {
	visible := m != hsv.ModeGreyscale
	if !visible {
		h.session.End()
	}
	if visible != h.visible {
		h.visible = visible
		h.needsPaint = true
	}
}

// SetHue moves the cursor without notifying anyone.
func (h *HueStrip) SetHue(hue int) {
	if hue != h.hue {
		h.hue = hue
		h.needsPaint = true
	}
}

func (h *HueStrip) Hue() int { return h.hue }

// Visible reports whether the strip is shown; it is hidden in greyscale
// mode.
func (h *HueStrip) Visible() bool { return h.visible }

func (h *HueStrip) NeedsPaint() bool { return h.needsPaint }

func (h *HueStrip) SetOrigin(p pointer.Point) { h.origin = p }

func (h *HueStrip) Origin() pointer.Point { return h.origin }

func (h *HueStrip) Size() (w, hgt int) { return h.width, h.height }

// Contains reports whether p is over the visible strip.
func (h *HueStrip) Contains(p pointer.Point) bool {
	if !h.visible {
		return false
	}
	l := p.Sub(h.origin)
	return l.X >= 0 && l.Y >= 0 && l.X < float64(h.width) && l.Y < float64(h.height)
}

// HueAt maps a vertical position in a strip of the given height to a hue
// in [0,359].
func HueAt(y float64, height int) int {
	return clampInt(int(math.Floor(ratio(y*360, float64(height)))), 0, 359)
}

// CursorY returns the cursor row for the current hue.
func (h *HueStrip) CursorY() float64 {
	return float64(h.hue) * float64(h.height) / 360
}

// HandlePointer runs the hue drag the same way the field runs its pick.
func (h *HueStrip) HandlePointer(e pointer.Event) {
	switch e.Kind {
	case pointer.Press:
		if !h.visible {
			return
		}
		if !h.session.Begin(h.capture, e.ID, h, e.Pos, drag.Pick) && !h.session.Owns(e.ID) {
			return
		}
		h.pickAt(e.Pos)
	case pointer.Move:
		if h.session.Owns(e.ID) {
			h.pickAt(e.Pos)
		}
	case pointer.Release, pointer.Cancel:
		if h.session.Owns(e.ID) {
			h.session.End()
		}
	}
}

func (h *HueStrip) pickAt(p pointer.Point) {
	h.Pick(p.Sub(h.origin).Y)
}

// Pick sets the hue from a position local to the strip and hands it to
// the target.
func (h *HueStrip) Pick(y float64) {
	h.SetHue(HueAt(y, h.height))
	if h.target != nil {
		h.target.SetHue(h.hue)
	}
}

// Paint draws the gradient and the cursor line.
func (h *HueStrip) Paint(s Surface) {
	s.WritePixels(h.bitmap)
	y := h.CursorY()
	s.ContrastLine(0, y, float64(h.width), y, cursorWidth)
	h.needsPaint = false
}

func (h *HueStrip) Bitmap() *raster.Bitmap { return h.bitmap }

// Close unsubscribes the strip and ends any drag in progress.
func (h *HueStrip) Close() {
	for _, cancel := range h.cancels {
		cancel()
	}
	h.cancels = nil
	h.session.End()
}
