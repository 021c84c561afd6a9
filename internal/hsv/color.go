// Package hsv holds the color model shared by the pickers: an integer
// hue/saturation/value triple with a packed RGB form derived on demand.
package hsv

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an HSV color. Hue is in [0,360), saturation and value are in
// [0,255]. Color is a value type: copies never alias.
type Color struct {
	hue        int
	saturation int
	value      int
}

// New returns the color with the given components, clamped into range.
func New(hue, saturation, value int) Color {
	var c Color
	c.SetHsv(hue, saturation, value)
	return c
}

// FromRGB converts a packed 0xRRGGBB color.
func FromRGB(rgb uint32) Color {
	cf := colorful.Color{
		R: float64((rgb>>16)&0xFF) / 255,
		G: float64((rgb>>8)&0xFF) / 255,
		B: float64(rgb&0xFF) / 255,
	}
	h, s, v := cf.Hsv()
	return New(int(math.Round(h)), int(math.Round(s*255)), int(math.Round(v*255)))
}

func (c Color) Hue() int        { return c.hue }
func (c Color) Saturation() int { return c.saturation }
func (c Color) Value() int      { return c.value }

// SetHsv sets all three components.
func (c *Color) SetHsv(hue, saturation, value int) {
	c.SetHue(hue)
	c.SetSaturation(saturation)
	c.SetValue(value)
}

// SetHue wraps hue into [0,360).
func (c *Color) SetHue(hue int) {
	hue %= 360
	if hue < 0 {
		hue += 360
	}
	c.hue = hue
}

func (c *Color) SetSaturation(saturation int) { c.saturation = clampByte(saturation) }
func (c *Color) SetValue(value int)           { c.value = clampByte(value) }

// SetGreyscale makes the color a grey of the given brightness. Hue is kept
// so switching back to color mode restores the previous hue axis.
func (c *Color) SetGreyscale(value int) {
	c.saturation = 0
	c.SetValue(value)
}

// RGB returns the color packed as 0xRRGGBB.
func (c Color) RGB() uint32 {
	r, g, b := colorful.Hsv(float64(c.hue), float64(c.saturation)/255, float64(c.value)/255).RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func clampByte(v int) int {
	return max(0, min(255, v))
}
