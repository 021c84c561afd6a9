// Package controller is the minimal application controller the widgets
// talk to: it owns the current color and color mode and broadcasts
// changes to them.
package controller

import (
	"github.com/example/paintchrome/internal/hsv"
	"github.com/example/paintchrome/internal/pubsub"
)

type Controller struct {
	ColorChange     pubsub.Topic[hsv.Color]
	ColorModeChange pubsub.Topic[hsv.Mode]

	color hsv.Color
	mode  hsv.Mode
}

func New(initial hsv.Color, mode hsv.Mode) *Controller {
	return &Controller{color: initial, mode: mode}
}

// SetCurColor stores a copy of c and broadcasts colorChange.
func (c *Controller) SetCurColor(col hsv.Color) {
	c.color = col
	c.ColorChange.Publish(col)
}

// CurColor returns the current color.
func (c *Controller) CurColor() hsv.Color { return c.color }

// SetColorMode broadcasts colorModeChange. Setting the current mode
// again still broadcasts so late subscribers can resynchronize.
func (c *Controller) SetColorMode(m hsv.Mode) {
	c.mode = m
	c.ColorModeChange.Publish(m)
}

// ColorMode returns the current mode.
func (c *Controller) ColorMode() hsv.Mode { return c.mode }

// ToggleColorMode flips between color and greyscale.
func (c *Controller) ToggleColorMode() {
	if c.mode == hsv.ModeGreyscale {
		c.SetColorMode(hsv.ModeColor)
		return
	}
	c.SetColorMode(hsv.ModeGreyscale)
}

func (c *Controller) OnColorChange(fn func(hsv.Color)) (cancel func()) {
	return c.ColorChange.Subscribe(fn)
}

func (c *Controller) OnColorModeChange(fn func(hsv.Mode)) (cancel func()) {
	return c.ColorModeChange.Subscribe(fn)
}
