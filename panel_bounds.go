package main

import (
	"github.com/example/paintchrome/internal/palette"
	"github.com/example/paintchrome/internal/picker"
	"github.com/example/paintchrome/internal/pointer"
)

// Rect is an on-screen rectangle in logical pixels.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func rectOf(g palette.Geometry) Rect {
	return Rect{X: g.X, Y: g.Y, W: g.Width, H: g.Height}
}

// PickerBounds places the saturation/value field and the hue strip inside
// the color palette's body: field at the top left, strip to its right.
type PickerBounds struct {
	Field Rect
	Strip Rect
}

func pickerBounds(body palette.Geometry) PickerBounds {
	fx := body.X + PaletteInnerPad
	fy := body.Y + PaletteInnerPad
	return PickerBounds{
		Field: Rect{X: fx, Y: fy, W: picker.FieldSize, H: picker.FieldSize},
		Strip: Rect{X: fx + picker.FieldSize + PickerGap, Y: fy, W: picker.StripWidth, H: picker.StripHeight},
	}
}

func (r Rect) origin() pointer.Point {
	return pointer.Point{X: float64(r.X), Y: float64(r.Y)}
}

// ScreenLayout splits the window into the document view and the two
// scrollbars along its right and bottom edges.
type ScreenLayout struct {
	View Rect
	HBar Rect
	VBar Rect
	HUD  Rect
}

func screenLayout(w, h int) ScreenLayout {
	viewW := max(w-ScrollThickness, 0)
	viewH := max(h-ScrollThickness-HUDHeight, 0)
	return ScreenLayout{
		View: Rect{X: 0, Y: 0, W: viewW, H: viewH},
		HBar: Rect{X: 0, Y: viewH, W: viewW, H: ScrollThickness},
		VBar: Rect{X: viewW, Y: 0, W: ScrollThickness, H: viewH},
		HUD:  Rect{X: 0, Y: viewH + ScrollThickness, W: w, H: HUDHeight},
	}
}
