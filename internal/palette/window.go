// Package palette implements floating tool palettes and the manager that
// arranges them inside the viewport.
package palette

import (
	"math"

	"github.com/example/paintchrome/internal/drag"
	"github.com/example/paintchrome/internal/pointer"
	"github.com/example/paintchrome/internal/pubsub"
)

// Layout constants for palette chrome.
const (
	HeaderHeight     = 20
	ResizeHandleSize = 6
	MinWidth         = 64
	MinHeight        = 32
)

// Region is a part of a palette that reacts to a press.
type Region int

const (
	RegionNone Region = iota
	RegionHeader
	RegionClose
	RegionBody
	RegionResizeVertical
	RegionResizeHorizontal
)

// VisChange reports that a palette was shown or hidden, or asks for it
// when published by a window's close button.
type VisChange struct {
	Name    string
	Window  *Window
	Visible bool
}

// Geometry is a palette's placement in viewport pixels.
type Geometry struct {
	X, Y          int
	Width, Height int
}

// Window is a titled, closable, optionally resizable floating panel. The
// body is an opaque slot positioned by BodyRect.
type Window struct {
	// VisChange fires when the close button is pressed.
	VisChange pubsub.Topic[VisChange]

	Name             string
	Title            string
	ResizeVertical   bool
	ResizeHorizontal bool

	geom    Geometry
	visible bool

	capture drag.Capturer
	session drag.Session
}

// NewWindow returns a visible window with zero geometry.
func NewWindow(name, title string, resizeVertical, resizeHorizontal bool, capture drag.Capturer) *Window {
	return &Window{
		Name:             name,
		Title:            title,
		ResizeVertical:   resizeVertical,
		ResizeHorizontal: resizeHorizontal,
		visible:          true,
		capture:          capture,
	}
}

func (w *Window) X() int             { return w.geom.X }
func (w *Window) Y() int             { return w.geom.Y }
func (w *Window) Width() int         { return w.geom.Width }
func (w *Window) Height() int        { return w.geom.Height }
func (w *Window) Geometry() Geometry { return w.geom }
func (w *Window) Visible() bool      { return w.visible }

func (w *Window) SetLocation(x, y int) {
	w.geom.X = x
	w.geom.Y = y
}

// SetWidth sets the width; negative widths become 0.
func (w *Window) SetWidth(width int) { w.geom.Width = max(width, 0) }

// SetHeight sets the height; negative heights become 0.
func (w *Window) SetHeight(height int) { w.geom.Height = max(height, 0) }

func (w *Window) SetSize(width, height int) {
	w.SetWidth(width)
	w.SetHeight(height)
}

// SetGeometry replaces location and size at once.
func (w *Window) SetGeometry(g Geometry) {
	w.SetLocation(g.X, g.Y)
	w.SetSize(g.Width, g.Height)
}

// BodyRect returns the body slot below the header.
func (w *Window) BodyRect() Geometry {
	return Geometry{
		X:      w.geom.X,
		Y:      w.geom.Y + HeaderHeight,
		Width:  w.geom.Width,
		Height: max(w.geom.Height-HeaderHeight, 0),
	}
}

// CloseRect returns the close button square at the right end of the
// header.
func (w *Window) CloseRect() Geometry {
	size := min(HeaderHeight, w.geom.Width)
	return Geometry{X: w.geom.X + w.geom.Width - size, Y: w.geom.Y, Width: size, Height: size}
}

// Contains reports whether p is over the window.
func (w *Window) Contains(p pointer.Point) bool {
	return w.RegionAt(p) != RegionNone
}

// RegionAt hit-tests p against the window's parts.
func (w *Window) RegionAt(p pointer.Point) Region {
	x, y := p.X-float64(w.geom.X), p.Y-float64(w.geom.Y)
	width, height := float64(w.geom.Width), float64(w.geom.Height)
	if x < 0 || y < 0 || x >= width || y >= height {
		return RegionNone
	}
	if y < HeaderHeight {
		if x >= width-math.Min(HeaderHeight, width) {
			return RegionClose
		}
		return RegionHeader
	}
	if w.ResizeVertical && y >= height-ResizeHandleSize {
		return RegionResizeVertical
	}
	if w.ResizeHorizontal && x >= width-ResizeHandleSize {
		return RegionResizeHorizontal
	}
	return RegionBody
}

// Dragging returns the active drag mode, or drag.None.
func (w *Window) Dragging() drag.Mode { return w.session.Mode() }

// HandlePointer drives the move and resize drags and the close button.
func (w *Window) HandlePointer(e pointer.Event) {
	switch e.Kind {
	case pointer.Press:
		if w.session.Active() {
			return
		}
		switch w.RegionAt(e.Pos) {
		case RegionClose:
			w.VisChange.Publish(VisChange{Name: w.Name, Window: w, Visible: false})
		case RegionHeader:
			offset := e.Pos.Sub(pointer.Point{X: float64(w.geom.X), Y: float64(w.geom.Y)})
			w.session.Begin(w.capture, e.ID, w, offset, drag.Move)
		case RegionResizeVertical:
			w.session.Begin(w.capture, e.ID, w, e.Pos, drag.ResizeVertical)
		case RegionResizeHorizontal:
			w.session.Begin(w.capture, e.ID, w, e.Pos, drag.ResizeHorizontal)
		}
	case pointer.Move:
		if !w.session.Owns(e.ID) {
			return
		}
		switch w.session.Mode() {
		case drag.Move:
			o := w.session.Origin()
			w.SetLocation(round(e.Pos.X-o.X), round(e.Pos.Y-o.Y))
		case drag.ResizeVertical:
			w.SetHeight(max(round(e.Pos.Y)-w.geom.Y, MinHeight))
		case drag.ResizeHorizontal:
			w.SetWidth(max(round(e.Pos.X)-w.geom.X, MinWidth))
		}
	case pointer.Release, pointer.Cancel:
		if w.session.Owns(e.ID) {
			w.session.End()
		}
	}
}

func (w *Window) setVisible(v bool) {
	w.visible = v
	if !v {
		w.session.End()
	}
}

// Close ends any drag in progress.
func (w *Window) Close() {
	w.session.End()
}

func round(v float64) int {
	return int(math.Round(v))
}
