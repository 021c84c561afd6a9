// Package scroll implements a scrollbar model: a track with a handle
// sized in proportion to the visible part of the scrolled range.
package scroll

import (
	"github.com/example/paintchrome/internal/drag"
	"github.com/example/paintchrome/internal/pointer"
	"github.com/example/paintchrome/internal/pubsub"
)

// Bar is a horizontal or vertical scrollbar.
//
// The offset stays within [min, max] for every user interaction. Values
// given to SetValues are stored as is.
type Bar struct {
	// ValueChanged carries the new offset after a click, drag or wheel
	// step moved it. SetValues never publishes.
	ValueChanged pubsub.Topic[float64]

	vertical bool
	capture  drag.Capturer

	min, max       float64
	offset         float64
	visibleRange   float64
	blockIncrement float64
	unitIncrement  float64

	origin      pointer.Point
	trackLength float64
	thickness   float64

	adjusting bool
	session   drag.Session
}

// NewBar returns a bar over [0,1] with a block increment of 10 and a unit
// increment of 1.
func NewBar(vertical bool, capture drag.Capturer) *Bar {
	return &Bar{
		vertical:       vertical,
		capture:        capture,
		max:            1,
		visibleRange:   1,
		blockIncrement: 10,
		unitIncrement:  1,
	}
}

// SetValues replaces the model state. It neither clamps nor publishes.
func (b *Bar) SetValues(offset, visibleRange, min, max float64) {
	b.offset = offset
	b.visibleRange = visibleRange
	b.min = min
	b.max = max
}

// SetContent configures the bar to scroll a view of viewLen over content
// of contentLen. The range is [0, contentLen-viewLen], so the offset is the
// content position of the view's leading edge. The visible range is scaled
// into that range so the handle keeps the view's share of the track.
func (b *Bar) SetContent(offset, contentLen, viewLen float64) {
	span := max(contentLen-viewLen, 0)
	visible := 0.0
	if contentLen > 0 {
		visible = min(viewLen, contentLen) * span / contentLen
	}
	b.SetValues(min(max(offset, 0), span), visible, 0, span)
}

func (b *Bar) SetBlockIncrement(n float64) { b.blockIncrement = n }
func (b *Bar) SetUnitIncrement(n float64)  { b.unitIncrement = n }

// SetBounds places the track: origin is its top-left corner in viewport
// coordinates, length runs along the scroll axis and thickness across it.
func (b *Bar) SetBounds(origin pointer.Point, length, thickness float64) {
	b.origin = origin
	b.trackLength = max(length, 0)
	b.thickness = max(thickness, 0)
}

// SetTrackLength changes only the track length.
func (b *Bar) SetTrackLength(length float64) { b.trackLength = max(length, 0) }

func (b *Bar) Vertical() bool            { return b.vertical }
func (b *Bar) Offset() float64           { return b.offset }
func (b *Bar) VisibleRange() float64     { return b.visibleRange }
func (b *Bar) Range() (min, max float64) { return b.min, b.max }
func (b *Bar) Bounds() (origin pointer.Point, length, thickness float64) {
	return b.origin, b.trackLength, b.thickness
}

// ValueIsAdjusting reports whether the handle is being dragged.
func (b *Bar) ValueIsAdjusting() bool { return b.adjusting }

// HandleSize is the handle's length along the track. A zero range or a
// zero track collapses it to 0.
func (b *Bar) HandleSize() float64 {
	span := b.max - b.min
	if span == 0 || b.trackLength == 0 {
		return 0
	}
	return b.visibleRange / span * b.trackLength
}

// HandleOffset is the handle's distance from the start of the track.
func (b *Bar) HandleOffset() float64 {
	span := b.max - b.min
	if span == 0 {
		return 0
	}
	return (b.offset - b.min) / span * (b.trackLength - b.HandleSize())
}

// Contains reports whether p lies on the track.
func (b *Bar) Contains(p pointer.Point) bool {
	along, across := b.local(p)
	return along >= 0 && along < b.trackLength && across >= 0 && across < b.thickness
}

func (b *Bar) local(p pointer.Point) (along, across float64) {
	l := p.Sub(b.origin)
	if b.vertical {
		return l.Y, l.X
	}
	return l.X, l.Y
}

// HandlePointer implements the track click and the handle drag.
func (b *Bar) HandlePointer(e pointer.Event) {
	along, _ := b.local(e.Pos)
	switch e.Kind {
	case pointer.Press:
		if b.session.Active() {
			return
		}
		start := b.HandleOffset()
		if along >= start && along <= start+b.HandleSize() {
			if b.session.Begin(b.capture, e.ID, b, pointer.Point{X: along}, drag.Scroll) {
				b.adjusting = true
			}
			return
		}
		b.clickTrack(along)
	case pointer.Move:
		if b.session.Owns(e.ID) {
			b.dragTo(along)
		}
	case pointer.Release, pointer.Cancel:
		if b.session.Owns(e.ID) {
			b.session.End()
			b.adjusting = false
		}
	}
}

// clickTrack pages one block toward the click.
func (b *Bar) clickTrack(along float64) {
	if along < b.HandleOffset() {
		b.setOffset(b.offset - b.blockIncrement)
	} else {
		b.setOffset(b.offset + b.blockIncrement)
	}
}

func (b *Bar) dragTo(along float64) {
	last := b.session.Origin().X
	b.session.SetOrigin(pointer.Point{X: along})
	span := b.trackLength - b.HandleSize()
	if span == 0 {
		return
	}
	b.setOffset(b.offset + (along-last)*(b.max-b.min)/span)
}

// ScrollUnits moves the offset by n unit increments, as a wheel does.
func (b *Bar) ScrollUnits(n float64) {
	b.setOffset(b.offset + n*b.unitIncrement)
}

func (b *Bar) setOffset(v float64) {
	v = min(max(v, b.min), b.max)
	if v == b.offset {
		return
	}
	b.offset = v
	b.ValueChanged.Publish(v)
}

// Close ends a drag in progress.
func (b *Bar) Close() {
	b.session.End()
	b.adjusting = false
}
