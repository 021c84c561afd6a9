// Package pointer models pointer input with per-pointer identity and an
// exclusive capture table. A pointer captured by a handler delivers every
// later event for that id to the handler, whatever is under the pointer,
// until the capture is released or cancelled.
package pointer

// ID identifies one pointer: the mouse or a single touch.
type ID int

// Kind of pointer event.
type Kind uint8

const (
	Press Kind = iota
	Move
	Release
	// Cancel tells a capturing handler it lost the pointer without a
	// release.
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Event is a single pointer event.
type Event struct {
	ID   ID
	Kind Kind
	Pos  Point
}

// Handler receives pointer events.
type Handler interface {
	HandlePointer(e Event)
}
