// Package drag implements the exclusive-capture drag lifecycle every
// draggable widget shares.
package drag

import "github.com/example/paintchrome/internal/pointer"

// Mode says what a drag is doing to its widget.
type Mode uint8

const (
	None Mode = iota
	Move
	ResizeVertical
	ResizeHorizontal
	Pick
	Scroll
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Move:
		return "move"
	case ResizeVertical:
		return "resize-vertical"
	case ResizeHorizontal:
		return "resize-horizontal"
	case Pick:
		return "pick"
	case Scroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Capturer is the capture primitive of the input surface.
// *pointer.Router satisfies it.
type Capturer interface {
	Capture(id pointer.ID, h pointer.Handler) bool
	Release(id pointer.ID, h pointer.Handler)
}

// Session is the drag state of one widget. At most one session is active
// per widget; the zero value is idle.
type Session struct {
	active  bool
	id      pointer.ID
	owner   pointer.Handler
	origin  pointer.Point
	mode    Mode
	capture Capturer
}

// Begin starts a drag for pointer id on behalf of h. It is a no-op
// returning false while another drag is active or when the pointer is
// captured elsewhere.
func (s *Session) Begin(c Capturer, id pointer.ID, h pointer.Handler, origin pointer.Point, mode Mode) bool {
	if s.active {
		return false
	}
	if !c.Capture(id, h) {
		return false
	}
	*s = Session{
		active:  true,
		id:      id,
		owner:   h,
		origin:  origin,
		mode:    mode,
		capture: c,
	}
	return true
}

// Owns reports whether an event for id belongs to the active drag.
func (s *Session) Owns(id pointer.ID) bool {
	return s.active && s.id == id
}

// End releases the capture and returns the session to idle.
func (s *Session) End() {
	if !s.active {
		return
	}
	s.capture.Release(s.id, s.owner)
	*s = Session{}
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool { return s.active }

// Mode returns the mode of the active drag, or None.
func (s *Session) Mode() Mode { return s.mode }

// Origin returns the reference point recorded at Begin.
func (s *Session) Origin() pointer.Point { return s.origin }

// SetOrigin moves the reference point, for widgets that apply deltas
// between successive moves.
func (s *Session) SetOrigin(p pointer.Point) {
	if s.active {
		s.origin = p
	}
}
