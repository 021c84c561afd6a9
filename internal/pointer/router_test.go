package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []Event
}

func (r *recorder) HandlePointer(e Event) {
	r.events = append(r.events, e)
}

func TestRouter_CaptureIsExclusive(t *testing.T) {
	r := NewRouter()
	a, b := &recorder{}, &recorder{}

	assert.True(t, r.Capture(1, a))
	assert.True(t, r.Capture(1, a))
	assert.False(t, r.Capture(1, b))
	assert.True(t, r.Capture(2, b))

	owner, ok := r.Captured(1)
	assert.True(t, ok)
	assert.Same(t, a, owner)
}

func TestRouter_DispatchPrefersCapture(t *testing.T) {
	r := NewRouter()
	captor, under := &recorder{}, &recorder{}
	hit := func(Point) Handler { return under }

	r.Capture(1, captor)
	r.Dispatch(Event{ID: 1, Kind: Move, Pos: Point{X: 500}}, hit)
	r.Dispatch(Event{ID: 2, Kind: Move}, hit)

	assert.Len(t, captor.events, 1)
	assert.Len(t, under.events, 1)
	assert.Equal(t, ID(2), under.events[0].ID)
}

func TestRouter_DispatchNilHit(t *testing.T) {
	r := NewRouter()
	assert.NotPanics(t, func() {
		r.Dispatch(Event{ID: 1}, nil)
		r.Dispatch(Event{ID: 1}, func(Point) Handler { return nil })
	})
}

func TestRouter_ReleaseOnlyByOwner(t *testing.T) {
	r := NewRouter()
	a, b := &recorder{}, &recorder{}
	r.Capture(1, a)

	r.Release(1, b)
	assert.Equal(t, 1, r.Len())

	r.Release(1, a)
	assert.Equal(t, 0, r.Len())
}

func TestRouter_CancelNotifiesOwner(t *testing.T) {
	r := NewRouter()
	a := &recorder{}
	r.Capture(3, a)

	r.Cancel(3)
	r.Cancel(3)

	assert.Equal(t, []Event{{ID: 3, Kind: Cancel}}, a.events)
	assert.Equal(t, 0, r.Len())
}

func TestRouter_Forget(t *testing.T) {
	r := NewRouter()
	a, b := &recorder{}, &recorder{}
	r.Capture(1, a)
	r.Capture(2, a)
	r.Capture(3, b)

	r.Forget(a)

	assert.Len(t, a.events, 2)
	assert.Equal(t, 1, r.Len())
	_, ok := r.Captured(3)
	assert.True(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "press", Press.String())
	assert.Equal(t, "cancel", Cancel.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
