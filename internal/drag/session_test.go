package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/paintchrome/internal/pointer"
)

type nopHandler struct{ name string }

func (*nopHandler) HandlePointer(pointer.Event) {}

func TestSession_Lifecycle(t *testing.T) {
	r := pointer.NewRouter()
	h := &nopHandler{}
	var s Session

	require.True(t, s.Begin(r, 1, h, pointer.Point{X: 3, Y: 4}, Move))
	assert.True(t, s.Active())
	assert.True(t, s.Owns(1))
	assert.False(t, s.Owns(2))
	assert.Equal(t, Move, s.Mode())
	assert.Equal(t, pointer.Point{X: 3, Y: 4}, s.Origin())
	assert.Equal(t, 1, r.Len())

	s.End()
	assert.False(t, s.Active())
	assert.Equal(t, None, s.Mode())
	assert.Equal(t, 0, r.Len())
}

func TestSession_ReentrantBeginIsNoop(t *testing.T) {
	r := pointer.NewRouter()
	h := &nopHandler{}
	var s Session

	require.True(t, s.Begin(r, 1, h, pointer.Point{}, Pick))
	assert.False(t, s.Begin(r, 2, h, pointer.Point{X: 9}, Move))
	assert.True(t, s.Owns(1))
	assert.Equal(t, Pick, s.Mode())
	assert.Equal(t, 1, r.Len())
}

func TestSession_PointerCapturedElsewhere(t *testing.T) {
	r := pointer.NewRouter()
	other := &nopHandler{name: "other"}
	r.Capture(1, other)

	var s Session
	assert.False(t, s.Begin(r, 1, &nopHandler{}, pointer.Point{}, Move))
	assert.False(t, s.Active())

	captor, _ := r.Captured(1)
	assert.Same(t, other, captor)
}

func TestSession_EndIsIdempotent(t *testing.T) {
	r := pointer.NewRouter()
	var s Session
	assert.NotPanics(t, func() { s.End() })

	s.Begin(r, 1, &nopHandler{}, pointer.Point{}, Scroll)
	s.End()
	s.End()
	assert.Equal(t, 0, r.Len())
}

func TestSession_SetOrigin(t *testing.T) {
	r := pointer.NewRouter()
	var s Session
	s.SetOrigin(pointer.Point{X: 1})
	assert.Equal(t, pointer.Point{}, s.Origin())

	s.Begin(r, 1, &nopHandler{}, pointer.Point{}, Scroll)
	s.SetOrigin(pointer.Point{X: 7})
	assert.Equal(t, pointer.Point{X: 7}, s.Origin())
}
