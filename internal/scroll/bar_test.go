package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/paintchrome/internal/pointer"
)

func newTestBar(t *testing.T, vertical bool) (*Bar, *pointer.Router, *[]float64) {
	t.Helper()
	router := pointer.NewRouter()
	b := NewBar(vertical, router)
	var changes []float64
	b.ValueChanged.Subscribe(func(v float64) { changes = append(changes, v) })
	return b, router, &changes
}

func press(id pointer.ID, along float64) pointer.Event {
	return pointer.Event{ID: id, Kind: pointer.Press, Pos: pointer.Point{X: along}}
}

func move(id pointer.ID, along float64) pointer.Event {
	return pointer.Event{ID: id, Kind: pointer.Move, Pos: pointer.Point{X: along}}
}

func release(id pointer.ID) pointer.Event {
	return pointer.Event{ID: id, Kind: pointer.Release}
}

func TestBar_HandleGeometryExample(t *testing.T) {
	b, _, _ := newTestBar(t, false)
	b.SetTrackLength(200)
	b.SetValues(0, 50, 0, 100)

	assert.Equal(t, 100.0, b.HandleSize())
	assert.Equal(t, 0.0, b.HandleOffset())

	b.SetValues(50, 50, 0, 100)
	assert.Equal(t, 50.0, b.HandleOffset())
}

func TestBar_HandleGeometryBounds(t *testing.T) {
	b, _, _ := newTestBar(t, true)
	for _, track := range []float64{1, 17, 200, 999} {
		b.SetTrackLength(track)
		for _, tc := range []struct{ offset, visible, min, max float64 }{
			{0, 1, 0, 10},
			{10, 10, 0, 10},
			{5, 2.5, -5, 20},
			{20, 25, -5, 20},
			{-5, 0.001, -5, 20},
		} {
			b.SetValues(tc.offset, tc.visible, tc.min, tc.max)
			size, off := b.HandleSize(), b.HandleOffset()
			assert.Greater(t, size, 0.0)
			assert.LessOrEqual(t, size, track)
			assert.GreaterOrEqual(t, off, 0.0)
			assert.LessOrEqual(t, off, track-size+1e-9)
		}
	}
}

func TestBar_DegenerateGeometry(t *testing.T) {
	b, _, _ := newTestBar(t, false)
	b.SetTrackLength(200)
	b.SetValues(5, 10, 5, 5)
	assert.Equal(t, 0.0, b.HandleSize())
	assert.Equal(t, 0.0, b.HandleOffset())

	b.SetTrackLength(0)
	b.SetValues(5, 10, 0, 100)
	assert.Equal(t, 0.0, b.HandleSize())
	assert.Equal(t, 0.0, b.HandleOffset())
}

func TestBar_SetValuesDoesNotPublish(t *testing.T) {
	b, _, changes := newTestBar(t, false)
	b.SetValues(500, 10, 0, 100)

	assert.Equal(t, 500.0, b.Offset())
	assert.Empty(t, *changes)
}

func TestBar_TrackClick(t *testing.T) {
	b, router, changes := newTestBar(t, false)
	b.SetTrackLength(200)
	b.SetValues(50, 50, 0, 100)
	b.SetBlockIncrement(30)

	// Handle spans [50,150].
	b.HandlePointer(press(1, 10))
	assert.Equal(t, 20.0, b.Offset())
	b.HandlePointer(release(1))

	b.HandlePointer(press(1, 190))
	assert.Equal(t, 50.0, b.Offset())

	assert.Equal(t, []float64{20, 50}, *changes)
	assert.Equal(t, 0, router.Len())
	assert.False(t, b.ValueIsAdjusting())
}

func TestBar_TrackClickClamps(t *testing.T) {
	b, _, changes := newTestBar(t, false)
	b.SetTrackLength(200)
	b.SetValues(95, 50, 0, 100)

	b.HandlePointer(press(1, 0))
	assert.Equal(t, 85.0, b.Offset())

	b.SetValues(95, 50, 0, 100)
	b.HandlePointer(press(1, 199))
	assert.Equal(t, 100.0, b.Offset())

	b.HandlePointer(press(1, 199))
	assert.Equal(t, 100.0, b.Offset())

	assert.Equal(t, []float64{85, 100}, *changes)
}

func TestBar_HandleDrag(t *testing.T) {
	b, router, changes := newTestBar(t, false)
	b.SetTrackLength(200)
	b.SetValues(0, 50, 0, 100)

	var adjustingSeen []bool
	b.ValueChanged.Subscribe(func(float64) { adjustingSeen = append(adjustingSeen, b.ValueIsAdjusting()) })

	b.HandlePointer(press(1, 50))
	require.True(t, b.ValueIsAdjusting())
	require.Equal(t, 1, router.Len())
	assert.Empty(t, *changes)

	b.HandlePointer(move(1, 100))
	assert.Equal(t, 50.0, b.Offset())

	b.HandlePointer(move(1, 1000))
	assert.Equal(t, 100.0, b.Offset())

	b.HandlePointer(move(1, 1100))
	assert.Equal(t, 100.0, b.Offset())

	b.HandlePointer(move(1, -5000))
	assert.Equal(t, 0.0, b.Offset())

	b.HandlePointer(release(1))
	assert.False(t, b.ValueIsAdjusting())
	assert.Equal(t, 0, router.Len())

	assert.Equal(t, []float64{50, 100, 0}, *changes)
	assert.Equal(t, []bool{true, true, true}, adjustingSeen)
}

func TestBar_DragIgnoresOtherPointers(t *testing.T) {
	b, _, changes := newTestBar(t, false)
	b.SetTrackLength(200)
	b.SetValues(0, 50, 0, 100)

	b.HandlePointer(press(1, 10))
	b.HandlePointer(press(2, 190))
	b.HandlePointer(move(2, 150))
	b.HandlePointer(release(2))

	assert.True(t, b.ValueIsAdjusting())
	assert.Empty(t, *changes)
	b.HandlePointer(release(1))
}

func TestBar_DragZeroSpan(t *testing.T) {
	b, _, changes := newTestBar(t, false)
	b.SetTrackLength(200)
	b.SetValues(0, 100, 0, 100)

	b.HandlePointer(press(1, 10))
	b.HandlePointer(move(1, 60))

	assert.Equal(t, 0.0, b.Offset())
	assert.Empty(t, *changes)
}

func TestBar_Vertical(t *testing.T) {
	b, _, _ := newTestBar(t, true)
	b.SetBounds(pointer.Point{X: 300, Y: 20}, 200, 12)
	b.SetValues(0, 50, 0, 100)

	assert.True(t, b.Contains(pointer.Point{X: 305, Y: 210}))
	assert.False(t, b.Contains(pointer.Point{X: 305, Y: 230}))
	assert.False(t, b.Contains(pointer.Point{X: 320, Y: 100}))

	b.HandlePointer(pointer.Event{ID: 1, Kind: pointer.Press, Pos: pointer.Point{X: 305, Y: 200}})
	assert.Equal(t, 10.0, b.Offset())
}

func TestBar_ScrollUnits(t *testing.T) {
	b, _, changes := newTestBar(t, false)
	b.SetValues(0, 10, 0, 20)
	b.SetUnitIncrement(4)

	b.ScrollUnits(3)
	b.ScrollUnits(3)
	b.ScrollUnits(-1)

	assert.Equal(t, 16.0, b.Offset())
	assert.Equal(t, []float64{12, 20, 16}, *changes)
}

func TestBar_SetContent(t *testing.T) {
	b, _, _ := newTestBar(t, false)
	b.SetTrackLength(1000)
	b.SetContent(0, 2048, 1200)

	lo, hi := b.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 848.0, hi)
	assert.InDelta(t, 1200.0/2048*1000, b.HandleSize(), 1e-9, "handle keeps the view's share of the track")
	assert.InDelta(t, 1200.0/2048*848, b.VisibleRange(), 1e-9)

	b.SetContent(5000, 2048, 1200)
	assert.Equal(t, 848.0, b.Offset(), "offset past the end is pulled back")

	b.SetContent(10, 500, 800)
	lo, hi = b.Range()
	assert.Equal(t, 0.0, hi-lo, "content shorter than the view does not scroll")
	assert.Equal(t, 0.0, b.Offset())
	assert.Equal(t, 0.0, b.HandleSize())
}

func TestBar_ContentDragReachesLastView(t *testing.T) {
	b, _, changes := newTestBar(t, false)
	b.SetTrackLength(1000)
	b.SetContent(0, 2048, 1200)
	travel := 1000 - b.HandleSize()

	grab := b.HandleSize() / 2
	b.HandlePointer(press(1, grab))
	b.HandlePointer(move(1, grab+travel/2))
	assert.InDelta(t, 424.0, b.Offset(), 1e-9)
	b.HandlePointer(move(1, grab+travel))
	assert.InDelta(t, 848.0, b.Offset(), 1e-9)
	b.HandlePointer(release(1))
	assert.InDelta(t, travel, b.HandleOffset(), 1e-9, "handle sits at the end of the track")

	// Wheel steps past the end stay there, and the first step back moves.
	b.SetUnitIncrement(16)
	b.ScrollUnits(10)
	assert.Equal(t, 848.0, b.Offset())
	b.ScrollUnits(-1)
	assert.Equal(t, 832.0, b.Offset())
	assert.Equal(t, 832.0, (*changes)[len(*changes)-1])
}
