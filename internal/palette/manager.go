package palette

import (
	"slices"

	"github.com/example/paintchrome/internal/drag"
	"github.com/example/paintchrome/internal/pointer"
	"github.com/example/paintchrome/internal/pubsub"
)

// Palette names.
const (
	Tool     = "tool"
	Misc     = "misc"
	Stroke   = "stroke"
	Color    = "color"
	Brush    = "brush"
	Layers   = "layers"
	Textures = "textures"
	Swatches = "swatches"
)

// Names lists every palette in creation order.
var Names = []string{Tool, Misc, Stroke, Color, Brush, Layers, Textures, Swatches}

// Arrangement constants.
const (
	rightMargin       = 15
	wideGap           = 5
	narrowGap         = 1
	layersGap         = 2
	layersRoomMin     = 300
	layersMinHeight   = 200
	texturesMaxWidth  = 490
	texturesGap       = 4
	swatchesTolerance = 20
)

// Viewport is the region the palettes live in. It is sampled on every
// arrange and constrain call.
type Viewport interface {
	Size() (width, height int)
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() (width, height int)

func (f ViewportFunc) Size() (int, int) { return f() }

// Spec describes one palette to create.
type Spec struct {
	Name             string
	Title            string
	Width, Height    int
	ResizeVertical   bool
	ResizeHorizontal bool
	Hidden           bool
}

// DefaultSpecs returns the stock palette set.
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: Tool, Title: "Tools", Width: 80, Height: 420},
		{Name: Misc, Title: "Misc", Width: 90, Height: 200},
		{Name: Stroke, Title: "Stroke", Width: 90, Height: 170},
		{Name: Color, Title: "Color", Width: 180, Height: 160},
		{Name: Brush, Title: "Brush", Width: 160, Height: 330},
		{Name: Layers, Title: "Layers", Width: 200, Height: 300, ResizeVertical: true, ResizeHorizontal: true},
		{Name: Textures, Title: "Textures", Width: 400, Height: 150, ResizeHorizontal: true},
		{Name: Swatches, Title: "Swatches", Width: 120, Height: 200, ResizeVertical: true, ResizeHorizontal: true},
	}
}

// Manager owns the fixed set of palettes, their stacking order and the
// show/hide state.
type Manager struct {
	// VisChange fires whenever a palette is shown or hidden.
	VisChange pubsub.Topic[VisChange]

	viewport Viewport
	capture  drag.Capturer
	palettes map[string]*Window
	order    []*Window // bottom to top
	hidden   []string
	cancels  []func()
}

// NewManager creates every named palette. Specs override the defaults by
// name; palettes missing from specs use DefaultSpecs.
func NewManager(vp Viewport, capture drag.Capturer, specs []Spec) *Manager {
	m := &Manager{
		viewport: vp,
		capture:  capture,
		palettes: make(map[string]*Window, len(Names)),
	}
	byName := make(map[string]Spec)
	for _, s := range DefaultSpecs() {
		byName[s.Name] = s
	}
	for _, s := range specs {
		if _, ok := byName[s.Name]; ok {
			byName[s.Name] = s
		}
	}
	for _, name := range Names {
		s := byName[name]
		w := NewWindow(name, s.Title, s.ResizeVertical, s.ResizeHorizontal, capture)
		w.SetSize(s.Width, s.Height)
		w.visible = !s.Hidden
		m.palettes[name] = w
		m.order = append(m.order, w)
		m.cancels = append(m.cancels, w.VisChange.Subscribe(func(vc VisChange) {
			m.ShowPalette(vc.Name, vc.Visible)
		}))
	}
	return m
}

// Palette returns the named palette, or nil.
func (m *Manager) Palette(name string) *Window {
	return m.palettes[name]
}

// Windows returns every palette bottom to top.
func (m *Manager) Windows() []*Window {
	return slices.Clone(m.order)
}

// Visible returns the shown palettes bottom to top.
func (m *Manager) Visible() []*Window {
	var out []*Window
	for _, w := range m.order {
		if w.visible {
			out = append(out, w)
		}
	}
	return out
}

// Hit returns the top-most visible palette under p, or nil.
func (m *Manager) Hit(p pointer.Point) *Window {
	for i := len(m.order) - 1; i >= 0; i-- {
		if w := m.order[i]; w.visible && w.Contains(p) {
			return w
		}
	}
	return nil
}

// Raise moves w to the top of the stacking order.
func (m *Manager) Raise(w *Window) {
	i := slices.Index(m.order, w)
	if i < 0 || i == len(m.order)-1 {
		return
	}
	m.order = append(slices.Delete(m.order, i, i+1), w)
}

// ShowPalette shows or hides a palette by name. Showing raises it.
// Unknown names are ignored.
func (m *Manager) ShowPalette(name string, show bool) {
	w, ok := m.palettes[name]
	if !ok {
		return
	}
	if show {
		m.Raise(w)
	}
	if w.visible == show {
		return
	}
	w.setVisible(show)
	m.VisChange.Publish(VisChange{Name: name, Window: w, Visible: show})
}

// TogglePalettes hides every visible palette and remembers them, or, if
// a previous call hid some, shows exactly those again.
func (m *Manager) TogglePalettes() {
	if len(m.hidden) == 0 {
		for _, w := range m.Visible() {
			m.ShowPalette(w.Name, false)
			m.hidden = append(m.hidden, w.Name)
		}
		return
	}
	hidden := m.hidden
	m.hidden = nil
	for _, name := range hidden {
		m.ShowPalette(name, true)
	}
}

// ForgetToggle drops the set remembered by TogglePalettes, so the next
// toggle hides again. Call it after visibility is set wholesale.
func (m *Manager) ForgetToggle() {
	m.hidden = nil
}

// haveWidthToSpare reports whether the top row of palettes fits side by
// side with room left over.
func (m *Manager) haveWidthToSpare(viewportWidth int) bool {
	p := m.palettes
	return viewportWidth-p[Tool].Width()-p[Misc].Width()-p[Stroke].Width()-p[Color].Width()-p[Brush].Width()-rightMargin > 0
}

func gap(spare bool) int {
	if spare {
		return wideGap
	}
	return narrowGap
}

// ArrangePalettes lays every palette out from scratch. Placement order
// matters: later palettes are positioned relative to earlier ones.
func (m *Manager) ArrangePalettes() {
	width, height := m.viewport.Size()
	p := m.palettes
	spare := m.haveWidthToSpare(width)

	brush, layers := p[Brush], p[Layers]
	brush.SetLocation(width-brush.Width()-rightMargin, 0)

	bottomOfBrush := brush.Y() + brush.Height()
	layersY := bottomOfBrush
	if height-bottomOfBrush > layersRoomMin {
		layersY += layersGap
	}
	layersWidth := brush.Width()
	if spare {
		layersWidth += 30
	}
	layers.SetSize(layersWidth, max(height-layersY, layersMinHeight))
	layers.SetLocation(brush.X()+brush.Width()-layers.Width(), layersY)

	tool, misc, stroke := p[Tool], p[Misc], p[Stroke]
	tool.SetLocation(0, 0)
	misc.SetLocation(tool.X()+tool.Width()+gap(spare), 0)
	if spare {
		stroke.SetLocation(misc.X()+misc.Width()+gap(spare), 0)
	} else {
		stroke.SetLocation(misc.X(), misc.Y()+misc.Height()+1)
	}

	swatches := p[Swatches]
	swatches.SetLocation(brush.X()-swatches.Width()-gap(spare), 0)

	textures, color := p[Textures], p[Color]
	textures.SetWidth(min(layers.X()-textures.X(), texturesMaxWidth))
	textures.SetLocation(color.X()+color.Width()+texturesGap, height-textures.Height())

	color.SetLocation(0, max(tool.Y()+tool.Height(), height-color.Height()))
}

// ConstrainPalettes pulls back palettes that stick more than halfway out
// past the right or bottom edge of the viewport. Palettes less than half
// outside are left where they are.
func (m *Manager) ConstrainPalettes() {
	width, height := m.viewport.Size()
	for _, name := range Names {
		confine(m.palettes[name], width, height)
	}

	p := m.palettes
	brush, swatches := p[Brush], p[Swatches]
	if swatches.X()+swatches.Width() == brush.X()+brush.Width() && abs(swatches.Y()-brush.Y()) < swatchesTolerance {
		swatches.SetLocation(brush.X()-swatches.Width()-gap(m.haveWidthToSpare(width)), 0)
		confine(swatches, width, height)
	}

	layers := p[Layers]
	if layers.Y()+layers.Height() > height {
		layers.SetHeight(max(height-layers.Y(), layersMinHeight))
		confine(layers, width, height)
	}
}

func confine(w *Window, width, height int) {
	if 2*w.X()+w.Width() > 2*width {
		w.SetLocation(width-w.Width(), w.Y())
	}
	if 2*w.Y()+w.Height() > 2*height {
		w.SetLocation(w.X(), height-w.Height())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Close ends every drag and drops the window subscriptions.
func (m *Manager) Close() {
	for _, cancel := range m.cancels {
		cancel()
	}
	m.cancels = nil
	for _, w := range m.order {
		w.Close()
	}
}
