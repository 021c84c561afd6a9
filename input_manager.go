package main

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"

	"github.com/example/paintchrome/internal/layout"
	"github.com/example/paintchrome/internal/palette"
	"github.com/example/paintchrome/internal/pointer"
)

// mousePointer is the pointer id of the mouse. Touches use their ebiten
// touch id plus one.
const mousePointer pointer.ID = 0

// InputManager polls ebiten for mouse, touch, wheel and key input and turns
// pointer activity into pointer events for the router.
type InputManager struct {
	lastMouseX, lastMouseY       int
	rightPressedX, rightPressedY int

	touches     map[ebiten.TouchID]pointer.Point
	touchIDs    []ebiten.TouchID
	justTouched []ebiten.TouchID
	untouched   []ebiten.TouchID
}

func NewInputManager() *InputManager {
	return &InputManager{touches: make(map[ebiten.TouchID]pointer.Point)}
}

func touchPointer(id ebiten.TouchID) pointer.ID {
	return pointer.ID(id) + 1
}

func pointAt(x, y int) pointer.Point {
	return pointer.Point{X: float64(x), Y: float64(y)}
}

// hit finds the widget under p: the top-most palette first, with the
// pickers taking presses inside the color palette body, then the
// scrollbars. Pressing a palette raises it.
func (g *Game) hit(p pointer.Point) pointer.Handler {
	if w := g.palettes.Hit(p); w != nil {
		g.palettes.Raise(w)
		if w.Name == palette.Color && w.RegionAt(p) == palette.RegionBody {
			if g.strip.Contains(p) {
				return g.strip
			}
			if g.field.Contains(p) {
				return g.field
			}
		}
		return w
	}
	if g.hbar.Contains(p) {
		return g.hbar
	}
	if g.vbar.Contains(p) {
		return g.vbar
	}
	return nil
}

// dispatch routes an event. Only presses are hit-tested; other events
// reach a widget through its capture or not at all.
func (g *Game) dispatch(id pointer.ID, kind pointer.Kind, p pointer.Point) {
	var hit func(pointer.Point) pointer.Handler
	if kind == pointer.Press {
		hit = g.hit
	}
	g.router.Dispatch(pointer.Event{ID: id, Kind: kind, Pos: p}, hit)
}

// HandlePointers turns the left mouse button and touches into press,
// move and release events.
func (im *InputManager) HandlePointers(g *Game) {
	mx, my := ebiten.CursorPosition()
	mp := pointAt(mx, my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dispatch(mousePointer, pointer.Press, mp)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.dispatch(mousePointer, pointer.Release, mp)
	case mx != im.lastMouseX || my != im.lastMouseY:
		if _, ok := g.router.Captured(mousePointer); ok {
			g.dispatch(mousePointer, pointer.Move, mp)
		}
	}
	im.lastMouseX, im.lastMouseY = mx, my

	im.justTouched = inpututil.AppendJustPressedTouchIDs(im.justTouched[:0])
	for _, id := range im.justTouched {
		x, y := ebiten.TouchPosition(id)
		p := pointAt(x, y)
		im.touches[id] = p
		g.dispatch(touchPointer(id), pointer.Press, p)
	}
	im.touchIDs = ebiten.AppendTouchIDs(im.touchIDs[:0])
	for _, id := range im.touchIDs {
		x, y := ebiten.TouchPosition(id)
		p := pointAt(x, y)
		if last, ok := im.touches[id]; ok && last != p {
			im.touches[id] = p
			g.dispatch(touchPointer(id), pointer.Move, p)
		}
	}
	im.untouched = inpututil.AppendJustReleasedTouchIDs(im.untouched[:0])
	for _, id := range im.untouched {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		delete(im.touches, id)
		g.dispatch(touchPointer(id), pointer.Release, pointAt(x, y))
	}
}

// HandleWheel scrolls the document by unit increments. Shift turns the
// vertical wheel into horizontal scrolling.
func (im *InputManager) HandleWheel(g *Game) {
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		dx, dy = dy, 0
	}
	if dx != 0 && !g.hbar.ValueIsAdjusting() {
		g.hbar.ScrollUnits(-dx)
	}
	if dy != 0 && !g.vbar.ValueIsAdjusting() {
		g.vbar.ScrollUnits(-dy)
	}
}

func (im *InputManager) HandleKeys(g *Game) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.palettes.TogglePalettes()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.ctrl.ToggleColorMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		im.openConfig(g)
	}
}

func (im *InputManager) openConfig(g *Game) {
	path, err := dialog.File().Filter("Config", "yml", "yaml", "toml").Title("Load Config").Load()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			log.Printf("file open failed: %v", err)
		}
		return
	}
	if path == "" {
		return
	}
	absPath, _ := filepath.Abs(path)
	if err := g.loadConfig(absPath); err != nil {
		log.Printf("load config failed: %v", err)
		dialog.Message("%s", err.Error()).Title("Load Config").Error()
		return
	}
	g.ui.Notify("loaded config: %s", filepath.Base(absPath))
}

// HandleContextMenuInput opens the menu on a right click and runs the
// action the menu reports. It returns true while the menu owns the input.
func (im *InputManager) HandleContextMenuInput(g *Game) bool {
	if !g.contextMenu.visible {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			im.rightPressedX, im.rightPressedY = ebiten.CursorPosition()
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
			mx, my := ebiten.CursorPosition()
			if abs(mx-im.rightPressedX) < RightClickSlop && abs(my-im.rightPressedY) < RightClickSlop {
				// The menu is modal: drop whatever the mouse was dragging.
				g.router.Cancel(mousePointer)
				g.contextMenu.Show(mx, my, g.palettes)
				return true
			}
		}
		return false
	}

	action := g.contextMenu.Update()
	switch action.Kind {
	case MenuActionNone:
	case MenuActionTogglePalette:
		w := g.palettes.Palette(action.Palette)
		if w != nil {
			g.palettes.ShowPalette(action.Palette, !w.Visible())
		}
	case MenuActionArrangePalettes:
		g.palettes.ArrangePalettes()
	case MenuActionTogglePalettes:
		g.palettes.TogglePalettes()
	case MenuActionSaveLayout:
		path, err := dialog.File().Filter("YAML", "yml", "yaml").Title("Save Layout As").Save()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				log.Printf("file save failed: %v", err)
			}
			break
		}
		if path == "" {
			break
		}
		absPath, _ := filepath.Abs(path)
		if err := layout.Save(absPath, g.palettes, g.ctrl); err != nil {
			log.Printf("save failed: %v", err)
			g.ui.Notify("failed to save: %s", filepath.Base(absPath))
			break
		}
		g.ui.Notify("saved: %s", filepath.Base(absPath))
	case MenuActionLoadLayout:
		path, err := dialog.File().Filter("YAML", "yml", "yaml").Title("Load Layout").Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				log.Printf("file open failed: %v", err)
			}
			break
		}
		if path == "" {
			break
		}
		absPath, _ := filepath.Abs(path)
		if err := layout.Load(absPath, g.palettes, g.ctrl); err != nil {
			log.Printf("load failed: %v", err)
			g.ui.Notify("failed to load: %s", filepath.Base(absPath))
			break
		}
		g.ui.Notify("loaded: %s", filepath.Base(absPath))
	}
	return true
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
