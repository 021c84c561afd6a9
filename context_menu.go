package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"github.com/example/paintchrome/internal/palette"
)

// MenuActionKind describes what was selected in the context menu
type MenuActionKind int

const (
	MenuActionNone MenuActionKind = iota
	MenuActionTogglePalette
	MenuActionArrangePalettes
	MenuActionTogglePalettes
	MenuActionSaveLayout
	MenuActionLoadLayout
)

// MenuAction is a selected entry. Palette names the palette for
// MenuActionTogglePalette.
type MenuAction struct {
	Kind    MenuActionKind
	Palette string
}

type menuItem struct {
	label     string
	action    MenuAction
	separator bool // draw a rule above the item
}

// ContextMenu is the right-click menu: one entry per palette showing its
// visibility, then the layout commands.
type ContextMenu struct {
	visible  bool
	x, y     int
	items    []menuItem
	selected int
}

func NewContextMenu() *ContextMenu {
	return &ContextMenu{selected: -1}
}

// Show opens the menu at (x, y), listing the palettes as they are now.
func (cm *ContextMenu) Show(x, y int, m *palette.Manager) {
	cm.items = cm.items[:0]
	for _, name := range palette.Names {
		w := m.Palette(name)
		mark := "[ ] "
		if w.Visible() {
			mark = "[x] "
		}
		cm.items = append(cm.items, menuItem{
			label:  mark + w.Title,
			action: MenuAction{Kind: MenuActionTogglePalette, Palette: name},
		})
	}
	cm.items = append(cm.items,
		menuItem{label: "Arrange palettes", action: MenuAction{Kind: MenuActionArrangePalettes}, separator: true},
		menuItem{label: "Toggle palettes", action: MenuAction{Kind: MenuActionTogglePalettes}},
		menuItem{label: "Save layout...", action: MenuAction{Kind: MenuActionSaveLayout}, separator: true},
		menuItem{label: "Load layout...", action: MenuAction{Kind: MenuActionLoadLayout}},
	)
	cm.visible = true
	cm.x = x
	cm.y = y
	cm.selected = -1
}

func (cm *ContextMenu) Hide() {
	cm.visible = false
	cm.selected = -1
}

func (cm *ContextMenu) bounds() Rect {
	return Rect{X: cm.x, Y: cm.y, W: MenuWidth, H: MenuItemHeight * len(cm.items)}
}

// Update returns the action for any selection triggered, and may hide
// the menu as part of its behavior.
func (cm *ContextMenu) Update() MenuAction {
	if !cm.visible {
		return MenuAction{}
	}

	mx, my := ebiten.CursorPosition()
	if cm.bounds().Contains(mx, my) {
		cm.selected = (my - cm.y) / MenuItemHeight
	} else {
		cm.selected = -1
	}

	// left click selects or closes
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		selected := cm.selected
		cm.Hide()
		if selected >= 0 && selected < len(cm.items) {
			return cm.items[selected].action
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cm.Hide()
	}
	return MenuAction{}
}

func (cm *ContextMenu) Draw(screen *ebiten.Image, face font.Face) {
	if !cm.visible {
		return
	}
	b := cm.bounds()
	// background with small padding
	bgX := float64(b.X - MenuPadding)
	bgY := float64(b.Y - MenuPadding)
	bgW := float64(b.W + MenuPadding*2)
	bgH := float64(b.H + MenuPadding*2)
	ebitenutil.DrawRect(screen, bgX, bgY, bgW, bgH, ColorMenuBg)
	// border
	ebitenutil.DrawRect(screen, bgX, bgY, bgW, 2, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX, bgY+bgH-2, bgW, 2, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX, bgY, 2, bgH, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX+bgW-2, bgY, 2, bgH, ColorMenuBorder)

	for i, it := range cm.items {
		iy := b.Y + i*MenuItemHeight
		if it.separator {
			ebitenutil.DrawRect(screen, float64(b.X), float64(iy), float64(b.W), 1, ColorMenuSeparator)
		}
		if cm.selected == i {
			ebitenutil.DrawRect(screen, float64(b.X), float64(iy), float64(b.W), float64(MenuItemHeight), ColorMenuHighlight)
		}
		drawTextAt(screen, face, it.label, b.X+PaletteInnerPad+2, iy+PaletteInnerPad, ColorText)
	}
}
