package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type UI struct {
	face font.Face

	status       string
	statusFrames int
}

func NewUI() *UI {
	ui := &UI{}

	// Prefer a local TTF from res/, then the bundled Go font.
	b, err := os.ReadFile("res/Roboto-Regular.ttf")
	if err != nil {
		b = goregular.TTF
	}
	tt, err := opentype.Parse(b)
	if err != nil {
		log.Printf("could not parse ttf: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 12, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("could not create font face: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	ui.face = face
	return ui
}

// Notify shows msg in the HUD for a few seconds.
func (ui *UI) Notify(format string, args ...any) {
	ui.status = fmt.Sprintf(format, args...)
	ui.statusFrames = StatusFrames
}

func (ui *UI) Update() {
	if ui.statusFrames > 0 {
		ui.statusFrames--
		if ui.statusFrames == 0 {
			ui.status = ""
		}
	}
}

// Draw renders the HUD strip: the current color, its mode and either the
// last status message or the key help.
func (ui *UI) Draw(screen *ebiten.Image, g *Game) {
	hud := g.areas.HUD
	ebitenutil.DrawRect(screen, float64(hud.X), float64(hud.Y), float64(hud.W), float64(hud.H), ColorOverlayBg)

	c := g.ctrl.CurColor()
	rgb := c.RGB()
	swatch := hud.H - 6
	ebitenutil.DrawRect(screen, float64(hud.X+4), float64(hud.Y+3), float64(swatch), float64(swatch), rgbColor(rgb))

	info := fmt.Sprintf("H %3d  S %3d  V %3d  #%06X  %s", c.Hue(), c.Saturation(), c.Value(), rgb, g.ctrl.ColorMode())
	drawTextAt(screen, ui.face, info, hud.X+swatch+12, hud.Y+4, ColorText)

	msg := ui.status
	if msg == "" {
		msg = "Tab palettes - G greyscale - Ctrl+O config - Right-click menu"
	}
	w := font.MeasureString(ui.face, msg).Round()
	drawTextAt(screen, ui.face, msg, hud.X+hud.W-w-8, hud.Y+4, ColorTextDim)
}
