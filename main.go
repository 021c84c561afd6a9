package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/paintchrome/internal/config"
	"github.com/example/paintchrome/internal/controller"
	"github.com/example/paintchrome/internal/hsv"
	"github.com/example/paintchrome/internal/layout"
	"github.com/example/paintchrome/internal/palette"
	"github.com/example/paintchrome/internal/picker"
	"github.com/example/paintchrome/internal/pointer"
	"github.com/example/paintchrome/internal/scroll"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

type Game struct {
	cfg     *config.Config
	watcher *config.Watcher

	ctrl     *controller.Controller
	router   *pointer.Router
	palettes *palette.Manager
	field    *picker.Field
	strip    *picker.HueStrip
	hbar     *scroll.Bar
	vbar     *scroll.Bar

	ui          *UI
	input       *InputManager
	renderer    *Renderer
	contextMenu *ContextMenu

	screenW, screenH int
	areas            ScreenLayout
	laidOut          bool
	resized          bool
}

func NewGame(cfgPath string) *Game {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("config: %v; using defaults", err)
		cfg = config.Default()
	}

	g := &Game{cfg: cfg}
	g.ctrl = controller.New(cfg.InitialColor(), cfg.Mode())
	g.router = pointer.NewRouter()
	g.palettes = palette.NewManager(palette.ViewportFunc(g.viewportSize), g.router, cfg.PaletteSpecs())
	g.hbar = scroll.NewBar(false, g.router)
	g.vbar = scroll.NewBar(true, g.router)
	g.buildPickers()
	g.applyConfig(cfg)

	g.ui = NewUI()
	g.input = NewInputManager()
	g.renderer = NewRenderer()
	g.contextMenu = NewContextMenu()

	g.palettes.VisChange.Subscribe(func(vc palette.VisChange) {
		if vc.Name == palette.Color && !vc.Visible {
			g.router.Forget(g.field)
			g.router.Forget(g.strip)
		}
	})

	g.watch(cfgPath)
	return g
}

// viewportSize is the area palettes are laid out in: the window above
// the HUD strip.
func (g *Game) viewportSize() (int, int) {
	return g.screenW, max(g.screenH-HUDHeight, 0)
}

// buildPickers (re)creates the field and strip for the current pixel
// scale, carrying over the current color.
func (g *Game) buildPickers() {
	if g.field != nil {
		g.router.Forget(g.field)
		g.field.Close()
	}
	if g.strip != nil {
		g.router.Forget(g.strip)
		g.strip.Close()
	}
	scale := g.cfg.PixelScale
	if scale <= 0 {
		scale = 1
		if m := ebiten.Monitor(); m != nil {
			scale = m.DeviceScaleFactor()
		}
	}
	cur := g.ctrl.CurColor()
	g.field = picker.NewField(g.ctrl, g.router, cur, scale)
	g.strip = picker.NewHueStrip(g.ctrl, g.field, g.router, cur.Hue())
	// Mode subscriptions only see future changes; replay the current one.
	if g.ctrl.ColorMode() == hsv.ModeGreyscale {
		g.ctrl.SetColorMode(hsv.ModeGreyscale)
	}
	if g.renderer != nil {
		g.renderer.dropPickerImages()
	}
}

// applyConfig pushes settings that can change while running.
func (g *Game) applyConfig(cfg *config.Config) {
	rebuild := cfg.PixelScale != g.cfg.PixelScale
	g.cfg = cfg
	for _, b := range []*scroll.Bar{g.hbar, g.vbar} {
		b.SetBlockIncrement(cfg.Scrollbar.BlockIncrement)
		b.SetUnitIncrement(cfg.Scrollbar.UnitIncrement)
	}
	g.updateScrollbars()
	if rebuild {
		g.buildPickers()
	}
}

func (g *Game) watch(path string) {
	if g.watcher != nil {
		g.watcher.Close()
		g.watcher = nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return
	}
	w, err := config.Watch(path, ConfigDebounceMS*time.Millisecond)
	if err != nil {
		log.Printf("config watch: %v", err)
		return
	}
	g.watcher = w
}

// loadConfig replaces the running config with the file at path and
// watches it from then on.
func (g *Game) loadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	g.applyConfig(cfg)
	g.ctrl.SetColorMode(cfg.Mode())
	g.ctrl.SetCurColor(cfg.InitialColor())
	g.watch(path)
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg := <-g.watcher.Changes():
		g.applyConfig(cfg)
		g.ui.Notify("reloaded: %s", filepath.Base(g.watcher.Path()))
	case err := <-g.watcher.Errors():
		log.Printf("config reload: %v", err)
		g.ui.Notify("config reload failed")
	default:
	}
}

// updateScrollbars sizes both bars to the document and the current view.
// Bar offsets are document positions and end at the last full view.
func (g *Game) updateScrollbars() {
	view := g.areas.View
	fit := func(b *scroll.Bar, r Rect, docLen, viewLen int) {
		b.SetBounds(r.origin(), float64(max(r.W, r.H)), ScrollThickness)
		if b.ValueIsAdjusting() {
			return
		}
		b.SetContent(b.Offset(), float64(docLen), float64(viewLen))
	}
	fit(g.hbar, g.areas.HBar, g.cfg.Document.Width, view.W)
	fit(g.vbar, g.areas.VBar, g.cfg.Document.Height, view.H)
}

// docOffset returns the document scroll position.
func (g *Game) docOffset() (x, y int) {
	return int(g.hbar.Offset()), int(g.vbar.Offset())
}

func (g *Game) relayout() {
	g.areas = screenLayout(g.screenW, g.screenH)
	g.updateScrollbars()
	if !g.laidOut {
		g.laidOut = true
		g.palettes.ArrangePalettes()
		if err := layout.Load(DefaultLayoutPath, g.palettes, g.ctrl); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("layout.Load: %v", err)
		}
		return
	}
	g.palettes.ConstrainPalettes()
}

// placePickers moves the pickers' origins into the color palette body.
func (g *Game) placePickers() PickerBounds {
	pb := pickerBounds(g.palettes.Palette(palette.Color).BodyRect())
	g.field.SetOrigin(pb.Field.origin())
	g.strip.SetOrigin(pb.Strip.origin())
	return pb
}

func (g *Game) Update() error {
	if g.resized {
		g.resized = false
		g.relayout()
	}
	g.drainWatcher()
	g.ui.Update()
	g.placePickers()

	if g.input.HandleContextMenuInput(g) {
		return nil
	}
	g.input.HandleKeys(g)
	g.input.HandlePointers(g)
	g.input.HandleWheel(g)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	g.renderer.DrawDocument(screen, g)
	g.renderer.DrawScrollbars(screen, g)
	g.renderer.DrawPalettes(screen, g, g.ui.face)
	g.ui.Draw(screen, g)
	g.contextMenu.Draw(screen, g.ui.face)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Return the outside dimensions so the logical screen matches window size.
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		g.watcher.Close()
	}
	g.field.Close()
	g.strip.Close()
	g.hbar.Close()
	g.vbar.Close()
	g.palettes.Close()
}

func main() {
	cfgPath := flag.String("config", DefaultConfigPath, "YAML or TOML config file")
	flag.Parse()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("paintchrome")
	ebiten.SetWindowResizable(true)
	g := NewGame(*cfgPath)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
