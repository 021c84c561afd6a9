package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/example/paintchrome/internal/palette"
	"github.com/example/paintchrome/internal/raster"
	"github.com/example/paintchrome/internal/scroll"
)

// exclusionBlend composites white strokes as dst' = src + dst - 2*src*dst
// per channel, which for a white source inverts the destination. The
// cursor stays visible over any color.
var exclusionBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOneMinusDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Renderer handles all drawing operations for the application.
type Renderer struct {
	white *ebiten.Image

	fieldImg *ebiten.Image
	stripImg *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a new Renderer instance.
func NewRenderer() *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Renderer{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// dropPickerImages forgets the picker offscreens so the next draw
// allocates them at the pickers' current canvas size.
func (r *Renderer) dropPickerImages() {
	if r.fieldImg != nil {
		r.fieldImg.Deallocate()
		r.fieldImg = nil
	}
	if r.stripImg != nil {
		r.stripImg.Deallocate()
		r.stripImg = nil
	}
}

// DrawDocument renders the scrolled document placeholder into the view.
func (r *Renderer) DrawDocument(screen *ebiten.Image, g *Game) {
	view := g.areas.View
	if view.W <= 0 || view.H <= 0 {
		return
	}
	dst := screen.SubImage(image.Rect(view.X, view.Y, view.X+view.W, view.Y+view.H)).(*ebiten.Image)
	ox, oy := g.docOffset()
	docW, docH := g.cfg.Document.Width, g.cfg.Document.Height
	x0, y0 := float64(view.X-ox), float64(view.Y-oy)
	ebitenutil.DrawRect(dst, x0, y0, float64(docW), float64(docH), ColorDocument)

	for gx := (ox/DocumentGridStep + 1) * DocumentGridStep; gx < min(docW, ox+view.W); gx += DocumentGridStep {
		ebitenutil.DrawRect(dst, x0+float64(gx), y0+float64(oy), 1, float64(min(docH-oy, view.H)), ColorDocumentGrid)
	}
	for gy := (oy/DocumentGridStep + 1) * DocumentGridStep; gy < min(docH, oy+view.H); gy += DocumentGridStep {
		ebitenutil.DrawRect(dst, x0+float64(ox), y0+float64(gy), float64(min(docW-ox, view.W)), 1, ColorDocumentGrid)
	}
}

// DrawScrollbars renders both tracks and their handles.
func (r *Renderer) DrawScrollbars(screen *ebiten.Image, g *Game) {
	r.drawScrollbar(screen, g.hbar)
	r.drawScrollbar(screen, g.vbar)
}

func (r *Renderer) drawScrollbar(screen *ebiten.Image, b *scroll.Bar) {
	origin, length, thickness := b.Bounds()
	if length <= 0 {
		return
	}
	col := ColorScrollHandle
	if b.ValueIsAdjusting() {
		col = ColorScrollAdjust
	}
	at, size := b.HandleOffset(), b.HandleSize()
	if b.Vertical() {
		ebitenutil.DrawRect(screen, origin.X, origin.Y, thickness, length, ColorScrollTrack)
		ebitenutil.DrawRect(screen, origin.X+2, origin.Y+at, thickness-4, size, col)
		return
	}
	ebitenutil.DrawRect(screen, origin.X, origin.Y, length, thickness, ColorScrollTrack)
	ebitenutil.DrawRect(screen, origin.X+at, origin.Y+2, size, thickness-4, col)
}

// DrawPalettes renders the visible palettes bottom to top.
func (r *Renderer) DrawPalettes(screen *ebiten.Image, g *Game, face font.Face) {
	for _, w := range g.palettes.Visible() {
		r.drawPalette(screen, g, w, face)
	}
}

func (r *Renderer) drawPalette(screen *ebiten.Image, g *Game, w *palette.Window, face font.Face) {
	b := rectOf(w.Geometry())
	if b.W <= 0 || b.H <= 0 {
		return
	}
	x, y, wd, ht := float64(b.X), float64(b.Y), float64(b.W), float64(b.H)

	ebitenutil.DrawRect(screen, x, y, wd, ht, ColorPaletteBg)
	ebitenutil.DrawRect(screen, x, y, wd, min(palette.HeaderHeight, ht), ColorPaletteHeader)
	drawTextAt(screen, face, w.Title, b.X+PaletteInnerPad, b.Y+3, ColorText)

	cr := rectOf(w.CloseRect())
	ebitenutil.DrawRect(screen, float64(cr.X+3), float64(cr.Y+3), float64(cr.W-6), float64(cr.H-6), ColorCloseButton)
	drawTextAt(screen, face, "x", cr.X+cr.W/2-3, cr.Y+3, ColorText)

	body := rectOf(w.BodyRect())
	if body.W > 0 && body.H > 0 {
		dst := screen.SubImage(image.Rect(body.X, body.Y, body.X+body.W, body.Y+body.H)).(*ebiten.Image)
		if w.Name == palette.Color {
			r.drawPickers(dst, g, pickerBounds(w.BodyRect()))
		} else {
			drawTextAt(dst, face, w.Name, body.X+PaletteInnerPad, body.Y+PaletteInnerPad, ColorTextDim)
		}
	}

	if w.ResizeVertical {
		ebitenutil.DrawRect(screen, x, y+ht-palette.ResizeHandleSize, wd, palette.ResizeHandleSize, ColorResizeHandle)
	}
	if w.ResizeHorizontal {
		ebitenutil.DrawRect(screen, x+wd-palette.ResizeHandleSize, y, palette.ResizeHandleSize, ht, ColorResizeHandle)
	}
	r.drawBorder(screen, b)
}

func (r *Renderer) drawBorder(screen *ebiten.Image, b Rect) {
	x, y, w, h := float64(b.X), float64(b.Y), float64(b.W), float64(b.H)
	ebitenutil.DrawRect(screen, x, y, PaletteBorder, h, ColorPaletteBorder)
	ebitenutil.DrawRect(screen, x, y, w, PaletteBorder, ColorPaletteBorder)
	ebitenutil.DrawRect(screen, x+w-PaletteBorder, y, PaletteBorder, h, ColorPaletteBorder)
	ebitenutil.DrawRect(screen, x, y+h-PaletteBorder, w, PaletteBorder, ColorPaletteBorder)
}

// drawPickers repaints the picker offscreens when their models ask for it
// and composites them into the color palette body. The field offscreen is
// at device resolution and scaled down to logical pixels.
func (r *Renderer) drawPickers(dst *ebiten.Image, g *Game, pb PickerBounds) {
	f := g.field
	cw, ch := f.CanvasSize()
	fresh := false
	if r.fieldImg == nil {
		r.fieldImg = ebiten.NewImage(cw, ch)
		fresh = true
	}
	if fresh || f.NeedsPaint() {
		f.Paint(r.surface(r.fieldImg))
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(1/f.Scale(), 1/f.Scale())
	op.GeoM.Translate(float64(pb.Field.X), float64(pb.Field.Y))
	dst.DrawImage(r.fieldImg, op)

	s := g.strip
	if !s.Visible() {
		return
	}
	fresh = false
	if r.stripImg == nil {
		sw, sh := s.Size()
		r.stripImg = ebiten.NewImage(sw, sh)
		fresh = true
	}
	if fresh || s.NeedsPaint() {
		s.Paint(r.surface(r.stripImg))
	}
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pb.Strip.X), float64(pb.Strip.Y))
	dst.DrawImage(r.stripImg, op)
}

func (r *Renderer) surface(img *ebiten.Image) *imageSurface {
	return &imageSurface{r: r, dst: img}
}

// imageSurface lets the picker models paint into an ebiten image.
type imageSurface struct {
	r   *Renderer
	dst *ebiten.Image
}

func (s *imageSurface) WritePixels(b *raster.Bitmap) {
	s.dst.WritePixels(b.Pix)
}

func (s *imageSurface) ContrastLine(x0, y0, x1, y1, width float64) {
	var p vector.Path
	p.MoveTo(float32(x0), float32(y0))
	p.LineTo(float32(x1), float32(y1))
	s.r.stroke(s.dst, &p, width)
}

func (s *imageSurface) ContrastCircle(cx, cy, radius, width float64) {
	var p vector.Path
	p.Arc(float32(cx), float32(cy), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	p.Close()
	s.r.stroke(s.dst, &p, width)
}

// stroke draws p in white through the exclusion blend.
func (r *Renderer) stroke(dst *ebiten.Image, p *vector.Path, width float64) {
	op := &vector.StrokeOptions{Width: float32(width)}
	r.vertices, r.indices = p.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], op)
	for i := range r.vertices {
		v := &r.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = 1, 1, 1, 1
	}
	dst.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{
		Blend:     exclusionBlend,
		AntiAlias: true,
	})
}

func rgbColor(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// drawTextAt draws text using the provided face. If face is nil, falls back to ebitenutil.DebugPrintAt.
func drawTextAt(screen *ebiten.Image, face font.Face, s string, x, y int, col color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	// text.Draw expects y to be baseline; DebugPrintAt uses top-left.
	ascent := face.Metrics().Ascent.Round()
	text.Draw(screen, s, face, x, y+ascent, col)
}
