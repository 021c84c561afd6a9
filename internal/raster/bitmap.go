// Package raster describes the byte layout the painting engine uses for
// pixel buffers and provides a small bitmap honoring it.
package raster

// Layout gives the byte offset of each channel within one pixel and the
// stride between pixels.
type Layout struct {
	Red, Green, Blue, Alpha int
	BytesPerPixel           int
}

// RGBA is the engine's native layout and the one ebiten's WritePixels
// expects.
var RGBA = Layout{Red: 0, Green: 1, Blue: 2, Alpha: 3, BytesPerPixel: 4}

// Bitmap is an opaque-color pixel buffer.
type Bitmap struct {
	Width, Height int
	Layout        Layout
	Pix           []byte
}

// NewBitmap allocates a width×height buffer. Negative sizes are treated
// as zero.
func NewBitmap(width, height int, layout Layout) *Bitmap {
	width, height = max(width, 0), max(height, 0)
	return &Bitmap{
		Width:  width,
		Height: height,
		Layout: layout,
		Pix:    make([]byte, width*height*layout.BytesPerPixel),
	}
}

// SetRGB writes a packed 0xRRGGBB color at (x, y) with full alpha.
// Out-of-range coordinates are ignored.
func (b *Bitmap) SetRGB(x, y int, rgb uint32) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := (y*b.Width + x) * b.Layout.BytesPerPixel
	b.Pix[i+b.Layout.Red] = byte(rgb >> 16)
	b.Pix[i+b.Layout.Green] = byte(rgb >> 8)
	b.Pix[i+b.Layout.Blue] = byte(rgb)
	b.Pix[i+b.Layout.Alpha] = 0xFF
}

// RGBAt returns the packed color at (x, y), or 0 outside the bitmap.
func (b *Bitmap) RGBAt(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	i := (y*b.Width + x) * b.Layout.BytesPerPixel
	return uint32(b.Pix[i+b.Layout.Red])<<16 | uint32(b.Pix[i+b.Layout.Green])<<8 | uint32(b.Pix[i+b.Layout.Blue])
}

// AlphaAt returns the alpha byte at (x, y), or 0 outside the bitmap.
func (b *Bitmap) AlphaAt(x, y int) byte {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[(y*b.Width+x)*b.Layout.BytesPerPixel+b.Layout.Alpha]
}
