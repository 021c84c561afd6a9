package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap_SetRGB_RGBALayout(t *testing.T) {
	b := NewBitmap(2, 2, RGBA)
	b.SetRGB(1, 0, 0x112233)

	require.Len(t, b.Pix, 16)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0xFF}, b.Pix[4:8])
	assert.Equal(t, uint32(0x112233), b.RGBAt(1, 0))
	assert.Equal(t, byte(0xFF), b.AlphaAt(1, 0))
}

func TestBitmap_SetRGB_CustomLayout(t *testing.T) {
	bgra := Layout{Blue: 0, Green: 1, Red: 2, Alpha: 3, BytesPerPixel: 4}
	b := NewBitmap(1, 1, bgra)
	b.SetRGB(0, 0, 0xAABBCC)

	assert.Equal(t, []byte{0xCC, 0xBB, 0xAA, 0xFF}, b.Pix)
	assert.Equal(t, uint32(0xAABBCC), b.RGBAt(0, 0))
}

func TestBitmap_OutOfRange(t *testing.T) {
	b := NewBitmap(1, 1, RGBA)
	b.SetRGB(5, 5, 0xFFFFFF)
	b.SetRGB(-1, 0, 0xFFFFFF)

	assert.Equal(t, []byte{0, 0, 0, 0}, b.Pix)
	assert.Equal(t, uint32(0), b.RGBAt(3, 0))
}

func TestNewBitmap_NegativeSize(t *testing.T) {
	b := NewBitmap(-4, 3, RGBA)
	assert.Equal(t, 0, b.Width)
	assert.Empty(t, b.Pix)
}
