package hsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_RGB(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want uint32
	}{
		{"black", New(0, 0, 0), 0x000000},
		{"white", New(0, 0, 255), 0xFFFFFF},
		{"red", New(0, 255, 255), 0xFF0000},
		{"green", New(120, 255, 255), 0x00FF00},
		{"blue", New(240, 255, 255), 0x0000FF},
		{"yellow", New(60, 255, 255), 0xFFFF00},
		{"grey ignores hue", New(200, 0, 128), 0x808080},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.RGB())
		})
	}
}

func TestColor_RGBIsDeterministic(t *testing.T) {
	a := New(200, 100, 50)
	b := New(200, 100, 50)
	assert.Equal(t, a.RGB(), b.RGB())
	assert.Equal(t, a, b)
}

func TestColor_Clamping(t *testing.T) {
	c := New(-30, 300, -5)
	assert.Equal(t, 330, c.Hue())
	assert.Equal(t, 255, c.Saturation())
	assert.Equal(t, 0, c.Value())

	c.SetHue(720)
	assert.Equal(t, 0, c.Hue())
}

func TestColor_SetGreyscale(t *testing.T) {
	c := New(200, 180, 90)
	c.SetGreyscale(64)

	assert.Equal(t, 200, c.Hue())
	assert.Equal(t, 0, c.Saturation())
	assert.Equal(t, 64, c.Value())
	assert.Equal(t, uint32(0x404040), c.RGB())
}

func TestFromRGB(t *testing.T) {
	c := FromRGB(0x0000FF)
	assert.Equal(t, 240, c.Hue())
	assert.Equal(t, 255, c.Saturation())
	assert.Equal(t, 255, c.Value())

	c = FromRGB(0x000000)
	assert.Equal(t, 0, c.Value())
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeGreyscale, ParseMode("greyscale"))
	assert.Equal(t, ModeColor, ParseMode("color"))
	assert.Equal(t, ModeColor, ParseMode("anything"))
	assert.Equal(t, "greyscale", ModeGreyscale.String())
	assert.Equal(t, "color", ModeColor.String())
}
