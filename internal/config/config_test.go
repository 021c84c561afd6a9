package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/paintchrome/internal/hsv"
	"github.com/example/paintchrome/internal/palette"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.yml", FormatYAML, false},
		{"a.YAML", FormatYAML, false},
		{"dir/a.toml", FormatTOML, false},
		{"a.json", 0, true},
		{"noext", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "chrome.yml", `
pixel_scale: 2
color:
  hue: 120
  saturation: 200
  value: 180
  mode: greyscale
scrollbar:
  unit_increment: 8
palettes:
  layers:
    height: 400
  textures:
    hidden: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.PixelScale)
	assert.Equal(t, hsv.New(120, 200, 180), cfg.InitialColor())
	assert.Equal(t, hsv.ModeGreyscale, cfg.Mode())
	assert.Equal(t, 8.0, cfg.Scrollbar.UnitIncrement)
	assert.Equal(t, 64.0, cfg.Scrollbar.BlockIncrement, "unset fields keep defaults")
	assert.Equal(t, 2048, cfg.Document.Width)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "chrome.toml", `
pixel_scale = 1.5

[color]
hue = 300
mode = "color"

[document]
width = 640
height = 480

[palettes.swatches]
width = 150
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1.5, cfg.PixelScale)
	assert.Equal(t, 300, cfg.Color.Hue)
	assert.Equal(t, hsv.ModeColor, cfg.Mode())
	assert.Equal(t, DocumentConfig{Width: 640, Height: 480}, cfg.Document)
	assert.Equal(t, 150, cfg.Palettes[palette.Swatches].Width)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "chrome.ini", "x=1"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "chrome.yml", "color: [1, 2"))
		assert.Error(t, err)
	})
	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(writeFile(t, "chrome.toml", "color = "))
		assert.Error(t, err)
	})
	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeFile(t, "chrome.yml", `
pixel_scale: -1
document:
  width: -5
palettes:
  nonsense: {}
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pixel_scale")
		assert.Contains(t, err.Error(), "document size")
		assert.Contains(t, err.Error(), `unknown palette "nonsense"`)
	})
}

func TestPaletteSpecs(t *testing.T) {
	cfg := Default()
	cfg.Palettes[palette.Layers] = PaletteConfig{Height: 400}
	cfg.Palettes[palette.Textures] = PaletteConfig{Hidden: true}

	byName := map[string]palette.Spec{}
	for _, s := range cfg.PaletteSpecs() {
		byName[s.Name] = s
	}
	defaults := map[string]palette.Spec{}
	for _, s := range palette.DefaultSpecs() {
		defaults[s.Name] = s
	}

	assert.Len(t, byName, len(palette.Names))
	assert.Equal(t, 400, byName[palette.Layers].Height)
	assert.Equal(t, defaults[palette.Layers].Width, byName[palette.Layers].Width, "zero width keeps default")
	assert.True(t, byName[palette.Textures].Hidden)
	assert.Equal(t, defaults[palette.Textures].Width, byName[palette.Textures].Width)
	assert.Equal(t, defaults[palette.Tool], byName[palette.Tool])
}
