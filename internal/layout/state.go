// Package layout saves and restores palette placement and the current
// color in a small YAML state file.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/paintchrome/internal/hsv"
	"github.com/example/paintchrome/internal/palette"
)

// Palettes is the part of the palette manager the state file touches.
type Palettes interface {
	Windows() []*palette.Window
	Palette(name string) *palette.Window
	ShowPalette(name string, show bool)
	ForgetToggle()
	ConstrainPalettes()
}

// Colors is the part of the controller the state file touches.
type Colors interface {
	CurColor() hsv.Color
	ColorMode() hsv.Mode
	SetCurColor(hsv.Color)
	SetColorMode(hsv.Mode)
}

type statePalette struct {
	Name    string `yaml:"name"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Visible bool   `yaml:"visible"`
}

type stateColor struct {
	Hue        int    `yaml:"hue"`
	Saturation int    `yaml:"saturation"`
	Value      int    `yaml:"value"`
	Mode       string `yaml:"mode"`
}

type stateFile struct {
	Color    stateColor     `yaml:"color"`
	Palettes []statePalette `yaml:"palettes"`
}

// Save writes every palette bottom to top, so loading restores the
// stacking order as well as the geometry.
func Save(path string, m Palettes, c Colors) error {
	cur := c.CurColor()
	sf := stateFile{
		Color: stateColor{
			Hue:        cur.Hue(),
			Saturation: cur.Saturation(),
			Value:      cur.Value(),
			Mode:       c.ColorMode().String(),
		},
	}
	for _, w := range m.Windows() {
		g := w.Geometry()
		sf.Palettes = append(sf.Palettes, statePalette{
			Name: w.Name, X: g.X, Y: g.Y, Width: g.Width, Height: g.Height, Visible: w.Visible(),
		})
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&sf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return enc.Close()
}

// Load applies a state file: palette geometry and visibility, then the
// color. Unknown palette names are skipped. Visibility from the file
// replaces any set a palette toggle was holding. Palettes are constrained to
// the current viewport afterwards since the file may come from a larger
// window.
func Load(path string, m Palettes, c Colors) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var sf stateFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, sp := range sf.Palettes {
		w := m.Palette(sp.Name)
		if w == nil {
			continue
		}
		w.SetGeometry(palette.Geometry{X: sp.X, Y: sp.Y, Width: sp.Width, Height: sp.Height})
		m.ShowPalette(sp.Name, sp.Visible)
	}
	m.ForgetToggle()
	m.ConstrainPalettes()

	if sf.Color.Mode != "" {
		c.SetColorMode(hsv.ParseMode(sf.Color.Mode))
		c.SetCurColor(hsv.New(sf.Color.Hue, sf.Color.Saturation, sf.Color.Value))
	}
	return nil
}
