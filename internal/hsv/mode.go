package hsv

// Mode selects between full color picking and greyscale picking.
type Mode int

const (
	ModeColor Mode = iota
	ModeGreyscale
)

// String returns the mode name carried by colorModeChange.
func (m Mode) String() string {
	if m == ModeGreyscale {
		return "greyscale"
	}
	return "color"
}

// ParseMode maps a mode name to a Mode. Only "greyscale" is special;
// anything else is color mode.
func ParseMode(s string) Mode {
	if s == "greyscale" {
		return ModeGreyscale
	}
	return ModeColor
}
