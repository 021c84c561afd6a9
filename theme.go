package main

import "image/color"

// Color Palette
var (
	ColorBackground    = color.RGBA{0x12, 0x12, 0x14, 0xff} // Main window background
	ColorDocument      = color.RGBA{0xf4, 0xf4, 0xf0, 0xff} // Document placeholder
	ColorDocumentGrid  = color.RGBA{0xdc, 0xdc, 0xd6, 0xff} // Document grid lines
	ColorPaletteBg     = color.RGBA{0x22, 0x22, 0x2a, 0xff} // Palette body background
	ColorPaletteHeader = color.RGBA{0x11, 0x11, 0x16, 0xff} // Palette title bar
	ColorPaletteBorder = color.RGBA{0x44, 0x44, 0x50, 0xff} // Palette border
	ColorCloseButton   = color.RGBA{0x55, 0x33, 0x3a, 0xff} // Close button square
	ColorResizeHandle  = color.RGBA{0x55, 0x55, 0x66, 0xff} // Resize strips
	ColorScrollTrack   = color.RGBA{0x1a, 0x1a, 0x20, 0xff} // Scrollbar track
	ColorScrollHandle  = color.RGBA{0x55, 0x55, 0x66, 0xff} // Scrollbar handle
	ColorScrollAdjust  = color.RGBA{0x66, 0x88, 0xff, 0xff} // Handle while dragged
	ColorText          = color.White                        // Standard text
	ColorTextDim       = color.RGBA{0x99, 0x99, 0xa0, 0xff} // Placeholder labels
	ColorOverlayBg     = color.RGBA{0x0c, 0x0c, 0x0e, 0xee} // HUD background
	ColorMenuBg        = color.RGBA{0x10, 0x10, 0x12, 0xff} // Context menu background
	ColorMenuBorder    = color.RGBA{0x44, 0x44, 0x50, 0xff} // Context menu border
	ColorMenuHighlight = color.RGBA{0x33, 0x55, 0xff, 0xff} // Context menu hover highlight
	ColorMenuSeparator = color.RGBA{0x33, 0x33, 0x3c, 0xff} // Context menu separator
)

// Layout Constants
const (
	PaletteBorder     = 1
	PaletteInnerPad   = 6
	PickerGap         = 8
	ScrollThickness   = 14
	DocumentGridStep  = 64
	MenuItemHeight    = 24
	MenuWidth         = 200
	MenuPadding       = 4
	HUDHeight         = 22
	StatusFrames      = 180
	RightClickSlop    = 6
	ConfigDebounceMS  = 150
	DefaultConfigPath = "paintchrome.yml"
	DefaultLayoutPath = "layout.yml"
)
