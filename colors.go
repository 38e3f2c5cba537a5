package tandem

// Preset colors.
var (
	ColorWhite   = RGBA32(0xFF, 0xFF, 0xFF, 0xFF)
	ColorGreen   = RGBA32(0x00, 0xFF, 0x00, 0xFF)
	ColorRed     = RGBA32(0xFF, 0x00, 0x00, 0xFF)
	ColorBlue    = RGBA32(0x00, 0x00, 0xFF, 0xFF)
	ColorCyan    = RGBA32(0x00, 0xFF, 0xFF, 0xFF)
	ColorMagenta = RGBA32(0xFF, 0x00, 0xFF, 0xFF)
	ColorYellow  = RGBA32(0xFF, 0xFF, 0x00, 0xFF)
	ColorBlack   = RGBA32(0x00, 0x00, 0x00, 0xFF)

	ColorPurple    = RGBA32(0x80, 0x00, 0x80, 0xFF)
	ColorOrange    = RGBA32(0xFF, 0xA5, 0x00, 0xFF)
	ColorLime      = RGBA32(0x32, 0xCD, 0x32, 0xFF)
	ColorBrown     = RGBA32(0x8B, 0x45, 0x13, 0xFF)
	ColorSkyBlue   = RGBA32(0x87, 0xCE, 0xEB, 0xFF)
	ColorLavender  = RGBA32(0xE6, 0xE6, 0xFA, 0xFF)
	ColorOlive     = RGBA32(0x80, 0x80, 0x00, 0xFF)
	ColorPink      = RGBA32(0xFF, 0xC0, 0xCB, 0xFF)
	ColorTurquoise = RGBA32(0x40, 0xE0, 0xD0, 0xFF)
	ColorGold      = RGBA32(0xFF, 0xD7, 0x00, 0xFF)
	ColorMaroon    = RGBA32(0x80, 0x00, 0x00, 0xFF)
	ColorCoral     = RGBA32(0xFF, 0x7F, 0x50, 0xFF)

	ColorBlank = RGBA32(0xFF, 0xFF, 0xFF, 0x00) // transparent white
	ColorClear = RGBA32(0x00, 0x00, 0x00, 0x00) // transparent black
)
