package tandem

// Color is an opaque packed 32-bit color. The layout is R | G<<8 | B<<16 | A<<24,
// matching the handheld's native packing. The scene graph never decomposes
// it; hosts convert it when they rasterize.
type Color uint32

// RGBA32 packs 8-bit channels into a Color. Channels are straight alpha.
func RGBA32(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a8 := uint32(c>>24) & 0xFF
	r = (uint32(c) & 0xFF) * a8 / 0xFF
	g = (uint32(c>>8) & 0xFF) * a8 / 0xFF
	b = (uint32(c>>16) & 0xFF) * a8 / 0xFF
	r *= 0x101
	g *= 0x101
	b *= 0x101
	a = a8 * 0x101
	return
}

// Vec2 is a 2D vector used for positions, offsets and stick samples.
type Vec2 struct {
	X, Y float64
}

// Screen selects one of the two physical displays.
type Screen uint8

const (
	ScreenTop    Screen = iota // upper, wide display
	ScreenBottom               // lower, touch-enabled display
)

// numScreens is the number of bindable screen slots.
const numScreens = 2

// Native framebuffer sizes, in pixels.
const (
	TopScreenWidth     = 400
	TopScreenHeight    = 240
	BottomScreenWidth  = 320
	BottomScreenHeight = 240
)

func (s Screen) String() string {
	switch s {
	case ScreenTop:
		return "top"
	case ScreenBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// valid reports whether s names one of the two screen slots.
func (s Screen) valid() bool {
	return s < numScreens
}

// Size returns the screen's framebuffer dimensions.
func (s Screen) Size() (w, h int) {
	if s == ScreenBottom {
		return BottomScreenWidth, BottomScreenHeight
	}
	return TopScreenWidth, TopScreenHeight
}
