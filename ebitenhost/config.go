package ebitenhost

import "github.com/phanxgames/tandem"

// Logical layout: the top screen spans the full width and the bottom screen
// is centered below it, as on the device.
const (
	layoutWidth  = tandem.TopScreenWidth
	layoutHeight = tandem.TopScreenHeight + tandem.BottomScreenHeight

	bottomOffsetX = (tandem.TopScreenWidth - tandem.BottomScreenWidth) / 2
	bottomOffsetY = tandem.TopScreenHeight
)

// Config holds the window and input settings for a Host.
type Config struct {
	// Title is the window title.
	Title string
	// Scale multiplies the 400x480 logical layout to get the window size.
	// Zero means 2.
	Scale int
	// TPS is the fixed update rate. Zero means 60.
	TPS int
	// ShowFPS draws an FPS/TPS readout in the top-left corner. F1 toggles it
	// at runtime.
	ShowFPS bool
	// ScreenshotDir receives PNGs when F12 is pressed. Empty disables
	// screenshots.
	ScreenshotDir string
	// Keymap maps keyboard and gamepad input to device keys. The zero value
	// uses DefaultKeymap.
	Keymap *Keymap
}

// withDefaults returns cfg with zero fields filled in.
func (cfg Config) withDefaults() Config {
	if cfg.Title == "" {
		cfg.Title = "tandem"
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Keymap == nil {
		cfg.Keymap = DefaultKeymap()
	}
	return cfg
}
