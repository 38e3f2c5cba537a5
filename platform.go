package tandem

// Surface is the rasterizer for one screen. All coordinates are absolute
// screen pixels. Implementations decide fill and stroke semantics.
type Surface interface {
	// Clear fills the whole target with c.
	Clear(c Color)
	// DrawRect fills a rectangle whose top-left corner is (x, y).
	DrawRect(x, y, w, h float64, c Color)
	// DrawLine strokes a segment from (x0, y0) to (x1, y1).
	DrawLine(x0, y0, x1, y1, thickness float64, c Color)
	// DrawCircle fills a circle centered on (cx, cy).
	DrawCircle(cx, cy, r float64, c Color)
	// DrawEllipse fills the ellipse inscribed in the box at (x, y) sized w×h.
	DrawEllipse(x, y, w, h float64, c Color)
	// DrawSprite draws one frame of sheet centered on (x, y), rotated by
	// rotation radians.
	DrawSprite(sheet SpriteSheet, frame int, x, y, rotation float64)
}

// Platform is the presentation side of the device: it owns the two render
// targets and the frame pacing.
type Platform interface {
	// Running reports whether the loop should keep going.
	Running() bool
	// BeginFrame opens a frame. Called once per iteration before any drawing.
	BeginFrame()
	// Target returns the surface for screen. Valid between BeginFrame and EndFrame.
	Target(screen Screen) Surface
	// EndFrame flushes and presents everything drawn since BeginFrame.
	EndFrame()
}

// InputSource samples the hardware. Scan is called exactly once per
// InputManager.Update.
type InputSource interface {
	Scan() RawInput
}

// SpriteSheet is a loaded set of sprite frames. Loading is host specific.
type SpriteSheet interface {
	NumFrames() int
}
