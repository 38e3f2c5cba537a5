package tandem

// HeadlessPlatform is a Platform with no display. Each screen records into
// a CommandBuffer that is reset at the start of every frame, so after
// EndFrame the buffers hold exactly the last frame.
type HeadlessPlatform struct {
	// MaxFrames stops Running after that many frames. Zero or negative runs
	// until the exit button ends the loop.
	MaxFrames int
	// Frames counts completed EndFrame calls.
	Frames int

	Top    *CommandBuffer
	Bottom *CommandBuffer

	inFrame bool
}

// NewHeadlessPlatform creates a headless platform that stops after
// maxFrames frames.
func NewHeadlessPlatform(maxFrames int) *HeadlessPlatform {
	return &HeadlessPlatform{
		MaxFrames: maxFrames,
		Top:       NewCommandBuffer(),
		Bottom:    NewCommandBuffer(),
	}
}

// Running reports whether the frame budget allows another frame.
func (p *HeadlessPlatform) Running() bool {
	return p.MaxFrames <= 0 || p.Frames < p.MaxFrames
}

// BeginFrame resets both buffers.
func (p *HeadlessPlatform) BeginFrame() {
	p.Top.Reset()
	p.Bottom.Reset()
	p.inFrame = true
}

// Target returns the buffer for screen. Invalid screens get nil.
func (p *HeadlessPlatform) Target(screen Screen) Surface {
	switch screen {
	case ScreenTop:
		return p.Top
	case ScreenBottom:
		return p.Bottom
	default:
		return nil
	}
}

// EndFrame counts the frame.
func (p *HeadlessPlatform) EndFrame() {
	if !p.inFrame {
		return
	}
	p.inFrame = false
	p.Frames++
}

// Buffer returns the command buffer for screen, or nil.
func (p *HeadlessPlatform) Buffer(screen Screen) *CommandBuffer {
	switch screen {
	case ScreenTop:
		return p.Top
	case ScreenBottom:
		return p.Bottom
	default:
		return nil
	}
}
