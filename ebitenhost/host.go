package ebitenhost

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/tandem"
)

// Host runs a tandem.Manager inside an Ebitengine window. It is the
// manager's Platform and InputSource at the same time: each ebiten tick
// calls Manager.Step, which scans input and records both screens into
// command buffers, and Draw replays those buffers onto the window.
type Host struct {
	cfg     Config
	manager *tandem.Manager

	top    *tandem.CommandBuffer
	bottom *tandem.CommandBuffer

	input   poller
	pending *inputFrame // injected by tests in place of a poll

	showFPS     bool
	screenshots []string
	quit        bool
	frames      uint64

	white *ebiten.Image
}

// New creates a host. Call Run after registering scenes with a manager
// built on it.
func New(cfg Config) *Host {
	cfg = cfg.withDefaults()
	return &Host{
		cfg:     cfg,
		top:     tandem.NewCommandBuffer(),
		bottom:  tandem.NewCommandBuffer(),
		input:   poller{keymap: cfg.Keymap},
		showFPS: cfg.ShowFPS,
	}
}

// Config returns the effective configuration.
func (h *Host) Config() Config { return h.cfg }

// Run opens the window and drives m until the window closes or the exit
// button ends the loop. m must have been created with h as its platform.
func (h *Host) Run(m *tandem.Manager) error {
	if m == nil {
		return errors.New("ebitenhost: nil manager")
	}
	if m.Platform() != tandem.Platform(h) {
		return errors.New("ebitenhost: manager was not created with this host")
	}
	h.manager = m

	ebiten.SetWindowTitle(h.cfg.Title)
	ebiten.SetWindowSize(layoutWidth*h.cfg.Scale, layoutHeight*h.cfg.Scale)
	ebiten.SetTPS(h.cfg.TPS)

	err := ebiten.RunGame(h)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if cerr := m.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}

// Screenshot queues a labeled capture of the next drawn frame, written as
// <stamp>_<label>_top.png and <stamp>_<label>_bottom.png. Ignored when
// Config.ScreenshotDir is empty.
func (h *Host) Screenshot(label string) {
	if h.cfg.ScreenshotDir == "" {
		return
	}
	h.screenshots = append(h.screenshots, label)
}

// Quit stops the loop at the next tick.
func (h *Host) Quit() { h.quit = true }

// Frames returns the number of frames recorded.
func (h *Host) Frames() uint64 { return h.frames }

// --- tandem.Platform ---

// Running reports whether Quit has not been called.
func (h *Host) Running() bool { return !h.quit }

// BeginFrame drops the previous frame's commands.
func (h *Host) BeginFrame() {
	h.top.Reset()
	h.bottom.Reset()
}

// Target returns the command buffer for screen.
func (h *Host) Target(screen tandem.Screen) tandem.Surface {
	switch screen {
	case tandem.ScreenTop:
		return h.top
	case tandem.ScreenBottom:
		return h.bottom
	default:
		return nil
	}
}

// EndFrame keeps the recorded commands for the next Draw.
func (h *Host) EndFrame() { h.frames++ }

// --- tandem.InputSource ---

// Scan polls keyboard, gamepads, mouse and touch.
func (h *Host) Scan() tandem.RawInput {
	var f inputFrame
	if h.pending != nil {
		f = *h.pending
		h.pending = nil
	} else {
		f = h.input.poll()
	}
	return h.input.scan(f)
}

// --- ebiten.Game ---

// Update advances the manager by one frame.
func (h *Host) Update() error {
	if h.manager == nil || !h.Running() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.showFPS = !h.showFPS
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		h.Screenshot(fmt.Sprintf("frame%d", h.frames))
	}
	if !h.manager.Step() {
		return ebiten.Termination
	}
	return nil
}

// Draw replays the last recorded frame onto both screen regions.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	top := screen.SubImage(image.Rect(0, 0, tandem.TopScreenWidth, tandem.TopScreenHeight)).(*ebiten.Image)
	h.submit(top, h.top.Commands())

	bottom := screen.SubImage(image.Rect(
		bottomOffsetX, bottomOffsetY,
		bottomOffsetX+tandem.BottomScreenWidth, bottomOffsetY+tandem.BottomScreenHeight,
	)).(*ebiten.Image)
	h.submit(bottom, h.bottom.Commands())

	if len(h.screenshots) > 0 {
		shots := []screenCapture{
			captureScreen(tandem.ScreenTop, top),
			captureScreen(tandem.ScreenBottom, bottom),
		}
		stamp := time.Now().Format("20060102_150405")
		if err := saveScreenshots(h.cfg.ScreenshotDir, stamp, h.screenshots, shots); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[tandem] screenshot: %v\n", err)
		}
		h.screenshots = h.screenshots[:0]
	}
	if h.showFPS {
		drawFPS(screen)
	}
}

// Layout returns the fixed dual-screen layout size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return layoutWidth, layoutHeight
}
