package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/tandem"
)

// stickScale matches the device's raw stick range at full deflection.
const stickScale = 156

// padThreshold is the raw deflection past which the circle pad and C-stick
// also report their direction bits.
const padThreshold = 41

// Keymap binds host input to device key bits.
type Keymap struct {
	Keys    map[ebiten.Key]uint32
	Buttons map[ebiten.StandardGamepadButton]uint32
	// Deadzone is the stick magnitude, in [0, 1], below which gamepad axes
	// read as centered.
	Deadzone float64
}

// DefaultKeymap returns the stock bindings: arrows for the D-pad, X/Z for
// A/B, S/A for X/Y, Q/W for L/R, Enter for START, Backspace for SELECT.
// Gamepads use the standard layout with the face buttons in Nintendo order.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Keys: map[ebiten.Key]uint32{
			ebiten.KeyArrowLeft:  tandem.KeyDLeft,
			ebiten.KeyArrowRight: tandem.KeyDRight,
			ebiten.KeyArrowUp:    tandem.KeyDUp,
			ebiten.KeyArrowDown:  tandem.KeyDDown,
			ebiten.KeyX:          tandem.KeyA,
			ebiten.KeyZ:          tandem.KeyB,
			ebiten.KeyS:          tandem.KeyX,
			ebiten.KeyA:          tandem.KeyY,
			ebiten.KeyQ:          tandem.KeyL,
			ebiten.KeyW:          tandem.KeyR,
			ebiten.Key1:          tandem.KeyZL,
			ebiten.Key2:          tandem.KeyZR,
			ebiten.KeyEnter:      tandem.KeyStart,
			ebiten.KeyBackspace:  tandem.KeySelect,
		},
		Buttons: map[ebiten.StandardGamepadButton]uint32{
			ebiten.StandardGamepadButtonRightRight:       tandem.KeyA,
			ebiten.StandardGamepadButtonRightBottom:      tandem.KeyB,
			ebiten.StandardGamepadButtonRightTop:         tandem.KeyX,
			ebiten.StandardGamepadButtonRightLeft:        tandem.KeyY,
			ebiten.StandardGamepadButtonFrontTopLeft:     tandem.KeyL,
			ebiten.StandardGamepadButtonFrontTopRight:    tandem.KeyR,
			ebiten.StandardGamepadButtonFrontBottomLeft:  tandem.KeyZL,
			ebiten.StandardGamepadButtonFrontBottomRight: tandem.KeyZR,
			ebiten.StandardGamepadButtonCenterRight:      tandem.KeyStart,
			ebiten.StandardGamepadButtonCenterLeft:       tandem.KeySelect,
			ebiten.StandardGamepadButtonLeftLeft:         tandem.KeyDLeft,
			ebiten.StandardGamepadButtonLeftRight:        tandem.KeyDRight,
			ebiten.StandardGamepadButtonLeftTop:          tandem.KeyDUp,
			ebiten.StandardGamepadButtonLeftBottom:       tandem.KeyDDown,
		},
		Deadzone: 0.15,
	}
}

// inputFrame is one polled snapshot of host input, before edge detection.
type inputFrame struct {
	held      uint32
	circlePad tandem.StickSample
	cStick    tandem.StickSample
	touch     tandem.TouchSample
}

// poller reads ebiten input into device masks and derives the down/up
// edges against the previous poll.
type poller struct {
	keymap   *Keymap
	prevHeld uint32

	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	touchIDs []ebiten.TouchID
}

// poll samples every host input source.
func (p *poller) poll() inputFrame {
	var f inputFrame

	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		f.held |= p.keymap.Keys[k]
	}

	var lx, ly, rx, ry float64
	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])
	for _, id := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, mask := range p.keymap.Buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				f.held |= mask
			}
		}
		lx = strongest(lx, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		ly = strongest(ly, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
		rx = strongest(rx, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal))
		ry = strongest(ry, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical))
	}
	// The device's Y axis points up.
	f.circlePad = stickSample(lx, -ly, p.keymap.Deadzone)
	f.cStick = stickSample(rx, -ry, p.keymap.Deadzone)
	f.held |= stickBits(f.circlePad, tandem.KeyCPadLeft, tandem.KeyCPadRight, tandem.KeyCPadUp, tandem.KeyCPadDown)
	f.held |= stickBits(f.cStick, tandem.KeyCStickLeft, tandem.KeyCStickRight, tandem.KeyCStickUp, tandem.KeyCStickDown)

	if x, y, ok := p.bottomTouch(); ok {
		f.held |= tandem.KeyTouch
		f.touch = tandem.TouchSample{PX: uint16(x), PY: uint16(y)}
	}
	return f
}

// scan turns the current poll into a RawInput with edges.
func (p *poller) scan(f inputFrame) tandem.RawInput {
	raw := tandem.RawInput{
		Down:      f.held &^ p.prevHeld,
		Held:      f.held,
		Up:        p.prevHeld &^ f.held,
		CirclePad: f.circlePad,
		CStick:    f.cStick,
		Touch:     f.touch,
	}
	p.prevHeld = f.held
	return raw
}

// bottomTouch returns the first touch or left-button cursor inside the
// bottom screen, in bottom-screen pixels.
func (p *poller) bottomTouch() (int, int, bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		if x, y, ok := toBottom(ebiten.TouchPosition(id)); ok {
			return x, y, true
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return toBottom(ebiten.CursorPosition())
	}
	return 0, 0, false
}

// toBottom converts layout coordinates to bottom-screen pixels.
func toBottom(x, y int) (int, int, bool) {
	x -= bottomOffsetX
	y -= bottomOffsetY
	if x < 0 || y < 0 || x >= tandem.BottomScreenWidth || y >= tandem.BottomScreenHeight {
		return 0, 0, false
	}
	return x, y, true
}

// stickSample scales a [-1, 1] axis pair to a raw device sample. Axes
// outside that range are clamped.
func stickSample(x, y, deadzone float64) tandem.StickSample {
	if math.Hypot(x, y) < deadzone {
		return tandem.StickSample{}
	}
	return tandem.StickSample{
		DX: int16(math.Round(clampUnit(x) * stickScale)),
		DY: int16(math.Round(clampUnit(y) * stickScale)),
	}
}

func clampUnit(v float64) float64 { return max(-1, min(1, v)) }

// stickBits reports the direction bits for a deflected stick.
func stickBits(s tandem.StickSample, left, right, up, down uint32) uint32 {
	var bits uint32
	switch {
	case s.DX <= -padThreshold:
		bits |= left
	case s.DX >= padThreshold:
		bits |= right
	}
	switch {
	case s.DY >= padThreshold:
		bits |= up
	case s.DY <= -padThreshold:
		bits |= down
	}
	return bits
}

// strongest keeps whichever axis value is farther from center.
func strongest(a, b float64) float64 {
	if math.Abs(b) > math.Abs(a) {
		return b
	}
	return a
}
