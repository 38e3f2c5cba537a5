package tandem

import "strings"

// --- Hardware key masks ---

// Key bits as reported by the device's input scan. A RawInput mask is any
// combination of these.
const (
	KeyA           uint32 = 1 << 0
	KeyB           uint32 = 1 << 1
	KeySelect      uint32 = 1 << 2
	KeyStart       uint32 = 1 << 3
	KeyDRight      uint32 = 1 << 4
	KeyDLeft       uint32 = 1 << 5
	KeyDUp         uint32 = 1 << 6
	KeyDDown       uint32 = 1 << 7
	KeyR           uint32 = 1 << 8
	KeyL           uint32 = 1 << 9
	KeyX           uint32 = 1 << 10
	KeyY           uint32 = 1 << 11
	KeyZL          uint32 = 1 << 14
	KeyZR          uint32 = 1 << 15
	KeyTouch       uint32 = 1 << 20
	KeyCStickRight uint32 = 1 << 24
	KeyCStickLeft  uint32 = 1 << 25
	KeyCStickUp    uint32 = 1 << 26
	KeyCStickDown  uint32 = 1 << 27
	KeyCPadRight   uint32 = 1 << 28
	KeyCPadLeft    uint32 = 1 << 29
	KeyCPadUp      uint32 = 1 << 30
	KeyCPadDown    uint32 = 1 << 31
)

// stickScale maps a raw stick delta to roughly [-1, 1].
const stickScale = 156.0

// --- Buttons ---

// Button is a logical button.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeft  // D-pad or circle pad left
	ButtonRight // D-pad or circle pad right
	ButtonUp    // D-pad or circle pad up
	ButtonDown  // D-pad or circle pad down
	ButtonL
	ButtonR
	ButtonZL
	ButtonZR
	ButtonStart
	ButtonSelect
	ButtonCStickLeft
	ButtonCStickRight
	ButtonCStickUp
	ButtonCStickDown
	ButtonCPadLeft
	ButtonCPadRight
	ButtonCPadUp
	ButtonCPadDown

	numButtons
)

var buttonNames = [numButtons]string{
	"A", "B", "X", "Y",
	"LEFT", "RIGHT", "UP", "DOWN",
	"L", "R", "ZL", "ZR",
	"START", "SELECT",
	"CSTICK_LEFT", "CSTICK_RIGHT", "CSTICK_UP", "CSTICK_DOWN",
	"CPAD_LEFT", "CPAD_RIGHT", "CPAD_UP", "CPAD_DOWN",
}

func (b Button) String() string {
	if b < numButtons {
		return buttonNames[b]
	}
	return "UNKNOWN"
}

// ParseButton resolves a button name as printed by Button.String.
// Matching is case-insensitive.
func ParseButton(name string) (Button, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return 0, false
}

// Mask returns the hardware key bits for b. Directional buttons cover both
// the D-pad and the circle pad.
func (b Button) Mask() uint32 {
	switch b {
	case ButtonA:
		return KeyA
	case ButtonB:
		return KeyB
	case ButtonX:
		return KeyX
	case ButtonY:
		return KeyY
	case ButtonLeft:
		return KeyDLeft | KeyCPadLeft
	case ButtonRight:
		return KeyDRight | KeyCPadRight
	case ButtonUp:
		return KeyDUp | KeyCPadUp
	case ButtonDown:
		return KeyDDown | KeyCPadDown
	case ButtonL:
		return KeyL
	case ButtonR:
		return KeyR
	case ButtonZL:
		return KeyZL
	case ButtonZR:
		return KeyZR
	case ButtonStart:
		return KeyStart
	case ButtonSelect:
		return KeySelect
	case ButtonCStickLeft:
		return KeyCStickLeft
	case ButtonCStickRight:
		return KeyCStickRight
	case ButtonCStickUp:
		return KeyCStickUp
	case ButtonCStickDown:
		return KeyCStickDown
	case ButtonCPadLeft:
		return KeyCPadLeft
	case ButtonCPadRight:
		return KeyCPadRight
	case ButtonCPadUp:
		return KeyCPadUp
	case ButtonCPadDown:
		return KeyCPadDown
	default:
		return 0
	}
}

// ButtonState is the per-frame state of a button. Exactly one holds per
// button per frame.
type ButtonState uint8

const (
	ButtonNone     ButtonState = iota // not touched this frame
	ButtonPressed                     // went down this frame
	ButtonHeld                        // down since an earlier frame
	ButtonReleased                    // went up this frame
)

func (s ButtonState) String() string {
	switch s {
	case ButtonNone:
		return "none"
	case ButtonPressed:
		return "pressed"
	case ButtonHeld:
		return "held"
	case ButtonReleased:
		return "released"
	default:
		return "unknown"
	}
}

// --- Raw samples ---

// StickSample is a raw analog stick delta from center.
type StickSample struct {
	DX, DY int16
}

// TouchSample is a raw touch screen coordinate in bottom-screen pixels.
type TouchSample struct {
	PX, PY uint16
}

// RawInput is one hardware scan. Down and Up carry the edges for this scan;
// Held carries every key currently down.
type RawInput struct {
	Down, Held, Up uint32
	CirclePad      StickSample
	CStick         StickSample
	Touch          TouchSample
}

// --- Derived state ---

// TouchState is the derived touch screen state.
type TouchState struct {
	// Pressed is true while the screen is touched, including the first frame.
	Pressed bool
	// Position is the raw pixel coordinate, not normalized.
	Position Vec2
}

// InputState is the full derived input state for one frame.
type InputState struct {
	Buttons   [numButtons]ButtonState
	CirclePad Vec2
	CStick    Vec2
	Touch     TouchState
}

// InputManager turns one hardware scan per frame into discrete button
// states, normalized stick vectors and a touch sample. Only Update mutates
// it; everything else reads.
type InputManager struct {
	source InputSource
	state  InputState
	raw    RawInput
}

// NewInputManager creates an input manager reading from src. Every button
// starts in ButtonNone.
func NewInputManager(src InputSource) *InputManager {
	return &InputManager{source: src}
}

// Update scans the source once and recomputes the whole state. Nothing
// from the previous frame survives; edges come from the scan's masks.
func (m *InputManager) Update() {
	var raw RawInput
	if m.source != nil {
		raw = m.source.Scan()
	}
	m.raw = raw

	m.state.CirclePad = Vec2{float64(raw.CirclePad.DX) / stickScale, float64(raw.CirclePad.DY) / stickScale}
	m.state.CStick = Vec2{float64(raw.CStick.DX) / stickScale, float64(raw.CStick.DY) / stickScale}

	m.state.Touch.Pressed = (raw.Down|raw.Held)&KeyTouch != 0
	m.state.Touch.Position = Vec2{float64(raw.Touch.PX), float64(raw.Touch.PY)}

	for b := Button(0); b < numButtons; b++ {
		m.state.Buttons[b] = deriveState(b.Mask(), raw)
	}
}

// deriveState applies the fixed priority: pressed, held, released, none.
func deriveState(mask uint32, raw RawInput) ButtonState {
	switch {
	case raw.Down&mask != 0:
		return ButtonPressed
	case raw.Held&mask != 0:
		return ButtonHeld
	case raw.Up&mask != 0:
		return ButtonReleased
	default:
		return ButtonNone
	}
}

// ButtonState returns the state of b for the current frame.
func (m *InputManager) ButtonState(b Button) ButtonState {
	if b >= numButtons {
		return ButtonNone
	}
	return m.state.Buttons[b]
}

// IsPressed reports whether b went down this frame.
func (m *InputManager) IsPressed(b Button) bool { return m.ButtonState(b) == ButtonPressed }

// IsHeld reports whether b has been down since an earlier frame.
func (m *InputManager) IsHeld(b Button) bool { return m.ButtonState(b) == ButtonHeld }

// IsReleased reports whether b went up this frame.
func (m *InputManager) IsReleased(b Button) bool { return m.ButtonState(b) == ButtonReleased }

// IsDown reports whether b is pressed or held.
func (m *InputManager) IsDown(b Button) bool {
	st := m.ButtonState(b)
	return st == ButtonPressed || st == ButtonHeld
}

// CirclePad returns the circle pad position, roughly in [-1, 1] per axis.
// Values are not clamped and can exceed the range at full deflection.
func (m *InputManager) CirclePad() Vec2 { return m.state.CirclePad }

// CStick returns the C-stick position, scaled like CirclePad.
func (m *InputManager) CStick() Vec2 { return m.state.CStick }

// Touch returns the touch screen state.
func (m *InputManager) Touch() TouchState { return m.state.Touch }

// State returns a copy of the full derived state.
func (m *InputManager) State() InputState { return m.state }

// Raw returns the last hardware scan.
func (m *InputManager) Raw() RawInput { return m.raw }
