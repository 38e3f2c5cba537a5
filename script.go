package tandem

import (
	"encoding/json"
	"fmt"
	"math"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`

	mask uint32 // resolved from Button at load time
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptedInput is an InputSource that replays a JSON input script, one
// frame per Scan. It is used for automated runs and tests.
//
// Supported actions:
//
//	press   {button}            button goes down and stays held
//	release {button}            button goes up
//	tap     {button}            down for one frame, up on the next
//	hold    {button, frames}    down for frames frames, then up
//	touch   {x, y, frames}      bottom screen touched at (x, y)
//	circle  {x, y, frames}      circle pad deflected; x and y in [-1, 1]
//	cstick  {x, y, frames}      C-stick deflected; x and y in [-1, 1]
//	wait    {frames}            no new input
//
// Every step takes at least one frame. Buttons use Button.String names.
type ScriptedInput struct {
	steps  []scriptStep
	cursor int

	// frames left in the current step
	remaining int
	current   *scriptStep

	held      uint32
	releasing uint32 // emitted as Up on the next scan

	circle StickSample
	cstick StickSample
	touch  TouchSample
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*ScriptedInput, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("tandem: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("tandem: parse input script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "press", "release", "tap", "hold":
			b, ok := ParseButton(st.Button)
			if !ok {
				return nil, fmt.Errorf("tandem: parse input script: step %d: unknown button %q", i, st.Button)
			}
			st.mask = b.Mask()
		case "touch":
			st.mask = KeyTouch
		case "circle", "cstick":
			if math.Abs(st.X) > 1 || math.Abs(st.Y) > 1 {
				return nil, fmt.Errorf("tandem: parse input script: step %d: stick (%g, %g) outside [-1, 1]", i, st.X, st.Y)
			}
		case "wait":
		default:
			return nil, fmt.Errorf("tandem: parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptedInput{steps: script.Steps}, nil
}

// Done reports whether every step has been played.
func (r *ScriptedInput) Done() bool {
	return r.cursor >= len(r.steps) && r.remaining == 0
}

// Scan produces the next frame of input.
func (r *ScriptedInput) Scan() RawInput {
	raw := RawInput{Up: r.releasing}
	r.releasing = 0

	if r.remaining == 0 && r.cursor < len(r.steps) {
		st := &r.steps[r.cursor]
		r.cursor++
		down, up := r.begin(st)
		raw.Down |= down
		raw.Up |= up
	}

	raw.Held = r.held
	raw.CirclePad = r.circle
	raw.CStick = r.cstick
	raw.Touch = r.touch

	if r.remaining > 0 {
		r.remaining--
		if r.remaining == 0 {
			r.end()
		}
	}
	return raw
}

// begin starts st and returns its edge masks for this frame.
func (r *ScriptedInput) begin(st *scriptStep) (down, up uint32) {
	r.current = st
	r.remaining = 1
	switch st.Action {
	case "press", "tap":
		down = st.mask &^ r.held
		r.held |= st.mask
	case "release":
		up = st.mask & r.held
		r.held &^= st.mask
	case "hold":
		down = st.mask &^ r.held
		r.held |= st.mask
		r.remaining = max(st.Frames, 1)
	case "touch":
		down = KeyTouch &^ r.held
		r.held |= KeyTouch
		r.touch = TouchSample{PX: uint16(max(st.X, 0)), PY: uint16(max(st.Y, 0))}
		r.remaining = max(st.Frames, 1)
	case "circle":
		r.circle = stickFromUnit(st.X, st.Y)
		r.remaining = max(st.Frames, 1)
	case "cstick":
		r.cstick = stickFromUnit(st.X, st.Y)
		r.remaining = max(st.Frames, 1)
	case "wait":
		r.remaining = max(st.Frames, 1)
	}
	return down, up
}

// end finishes the current step. Timed presses are released on the next scan.
func (r *ScriptedInput) end() {
	st := r.current
	r.current = nil
	if st == nil {
		return
	}
	switch st.Action {
	case "tap", "hold", "touch":
		r.releasing |= st.mask & r.held
		r.held &^= st.mask
		if st.Action == "touch" {
			r.touch = TouchSample{}
		}
	case "circle":
		r.circle = StickSample{}
	case "cstick":
		r.cstick = StickSample{}
	}
}

// stickFromUnit converts a [-1, 1] deflection to a raw stick delta.
func stickFromUnit(x, y float64) StickSample {
	return StickSample{
		DX: int16(math.Round(x * stickScale)),
		DY: int16(math.Round(y * stickScale)),
	}
}
