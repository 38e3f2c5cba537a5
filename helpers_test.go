package tandem

// --- Shared test fakes ---

// fakeSource replays a fixed list of scans, then reports nothing.
type fakeSource struct {
	frames []RawInput
	scans  int
}

func (f *fakeSource) Scan() RawInput {
	f.scans++
	if len(f.frames) == 0 {
		return RawInput{}
	}
	raw := f.frames[0]
	f.frames = f.frames[1:]
	return raw
}

// recordingPlatform wraps HeadlessPlatform and logs call order.
type recordingPlatform struct {
	*HeadlessPlatform
	calls  []string
	closed int
}

func newRecordingPlatform(maxFrames int) *recordingPlatform {
	return &recordingPlatform{HeadlessPlatform: NewHeadlessPlatform(maxFrames)}
}

func (p *recordingPlatform) BeginFrame() {
	p.calls = append(p.calls, "begin")
	p.HeadlessPlatform.BeginFrame()
}

func (p *recordingPlatform) EndFrame() {
	p.calls = append(p.calls, "end")
	p.HeadlessPlatform.EndFrame()
}

func (p *recordingPlatform) Close() error {
	p.closed++
	return nil
}

// press returns a scan with b going down this frame.
func press(b Button) RawInput {
	return RawInput{Down: b.Mask(), Held: b.Mask()}
}

// hold returns a scan with b held from an earlier frame.
func hold(b Button) RawInput {
	return RawInput{Held: b.Mask()}
}

// hookCounter counts scene hook calls.
type hookCounter struct {
	loads, unloads int
}

func (c *hookCounter) attach(s *Scene) {
	s.OnLoad = func(*Scene) { c.loads++ }
	s.OnUnload = func(*Scene) { c.unloads++ }
}
