package tandem

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestManager(frames ...RawInput) (*Manager, *recordingPlatform, *fakeSource) {
	p := newRecordingPlatform(0)
	src := &fakeSource{frames: frames}
	return NewManager(p, src), p, src
}

func TestNewManagerDefaults(t *testing.T) {
	m, _, _ := newTestManager()
	if m.Bound(ScreenTop) != -1 || m.Bound(ScreenBottom) != -1 {
		t.Error("screens should start unbound")
	}
	if m.ExitButton() != ButtonStart {
		t.Errorf("ExitButton = %s, want START", m.ExitButton())
	}
	if m.Input() == nil {
		t.Error("Input should not be nil")
	}
}

func TestNewManagerNilPlatformPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewManager(nil, &fakeSource{})
}

func TestAddScene(t *testing.T) {
	m, _, _ := newTestManager()
	s1, s2 := NewScene("Level1"), NewScene("Level2")
	if i := m.AddScene(s1); i != 0 {
		t.Errorf("first index = %d, want 0", i)
	}
	if i := m.AddScene(s2); i != 1 {
		t.Errorf("second index = %d, want 1", i)
	}
	if m.NumScenes() != 2 || m.Scene(1) != s2 || m.Scene(2) != nil || m.Scene(-1) != nil {
		t.Error("registry lookup wrong")
	}
	if s1.Manager() != m {
		t.Error("scene manager not set")
	}
	if m.SceneIndex("Level2") != 1 || m.SceneIndex("nope") != -1 {
		t.Error("SceneIndex wrong")
	}
}

func TestAddSceneNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	m, _, _ := newTestManager()
	m.AddScene(nil)
}

func TestDuplicateNameResolvesToFirst(t *testing.T) {
	m, _, _ := newTestManager()
	m.AddScene(NewScene("dup"))
	m.AddScene(NewScene("dup"))
	m.LoadScene("dup", ScreenTop)
	if m.Bound(ScreenTop) != 0 {
		t.Errorf("Bound = %d, want 0", m.Bound(ScreenTop))
	}
}

func TestLoadSceneScenario(t *testing.T) {
	m, _, _ := newTestManager()
	l1, l2 := NewScene("Level1"), NewScene("Level2")
	var c1, c2 hookCounter
	c1.attach(l1)
	c2.attach(l2)
	m.AddScene(l1)
	m.AddScene(l2)

	if !m.LoadScene("Level1", ScreenTop) {
		t.Fatal("LoadScene(Level1) = false")
	}
	if !m.LoadScene("Level2", ScreenTop) {
		t.Fatal("LoadScene(Level2) = false")
	}

	if c1.loads != 1 || c1.unloads != 1 {
		t.Errorf("Level1 hooks = %+v, want 1 load 1 unload", c1)
	}
	if c2.loads != 1 || c2.unloads != 0 {
		t.Errorf("Level2 hooks = %+v, want 1 load", c2)
	}
	if m.Bound(ScreenTop) != 1 || m.BoundScene(ScreenTop) != l2 {
		t.Errorf("TOP bound = %d, want 1", m.Bound(ScreenTop))
	}
	if l1.IsLoaded() || !l2.IsLoaded() {
		t.Error("loaded flags wrong")
	}
}

func TestLoadUnknownSceneIsNoop(t *testing.T) {
	m, _, _ := newTestManager()
	l1 := NewScene("Level1")
	var c hookCounter
	c.attach(l1)
	m.AddScene(l1)
	m.LoadScene("Level1", ScreenTop)

	if m.LoadScene("Unknown", ScreenTop) {
		t.Error("LoadScene(Unknown) = true")
	}
	if m.LoadSceneIndex(5, ScreenTop) || m.LoadSceneIndex(-1, ScreenTop) {
		t.Error("out-of-range LoadSceneIndex = true")
	}
	if m.LoadSceneIndex(0, Screen(7)) {
		t.Error("invalid screen LoadSceneIndex = true")
	}
	if c.unloads != 0 {
		t.Errorf("Level1 unloads = %d, want 0", c.unloads)
	}
	if m.Bound(ScreenTop) != 0 {
		t.Errorf("TOP bound = %d, want 0", m.Bound(ScreenTop))
	}
}

func TestScreenIndependence(t *testing.T) {
	m, _, _ := newTestManager()
	a, b, c := NewScene("A"), NewScene("B"), NewScene("C")
	var ca, cb, cc hookCounter
	ca.attach(a)
	cb.attach(b)
	cc.attach(c)
	m.AddScene(a)
	m.AddScene(b)
	m.AddScene(c)

	m.LoadScene("A", ScreenTop)
	m.LoadScene("B", ScreenBottom)
	cb = hookCounter{}
	m.LoadScene("C", ScreenTop)

	if ca.unloads != 1 {
		t.Errorf("A unloads = %d, want 1", ca.unloads)
	}
	if cc.loads != 1 {
		t.Errorf("C loads = %d, want 1", cc.loads)
	}
	if cb.loads != 0 || cb.unloads != 0 {
		t.Errorf("B touched: %+v", cb)
	}
	if m.Bound(ScreenBottom) != 1 {
		t.Errorf("BOTTOM bound = %d, want 1", m.Bound(ScreenBottom))
	}
}

func TestSameSceneOnBothScreens(t *testing.T) {
	m, _, _ := newTestManager()
	s := NewScene("shared")
	var c hookCounter
	c.attach(s)
	m.AddScene(s)
	m.AddScene(NewScene("other"))

	m.LoadScene("shared", ScreenTop)
	m.LoadScene("shared", ScreenBottom)
	if c.loads != 2 {
		t.Errorf("loads = %d, want 2", c.loads)
	}

	m.LoadScene("other", ScreenTop)
	if !s.IsLoaded() {
		t.Error("scene still bound to BOTTOM should stay loaded")
	}
	m.LoadScene("other", ScreenBottom)
	if s.IsLoaded() {
		t.Error("scene bound nowhere should not be loaded")
	}
	if c.unloads != 2 {
		t.Errorf("unloads = %d, want 2", c.unloads)
	}
}

func TestReloadSameScene(t *testing.T) {
	m, _, _ := newTestManager()
	s := NewScene("s")
	var c hookCounter
	c.attach(s)
	m.AddScene(s)
	m.LoadScene("s", ScreenTop)
	m.LoadScene("s", ScreenTop)
	if c.loads != 2 || c.unloads != 1 {
		t.Errorf("hooks = %+v, want 2 loads 1 unload", c)
	}
	if !s.IsLoaded() {
		t.Error("reloaded scene should be loaded")
	}
}

func TestOnUnloadSeesPreviousBindingCleared(t *testing.T) {
	m, _, _ := newTestManager()
	a, b := NewScene("A"), NewScene("B")
	m.AddScene(a)
	m.AddScene(b)
	m.LoadScene("A", ScreenTop)

	var boundDuringUnload int
	a.OnUnload = func(s *Scene) { boundDuringUnload = s.Manager().Bound(ScreenTop) }
	m.LoadScene("B", ScreenTop)
	if boundDuringUnload != -1 {
		t.Errorf("Bound during OnUnload = %d, want -1", boundDuringUnload)
	}
}

// --- Frame loop ---

func TestUpdateClearsAndDrawsBoundScreens(t *testing.T) {
	m, p, _ := newTestManager()
	top := NewScene("top")
	top.BackgroundColor = ColorRed
	top.AddElement(NewRectangle(10, 10, ColorWhite))
	m.AddScene(top)
	m.LoadScene("top", ScreenTop)

	p.BeginFrame()
	m.Update()

	cmds := p.Top.Commands()
	if len(cmds) != 2 {
		t.Fatalf("TOP commands = %d, want 2", len(cmds))
	}
	if cmds[0].Type != CommandClear || cmds[0].Color != ColorRed {
		t.Errorf("first command = %+v, want red clear", cmds[0])
	}
	if cmds[1].Type != CommandRect {
		t.Errorf("second command = %+v, want rect", cmds[1])
	}
	if p.Bottom.Len() != 0 {
		t.Errorf("unbound BOTTOM got %d commands", p.Bottom.Len())
	}
}

func TestStepOrdering(t *testing.T) {
	var order []string
	p := newRecordingPlatform(0)
	src := &fakeSource{}
	m := NewManager(p, src)
	s := NewScene("s")
	s.OnUpdate = func(sc *Scene) {
		order = append(order, "update")
		if src.scans != 1 {
			t.Errorf("scans before update = %d, want 1", src.scans)
		}
		if len(p.calls) != 1 || p.calls[0] != "begin" {
			t.Errorf("platform calls before update = %v, want [begin]", p.calls)
		}
	}
	m.AddScene(s)
	m.LoadScene("s", ScreenTop)

	if !m.Step() {
		t.Fatal("Step = false")
	}
	if len(order) != 1 {
		t.Errorf("scene updated %d times, want 1", len(order))
	}
	if len(p.calls) != 2 || p.calls[1] != "end" {
		t.Errorf("platform calls = %v, want [begin end]", p.calls)
	}
	if m.Frame() != 1 {
		t.Errorf("Frame = %d, want 1", m.Frame())
	}
}

func TestExitGating(t *testing.T) {
	tests := []struct {
		name     string
		canExit  bool
		frames   []RawInput
		wantStep []bool
	}{
		{"no scene allows exit", false, []RawInput{press(ButtonStart), press(ButtonStart)}, []bool{true, true}},
		{"press exits", true, []RawInput{press(ButtonStart)}, []bool{false}},
		{"held does not exit", true, []RawInput{hold(ButtonStart), hold(ButtonStart)}, []bool{true, true}},
		{"release does not exit", true, []RawInput{{Up: KeyStart}}, []bool{true}},
		{"other button does not exit", true, []RawInput{press(ButtonA)}, []bool{true}},
		{"press after idle frames", true, []RawInput{{}, {}, press(ButtonStart)}, []bool{true, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, p, _ := newTestManager(tt.frames...)
			s := NewScene("s")
			s.SetCanExitWithKey(tt.canExit)
			m.AddScene(s)
			m.LoadScene("s", ScreenTop)
			for i, want := range tt.wantStep {
				if got := m.Step(); got != want {
					t.Errorf("Step %d = %v, want %v", i, got, want)
				}
			}
			last := tt.wantStep[len(tt.wantStep)-1]
			if !last && p.Frames != len(tt.wantStep)-1 {
				t.Errorf("presented %d frames, want %d", p.Frames, len(tt.wantStep)-1)
			}
		})
	}
}

func TestExitGatingUsesAnyBoundScreen(t *testing.T) {
	m, _, _ := newTestManager(press(ButtonStart))
	m.AddScene(NewScene("top"))
	bottom := NewScene("bottom")
	bottom.SetCanExitWithKey(true)
	m.AddScene(bottom)
	m.LoadScene("top", ScreenTop)
	m.LoadScene("bottom", ScreenBottom)

	if m.Step() {
		t.Error("BOTTOM scene allows exit but Step = true")
	}
}

func TestExitGatingIgnoresUnboundScenes(t *testing.T) {
	m, _, _ := newTestManager(press(ButtonStart))
	exitable := NewScene("exitable")
	exitable.SetCanExitWithKey(true)
	m.AddScene(exitable)
	m.AddScene(NewScene("bound"))
	m.LoadScene("bound", ScreenTop)

	if !m.Step() {
		t.Error("unbound exitable scene ended the loop")
	}
}

func TestCustomExitButton(t *testing.T) {
	m, _, _ := newTestManager(press(ButtonStart), press(ButtonSelect))
	m.SetExitButton(ButtonSelect)
	s := NewScene("s")
	s.SetCanExitWithKey(true)
	m.AddScene(s)
	m.LoadScene("s", ScreenTop)

	if !m.Step() {
		t.Error("START ended the loop with SELECT as exit button")
	}
	if m.Step() {
		t.Error("SELECT did not end the loop")
	}
}

func TestRunStopsOnPlatform(t *testing.T) {
	p := newRecordingPlatform(3)
	m := NewManager(p, &fakeSource{})
	m.AddScene(NewScene("s"))
	m.LoadScene("s", ScreenTop)
	m.Run()
	if p.Frames != 3 || m.Frame() != 3 {
		t.Errorf("frames = %d/%d, want 3", p.Frames, m.Frame())
	}
}

func TestRunStopsOnExit(t *testing.T) {
	p := newRecordingPlatform(0)
	m := NewManager(p, &fakeSource{frames: []RawInput{{}, {}, press(ButtonStart)}})
	s := NewScene("s")
	s.SetCanExitWithKey(true)
	m.AddScene(s)
	m.LoadScene("s", ScreenTop)
	m.Run()
	if p.Frames != 2 {
		t.Errorf("frames = %d, want 2", p.Frames)
	}
}

func TestLoadSceneFromHook(t *testing.T) {
	m, p, _ := newTestManager(press(ButtonA))
	l1, l2 := NewScene("Level1"), NewScene("Level2")
	l2.BackgroundColor = ColorBlue
	l1.OnUpdate = func(s *Scene) {
		if s.Input().IsPressed(ButtonA) {
			s.Manager().LoadScene("Level2", ScreenTop)
		}
	}
	m.AddScene(l1)
	m.AddScene(l2)
	m.LoadScene("Level1", ScreenTop)

	m.Step()
	if m.BoundScene(ScreenTop) != l2 {
		t.Fatal("hook did not switch scenes")
	}
	m.Step()
	if cmds := p.Top.Commands(); len(cmds) == 0 || cmds[0].Color != ColorBlue {
		t.Errorf("next frame not cleared to Level2 background: %+v", cmds)
	}
}

// --- Events ---

func TestEventSink(t *testing.T) {
	m, _, _ := newTestManager(press(ButtonStart))
	var got []LifecycleEvent
	m.SetEventSink(EventSinkFunc(func(e LifecycleEvent) { got = append(got, e) }))

	a, b := NewScene("A"), NewScene("B")
	b.SetCanExitWithKey(true)
	m.AddScene(a)
	m.AddScene(b)
	m.LoadScene("A", ScreenTop)
	m.LoadScene("B", ScreenTop)
	m.Step()

	want := []LifecycleEvent{
		{Type: EventSceneLoad, Scene: "A", Index: 0, Screen: ScreenTop},
		{Type: EventSceneUnload, Scene: "A", Index: 0, Screen: ScreenTop},
		{Type: EventSceneLoad, Scene: "B", Index: 1, Screen: ScreenTop},
		{Type: EventExit, Scene: "B", Index: 1, Screen: ScreenTop},
	}
	if len(got) != len(want) {
		t.Fatalf("events = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// --- Close ---

func TestClose(t *testing.T) {
	m, p, _ := newTestManager()
	s := NewScene("s")
	var c hookCounter
	c.attach(s)
	m.AddScene(s)
	m.LoadScene("s", ScreenTop)

	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if c.unloads != 1 {
		t.Errorf("unloads = %d, want 1", c.unloads)
	}
	if s.IsLoaded() || s.Manager() != nil || s.Input() != nil {
		t.Error("scene still bound after Close")
	}
	if m.NumScenes() != 0 || m.Bound(ScreenTop) != -1 {
		t.Error("registry not released")
	}
	if p.closed != 1 {
		t.Errorf("platform closed %d times, want 1", p.closed)
	}

	if err := m.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if p.closed != 1 {
		t.Errorf("second Close closed the platform again")
	}
}

type failingPlatform struct {
	*HeadlessPlatform
}

func (failingPlatform) Close() error { return errors.New("boom") }

func TestCloseWrapsPlatformError(t *testing.T) {
	m := NewManager(failingPlatform{NewHeadlessPlatform(1)}, nil)
	err := m.Close()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Close = %v, want wrapped boom", err)
	}
}

// --- Debug ---

func TestDebugLookupMiss(t *testing.T) {
	var buf bytes.Buffer
	prev := debugOut
	debugOut = &buf
	defer func() {
		debugOut = prev
		globalDebug = false
	}()

	m, _, _ := newTestManager()
	m.SetDebugMode(true)
	m.AddScene(NewScene("a"))
	m.AddScene(NewScene("a"))
	m.LoadScene("missing", ScreenTop)
	m.LoadScene("a", ScreenTop)
	m.Step()

	out := buf.String()
	for _, want := range []string{"[tandem]", "duplicate scene name", `no scene named "missing"`, "frame 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}
