package tandem

import "testing"

func TestCommandBufferRecordsInOrder(t *testing.T) {
	b := NewCommandBuffer()
	b.Clear(ColorBlack)
	b.DrawRect(1, 2, 3, 4, ColorRed)
	b.DrawLine(0, 0, 10, 10, 2, ColorGreen)
	b.DrawCircle(5, 5, 3, ColorBlue)
	b.DrawEllipse(0, 0, 20, 10, ColorYellow)
	b.DrawSprite(testSheet(1), 0, 8, 9, 1.5)

	want := []CommandType{CommandClear, CommandRect, CommandLine, CommandCircle, CommandEllipse, CommandSprite}
	cmds := b.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("Len = %d, want %d", len(cmds), len(want))
	}
	for i, typ := range want {
		if cmds[i].Type != typ {
			t.Errorf("command %d = %s, want %s", i, cmds[i].Type, typ)
		}
	}
	if r := cmds[1]; r.X != 1 || r.Y != 2 || r.Width != 3 || r.Height != 4 || r.Color != ColorRed {
		t.Errorf("rect = %+v", r)
	}
	if l := cmds[2]; l.X2 != 10 || l.Y2 != 10 || l.Thickness != 2 {
		t.Errorf("line = %+v", l)
	}
	if s := cmds[5]; s.Rotation != 1.5 || s.X != 8 || s.Y != 9 {
		t.Errorf("sprite = %+v", s)
	}
}

func TestCommandBufferReset(t *testing.T) {
	b := NewCommandBuffer()
	b.Clear(ColorBlack)
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", b.Len())
	}
}

func TestCommandTypeString(t *testing.T) {
	if CommandEllipse.String() != "ellipse" || CommandType(99).String() != "unknown" {
		t.Error("CommandType.String mismatch")
	}
}

func TestHeadlessPlatformFrameBudget(t *testing.T) {
	p := NewHeadlessPlatform(2)
	for p.Running() {
		p.BeginFrame()
		p.EndFrame()
	}
	if p.Frames != 2 {
		t.Errorf("Frames = %d, want 2", p.Frames)
	}

	// EndFrame without BeginFrame is ignored.
	p.EndFrame()
	if p.Frames != 2 {
		t.Errorf("unpaired EndFrame counted: Frames = %d", p.Frames)
	}
}

func TestHeadlessPlatformTargets(t *testing.T) {
	p := NewHeadlessPlatform(0)
	if p.Target(ScreenTop) != Surface(p.Top) || p.Target(ScreenBottom) != Surface(p.Bottom) {
		t.Error("Target does not return the screen buffers")
	}
	if p.Target(Screen(5)) != nil || p.Buffer(Screen(5)) != nil {
		t.Error("invalid screen should have no target")
	}

	p.Top.Clear(ColorRed)
	p.BeginFrame()
	if p.Top.Len() != 0 {
		t.Error("BeginFrame should reset buffers")
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGBA32(0xFF, 0x80, 0x00, 0xFF).RGBA()
	if r != 0xFFFF || g != 0x8080 || b != 0 || a != 0xFFFF {
		t.Errorf("RGBA = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
	_, _, _, a = ColorClear.RGBA()
	if a != 0 {
		t.Errorf("ColorClear alpha = %#x, want 0", a)
	}
}

func TestScreenSize(t *testing.T) {
	if w, h := ScreenTop.Size(); w != 400 || h != 240 {
		t.Errorf("top = %dx%d", w, h)
	}
	if w, h := ScreenBottom.Size(); w != 320 || h != 240 {
		t.Errorf("bottom = %dx%d", w, h)
	}
}
