package tandem

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandClear   CommandType = iota // fill the whole target
	CommandRect                       // filled rectangle
	CommandLine                       // stroked segment
	CommandCircle                     // filled circle
	CommandEllipse                    // filled ellipse
	CommandSprite                     // sprite sheet frame
)

func (t CommandType) String() string {
	switch t {
	case CommandClear:
		return "clear"
	case CommandRect:
		return "rect"
	case CommandLine:
		return "line"
	case CommandCircle:
		return "circle"
	case CommandEllipse:
		return "ellipse"
	case CommandSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// RenderCommand is a single recorded draw call. Fields not used by Type are
// zero.
type RenderCommand struct {
	Type CommandType

	X, Y      float64 // rect/ellipse top-left, circle/sprite center, line start
	X2, Y2    float64 // line end
	Width     float64
	Height    float64
	Radius    float64
	Thickness float64
	Rotation  float64 // radians
	Color     Color

	Sheet SpriteSheet
	Frame int
}

// CommandBuffer is a Surface that records draw calls in order instead of
// rasterizing them. Hosts replay the list onto a real target; tests inspect
// it directly.
type CommandBuffer struct {
	commands []RenderCommand
}

// NewCommandBuffer creates an empty buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{commands: make([]RenderCommand, 0, 64)}
}

// Commands returns the recorded commands in draw order. The slice is reused
// after Reset and MUST NOT be retained across frames.
func (b *CommandBuffer) Commands() []RenderCommand { return b.commands }

// Len returns the number of recorded commands.
func (b *CommandBuffer) Len() int { return len(b.commands) }

// Reset drops every command while keeping the backing storage.
func (b *CommandBuffer) Reset() { b.commands = b.commands[:0] }

func (b *CommandBuffer) Clear(c Color) {
	b.commands = append(b.commands, RenderCommand{Type: CommandClear, Color: c})
}

func (b *CommandBuffer) DrawRect(x, y, w, h float64, c Color) {
	b.commands = append(b.commands, RenderCommand{
		Type: CommandRect, X: x, Y: y, Width: w, Height: h, Color: c,
	})
}

func (b *CommandBuffer) DrawLine(x0, y0, x1, y1, thickness float64, c Color) {
	b.commands = append(b.commands, RenderCommand{
		Type: CommandLine, X: x0, Y: y0, X2: x1, Y2: y1, Thickness: thickness, Color: c,
	})
}

func (b *CommandBuffer) DrawCircle(cx, cy, r float64, c Color) {
	b.commands = append(b.commands, RenderCommand{
		Type: CommandCircle, X: cx, Y: cy, Radius: r, Color: c,
	})
}

func (b *CommandBuffer) DrawEllipse(x, y, w, h float64, c Color) {
	b.commands = append(b.commands, RenderCommand{
		Type: CommandEllipse, X: x, Y: y, Width: w, Height: h, Color: c,
	})
}

func (b *CommandBuffer) DrawSprite(sheet SpriteSheet, frame int, x, y, rotation float64) {
	b.commands = append(b.commands, RenderCommand{
		Type: CommandSprite, X: x, Y: y, Rotation: rotation, Sheet: sheet, Frame: frame,
	})
}
