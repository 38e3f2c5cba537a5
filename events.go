package tandem

// EventType identifies a manager lifecycle transition.
type EventType uint8

const (
	EventSceneLoad   EventType = iota // a scene was bound to a screen
	EventSceneUnload                  // a scene was unbound from a screen
	EventExit                         // the exit button ended the loop
)

func (t EventType) String() string {
	switch t {
	case EventSceneLoad:
		return "load"
	case EventSceneUnload:
		return "unload"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// LifecycleEvent describes one transition. For EventExit, Scene and Index
// name the scene whose exit permission allowed it.
type LifecycleEvent struct {
	Type   EventType
	Scene  string
	Index  int
	Screen Screen
}

// EventSink receives lifecycle events synchronously, after the matching
// scene hook has run.
type EventSink interface {
	EmitEvent(e LifecycleEvent)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(e LifecycleEvent)

// EmitEvent calls f(e).
func (f EventSinkFunc) EmitEvent(e LifecycleEvent) { f(e) }
