package tandem

import (
	"fmt"
	"io"
	"time"
)

// Manager owns the scene registry, binds one scene to each screen and
// drives the frame loop. It owns the single InputManager shared by every
// registered scene and their elements.
//
// Registered scenes belong to the manager until Close. There is no way to
// unregister a scene; indices returned by AddScene stay valid.
type Manager struct {
	platform Platform
	input    *InputManager

	scenes []*Scene
	bound  [numScreens]int

	exitButton Button
	frame      uint64

	sink   EventSink
	debug  bool
	closed bool
}

// NewManager creates a manager presenting to p and sampling input from src.
// Both screens start unbound and the exit button is ButtonStart.
func NewManager(p Platform, src InputSource) *Manager {
	if p == nil {
		panic("tandem: NewManager requires a platform")
	}
	m := &Manager{
		platform:   p,
		input:      NewInputManager(src),
		exitButton: ButtonStart,
	}
	for i := range m.bound {
		m.bound[i] = -1
	}
	return m
}

// Input returns the shared input manager.
func (m *Manager) Input() *InputManager { return m.input }

// Platform returns the platform the manager presents to.
func (m *Manager) Platform() Platform { return m.platform }

// ExitButton returns the button that ends the loop when a bound scene
// allows it.
func (m *Manager) ExitButton() Button { return m.exitButton }

// SetExitButton changes the exit button. It applies to every scene.
func (m *Manager) SetExitButton(b Button) { m.exitButton = b }

// Frame returns the number of frames presented so far.
func (m *Manager) Frame() uint64 { return m.frame }

// SetEventSink installs a receiver for lifecycle events. nil disables events.
func (m *Manager) SetEventSink(sink EventSink) { m.sink = sink }

// SetDebugMode enables frame stats and lookup-miss warnings on stderr.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
	globalDebug = enabled
}

// --- Registry ---

// AddScene registers s and returns its index. The scene is bound to this
// manager and its input manager. Panics if s is nil.
func (m *Manager) AddScene(s *Scene) int {
	if s == nil {
		panic("tandem: cannot add nil scene")
	}
	if m.debug && m.SceneIndex(s.name) >= 0 {
		debugf("warning: duplicate scene name %q; LoadScene resolves to the first", s.name)
	}
	s.manager = m
	s.setInputManager(m.input)
	m.scenes = append(m.scenes, s)
	return len(m.scenes) - 1
}

// Scene returns the scene at index, or nil if out of range.
func (m *Manager) Scene(index int) *Scene {
	if index < 0 || index >= len(m.scenes) {
		return nil
	}
	return m.scenes[index]
}

// SceneIndex returns the index of the first scene named name, or -1.
func (m *Manager) SceneIndex(name string) int {
	for i, s := range m.scenes {
		if s.name == name {
			return i
		}
	}
	return -1
}

// NumScenes returns the number of registered scenes.
func (m *Manager) NumScenes() int { return len(m.scenes) }

// --- Binding ---

// LoadScene binds the scene named name to screen. See LoadSceneIndex.
// Returns false, leaving every binding untouched, if no scene has that name.
func (m *Manager) LoadScene(name string, screen Screen) bool {
	index := m.SceneIndex(name)
	if index < 0 {
		if m.debug {
			debugf("LoadScene: no scene named %q", name)
		}
		return false
	}
	return m.LoadSceneIndex(index, screen)
}

// LoadSceneIndex binds the scene at index to screen. The scene previously
// bound to screen, if any, gets OnUnload first; the other screen is not
// touched. Loading the scene already bound to screen unloads and reloads it.
// Returns false, with no transition, for an out-of-range index or an
// invalid screen.
func (m *Manager) LoadSceneIndex(index int, screen Screen) bool {
	if index < 0 || index >= len(m.scenes) || !screen.valid() {
		if m.debug {
			debugf("LoadSceneIndex: ignoring index %d on screen %d", index, int(screen))
		}
		return false
	}

	if prev := m.bound[screen]; prev >= 0 {
		m.bound[screen] = -1
		old := m.scenes[prev]
		old.loaded = m.isBound(prev)
		if old.OnUnload != nil {
			old.OnUnload(old)
		}
		m.emit(EventSceneUnload, old, prev, screen)
	}

	m.bound[screen] = index
	s := m.scenes[index]
	s.loaded = true
	if s.OnLoad != nil {
		s.OnLoad(s)
	}
	m.emit(EventSceneLoad, s, index, screen)
	return true
}

// Bound returns the scene index bound to screen, or -1.
func (m *Manager) Bound(screen Screen) int {
	if !screen.valid() {
		return -1
	}
	return m.bound[screen]
}

// BoundScene returns the scene bound to screen, or nil.
func (m *Manager) BoundScene(screen Screen) *Scene {
	return m.Scene(m.Bound(screen))
}

// isBound reports whether index is bound to any screen.
func (m *Manager) isBound(index int) bool {
	for _, b := range m.bound {
		if b == index {
			return true
		}
	}
	return false
}

func (m *Manager) emit(t EventType, s *Scene, index int, screen Screen) {
	if m.sink == nil {
		return
	}
	m.sink.EmitEvent(LifecycleEvent{Type: t, Scene: s.name, Index: index, Screen: screen})
}

// --- Frame loop ---

// Update renders one pass: for each bound screen in order (top, bottom) it
// clears the target to the scene's background color and updates the scene.
// Unbound screens are skipped entirely.
func (m *Manager) Update() {
	for screen := Screen(0); screen < numScreens; screen++ {
		index := m.bound[screen]
		if index < 0 {
			continue
		}
		target := m.platform.Target(screen)
		if target == nil {
			continue
		}
		s := m.scenes[index]
		target.Clear(s.BackgroundColor)
		s.updateOn(target)
	}
}

// exitScene returns the index and screen of the first bound scene that
// allows exiting, or -1.
func (m *Manager) exitScene() (int, Screen) {
	for screen := Screen(0); screen < numScreens; screen++ {
		index := m.bound[screen]
		if index >= 0 && m.scenes[index].canExit {
			return index, screen
		}
	}
	return -1, ScreenTop
}

// Step runs one loop iteration: sample input once, check the exit gate,
// then present one frame. It returns false when the exit button was
// pressed this frame while a bound scene allows exiting; in that case no
// frame is presented.
func (m *Manager) Step() bool {
	var stats frameStats
	var start time.Time
	if m.debug {
		start = now()
	}

	m.input.Update()
	if m.debug {
		stats.inputTime = now().Sub(start)
		start = now()
	}

	if index, screen := m.exitScene(); index >= 0 && m.input.IsPressed(m.exitButton) {
		m.emit(EventExit, m.scenes[index], index, screen)
		if m.debug {
			debugf("exit button %s pressed in scene %q", m.exitButton, m.scenes[index].name)
		}
		return false
	}

	m.platform.BeginFrame()
	m.Update()
	if m.debug {
		stats.updateTime = now().Sub(start)
		stats.commandCount = m.countCommands()
		start = now()
	}

	m.platform.EndFrame()
	m.frame++
	if m.debug {
		stats.presentTime = now().Sub(start)
		m.debugLog(stats)
	}
	return true
}

// Run loops until the platform stops or the exit button ends it.
func (m *Manager) Run() {
	for m.platform.Running() {
		if !m.Step() {
			break
		}
	}
}

// Close unloads every bound scene and releases the registry. When the
// platform implements io.Closer it is closed too. Calling Close again is a
// no-op.
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	for screen := Screen(0); screen < numScreens; screen++ {
		prev := m.bound[screen]
		if prev < 0 {
			continue
		}
		m.bound[screen] = -1
		s := m.scenes[prev]
		s.loaded = m.isBound(prev)
		if s.OnUnload != nil {
			s.OnUnload(s)
		}
		m.emit(EventSceneUnload, s, prev, screen)
	}
	for i, s := range m.scenes {
		s.manager = nil
		s.setInputManager(nil)
		m.scenes[i] = nil
	}
	m.scenes = nil

	if c, ok := m.platform.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("tandem: close platform: %w", err)
		}
	}
	return nil
}
