package tandem

// Scene is an ordered collection of root-level objects plus the metadata the
// Manager needs to bind it to a screen. It does not own its objects.
type Scene struct {
	name string

	// BackgroundColor clears the bound screen at the start of every frame.
	BackgroundColor Color

	canExit bool
	loaded  bool

	elements []*Object

	manager *Manager
	input   *InputManager

	// current draw target; set only while the Manager updates this scene
	target Surface

	// Hooks. All are nil by default. OnLoad and OnUnload fire on screen
	// binding transitions and may run many times on the same instance;
	// nothing is reset between loads.
	OnLoad   func(s *Scene)
	OnUnload func(s *Scene)
	// OnUpdate runs once per Update, before any element.
	OnUpdate func(s *Scene)
}

// NewScene creates an empty scene. name identifies it to Manager.LoadScene.
func NewScene(name string) *Scene {
	return &Scene{
		name:            name,
		BackgroundColor: ColorBlack,
	}
}

// Name returns the scene name.
func (s *Scene) Name() string { return s.name }

// CanExitWithKey reports whether this scene lets the manager's exit button
// end the loop while it is bound.
func (s *Scene) CanExitWithKey() bool { return s.canExit }

// SetCanExitWithKey sets the exit permission.
func (s *Scene) SetCanExitWithKey(v bool) { s.canExit = v }

// IsLoaded reports whether the scene is bound to at least one screen.
func (s *Scene) IsLoaded() bool { return s.loaded }

// Manager returns the manager the scene is registered with, or nil.
func (s *Scene) Manager() *Manager { return s.manager }

// Input returns the shared input manager, or nil before registration.
func (s *Scene) Input() *InputManager { return s.input }

// setInputManager binds the input manager to the scene and every element.
func (s *Scene) setInputManager(in *InputManager) {
	s.input = in
	for _, e := range s.elements {
		e.input = in
	}
}

// --- Elements ---

// AddElement appends obj to the root-level sequence. Later elements draw on
// top of earlier ones. Panics if obj is nil.
func (s *Scene) AddElement(obj *Object) {
	if obj == nil {
		panic("tandem: cannot add nil element")
	}
	obj.id = len(s.elements)
	obj.scene = s
	s.elements = append(s.elements, obj)
	if s.input != nil {
		obj.input = s.input
	}
}

// RemoveElement removes the element at index without disposing of it.
// Out-of-range indices are ignored.
func (s *Scene) RemoveElement(index int) {
	if index < 0 || index >= len(s.elements) {
		return
	}
	obj := s.elements[index]
	copy(s.elements[index:], s.elements[index+1:])
	s.elements[len(s.elements)-1] = nil
	s.elements = s.elements[:len(s.elements)-1]
	s.unbind(obj)
	s.reindex(index)
}

// RemoveElementByInstance removes the first occurrence of obj. No-op if obj
// is not an element.
func (s *Scene) RemoveElementByInstance(obj *Object) {
	s.RemoveElement(s.ElementIndex(obj))
}

// ElementIndex returns the index of obj, or -1 if it is not an element.
func (s *Scene) ElementIndex(obj *Object) int {
	for i, e := range s.elements {
		if e == obj {
			return i
		}
	}
	return -1
}

// Element returns the element at index, or nil if out of range.
func (s *Scene) Element(index int) *Object {
	if index < 0 || index >= len(s.elements) {
		return nil
	}
	return s.elements[index]
}

// Elements returns the root-level elements in update order. The returned
// slice MUST NOT be mutated.
func (s *Scene) Elements() []*Object {
	return s.elements
}

// NumElements returns the number of root-level elements.
func (s *Scene) NumElements() int {
	return len(s.elements)
}

// unbind clears the scene binding of a removed element, unless the same
// object is still present at another index.
func (s *Scene) unbind(obj *Object) {
	if s.ElementIndex(obj) >= 0 {
		return
	}
	obj.id = -1
	obj.scene = nil
}

// reindex refreshes element ids from index onward.
func (s *Scene) reindex(from int) {
	for i := from; i < len(s.elements); i++ {
		s.elements[i].id = i
	}
}

// --- Update ---

// Update runs the scene hook and then updates every root element in
// insertion order. Attached children are repositioned by their parents but
// are not updated or drawn here unless they are root elements themselves.
func (s *Scene) Update() {
	if s.OnUpdate != nil {
		s.OnUpdate(s)
	}
	// Hooks may add or remove elements mid-pass. Elements added now wait for
	// the next frame; elements removed now are skipped.
	elems := append([]*Object(nil), s.elements...)
	for _, e := range elems {
		if e.scene != s {
			continue
		}
		e.Update(s)
	}
}

// updateOn runs Update with dst as the draw target.
func (s *Scene) updateOn(dst Surface) {
	s.target = dst
	s.Update()
	s.target = nil
}
