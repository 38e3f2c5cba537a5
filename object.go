package tandem

import "math"

// ObjectKind selects how an Object draws itself.
type ObjectKind uint8

const (
	KindContainer ObjectKind = iota // positional node with no visual output
	KindRectangle                   // filled rectangle, top-left anchored
	KindLine                        // segment from the object position to EndPoint
	KindCircle                      // filled circle, center anchored
	KindEllipse                     // filled ellipse, top-left of its bounding box
	KindSprite                      // sprite sheet frame, center anchored and rotatable
)

func (k ObjectKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindRectangle:
		return "rectangle"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// Object is a node of a scene's drawable tree. A single flat struct serves
// every shape kind; the position and attachment behavior is shared and only
// the draw step depends on Kind.
//
// Objects are allocated by the caller. Neither Scene nor a parent Object
// takes ownership: attaching or adding only records a reference.
type Object struct {
	Kind ObjectKind

	// absolute position
	x, y float64
	// offset from parent, frozen at Attach time
	relX, relY float64

	Visible bool

	// Hierarchy. parent is a back-reference only; the parent drives the
	// child's position but not its lifetime.
	parent   *Object
	attached []*Object

	// Scene binding, set by Scene.AddElement.
	id    int
	scene *Scene
	input *InputManager

	// Shape payload.
	Width     float64
	Height    float64
	Radius    float64
	Thickness float64
	Color     Color
	endX      float64
	endY      float64

	// Sprite payload (KindSprite).
	sheet SpriteSheet
	frame int
	angle float64 // degrees

	// OnUpdate runs every frame before the draw step, so position and
	// visibility changes made here show up in the same frame.
	OnUpdate func(o *Object, s *Scene)

	// UserData is free for the application.
	UserData any
}

// objectDefaults sets the field values shared by all constructors.
func objectDefaults(o *Object) {
	o.Visible = true
	o.id = -1
	o.Color = ColorWhite
}

// NewObject creates a bare positional object that draws nothing. Useful as
// an anchor for attached children.
func NewObject() *Object {
	o := &Object{Kind: KindContainer}
	objectDefaults(o)
	return o
}

// NewRectangle creates a filled rectangle.
func NewRectangle(w, h float64, c Color) *Object {
	o := &Object{Kind: KindRectangle}
	objectDefaults(o)
	o.Width, o.Height, o.Color = w, h, c
	return o
}

// NewLine creates a line. Its start is the object position; set the end
// with SetEndPoint.
func NewLine(c Color, thickness float64) *Object {
	o := &Object{Kind: KindLine}
	objectDefaults(o)
	o.Color, o.Thickness = c, thickness
	return o
}

// NewCircle creates a filled circle centered on the object position.
func NewCircle(radius float64, c Color) *Object {
	o := &Object{Kind: KindCircle}
	objectDefaults(o)
	o.Radius, o.Color = radius, c
	return o
}

// NewEllipse creates a filled ellipse whose bounding box starts at the
// object position.
func NewEllipse(w, h float64, c Color) *Object {
	o := &Object{Kind: KindEllipse}
	objectDefaults(o)
	o.Width, o.Height, o.Color = w, h, c
	return o
}

// --- Position ---

// X returns the absolute X position.
func (o *Object) X() float64 { return o.x }

// Y returns the absolute Y position.
func (o *Object) Y() float64 { return o.y }

// Position returns the absolute position.
func (o *Object) Position() Vec2 { return Vec2{o.x, o.y} }

// SetX sets the absolute X position. Attached children are repositioned
// only when there are any.
func (o *Object) SetX(x float64) {
	o.x = x
	if len(o.attached) > 0 {
		o.UpdateAttached()
	}
}

// SetY sets the absolute Y position. Attached children are repositioned
// only when there are any.
func (o *Object) SetY(y float64) {
	o.y = y
	if len(o.attached) > 0 {
		o.UpdateAttached()
	}
}

// AddX moves the object horizontally and always runs propagation.
func (o *Object) AddX(dx float64) {
	o.x += dx
	o.UpdateAttached()
}

// AddY moves the object vertically and always runs propagation.
func (o *Object) AddY(dy float64) {
	o.y += dy
	o.UpdateAttached()
}

// SetPosition is SetX followed by SetY with a single propagation pass.
func (o *Object) SetPosition(x, y float64) {
	o.x = x
	o.y = y
	if len(o.attached) > 0 {
		o.UpdateAttached()
	}
}

// Relative returns the offset from the parent frozen at Attach time.
// Zero for unattached objects.
func (o *Object) Relative() Vec2 { return Vec2{o.relX, o.relY} }

// --- Attachment ---

// Parent returns the object this one is attached to, or nil.
func (o *Object) Parent() *Object { return o.parent }

// Attached returns the attached children in attach order. The returned
// slice MUST NOT be mutated.
func (o *Object) Attached() []*Object { return o.attached }

// NumAttached returns the number of attached children.
func (o *Object) NumAttached() int { return len(o.attached) }

// Attach makes child follow this object. The child's current offset from
// this object is frozen and reapplied on every propagation; it is never
// recomputed afterwards. A child attached elsewhere is moved here.
// Panics if child is nil, is o itself, or is an ancestor of o.
func (o *Object) Attach(child *Object) {
	if child == nil {
		panic("tandem: cannot attach nil object")
	}
	if isAncestor(child, o) {
		panic("tandem: attaching would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeAttached(child)
	}
	child.relX = child.x - o.x
	child.relY = child.y - o.y
	child.parent = o
	o.attached = append(o.attached, child)
	if globalDebug {
		debugCheckAttachDepth(child)
	}
}

// Detach releases child from this object. The child keeps its current
// absolute position. No-op if child is not attached to o.
func (o *Object) Detach(child *Object) {
	if child == nil || child.parent != o {
		return
	}
	o.removeAttached(child)
	child.parent = nil
	child.relX, child.relY = 0, 0
}

// DetachFromParent detaches this object from its parent, if any.
func (o *Object) DetachFromParent() {
	if o.parent == nil {
		return
	}
	o.parent.Detach(o)
}

// UpdateAttached repositions every attached child at this object's
// position plus the child's frozen offset, then recurses depth-first.
func (o *Object) UpdateAttached() {
	for _, child := range o.attached {
		child.x = o.x + child.relX
		child.y = o.y + child.relY
		child.UpdateAttached()
	}
}

// --- Scene binding ---

// ID returns the index assigned by the owning scene, or -1 when unbound.
func (o *Object) ID() int { return o.id }

// Scene returns the scene this object was added to, or nil.
func (o *Object) Scene() *Scene { return o.scene }

// Input returns the shared input manager, or nil before the object is added
// to a scene registered with a Manager.
func (o *Object) Input() *InputManager { return o.input }

// --- Line ---

// SetEndPoint sets the absolute end point of a line. The end point is not
// moved by propagation.
func (o *Object) SetEndPoint(x, y float64) {
	o.endX = x
	o.endY = y
}

// EndPoint returns the line end point.
func (o *Object) EndPoint() Vec2 { return Vec2{o.endX, o.endY} }

// --- Update / draw ---

// Update runs the OnUpdate hook and then draws the object to the scene's
// current target when it is visible. An object whose hook removed it from s
// is not drawn.
func (o *Object) Update(s *Scene) {
	if o.OnUpdate != nil {
		o.OnUpdate(o, s)
	}
	if !o.Visible || s == nil || s.target == nil || o.scene != s {
		return
	}
	o.draw(s.target)
}

// draw emits the single rasterizer call for this object's kind.
func (o *Object) draw(dst Surface) {
	switch o.Kind {
	case KindRectangle:
		dst.DrawRect(o.x, o.y, o.Width, o.Height, o.Color)
	case KindLine:
		dst.DrawLine(o.x, o.y, o.endX, o.endY, o.Thickness, o.Color)
	case KindCircle:
		dst.DrawCircle(o.x, o.y, o.Radius, o.Color)
	case KindEllipse:
		dst.DrawEllipse(o.x, o.y, o.Width, o.Height, o.Color)
	case KindSprite:
		if o.sheet != nil {
			dst.DrawSprite(o.sheet, o.frame, o.x, o.y, o.angle*math.Pi/180)
		}
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its parents.
func isAncestor(candidate, node *Object) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeAttached removes child from o.attached without touching child.parent.
func (o *Object) removeAttached(child *Object) {
	for i, c := range o.attached {
		if c == child {
			copy(o.attached[i:], o.attached[i+1:])
			o.attached[len(o.attached)-1] = nil
			o.attached = o.attached[:len(o.attached)-1]
			return
		}
	}
}
