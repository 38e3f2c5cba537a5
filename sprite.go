package tandem

// NewSprite creates a sprite object with no sheet. Until SetSheet is called
// it draws nothing.
func NewSprite() *Object {
	o := &Object{Kind: KindSprite}
	objectDefaults(o)
	return o
}

// SetSheet assigns the sprite sheet and selects its first frame.
func (o *Object) SetSheet(sheet SpriteSheet) {
	o.sheet = sheet
	o.frame = 0
}

// Sheet returns the assigned sprite sheet, or nil.
func (o *Object) Sheet() SpriteSheet { return o.sheet }

// SetFrame selects the frame to display. Ignored when no sheet is set or
// index is outside the sheet.
func (o *Object) SetFrame(index int) {
	if o.sheet == nil || index < 0 || index >= o.sheet.NumFrames() {
		return
	}
	o.frame = index
}

// Frame returns the current frame index.
func (o *Object) Frame() int { return o.frame }

// Angle returns the rotation in degrees.
func (o *Object) Angle() float64 { return o.angle }

// SetAngle sets the rotation in degrees.
func (o *Object) SetAngle(deg float64) { o.angle = deg }

// AddAngle rotates by deg degrees.
func (o *Object) AddAngle(deg float64) { o.angle += deg }
