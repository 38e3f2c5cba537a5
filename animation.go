package tandem

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two values on an Object at once. Values are
// written through the object's setters, so attached children follow a
// tweened parent. Create one with TweenPosition, TweenX, TweenY or
// TweenAngle and call Update(dt) each frame, typically from a scene's
// OnUpdate hook.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  [2]func(float64)
	count  int
	target *Object
	Done   bool
}

// Update advances every tween by dt seconds and writes the values. A group
// whose target has been detached from every scene keeps running; stop it by
// dropping the group.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Target returns the animated object.
func (g *TweenGroup) Target() *Object { return g.target }

// TweenPosition animates the object's position to (toX, toY).
func TweenPosition(obj *Object, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: obj}
	g.tweens[0] = gween.New(float32(obj.x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(obj.y), float32(toY), duration, fn)
	g.apply[0] = obj.SetX
	g.apply[1] = obj.SetY
	return g
}

// TweenX animates only the X position.
func TweenX(obj *Object, toX float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: obj}
	g.tweens[0] = gween.New(float32(obj.x), float32(toX), duration, fn)
	g.apply[0] = obj.SetX
	return g
}

// TweenY animates only the Y position.
func TweenY(obj *Object, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: obj}
	g.tweens[0] = gween.New(float32(obj.y), float32(toY), duration, fn)
	g.apply[0] = obj.SetY
	return g
}

// TweenAngle animates a sprite's rotation, in degrees.
func TweenAngle(obj *Object, toDeg float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: obj}
	g.tweens[0] = gween.New(float32(obj.angle), float32(toDeg), duration, fn)
	g.apply[0] = obj.SetAngle
	return g
}
