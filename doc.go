// Package tandem is a small scene/object framework for a dual-screen
// handheld: a top display and a touch-enabled bottom display, each showing
// one scene at a time.
//
// The package has no graphics dependency of its own. Drawing goes through
// the [Surface] and [Platform] interfaces and input comes from an
// [InputSource]. The ebitenhost package provides both on top of
// [Ebitengine]; [HeadlessPlatform] and [ScriptedInput] run everything
// without a window.
//
// # Quick start
//
//	host := ebitenhost.New(ebitenhost.Config{Title: "Demo"})
//	m := tandem.NewManager(host, host)
//
//	level := tandem.NewScene("Level1")
//	player := tandem.NewRectangle(10, 10, tandem.ColorWhite)
//	player.SetPosition(200, 120)
//	level.AddElement(player)
//	level.SetCanExitWithKey(true)
//
//	m.AddScene(level)
//	m.LoadScene("Level1", tandem.ScreenTop)
//	if err := host.Run(m); err != nil {
//		log.Fatal(err)
//	}
//
// # Objects
//
// Every drawable is an [Object]. Typed constructors pick the shape:
// [NewRectangle], [NewLine], [NewCircle], [NewEllipse], [NewSprite], and
// [NewObject] for an invisible anchor.
//
// [Object.Attach] makes one object follow another. The child's offset from
// its parent is frozen at attach time and reapplied whenever the parent
// moves through SetX, SetY, AddX, AddY or SetPosition. Propagation is
// push-based: moving a child directly is overwritten the next time its
// parent moves.
//
// Only root elements of a scene are updated and drawn. Attached children
// follow their parent's position but must also be added to the scene to
// appear on screen.
//
// # Scenes and screens
//
// A [Manager] owns every registered [Scene] and binds at most one to each
// screen. [Manager.LoadScene] unloads the scene previously bound to that
// screen and loads the new one; the other screen is untouched. The same
// scene may be bound to both screens.
//
// Each frame the manager samples input once, checks the exit gate, then
// clears each bound screen to its scene's background color and updates the
// scene. A scene opts in to [Scene.SetCanExitWithKey]; while any bound
// scene allows it, pressing the exit button (START by default) ends
// [Manager.Run].
//
// # Input
//
// [InputManager] derives one [ButtonState] per button per frame from the
// hardware's down, held and up masks, in that priority. Stick values are
// scaled to roughly [-1, 1] and are not clamped.
//
// # Tweens
//
// [TweenPosition] and friends animate objects via [gween]. Values go
// through the setters so attached children follow.
//
// # ECS integration
//
// The tandem/ecs module forwards [LifecycleEvent]s into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tandem
