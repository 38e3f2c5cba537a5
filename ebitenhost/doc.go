// Package ebitenhost runs a tandem.Manager in an [Ebitengine] window.
//
// A [Host] is both the manager's platform and its input source. The two
// screens are laid out as on the device: the 400x240 top screen above the
// 320x240 bottom screen, centered. The mouse or a touch inside the bottom
// screen acts as the stylus.
//
//	host := ebitenhost.New(ebitenhost.Config{Title: "Demo", ShowFPS: true})
//	m := tandem.NewManager(host, host)
//	// ... add and load scenes ...
//	if err := host.Run(m); err != nil {
//		log.Fatal(err)
//	}
//
// Keyboard and standard-layout gamepads are mapped through a [Keymap].
// F1 toggles the FPS readout; F12 saves a screenshot when
// [Config.ScreenshotDir] is set.
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost
