package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawFPS prints the current FPS and TPS in the top-left corner.
func drawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
}
