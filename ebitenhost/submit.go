package ebitenhost

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/tandem"
)

// ellipseSegments is the number of fan triangles used per ellipse.
const ellipseSegments = 32

// submit replays cmds onto dst. Command coordinates are relative to the
// screen, so they are offset by dst's origin within the window.
func (h *Host) submit(dst *ebiten.Image, cmds []tandem.RenderCommand) {
	b := dst.Bounds()
	ox, oy := float32(b.Min.X), float32(b.Min.Y)

	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Type {
		case tandem.CommandClear:
			dst.Fill(cmd.Color)
		case tandem.CommandRect:
			vector.DrawFilledRect(dst, ox+float32(cmd.X), oy+float32(cmd.Y),
				float32(cmd.Width), float32(cmd.Height), cmd.Color, false)
		case tandem.CommandLine:
			vector.StrokeLine(dst, ox+float32(cmd.X), oy+float32(cmd.Y),
				ox+float32(cmd.X2), oy+float32(cmd.Y2), float32(cmd.Thickness), cmd.Color, true)
		case tandem.CommandCircle:
			vector.DrawFilledCircle(dst, ox+float32(cmd.X), oy+float32(cmd.Y),
				float32(cmd.Radius), cmd.Color, true)
		case tandem.CommandEllipse:
			h.drawEllipse(dst, ox, oy, cmd)
		case tandem.CommandSprite:
			drawSprite(dst, ox, oy, cmd)
		}
	}
}

// drawEllipse fills the ellipse inscribed in the command's box with a
// triangle fan over a white pixel.
func (h *Host) drawEllipse(dst *ebiten.Image, ox, oy float32, cmd *tandem.RenderCommand) {
	if cmd.Width <= 0 || cmd.Height <= 0 {
		return
	}
	verts, inds := ellipseFan(cmd.X+float64(ox), cmd.Y+float64(oy), cmd.Width, cmd.Height, cmd.Color)
	dst.DrawTriangles(verts, inds, h.whitePixel(), &ebiten.DrawTrianglesOptions{})
}

// ellipseFan builds the vertices and indices for a filled ellipse. Vertex 0
// is the hub at the center.
func ellipseFan(x, y, w, h float64, c tandem.Color) ([]ebiten.Vertex, []uint16) {
	r, g, b, a := straight(c)
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2

	verts := make([]ebiten.Vertex, ellipseSegments+2)
	inds := make([]uint16, 0, ellipseSegments*3)
	for i := range verts {
		v := &verts[i]
		if i == 0 {
			v.DstX, v.DstY = float32(cx), float32(cy)
		} else {
			theta := float64(i-1) * 2 * math.Pi / ellipseSegments
			v.DstX = float32(cx + rx*math.Cos(theta))
			v.DstY = float32(cy + ry*math.Sin(theta))
		}
		// Center of the white pixel.
		v.SrcX, v.SrcY = 0.5, 0.5
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	for i := 1; i <= ellipseSegments; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}
	return verts, inds
}

// drawSprite draws a sheet frame centered on the command position.
func drawSprite(dst *ebiten.Image, ox, oy float32, cmd *tandem.RenderCommand) {
	sheet, ok := cmd.Sheet.(*Sheet)
	if !ok {
		return
	}
	img := sheet.Frame(cmd.Frame)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Rotate(cmd.Rotation)
	op.GeoM.Translate(cmd.X+float64(ox), cmd.Y+float64(oy))
	dst.DrawImage(img, op)
}

// whitePixel returns a lazily created 1x1 white image.
func (h *Host) whitePixel() *ebiten.Image {
	if h.white == nil {
		h.white = ebiten.NewImage(1, 1)
		h.white.Fill(color.White)
	}
	return h.white
}

// straight converts a packed color to straight-alpha float channels.
func straight(c tandem.Color) (r, g, b, a float32) {
	return float32(uint32(c)&0xFF) / 255,
		float32(uint32(c>>8)&0xFF) / 255,
		float32(uint32(c>>16)&0xFF) / 255,
		float32(uint32(c>>24)&0xFF) / 255
}
