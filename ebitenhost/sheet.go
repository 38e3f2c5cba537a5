package ebitenhost

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sheet is a sprite sheet: one image split into numbered frames. It
// implements tandem.SpriteSheet.
type Sheet struct {
	image  *ebiten.Image
	frames []*ebiten.Image
	names  []string
}

// NumFrames returns the number of frames.
func (s *Sheet) NumFrames() int { return len(s.frames) }

// Frame returns the sub-image for frame i, or nil if out of range.
func (s *Sheet) Frame(i int) *ebiten.Image {
	if i < 0 || i >= len(s.frames) {
		return nil
	}
	return s.frames[i]
}

// FrameIndex returns the index of a named frame from a TexturePacker sheet,
// or -1.
func (s *Sheet) FrameIndex(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Image returns the backing image.
func (s *Sheet) Image() *ebiten.Image { return s.image }

// NewGridSheet slices img into frameW x frameH cells, left to right and
// top to bottom. Partial cells at the right and bottom edges are dropped.
func NewGridSheet(img *ebiten.Image, frameW, frameH int) (*Sheet, error) {
	if img == nil {
		return nil, fmt.Errorf("ebitenhost: grid sheet: nil image")
	}
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("ebitenhost: grid sheet: invalid frame size %dx%d", frameW, frameH)
	}
	b := img.Bounds()
	s := &Sheet{image: img}
	for y := b.Min.Y; y+frameH <= b.Max.Y; y += frameH {
		for x := b.Min.X; x+frameW <= b.Max.X; x += frameW {
			s.frames = append(s.frames, img.SubImage(image.Rect(x, y, x+frameW, y+frameH)).(*ebiten.Image))
		}
	}
	if len(s.frames) == 0 {
		return nil, fmt.Errorf("ebitenhost: grid sheet: %dx%d image holds no %dx%d frame",
			b.Dx(), b.Dy(), frameW, frameH)
	}
	return s, nil
}

// LoadSheetFile loads a PNG from disk and slices it into a grid.
func LoadSheetFile(path string, frameW, frameH int) (*Sheet, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: load sheet %s: %w", path, err)
	}
	return NewGridSheet(img, frameW, frameH)
}

// --- TexturePacker JSON ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// LoadSheet builds a sheet from TexturePacker JSON and its page image.
// Both the hash format (top-level "frames") and the array format (first
// entry of "textures") are accepted. Frames are ordered by name, so
// "walk_00", "walk_01", ... become frames 0, 1, ...
func LoadSheet(jsonData []byte, img *ebiten.Image) (*Sheet, error) {
	if img == nil {
		return nil, fmt.Errorf("ebitenhost: load sheet: nil image")
	}
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("ebitenhost: parse sheet JSON: %w", err)
	}

	var frames map[string]jsonFrame
	switch {
	case probe.Textures != nil:
		var pages []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &pages); err != nil {
			return nil, fmt.Errorf("ebitenhost: parse sheet textures: %w", err)
		}
		if len(pages) == 0 {
			return nil, fmt.Errorf("ebitenhost: sheet JSON has no texture pages")
		}
		frames = pages[0].Frames
	case probe.Frames != nil:
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("ebitenhost: parse sheet frames: %w", err)
		}
	default:
		return nil, fmt.Errorf("ebitenhost: sheet JSON has neither \"frames\" nor \"textures\" key")
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("ebitenhost: sheet JSON has no frames")
	}

	s := &Sheet{image: img, names: make([]string, 0, len(frames))}
	for name := range frames {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	b := img.Bounds()
	for _, name := range s.names {
		r := frames[name].Frame
		rect := image.Rect(b.Min.X+r.X, b.Min.Y+r.Y, b.Min.X+r.X+r.W, b.Min.Y+r.Y+r.H)
		if !rect.In(b) || rect.Empty() {
			return nil, fmt.Errorf("ebitenhost: sheet frame %q %v outside image %v", name, rect, b)
		}
		s.frames = append(s.frames, img.SubImage(rect).(*ebiten.Image))
	}
	return s, nil
}
