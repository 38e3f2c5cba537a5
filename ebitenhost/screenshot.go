package ebitenhost

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tandem"
)

// screenCapture holds one screen's pixels at the time of capture.
type screenCapture struct {
	screen tandem.Screen
	img    *image.RGBA
}

// captureScreen copies the pixels of a screen region. Ebitengine and
// image.RGBA both use premultiplied alpha, so no conversion is needed;
// png.Encode straightens the alpha when writing.
func captureScreen(screen tandem.Screen, region *ebiten.Image) screenCapture {
	b := region.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	region.ReadPixels(img.Pix)
	return screenCapture{screen: screen, img: img}
}

// screenshotName is <stamp>_<label>_<screen>.png.
func screenshotName(stamp, label string, screen tandem.Screen) string {
	return fmt.Sprintf("%s_%s_%s.png", stamp, sanitizeLabel(label), screen)
}

// saveScreenshots writes every capture once per label into dir. A failed
// file does not stop the others.
func saveScreenshots(dir, stamp string, labels []string, shots []screenCapture) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot dir: %w", err)
	}
	var errs []error
	for _, label := range labels {
		for _, shot := range shots {
			path := filepath.Join(dir, screenshotName(stamp, label, shot.screen))
			if err := writePNG(path, shot.img); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', maps everything
// else to '_', and names blank labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
