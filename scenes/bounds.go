package scenes

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const DefaultPixelsPerUnit = 100

// ImageBounds returns the size of an image file in scene units.
func ImageBounds(path string, pixelsPerUnit float64) (width, height float64, err error) {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = DefaultPixelsPerUnit
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("scenes: open sprite %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("scenes: decode sprite %s: %w", path, err)
	}
	return float64(cfg.Width) / pixelsPerUnit, float64(cfg.Height) / pixelsPerUnit, nil
}
