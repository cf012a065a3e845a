package rankcard

import (
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

const cardFontFile = "Roboto-Bold.ttf"

// loadFont returns the card font: a custom TTF dropped into fontsDir if one
// exists, otherwise the embedded Go Bold face.
func loadFont(fontsDir string) (*truetype.Font, error) {
	if fontsDir != "" {
		path := filepath.Join(fontsDir, cardFontFile)
		if data, err := os.ReadFile(path); err == nil {
			if parsed, err := truetype.Parse(data); err == nil {
				return parsed, nil
			}
		}
	}
	return truetype.Parse(gobold.TTF)
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
