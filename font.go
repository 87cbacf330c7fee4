package banner

import (
	"fmt"
	"os"

	"github.com/k1LoW/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	// DefaultFontPath is the monospace font tried first.
	DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf"
	// DefaultFontSize is in pixels (72 DPI).
	DefaultFontSize = 16
)

// FallbackFace is used when none of the candidate fonts can be loaded.
var FallbackFace font.Face = basicfont.Face7x13

// LoadFace returns a face for the first candidate path that can be read and parsed.
// The returned path is the one that succeeded. If every candidate fails, the
// error joins all failures.
func LoadFace(paths []string, size float64) (_ font.Face, _ string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if len(paths) == 0 {
		return nil, "", fmt.Errorf("no font candidates")
	}
	var errs error
	for _, p := range paths {
		face, err := loadFace(p, size)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		return face, p, nil
	}
	return nil, "", errs
}

func loadFace(p string, size float64) (font.Face, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", p, err)
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", p, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %s: %w", p, err)
	}
	return face, nil
}
