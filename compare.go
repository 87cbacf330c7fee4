package banner

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

// Equivalent reports whether a and b have the same size and the same pixels.
// Pixels are compared as non-premultiplied RGBA, so a render and its decoded PNG compare equal.
func Equivalent(a, b image.Image) (_ bool, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if a == nil || b == nil {
		return false, fmt.Errorf("image is nil")
	}
	if a.Bounds().Size() != b.Bounds().Size() {
		return false, nil
	}
	an, bn := toNRGBA(a), toNRGBA(b)
	w := an.Rect.Dx() * 4
	for y := 0; y < an.Rect.Dy(); y++ {
		ar := an.Pix[y*an.Stride : y*an.Stride+w]
		br := bn.Pix[y*bn.Stride : y*bn.Stride+w]
		if !bytes.Equal(ar, br) {
			return false, nil
		}
	}
	return true, nil
}

// Distance returns the perceptual hash distance between a and b.
// It says how far apart two banners look; 0 does not imply Equivalent.
func Distance(a, b image.Image) (_ int, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if a == nil || b == nil {
		return 0, fmt.Errorf("image is nil")
	}
	aHash, err := goimagehash.PerceptionHash(a)
	if err != nil {
		return 0, fmt.Errorf("failed to compute perceptual hash: %w", err)
	}
	bHash, err := goimagehash.PerceptionHash(b)
	if err != nil {
		return 0, fmt.Errorf("failed to compute perceptual hash: %w", err)
	}
	d, err := aHash.Distance(bHash)
	if err != nil {
		return 0, fmt.Errorf("failed to compare perceptual hashes: %w", err)
	}
	return d, nil
}

// LoadPNG decodes the PNG file at p.
func LoadPNG(p string) (_ image.Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p, err)
	}
	defer f.Close()
	i, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p, err)
	}
	return i, nil
}

// Check compares the image saved at p with a fresh render.
func (r *Renderer) Check(p string) (_ bool, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	saved, err := LoadPNG(p)
	if err != nil {
		return false, err
	}
	return Equivalent(r.Render(), saved)
}

func toNRGBA(i image.Image) *image.NRGBA {
	if n, ok := i.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := i.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n.Set(x-b.Min.X, y-b.Min.Y, i.At(x, y))
		}
	}
	return n
}
