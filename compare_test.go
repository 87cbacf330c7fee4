package banner

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestEquivalent(t *testing.T) {
	a := newFallbackRenderer(t, "HELLO").Render()
	tests := []struct {
		name string
		b    image.Image
		want bool
	}{
		{"same render", newFallbackRenderer(t, "HELLO").Render(), true},
		{"different size", newFallbackRenderer(t, "HELLO", "WORLD").Render(), false},
		{"sub image with same pixels", subImage(newFallbackRenderer(t, "HELLO").Render()), true},
		{"same size one glyph changed", newFallbackRenderer(t, "HELLQ").Render(), false},
		{"same size one pixel changed", onePixelOff(newFallbackRenderer(t, "HELLO").Render()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Equivalent(a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Equivalent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEquivalentNil(t *testing.T) {
	if _, err := Equivalent(nil, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("Equivalent() error = nil, want error")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "docs", "header.png")
	r := newFallbackRenderer(t, "HELLO")

	if _, err := r.Check(p); err == nil {
		t.Error("Check() error = nil, want error for missing file")
	}

	if err := r.Save(p); err != nil {
		t.Fatal(err)
	}
	ok, err := r.Check(p)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Check() = false, want true right after Save")
	}

	for _, lines := range [][]string{
		{"HELLO", "AGAIN"},
		{"HELLQ"},
		{"WORLD"},
	} {
		stale := newFallbackRenderer(t, lines...)
		ok, err = stale.Check(p)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("Check() = true for %q, want false", lines)
		}
	}

	if err := os.WriteFile(p, []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Check(p); err == nil {
		t.Error("Check() error = nil, want error for corrupt file")
	}
}

// subImage returns i offset so that its bounds no longer start at the origin
// while showing the same pixels.
func subImage(i *image.RGBA) image.Image {
	b := i.Bounds()
	o := image.NewRGBA(image.Rect(0, 0, b.Dx()+3, b.Dy()+3))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			o.SetRGBA(x+3, y+3, i.RGBAAt(x, y))
		}
	}
	return o.SubImage(image.Rect(3, 3, b.Dx()+3, b.Dy()+3))
}

func TestDistance(t *testing.T) {
	a := newFallbackRenderer(t, "HELLO WORLD").Render()
	d, err := Distance(a, newFallbackRenderer(t, "HELLO WORLD").Render())
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("Distance() = %d, want 0 for identical renders", d)
	}
	if _, err := Distance(a, nil); err == nil {
		t.Error("Distance() error = nil, want error")
	}
}

func onePixelOff(i *image.RGBA) image.Image {
	o := image.NewRGBA(i.Bounds())
	copy(o.Pix, i.Pix)
	o.Pix[3] = 1
	return o
}
