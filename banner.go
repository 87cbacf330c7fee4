package banner

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/k1LoW/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// CharWidth is the assumed advance of one character in pixels.
	CharWidth = 10
	// LineHeight is the vertical cadence between lines in pixels.
	LineHeight = 20
	// Padding surrounds the text on all four sides.
	Padding = 40
)

// OutputPath is where the header is written, relative to the working directory.
var OutputPath = filepath.Join("docs", "header.png")

// Line is a single line of text and the top-left corner it is drawn at.
type Line struct {
	Text string `json:"text"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Layout is the geometry of a rendered banner.
type Layout struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Lines  []*Line `json:"lines"`
}

// LayoutOf computes the canvas size and line origins for lines.
// Line length is measured in characters, not bytes.
func LayoutOf(lines []string) *Layout {
	maxLen := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > maxLen {
			maxLen = n
		}
	}
	layout := &Layout{
		Width:  maxLen*CharWidth + Padding*2,
		Height: len(lines)*LineHeight + Padding*2,
	}
	y := Padding
	for _, l := range lines {
		layout.Lines = append(layout.Lines, &Line{Text: l, X: Padding, Y: y})
		y += LineHeight
	}
	return layout
}

// Lines splits Art into its lines.
func Lines() []string {
	return strings.Split(Art, "\n")
}

type Renderer struct {
	lines     []string
	fontPaths []string
	fontSize  float64
	face      font.Face
	fontPath  string
	logger    *slog.Logger
}

type Option func(*Renderer) error

// WithFontPaths prepends font candidates tried before DefaultFontPath.
func WithFontPaths(paths ...string) Option {
	return func(r *Renderer) error {
		r.fontPaths = append(append([]string{}, paths...), r.fontPaths...)
		return nil
	}
}

// WithoutDefaultFont drops DefaultFontPath from the candidates.
func WithoutDefaultFont() Option {
	return func(r *Renderer) error {
		var paths []string
		for _, p := range r.fontPaths {
			if p != DefaultFontPath {
				paths = append(paths, p)
			}
		}
		r.fontPaths = paths
		return nil
	}
}

func WithFontSize(size float64) Option {
	return func(r *Renderer) error {
		if size <= 0 {
			return fmt.Errorf("invalid font size: %v", size)
		}
		r.fontSize = size
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) error {
		r.logger = logger
		return nil
	}
}

// New creates a Renderer for Art and selects its font.
func New(opts ...Option) (_ *Renderer, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	r := &Renderer{
		lines:     Lines(),
		fontPaths: []string{DefaultFontPath},
		fontSize:  DefaultFontSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if len(r.lines) == 0 {
		return nil, fmt.Errorf("no lines to render")
	}
	face, p, err := LoadFace(r.fontPaths, r.fontSize)
	if err != nil {
		r.logger.Debug("using fallback font", slog.String("error", err.Error()))
		face = FallbackFace
		p = ""
	} else {
		r.logger.Debug("loaded font", slog.String("path", p), slog.Float64("size", r.fontSize))
	}
	r.face = face
	r.fontPath = p
	return r, nil
}

// Fallback reports whether the fallback face is in use.
func (r *Renderer) Fallback() bool {
	return r.fontPath == ""
}

// FontPath returns the path of the loaded font, or empty when the fallback face is used.
func (r *Renderer) FontPath() string {
	return r.fontPath
}

// Close releases the loaded font face. The fallback face is shared and left open.
func (r *Renderer) Close() error {
	if r.Fallback() || r.face == nil {
		return nil
	}
	return r.face.Close()
}

// Layout returns the geometry Render will use.
func (r *Renderer) Layout() *Layout {
	return LayoutOf(r.lines)
}

// Render draws every line in opaque white onto a fully transparent canvas.
func (r *Renderer) Render() *image.RGBA {
	layout := r.Layout()
	img := image.NewRGBA(image.Rect(0, 0, layout.Width, layout.Height))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: r.face,
	}
	// Line origins are top-left; the drawer works on the baseline.
	ascent := r.face.Metrics().Ascent
	for _, l := range layout.Lines {
		d.Dot = fixed.Point26_6{
			X: fixed.I(l.X),
			Y: fixed.I(l.Y) + ascent,
		}
		d.DrawString(l.Text)
	}
	r.logger.Debug("rendered header", slog.Int("width", layout.Width), slog.Int("height", layout.Height), slog.Int("lines", len(layout.Lines)))
	return img
}

// Encode renders the banner and writes it to w as PNG.
func (r *Renderer) Encode(w io.Writer) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := png.Encode(w, r.Render()); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// Save renders the banner to p, creating parent directories and overwriting any existing file.
func (r *Renderer) Save(p string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", p, err)
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", p, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	if err := r.Encode(f); err != nil {
		return err
	}
	r.logger.Info("header saved", slog.String("path", p))
	return nil
}
