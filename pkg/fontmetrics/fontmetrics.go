// Package fontmetrics measures text set in a TrueType font, so that text
// nodes can reserve the width the SVG renderer gave them.
package fontmetrics

import (
	"io/ioutil"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
)

// Measurer reports the advance width of a string at a given size. Sizes and
// widths are in SVG user units (pixels).
type Measurer interface {
	Width(text string, size float64) float64
}

// Metrics measures with one parsed font. Faces are cached per size.
type Metrics struct {
	font  *truetype.Font
	dpi   float64
	faces map[float64]font.Face
}

// Parse builds Metrics from raw TTF data. At 72 dpi one point is one pixel.
func Parse(ttf []byte, dpi float64) (*Metrics, error) {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "ParseFont()")
	}
	if dpi <= 0 {
		dpi = 72
	}
	return &Metrics{font: f, dpi: dpi, faces: make(map[float64]font.Face)}, nil
}

// Load reads and parses the named font file.
func Load(fontFile string, dpi float64) (*Metrics, error) {
	fontdata, err := ioutil.ReadFile(fontFile)
	if err != nil {
		return nil, errors.Wrapf(err, "read font file '%s'", fontFile)
	}
	return Parse(fontdata, dpi)
}

func (m *Metrics) face(size float64) font.Face {
	if f, ok := m.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(m.font, &truetype.Options{
		Size:    size,
		DPI:     m.dpi,
		Hinting: font.HintingNone,
	})
	m.faces[size] = f
	return f
}

// Width returns the advance width of text, kerning included.
func (m *Metrics) Width(text string, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	adv := font.MeasureString(m.face(size), text)
	return float64(adv) / 64
}
