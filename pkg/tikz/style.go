package tikz

import (
	"strconv"
	s "strings"
)

// PaintKind says how a stroke or fill was given in the style.
type PaintKind uint8

const (
	PaintDefault PaintKind = iota // not mentioned, renderer default
	PaintNone
	PaintRGB
)

// Paint is a decoded stroke or fill value.
type Paint struct {
	Kind   PaintKind
	Colour RGB
}

// Alignment of a text node.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// FontSize is the size bucket a pixel font size falls into.
type FontSize uint8

const (
	FontSizeDefault FontSize = iota // no font-size, or 4px < size <= 6px
	FontSizeSmall
	FontSizeLarge
)

// Style is the subset of an inline style attribute the converter honours.
type Style struct {
	Stroke Paint
	Fill   Paint
	Align  Alignment

	FontSize FontSize
	FontPx   float64 // 0 when the style has no font-size

	// FontFamily is the LaTeX directive for the family, "" for the default.
	FontFamily string
}

var alignments = map[string]Alignment{
	"start":  AlignLeft,
	"center": AlignCenter,
	"middle": AlignCenter,
	"end":    AlignRight,
}

var fontFamilies = map[string]string{
	"serif":      "",
	"Serif":      "",
	"sans-serif": `\sffamily`,
	"Sans":       `\sffamily`,
}

// declarations splits "k1:v1;k2:v2" into a map, keys lower-cased.
func declarations(style string) map[string]string {
	decls := make(map[string]string)
	for _, decl := range s.Split(style, ";") {
		kv := s.SplitN(decl, ":", 2)
		if len(kv) != 2 {
			continue
		}
		k := s.ToLower(s.TrimSpace(kv[0]))
		if k == "" {
			continue
		}
		decls[k] = s.TrimSpace(kv[1])
	}
	return decls
}

func parsePaint(v string, ok bool) Paint {
	if !ok {
		return Paint{}
	}
	if v == "none" || v == "#none" {
		return Paint{Kind: PaintNone}
	}
	if !s.HasPrefix(v, "#") {
		return Paint{}
	}
	c, err := ParseHexColour(v)
	if err != nil {
		return Paint{}
	}
	return Paint{Kind: PaintRGB, Colour: c}
}

// ParseStyle decodes a CSS-like style string. Values it does not
// understand leave the corresponding field at its default.
func ParseStyle(style string) Style {
	decls := declarations(style)

	var st Style
	v, ok := decls["stroke"]
	st.Stroke = parsePaint(v, ok)
	v, ok = decls["fill"]
	st.Fill = parsePaint(v, ok)

	align, ok := decls["text-align"]
	if !ok {
		align = decls["text-anchor"]
	}
	st.Align = alignments[align]

	if v, ok := decls["font-size"]; ok {
		if px, err := strconv.ParseFloat(s.TrimSuffix(v, "px"), 64); err == nil {
			st.FontPx = px
			switch {
			case px <= 4:
				st.FontSize = FontSizeSmall
			case px <= 6:
				st.FontSize = FontSizeDefault
			default:
				st.FontSize = FontSizeLarge
			}
		}
	}
	if v, ok := decls["font-family"]; ok {
		st.FontFamily = fontFamilies[v]
	}
	return st
}

// FontOption returns the "font=..." node option, or "" when the style
// asks for the default font.
func (st Style) FontOption() string {
	var dirs string
	switch st.FontSize {
	case FontSizeSmall:
		dirs = `\small`
	case FontSizeLarge:
		dirs = `\large`
	}
	dirs += st.FontFamily
	if dirs == "" {
		return ""
	}
	return "font=" + dirs
}

// HasColour reports whether the style sets a stroke or a fill.
func (st Style) HasColour() bool {
	return st.Stroke.Kind != PaintDefault || st.Fill.Kind != PaintDefault
}
