package tikz

import (
	"strconv"
	s "strings"

	"github.com/jeff-blank/svg2tikz/pkg/svgxml"
	"github.com/sirupsen/logrus"
)

func parseLength(v string) (float64, error) {
	return strconv.ParseFloat(s.TrimSuffix(s.TrimSpace(v), "px"), 64)
}

// number reads a required numeric attribute.
func number(e *svgxml.Element, name string) (float64, error) {
	v, ok := e.Attr(name)
	if !ok {
		return 0, &AttrError{Element: e.Tag(), Attr: name, Missing: true}
	}
	f, err := parseLength(v)
	if err != nil {
		return 0, &AttrError{Element: e.Tag(), Attr: name, Value: v}
	}
	return f, nil
}

func numbers(e *svgxml.Element, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, n := range names {
		v, err := number(e, n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c *Converter) elementLog(e *svgxml.Element) logrus.FieldLogger {
	return c.log.WithFields(logrus.Fields{"element": e.Tag(), "id": e.ID()})
}

// colourOptions defines the named colours the style needs and returns
// the bracketed option list, or "" when the style sets no colour.
func (c *Converter) colourOptions(st Style) string {
	var opts []string
	switch st.Stroke.Kind {
	case PaintNone:
		opts = append(opts, "draw=none")
	case PaintRGB:
		c.defineColour(DrawColour, st.Stroke.Colour)
		opts = append(opts, "draw="+DrawColour)
	}
	switch st.Fill.Kind {
	case PaintNone:
		opts = append(opts, "fill=none")
	case PaintRGB:
		c.defineColour(FillColour, st.Fill.Colour)
		opts = append(opts, "fill="+FillColour)
	}
	if len(opts) == 0 {
		return ""
	}
	return "[" + s.Join(opts, ",") + "]"
}

func (c *Converter) defineColour(name string, rgb RGB) {
	c.out.printf(`\definecolor{%s}{RGB}{%d,%d,%d}`, name, rgb.R, rgb.G, rgb.B)
}

func (c *Converter) emitRect(e *svgxml.Element) error {
	v, err := numbers(e, "x", "y", "width", "height")
	if err != nil {
		return err
	}
	style, _ := e.Attr("style")
	opts := c.colourOptions(ParseStyle(style))
	c.out.printf(`\draw%s %s rectangle %s;`, opts,
		c.unit.Coord(Point{v[0], v[1]}), c.unit.Coord(Point{v[0] + v[2], v[1] + v[3]}))
	return nil
}

// Circles and ellipses are drawn with default options; their style is
// read but not applied.
func (c *Converter) emitCircle(e *svgxml.Element) error {
	v, err := numbers(e, "cx", "cy", "r")
	if err != nil {
		return err
	}
	if style, ok := e.Attr("style"); ok && ParseStyle(style).HasColour() {
		c.elementLog(e).Debug("style not applied to circle")
	}
	c.out.printf(`\draw %s circle (%s);`, c.unit.Coord(Point{v[0], v[1]}), c.unit.Length(v[2]))
	return nil
}

func (c *Converter) emitEllipse(e *svgxml.Element) error {
	v, err := numbers(e, "cx", "cy", "rx", "ry")
	if err != nil {
		return err
	}
	if style, ok := e.Attr("style"); ok && ParseStyle(style).HasColour() {
		c.elementLog(e).Debug("style not applied to ellipse")
	}
	c.out.printf(`\draw %s ellipse %s;`, c.unit.Coord(Point{v[0], v[1]}), c.unit.Radii(v[2], v[3]))
	return nil
}

var latexEscaper = s.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`_`, `\_`,
	`^`, `\^{}`,
	`~`, `\~{}`,
)

// EscapeLaTeX makes text safe to place inside a node.
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}

// emitText writes one node for a text element with direct content, or one
// node per tspan child otherwise. A tspan inherits position and style from
// its text element unless it sets its own.
func (c *Converter) emitText(e *svgxml.Element) error {
	v, err := numbers(e, "x", "y")
	if err != nil {
		return err
	}
	at := Point{v[0], v[1]}
	style, _ := e.Attr("style")

	if txt := e.Content(); txt != "" {
		return c.emitNode(e, at, style, txt)
	}
	for _, span := range e.ChildrenOf(svgxml.KindTSpan) {
		txt := span.Content()
		if txt == "" {
			c.elementLog(span).Debug("skipping empty tspan")
			continue
		}
		spanAt := at
		_, hasX := span.Attr("x")
		_, hasY := span.Attr("y")
		if hasX && hasY {
			sv, err := numbers(span, "x", "y")
			if err != nil {
				return err
			}
			spanAt = Point{sv[0], sv[1]}
		}
		spanStyle := style
		if st, ok := span.Attr("style"); ok {
			spanStyle = st
		}
		if err := c.emitNode(span, spanAt, spanStyle, txt); err != nil {
			return err
		}
	}
	return nil
}

func (c *Converter) emitNode(e *svgxml.Element, at Point, style, txt string) error {
	st := ParseStyle(style)
	if st.Align != AlignCenter {
		c.elementLog(e).Warnf("ignored string alignment to the %s", st.Align)
		c.out.println(`%% This element will be anyhow centered!`)
	}
	opts := []string{"align=center"}
	if f := st.FontOption(); f != "" {
		opts = append(opts, f)
	}
	if c.metrics != nil && st.FontPx > 0 {
		w := c.metrics.Width(txt, st.FontPx)
		opts = append(opts, "minimum width="+c.unit.Length(w))
	}
	c.out.printf(`\node [%s] at %s { %s };`, s.Join(opts, ","), c.unit.Coord(at), EscapeLaTeX(txt))
	return nil
}
