package tikz

import (
	"io"

	"github.com/jeff-blank/svg2tikz/pkg/svgxml"
	"github.com/pkg/errors"
)

const (
	standalonePrologue = `\documentclass[tikz,border=1mm]{standalone}
\usepackage{tikz}
\usetikzlibrary{shapes}
\makeatletter
\begin{document}`
	standaloneEpilogue = `\end{document}`

	// SVG's y axis grows downwards, TikZ's upwards.
	picturePrologue = `\begin{tikzpicture}
\begin{scope}[yscale=-1]`
	pictureEpilogue = `\end{scope}
\end{tikzpicture}`
)

// namedView applies a document-level unit declaration. A view without
// one reverts to the unit the conversion started with.
func (c *Converter) namedView(e *svgxml.Element, base Unit) {
	unit, ok := e.Attr("units")
	if !ok {
		unit, ok = e.Attr("document-units")
	}
	if ok && unit != "" {
		c.unit = Unit(unit)
	} else {
		c.unit = base
	}
	c.elementLog(e).Debugf("unit is now %s", c.unit)
}

// Convert writes the TikZ picture for a decoded SVG document. The unit is
// restored to its starting value when Convert returns.
func (c *Converter) Convert(root *svgxml.Element) error {
	base := c.unit
	defer func() { c.unit = base }()

	if c.standalone {
		c.out.println(standalonePrologue)
	}
	c.out.println(picturePrologue)
	for _, e := range root.Children {
		if e.Kind() == svgxml.KindNamedView {
			c.namedView(e, base)
			continue
		}
		if err := c.visit(e); err != nil {
			return err
		}
	}
	c.out.println(pictureEpilogue)
	if c.standalone {
		c.out.println(standaloneEpilogue)
	}
	return errors.Wrap(c.out.err, "write tikz")
}

// ConvertReader decodes an SVG document from r and converts it.
func (c *Converter) ConvertReader(r io.Reader) error {
	root, err := svgxml.Decode(r)
	if err != nil {
		return err
	}
	return c.Convert(root)
}
