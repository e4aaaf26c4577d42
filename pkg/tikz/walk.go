package tikz

import (
	"github.com/jeff-blank/svg2tikz/pkg/svgxml"
	"github.com/pkg/errors"
)

// beginScope opens a scope for the element's transform and reports
// whether it did.
func (c *Converter) beginScope(e *svgxml.Element) bool {
	v, ok := e.Attr("transform")
	if !ok {
		return false
	}
	t := ParseTransform(v)
	if t == nil {
		c.elementLog(e).Debugf("ignoring transform %q", v)
		return false
	}
	directive := t.Directive(c.unit)
	c.elementLog(e).Debugf("transform %q => %s", v, directive)
	c.out.printf(`\begin{scope}[%s]`, directive)
	return true
}

func (c *Converter) walkGroup(g *svgxml.Element) error {
	for _, child := range g.Children {
		if err := c.visit(child); err != nil {
			return err
		}
	}
	return nil
}

// visit dispatches one element to its emitter, inside a transform scope
// when it has one.
func (c *Converter) visit(e *svgxml.Element) error {
	var emit func(*svgxml.Element) error
	switch e.Kind() {
	case svgxml.KindGroup:
		if !e.HasChildren() {
			c.elementLog(e).Debug("skipping empty group")
			return nil
		}
		emit = c.walkGroup
	case svgxml.KindText:
		emit = c.emitText
	case svgxml.KindRect:
		emit = c.emitRect
	case svgxml.KindCircle:
		emit = c.emitCircle
	case svgxml.KindEllipse:
		emit = c.emitEllipse
	case svgxml.KindPath:
		emit = c.emitPath
	case svgxml.KindSVG, svgxml.KindTSpan, svgxml.KindNamedView, svgxml.KindUnknown:
		c.elementLog(e).Debug("not converted")
		return nil
	}

	c.elementLog(e).Debug("converting")
	scoped := c.beginScope(e)
	err := emit(e)
	if err != nil {
		return errors.Wrapf(err, "<%s id=%q>", e.Tag(), e.ID())
	}
	if scoped {
		c.out.println(`\end{scope}`)
	}
	return c.out.err
}
