package tikz

import (
	"io"

	"github.com/jeff-blank/svg2tikz/pkg/svgxml"
	"github.com/sirupsen/logrus"
)

func relMarker(relative bool) string {
	if relative {
		return "++"
	}
	return ""
}

// emitPath writes the statements for a path element, terminated by ";".
// Path data with no commands writes nothing.
func (c *Converter) emitPath(e *svgxml.Element) error {
	d, ok := e.Attr("d")
	if !ok {
		return &AttrError{Element: e.Tag(), Attr: "d", Missing: true}
	}
	l := c.elementLog(e)
	dec := NewPathDecoder(d)
	emitted := false
	for {
		cmd, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		c.emitCommand(l, cmd)
		emitted = true
	}
	if emitted {
		c.out.println(";")
	}
	return nil
}

func (c *Converter) controls(inc string, c1, c2, to Point) {
	u := c.unit
	c.out.printf(".. controls %s%s and %s%s .. %s%s", inc, u.Coord(c1), inc, u.Coord(c2), inc, u.Coord(to))
}

func (c *Converter) emitCommand(l logrus.FieldLogger, cmd Command) {
	u := c.unit
	switch cmd := cmd.(type) {
	case MoveTo:
		if cmd.Subsequent {
			c.out.println(";")
			// a new statement starts at the origin, so ++ would lose the
			// current point
			c.out.printf(`\draw %s`, u.Coord(cmd.Abs))
			return
		}
		c.out.printf(`\draw %s%s`, relMarker(cmd.Relative), u.Coord(cmd.To))
	case LineTo:
		c.out.printf("-- %s%s", relMarker(cmd.Relative), u.Coord(cmd.To))
	case CubicTo:
		if cmd.Relative {
			// TikZ takes the second control relative to the end point
			c.controls("++", cmd.C1, cmd.C2.Sub(cmd.To), cmd.To)
			return
		}
		l.Warn("check controls: absolute cubic Bezier copied verbatim")
		c.out.println("%% Warning: check controls")
		c.controls("", cmd.C1, cmd.C2, cmd.To)
	case QuadTo:
		if cmd.Relative {
			q, to := cmd.Control, cmd.To
			c1 := Point{2 * q.X / 3, 2 * q.Y / 3}
			c2 := Point{2 * (q.X - to.X) / 3, 2 * (q.Y - to.Y) / 3}
			c.controls("++", c1, c2, to)
			return
		}
		l.Warn("ignoring (abs) quadratic Bezier, drawing a line to its end point")
		c.out.printf("%% This should be a quadratic Bezier with control point at %s", u.Coord(cmd.Control))
		c.out.printf(" -- %s", u.Coord(cmd.To))
	case ClosePath:
		c.out.println("-- cycle")
	}
}
