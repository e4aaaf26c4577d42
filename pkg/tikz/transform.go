package tikz

import s "strings"

// Transform is a decoded SVG transform function. Directive renders it as
// a TikZ scope option; the translation parts are converted to u.
type Transform interface {
	Directive(u Unit) string
}

type Translate struct {
	DX, DY float64
}

type Rotate struct {
	Angle float64
	// Center is nil for a rotation about the origin.
	Center *Point
}

type Matrix struct {
	A, B, C, D, E, F float64
}

func (t Translate) Directive(u Unit) string {
	return "shift={" + u.Coord(Point{t.DX, t.DY}) + "}"
}

func (t Rotate) Directive(u Unit) string {
	if t.Center != nil {
		return "rotate around={" + formatNumber(t.Angle) + ":" + u.Coord(*t.Center) + "}"
	}
	return "rotate=" + formatNumber(t.Angle)
}

func (t Matrix) Directive(u Unit) string {
	return "cm={" + formatNumber(t.A) + "," + formatNumber(t.B) + "," +
		formatNumber(t.C) + "," + formatNumber(t.D) + "," +
		u.Coord(Point{t.E, t.F}) + "}"
}

// transformArgs reads a comma-or-space separated number list with the
// same number grammar as path data. Empty arguments fail.
func transformArgs(v string) ([]float64, bool) {
	c := cursor{input: v}
	var args []float64
	c.skipSpace()
	for c.pos < len(c.input) {
		n, err := c.number()
		if err != nil {
			return nil, false
		}
		args = append(args, n)
		c.skipSpace()
		if c.pos < len(c.input) && c.input[c.pos] == ',' {
			c.pos++
			c.skipSpace()
			if c.pos == len(c.input) {
				return nil, false
			}
		}
	}
	return args, true
}

// ParseTransform decodes the first function call of a transform
// attribute. It returns nil when the attribute is empty, names a function
// other than translate, rotate or matrix, or has a malformed argument list.
func ParseTransform(v string) Transform {
	v = s.TrimSpace(v)
	open := s.IndexByte(v, '(')
	if open < 0 {
		return nil
	}
	closing := s.IndexByte(v[open:], ')')
	if closing < 0 {
		return nil
	}
	name := s.ToLower(s.TrimSpace(v[:open]))
	args, ok := transformArgs(v[open+1 : open+closing])
	if !ok {
		return nil
	}

	switch name {
	case "translate":
		switch len(args) {
		case 1:
			return Translate{DX: args[0]}
		case 2:
			return Translate{DX: args[0], DY: args[1]}
		}
	case "rotate":
		switch len(args) {
		case 1:
			return Rotate{Angle: args[0]}
		case 3:
			return Rotate{Angle: args[0], Center: &Point{args[1], args[2]}}
		}
	case "matrix":
		if len(args) == 6 {
			return Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}
		}
	}
	return nil
}
