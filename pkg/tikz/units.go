package tikz

import "strconv"

// Unit is the length unit appended to every converted coordinate.
type Unit string

const DefaultUnit Unit = "mm"

// Point is a 2D coordinate in SVG user units.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Length formats v with one decimal and the unit, e.g. "4.5mm".
func (u Unit) Length(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + string(u)
}

// Coord formats a TikZ coordinate, e.g. "(1.0mm,2.0mm)".
func (u Unit) Coord(p Point) string {
	return "(" + u.Length(p.X) + "," + u.Length(p.Y) + ")"
}

// Radii formats the radius pair of an ellipse, e.g. "(3.0mm and 2.0mm)".
func (u Unit) Radii(rx, ry float64) string {
	return "(" + u.Length(rx) + " and " + u.Length(ry) + ")"
}

// formatNumber prints a unitless value in its shortest exact form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
