package tikz

type pathCommand uint8

const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

// Command is one decoded step of SVG path data.
type Command interface {
	command() pathCommand
}

// MoveTo begins a subpath. Subsequent is set when an earlier statement of
// the same path has to be terminated first. Abs is To resolved against the
// current point.
type MoveTo struct {
	To         Point
	Abs        Point
	Relative   bool
	Subsequent bool
}

type LineTo struct {
	To       Point
	Relative bool
}

// CubicTo carries the control points and end point exactly as written in
// the path data: relative commands hold offsets from the current point.
type CubicTo struct {
	C1, C2, To Point
	Relative   bool
}

type QuadTo struct {
	Control, To Point
	Relative    bool
}

type ClosePath struct{}

func (MoveTo) command() pathCommand    { return pathMoveTo }
func (LineTo) command() pathCommand    { return pathLineTo }
func (QuadTo) command() pathCommand    { return pathQuadTo }
func (CubicTo) command() pathCommand   { return pathCubicTo }
func (ClosePath) command() pathCommand { return pathClose }

// DecodePath decodes a whole d attribute.
func DecodePath(d string) ([]Command, error) {
	var cmds []Command
	dec := NewPathDecoder(d)
	for dec.More() {
		cmd, err := dec.Next()
		if err != nil {
			return cmds, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
