package tikz

import (
	"io"
	"strconv"
)

type decoderState uint8

const (
	expectCommand decoderState = iota
	expectControlPoints
	expectPoint
)

// cursor is the mutable state threaded through path decoding.
type cursor struct {
	input string
	pos   int // rest is input[pos:]

	current Point // defined once the first moveto is consumed
	start   Point // start of the current subpath
	first   bool  // nothing decoded yet

	relative bool
	letter   byte // active command, lower case; 0 before any or after a close
	state    decoderState

	controls [2]Point
}

func (c *cursor) rest() string { return c.input[c.pos:] }

func (c *cursor) errorf(msg string) *ParseError {
	return &ParseError{Input: c.input, Offset: c.pos, Msg: msg}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func (c *cursor) skipSpace() {
	for c.pos < len(c.input) && isSpace(c.input[c.pos]) {
		c.pos++
	}
}

// skipSeparators skips the comma-whitespace allowed between coordinate
// pairs and commands.
func (c *cursor) skipSeparators() {
	for c.pos < len(c.input) && (isSpace(c.input[c.pos]) || c.input[c.pos] == ',') {
		c.pos++
	}
}

// scanNumber returns the length of the decimal number at the head of v:
// optional sign, digits with an optional fraction, optional exponent.
func scanNumber(v string) int {
	i := 0
	if i < len(v) && (v[i] == '+' || v[i] == '-') {
		i++
	}
	digits := 0
	for i < len(v) && v[i] >= '0' && v[i] <= '9' {
		i++
		digits++
	}
	if i < len(v) && v[i] == '.' {
		i++
		for i < len(v) && v[i] >= '0' && v[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(v) && (v[i] == 'e' || v[i] == 'E') {
		j := i + 1
		if j < len(v) && (v[j] == '+' || v[j] == '-') {
			j++
		}
		k := j
		for k < len(v) && v[k] >= '0' && v[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func (c *cursor) number() (float64, error) {
	c.skipSpace()
	n := scanNumber(c.rest())
	if n == 0 {
		return 0, c.errorf("expected number")
	}
	v, err := strconv.ParseFloat(c.input[c.pos:c.pos+n], 64)
	if err != nil {
		return 0, c.errorf("invalid number " + strconv.Quote(c.input[c.pos:c.pos+n]))
	}
	c.pos += n
	return v, nil
}

// pair reads "x,y"; the comma may be surrounded by whitespace or replaced
// by it.
func (c *cursor) pair() (Point, error) {
	c.skipSeparators()
	x, err := c.number()
	if err != nil {
		return Point{}, err
	}
	c.skipSpace()
	if c.pos < len(c.input) && c.input[c.pos] == ',' {
		c.pos++
	}
	y, err := c.number()
	if err != nil {
		return Point{}, err
	}
	return Point{x, y}, nil
}

func startsNumber(b byte) bool {
	return (b >= '0' && b <= '9') || b == '-' || b == '+' || b == '.'
}

// PathDecoder decodes SVG path data one command per call to Next.
type PathDecoder struct {
	c   cursor
	err error
}

func NewPathDecoder(d string) *PathDecoder {
	return &PathDecoder{c: cursor{input: d, first: true}}
}

// More reports whether another call to Next may yield a command.
func (p *PathDecoder) More() bool {
	if p.err != nil {
		return false
	}
	p.c.skipSeparators()
	return p.c.pos < len(p.c.input)
}

// Current is the current point after the last decoded command.
func (p *PathDecoder) Current() Point { return p.c.current }

// Next decodes the next command. It returns io.EOF once the data is
// consumed and a *ParseError for data outside the grammar; after an error
// every call returns the same error.
func (p *PathDecoder) Next() (Command, error) {
	if p.err != nil {
		return nil, p.err
	}
	cmd, err := p.step()
	if err != nil {
		p.err = err
	}
	return cmd, err
}

func (p *PathDecoder) step() (Command, error) {
	c := &p.c
	for {
		switch c.state {
		case expectCommand:
			c.skipSeparators()
			if c.pos >= len(c.input) {
				return nil, io.EOF
			}
			ch := c.input[c.pos]
			switch ch {
			case 'Z', 'z':
				if c.first {
					return nil, c.errorf("path data must start with a moveto")
				}
				c.pos++
				c.current = c.start
				c.relative = false
				c.letter = 0
				return ClosePath{}, nil
			case 'M', 'm', 'L', 'l', 'C', 'c', 'Q', 'q':
				c.letter = ch | 0x20
				c.relative = ch >= 'a'
				c.pos++
			default:
				if !startsNumber(ch) {
					return nil, c.errorf("unsupported path command " + strconv.Quote(string(ch)))
				}
				if c.letter == 0 {
					return nil, c.errorf("coordinates without a command")
				}
			}
			if c.first && c.letter != 'm' {
				return nil, c.errorf("path data must start with a moveto")
			}
			switch c.letter {
			case 'c', 'q':
				c.state = expectControlPoints
			default:
				c.state = expectPoint
			}

		case expectControlPoints:
			n := 1
			if c.letter == 'c' {
				n = 2
			}
			for i := 0; i < n; i++ {
				pt, err := c.pair()
				if err != nil {
					return nil, err
				}
				c.controls[i] = pt
			}
			c.state = expectPoint

		case expectPoint:
			pt, err := c.pair()
			if err != nil {
				return nil, err
			}
			c.state = expectCommand
			return c.emit(pt), nil
		}
	}
}

// emit builds the command for the active letter ending at pt and moves
// the current point.
func (c *cursor) emit(pt Point) Command {
	end := pt
	if c.relative {
		end = c.current.Add(pt)
	}
	var cmd Command
	switch c.letter {
	case 'm':
		cmd = MoveTo{To: pt, Abs: end, Relative: c.relative, Subsequent: !c.first}
		c.start = end
		// implicit repeats after a moveto are linetos
		c.letter = 'l'
	case 'l':
		cmd = LineTo{To: pt, Relative: c.relative}
	case 'c':
		cmd = CubicTo{C1: c.controls[0], C2: c.controls[1], To: pt, Relative: c.relative}
	case 'q':
		cmd = QuadTo{Control: c.controls[0], To: pt, Relative: c.relative}
	}
	c.current = end
	c.first = false
	return cmd
}
