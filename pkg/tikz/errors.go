package tikz

import "fmt"

// ParseError reports path data that does not match the path grammar.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	input := e.Input
	if len(input) > 40 {
		input = input[:37] + "..."
	}
	return fmt.Sprintf("path data %q: %s at offset %d", input, e.Msg, e.Offset)
}

// AttrError reports a missing or non-numeric attribute on a shape.
type AttrError struct {
	Element string
	Attr    string
	Value   string
	Missing bool
}

func (e *AttrError) Error() string {
	if e.Missing {
		return fmt.Sprintf("<%s> is missing required attribute %q", e.Element, e.Attr)
	}
	return fmt.Sprintf("<%s> attribute %q: invalid number %q", e.Element, e.Attr, e.Value)
}
