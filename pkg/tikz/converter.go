// Package tikz converts a subset of SVG into TikZ drawing commands.
//
// A Converter walks a decoded document depth first and streams one TikZ
// statement per shape to its writer. Shapes, styles and transforms are
// decoded per element; the only state carried between elements is the
// active length unit and the two named colour slots.
package tikz

import (
	"fmt"
	"io"

	"github.com/jeff-blank/svg2tikz/pkg/fontmetrics"
	"github.com/sirupsen/logrus"
)

// Names of the two colour slots redefined before each coloured statement.
const (
	DrawColour = "dc"
	FillColour = "fc"
)

// Converter holds the state of one conversion. It is not safe for
// concurrent use; independent Converters share nothing.
type Converter struct {
	out        *printer
	log        logrus.FieldLogger
	unit       Unit
	standalone bool
	metrics    fontmetrics.Measurer
}

// Option configures a Converter.
type Option interface {
	apply(c *Converter)
}

// funcOption wraps a function that modifies a Converter into an
// implementation of the Option interface.
type funcOption struct {
	f func(c *Converter)
}

func (fo *funcOption) apply(c *Converter) {
	fo.f(c)
}

func newFuncOption(f func(c *Converter)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithUnit sets the unit used when the document declares none.
func WithUnit(unit string) Option {
	return newFuncOption(func(c *Converter) {
		if unit == "" {
			return
		}
		c.unit = Unit(unit)
	})
}

// WithStandalone wraps the picture in a complete LaTeX document.
func WithStandalone(standalone bool) Option {
	return newFuncOption(func(c *Converter) {
		c.standalone = standalone
	})
}

// WithLogger sets where diagnostics go. The default is the logrus
// standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return newFuncOption(func(c *Converter) {
		if l == nil {
			return
		}
		c.log = l
	})
}

// WithMeasurer enables minimum width hints on text nodes.
func WithMeasurer(m fontmetrics.Measurer) Option {
	return newFuncOption(func(c *Converter) {
		c.metrics = m
	})
}

func New(w io.Writer, opts ...Option) *Converter {
	c := &Converter{
		out:  &printer{w: w},
		log:  logrus.StandardLogger(),
		unit: DefaultUnit,
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c
}

// Unit is the currently active unit.
func (c *Converter) Unit() Unit { return c.unit }

// printer writes one statement per line and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, line+"\n")
}

func (p *printer) printf(format string, args ...interface{}) {
	p.println(fmt.Sprintf(format, args...))
}
