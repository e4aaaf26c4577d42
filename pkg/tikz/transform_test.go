package tikz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTransform(t *testing.T) {
	for _, tc := range []struct {
		in   string
		unit Unit
		want string
	}{
		{"translate(3,4.5)", "mm", "shift={(3.0mm,4.5mm)}"},
		{" translate( -1.25 , 2e1 ) ", "cm", "shift={(-1.2cm,20.0cm)}"},
		{"translate(7)", "mm", "shift={(7.0mm,0.0mm)}"},
		{"rotate(-30)", "mm", "rotate=-30"},
		{"rotate(12.5,1,2)", "pt", "rotate around={12.5:(1.0pt,2.0pt)}"},
		{"matrix(1,0,0,1,10,-5.55)", "mm", "cm={1,0,0,1,(10.0mm,-5.5mm)}"},
		{"matrix(0.5 0.25 -0.25 0.5 3 4)", "mm", "cm={0.5,0.25,-0.25,0.5,(3.0mm,4.0mm)}"},
		{"translate(1-2)", "mm", "shift={(1.0mm,-2.0mm)}"},
		{"translate( 1 , 2 )", "mm", "shift={(1.0mm,2.0mm)}"},
	} {
		tr := ParseTransform(tc.in)
		if assert.NotNil(t, tr, tc.in) {
			assert.Equal(t, tc.want, tr.Directive(tc.unit), tc.in)
		}
	}
}

func TestParseTransformNone(t *testing.T) {
	for _, in := range []string{
		"",
		"scale(2)",
		"skewX(30)",
		"translate(1,2,3)",
		"rotate(1,2)",
		"matrix(1,0,0,1,10)",
		"translate(a,b)",
		"translate(1,2",
		"translate",
		"translate(1,,2)",
		"translate(,1)",
		"translate(1,)",
		"translate(NaN,1)",
		"rotate(Inf)",
		"translate(0x1p3,1)",
	} {
		assert.Nil(t, ParseTransform(in), in)
	}
}
