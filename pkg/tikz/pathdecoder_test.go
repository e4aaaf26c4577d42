package tikz

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMoveLine(t *testing.T) {
	for _, tc := range []struct {
		d    string
		want []Command
	}{
		{
			d: "M 1,2 L 3,4 l 1,1 5,5",
			want: []Command{
				MoveTo{To: Point{1, 2}, Abs: Point{1, 2}},
				LineTo{To: Point{3, 4}},
				LineTo{To: Point{1, 1}, Relative: true},
				LineTo{To: Point{5, 5}, Relative: true},
			},
		},
		{
			// implicit pairs after a moveto are linetos in the same mode
			d: "m 1,2 3,4 L 5,6 7,8",
			want: []Command{
				MoveTo{To: Point{1, 2}, Abs: Point{1, 2}, Relative: true},
				LineTo{To: Point{3, 4}, Relative: true},
				LineTo{To: Point{5, 6}},
				LineTo{To: Point{7, 8}},
			},
		},
		{
			d: " \t\nM1.5e1,-2 L.5 .25 l-1-1",
			want: []Command{
				MoveTo{To: Point{15, -2}, Abs: Point{15, -2}},
				LineTo{To: Point{0.5, 0.25}},
				LineTo{To: Point{-1, -1}, Relative: true},
			},
		},
	} {
		got, err := DecodePath(tc.d)
		require.NoError(t, err, tc.d)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("DecodePath(%q) mismatch (-want +got):\n%s", tc.d, diff)
		}
	}
}

func TestDecodeCurves(t *testing.T) {
	got, err := DecodePath("M 10,10 c 4.2,4.2 12.6,-4.2 16.8,0 1,1 2,2 3,3 q 3,0 6,0 Q 1,1 2,2")
	require.NoError(t, err)
	want := []Command{
		MoveTo{To: Point{10, 10}, Abs: Point{10, 10}},
		CubicTo{C1: Point{4.2, 4.2}, C2: Point{12.6, -4.2}, To: Point{16.8, 0}, Relative: true},
		CubicTo{C1: Point{1, 1}, C2: Point{2, 2}, To: Point{3, 3}, Relative: true},
		QuadTo{Control: Point{3, 0}, To: Point{6, 0}, Relative: true},
		QuadTo{Control: Point{1, 1}, To: Point{2, 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSubpaths(t *testing.T) {
	got, err := DecodePath("m 2,3 l 1,0 z m 5,5 l 1,1 Z")
	require.NoError(t, err)
	want := []Command{
		MoveTo{To: Point{2, 3}, Abs: Point{2, 3}, Relative: true},
		LineTo{To: Point{1, 0}, Relative: true},
		ClosePath{},
		// resolved against the start of the closed subpath
		MoveTo{To: Point{5, 5}, Abs: Point{7, 8}, Relative: true, Subsequent: true},
		LineTo{To: Point{1, 1}, Relative: true},
		ClosePath{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderTracksCurrentPoint(t *testing.T) {
	dec := NewPathDecoder("M 10,10 l 5,0 c 1,1 2,2 0,5 L 1,1 m 1,1 z")
	want := []Point{{10, 10}, {15, 10}, {15, 15}, {1, 1}, {2, 2}, {2, 2}}
	for i, w := range want {
		_, err := dec.Next()
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, w, dec.Current(), "step %d", i)
	}
	_, err := dec.Next()
	assert.Equal(t, io.EOF, err)
	assert.False(t, dec.More())
}

func TestDecoderConsumesInput(t *testing.T) {
	dec := NewPathDecoder("M 0,0 L 1,1 2,2 c 1,1 1,1 1,1 z")
	last := len(dec.c.rest())
	for dec.More() {
		_, err := dec.Next()
		require.NoError(t, err)
		rest := len(dec.c.rest())
		assert.True(t, rest < last, "remaining input must shrink")
		last = rest
	}
	assert.Equal(t, 0, last)
}

func TestDecodeErrors(t *testing.T) {
	for _, d := range []string{
		"L 1,1",         // no moveto
		"z",             // no moveto
		"M 1",           // half a pair
		"M 1,x",         // not a number
		"M 0,0 A 1,1",   // arcs are not supported
		"M 0,0 z 1,1",   // coordinates after a close
		"M 0,0 c 1,1 2", // short cubic
		"M 0,0 q 1,1",   // short quadratic
	} {
		_, err := DecodePath(d)
		var perr *ParseError
		if assert.Error(t, err, d) {
			assert.True(t, errors.As(err, &perr), "%q: %v", d, err)
		}
	}
}

func TestDecoderErrorIsSticky(t *testing.T) {
	dec := NewPathDecoder("M 0,0 L ?")
	_, err := dec.Next()
	require.NoError(t, err)
	_, err1 := dec.Next()
	_, err2 := dec.Next()
	assert.Error(t, err1)
	assert.Equal(t, err1, err2)
	assert.False(t, dec.More())
}

func TestDecodeEmpty(t *testing.T) {
	cmds, err := DecodePath("  ")
	assert.NoError(t, err)
	assert.Empty(t, cmds)
}
