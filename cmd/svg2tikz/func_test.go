package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeff-blank/svg2tikz/pkg/svgxml"
	"github.com/jeff-blank/svg2tikz/pkg/tikz"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const drawing = `<svg xmlns="http://www.w3.org/2000/svg"
     xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd">
  <sodipodi:namedview units="cm"/>
  <g id="layer1">
    <rect id="box" x="0" y="0" width="1" height="1"/>
    <circle id="dot" cx="0" cy="0" r="1"/>
  </g>
  <g id="outer" transform="translate(100,100)">
    <g id="plain">
      <g id="inner" transform="rotate(90)">
        <rect id="moved" x="0" y="0" width="2" height="1"/>
      </g>
    </g>
  </g>
</svg>`

func TestSelectElement(t *testing.T) {
	root, err := svgxml.Decode(strings.NewReader(drawing))
	require.NoError(t, err)

	doc, err := selectElement(root, "dot")
	require.NoError(t, err)
	require.Len(t, doc.Children, 2)
	assert.Equal(t, svgxml.KindNamedView, doc.Children[0].Kind())
	assert.Equal(t, "dot", doc.Children[1].ID())
	// the original tree is untouched
	assert.Len(t, root.Children, 3)

	_, err = selectElement(root, "missing")
	assert.Error(t, err)
}

func TestSelectElementKeepsAncestorTransforms(t *testing.T) {
	root, err := svgxml.Decode(strings.NewReader(drawing))
	require.NoError(t, err)

	doc, err := selectElement(root, "moved")
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	var buf bytes.Buffer
	require.NoError(t, tikz.New(&buf, tikz.WithLogger(logger)).Convert(doc))
	assert.Equal(t,
		"\\begin{tikzpicture}\n"+
			"\\begin{scope}[yscale=-1]\n"+
			"\\begin{scope}[shift={(100.0cm,100.0cm)}]\n"+
			"\\begin{scope}[rotate=90]\n"+
			"\\draw (0.0cm,0.0cm) rectangle (2.0cm,1.0cm);\n"+
			"\\end{scope}\n"+
			"\\end{scope}\n"+
			"\\end{scope}\n"+
			"\\end{tikzpicture}\n",
		buf.String())

	// a selected group carries its own transform
	doc, err = selectElement(root, "inner")
	require.NoError(t, err)
	require.Len(t, doc.Children, 2)
	wrapper := doc.Children[1]
	assert.Equal(t, svgxml.KindGroup, wrapper.Kind())
	xform, _ := wrapper.Attr("transform")
	assert.Equal(t, "translate(100,100)", xform)
	require.Len(t, wrapper.Children, 1)
	assert.Equal(t, "inner", wrapper.Children[0].ID())
}

func TestOpenOutput(t *testing.T) {
	w, err := openOutput("")
	require.NoError(t, err)
	assert.NoError(t, w.Close())

	dir, err := ioutil.TempDir("", "svg2tikz")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	name := filepath.Join(dir, "out.tex")
	w, err = openOutput(name)
	require.NoError(t, err)
	_, err = w.Write([]byte("\\draw;\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	got, err := ioutil.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "\\draw;\n", string(got))

	_, err = openOutput(filepath.Join(dir, "no", "such", "dir.tex"))
	assert.Error(t, err)
}
