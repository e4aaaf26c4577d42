package svgxml

import (
	"encoding/xml"
	"io"
	"os"
	s "strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Kind is the closed set of element types the converter knows about.
type Kind int

const (
	KindUnknown Kind = iota
	KindSVG
	KindGroup
	KindText
	KindTSpan
	KindRect
	KindCircle
	KindEllipse
	KindPath
	KindNamedView
)

var kindStrings = [...]string{
	KindUnknown:   "unknown",
	KindSVG:       "svg",
	KindGroup:     "g",
	KindText:      "text",
	KindTSpan:     "tspan",
	KindRect:      "rect",
	KindCircle:    "circle",
	KindEllipse:   "ellipse",
	KindPath:      "path",
	KindNamedView: "namedview",
}

var kindNames = func() map[string]Kind {
	m := make(map[string]Kind, len(kindStrings))
	for k, name := range kindStrings {
		if Kind(k) != KindUnknown {
			m[name] = Kind(k)
		}
	}
	return m
}()

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return "unknown"
	}
	return kindStrings[k]
}

// Element is one node of the document tree. Children keep document order,
// which the per-type slices of a struct-tag model would lose.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []*Element `xml:",any"`

	kind Kind
}

// Kind resolves the element tag once; the namespace is already stripped
// by the decoder.
func (e *Element) Kind() Kind {
	if e.kind == KindUnknown {
		if k, ok := kindNames[e.XMLName.Local]; ok {
			e.kind = k
		}
	}
	return e.kind
}

// Tag is the local element name.
func (e *Element) Tag() string {
	return e.XMLName.Local
}

// Attr returns the value of the attribute with the given local name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ID is the element id, or "" when it has none.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// HasChildren reports whether the element has any child elements.
func (e *Element) HasChildren() bool {
	return len(e.Children) > 0
}

// Content is the direct character data of the element with surrounding
// whitespace removed.
func (e *Element) Content() string {
	return s.TrimSpace(e.Text)
}

// ChildrenOf returns the direct children of the given kind.
func (e *Element) ChildrenOf(k Kind) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

// FindByID walks the tree depth first and returns the element carrying
// the given id.
func FindByID(root *Element, id string) *Element {
	path := PathTo(root, id)
	if path == nil {
		return nil
	}
	return path[len(path)-1]
}

// PathTo returns the chain of elements from root down to the element
// carrying the given id, both ends included, or nil when there is none.
func PathTo(root *Element, id string) []*Element {
	if root == nil {
		return nil
	}
	if root.ID() == id {
		return []*Element{root}
	}
	for _, c := range root.Children {
		if path := PathTo(c, id); path != nil {
			return append([]*Element{root}, path...)
		}
	}
	return nil
}

// Decode reads a whole SVG document. Any charset declared in the XML
// prolog is honoured.
func Decode(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	root := &Element{}
	if err := decoder.Decode(root); err != nil {
		if err == io.EOF {
			return nil, errors.New("svgxml: empty document")
		}
		return nil, errors.Wrap(err, "svgxml: decode")
	}
	if root.Kind() != KindSVG {
		return nil, errors.Errorf("svgxml: root element is <%s>, want <svg>", root.Tag())
	}
	return root, nil
}

// ReadFile opens and decodes the named SVG file.
func ReadFile(name string) (*Element, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read '%s'", name)
	}
	defer f.Close()
	return Decode(f)
}
