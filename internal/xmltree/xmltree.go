// Package xmltree is a minimal generic XML tree: enough to parse a document, check
// its outer structure, select children by tag and serialize a tree back to bytes.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyDocument = errors.New("empty document")
	ErrInvalidRoot   = errors.New("invalid root element")
	ErrUnknownTag    = errors.New("unknown top-level element")
)

// RootTag is the exchange document root, whatever its namespace.
const RootTag = "XMCDA"

// Namespace written on the root by Marshal when the root has no xmlns attribute.
const Namespace = "http://www.decision-deck.org/2009/XMCDA-2.1.0"

type Attr struct {
	Name  string
	Value string
}

// Node is one element. Names are local names; namespaces are dropped on parse.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	text     strings.Builder
}

func New(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

// NewText returns an element holding only character data.
func NewText(name, text string) *Node {
	n := New(name)
	n.text.WriteString(text)
	return n
}

// Append adds children and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the trimmed character data directly inside n.
func (n *Node) Text() string {
	return strings.TrimSpace(n.text.String())
}

// ChildrenNamed returns the direct children named tag, in document order.
func (n *Node) ChildrenNamed(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == tag {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first direct child named tag.
func (n *Node) Child(tag string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == tag {
			return c, true
		}
	}
	return nil, false
}

// Parse builds a tree from raw bytes.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := New(t.Name.Local)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("failed to parse XML: %w", ErrInvalidRoot)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

var topLevel = map[string]bool{
	"projectReference":         true,
	"methodMessages":           true,
	"methodParameters":         true,
	"alternatives":             true,
	"criteria":                 true,
	"categories":               true,
	"performanceTable":         true,
	"criteriaValues":           true,
	"alternativesValues":       true,
	"categoriesValues":         true,
	"categoriesProfiles":       true,
	"alternativesAffectations": true,
	"alternativesComparisons":  true,
	"criteriaComparisons":      true,
	"categoriesComparisons":    true,
	"alternativesSets":         true,
	"criteriaSets":             true,
	"hierarchy":                true,
}

// Validate checks the outer structure: an XMCDA root whose children are all known
// top-level elements.
func Validate(root *Node) error {
	if root == nil {
		return ErrEmptyDocument
	}
	if root.Name != RootTag {
		return fmt.Errorf("%w: %q", ErrInvalidRoot, root.Name)
	}
	for _, c := range root.Children {
		if !topLevel[c.Name] {
			return fmt.Errorf("%w: %q", ErrUnknownTag, c.Name)
		}
	}
	return nil
}

// Marshal writes the tree as indented XML with a declaration.
func Marshal(w io.Writer, root *Node) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if root.Name == RootTag {
		if _, ok := root.Attr("xmlns"); !ok {
			root = &Node{Name: "xmcda:" + RootTag, Attrs: append([]Attr{{Name: "xmlns:xmcda", Value: Namespace}}, root.Attrs...), Children: root.Children}
		}
	}
	if err := encode(enc, root); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func encode(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if text := n.Text(); text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
