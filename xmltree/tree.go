// Package xmltree provides a small namespace-aware element tree.
//
// XFL documents declare their namespace per producer, so element lookups
// cannot be expressed as static struct tags. The tree keeps every element in
// document order and offers the probing operations the document loader needs:
// first matching child, all matching children and unqualified attributes.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Parse errors.
var (
	ErrMalformed   = errors.New("xmltree: malformed XML")
	ErrNoNamespace = errors.New("xmltree: namespace cannot be derived from root element")
)

// Node is a single XML element.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
}

// ParseBytes parses data into an element tree and returns its root.
func ParseBytes(data []byte) (*Node, error) {
	return Parse(bytes.NewReader(data))
}

// Parse reads a complete XML document from r and returns its root element.
// A leading byte order mark selects UTF-8 or UTF-16; any other encoding named
// in the XML declaration is decoded through the WHATWG charset registry.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	decoder.CharsetReader = charsetReader

	var root *Node
	var stack []*Node

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name, Attrs: elementAttrs(t.Attr)}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformed)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return root, nil
}

// charsetReader decodes non-UTF-8 declared encodings. UTF-16 input has
// already been transcoded by the BOM sniffer, so its label is ignored.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	if strings.HasPrefix(strings.ToLower(label), "utf-16") {
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}

// elementAttrs drops namespace declarations, which are not attributes of the
// element itself.
func elementAttrs(attrs []xml.Attr) []xml.Attr {
	out := make([]xml.Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Namespace returns the namespace of root, which must be named local.
func Namespace(root *Node, local string) (string, error) {
	if root == nil {
		return "", ErrNoNamespace
	}
	if root.Name.Local != local {
		return "", fmt.Errorf("%w: root element is %q, want %q", ErrNoNamespace, root.Name.Local, local)
	}
	if root.Name.Space == "" {
		return "", fmt.Errorf("%w: root element %q is unqualified", ErrNoNamespace, local)
	}
	return root.Name.Space, nil
}

// Find returns the first direct child named {space}local, or nil.
func (n *Node) Find(space, local string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name.Space == space && c.Name.Local == local {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child named {space}local in document order.
func (n *Node) FindAll(space, local string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name.Space == space && c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// HasChildren reports whether n has at least one child element.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// Attr returns the value of the unqualified attribute name.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
