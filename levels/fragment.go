package levels

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedMarkup = errors.New("levels: malformed markup")

// ParseFragment parses a sequence of sibling elements, such as hand-written
// trigger content, into nodes. Comments and whitespace between elements are
// dropped; any other text between them is an error.
func ParseFragment(text string) ([]*Node, error) {
	root, err := parse("<Fragment>" + text + "</Fragment>")
	if err != nil {
		return nil, err
	}
	if root.Text != "" {
		return nil, fmt.Errorf("%w: text %q outside an element", ErrMalformedMarkup, root.Text)
	}
	return root.Children, nil
}

// ParseDocument parses a whole document and returns its root element.
func ParseDocument(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("levels: read document: %w", err)
	}
	return parse(string(data))
}

func parse(text string) (*Node, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = true

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: attrName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedMarkup)
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
			if len(stack) == 0 {
				continue
			}
			if s := strings.TrimSpace(string(t)); s != "" {
				stack[len(stack)-1].Text += s
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedMarkup)
	}
	return root, nil
}

func attrName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
