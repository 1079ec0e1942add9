package levels

import (
	"bytes"
	"fmt"
	"io"
)

// Band factors, in the order they appear under Root > Track.
const (
	FactorBackground = "0.05"
	FactorFar        = "0.1"
	FactorMid        = "0.25"
	FactorNear       = "0.5"
	FactorClose      = "0.8"
	FactorActive     = "1"
	FactorForeground = "1.001"
)

var Factors = []string{
	FactorBackground,
	FactorFar,
	FactorMid,
	FactorNear,
	FactorClose,
	FactorActive,
	FactorForeground,
}

const CommonModeVariant = "CommonMode"

// Document is a level under construction. It owns a Root tree shaped as
// Root > Track > Object[Factor] > Content, Root > Music and Root > Models.
type Document struct {
	root    *Node
	content map[string]*Node
	music   *Node
	models  *Node
}

// NewDocument starts a document from the embedded empty level.
func NewDocument() (*Document, error) {
	root, err := LoadTemplateFromFS(LevelsFS, emptyLevelName)
	if err != nil {
		return nil, err
	}
	return FromRoot(root)
}

// FromRoot wraps an existing tree, creating any missing band, Music or Models
// element so every accessor returns a usable node.
func FromRoot(root *Node) (*Document, error) {
	if root == nil || root.Name != "Root" {
		return nil, fmt.Errorf("levels: document root must be <Root>")
	}
	d := &Document{root: root, content: make(map[string]*Node, len(Factors))}

	track := root.Child("Track")
	if track == nil {
		track = &Node{Name: "Track"}
		root.Children = append([]*Node{track}, root.Children...)
	}
	for _, obj := range track.ChildrenNamed("Object") {
		factor, ok := obj.Attr("Factor")
		if !ok {
			continue
		}
		content := obj.Child("Content")
		if content == nil {
			content = &Node{Name: "Content"}
			obj.Append(content)
		}
		d.content[factor] = content
	}
	for _, factor := range Factors {
		if _, ok := d.content[factor]; ok {
			continue
		}
		content := &Node{Name: "Content"}
		track.Append(NewNode("Object", "Factor", factor).Append(content))
		d.content[factor] = content
	}

	if d.music = root.Child("Music"); d.music == nil {
		d.music = NewNode("Music", "Name", "", "Volume", "")
		root.Append(d.music)
	}
	for _, m := range root.ChildrenNamed("Models") {
		if v, _ := m.Attr("Variant"); v == CommonModeVariant {
			d.models = m
			break
		}
	}
	if d.models == nil {
		d.models = NewNode("Models", "Variant", CommonModeVariant)
		root.Append(d.models)
	}
	return d, nil
}

func (d *Document) Root() *Node { return d.root }

// Content returns the Content element of the band with the given factor.
func (d *Document) Content(factor string) *Node {
	return d.content[factor]
}

func (d *Document) Music() *Node { return d.music }

func (d *Document) Models() *Node { return d.models }

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return Encode(w, d.root)
}

// Bytes serializes the document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}
