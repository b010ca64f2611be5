package tree

import (
	"unicode/utf8"

	"github.com/mogaika/fbx"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// RawNode is a node literal used to assemble trees by hand.
type RawNode struct {
	Name       string
	Attributes []interface{}
	Nodes      []*RawNode
}

func NewRawNode(name string, attrs ...interface{}) *RawNode {
	return &RawNode{Name: name, Attributes: attrs}
}

func (n *RawNode) AddNodes(nodes ...*RawNode) *RawNode {
	n.Nodes = append(n.Nodes, nodes...)
	return n
}

type builder struct {
	t  *Tree
	cm *charmap.Charmap
}

func newBuilder(cm *charmap.Charmap) *builder {
	return &builder{
		t:  &Tree{nodes: []nodeData{{parent: RootID}}},
		cm: cm,
	}
}

func (b *builder) add(parent NodeID, name string, values []interface{}) (NodeID, error) {
	attrs := make([]Attribute, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			v = b.decodeString(s)
		}
		a, err := NewAttribute(v)
		if err != nil {
			return 0, errors.Wrapf(err, "attribute %d of node %q", i, name)
		}
		attrs[i] = a
	}

	id := NodeID(len(b.t.nodes))
	b.t.nodes = append(b.t.nodes, nodeData{name: b.decodeString(name), attrs: attrs, parent: parent})
	b.t.nodes[parent].children = append(b.t.nodes[parent].children, id)
	return id, nil
}

func (b *builder) decodeString(s string) string {
	if b.cm == nil || utf8.ValidString(s) {
		return s
	}
	if decoded, err := b.cm.NewDecoder().String(s); err == nil {
		return decoded
	}
	return s
}

// Build assembles a tree from literals. Top-level nodes are given as
// children of root; root's own name and attributes are ignored.
func Build(root *RawNode) (*Tree, error) {
	b := newBuilder(nil)
	var walk func(parent NodeID, n *RawNode) error
	walk = func(parent NodeID, n *RawNode) error {
		id, err := b.add(parent, n.Name, n.Attributes)
		if err != nil {
			return err
		}
		for _, child := range n.Nodes {
			if err := walk(id, child); err != nil {
				return err
			}
		}
		return nil
	}
	for _, child := range root.Nodes {
		if err := walk(RootID, child); err != nil {
			return nil, err
		}
	}
	return b.t, nil
}

// FromFBX indexes a node tree produced by github.com/mogaika/fbx. Strings
// that are not valid UTF-8 are decoded with cm, when given.
func FromFBX(root *fbx.Node, cm *charmap.Charmap) (*Tree, error) {
	if root == nil {
		return nil, errors.New("nil fbx root node")
	}
	b := newBuilder(cm)
	var walk func(parent NodeID, n *fbx.Node) error
	walk = func(parent NodeID, n *fbx.Node) error {
		values := make([]interface{}, len(n.Properties))
		for i, p := range n.Properties {
			values[i] = p
		}
		id, err := b.add(parent, n.Name, values)
		if err != nil {
			return err
		}
		for _, child := range n.Nodes {
			if child == nil {
				continue
			}
			if err := walk(id, child); err != nil {
				return err
			}
		}
		return nil
	}
	for _, child := range root.Nodes {
		if child == nil {
			continue
		}
		if err := walk(RootID, child); err != nil {
			return nil, errors.Wrapf(err, "converting fbx node %q", child.Name)
		}
	}
	return b.t, nil
}
