// Package tree is an immutable, indexed view of a parsed FBX node tree.
//
// Every node gets a stable NodeID. The implicit root (id 0) has no name and
// no attributes; top-level file nodes like Objects and Connections are its
// children.
package tree

import "fmt"

type NodeID int

const RootID NodeID = 0

type nodeData struct {
	name     string
	attrs    []Attribute
	parent   NodeID
	children []NodeID
}

// Tree is safe for concurrent reads.
type Tree struct {
	nodes []nodeData
}

func (t *Tree) Root() Node {
	return Node{tree: t, id: RootID}
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return Node{tree: t, id: id}, true
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node is a lightweight handle, valid as long as the tree is alive.
type Node struct {
	tree *Tree
	id   NodeID
}

func (n Node) data() *nodeData {
	return &n.tree.nodes[n.id]
}

func (n Node) Tree() *Tree             { return n.tree }
func (n Node) ID() NodeID              { return n.id }
func (n Node) Name() string            { return n.data().name }
func (n Node) Attributes() []Attribute { return n.data().attrs }
func (n Node) IsRoot() bool            { return n.id == RootID }

// Attribute returns attribute i, or false if the node has fewer attributes.
func (n Node) Attribute(i int) (Attribute, bool) {
	attrs := n.data().attrs
	if i < 0 || i >= len(attrs) {
		return Attribute{}, false
	}
	return attrs[i], true
}

func (n Node) Parent() (Node, bool) {
	if n.id == RootID {
		return Node{}, false
	}
	return Node{tree: n.tree, id: n.data().parent}, true
}

func (n Node) Children() []Node {
	ids := n.data().children
	result := make([]Node, len(ids))
	for i, id := range ids {
		result[i] = Node{tree: n.tree, id: id}
	}
	return result
}

// ChildrenByName returns all children with the given name in file order.
func (n Node) ChildrenByName(name string) []Node {
	var result []Node
	for _, id := range n.data().children {
		if n.tree.nodes[id].name == name {
			result = append(result, Node{tree: n.tree, id: id})
		}
	}
	return result
}

func (n Node) FirstChildByName(name string) (Node, bool) {
	for _, id := range n.data().children {
		if n.tree.nodes[id].name == name {
			return Node{tree: n.tree, id: id}, true
		}
	}
	return Node{}, false
}

// Path returns slash separated node names from the root, for diagnostics.
func (n Node) Path() string {
	if n.id == RootID {
		return "/"
	}
	p := ""
	for id := n.id; id != RootID; id = n.tree.nodes[id].parent {
		p = "/" + n.tree.nodes[id].name + p
	}
	return p
}

func (n Node) String() string {
	return fmt.Sprintf("%s#%d%s", n.Path(), n.id, TypesOf(n.Attributes()))
}
