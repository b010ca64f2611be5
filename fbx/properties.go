package fbx

import (
	"github.com/mogaika/fbxdom/tree"
)

// PropertiesNodeID is the tree node id of a Properties70 node.
type PropertiesNodeID tree.NodeID

// PropertiesHandle is a Properties70 node.
type PropertiesHandle struct {
	node tree.Node
}

func (d *Document) propertiesHandle(id PropertiesNodeID) PropertiesHandle {
	node, ok := d.tree.Node(tree.NodeID(id))
	if !ok {
		panic("properties node id out of the document tree")
	}
	return PropertiesHandle{node: node}
}

func (p PropertiesHandle) NodeID() PropertiesNodeID { return PropertiesNodeID(p.node.ID()) }

// Get returns the first P node named name.
func (p PropertiesHandle) Get(name string) (PropertyHandle, bool) {
	for _, child := range p.node.ChildrenByName("P") {
		attr, ok := child.Attribute(0)
		if !ok {
			continue
		}
		if s, err := attr.AsString(); err == nil && s == name {
			return PropertyHandle{node: child}, true
		}
	}
	return PropertyHandle{}, false
}

// Properties returns all P nodes in file order.
func (p PropertiesHandle) Properties() []PropertyHandle {
	children := p.node.ChildrenByName("P")
	result := make([]PropertyHandle, len(children))
	for i, child := range children {
		result[i] = PropertyHandle{node: child}
	}
	return result
}

// ObjectProperties resolves properties of one object, falling back to the
// property template of its native type.
type ObjectProperties struct {
	direct     *PropertiesHandle
	defaults   *PropertiesHandle
	nativeType string
}

// Get looks name up in the object's own properties first, then in the
// template defaults.
func (p ObjectProperties) Get(name string) (PropertyHandle, bool) {
	if p.direct != nil {
		if prop, ok := p.direct.Get(name); ok {
			return prop, true
		}
	}
	if p.defaults != nil {
		if prop, ok := p.defaults.Get(name); ok {
			return prop, true
		}
	}
	return PropertyHandle{}, false
}

func (p ObjectProperties) DirectProperties() (PropertiesHandle, bool) {
	if p.direct == nil {
		return PropertiesHandle{}, false
	}
	return *p.direct, true
}

func (p ObjectProperties) DefaultProperties() (PropertiesHandle, bool) {
	if p.defaults == nil {
		return PropertiesHandle{}, false
	}
	return *p.defaults, true
}

func (p ObjectProperties) NativeTypeName() string { return p.nativeType }
