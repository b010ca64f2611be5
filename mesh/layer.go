package mesh

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mogaika/fbxdom/tree"
)

type LayerElementType int

const (
	LayerElementNormal LayerElementType = iota
	LayerElementBinormal
	LayerElementTangent
	LayerElementUV
	LayerElementColor
	LayerElementMaterial
	LayerElementSmoothing
	LayerElementVisibility
	LayerElementPolygonGroup
	LayerElementEdgeCrease
	LayerElementVertexCrease
	LayerElementHole
	LayerElementUserData
	LayerElementTexture
)

var layerElementNodeNames = [...]string{
	LayerElementNormal:       "LayerElementNormal",
	LayerElementBinormal:     "LayerElementBinormal",
	LayerElementTangent:      "LayerElementTangent",
	LayerElementUV:           "LayerElementUV",
	LayerElementColor:        "LayerElementColor",
	LayerElementMaterial:     "LayerElementMaterial",
	LayerElementSmoothing:    "LayerElementSmoothing",
	LayerElementVisibility:   "LayerElementVisibility",
	LayerElementPolygonGroup: "LayerElementPolygonGroup",
	LayerElementEdgeCrease:   "LayerElementEdgeCrease",
	LayerElementVertexCrease: "LayerElementVertexCrease",
	LayerElementHole:         "LayerElementHole",
	LayerElementUserData:     "LayerElementUserData",
	LayerElementTexture:      "LayerElementTexture",
}

// NodeName is the name of geometry child nodes holding this element type.
func (t LayerElementType) NodeName() string {
	if t >= 0 && int(t) < len(layerElementNodeNames) {
		return layerElementNodeNames[t]
	}
	return fmt.Sprintf("LayerElementType(%d)", int(t))
}

func (t LayerElementType) String() string { return t.NodeName() }

func ParseLayerElementType(s string) (LayerElementType, error) {
	for t, name := range layerElementNodeNames {
		if name == s {
			return LayerElementType(t), nil
		}
	}
	return 0, errors.Errorf("Unknown layer element type %q", s)
}

// Layer is a Layer node of a geometry, grouping one element per type.
type Layer struct {
	node tree.Node
}

// LayersOf returns the Layer children of a geometry node.
func LayersOf(geometry tree.Node) []Layer {
	nodes := geometry.ChildrenByName("Layer")
	result := make([]Layer, len(nodes))
	for i, node := range nodes {
		result[i] = Layer{node: node}
	}
	return result
}

func (l Layer) Node() tree.Node { return l.node }

func (l Layer) Index() (int, error) {
	return nonNegativeIndex(l.node, "layer index")
}

func (l Layer) Entries() []LayerElementEntry {
	nodes := l.node.ChildrenByName("LayerElement")
	result := make([]LayerElementEntry, len(nodes))
	for i, node := range nodes {
		result[i] = LayerElementEntry{node: node}
	}
	return result
}

// Element returns the first element of the given type in the layer.
// Entries of unknown types are skipped.
func (l Layer) Element(t LayerElementType) (LayerElement, bool, error) {
	for _, entry := range l.Entries() {
		name, err := entry.TypeName()
		if err != nil {
			return LayerElement{}, false, err
		}
		typ, err := ParseLayerElementType(name)
		if err != nil || typ != t {
			continue
		}
		return entry.Element()
	}
	return LayerElement{}, false, nil
}

// LayerElementEntry is a LayerElement node: a Type name and a TypedIndex
// referencing a sibling of the layer.
type LayerElementEntry struct {
	node tree.Node
}

func (e LayerElementEntry) TypeName() (string, error) {
	node, ok := e.node.FirstChildByName("Type")
	if !ok {
		return "", errors.Errorf("Child node `Type` not found for %v", e.node)
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return "", errors.Errorf("Attributes not found for %v", node)
	}
	s, err := attr.AsString()
	if err != nil {
		return "", errors.Wrapf(err, "layer element type of %v", node)
	}
	return s, nil
}

func (e LayerElementEntry) Type() (LayerElementType, error) {
	s, err := e.TypeName()
	if err != nil {
		return 0, err
	}
	return ParseLayerElementType(s)
}

func (e LayerElementEntry) TypedIndex() (int, error) {
	node, ok := e.node.FirstChildByName("TypedIndex")
	if !ok {
		return 0, errors.Errorf("Child node `TypedIndex` not found for %v", e.node)
	}
	return nonNegativeIndex(node, "layer element index")
}

// Element finds the geometry child the entry points at. A dangling entry
// is reported as not found.
func (e LayerElementEntry) Element() (LayerElement, bool, error) {
	typ, err := e.Type()
	if err != nil {
		return LayerElement{}, false, err
	}
	index, err := e.TypedIndex()
	if err != nil {
		return LayerElement{}, false, err
	}
	layer, ok := e.node.Parent()
	if !ok {
		return LayerElement{}, false, errors.Errorf("Layer element entry %v has no parent", e.node)
	}
	geometry, ok := layer.Parent()
	if !ok {
		return LayerElement{}, false, errors.Errorf("Layer %v has no parent", layer)
	}
	for _, node := range geometry.ChildrenByName(typ.NodeName()) {
		attr, ok := node.Attribute(0)
		if !ok {
			continue
		}
		if v, err := attr.ToInt64(); err == nil && v == int64(index) {
			return LayerElement{typ: typ, node: node}, true, nil
		}
	}
	return LayerElement{}, false, nil
}

func nonNegativeIndex(node tree.Node, what string) (int, error) {
	attr, ok := node.Attribute(0)
	if !ok {
		return 0, errors.Errorf("No attributes found for %v", node)
	}
	v, err := attr.ToInt64()
	if err != nil {
		return 0, errors.Wrapf(err, "%s of %v", what, node)
	}
	if v < 0 {
		return 0, errors.Errorf("Expected non-negative integer as %s, but got %d", what, v)
	}
	return int(v), nil
}
