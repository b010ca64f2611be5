package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/mogaika/fbxdom/tree"
)

// LayerElement is a LayerElement* child of a geometry. Its data is read
// from the tree on every access.
type LayerElement struct {
	typ  LayerElementType
	node tree.Node
}

func (e LayerElement) Type() LayerElementType { return e.typ }
func (e LayerElement) Node() tree.Node        { return e.node }

func (e LayerElement) Index() (int, error) {
	return nonNegativeIndex(e.node, "layer element index")
}

func (e LayerElement) childString(name string) (string, error) {
	node, ok := e.node.FirstChildByName(name)
	if !ok {
		return "", errors.Errorf("Child node `%s` not found for %v", name, e.node)
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return "", errors.Errorf("No attributes found for %v", node)
	}
	s, err := attr.AsString()
	if err != nil {
		return "", errors.Wrapf(err, "%v", node)
	}
	return s, nil
}

func (e LayerElement) Name() (string, bool) {
	s, err := e.childString("Name")
	return s, err == nil
}

func (e LayerElement) MappingMode() (MappingMode, error) {
	s, err := e.childString("MappingInformationType")
	if err != nil {
		return MappingNone, err
	}
	return ParseMappingMode(s)
}

func (e LayerElement) ReferenceMode() (ReferenceMode, error) {
	s, err := e.childString("ReferenceInformationType")
	if err != nil {
		return ReferenceDirect, err
	}
	return ParseReferenceMode(s)
}

func (e LayerElement) attribute(name string) (tree.Attribute, error) {
	node, ok := e.node.FirstChildByName(name)
	if !ok {
		return tree.Attribute{}, errors.Errorf("No `%s` found for %v", name, e.node)
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return tree.Attribute{}, errors.Errorf("No attributes found for %v", node)
	}
	return attr, nil
}

func (e LayerElement) floats(name string) ([]float64, error) {
	attr, err := e.attribute(name)
	if err != nil {
		return nil, err
	}
	v, err := attr.ToArrF64()
	if err != nil {
		return nil, errors.Wrapf(err, "`%s` of %v", name, e.node)
	}
	return v, nil
}

func (e LayerElement) ints(name string) ([]int32, error) {
	attr, err := e.attribute(name)
	if err != nil {
		return nil, err
	}
	v, err := attr.AsArrI32()
	if err != nil {
		return nil, errors.Wrapf(err, "`%s` of %v", name, e.node)
	}
	return v, nil
}

func (e LayerElement) expectType(t LayerElementType) error {
	if e.typ != t {
		return errors.Errorf("Expected %v layer element but got %v", t, e.typ)
	}
	return nil
}

// referenceInformation reads the reference mode, and the index array
// named indexName for IndexToDirect.
func (e LayerElement) referenceInformation(indexName string) (ReferenceInformation, error) {
	mode, err := e.ReferenceMode()
	if err != nil {
		return ReferenceInformation{}, err
	}
	if mode == ReferenceDirect {
		return Direct(), nil
	}
	indices, err := e.ints(indexName)
	if err != nil {
		return ReferenceInformation{}, err
	}
	return IndexToDirect(indices), nil
}

// vectorLayer is a float array read stride values at a time.
type vectorLayer struct {
	values  []float64
	stride  int
	ref     ReferenceInformation
	mapping MappingMode
}

func (e LayerElement) vectorLayer(t LayerElementType, valuesName, indexName string, stride int) (vectorLayer, error) {
	if err := e.expectType(t); err != nil {
		return vectorLayer{}, err
	}
	values, err := e.floats(valuesName)
	if err != nil {
		return vectorLayer{}, err
	}
	if len(values)%stride != 0 {
		return vectorLayer{}, errors.Errorf("Expected multiple of %d values in `%s` of %v but got %d",
			stride, valuesName, e.node, len(values))
	}
	mapping, err := e.MappingMode()
	if err != nil {
		return vectorLayer{}, err
	}
	ref, err := e.referenceInformation(indexName)
	if err != nil {
		return vectorLayer{}, err
	}
	return vectorLayer{values: values, stride: stride, ref: ref, mapping: mapping}, nil
}

func (l vectorLayer) Len() int                        { return len(l.values) / l.stride }
func (l vectorLayer) MappingMode() MappingMode        { return l.mapping }
func (l vectorLayer) Reference() ReferenceInformation { return l.ref }

func (l vectorLayer) at(tris *TriangleVertices, tvi TriangleVertexIndex) ([]float64, error) {
	i, err := ResolveIndex(l.ref, l.mapping, tris, l.Len(), tvi)
	if err != nil {
		return nil, err
	}
	return l.values[i*l.stride : (i+1)*l.stride], nil
}

func (l vectorLayer) vec3(tris *TriangleVertices, tvi TriangleVertexIndex) (mgl64.Vec3, error) {
	v, err := l.at(tris, tvi)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

type Normals struct{ vectorLayer }

func (e LayerElement) Normals() (Normals, error) {
	l, err := e.vectorLayer(LayerElementNormal, "Normals", "NormalsIndex", 3)
	return Normals{l}, err
}

func (n Normals) Normal(tris *TriangleVertices, tvi TriangleVertexIndex) (mgl64.Vec3, error) {
	return n.vec3(tris, tvi)
}

type Tangents struct{ vectorLayer }

func (e LayerElement) Tangents() (Tangents, error) {
	l, err := e.vectorLayer(LayerElementTangent, "Tangents", "TangentsIndex", 3)
	return Tangents{l}, err
}

func (t Tangents) Tangent(tris *TriangleVertices, tvi TriangleVertexIndex) (mgl64.Vec3, error) {
	return t.vec3(tris, tvi)
}

type Binormals struct{ vectorLayer }

func (e LayerElement) Binormals() (Binormals, error) {
	l, err := e.vectorLayer(LayerElementBinormal, "Binormals", "BinormalsIndex", 3)
	return Binormals{l}, err
}

func (b Binormals) Binormal(tris *TriangleVertices, tvi TriangleVertexIndex) (mgl64.Vec3, error) {
	return b.vec3(tris, tvi)
}

type UVs struct{ vectorLayer }

func (e LayerElement) UVs() (UVs, error) {
	l, err := e.vectorLayer(LayerElementUV, "UV", "UVIndex", 2)
	return UVs{l}, err
}

func (u UVs) UV(tris *TriangleVertices, tvi TriangleVertexIndex) (mgl64.Vec2, error) {
	v, err := u.at(tris, tvi)
	if err != nil {
		return mgl64.Vec2{}, err
	}
	return mgl64.Vec2{v[0], v[1]}, nil
}

// Colors are RGBA vertex colors.
type Colors struct{ vectorLayer }

func (e LayerElement) Colors() (Colors, error) {
	l, err := e.vectorLayer(LayerElementColor, "Colors", "ColorIndex", 4)
	return Colors{l}, err
}

func (c Colors) Color(tris *TriangleVertices, tvi TriangleVertexIndex) (mgl64.Vec4, error) {
	v, err := c.at(tris, tvi)
	if err != nil {
		return mgl64.Vec4{}, err
	}
	return mgl64.Vec4{v[0], v[1], v[2], v[3]}, nil
}

// MaterialIndex is an index into the materials of the mesh model.
type MaterialIndex uint32

// Materials maps triangle vertices to material indices. The Materials
// array is itself the index array and is addressed directly.
type Materials struct {
	indices []int32
	mapping MappingMode
}

func (e LayerElement) Materials() (Materials, error) {
	if err := e.expectType(LayerElementMaterial); err != nil {
		return Materials{}, err
	}
	mapping, err := e.MappingMode()
	if err != nil {
		return Materials{}, err
	}
	mode, err := e.ReferenceMode()
	if err != nil {
		return Materials{}, err
	}
	if mode != ReferenceIndexToDirect {
		return Materials{}, errors.Errorf("Unsupported reference mode for material: %v", mode)
	}
	indices, err := e.ints("Materials")
	if err != nil {
		return Materials{}, err
	}
	return Materials{indices: indices, mapping: mapping}, nil
}

func (m Materials) MappingMode() MappingMode { return m.mapping }

func (m Materials) MaterialIndex(tris *TriangleVertices, tvi TriangleVertexIndex) (MaterialIndex, error) {
	i, err := ResolveIndex(Direct(), m.mapping, tris, len(m.indices), tvi)
	if err != nil {
		return 0, err
	}
	v := m.indices[i]
	if v < 0 {
		return 0, &NegativeIndexError{What: "material", Slot: i, Value: v}
	}
	return MaterialIndex(v), nil
}

// Smoothing holds per polygon (or per edge) smoothing flags.
type Smoothing struct {
	values  []int32
	ref     ReferenceInformation
	mapping MappingMode
}

func (e LayerElement) Smoothing() (Smoothing, error) {
	if err := e.expectType(LayerElementSmoothing); err != nil {
		return Smoothing{}, err
	}
	values, err := e.ints("Smoothing")
	if err != nil {
		return Smoothing{}, err
	}
	mapping, err := e.MappingMode()
	if err != nil {
		return Smoothing{}, err
	}
	ref, err := e.referenceInformation("SmoothingIndex")
	if err != nil {
		return Smoothing{}, err
	}
	return Smoothing{values: values, ref: ref, mapping: mapping}, nil
}

func (s Smoothing) MappingMode() MappingMode { return s.mapping }

func (s Smoothing) Smooth(tris *TriangleVertices, tvi TriangleVertexIndex) (bool, error) {
	i, err := ResolveIndex(s.ref, s.mapping, tris, len(s.values), tvi)
	if err != nil {
		return false, err
	}
	return s.values[i] != 0, nil
}
