package fbx

import (
	"github.com/pkg/errors"

	"github.com/mogaika/fbxdom/config"
	"github.com/mogaika/fbxdom/mesh"
	"github.com/mogaika/fbxdom/tree"
)

// GeometryMesh is a Geometry object with the Mesh subclass.
type GeometryMesh struct{ ObjectHandle }

func (GeometryMesh) typedObject() {}

// ParentModelMesh returns the mesh model using this geometry. A mesh
// geometry without one is an inconsistent document.
func (g GeometryMesh) ParentModelMesh() (ModelMesh, error) {
	for _, dest := range g.destinations() {
		if model, ok := dest.(ModelMesh); ok {
			return model, nil
		}
	}
	return ModelMesh{}, errors.Wrapf(ErrMissingConnection, "geometry mesh %d has no parent model mesh", g.ID())
}

func (g GeometryMesh) ChildDeformerSkins() []DeformerSkin {
	var result []DeformerSkin
	for _, src := range g.sources() {
		if skin, ok := src.(DeformerSkin); ok {
			result = append(result, skin)
		}
	}
	return result
}

func (g GeometryMesh) arrayNode(name string) (tree.Attribute, error) {
	node, ok := g.Node().FirstChildByName(name)
	if !ok {
		return tree.Attribute{}, missingNode(g.Node().Path() + "/" + name)
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return tree.Attribute{}, malformed(node, "no attributes")
	}
	return attr, nil
}

func (g GeometryMesh) ControlPoints() (mesh.ControlPoints, error) {
	attr, err := g.arrayNode("Vertices")
	if err != nil {
		return mesh.ControlPoints{}, err
	}
	vertices, err := attr.ToArrF64()
	if err != nil {
		return mesh.ControlPoints{}, errors.Wrapf(err, "geometry mesh %d vertices", g.ID())
	}
	return mesh.NewControlPoints(vertices)
}

func (g GeometryMesh) RawPolygonVertices() ([]int32, error) {
	attr, err := g.arrayNode("PolygonVertexIndex")
	if err != nil {
		return nil, err
	}
	raw, err := attr.AsArrI32()
	if err != nil {
		return nil, errors.Wrapf(err, "geometry mesh %d polygon vertex indices", g.ID())
	}
	return raw, nil
}

func (g GeometryMesh) PolygonVertices() (mesh.PolygonVertices, error) {
	cp, err := g.ControlPoints()
	if err != nil {
		return mesh.PolygonVertices{}, err
	}
	raw, err := g.RawPolygonVertices()
	if err != nil {
		return mesh.PolygonVertices{}, err
	}
	return mesh.NewPolygonVertices(cp, raw), nil
}

// Triangulate decodes polygons and splits them with t.
func (g GeometryMesh) Triangulate(t mesh.Triangulator) (*mesh.TriangleVertices, error) {
	pvs, err := g.PolygonVertices()
	if err != nil {
		return nil, err
	}
	return pvs.Triangulate(t)
}

// TriangulateDefault uses the triangulator selected in the load options.
func (g GeometryMesh) TriangulateDefault() (*mesh.TriangleVertices, error) {
	t := mesh.FanTriangulator
	if g.doc.opts.Triangulator == config.TriangulatorEarClip {
		t = mesh.EarClipTriangulator
	}
	return g.Triangulate(t)
}

func (g GeometryMesh) Layers() []mesh.Layer {
	return mesh.LayersOf(g.Node())
}

// Layer returns the layer with the given index.
func (g GeometryMesh) Layer(index int) (mesh.Layer, bool) {
	for _, layer := range g.Layers() {
		if i, err := layer.Index(); err == nil && i == index {
			return layer, true
		}
	}
	return mesh.Layer{}, false
}
