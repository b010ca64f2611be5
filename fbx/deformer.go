package fbx

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/mogaika/fbxdom/utils"
)

type DeformerSkin struct{ ObjectHandle }

type SubDeformerCluster struct{ ObjectHandle }

func (DeformerSkin) typedObject()       {}
func (SubDeformerCluster) typedObject() {}

func (s DeformerSkin) ParentGeometryMesh() (GeometryMesh, error) {
	for _, dest := range s.destinations() {
		if geometry, ok := dest.(GeometryMesh); ok {
			return geometry, nil
		}
	}
	return GeometryMesh{}, errors.Wrapf(ErrMissingConnection, "skin %d has no parent geometry mesh", s.ID())
}

func (s DeformerSkin) ChildClusters() []SubDeformerCluster {
	var result []SubDeformerCluster
	for _, src := range s.sources() {
		if cluster, ok := src.(SubDeformerCluster); ok {
			result = append(result, cluster)
		}
	}
	return result
}

func (c SubDeformerCluster) ParentSkin() (DeformerSkin, bool) {
	for _, dest := range c.destinations() {
		if skin, ok := dest.(DeformerSkin); ok {
			return skin, true
		}
	}
	return DeformerSkin{}, false
}

// ChildLimbNode returns the bone driven by this cluster.
func (c SubDeformerCluster) ChildLimbNode() (ModelLimbNode, bool) {
	for _, src := range c.sources() {
		if limb, ok := src.(ModelLimbNode); ok {
			return limb, true
		}
	}
	return ModelLimbNode{}, false
}

// Indexes are control point indices affected by the cluster. Clusters
// without influence have no Indexes node.
func (c SubDeformerCluster) Indexes() ([]int32, error) {
	node, ok := c.Node().FirstChildByName("Indexes")
	if !ok {
		return nil, nil
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return nil, malformed(node, "no attributes")
	}
	return attr.AsArrI32()
}

func (c SubDeformerCluster) Weights() ([]float64, error) {
	node, ok := c.Node().FirstChildByName("Weights")
	if !ok {
		return nil, nil
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return nil, malformed(node, "no attributes")
	}
	return attr.ToArrF64()
}

func (c SubDeformerCluster) matrix(name string) (mgl64.Mat4, error) {
	node, ok := c.Node().FirstChildByName(name)
	if !ok {
		return mgl64.Ident4(), nil
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return mgl64.Ident4(), malformed(node, "no attributes")
	}
	values, err := attr.ToArrF64()
	if err != nil {
		return mgl64.Ident4(), malformed(node, "%v", err)
	}
	m, ok := utils.Mat4FromSlice(values)
	if !ok {
		return mgl64.Ident4(), malformed(node, "expected 16 matrix elements but got %d", len(values))
	}
	return m, nil
}

// Transform is the mesh transform at bind time.
func (c SubDeformerCluster) Transform() (mgl64.Mat4, error) { return c.matrix("Transform") }

// TransformLink is the bone transform at bind time.
func (c SubDeformerCluster) TransformLink() (mgl64.Mat4, error) { return c.matrix("TransformLink") }

// Influences pairs control point indices with weights.
func (c SubDeformerCluster) Influences() (map[int32]float64, error) {
	indexes, err := c.Indexes()
	if err != nil {
		return nil, err
	}
	weights, err := c.Weights()
	if err != nil {
		return nil, err
	}
	if len(indexes) != len(weights) {
		return nil, malformed(c.Node(), "cluster has %d indexes but %d weights", len(indexes), len(weights))
	}
	result := make(map[int32]float64, len(indexes))
	for i, idx := range indexes {
		result[idx] += weights[i]
	}
	return result, nil
}
