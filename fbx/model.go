package fbx

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/fbxdom/utils"
)

// Model is any object of class Model.
type Model struct{ ObjectHandle }

type (
	ModelMesh     struct{ Model }
	ModelLimbNode struct{ Model }
	ModelNull     struct{ Model }
	ModelUnknown  struct{ Model }
)

func (ModelMesh) typedObject()     {}
func (ModelLimbNode) typedObject() {}
func (ModelNull) typedObject()     {}
func (ModelUnknown) typedObject()  {}

// ParentModel returns the model this one is attached to. Models attached
// directly to the scene root have no parent model.
func (m Model) ParentModel() (Model, bool) {
	for _, dest := range m.destinations() {
		if model, ok := AsModel(dest); ok {
			return model, true
		}
	}
	return Model{}, false
}

func (m Model) ChildModels() []Model {
	var result []Model
	for _, src := range m.sources() {
		if model, ok := AsModel(src); ok {
			result = append(result, model)
		}
	}
	return result
}

// LocalTransform composes "Lcl Translation", "Lcl Rotation" (degrees, XYZ
// order) and "Lcl Scaling", falling back to template defaults.
func (m Model) LocalTransform() (mgl64.Mat4, error) {
	props := m.Properties(m.doc.opts.NativeType("Model"))
	load := func(name string, def mgl64.Vec3) (mgl64.Vec3, error) {
		prop, ok := props.Get(name)
		if !ok {
			return def, nil
		}
		return prop.LoadVec3()
	}

	translation, err := load("Lcl Translation", mgl64.Vec3{})
	if err != nil {
		return mgl64.Ident4(), err
	}
	rotation, err := load("Lcl Rotation", mgl64.Vec3{})
	if err != nil {
		return mgl64.Ident4(), err
	}
	scaling, err := load("Lcl Scaling", mgl64.Vec3{1, 1, 1})
	if err != nil {
		return mgl64.Ident4(), err
	}
	return utils.TRS(translation, rotation, scaling), nil
}

// GlobalTransform multiplies local transforms up the model hierarchy.
func (m Model) GlobalTransform() (mgl64.Mat4, error) {
	result := mgl64.Ident4()
	visited := make(map[ObjectID]bool)
	for cur, ok := m, true; ok; cur, ok = cur.ParentModel() {
		if visited[cur.ID()] {
			return result, malformed(cur.Node(), "model hierarchy cycle at object %d", cur.ID())
		}
		visited[cur.ID()] = true
		local, err := cur.LocalTransform()
		if err != nil {
			return result, err
		}
		result = local.Mul4(result)
	}
	return result, nil
}

func (m ModelMesh) ChildGeometryMesh() (GeometryMesh, bool) {
	for _, src := range m.sources() {
		if geometry, ok := src.(GeometryMesh); ok {
			return geometry, true
		}
	}
	return GeometryMesh{}, false
}

// ChildMaterials returns materials in connection order; layer material
// indices refer to this order.
func (m ModelMesh) ChildMaterials() []Material {
	var result []Material
	for _, src := range m.sources() {
		if material, ok := src.(Material); ok {
			result = append(result, material)
		}
	}
	return result
}

// ParentSkeletonNode returns a parent LimbNode or Null model.
func (m ModelLimbNode) ParentSkeletonNode() (Model, bool) {
	for _, dest := range m.destinations() {
		switch v := dest.(type) {
		case ModelLimbNode:
			return v.Model, true
		case ModelNull:
			return v.Model, true
		}
	}
	return Model{}, false
}

func (m ModelLimbNode) ChildSkeletonNodes() []ModelLimbNode {
	var result []ModelLimbNode
	for _, src := range m.sources() {
		if limb, ok := src.(ModelLimbNode); ok {
			result = append(result, limb)
		}
	}
	return result
}

// ParentClusters returns the skin clusters that deform this bone.
func (m ModelLimbNode) ParentClusters() []SubDeformerCluster {
	var result []SubDeformerCluster
	for _, dest := range m.destinations() {
		if cluster, ok := dest.(SubDeformerCluster); ok {
			result = append(result, cluster)
		}
	}
	return result
}
