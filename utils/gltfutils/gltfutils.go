package gltfutils

import (
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/fbxdom/fbx"
	"github.com/mogaika/fbxdom/mesh"
	"github.com/mogaika/fbxdom/utils"
)

// Exporter converts models of one FBX document into glTF nodes.
type Exporter struct {
	Doc *gltf.Document

	src       *fbx.Document
	nodes     map[fbx.ObjectID]uint32
	materials map[fbx.ObjectID]uint32
	names     utils.RandomNameGenerator
}

func NewExporter(src *fbx.Document) *Exporter {
	return &Exporter{
		Doc:       gltf.NewDocument(),
		src:       src,
		nodes:     make(map[fbx.ObjectID]uint32),
		materials: make(map[fbx.ObjectID]uint32),
	}
}

// ExportScene converts the model hierarchy of the first scene, or every
// model when the document has no scene.
func ExportScene(src *fbx.Document) (*gltf.Document, error) {
	e := NewExporter(src)

	var models []fbx.Model
	if scenes := src.Scenes(); len(scenes) != 0 {
		models = scenes[0].Models()
	} else {
		for _, obj := range src.Objects() {
			if model, ok := fbx.AsModel(obj.Typed()); ok {
				models = append(models, model)
			}
		}
	}

	for _, model := range models {
		if _, err := e.ExportModel(model); err != nil {
			return nil, err
		}
	}
	return e.Doc, nil
}

// ExportModel adds a node for model, attaching it to an already exported
// parent model or to the scene.
func (e *Exporter) ExportModel(model fbx.Model) (uint32, error) {
	if index, ok := e.nodes[model.ID()]; ok {
		return index, nil
	}

	local, err := model.LocalTransform()
	if err != nil {
		return 0, errors.Wrapf(err, "Failed to get transform of %v", model)
	}
	name, _ := model.Name()
	node := &gltf.Node{
		Name:   e.names.UniqueName(name),
		Matrix: mat4To32(local),
	}

	if meshModel, ok := model.Typed().(fbx.ModelMesh); ok {
		gltfMesh, err := e.exportMesh(meshModel)
		if err != nil {
			return 0, errors.Wrapf(err, "Failed to export mesh of %v", model)
		}
		if gltfMesh != nil {
			e.Doc.Meshes = append(e.Doc.Meshes, gltfMesh)
			node.Mesh = gltf.Index(uint32(len(e.Doc.Meshes) - 1))
		}
	}

	index := uint32(len(e.Doc.Nodes))
	e.Doc.Nodes = append(e.Doc.Nodes, node)
	e.nodes[model.ID()] = index

	if parent, ok := model.ParentModel(); ok {
		if parentIndex, ok := e.nodes[parent.ID()]; ok {
			e.Doc.Nodes[parentIndex].Children = append(e.Doc.Nodes[parentIndex].Children, index)
			return index, nil
		}
	}
	e.Doc.Scenes[0].Nodes = append(e.Doc.Scenes[0].Nodes, index)
	return index, nil
}

// primitiveData collects unindexed triangle vertices using one material.
type primitiveData struct {
	material  int
	positions [][3]float32
	normals   [][3]float32
	uvs       [][2]float32
	indices   []uint32
}

const noMaterial = -1

func (e *Exporter) exportMesh(model fbx.ModelMesh) (*gltf.Mesh, error) {
	geometry, ok := model.ChildGeometryMesh()
	if !ok {
		return nil, nil
	}
	tris, err := geometry.TriangulateDefault()
	if err != nil {
		return nil, err
	}
	if tris.Len() == 0 {
		return nil, nil
	}

	normals, haveNormals := e.normals(geometry, tris)
	uvs, haveUVs := e.uvs(geometry, tris)
	slots := e.materialSlots(geometry, tris)
	modelMaterials := model.ChildMaterials()

	var primitives []*primitiveData
	bySlot := make(map[int]*primitiveData)
	for tvi := 0; tvi < tris.Len(); tvi++ {
		position, ok := tris.ControlPoint(mesh.TriangleVertexIndex(tvi))
		if !ok {
			return nil, errors.Errorf("Triangle vertex %d has no control point", tvi)
		}

		slot := noMaterial
		if slots != nil {
			slot = slots[tvi]
		}
		prim, ok := bySlot[slot]
		if !ok {
			prim = &primitiveData{material: slot}
			bySlot[slot] = prim
			primitives = append(primitives, prim)
		}

		prim.indices = append(prim.indices, uint32(len(prim.positions)))
		prim.positions = append(prim.positions, utils.Vec3To32(position))
		if haveNormals {
			prim.normals = append(prim.normals, normals[tvi])
		}
		if haveUVs {
			prim.uvs = append(prim.uvs, uvs[tvi])
		}
	}

	name, _ := model.Name()
	gltfMesh := &gltf.Mesh{Name: name}
	for _, prim := range primitives {
		attributes := make(map[string]uint32)
		attributes["POSITION"] = modeler.WritePosition(e.Doc, prim.positions)
		if haveNormals {
			attributes["NORMAL"] = modeler.WriteNormal(e.Doc, prim.normals)
		}
		if haveUVs {
			attributes["TEXCOORD_0"] = modeler.WriteTextureCoord(e.Doc, prim.uvs)
		}
		primitive := &gltf.Primitive{
			Indices:    gltf.Index(modeler.WriteIndices(e.Doc, prim.indices)),
			Attributes: attributes,
		}
		if prim.material != noMaterial {
			if prim.material < len(modelMaterials) {
				primitive.Material = gltf.Index(e.exportMaterial(modelMaterials[prim.material]))
			} else {
				log.Printf("[gltf] Model %v has no material slot %d", model, prim.material)
			}
		}
		gltfMesh.Primitives = append(gltfMesh.Primitives, primitive)
	}
	return gltfMesh, nil
}

// normals resolves the first layer normals for every triangle vertex.
// Unreadable normals are skipped rather than failing the whole mesh.
func (e *Exporter) normals(geometry fbx.GeometryMesh, tris *mesh.TriangleVertices) ([][3]float32, bool) {
	layer, ok := geometry.Layer(0)
	if !ok {
		return nil, false
	}
	element, ok, err := layer.Element(mesh.LayerElementNormal)
	if err != nil || !ok {
		return nil, false
	}
	normals, err := element.Normals()
	if err != nil {
		log.Printf("[gltf] Skipping normals of %v: %v", geometry, err)
		return nil, false
	}

	result := make([][3]float32, tris.Len())
	for tvi := range result {
		n, err := normals.Normal(tris, mesh.TriangleVertexIndex(tvi))
		if err != nil {
			log.Printf("[gltf] Skipping normals of %v: %v", geometry, err)
			return nil, false
		}
		if n.Len() > 0.5 {
			n = n.Normalize()
		}
		result[tvi] = utils.Vec3To32(n)
	}
	return result, true
}

// uvs resolves the first layer UV set. glTF puts the V origin at the top.
func (e *Exporter) uvs(geometry fbx.GeometryMesh, tris *mesh.TriangleVertices) ([][2]float32, bool) {
	layer, ok := geometry.Layer(0)
	if !ok {
		return nil, false
	}
	element, ok, err := layer.Element(mesh.LayerElementUV)
	if err != nil || !ok {
		return nil, false
	}
	uvs, err := element.UVs()
	if err != nil {
		log.Printf("[gltf] Skipping uvs of %v: %v", geometry, err)
		return nil, false
	}

	result := make([][2]float32, tris.Len())
	for tvi := range result {
		uv, err := uvs.UV(tris, mesh.TriangleVertexIndex(tvi))
		if err != nil {
			log.Printf("[gltf] Skipping uvs of %v: %v", geometry, err)
			return nil, false
		}
		result[tvi] = [2]float32{float32(uv[0]), float32(1 - uv[1])}
	}
	return result, true
}

// materialSlots returns the material index of every triangle vertex, or
// nil when the geometry has no usable material layer.
func (e *Exporter) materialSlots(geometry fbx.GeometryMesh, tris *mesh.TriangleVertices) []int {
	layer, ok := geometry.Layer(0)
	if !ok {
		return nil
	}
	element, ok, err := layer.Element(mesh.LayerElementMaterial)
	if err != nil || !ok {
		return nil
	}
	materials, err := element.Materials()
	if err != nil {
		log.Printf("[gltf] Skipping materials of %v: %v", geometry, err)
		return nil
	}

	result := make([]int, tris.Len())
	for tvi := range result {
		index, err := materials.MaterialIndex(tris, mesh.TriangleVertexIndex(tvi))
		if err != nil {
			log.Printf("[gltf] Skipping materials of %v: %v", geometry, err)
			return nil
		}
		result[tvi] = int(index)
	}
	return result
}

func (e *Exporter) exportMaterial(material fbx.Material) uint32 {
	if index, ok := e.materials[material.ID()]; ok {
		return index
	}

	diffuse, err := material.DiffuseColor()
	if err != nil {
		log.Printf("[gltf] Using default color for %v: %v", material, err)
		diffuse = mgl64.Vec3{0.8, 0.8, 0.8}
	}
	factor, err := material.DiffuseFactor()
	if err != nil {
		factor = 1
	}
	transparency, err := material.TransparencyFactor()
	if err != nil {
		transparency = 0
	}
	color := utils.NewColorFloatRGB(diffuse, factor, 1-transparency)

	name, _ := material.Name()
	gltfMaterial := &gltf.Material{
		Name:        e.names.UniqueName(name),
		DoubleSided: true,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: (*[4]float32)(&color),
		},
	}
	if color[3] < 1 {
		gltfMaterial.AlphaMode = gltf.AlphaBlend
	}

	index := uint32(len(e.Doc.Materials))
	e.Doc.Materials = append(e.Doc.Materials, gltfMaterial)
	e.materials[material.ID()] = index
	return index
}

func mat4To32(m mgl64.Mat4) [16]float32 {
	var result [16]float32
	for i, v := range m {
		result[i] = float32(v)
	}
	return result
}

func ExportBinary(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)
}
