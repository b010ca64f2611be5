package fbx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mogaika/fbxdom/fbx"
	"github.com/mogaika/fbxdom/tree"
)

func n(name string, attrs ...interface{}) *tree.RawNode {
	return tree.NewRawNode(name, attrs...)
}

func p(name, typ, label, flags string, values ...interface{}) *tree.RawNode {
	return n("P", append([]interface{}{name, typ, label, flags}, values...)...)
}

func identity() []float64 {
	return []float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// sceneNodes describes a skinned cube under a null, with a textured
// material and a camera.
func sceneNodes() []*tree.RawNode {
	return []*tree.RawNode{
		n("FBXHeaderExtension").AddNodes(
			n("FBXVersion", int32(7400)),
		),
		n("Documents").AddNodes(
			n("Count", int32(1)),
			n("Document", int64(100), "Scene", "Scene").AddNodes(
				n("RootNode", int64(0)),
			),
		),
		n("Definitions").AddNodes(
			n("ObjectType", "Model").AddNodes(
				n("PropertyTemplate", "FbxNode").AddNodes(
					n("Properties70").AddNodes(
						p("Lcl Translation", "Lcl Translation", "", "A", 0.0, 0.0, 0.0),
						p("Lcl Scaling", "Lcl Scaling", "", "A", 1.0, 1.0, 1.0),
					),
				),
				n("PropertyTemplate", "FbxNode").AddNodes(
					n("Properties70").AddNodes(
						p("Lcl Scaling", "Lcl Scaling", "", "A", 9.0, 9.0, 9.0),
					),
				),
			),
			n("ObjectType", "Material").AddNodes(
				n("PropertyTemplate", "FbxSurfacePhong").AddNodes(
					n("Properties70").AddNodes(
						p("DiffuseColor", "Color", "", "A", 0.5, 0.5, 0.5),
						p("Shininess", "double", "Number", "", 25.0),
					),
				),
			),
			n("ObjectType", "Texture").AddNodes(
				n("PropertyTemplate", int32(1)),
				n("PropertyTemplate", "FbxFileTexture").AddNodes(
					n("Properties70").AddNodes(
						p("WrapModeU", "enum", "", "", int32(0)),
						p("WrapModeV", "enum", "", "", int32(0)),
						p("Scaling", "Vector", "", "A", 1.0, 1.0, 1.0),
					),
				),
			),
		),
		n("Objects").AddNodes(
			n("Geometry", int64(10), "\x00\x01Geometry", "Mesh").AddNodes(
				n("Vertices", []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}),
				n("PolygonVertexIndex", []int32{0, 1, 2, ^3}),
				n("LayerElementMaterial", int32(0)).AddNodes(
					n("MappingInformationType", "AllSame"),
					n("ReferenceInformationType", "IndexToDirect"),
					n("Materials", []int32{0}),
				),
				n("Layer", int32(0)).AddNodes(
					n("LayerElement").AddNodes(
						n("Type", "LayerElementMaterial"),
						n("TypedIndex", int32(0)),
					),
				),
			),
			n("Model", int64(20), "Cube\x00\x01Model", "Mesh").AddNodes(
				n("Properties70").AddNodes(
					p("Lcl Translation", "Lcl Translation", "", "A", 1.0, 2.0, 3.0),
					p("Lcl Scaling", "Lcl Scaling", "", "A", 2.0, 2.0, 2.0),
				),
			),
			n("Model", int64(21), "Root\x00\x01Model", "Null"),
			n("Model", int64(22), "Hip\x00\x01Model", "LimbNode"),
			n("Model", int64(23), "Knee\x00\x01Model", "LimbNode"),
			n("Model", int64(24), "Camera\x00\x01Model", "Camera"),
			n("Material", int64(30), "Red\x00\x01Material", "").AddNodes(
				n("ShadingModel", "Phong"),
				n("Properties70").AddNodes(
					p("DiffuseColor", "Color", "", "A", 1.0, 0.0, 0.0),
				),
			),
			n("Texture", int64(40), "Bricks\x00\x01Texture", "").AddNodes(
				n("FileName", "C:/textures/bricks.png"),
				n("RelativeFilename", "textures/bricks.png"),
				n("Properties70").AddNodes(
					p("WrapModeV", "enum", "", "", int32(1)),
					p("CurrentTextureBlendMode", "enum", "", "", int32(2)),
				),
			),
			n("Video", int64(50), "Bricks\x00\x01Video", "Clip").AddNodes(
				n("Filename", "C:/textures/bricks.png"),
				n("Content", []byte{0x89, 'P', 'N', 'G'}),
			),
			n("Deformer", int64(60), "\x00\x01Deformer", "Skin"),
			n("Deformer", int64(61), "\x00\x01SubDeformer", "Cluster").AddNodes(
				n("Indexes", []int32{0, 1, 1}),
				n("Weights", []float64{0.5, 0.25, 0.25}),
				n("Transform", identity()),
			),
			n("NodeAttribute", int64(70), "\x00\x01NodeAttribute", "LimbNode"),
			n("Pose", int64(80), "BindPose", "BindPose"),
		),
		n("Connections").AddNodes(
			n("C", "OO", int64(21), int64(0)),
			n("C", "OO", int64(20), int64(21)),
			n("C", "OO", int64(22), int64(21)),
			n("C", "OO", int64(23), int64(22)),
			n("C", "OO", int64(24), int64(0)),
			n("C", "OO", int64(10), int64(20)),
			n("C", "OO", int64(30), int64(20)),
			n("C", "OP", int64(40), int64(30), "DiffuseColor"),
			n("C", "OO", int64(50), int64(40)),
			n("C", "OO", int64(60), int64(10)),
			n("C", "OO", int64(61), int64(60)),
			n("C", "OO", int64(22), int64(61)),
			n("C", "OO", int64(70), int64(22)),
		),
	}
}

func buildTree(t *testing.T, nodes ...*tree.RawNode) *tree.Tree {
	tr, err := tree.Build(n("").AddNodes(nodes...))
	require.NoError(t, err)
	return tr
}

func loadScene(t *testing.T) *fbx.Document {
	doc, err := fbx.Load(buildTree(t, sceneNodes()...))
	require.NoError(t, err)
	return doc
}

func object(t *testing.T, doc *fbx.Document, id fbx.ObjectID) fbx.ObjectHandle {
	obj, ok := doc.ObjectByID(id)
	require.True(t, ok, "object %d", id)
	return obj
}
