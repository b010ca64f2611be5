package fbx_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/fbxdom/fbx"
)

func TestTemplateFallback(t *testing.T) {
	doc := loadScene(t)

	cube := object(t, doc, 20).Properties("FbxNode")
	prop, ok := cube.Get("Lcl Scaling")
	require.True(t, ok)
	v, err := prop.LoadVec3()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, v)

	// no own properties: the first template wins over the duplicate
	root := object(t, doc, 21).Properties("FbxNode")
	_, ok = root.DirectProperties()
	assert.False(t, ok)
	prop, ok = root.Get("Lcl Scaling")
	require.True(t, ok)
	v, err = prop.LoadVec3()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, v)

	_, ok = root.Get("Lcl Rotation")
	assert.False(t, ok)

	// wrong native type: no defaults
	other := object(t, doc, 21).Properties("FbxCamera")
	_, ok = other.Get("Lcl Scaling")
	assert.False(t, ok)
	_, ok = other.DefaultProperties()
	assert.False(t, ok)
}

func TestMalformedTemplateSkipped(t *testing.T) {
	doc := loadScene(t)
	texture := object(t, doc, 40)

	defaults, ok := texture.DefaultProperties("FbxFileTexture")
	require.True(t, ok)
	assert.Len(t, defaults.Properties(), 3)

	direct, ok := texture.DirectProperties()
	require.True(t, ok)
	names := []string{}
	for _, prop := range direct.Properties() {
		name, err := prop.Name()
		require.NoError(t, err)
		names = append(names, name)
	}
	assert.Equal(t, []string{"WrapModeV", "CurrentTextureBlendMode"}, names)
}

func loaderProps(t *testing.T) fbx.PropertiesHandle {
	doc, err := fbx.Load(buildTree(t,
		n("Objects").AddNodes(
			n("Model", int64(1), "Loader\x00\x01Model", "Null").AddNodes(
				n("Properties70").AddNodes(
					p("flag", "bool", "", "", int32(1)),
					p("visible", "bool", "", "", true),
					p("count", "int", "Integer", "", int32(7)),
					p("short", "short", "", "", int16(-3)),
					p("big", "ULongLong", "", "", int64(1)<<40),
					p("title", "KString", "", "", "hello"),
					p("shading", "KString", "", "", "lambert"),
					p("rgba", "ColorRGBA", "Color", "A", 1.0, 2.0, 3.0, 4.0),
					p("rgb", "ColorRGB", "Color", "A", 0.25, 0.5, 0.75),
					p("array", "Vector", "", "", []float64{1, 2, 3}),
					p("float", "float", "", "", float32(0.5)),
					p("wrap", "enum", "", "", int32(1)),
					p("blend", "enum", "", "", int32(4)),
					p("badwrap", "int", "", "", int32(1)),
					p("blob", "object", "", "", []byte{9, 8}),
					n("P", "short header"),
				),
			),
		),
		n("Connections"),
	))
	require.NoError(t, err)
	props, ok := object(t, doc, 1).DirectProperties()
	require.True(t, ok)
	return props
}

func get(t *testing.T, props fbx.PropertiesHandle, name string) fbx.PropertyHandle {
	prop, ok := props.Get(name)
	require.True(t, ok, name)
	return prop
}

func TestPropertyLoaders(t *testing.T) {
	props := loaderProps(t)

	b, err := get(t, props, "flag").LoadBool()
	require.NoError(t, err)
	assert.True(t, b)

	i, err := get(t, props, "count").LoadInt32()
	require.NoError(t, err)
	assert.EqualValues(t, 7, i)
	label, err := get(t, props, "count").Label()
	require.NoError(t, err)
	assert.Equal(t, "Integer", label)

	i, err = get(t, props, "visible").LoadInt32()
	require.NoError(t, err)
	assert.EqualValues(t, 1, i)

	i, err = get(t, props, "short").LoadInt32()
	require.NoError(t, err)
	assert.EqualValues(t, -3, i)
	_, err = get(t, props, "big").LoadInt32()
	assert.ErrorIs(t, err, fbx.ErrMalformedNode)
	i64, err := get(t, props, "big").LoadInt64()
	require.NoError(t, err)
	assert.EqualValues(t, int64(1)<<40, i64)

	s, err := get(t, props, "title").LoadString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	_, err = get(t, props, "title").LoadFloat64()
	assert.Error(t, err)

	sm, err := get(t, props, "shading").LoadShadingModel()
	require.NoError(t, err)
	assert.Equal(t, fbx.ShadingModelLambert, sm)

	rgba, err := get(t, props, "rgba").LoadRGBA()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec4{1, 2, 3, 4}, rgba)
	rgba, err = get(t, props, "rgb").LoadRGBA()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec4{0.25, 0.5, 0.75, 1}, rgba)
	_, err = get(t, props, "rgba").LoadVec3()
	assert.Error(t, err)

	v, err := get(t, props, "array").LoadVec3()
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, v)

	f, err := get(t, props, "float").LoadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f)

	wrap, err := get(t, props, "wrap").LoadWrapMode()
	require.NoError(t, err)
	assert.Equal(t, fbx.WrapModeClamp, wrap)
	_, err = get(t, props, "badwrap").LoadWrapMode()
	assert.Error(t, err)

	blend, err := get(t, props, "blend").LoadBlendMode()
	require.NoError(t, err)
	assert.Equal(t, fbx.BlendModeOver, blend)

	blob, err := get(t, props, "blob").LoadBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8}, blob)

	short := get(t, props, "short header")
	_, err = short.TypeName()
	assert.ErrorIs(t, err, fbx.ErrMalformedNode)
	assert.Empty(t, short.ValueAttributes())
	_, err = short.LoadBool()
	assert.Error(t, err)

	_, ok := props.Get("missing")
	assert.False(t, ok)
}

func TestParseShadingModel(t *testing.T) {
	for s, want := range map[string]fbx.ShadingModel{
		"Phong":   fbx.ShadingModelPhong,
		"phong":   fbx.ShadingModelPhong,
		"LAMBERT": fbx.ShadingModelLambert,
		"unknown": fbx.ShadingModelUnknown,
	} {
		got, err := fbx.ParseShadingModel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := fbx.ParseShadingModel("toon")
	assert.Error(t, err)
}
