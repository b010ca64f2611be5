package fbx

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/mogaika/fbxdom/tree"
)

// PropertyHandle is a single P node:
// name, type name, label, flags, value...
type PropertyHandle struct {
	node tree.Node
}

const propertyValueOffset = 4

func (p PropertyHandle) Node() tree.Node { return p.node }

func (p PropertyHandle) header(i int, what string) (string, error) {
	attr, ok := p.node.Attribute(i)
	if !ok {
		return "", malformed(p.node, "property %s not found", what)
	}
	s, err := attr.AsString()
	if err != nil {
		return "", malformed(p.node, "property %s: %v", what, err)
	}
	return s, nil
}

func (p PropertyHandle) Name() (string, error)     { return p.header(0, "name") }
func (p PropertyHandle) TypeName() (string, error) { return p.header(1, "type name") }
func (p PropertyHandle) Label() (string, error)    { return p.header(2, "label") }
func (p PropertyHandle) Flags() (string, error)    { return p.header(3, "flags") }

// ValueAttributes returns the value part of the property.
func (p PropertyHandle) ValueAttributes() []tree.Attribute {
	attrs := p.node.Attributes()
	if len(attrs) <= propertyValueOffset {
		return nil
	}
	return attrs[propertyValueOffset:]
}

func (p PropertyHandle) loadError(expecting string) error {
	name, _ := p.Name()
	return malformed(p.node, "property %q: expected %s but got `%s`",
		name, expecting, tree.TypesOf(p.ValueAttributes()))
}

func (p PropertyHandle) single(expecting string) (tree.Attribute, error) {
	values := p.ValueAttributes()
	if len(values) != 1 {
		return tree.Attribute{}, p.loadError(expecting)
	}
	return values[0], nil
}

// LoadBool accepts a boolean or an integer, non-zero meaning true.
func (p PropertyHandle) LoadBool() (bool, error) {
	v, err := p.single("single boolean")
	if err != nil {
		return false, err
	}
	i, err := v.ToInt64()
	if err != nil {
		return false, p.loadError("single boolean")
	}
	return i != 0, nil
}

// LoadInt32 accepts bool, i16 and i32 values.
func (p PropertyHandle) LoadInt32() (int32, error) {
	v, err := p.single("single `i32`")
	if err != nil {
		return 0, err
	}
	switch v.Type() {
	case tree.TypeBool, tree.TypeI16, tree.TypeI32:
		i, _ := v.ToInt64()
		return int32(i), nil
	}
	return 0, p.loadError("single `i32`")
}

func (p PropertyHandle) LoadInt64() (int64, error) {
	v, err := p.single("single integer")
	if err != nil {
		return 0, err
	}
	i, err := v.ToInt64()
	if err != nil {
		return 0, p.loadError("single integer")
	}
	return i, nil
}

func (p PropertyHandle) LoadFloat64() (float64, error) {
	v, err := p.single("single float")
	if err != nil {
		return 0, err
	}
	f, err := v.ToFloat64()
	if err != nil {
		return 0, p.loadError("single float")
	}
	return f, nil
}

func (p PropertyHandle) LoadFloat32() (float32, error) {
	f, err := p.LoadFloat64()
	return float32(f), err
}

func (p PropertyHandle) LoadString() (string, error) {
	v, err := p.single("single string")
	if err != nil {
		return "", err
	}
	s, err := v.AsString()
	if err != nil {
		return "", p.loadError("single string")
	}
	return s, nil
}

func (p PropertyHandle) LoadBinary() ([]byte, error) {
	v, err := p.single("single binary")
	if err != nil {
		return nil, err
	}
	b, err := v.AsBinary()
	if err != nil {
		return nil, p.loadError("single binary")
	}
	return b, nil
}

// LoadFloats reads n numbers, stored either as n scalar values or as one
// float array of length n.
func (p PropertyHandle) LoadFloats(n int) ([]float64, error) {
	expecting := fmt.Sprintf("%d floats", n)
	values := p.ValueAttributes()
	if len(values) == 1 {
		if arr, err := values[0].ToArrF64(); err == nil {
			if len(arr) != n {
				return nil, p.loadError(expecting)
			}
			result := make([]float64, n)
			copy(result, arr)
			return result, nil
		}
	}
	if len(values) != n {
		return nil, p.loadError(expecting)
	}
	result := make([]float64, n)
	for i, v := range values {
		f, err := v.ToFloat64()
		if err != nil {
			return nil, p.loadError(expecting)
		}
		result[i] = f
	}
	return result, nil
}

func (p PropertyHandle) LoadVec3() (mgl64.Vec3, error) {
	var v mgl64.Vec3
	f, err := p.LoadFloats(3)
	if err != nil {
		return v, err
	}
	copy(v[:], f)
	return v, nil
}

func (p PropertyHandle) LoadVec4() (mgl64.Vec4, error) {
	var v mgl64.Vec4
	f, err := p.LoadFloats(4)
	if err != nil {
		return v, err
	}
	copy(v[:], f)
	return v, nil
}

func (p PropertyHandle) LoadRGB() (mgl64.Vec3, error) {
	return p.LoadVec3()
}

// LoadRGBA reads 4 components, or 3 with an opaque alpha.
func (p PropertyHandle) LoadRGBA() (mgl64.Vec4, error) {
	if f, err := p.LoadFloats(4); err == nil {
		return mgl64.Vec4{f[0], f[1], f[2], f[3]}, nil
	}
	rgb, err := p.LoadFloats(3)
	if err != nil {
		return mgl64.Vec4{}, p.loadError("3 or 4 floats")
	}
	return mgl64.Vec4{rgb[0], rgb[1], rgb[2], 1}, nil
}

func (p PropertyHandle) loadEnum() (int32, error) {
	typeName, err := p.TypeName()
	if err != nil {
		return 0, err
	}
	if typeName != "enum" {
		return 0, malformed(p.node, "expected \"enum\" property type but got %q", typeName)
	}
	return p.LoadInt32()
}

type ShadingModel int

const (
	ShadingModelUnknown ShadingModel = iota
	ShadingModelLambert
	ShadingModelPhong
)

func ParseShadingModel(s string) (ShadingModel, error) {
	switch {
	case strings.EqualFold(s, "Unknown"):
		return ShadingModelUnknown, nil
	case strings.EqualFold(s, "Lambert"):
		return ShadingModelLambert, nil
	case strings.EqualFold(s, "Phong"):
		return ShadingModelPhong, nil
	}
	return ShadingModelUnknown, errors.Errorf("Unexpected shading model %q", s)
}

func (m ShadingModel) String() string {
	switch m {
	case ShadingModelLambert:
		return "Lambert"
	case ShadingModelPhong:
		return "Phong"
	}
	return "Unknown"
}

func (p PropertyHandle) LoadShadingModel() (ShadingModel, error) {
	s, err := p.LoadString()
	if err != nil {
		return ShadingModelUnknown, err
	}
	return ParseShadingModel(s)
}

type WrapMode int

const (
	WrapModeRepeat WrapMode = iota
	WrapModeClamp
)

func (m WrapMode) String() string {
	if m == WrapModeClamp {
		return "Clamp"
	}
	return "Repeat"
}

func (p PropertyHandle) LoadWrapMode() (WrapMode, error) {
	v, err := p.loadEnum()
	if err != nil {
		return WrapModeRepeat, err
	}
	switch v {
	case 0:
		return WrapModeRepeat, nil
	case 1:
		return WrapModeClamp, nil
	}
	return WrapModeRepeat, malformed(p.node, "unexpected wrap mode %d", v)
}

type BlendMode int

const (
	BlendModeTranslucent BlendMode = iota
	BlendModeAdditive
	BlendModeModulate
	BlendModeModulate2
	BlendModeOver
)

func (p PropertyHandle) LoadBlendMode() (BlendMode, error) {
	v, err := p.loadEnum()
	if err != nil {
		return BlendModeTranslucent, err
	}
	if v < int32(BlendModeTranslucent) || v > int32(BlendModeOver) {
		return BlendModeTranslucent, malformed(p.node, "unexpected blend mode %d", v)
	}
	return BlendMode(v), nil
}
