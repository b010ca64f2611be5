package fbx

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Texture is a Texture object with an empty subclass.
type Texture struct{ ObjectHandle }

func (Texture) typedObject() {}

func (t Texture) ChildVideoClip() (VideoClip, bool) {
	for _, src := range t.sources() {
		if clip, ok := src.(VideoClip); ok {
			return clip, true
		}
	}
	return VideoClip{}, false
}

// ParentMaterials returns materials using the texture through any label.
func (t Texture) ParentMaterials() []Material {
	var result []Material
	seen := make(map[ObjectID]bool)
	for _, conn := range t.DestinationObjects() {
		obj, ok := conn.DestinationObject()
		if !ok || seen[obj.ID()] {
			continue
		}
		if material, ok := obj.Typed().(Material); ok {
			seen[obj.ID()] = true
			result = append(result, material)
		}
	}
	return result
}

func (t Texture) FileName() (string, bool) {
	return childString(t.ObjectHandle, "FileName")
}

func (t Texture) RelativeFileName() (string, bool) {
	return childString(t.ObjectHandle, "RelativeFilename")
}

func (t Texture) textureProperties() ObjectProperties {
	return t.Properties(t.doc.opts.NativeType("Texture"))
}

func (t Texture) wrapMode(name string) (WrapMode, error) {
	prop, ok := t.textureProperties().Get(name)
	if !ok {
		return WrapModeRepeat, nil
	}
	return prop.LoadWrapMode()
}

func (t Texture) WrapModeU() (WrapMode, error) { return t.wrapMode("WrapModeU") }
func (t Texture) WrapModeV() (WrapMode, error) { return t.wrapMode("WrapModeV") }

func (t Texture) loadBool(name string) (bool, error) {
	prop, ok := t.textureProperties().Get(name)
	if !ok {
		return false, nil
	}
	return prop.LoadBool()
}

func (t Texture) UVSwap() (bool, error)           { return t.loadBool("UVSwap") }
func (t Texture) PremultiplyAlpha() (bool, error) { return t.loadBool("PremultiplyAlpha") }

func (t Texture) BlendMode() (BlendMode, error) {
	prop, ok := t.textureProperties().Get("CurrentTextureBlendMode")
	if !ok {
		return BlendModeTranslucent, nil
	}
	return prop.LoadBlendMode()
}

func (t Texture) loadVec3(name string, def mgl64.Vec3) (mgl64.Vec3, error) {
	prop, ok := t.textureProperties().Get(name)
	if !ok {
		return def, nil
	}
	return prop.LoadVec3()
}

func (t Texture) UVTranslation() (mgl64.Vec3, error) {
	return t.loadVec3("Translation", mgl64.Vec3{})
}

func (t Texture) UVScaling() (mgl64.Vec3, error) {
	return t.loadVec3("Scaling", mgl64.Vec3{1, 1, 1})
}

func childString(o ObjectHandle, name string) (string, bool) {
	node, ok := o.Node().FirstChildByName(name)
	if !ok {
		return "", false
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return "", false
	}
	s, err := attr.AsString()
	return s, err == nil
}
