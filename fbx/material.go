package fbx

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Material is a Material object with an empty subclass.
type Material struct{ ObjectHandle }

func (Material) typedObject() {}

func (m Material) ParentModelMeshes() []ModelMesh {
	var result []ModelMesh
	for _, dest := range m.destinations() {
		if model, ok := dest.(ModelMesh); ok {
			result = append(result, model)
		}
	}
	return result
}

func (m Material) textureByLabel(label string) (Texture, bool) {
	for _, src := range m.labeledSources(label) {
		if texture, ok := src.(Texture); ok {
			return texture, true
		}
	}
	return Texture{}, false
}

func (m Material) DiffuseTexture() (Texture, bool) {
	return m.textureByLabel("DiffuseColor")
}

func (m Material) TransparentTexture() (Texture, bool) {
	return m.textureByLabel("TransparentColor")
}

// ShadingModel reads the ShadingModel child node, then the property.
func (m Material) ShadingModel() ShadingModel {
	if node, ok := m.Node().FirstChildByName("ShadingModel"); ok {
		if attr, ok := node.Attribute(0); ok {
			if s, err := attr.AsString(); err == nil {
				if sm, err := ParseShadingModel(s); err == nil {
					return sm
				}
			}
		}
	}
	if prop, ok := m.Properties(m.doc.opts.NativeType("Material")).Get("ShadingModel"); ok {
		if sm, err := prop.LoadShadingModel(); err == nil {
			return sm
		}
	}
	return ShadingModelUnknown
}

// MaterialProperties resolves material properties with surface defaults.
func (m Material) MaterialProperties() ObjectProperties {
	if m.ShadingModel() == ShadingModelLambert {
		return m.Properties("FbxSurfaceLambert")
	}
	return m.Properties(m.doc.opts.NativeType("Material"))
}

func (m Material) loadRGB(name string, def mgl64.Vec3) (mgl64.Vec3, error) {
	prop, ok := m.MaterialProperties().Get(name)
	if !ok {
		return def, nil
	}
	return prop.LoadRGB()
}

func (m Material) loadFactor(name string, def float64) (float64, error) {
	prop, ok := m.MaterialProperties().Get(name)
	if !ok {
		return def, nil
	}
	return prop.LoadFloat64()
}

func (m Material) DiffuseColor() (mgl64.Vec3, error) {
	return m.loadRGB("DiffuseColor", mgl64.Vec3{0.8, 0.8, 0.8})
}

func (m Material) DiffuseFactor() (float64, error) {
	return m.loadFactor("DiffuseFactor", 1)
}

func (m Material) AmbientColor() (mgl64.Vec3, error) {
	return m.loadRGB("AmbientColor", mgl64.Vec3{0.2, 0.2, 0.2})
}

func (m Material) EmissiveColor() (mgl64.Vec3, error) {
	return m.loadRGB("EmissiveColor", mgl64.Vec3{})
}

func (m Material) SpecularColor() (mgl64.Vec3, error) {
	return m.loadRGB("SpecularColor", mgl64.Vec3{0.2, 0.2, 0.2})
}

func (m Material) TransparencyFactor() (float64, error) {
	return m.loadFactor("TransparencyFactor", 0)
}

func (m Material) Shininess() (float64, error) {
	return m.loadFactor("Shininess", 20)
}
