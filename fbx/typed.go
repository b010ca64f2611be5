package fbx

// TypedObject is one of the known (class, subclass) variants:
// ModelMesh, ModelLimbNode, ModelNull, ModelUnknown, DeformerSkin,
// SubDeformerCluster, GeometryMesh, Material, Texture, VideoClip, Unknown.
type TypedObject interface {
	Object() ObjectHandle
	typedObject()
}

// Unknown is an object of an unrecognized class/subclass pair.
type Unknown struct{ ObjectHandle }

func (o ObjectHandle) Object() ObjectHandle { return o }

func (Unknown) typedObject() {}

// Typed classifies the object by its interned class and subclass.
func (o ObjectHandle) Typed() TypedObject {
	k := &o.doc.objects.known
	class, subclass := o.meta.class, o.meta.subclass
	switch class {
	case k.model:
		model := Model{o}
		switch subclass {
		case k.mesh:
			return ModelMesh{model}
		case k.limbNode:
			return ModelLimbNode{model}
		case k.null:
			return ModelNull{model}
		}
		return ModelUnknown{model}
	case k.geometry:
		if subclass == k.mesh {
			return GeometryMesh{o}
		}
	case k.deformer:
		if subclass == k.skin {
			return DeformerSkin{o}
		}
	case k.subDeformer:
		if subclass == k.cluster {
			return SubDeformerCluster{o}
		}
	case k.material:
		if subclass == k.empty {
			return Material{o}
		}
	case k.texture:
		if subclass == k.empty {
			return Texture{o}
		}
	case k.video:
		if subclass == k.clip {
			return VideoClip{o}
		}
	}
	return Unknown{o}
}

// AsModel returns the model behind any Model variant.
func AsModel(t TypedObject) (Model, bool) {
	switch v := t.(type) {
	case ModelMesh:
		return v.Model, true
	case ModelLimbNode:
		return v.Model, true
	case ModelNull:
		return v.Model, true
	case ModelUnknown:
		return v.Model, true
	}
	return Model{}, false
}
