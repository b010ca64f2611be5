package fbx

// VideoClip is a Video object with the Clip subclass.
type VideoClip struct{ ObjectHandle }

func (VideoClip) typedObject() {}

func (v VideoClip) ParentTextures() []Texture {
	var result []Texture
	for _, dest := range v.destinations() {
		if texture, ok := dest.(Texture); ok {
			result = append(result, texture)
		}
	}
	return result
}

func (v VideoClip) FileName() (string, bool) {
	return childString(v.ObjectHandle, "Filename")
}

func (v VideoClip) RelativeFileName() (string, bool) {
	return childString(v.ObjectHandle, "RelativeFilename")
}

// Content returns the embedded file data, if any.
func (v VideoClip) Content() ([]byte, bool) {
	node, ok := v.Node().FirstChildByName("Content")
	if !ok {
		return nil, false
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return nil, false
	}
	data, err := attr.AsBinary()
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}
