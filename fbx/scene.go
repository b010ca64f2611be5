package fbx

// Scene is a /Documents/Document node.
type Scene struct{ ObjectHandle }

// RootObjectID is the id of the virtual root object, 0 unless the
// RootNode child says otherwise.
func (s Scene) RootObjectID() ObjectID {
	node, ok := s.Node().FirstChildByName("RootNode")
	if !ok {
		return 0
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return 0
	}
	id, err := attr.ToInt64()
	if err != nil {
		return 0
	}
	return ObjectID(id)
}

// RootObjects returns objects attached to the root without a label.
func (s Scene) RootObjects() []ObjectHandle {
	var result []ObjectHandle
	for _, conn := range s.doc.SourceObjectsByLabel(s.RootObjectID(), nil) {
		if obj, ok := conn.SourceObject(); ok {
			result = append(result, obj)
		}
	}
	return result
}

// Models returns every model reachable from the root, parents first.
func (s Scene) Models() []Model {
	var result []Model
	visited := make(map[ObjectID]bool)
	var walk func(m Model)
	walk = func(m Model) {
		if visited[m.ID()] {
			return
		}
		visited[m.ID()] = true
		result = append(result, m)
		for _, child := range m.ChildModels() {
			walk(child)
		}
	}
	for _, obj := range s.RootObjects() {
		if model, ok := AsModel(obj.Typed()); ok {
			walk(model)
		}
	}
	return result
}

func (d *Document) Scenes() []Scene {
	result := make([]Scene, 0, len(d.objects.documentNodes))
	for _, nid := range d.objects.documentNodes {
		if obj, ok := d.ObjectByNodeID(nid); ok {
			result = append(result, Scene{obj})
		}
	}
	return result
}

