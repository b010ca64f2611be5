package fbx

import (
	"fmt"

	"github.com/mogaika/fbxdom/tree"
	"github.com/mogaika/fbxdom/utils"
)

// ObjectHandle is an object id plus cached metadata and the document it
// belongs to. Handles are cheap to copy and compare.
type ObjectHandle struct {
	nodeID ObjectNodeID
	meta   *ObjectMeta
	doc    *Document
}

func (o ObjectHandle) ID() ObjectID         { return o.meta.id }
func (o ObjectHandle) NodeID() ObjectNodeID { return o.nodeID }
func (o ObjectHandle) Meta() *ObjectMeta    { return o.meta }
func (o ObjectHandle) Document() *Document  { return o.doc }
func (o ObjectHandle) Name() (string, bool) { return o.meta.Name() }
func (o ObjectHandle) Class() string        { return o.doc.objects.resolve(o.meta.class) }
func (o ObjectHandle) Subclass() string     { return o.doc.objects.resolve(o.meta.subclass) }
func (o ObjectHandle) IsValid() bool        { return o.doc != nil && o.meta != nil }
func (o ObjectHandle) Equal(other ObjectHandle) bool {
	return o.doc == other.doc && o.nodeID == other.nodeID
}

// Node returns the tree node of the object.
func (o ObjectHandle) Node() tree.Node {
	node, _ := o.doc.tree.Node(tree.NodeID(o.nodeID))
	return node
}

// NodeName is the object type name, e.g. "Model" or "Geometry".
func (o ObjectHandle) NodeName() string {
	return o.Node().Name()
}

// DirectProperties returns the Properties70 child of the object node.
func (o ObjectHandle) DirectProperties() (PropertiesHandle, bool) {
	node, ok := o.Node().FirstChildByName("Properties70")
	if !ok {
		return PropertiesHandle{}, false
	}
	return PropertiesHandle{node: node}, true
}

// DefaultProperties returns the template defaults for nativeType.
func (o ObjectHandle) DefaultProperties(nativeType string) (PropertiesHandle, bool) {
	id, ok := o.doc.definitions.propertiesNodeID(o.NodeName(), nativeType)
	if !ok {
		return PropertiesHandle{}, false
	}
	return o.doc.propertiesHandle(id), true
}

// Properties returns a resolver over the object's own properties and the
// defaults of nativeType (e.g. "FbxNode").
func (o ObjectHandle) Properties(nativeType string) ObjectProperties {
	props := ObjectProperties{nativeType: nativeType}
	if direct, ok := o.DirectProperties(); ok {
		props.direct = &direct
	}
	if defaults, ok := o.DefaultProperties(nativeType); ok {
		props.defaults = &defaults
	}
	return props
}

// DefaultNativeProperties is Properties with the native type configured
// for the object node name.
func (o ObjectHandle) DefaultNativeProperties() ObjectProperties {
	return o.Properties(o.doc.opts.NativeType(o.NodeName()))
}

func (o ObjectHandle) SourceObjects() []Connection {
	return o.doc.SourceObjects(o.ID())
}

func (o ObjectHandle) DestinationObjects() []Connection {
	return o.doc.DestinationObjects(o.ID())
}

func (o ObjectHandle) SourceObjectsByLabel(label *string) []Connection {
	return o.doc.SourceObjectsByLabel(o.ID(), label)
}

func (o ObjectHandle) DestinationObjectsByLabel(label *string) []Connection {
	return o.doc.DestinationObjectsByLabel(o.ID(), label)
}

// sources returns typed objects behind unlabeled incoming connections.
func (o ObjectHandle) sources() []TypedObject {
	return o.typedEnds(o.SourceObjectsByLabel(nil), Connection.SourceObject)
}

func (o ObjectHandle) destinations() []TypedObject {
	return o.typedEnds(o.DestinationObjectsByLabel(nil), Connection.DestinationObject)
}

func (o ObjectHandle) labeledSources(label string) []TypedObject {
	return o.typedEnds(o.SourceObjectsByLabel(&label), Connection.SourceObject)
}

func (o ObjectHandle) typedEnds(conns []Connection, end func(Connection) (ObjectHandle, bool)) []TypedObject {
	var result []TypedObject
	for _, conn := range conns {
		if obj, ok := end(conn); ok {
			result = append(result, obj.Typed())
		}
	}
	return result
}

func (o ObjectHandle) String() string {
	name, ok := o.Name()
	if !ok {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%s(%d %q class=%q subclass=%q)", o.NodeName(), o.ID(), name, o.Class(), o.Subclass())
}

// Dump renders the object's node subtree for debugging.
func (o ObjectHandle) Dump() string {
	return utils.SDump(dumpNode(o.Node()))
}

type dumpedNode struct {
	Name       string
	Attributes []string
	Nodes      []dumpedNode
}

func dumpNode(n tree.Node) dumpedNode {
	d := dumpedNode{Name: n.Name()}
	for _, a := range n.Attributes() {
		d.Attributes = append(d.Attributes, a.String())
	}
	for _, child := range n.Children() {
		d.Nodes = append(d.Nodes, dumpNode(child))
	}
	return d
}
