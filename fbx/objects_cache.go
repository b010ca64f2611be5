package fbx

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/mogaika/fbxdom/tree"
)

// ObjectID is the id of an object, unique within a document. An id may
// refer to an object without a node, like the scene root 0.
type ObjectID int64

// ObjectNodeID is the tree node id of a node known to be an object.
type ObjectNodeID tree.NodeID

const nameClassSeparator = "\x00\x01"

// ObjectMeta is decoded once per object while the document loads.
type ObjectMeta struct {
	id       ObjectID
	name     string
	hasName  bool
	class    symbol
	subclass symbol
}

func (m *ObjectMeta) ID() ObjectID { return m.id }

// Name returns the object name. Binary files store "name\x00\x01class";
// without the separator an object has no name.
func (m *ObjectMeta) Name() (string, bool) { return m.name, m.hasName }

// splitNameClass decodes the combined name/class attribute.
func splitNameClass(s string) (name string, hasName bool, class string) {
	if i := strings.Index(s, nameClassSeparator); i >= 0 {
		return s[:i], true, s[i+len(nameClassSeparator):]
	}
	return "", false, s
}

// knownClasses holds the symbols typed dispatch compares against.
type knownClasses struct {
	empty       symbol
	model       symbol
	geometry    symbol
	deformer    symbol
	subDeformer symbol
	material    symbol
	texture     symbol
	video       symbol
	mesh        symbol
	limbNode    symbol
	null        symbol
	skin        symbol
	cluster     symbol
	clip        symbol
}

func internKnownClasses(t *symbolTable) knownClasses {
	return knownClasses{
		empty:       t.intern(""),
		model:       t.intern("Model"),
		geometry:    t.intern("Geometry"),
		deformer:    t.intern("Deformer"),
		subDeformer: t.intern("SubDeformer"),
		material:    t.intern("Material"),
		texture:     t.intern("Texture"),
		video:       t.intern("Video"),
		mesh:        t.intern("Mesh"),
		limbNode:    t.intern("LimbNode"),
		null:        t.intern("Null"),
		skin:        t.intern("Skin"),
		cluster:     t.intern("Cluster"),
		clip:        t.intern("Clip"),
	}
}

type objectsCache struct {
	objectNodes   map[ObjectID]ObjectNodeID
	meta          map[ObjectNodeID]*ObjectMeta
	order         []ObjectNodeID
	documentNodes []ObjectNodeID
	symbols       *symbolTable
	known         knownClasses
}

func newObjectsCache(t *tree.Tree) (*objectsCache, error) {
	c := &objectsCache{
		objectNodes: make(map[ObjectID]ObjectNodeID),
		meta:        make(map[ObjectNodeID]*ObjectMeta),
		symbols:     newSymbolTable(),
	}
	c.known = internKnownClasses(c.symbols)

	objects, ok := t.Root().FirstChildByName("Objects")
	if !ok {
		return nil, missingNode("/Objects")
	}
	for _, node := range objects.Children() {
		if err := c.add(node); err != nil {
			return nil, err
		}
	}

	// Scene documents are objects too: their root node connects to them.
	if documents, ok := t.Root().FirstChildByName("Documents"); ok {
		for _, node := range documents.ChildrenByName("Document") {
			if err := c.add(node); err != nil {
				return nil, err
			}
			c.documentNodes = append(c.documentNodes, ObjectNodeID(node.ID()))
		}
	}
	return c, nil
}

func (c *objectsCache) add(node tree.Node) error {
	attrs := node.Attributes()
	if len(attrs) != 3 || attrs[0].Type() != tree.TypeI64 ||
		attrs[1].Type() != tree.TypeString || attrs[2].Type() != tree.TypeString {
		return malformed(node, "expected `(i64, string, string)` as object attributes but got `%s`", tree.TypesOf(attrs))
	}
	rawID, _ := attrs[0].AsI64()
	nameClass, _ := attrs[1].AsString()
	subclass, _ := attrs[2].AsString()

	id := ObjectID(rawID)
	nodeID := ObjectNodeID(node.ID())
	if prev, dup := c.objectNodes[id]; dup {
		return errors.Wrapf(ErrDuplicateObject, "object id %d: nodes %d and %d", id, prev, nodeID)
	}

	name, hasName, class := splitNameClass(nameClass)
	c.objectNodes[id] = nodeID
	c.meta[nodeID] = &ObjectMeta{
		id:       id,
		name:     name,
		hasName:  hasName,
		class:    c.symbols.intern(class),
		subclass: c.symbols.intern(subclass),
	}
	c.order = append(c.order, nodeID)
	return nil
}

func (c *objectsCache) nodeID(id ObjectID) (ObjectNodeID, bool) {
	nid, ok := c.objectNodes[id]
	return nid, ok
}

func (c *objectsCache) metaFromNodeID(nid ObjectNodeID) (*ObjectMeta, bool) {
	m, ok := c.meta[nid]
	return m, ok
}

func (c *objectsCache) resolve(sym symbol) string {
	return c.symbols.resolve(sym)
}
