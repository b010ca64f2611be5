// Package fbx is a typed object model over an FBX 7.x node tree.
//
// A Document indexes the Objects, Connections and Definitions sections once
// at load time; afterwards it is read-only and safe for concurrent use.
// Objects are addressed by id through lightweight handles, classified into
// typed variants with ObjectHandle.Typed.
package fbx

import (
	"io"
	"log"

	mfbx "github.com/mogaika/fbx"
	"github.com/pkg/errors"

	"github.com/mogaika/fbxdom/config"
	"github.com/mogaika/fbxdom/tree"
	"github.com/mogaika/fbxdom/utils"
)

type Document struct {
	tree        *tree.Tree
	opts        config.Options
	version     config.FBXVersion
	objects     *objectsCache
	connections *connectionsCache
	definitions *definitionsCache
}

// Load indexes t with default options.
func Load(t *tree.Tree) (*Document, error) {
	return LoadWithOptions(t, config.DefaultOptions())
}

// LoadWithOptions indexes t. Either every cache builds or no document is
// returned.
func LoadWithOptions(t *tree.Tree, opts config.Options) (*Document, error) {
	if t == nil {
		return nil, errors.New("nil tree")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	objects, err := newObjectsCache(t)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load objects")
	}
	connections, err := newConnectionsCache(t)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load connections")
	}

	d := &Document{
		tree:        t,
		opts:        opts,
		version:     headerVersion(t),
		objects:     objects,
		connections: connections,
		definitions: newDefinitionsCache(t),
	}
	if d.version != config.FBXVersionUnknown && !d.version.IsV7() {
		log.Printf("[fbx] Document version %v is not 7.x, objects may be misread", d.version)
	}
	return d, nil
}

// LoadFBX converts a github.com/mogaika/fbx node tree and loads it.
func LoadFBX(root *mfbx.Node, opts config.Options) (*Document, error) {
	cm, err := opts.Charmap()
	if err != nil {
		return nil, err
	}
	t, err := tree.FromFBX(root, cm)
	if err != nil {
		return nil, err
	}
	return LoadWithOptions(t, opts)
}

func headerVersion(t *tree.Tree) config.FBXVersion {
	header, ok := t.Root().FirstChildByName("FBXHeaderExtension")
	if !ok {
		return config.FBXVersionUnknown
	}
	node, ok := header.FirstChildByName("FBXVersion")
	if !ok {
		return config.FBXVersionUnknown
	}
	attr, ok := node.Attribute(0)
	if !ok {
		return config.FBXVersionUnknown
	}
	v, err := attr.ToInt64()
	if err != nil {
		return config.FBXVersionUnknown
	}
	return config.FBXVersion(v)
}

func (d *Document) Tree() *tree.Tree           { return d.tree }
func (d *Document) Options() config.Options    { return d.opts }
func (d *Document) Version() config.FBXVersion { return d.version }

func (d *Document) ObjectByNodeID(nid ObjectNodeID) (ObjectHandle, bool) {
	meta, ok := d.objects.metaFromNodeID(nid)
	if !ok {
		return ObjectHandle{}, false
	}
	return ObjectHandle{nodeID: nid, meta: meta, doc: d}, true
}

// ObjectByID returns false for unknown and virtual objects.
func (d *Document) ObjectByID(id ObjectID) (ObjectHandle, bool) {
	nid, ok := d.objects.nodeID(id)
	if !ok {
		return ObjectHandle{}, false
	}
	return d.ObjectByNodeID(nid)
}

// Objects returns every object in file order, scene documents last.
func (d *Document) Objects() []ObjectHandle {
	result := make([]ObjectHandle, 0, len(d.objects.order))
	for _, nid := range d.objects.order {
		result = append(result, ObjectHandle{nodeID: nid, meta: d.objects.meta[nid], doc: d})
	}
	return result
}

// DumpObjects writes a debug listing of every object.
func (d *Document) DumpObjects(w io.Writer) error {
	type objectInfo struct {
		ID       ObjectID
		Node     string
		Name     string
		Class    string
		Subclass string
	}
	infos := make([]objectInfo, 0, len(d.objects.order))
	for _, obj := range d.Objects() {
		name, _ := obj.Name()
		infos = append(infos, objectInfo{obj.ID(), obj.NodeName(), name, obj.Class(), obj.Subclass()})
	}
	_, err := io.WriteString(w, utils.SDump(infos))
	return err
}
