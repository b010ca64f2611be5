package fbx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/fbxdom/fbx"
	"github.com/mogaika/fbxdom/tree"
)

func ids(conns []fbx.Connection, source bool) []fbx.ObjectID {
	var result []fbx.ObjectID
	for _, c := range conns {
		if source {
			result = append(result, c.Source())
		} else {
			result = append(result, c.Destination())
		}
	}
	return result
}

func TestConnectionsIndexedBothWays(t *testing.T) {
	doc := loadScene(t)

	all := doc.Connections()
	require.Len(t, all, 13)
	for i, c := range all {
		assert.Equal(t, i, c.Index())
	}

	// file order
	assert.Equal(t, []fbx.ObjectID{20, 22}, ids(doc.SourceObjects(21), true))
	assert.Equal(t, []fbx.ObjectID{21, 24}, ids(doc.SourceObjects(0), true))
	assert.Equal(t, []fbx.ObjectID{21, 61}, ids(doc.DestinationObjects(22), false))
	assert.Empty(t, doc.SourceObjects(12345))

	for _, c := range all {
		assert.Contains(t, doc.SourceObjects(c.Destination()), c)
		assert.Contains(t, doc.DestinationObjects(c.Source()), c)
	}
}

func TestConnectionEndpoints(t *testing.T) {
	doc := loadScene(t)
	c := doc.Connections()[7]

	assert.EqualValues(t, 40, c.Source())
	assert.EqualValues(t, 30, c.Destination())
	assert.Equal(t, fbx.ConnectedProperty, c.SourceType())
	assert.Equal(t, fbx.ConnectedObject, c.DestinationType())
	label, ok := c.Label()
	assert.True(t, ok)
	assert.Equal(t, "DiffuseColor", label)
	assert.Equal(t, `C7 Property(40) -> Object(30) "DiffuseColor"`, c.String())

	src, ok := c.SourceObject()
	require.True(t, ok)
	assert.Equal(t, "Texture", src.Class())

	root := doc.Connections()[0]
	_, ok = root.Label()
	assert.False(t, ok)
	_, ok = root.DestinationObject()
	assert.False(t, ok)
}

func TestConnectionsByLabel(t *testing.T) {
	doc := loadScene(t)

	diffuse := "DiffuseColor"
	conns := doc.SourceObjectsByLabel(30, &diffuse)
	assert.Equal(t, []fbx.ObjectID{40}, ids(conns, true))

	// nil selects unlabeled connections only
	assert.Empty(t, doc.SourceObjectsByLabel(30, nil))
	assert.Equal(t, []fbx.ObjectID{10, 30}, ids(doc.SourceObjectsByLabel(20, nil), true))

	unknown := "NormalMap"
	assert.Empty(t, doc.SourceObjectsByLabel(30, &unknown))
	assert.Empty(t, doc.DestinationObjectsByLabel(40, &unknown))
	assert.Equal(t, []fbx.ObjectID{30}, ids(doc.DestinationObjectsByLabel(40, &diffuse), false))
}

func TestDuplicateConnection(t *testing.T) {
	objects := n("Objects").AddNodes(
		n("Model", int64(1), "A\x00\x01Model", "Null"),
		n("Model", int64(2), "B\x00\x01Model", "Null"),
	)

	doc, err := fbx.Load(buildTree(t, objects, n("Connections").AddNodes(
		n("C", "OO", int64(1), int64(0)),
		n("C", "OO", int64(2), int64(1)),
		n("C", "OO", int64(2), int64(1)),
	)))
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, fbx.ErrDuplicateConnection)

	var dup *fbx.DuplicateConnectionError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 1, dup.PreviousIndex)
	assert.Equal(t, 2, dup.Index)
	assert.NotEqual(t, dup.PreviousNodeID, dup.NodeID)
	assert.EqualValues(t, 2, dup.Source)
	assert.EqualValues(t, 1, dup.Destination)
	assert.False(t, dup.Labeled)

	// same endpoints with different labels are distinct
	_, err = fbx.Load(buildTree(t, objects, n("Connections").AddNodes(
		n("C", "OP", int64(2), int64(1), "DiffuseColor"),
		n("C", "OP", int64(2), int64(1), "NormalMap"),
		n("C", "OO", int64(2), int64(1)),
	)))
	assert.NoError(t, err)

	_, err = fbx.Load(buildTree(t, objects, n("Connections").AddNodes(
		n("C", "OP", int64(2), int64(1), "DiffuseColor"),
		n("C", "OP", int64(2), int64(1), "DiffuseColor"),
	)))
	require.ErrorAs(t, err, &dup)
	assert.True(t, dup.Labeled)
	assert.Equal(t, "DiffuseColor", dup.Label)
}

func TestMalformedConnection(t *testing.T) {
	objects := n("Objects")
	for _, c := range []*tree.RawNode{
		n("C", "OO", int64(1)),
		n("C", "OO", int32(1), int64(2)),
		n("C", "XO", int64(1), int64(2)),
		n("C", "OO", int64(1), int64(2), int64(3)),
	} {
		_, err := fbx.Load(buildTree(t, objects, n("Connections").AddNodes(c)))
		assert.ErrorIs(t, err, fbx.ErrMalformedNode)
	}
}
