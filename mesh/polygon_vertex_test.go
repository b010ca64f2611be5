package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/fbxdom/mesh"
)

func TestPolygonVertexDecode(t *testing.T) {
	for _, v := range []int32{0, 1, 2, 3, 100, 65535, math.MaxInt32} {
		pv := mesh.PolygonVertex(v)
		assert.False(t, pv.IsEnd(), "%d", v)
		assert.Equal(t, mesh.ControlPointIndex(v), pv.ControlPointIndex(), "%d", v)

		end := mesh.PolygonVertex(^v)
		assert.True(t, end.IsEnd(), "^%d", v)
		assert.Equal(t, mesh.ControlPointIndex(v), end.ControlPointIndex(), "^%d", v)
	}
}

func quadPlane(t *testing.T) mesh.ControlPoints {
	cp, err := mesh.NewControlPoints([]float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
	})
	require.NoError(t, err)
	return cp
}

func TestControlPoints(t *testing.T) {
	cp := quadPlane(t)
	assert.Equal(t, 4, cp.Len())
	p, ok := cp.Get(2)
	require.True(t, ok)
	assert.Equal(t, 1.0, p.X())
	assert.Equal(t, 1.0, p.Y())
	_, ok = cp.Get(4)
	assert.False(t, ok)
	assert.Len(t, cp.All(), 4)

	_, err := mesh.NewControlPoints([]float64{1, 2})
	assert.Error(t, err)
}

func TestPolygons(t *testing.T) {
	pvs := mesh.NewPolygonVertices(quadPlane(t), []int32{0, 1, ^2, 0, 2, ^3})
	polys, err := pvs.Polygons()
	require.NoError(t, err)
	assert.Equal(t, [][]mesh.PolygonVertexIndex{{0, 1, 2}, {3, 4, 5}}, polys)

	cpi, ok := pvs.ControlPointIndex(5)
	require.True(t, ok)
	assert.EqualValues(t, 3, cpi)
	_, ok = pvs.PolygonVertex(6)
	assert.False(t, ok)
}

func TestPolygonsIncomplete(t *testing.T) {
	pvs := mesh.NewPolygonVertices(quadPlane(t), []int32{0, 1, ^2, 0, 2})
	_, err := pvs.Polygons()
	assert.ErrorIs(t, err, mesh.ErrIncompletePolygon)

	_, err = pvs.Triangulate(mesh.FanTriangulator)
	assert.ErrorIs(t, err, mesh.ErrIncompletePolygon)
}
