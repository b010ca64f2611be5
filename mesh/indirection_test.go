package mesh_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/fbxdom/mesh"
)

// twoTriangles is a mesh of two triangle polygons over four control points.
func twoTriangles(t *testing.T) *mesh.TriangleVertices {
	pvs := mesh.NewPolygonVertices(quadPlane(t), []int32{0, 1, ^2, 2, 3, ^0})
	tris, err := pvs.Triangulate(mesh.FanTriangulator)
	require.NoError(t, err)
	return tris
}

func TestResolveAllSame(t *testing.T) {
	tris := twoTriangles(t)
	for tvi := 0; tvi < tris.Len(); tvi++ {
		i, err := mesh.ResolveIndex(mesh.Direct(), mesh.MappingAllSame, tris, 1, mesh.TriangleVertexIndex(tvi))
		require.NoError(t, err)
		assert.Equal(t, 0, i)
	}

	_, err := mesh.ResolveIndex(mesh.Direct(), mesh.MappingAllSame, tris, 0, 0)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}

func TestResolveByPolygonIndexToDirect(t *testing.T) {
	tris := twoTriangles(t)
	ref := mesh.IndexToDirect([]int32{2, 0})

	for tvi, want := range map[mesh.TriangleVertexIndex]int{0: 2, 1: 2, 2: 2, 3: 0, 4: 0, 5: 0} {
		i, err := mesh.ResolveIndex(ref, mesh.MappingByPolygon, tris, 3, tvi)
		require.NoError(t, err)
		assert.Equal(t, want, i, "triangle vertex %d", tvi)
	}

	for _, indices := range [][]int32{{-1, 0}, {2, -1}} {
		_, err := mesh.ResolveIndex(mesh.IndexToDirect(indices), mesh.MappingByPolygon, tris, 3, 0)
		_, err2 := mesh.ResolveIndex(mesh.IndexToDirect(indices), mesh.MappingByPolygon, tris, 3, 3)
		if indices[0] < 0 {
			var negative *mesh.NegativeIndexError
			require.ErrorAs(t, err, &negative)
			assert.Equal(t, 0, negative.Slot)
			assert.NoError(t, err2)
		} else {
			assert.NoError(t, err)
			assert.ErrorIs(t, err2, mesh.ErrNegativeIndex)
		}
	}
}

func TestResolveMappingModes(t *testing.T) {
	tris := twoTriangles(t)
	// triangle vertex 5 closes the second polygon: polygon vertex 5,
	// control point 0, polygon 1
	for _, test := range []struct {
		mapping mesh.MappingMode
		want    int
	}{
		{mesh.MappingByControlPoint, 0},
		{mesh.MappingByPolygonVertex, 5},
		{mesh.MappingByPolygon, 1},
		{mesh.MappingAllSame, 0},
	} {
		i, err := mesh.ResolveIndex(mesh.Direct(), test.mapping, tris, 6, 5)
		require.NoError(t, err, test.mapping.String())
		assert.Equal(t, test.want, i, test.mapping.String())
	}
}

func TestResolvePolygonVertexNotTriangleVertex(t *testing.T) {
	pvs := mesh.NewPolygonVertices(quadPlane(t), []int32{0, 1, 2, ^3})
	tris, err := pvs.Triangulate(mesh.FanTriangulator)
	require.NoError(t, err)

	i, err := mesh.ResolveIndex(mesh.Direct(), mesh.MappingByPolygonVertex, tris, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestResolveErrors(t *testing.T) {
	tris := twoTriangles(t)

	_, err := mesh.ResolveIndex(mesh.Direct(), mesh.MappingByEdge, tris, 10, 0)
	assert.ErrorIs(t, err, mesh.ErrUnsupportedMapping)
	_, err = mesh.ResolveIndex(mesh.Direct(), mesh.MappingNone, tris, 10, 0)
	assert.ErrorIs(t, err, mesh.ErrUnsupportedMapping)

	_, err = mesh.ResolveIndex(mesh.Direct(), mesh.MappingByPolygonVertex, tris, 5, 5)
	var outOfRange *mesh.IndexOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 5, outOfRange.Index)
	assert.Equal(t, 5, outOfRange.Len)
	assert.Contains(t, err.Error(), "index=5, len=5")

	_, err = mesh.ResolveIndex(mesh.IndexToDirect([]int32{0}), mesh.MappingByPolygon, tris, 10, 3)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)

	_, err = mesh.ResolveIndex(mesh.Direct(), mesh.MappingAllSame, tris, 10, 6)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}

func TestParseModes(t *testing.T) {
	for s, want := range map[string]mesh.MappingMode{
		"ByControlPoint":  mesh.MappingByControlPoint,
		"ByVertex":        mesh.MappingByControlPoint,
		"ByVertice":       mesh.MappingByControlPoint,
		"ByPolygonVertex": mesh.MappingByPolygonVertex,
		"ByPolygon":       mesh.MappingByPolygon,
		"ByEdge":          mesh.MappingByEdge,
		"AllSame":         mesh.MappingAllSame,
	} {
		got, err := mesh.ParseMappingMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := mesh.ParseMappingMode("ByTheWay")
	assert.Error(t, err)

	for s, want := range map[string]mesh.ReferenceMode{
		"Direct":        mesh.ReferenceDirect,
		"IndexToDirect": mesh.ReferenceIndexToDirect,
		"Index":         mesh.ReferenceIndexToDirect,
	} {
		got, err := mesh.ParseReferenceMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err = mesh.ParseReferenceMode("Indirect")
	assert.Error(t, err)
}

// fanVertex is what a triangle vertex must resolve to, computed while the
// random polygons are generated.
type fanVertex struct {
	controlPoint  int
	polygonVertex int
	polygon       int
}

// randomFanMesh builds random polygons over numCP control points and
// returns the triangle vertices a fan triangulation must produce.
func randomFanMesh(t *testing.T, r *rand.Rand) (*mesh.TriangleVertices, []fanVertex, int, int, int) {
	numCP := 3 + r.Intn(20)
	cp, err := mesh.NewControlPoints(make([]float64, numCP*3))
	require.NoError(t, err)

	numPolys := 1 + r.Intn(8)
	var raw []int32
	var want []fanVertex
	for poly := 0; poly < numPolys; poly++ {
		start := len(raw)
		corners := make([]int, 3+r.Intn(5))
		for i := range corners {
			corners[i] = r.Intn(numCP)
			if i == len(corners)-1 {
				raw = append(raw, ^int32(corners[i]))
			} else {
				raw = append(raw, int32(corners[i]))
			}
		}
		for j := 1; j+1 < len(corners); j++ {
			for _, k := range []int{0, j, j + 1} {
				want = append(want, fanVertex{controlPoint: corners[k], polygonVertex: start + k, polygon: poly})
			}
		}
	}

	tris, err := mesh.NewPolygonVertices(cp, raw).Triangulate(mesh.FanTriangulator)
	require.NoError(t, err)
	return tris, want, numCP, len(raw), numPolys
}

func TestResolveRandomMeshes(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for iter := 0; iter < 500; iter++ {
		tris, want, numCP, numPV, numPolys := randomFanMesh(t, r)
		require.Equal(t, len(want), tris.Len())

		for _, test := range []struct {
			mapping mesh.MappingMode
			length  int
			mapped  func(v fanVertex) int
		}{
			{mesh.MappingAllSame, 1, func(fanVertex) int { return 0 }},
			{mesh.MappingByControlPoint, numCP, func(v fanVertex) int { return v.controlPoint }},
			{mesh.MappingByPolygonVertex, numPV, func(v fanVertex) int { return v.polygonVertex }},
			{mesh.MappingByPolygon, numPolys, func(v fanVertex) int { return v.polygon }},
		} {
			values := 1 + r.Intn(8)
			indices := make([]int32, test.length)
			for i := range indices {
				indices[i] = int32(r.Intn(values))
			}

			for tvi, v := range want {
				tv := mesh.TriangleVertexIndex(tvi)
				mapped := test.mapped(v)

				i, err := mesh.ResolveIndex(mesh.Direct(), test.mapping, tris, test.length, tv)
				require.NoError(t, err, "%v direct, triangle vertex %d", test.mapping, tvi)
				require.Equal(t, mapped, i, "%v direct, triangle vertex %d", test.mapping, tvi)

				_, err = mesh.ResolveIndex(mesh.Direct(), test.mapping, tris, mapped, tv)
				require.ErrorIs(t, err, mesh.ErrIndexOutOfRange, "%v direct, triangle vertex %d", test.mapping, tvi)

				i, err = mesh.ResolveIndex(mesh.IndexToDirect(indices), test.mapping, tris, values, tv)
				require.NoError(t, err, "%v index to direct, triangle vertex %d", test.mapping, tvi)
				require.Equal(t, int(indices[mapped]), i, "%v index to direct, triangle vertex %d", test.mapping, tvi)
			}
		}
	}
}
