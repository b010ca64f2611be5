package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
)

// TriangleVertexIndex is a position in the flattened triangle list.
type TriangleVertexIndex int

// TriangleIndex returns the triangle containing the vertex.
func (i TriangleVertexIndex) TriangleIndex() TriangleIndex {
	return TriangleIndex(i / 3)
}

type TriangleIndex int

// TriangleVertices is the result of triangulation: every three
// consecutive triangle vertices form a triangle.
type TriangleVertices struct {
	polygonVertices PolygonVertices
	// polygon vertex of each triangle vertex
	triPvIndices []PolygonVertexIndex
	// source polygon of each triangle
	triPolyIndices []PolygonIndex
}

func (t *TriangleVertices) PolygonVertices() PolygonVertices { return t.polygonVertices }

// Len is the number of triangle vertices.
func (t *TriangleVertices) Len() int { return len(t.triPvIndices) }

func (t *TriangleVertices) NumTriangles() int { return len(t.triPolyIndices) }

func (t *TriangleVertices) PolygonVertexIndex(i TriangleVertexIndex) (PolygonVertexIndex, bool) {
	if i < 0 || int(i) >= len(t.triPvIndices) {
		return 0, false
	}
	return t.triPvIndices[i], true
}

func (t *TriangleVertices) PolygonVertex(i TriangleVertexIndex) (PolygonVertex, bool) {
	pvi, ok := t.PolygonVertexIndex(i)
	if !ok {
		return 0, false
	}
	return t.polygonVertices.PolygonVertex(pvi)
}

func (t *TriangleVertices) ControlPointIndex(i TriangleVertexIndex) (ControlPointIndex, bool) {
	pv, ok := t.PolygonVertex(i)
	if !ok {
		return 0, false
	}
	return pv.ControlPointIndex(), true
}

func (t *TriangleVertices) ControlPoint(i TriangleVertexIndex) (mgl64.Vec3, bool) {
	cpi, ok := t.ControlPointIndex(i)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return t.polygonVertices.controlPoints.Get(cpi)
}

// TrianglePolygonIndex returns the polygon a triangle was cut from.
func (t *TriangleVertices) TrianglePolygonIndex(i TriangleIndex) (PolygonIndex, bool) {
	if i < 0 || int(i) >= len(t.triPolyIndices) {
		return 0, false
	}
	return t.triPolyIndices[i], true
}

// PolygonIndex returns the polygon a triangle vertex belongs to.
func (t *TriangleVertices) PolygonIndex(i TriangleVertexIndex) (PolygonIndex, bool) {
	return t.TrianglePolygonIndex(i.TriangleIndex())
}
