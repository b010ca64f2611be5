package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// PolygonVertex is a raw PolygonVertexIndex value. The last vertex of
// every polygon is stored as the bitwise complement of its control point
// index.
type PolygonVertex int32

func (v PolygonVertex) IsEnd() bool { return v < 0 }

func (v PolygonVertex) ControlPointIndex() ControlPointIndex {
	if v < 0 {
		return ControlPointIndex(^v)
	}
	return ControlPointIndex(v)
}

// PolygonVertexIndex is a position in the raw polygon vertex array.
type PolygonVertexIndex int

// PolygonIndex is the ordinal of a polygon in the mesh.
type PolygonIndex int

type PolygonVertices struct {
	controlPoints ControlPoints
	raw           []int32
}

func NewPolygonVertices(cp ControlPoints, raw []int32) PolygonVertices {
	return PolygonVertices{controlPoints: cp, raw: raw}
}

func (p PolygonVertices) ControlPoints() ControlPoints { return p.controlPoints }
func (p PolygonVertices) Raw() []int32                 { return p.raw }
func (p PolygonVertices) Len() int                     { return len(p.raw) }

func (p PolygonVertices) PolygonVertex(i PolygonVertexIndex) (PolygonVertex, bool) {
	if i < 0 || int(i) >= len(p.raw) {
		return 0, false
	}
	return PolygonVertex(p.raw[i]), true
}

func (p PolygonVertices) ControlPointIndex(i PolygonVertexIndex) (ControlPointIndex, bool) {
	pv, ok := p.PolygonVertex(i)
	if !ok {
		return 0, false
	}
	return pv.ControlPointIndex(), true
}

func (p PolygonVertices) ControlPoint(i PolygonVertexIndex) (mgl64.Vec3, bool) {
	cpi, ok := p.ControlPointIndex(i)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return p.controlPoints.Get(cpi)
}

// Polygons splits the raw array into runs, each ending with an end
// marker. A trailing run without one is an error.
func (p PolygonVertices) Polygons() ([][]PolygonVertexIndex, error) {
	var polygons [][]PolygonVertexIndex
	err := p.eachPolygon(func(poly []PolygonVertexIndex) error {
		polygons = append(polygons, append([]PolygonVertexIndex(nil), poly...))
		return nil
	})
	return polygons, err
}

func (p PolygonVertices) eachPolygon(f func(poly []PolygonVertexIndex) error) error {
	poly := make([]PolygonVertexIndex, 0, 4)
	for i, v := range p.raw {
		poly = append(poly, PolygonVertexIndex(i))
		if PolygonVertex(v).IsEnd() {
			if err := f(poly); err != nil {
				return err
			}
			poly = poly[:0]
		}
	}
	if len(poly) != 0 {
		return errors.Wrapf(ErrIncompletePolygon, "%d trailing polygon vertices without end marker", len(poly))
	}
	return nil
}
