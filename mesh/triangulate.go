package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Triangulator splits one polygon, given by its polygon vertex indices,
// appending triangles to out.
type Triangulator func(pvs PolygonVertices, poly []PolygonVertexIndex, out *[][3]PolygonVertexIndex) error

// Triangulate runs t over every polygon and flattens the result.
func (p PolygonVertices) Triangulate(t Triangulator) (*TriangleVertices, error) {
	result := &TriangleVertices{polygonVertices: p}
	var tris [][3]PolygonVertexIndex

	polyIndex := PolygonIndex(0)
	err := p.eachPolygon(func(poly []PolygonVertexIndex) error {
		tris = tris[:0]
		if err := t(p, poly, &tris); err != nil {
			return errors.Wrapf(err, "Failed to triangulate polygon %d", polyIndex)
		}
		for _, tri := range tris {
			for _, pvi := range tri {
				if pvi < 0 || int(pvi) >= len(p.raw) {
					return errors.Errorf("Triangulator produced polygon vertex %d out of range for polygon %d", pvi, polyIndex)
				}
			}
			result.triPvIndices = append(result.triPvIndices, tri[0], tri[1], tri[2])
			result.triPolyIndices = append(result.triPolyIndices, polyIndex)
		}
		polyIndex++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FanTriangulator fans every polygon out of its first vertex. Exact for
// convex polygons.
func FanTriangulator(_ PolygonVertices, poly []PolygonVertexIndex, out *[][3]PolygonVertexIndex) error {
	if len(poly) < 3 {
		return errors.Errorf("Not enough vertices in the polygon: %d", len(poly))
	}
	for i := 1; i+1 < len(poly); i++ {
		*out = append(*out, [3]PolygonVertexIndex{poly[0], poly[i], poly[i+1]})
	}
	return nil
}

const earClipEpsilon = 1e-12

// EarClipTriangulator handles concave polygons by ear clipping in the
// plane of the polygon's Newell normal. Degenerate polygons are fanned.
func EarClipTriangulator(pvs PolygonVertices, poly []PolygonVertexIndex, out *[][3]PolygonVertexIndex) error {
	if len(poly) <= 3 {
		return FanTriangulator(pvs, poly, out)
	}

	points := make([]mgl64.Vec3, len(poly))
	for i, pvi := range poly {
		p, ok := pvs.ControlPoint(pvi)
		if !ok {
			cpi, _ := pvs.ControlPointIndex(pvi)
			return &IndexOutOfRangeError{What: "control point", Index: int(cpi), Len: pvs.controlPoints.Len()}
		}
		points[i] = p
	}

	normal := newellNormal(points)
	if normal.Len() < earClipEpsilon {
		return FanTriangulator(pvs, poly, out)
	}
	flat := projectToPlane(points, normal)

	orientation := 1.0
	if signedArea(flat) < 0 {
		orientation = -1
	}

	remaining := make([]int, len(poly))
	for i := range remaining {
		remaining[i] = i
	}
	for len(remaining) > 3 {
		ear := findEar(flat, remaining, orientation)
		if ear < 0 {
			// self intersecting or collinear leftovers
			ear = 0
		}
		n := len(remaining)
		prev, cur, next := remaining[(ear+n-1)%n], remaining[ear], remaining[(ear+1)%n]
		*out = append(*out, [3]PolygonVertexIndex{poly[prev], poly[cur], poly[next]})
		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}
	*out = append(*out, [3]PolygonVertexIndex{poly[remaining[0]], poly[remaining[1]], poly[remaining[2]]})
	return nil
}

func newellNormal(points []mgl64.Vec3) mgl64.Vec3 {
	var n mgl64.Vec3
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		n[0] += (cur.Y() - next.Y()) * (cur.Z() + next.Z())
		n[1] += (cur.Z() - next.Z()) * (cur.X() + next.X())
		n[2] += (cur.X() - next.X()) * (cur.Y() + next.Y())
	}
	return n
}

// projectToPlane drops the dominant axis of the normal.
func projectToPlane(points []mgl64.Vec3, normal mgl64.Vec3) []mgl64.Vec2 {
	ax, ay, az := math.Abs(normal.X()), math.Abs(normal.Y()), math.Abs(normal.Z())
	u, v := 0, 1
	switch {
	case ax >= ay && ax >= az:
		u, v = 1, 2
	case ay >= ax && ay >= az:
		u, v = 2, 0
	}
	result := make([]mgl64.Vec2, len(points))
	for i, p := range points {
		result[i] = mgl64.Vec2{p[u], p[v]}
	}
	return result
}

func signedArea(points []mgl64.Vec2) float64 {
	area := 0.0
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		area += cur.X()*next.Y() - next.X()*cur.Y()
	}
	return area / 2
}

func cross2(o, a, b mgl64.Vec2) float64 {
	return (a.X()-o.X())*(b.Y()-o.Y()) - (a.Y()-o.Y())*(b.X()-o.X())
}

func findEar(flat []mgl64.Vec2, remaining []int, orientation float64) int {
	n := len(remaining)
	for i := 0; i < n; i++ {
		a, b, c := flat[remaining[(i+n-1)%n]], flat[remaining[i]], flat[remaining[(i+1)%n]]
		if cross2(a, b, c)*orientation <= earClipEpsilon {
			continue
		}
		ear := true
		for j := 0; j < n && ear; j++ {
			if j == i || j == (i+n-1)%n || j == (i+1)%n {
				continue
			}
			p := flat[remaining[j]]
			if p == a || p == b || p == c {
				continue
			}
			ear = !insideTriangle(p, a, b, c, orientation)
		}
		if ear {
			return i
		}
	}
	return -1
}

func insideTriangle(p, a, b, c mgl64.Vec2, orientation float64) bool {
	return cross2(a, b, p)*orientation >= 0 &&
		cross2(b, c, p)*orientation >= 0 &&
		cross2(c, a, p)*orientation >= 0
}
