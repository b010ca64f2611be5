package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

type ControlPointIndex uint32

// ControlPoints are mesh positions stored as flat xyz triples.
type ControlPoints struct {
	data []float64
}

func NewControlPoints(data []float64) (ControlPoints, error) {
	if len(data)%3 != 0 {
		return ControlPoints{}, errors.Errorf("Expected xyz triples as control points but got %d values", len(data))
	}
	return ControlPoints{data: data}, nil
}

func (c ControlPoints) Len() int { return len(c.data) / 3 }

func (c ControlPoints) Get(i ControlPointIndex) (mgl64.Vec3, bool) {
	off := int(i) * 3
	if off+3 > len(c.data) {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{c.data[off], c.data[off+1], c.data[off+2]}, true
}

func (c ControlPoints) All() []mgl64.Vec3 {
	result := make([]mgl64.Vec3, c.Len())
	for i := range result {
		result[i] = mgl64.Vec3{c.data[i*3], c.data[i*3+1], c.data[i*3+2]}
	}
	return result
}
