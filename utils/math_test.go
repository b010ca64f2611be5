package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta(t *testing.T, want, got mgl64.Vec3, name string) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "%s: got %v want %v", name, got, want)
	}
}

func TestEulerXYZToMat4(t *testing.T) {
	for _, test := range []struct {
		name     string
		rotation mgl64.Vec3
		in, out  mgl64.Vec3
	}{
		{"identity", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}},
		{"z90", mgl64.Vec3{0, 0, 90}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{"x90", mgl64.Vec3{90, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		// x first: y axis goes to z, then z rotation leaves it
		{"x90z90", mgl64.Vec3{90, 0, 90}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
	} {
		got := mgl64.TransformCoordinate(test.in, EulerXYZToMat4(test.rotation))
		assertVec3InDelta(t, test.out, got, test.name)
	}
}

func TestTRS(t *testing.T) {
	m := TRS(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{0, 0, 90}, mgl64.Vec3{2, 2, 2})
	got := mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, m)
	assertVec3InDelta(t, mgl64.Vec3{10, 2, 0}, got, "trs")
}

func TestMat4FromSlice(t *testing.T) {
	_, ok := Mat4FromSlice(make([]float64, 15))
	assert.False(t, ok)

	v := make([]float64, 16)
	v[0], v[5], v[10], v[15] = 1, 1, 1, 1
	v[12] = 5
	m, ok := Mat4FromSlice(v)
	assert.True(t, ok)
	assert.Equal(t, 5.0, m.At(0, 3))
}
