package utils

import (
	"github.com/go-gl/mathgl/mgl64"
)

// EulerXYZToMat4 builds a rotation matrix from euler angles in degrees,
// applied in X, Y, Z order (FBX eEulerXYZ).
func EulerXYZToMat4(degrees mgl64.Vec3) mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(degrees.X()))
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(degrees.Y()))
	rz := mgl64.HomogRotate3DZ(mgl64.DegToRad(degrees.Z()))
	return rz.Mul4(ry).Mul4(rx)
}

// TRS composes translation, euler XYZ rotation in degrees and scaling.
func TRS(translation, rotation, scaling mgl64.Vec3) mgl64.Mat4 {
	t := mgl64.Translate3D(translation.X(), translation.Y(), translation.Z())
	s := mgl64.Scale3D(scaling.X(), scaling.Y(), scaling.Z())
	return t.Mul4(EulerXYZToMat4(rotation)).Mul4(s)
}

// Mat4FromSlice reads a column-major 4x4 matrix, as stored by FBX.
func Mat4FromSlice(v []float64) (m mgl64.Mat4, ok bool) {
	if len(v) != 16 {
		return m, false
	}
	copy(m[:], v)
	return m, true
}

func FloatArray32to64(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

func Vec3To32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
