package utils

import "github.com/go-gl/mathgl/mgl64"

// ColorFloat is an RGBA color with [0, 1] components.
type ColorFloat [4]float32

// NewColorFloatRGB scales rgb by factor and clamps every component.
func NewColorFloatRGB(rgb mgl64.Vec3, factor, alpha float64) ColorFloat {
	return ColorFloat{
		float32(mgl64.Clamp(rgb[0]*factor, 0, 1)),
		float32(mgl64.Clamp(rgb[1]*factor, 0, 1)),
		float32(mgl64.Clamp(rgb[2]*factor, 0, 1)),
		float32(mgl64.Clamp(alpha, 0, 1)),
	}
}
