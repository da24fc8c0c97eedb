package vmath

import (
	"math"

	"github.com/lixenwraith/sky-pilot/constants"
)

// minProjectedDepth clamps z+focal so points at or behind the camera never
// divide by zero or flip sign
const minProjectedDepth = 1.0

// Projection is a world point mapped onto the drawing surface
type Projection struct {
	X, Y  float64
	Scale float64
}

// Project maps a world point onto a viewport of width w and height h
// Scale also sizes entity extents on screen (width * Scale)
func Project(x, y, z, w, h float64) Projection {
	scale := DepthScale(z)
	return Projection{
		X:     w/2 + x*scale,
		Y:     h/2 + y*scale,
		Scale: scale,
	}
}

// DepthScale returns the perspective scale factor at depth z
func DepthScale(z float64) float64 {
	return constants.FocalLength / math.Max(z+constants.FocalLength, minProjectedDepth)
}

// Unproject inverts Project against the plane at depth z
// Returns world x, y for screen point (sx, sy)
func Unproject(sx, sy, w, h, z float64) (float64, float64) {
	scale := DepthScale(z)
	return (sx - w/2) / scale, (sy - h/2) / scale
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
