package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

var (
	Up   = cp.Vector{X: 0, Y: 1}
	Down = cp.Vector{X: 0, Y: -1}
)

const normalizeEpsilon = 1e-12

// Normalize returns v scaled to unit length, or the zero vector when v has
// no usable length.
func Normalize(v cp.Vector) cp.Vector {
	l := v.Length()
	if l < normalizeEpsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// Reflect mirrors v across the plane with unit normal n.
func Reflect(v, n cp.Vector) cp.Vector {
	return v.Sub(n.Mult(2 * v.Dot(n)))
}

// SignedAngle returns the angle in degrees from a to b, positive counter-clockwise.
func SignedAngle(a, b cp.Vector) float64 {
	a = Normalize(a)
	b = Normalize(b)
	if a == (cp.Vector{}) || b == (cp.Vector{}) {
		return 0
	}
	return Rad2Deg(math.Atan2(a.X*b.Y-a.Y*b.X, a.Dot(b)))
}

// Angle returns the heading of v in degrees.
func Angle(v cp.Vector) float64 {
	if v == (cp.Vector{}) {
		return 0
	}
	return Rad2Deg(math.Atan2(v.Y, v.X))
}

// LerpVector interpolates from a to b. t=0 and t=1 return the endpoints
// exactly.
func LerpVector(a, b cp.Vector, t float64) cp.Vector {
	return a.Mult(1 - t).Add(b.Mult(t))
}
