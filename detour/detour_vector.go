package detour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vector is a 3D position in the query engine's axis convention.
// The engine permutes axes relative to most callers: X and Y span the
// horizontal plane, Z is vertical. Positions crossing the engine
// boundary must be built through FromXYZ or FromYZX so the reorder is
// explicit at the call site, never an implicit reinterpretation.
type Vector struct {
	X float32
	Y float32
	Z float32
}

// FromXYZ builds a Vector from caller-order components.
func FromXYZ(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// FromYZX builds a Vector from engine-order components.
func FromYZX(y, z, x float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(m mgl32.Vec3) Vector {
	return Vector{X: m.X(), Y: m.Y(), Z: m.Z()}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return fromMgl(v.mgl().Add(o.mgl()))
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return fromMgl(v.mgl().Sub(o.mgl()))
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float32) Vector {
	return fromMgl(v.mgl().Mul(s))
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float32 {
	return v.mgl().Dot(o.mgl())
}

// Len returns the euclidean length of v.
func (v Vector) Len() float32 {
	return v.mgl().Len()
}
