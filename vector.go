package scenery

import "math"

// Vector is a point or direction in 3D space.
type Vector struct {
	X, Y, Z float64
}

func V(x, y, z float64) Vector {
	return Vector{x, y, z}
}

func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vector) Mul(b Vector) Vector {
	return Vector{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func (a Vector) MulScalar(s float64) Vector {
	return Vector{a.X * s, a.Y * s, a.Z * s}
}

func (a Vector) DivScalar(s float64) Vector {
	return Vector{a.X / s, a.Y / s, a.Z / s}
}

func (a Vector) Negate() Vector {
	return Vector{-a.X, -a.Y, -a.Z}
}

func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vector) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

func (a Vector) Normalize() Vector {
	d := a.Length()
	if d == 0 {
		return Vector{}
	}
	return Vector{a.X / d, a.Y / d, a.Z / d}
}

func (a Vector) Min(b Vector) Vector {
	return Vector{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

func (a Vector) Max(b Vector) Vector {
	return Vector{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

func (a Vector) Floor() Vector {
	return Vector{math.Floor(a.X), math.Floor(a.Y), math.Floor(a.Z)}
}

func (a Vector) Ceil() Vector {
	return Vector{math.Ceil(a.X), math.Ceil(a.Y), math.Ceil(a.Z)}
}

func (a Vector) Lerp(b Vector, t float64) Vector {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Reflect mirrors the vector about the normal n.
func (a Vector) Reflect(n Vector) Vector {
	return a.Sub(n.MulScalar(2 * a.Dot(n)))
}

// Perpendicular returns a 2D perpendicular in the XY plane, used for
// widening screen-space lines.
func (a Vector) Perpendicular() Vector {
	return Vector{-a.Y, a.X, 0}.Normalize()
}

// NearEqual reports whether the two vectors match within tolerance on
// every component.
func (a Vector) NearEqual(b Vector, tolerance float64) bool {
	return AlmostEqual(a.X, b.X, tolerance) &&
		AlmostEqual(a.Y, b.Y, tolerance) &&
		AlmostEqual(a.Z, b.Z, tolerance)
}

// VectorW is a homogeneous coordinate, produced by the vertex stage and
// consumed by clipping and perspective division.
type VectorW struct {
	X, Y, Z, W float64
}

func (a VectorW) Vector() Vector {
	return Vector{a.X, a.Y, a.Z}
}

// Outside reports whether the point lies outside the clip volume.
func (a VectorW) Outside() bool {
	x, y, z, w := a.X, a.Y, a.Z, a.W
	return x < -w || x > w || y < -w || y > w || z < -w || z > w || w <= 0
}

func (a VectorW) Add(b VectorW) VectorW {
	return VectorW{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a VectorW) Sub(b VectorW) VectorW {
	return VectorW{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (a VectorW) MulScalar(s float64) VectorW {
	return VectorW{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

func (a VectorW) DivScalar(s float64) VectorW {
	return VectorW{a.X / s, a.Y / s, a.Z / s, a.W / s}
}

func (a VectorW) Dot(b VectorW) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}
