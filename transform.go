package scenery

import "github.com/go-gl/mathgl/mgl64"

// Placement positions a mesh in the scene: a non-uniform scale, per-axis
// rotations in degrees, and a translation.
type Placement struct {
	Scale     Vector
	RotationX float64
	RotationY float64
	RotationZ float64
	Position  Vector
}

// Matrix composes the model matrix as translation * rotZ * rotY * rotX
// * scale, so scale applies first and translation last.
func (p Placement) Matrix() Matrix {
	scale := p.Scale
	if scale == (Vector{}) {
		scale = Vector{1, 1, 1}
	}
	m := mgl64.Translate3D(p.Position.X, p.Position.Y, p.Position.Z)
	m = m.Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(p.RotationZ)))
	m = m.Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(p.RotationY)))
	m = m.Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(p.RotationX)))
	m = m.Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z))
	return MatrixFromMGL(m)
}

// MatrixFromMGL converts a column-major mgl64 matrix.
func MatrixFromMGL(m mgl64.Mat4) Matrix {
	return Matrix{
		m.At(0, 0), m.At(0, 1), m.At(0, 2), m.At(0, 3),
		m.At(1, 0), m.At(1, 1), m.At(1, 2), m.At(1, 3),
		m.At(2, 0), m.At(2, 1), m.At(2, 2), m.At(2, 3),
		m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3),
	}
}

// MGL returns the matrix in mgl64's column-major layout.
func (a Matrix) MGL() mgl64.Mat4 {
	return mgl64.Mat4{
		a.X00, a.X10, a.X20, a.X30,
		a.X01, a.X11, a.X21, a.X31,
		a.X02, a.X12, a.X22, a.X32,
		a.X03, a.X13, a.X23, a.X33,
	}
}
