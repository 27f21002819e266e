package scenery

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertMatrixEqual(t *testing.T, want mgl64.Mat4, got Matrix) {
	t.Helper()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.InDelta(t, want.At(row, col), got.MGL().At(row, col), eps,
				"element (%d,%d)", row, col)
		}
	}
}

func TestRotateMatchesMGL(t *testing.T) {
	angles := []float64{0, 0.3, math.Pi / 2, -1.1, math.Pi}
	axes := []Vector{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 2, 3}}
	for _, axis := range axes {
		for _, angle := range angles {
			got := Rotate(axis, angle)
			n := axis.Normalize()
			want := mgl64.HomogRotate3D(angle, mgl64.Vec3{n.X, n.Y, n.Z})
			assertMatrixEqual(t, want, got)
		}
	}
}

func TestTranslateScaleMatchMGL(t *testing.T) {
	assertMatrixEqual(t, mgl64.Translate3D(1, -2, 3), Translate(Vector{1, -2, 3}))
	assertMatrixEqual(t, mgl64.Scale3D(2, 3, 4), Scale(Vector{2, 3, 4}))
}

func TestLookAtMatchesMGL(t *testing.T) {
	eye := Vector{0, 7, 26}
	center := Vector{0, 2, 0}
	up := Vector{0, 1, 0}
	want := mgl64.LookAtV(
		mgl64.Vec3{eye.X, eye.Y, eye.Z},
		mgl64.Vec3{center.X, center.Y, center.Z},
		mgl64.Vec3{up.X, up.Y, up.Z})
	assertMatrixEqual(t, want, LookAt(eye, center, up))
}

func TestPerspectiveMatchesMGL(t *testing.T) {
	want := mgl64.Perspective(mgl64.DegToRad(50), 1.5, 0.1, 200)
	assertMatrixEqual(t, want, Perspective(50, 1.5, 0.1, 200))
}

func TestPlacementComposesTranslateRzRyRxScale(t *testing.T) {
	p := Placement{
		Scale:     Vector{2, 3, 4},
		RotationX: 30,
		RotationY: -45,
		RotationZ: 10,
		Position:  Vector{-0.8, 0.5, -1.5},
	}
	want := Translate(p.Position).
		Mul(Rotate(Vector{0, 0, 1}, Radians(p.RotationZ))).
		Mul(Rotate(Vector{0, 1, 0}, Radians(p.RotationY))).
		Mul(Rotate(Vector{1, 0, 0}, Radians(p.RotationX))).
		Mul(Scale(p.Scale))
	assertMatrixEqual(t, want.MGL(), p.Matrix())
}

func TestPlacementZeroScaleDefaultsToUnit(t *testing.T) {
	p := Placement{Position: Vector{1, 2, 3}}
	got := p.Matrix().MulPosition(Vector{1, 1, 1})
	assert.True(t, got.NearEqual(Vector{2, 3, 4}, eps))
}

func TestPlacementScaleFirstTranslateLast(t *testing.T) {
	p := Placement{
		Scale:     Vector{2, 2, 2},
		RotationY: 90,
		Position:  Vector{10, 0, 0},
	}
	// unit +X scales to (2,0,0), rotates 90 about Y to (0,0,-2), then
	// translates to (10,0,-2)
	got := p.Matrix().MulPosition(Vector{1, 0, 0})
	assert.True(t, got.NearEqual(Vector{10, 0, -2}, 1e-9), "got %+v", got)
}

func TestInverse(t *testing.T) {
	m := Translate(Vector{1, 2, 3}).
		Mul(Rotate(Vector{1, 1, 0}, 0.7)).
		Mul(Scale(Vector{2, 5, 0.5}))
	identity := m.Mul(m.Inverse())
	assertMatrixEqual(t, mgl64.Ident4(), identity)
}

func TestTransposeRoundTrip(t *testing.T) {
	m := LookAt(Vector{3, 4, 5}, Vector{}, Vector{0, 1, 0})
	assert.Equal(t, m, m.Transpose().Transpose())
}

func TestMulPositionW(t *testing.T) {
	m := Perspective(60, 1, 1, 100)
	out := m.MulPositionW(Vector{0, 0, -10})
	assert.InDelta(t, 10, out.W, eps)
	assert.False(t, out.Outside())
}

func TestScreenMatrixMapsNDCToPixels(t *testing.T) {
	m := Screen(100, 50)
	center := m.MulPosition(Vector{0, 0, 0})
	assert.True(t, center.NearEqual(Vector{50, 25, 0.5}, eps))
	topLeft := m.MulPosition(Vector{-1, 1, 0})
	assert.True(t, topLeft.NearEqual(Vector{0, 0, 0.5}, eps))
	bottomRight := m.MulPosition(Vector{1, -1, 0})
	assert.True(t, bottomRight.NearEqual(Vector{100, 50, 0.5}, eps))
}
