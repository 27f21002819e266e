package scenery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frontTriangle spans most of the viewport, facing the default camera.
func frontTriangle(z float64) *Triangle {
	t := NewTriangleForPoints(
		Vector{-0.9, -0.9, z},
		Vector{0.9, -0.9, z},
		Vector{0, 0.9, z})
	return t
}

func solidContext(size int, c Color) *Context {
	shader := NewSolidColorShader(Identity(), c)
	return NewContext(size, size, shader)
}

func TestRasterizeFillsPixels(t *testing.T) {
	dc := solidContext(64, Color{1, 0, 0, 1})
	dc.DrawMesh(NewTriangleMesh([]*Triangle{frontTriangle(0)}), dc.Shader, NewEmptyObject())

	center := dc.ColorBuffer.NRGBAAt(32, 40)
	assert.Equal(t, uint8(255), center.R)
	assert.Equal(t, uint8(255), center.A)

	corner := dc.ColorBuffer.NRGBAAt(0, 0)
	assert.Equal(t, uint8(0), corner.A)
}

func TestDepthTestKeepsNearFragment(t *testing.T) {
	red := NewSolidColorShader(Identity(), Color{1, 0, 0, 1})
	dc := NewContext(64, 64, red)
	near := NewTriangleMesh([]*Triangle{frontTriangle(-0.5)})
	far := NewTriangleMesh([]*Triangle{frontTriangle(0.5)})

	dc.DrawMesh(near, red, NewEmptyObject())

	blue := NewSolidColorShader(Identity(), Color{0, 0, 1, 1})
	dc.DrawMesh(far, blue, NewEmptyObject())

	center := dc.ColorBuffer.NRGBAAt(32, 40)
	assert.Equal(t, uint8(255), center.R, "far fragment overwrote near one")
	assert.Equal(t, uint8(0), center.B)
}

func TestBackFaceCulling(t *testing.T) {
	dc := solidContext(64, White)
	// reversed winding faces away from the camera
	tri := frontTriangle(0)
	tri.V1, tri.V2 = tri.V2, tri.V1
	dc.DrawMesh(NewTriangleMesh([]*Triangle{tri}), dc.Shader, NewEmptyObject())
	center := dc.ColorBuffer.NRGBAAt(32, 40)
	assert.Equal(t, uint8(0), center.A)

	dc.Cull = CullNone
	dc.DrawMesh(NewTriangleMesh([]*Triangle{tri}), dc.Shader, NewEmptyObject())
	center = dc.ColorBuffer.NRGBAAt(32, 40)
	assert.Equal(t, uint8(255), center.A)
}

func TestLineCapsExtendSymmetrically(t *testing.T) {
	dc := solidContext(64, White)
	line := NewLineForPoints(Vector{-0.5, 0, 0}, Vector{0.5, 0, 0})
	dc.DrawMesh(NewLineMesh([]*Line{line}), dc.Shader, NewEmptyObject())

	minX, maxX := 64, -1
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if dc.ColorBuffer.NRGBAAt(x, y).A != 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	require.Greater(t, maxX, minX)
	// both caps extend by the same half line width around the midline
	assert.Equal(t, 63, minX+maxX)
}

func TestClearColorBuffer(t *testing.T) {
	dc := solidContext(8, White)
	dc.ClearColor = HexColor("336699")
	dc.ClearColorBuffer()
	px := dc.ColorBuffer.NRGBAAt(3, 5)
	assert.Equal(t, uint8(0x33), px.R)
	assert.Equal(t, uint8(0x66), px.G)
	assert.Equal(t, uint8(0x99), px.B)
}

func TestDrawObjectAppliesModelMatrix(t *testing.T) {
	dc := solidContext(64, Color{0, 1, 0, 1})
	o := NewObjectFromMesh(NewTriangleMesh([]*Triangle{frontTriangle(0)}))
	// push the triangle off the right edge of the screen
	o.Matrix = Translate(Vector{5, 0, 0})
	dc.DrawObject(o)
	center := dc.ColorBuffer.NRGBAAt(32, 40)
	assert.Equal(t, uint8(0), center.A)

	o.Matrix = Identity()
	dc.DrawObject(o)
	center = dc.ColorBuffer.NRGBAAt(32, 40)
	assert.Equal(t, uint8(255), center.A)
}

func TestSceneFitContainsObjects(t *testing.T) {
	eye := Vector{0, 0, 5}
	center := Vector{0, 0, 0}
	up := Vector{0, 1, 0}
	shader := NewPhongShader(Identity(), eye)
	scene := NewScene(eye, center, up, 30, 32, 1, shader)
	scene.AddObject(NewObjectFromMesh(NewBoxMesh()))

	matrix := scene.FitObjectsToScene(1, 999)
	for _, corner := range scene.Objects[0].Mesh.BoundingBox().Corners() {
		out := matrix.MulPositionW(corner)
		assert.False(t, out.Outside(), "corner %+v outside after fit", corner)
	}
}

func TestSceneDrawToWriter(t *testing.T) {
	eye := Vector{0, 0, 3}
	shader := NewPhongShader(LookAt(eye, Vector{}, Vector{0, 1, 0}).Perspective(60, 1, 0.1, 100), eye)
	scene := NewScene(eye, Vector{}, Vector{0, 1, 0}, 60, 32, 1, shader)

	o := NewObjectFromMesh(NewBoxMesh())
	o.SetColor(HexColor("cc3344"))

	var buf discardWriter
	require.NoError(t, scene.DrawToWriter(false, &buf, []*Object{o}))
	assert.NotZero(t, buf.n)
	assert.Len(t, scene.Objects, 1)
}

type discardWriter struct{ n int }

func (w *discardWriter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}
