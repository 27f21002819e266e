package scenery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func litVertex() Vertex {
	return Vertex{
		Position: Vector{0, 0, 0},
		Normal:   Vector{0, 1, 0},
		Texture:  Vector{0.25, 0.75, 0},
	}
}

func TestPhongUnlitReturnsBaseColor(t *testing.T) {
	s := NewPhongShader(Identity(), Vector{0, 0, 5})
	s.UseLighting = false
	o := NewEmptyObject()
	o.Color = Color{0.2, 0.4, 0.6, 1}
	got := s.Fragment(litVertex(), o)
	assert.Equal(t, o.Color, got)
}

func TestPhongUsesVertexColor(t *testing.T) {
	s := NewPhongShader(Identity(), Vector{0, 0, 5})
	o := NewEmptyObject()
	o.UseVertexColor = true
	v := litVertex()
	v.Color = Color{1, 0, 1, 1}
	assert.Equal(t, v.Color, s.Fragment(v, o))
}

func TestPhongSamplesTexture(t *testing.T) {
	s := NewPhongShader(Identity(), Vector{0, 0, 5})
	s.UseLighting = false
	o := NewEmptyObject()
	o.Texture = NewImageTexture(checker())
	// (0.25, 0.75) lands on the red texel
	got := s.Fragment(litVertex(), o)
	assert.InDelta(t, 1, got.R, 1e-2)
	assert.InDelta(t, 0, got.G, 1e-2)
}

func TestPhongLightingAddsDiffuse(t *testing.T) {
	s := NewPhongShader(Identity(), Vector{0, 5, 5})
	s.GlobalAmbient = Transparent // isolate the diffuse term
	s.Lights = []Light{{
		Position:     Vector{0, 10, 0},
		DiffuseColor: White,
	}}
	o := NewEmptyObject()
	o.Color = White

	// full diffuse: white light scaled by the default material's 0.8
	lit := s.Fragment(litVertex(), o)
	assert.InDelta(t, 0.8, lit.R, 1e-9)

	// a light below the surface contributes nothing
	s.Lights[0].Position = Vector{0, -10, 0}
	dark := s.Fragment(litVertex(), o)
	assert.InDelta(t, 0, dark.R, 1e-9)
	// alpha is preserved either way
	assert.InDelta(t, 1, dark.A, 1e-9)
}

func TestPhongOutline(t *testing.T) {
	s := NewPhongShader(Identity(), Vector{0, 0, 5})
	s.EnableOutline = true
	s.OutlineFactor = 0.1
	s.OutlineColor = HexColor("112233")
	o := NewEmptyObject()

	// grazing normal, nearly perpendicular to the view direction
	v := litVertex()
	v.Normal = Vector{1, 0, 0}
	assert.Equal(t, s.OutlineColor, s.Fragment(v, o))

	// facing normal shades normally
	v.Normal = Vector{0, 0, 1}
	assert.NotEqual(t, s.OutlineColor, s.Fragment(v, o))
}

func TestPhongTransformedLeavesOriginal(t *testing.T) {
	s := NewPhongShader(Identity(), Vector{})
	moved := s.Transformed(Translate(Vector{1, 2, 3}))
	assert.Equal(t, Identity(), s.Matrix)
	assert.NotEqual(t, s.Matrix, moved.(*PhongShader).Matrix)
}

func TestToonShaderBands(t *testing.T) {
	s := NewToonShader(Identity(), Vector{0, 1, 0})
	o := NewEmptyObject()
	o.Color = White

	v := litVertex()
	v.Normal = Vector{0, 1, 0} // intensity 1.0
	bright := s.Fragment(v, o)
	assert.Equal(t, White.Mul(s.ColorSteps[0.8]), bright)

	v.Normal = Vector{0, -1, 0} // facing away
	dark := s.Fragment(v, o)
	assert.Equal(t, White.Mul(s.ColorSteps[0.0]), dark)
}

func TestSolidColorShader(t *testing.T) {
	c := HexColor("ff00ff")
	s := NewSolidColorShader(Identity(), c)
	assert.Equal(t, c, s.Fragment(litVertex(), NewEmptyObject()))

	// thickness extrudes along the vertex normal before projecting
	s.Thickness = 0.5
	v := litVertex()
	v.Normal = Vector{0, 1, 0}
	out := s.Vertex(v)
	assert.InDelta(t, 0.5, out.Output.Y, 1e-9)
}
