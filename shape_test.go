package scenery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaneMesh(t *testing.T) {
	m := NewPlaneMesh()
	assert.Len(t, m.Triangles, 2)
	box := m.BoundingBox()
	assert.True(t, box.Min.NearEqual(Vector{-1, 0, -1}, eps))
	assert.True(t, box.Max.NearEqual(Vector{1, 0, 1}, eps))
	for _, tri := range m.Triangles {
		assert.True(t, tri.Normal().NearEqual(Vector{0, 1, 0}, eps))
	}
}

func TestBoxMesh(t *testing.T) {
	m := NewBoxMesh()
	assert.Len(t, m.Triangles, 12)
	box := m.BoundingBox()
	assert.True(t, box.Min.NearEqual(Vector{-0.5, -0.5, -0.5}, eps))
	assert.True(t, box.Max.NearEqual(Vector{0.5, 0.5, 0.5}, eps))

	// every face normal points away from the center
	for _, tri := range m.Triangles {
		center := tri.V1.Position.
			Add(tri.V2.Position).
			Add(tri.V3.Position).
			MulScalar(1.0 / 3)
		assert.Greater(t, tri.Normal().Dot(center), 0.0)
	}
}

func TestPrismMesh(t *testing.T) {
	m := NewPrismMesh()
	// 2 caps + 3 rectangular sides of 2 triangles each
	assert.Len(t, m.Triangles, 8)
	box := m.BoundingBox()
	assert.True(t, box.Min.NearEqual(Vector{-0.5, -0.5, -0.5}, eps))
	assert.True(t, box.Max.NearEqual(Vector{0.5, 0.5, 0.5}, eps))
	for _, tri := range m.Triangles {
		center := tri.V1.Position.
			Add(tri.V2.Position).
			Add(tri.V3.Position).
			MulScalar(1.0 / 3)
		assert.GreaterOrEqual(t, tri.Normal().Dot(center), 0.0)
	}
}

func TestCylinderMesh(t *testing.T) {
	const n = 12
	m := NewCylinderMesh(n)
	// per slice: 2 side triangles + 2 cap triangles
	assert.Len(t, m.Triangles, n*4)
	box := m.BoundingBox()
	assert.InDelta(t, -0.5, box.Min.Y, eps)
	assert.InDelta(t, 0.5, box.Max.Y, eps)
	assert.InDelta(t, 0.5, box.Max.X, 1e-6)
}

func TestConeMesh(t *testing.T) {
	const n = 12
	m := NewConeMesh(n)
	assert.Len(t, m.Triangles, n*2)
	box := m.BoundingBox()
	assert.InDelta(t, 0.5, box.Max.Y, eps)
	assert.InDelta(t, -0.5, box.Min.Y, eps)
}

func TestSphereMesh(t *testing.T) {
	m := NewSphereMesh(8, 16)
	box := m.BoundingBox()
	assert.InDelta(t, 0.5, box.Max.X, 1e-6)
	assert.InDelta(t, -0.5, box.Min.Y, 1e-6)
	for _, tri := range m.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			assert.InDelta(t, 1, v.Normal.Length(), eps)
			// outward normals on a sphere line up with positions
			assert.Greater(t, v.Normal.Dot(v.Position), 0.0)
		}
	}
}

func TestShapeMeshesCaches(t *testing.T) {
	shapes := NewShapeMeshes()
	a := shapes.Mesh(ShapeBox)
	b := shapes.Mesh(ShapeBox)
	assert.Same(t, a, b)

	shapes.Load(ShapePlane, ShapePrism)
	assert.NotNil(t, shapes.Mesh(ShapePlane))
	assert.Same(t, shapes.Mesh(ShapePrism), shapes.Mesh(ShapePrism))
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "box", ShapeBox.String())
	assert.Equal(t, "unknown", Shape(99).String())
}
