package scenery

import (
	"github.com/fogleman/simplify"
)

// Mesh is a bag of triangles and lines sharing one model transform.
type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
	box       *Box
}

func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines, nil}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles, nil, nil}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{nil, lines, nil}
}

func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

// Add appends another mesh's faces and lines.
func (m *Mesh) Add(o *Mesh) {
	m.Triangles = append(m.Triangles, o.Triangles...)
	m.Lines = append(m.Lines, o.Lines...)
	m.dirty()
}

func (m *Mesh) dirty() {
	m.box = nil
}

// BoundingBox returns the cached axis-aligned bounds of the mesh.
func (m *Mesh) BoundingBox() Box {
	if m.box == nil {
		box := EmptyBox
		for _, t := range m.Triangles {
			box = box.Extend(t.BoundingBox())
		}
		for _, l := range m.Lines {
			box = box.Extend(l.BoundingBox())
		}
		m.box = &box
	}
	return *m.box
}

// Transform bakes a matrix into the mesh geometry.
func (m *Mesh) Transform(matrix Matrix) {
	for _, t := range m.Triangles {
		t.Transform(matrix)
	}
	for _, l := range m.Lines {
		l.Transform(matrix)
	}
	m.dirty()
}

func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

// SmoothNormals replaces vertex normals with the area-weighted average
// of the faces sharing each position.
func (m *Mesh) SmoothNormals() {
	lookup := make(map[Vector]Vector)
	for _, t := range m.Triangles {
		e1 := t.V2.Position.Sub(t.V1.Position)
		e2 := t.V3.Position.Sub(t.V1.Position)
		n := e1.Cross(e2) // length is proportional to face area
		lookup[t.V1.Position] = lookup[t.V1.Position].Add(n)
		lookup[t.V2.Position] = lookup[t.V2.Position].Add(n)
		lookup[t.V3.Position] = lookup[t.V3.Position].Add(n)
	}
	for _, t := range m.Triangles {
		t.V1.Normal = lookup[t.V1.Position].Normalize()
		t.V2.Normal = lookup[t.V2.Position].Normalize()
		t.V3.Normal = lookup[t.V3.Position].Normalize()
	}
}

// Simplify reduces the mesh to roughly factor of its current triangle
// count, for cheap level-of-detail variants of loaded models. Texture
// coordinates and vertex colors do not survive decimation, so the result
// only carries positions and recomputed normals.
func (m *Mesh) Simplify(factor float64) *Mesh {
	in := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		in[i] = simplify.NewTriangle(
			simplify.Vector{X: t.V1.Position.X, Y: t.V1.Position.Y, Z: t.V1.Position.Z},
			simplify.Vector{X: t.V2.Position.X, Y: t.V2.Position.Y, Z: t.V2.Position.Z},
			simplify.Vector{X: t.V3.Position.X, Y: t.V3.Position.Y, Z: t.V3.Position.Z})
	}
	decimated := simplify.NewMesh(in).Simplify(factor)
	out := make([]*Triangle, len(decimated.Triangles))
	for i, t := range decimated.Triangles {
		out[i] = NewTriangleForPoints(
			Vector{t.V1.X, t.V1.Y, t.V1.Z},
			Vector{t.V2.X, t.V2.Y, t.V2.Z},
			Vector{t.V3.X, t.V3.Y, t.V3.Z})
	}
	result := NewTriangleMesh(out)
	result.SmoothNormals()
	return result
}
