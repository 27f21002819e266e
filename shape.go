package scenery

import "math"

// Shape identifies one of the built-in primitive meshes.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapePrism
	ShapeCylinder
	ShapeCone
	ShapeSphere
)

func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapePrism:
		return "prism"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	case ShapeSphere:
		return "sphere"
	}
	return "unknown"
}

const roundShapeSlices = 36

// ShapeMeshes hands out the primitive meshes used by scene drawing. Each
// shape is built once and shared by every draw that uses it.
type ShapeMeshes struct {
	meshes map[Shape]*Mesh
}

func NewShapeMeshes() *ShapeMeshes {
	return &ShapeMeshes{meshes: make(map[Shape]*Mesh)}
}

// Load builds the given shapes ahead of time.
func (s *ShapeMeshes) Load(shapes ...Shape) {
	for _, shape := range shapes {
		s.Mesh(shape)
	}
}

// Mesh returns the shared mesh for a shape, building it on first use.
func (s *ShapeMeshes) Mesh(shape Shape) *Mesh {
	if m, ok := s.meshes[shape]; ok {
		return m
	}
	var m *Mesh
	switch shape {
	case ShapePlane:
		m = NewPlaneMesh()
	case ShapeBox:
		m = NewBoxMesh()
	case ShapePrism:
		m = NewPrismMesh()
	case ShapeCylinder:
		m = NewCylinderMesh(roundShapeSlices)
	case ShapeCone:
		m = NewConeMesh(roundShapeSlices)
	case ShapeSphere:
		m = NewSphereMesh(roundShapeSlices/2, roundShapeSlices)
	default:
		m = NewEmptyMesh()
	}
	s.meshes[shape] = m
	return m
}

// quad appends two triangles for the corners a, b, c, d given in
// counter-clockwise order as seen from outside the shape.
func quad(triangles []*Triangle, a, b, c, d Vector) []*Triangle {
	uvA := Vector{0, 0, 0}
	uvB := Vector{1, 0, 0}
	uvC := Vector{1, 1, 0}
	uvD := Vector{0, 1, 0}
	t1 := &Triangle{}
	t1.V1.Position, t1.V1.Texture = a, uvA
	t1.V2.Position, t1.V2.Texture = b, uvB
	t1.V3.Position, t1.V3.Texture = c, uvC
	t1.FixNormals()
	t2 := &Triangle{}
	t2.V1.Position, t2.V1.Texture = a, uvA
	t2.V2.Position, t2.V2.Texture = c, uvC
	t2.V3.Position, t2.V3.Texture = d, uvD
	t2.FixNormals()
	return append(triangles, t1, t2)
}

// NewPlaneMesh builds a 2x2 horizontal plane centered at the origin with
// its normal along +Y.
func NewPlaneMesh() *Mesh {
	var triangles []*Triangle
	triangles = quad(triangles,
		Vector{-1, 0, 1},
		Vector{1, 0, 1},
		Vector{1, 0, -1},
		Vector{-1, 0, -1})
	return NewTriangleMesh(triangles)
}

// NewBoxMesh builds a unit cube centered at the origin.
func NewBoxMesh() *Mesh {
	const h = 0.5
	var ts []*Triangle
	// +X
	ts = quad(ts, Vector{h, -h, h}, Vector{h, -h, -h}, Vector{h, h, -h}, Vector{h, h, h})
	// -X
	ts = quad(ts, Vector{-h, -h, -h}, Vector{-h, -h, h}, Vector{-h, h, h}, Vector{-h, h, -h})
	// +Y
	ts = quad(ts, Vector{-h, h, h}, Vector{h, h, h}, Vector{h, h, -h}, Vector{-h, h, -h})
	// -Y
	ts = quad(ts, Vector{-h, -h, -h}, Vector{h, -h, -h}, Vector{h, -h, h}, Vector{-h, -h, h})
	// +Z
	ts = quad(ts, Vector{-h, -h, h}, Vector{h, -h, h}, Vector{h, h, h}, Vector{-h, h, h})
	// -Z
	ts = quad(ts, Vector{h, -h, -h}, Vector{-h, -h, -h}, Vector{-h, h, -h}, Vector{h, h, -h})
	return NewTriangleMesh(ts)
}

// NewPrismMesh builds a unit triangular prism: an isoceles cross-section
// in the XY plane extruded along Z, centered at the origin.
func NewPrismMesh() *Mesh {
	const h = 0.5
	p0 := Vector{-h, -h, 0} // bottom left
	p1 := Vector{h, -h, 0}  // bottom right
	p2 := Vector{0, h, 0}   // apex
	front := Vector{0, 0, h}
	back := Vector{0, 0, -h}

	var ts []*Triangle
	// front and back caps
	f := NewTriangleForPoints(p0.Add(front), p1.Add(front), p2.Add(front))
	b := NewTriangleForPoints(p1.Add(back), p0.Add(back), p2.Add(back))
	f.V1.Texture = Vector{0, 0, 0}
	f.V2.Texture = Vector{1, 0, 0}
	f.V3.Texture = Vector{0.5, 1, 0}
	b.V1.Texture = Vector{0, 0, 0}
	b.V2.Texture = Vector{1, 0, 0}
	b.V3.Texture = Vector{0.5, 1, 0}
	ts = append(ts, f, b)
	// bottom
	ts = quad(ts, p0.Add(back), p1.Add(back), p1.Add(front), p0.Add(front))
	// right slope
	ts = quad(ts, p1.Add(front), p1.Add(back), p2.Add(back), p2.Add(front))
	// left slope
	ts = quad(ts, p2.Add(front), p2.Add(back), p0.Add(back), p0.Add(front))
	return NewTriangleMesh(ts)
}

// NewCylinderMesh builds a cylinder of radius 0.5 and height 1 centered
// at the origin, with n slices around the axis.
func NewCylinderMesh(n int) *Mesh {
	const r = 0.5
	var ts []*Triangle
	for i := 0; i < n; i++ {
		a0 := float64(i) / float64(n) * 2 * math.Pi
		a1 := float64(i+1) / float64(n) * 2 * math.Pi
		x0, z0 := r*math.Cos(a0), r*math.Sin(a0)
		x1, z1 := r*math.Cos(a1), r*math.Sin(a1)

		top0 := Vector{x0, r, z0}
		top1 := Vector{x1, r, z1}
		bot0 := Vector{x0, -r, z0}
		bot1 := Vector{x1, -r, z1}

		// side quad with smooth radial normals and wrapped U
		n0 := Vector{x0, 0, z0}.Normalize()
		n1 := Vector{x1, 0, z1}.Normalize()
		u0 := float64(i) / float64(n)
		u1 := float64(i+1) / float64(n)
		t1 := &Triangle{}
		t1.V1 = Vertex{Position: top0, Normal: n0, Texture: Vector{u0, 1, 0}}
		t1.V2 = Vertex{Position: top1, Normal: n1, Texture: Vector{u1, 1, 0}}
		t1.V3 = Vertex{Position: bot1, Normal: n1, Texture: Vector{u1, 0, 0}}
		t2 := &Triangle{}
		t2.V1 = Vertex{Position: top0, Normal: n0, Texture: Vector{u0, 1, 0}}
		t2.V2 = Vertex{Position: bot1, Normal: n1, Texture: Vector{u1, 0, 0}}
		t2.V3 = Vertex{Position: bot0, Normal: n0, Texture: Vector{u0, 0, 0}}
		ts = append(ts, t1, t2)

		// caps, fanned from the axis
		ts = append(ts, capTriangle(Vector{0, r, 0}, top1, top0))
		ts = append(ts, capTriangle(Vector{0, -r, 0}, bot0, bot1))
	}
	return NewTriangleMesh(ts)
}

// NewConeMesh builds a cone of base radius 0.5 and height 1 centered at
// the origin with its apex along +Y.
func NewConeMesh(n int) *Mesh {
	const r = 0.5
	apex := Vector{0, r, 0}
	var ts []*Triangle
	for i := 0; i < n; i++ {
		a0 := float64(i) / float64(n) * 2 * math.Pi
		a1 := float64(i+1) / float64(n) * 2 * math.Pi
		b0 := Vector{r * math.Cos(a0), -r, r * math.Sin(a0)}
		b1 := Vector{r * math.Cos(a1), -r, r * math.Sin(a1)}
		side := NewTriangleForPoints(apex, b1, b0)
		side.V1.Texture = Vector{(float64(i) + 0.5) / float64(n), 1, 0}
		side.V2.Texture = Vector{float64(i+1) / float64(n), 0, 0}
		side.V3.Texture = Vector{float64(i) / float64(n), 0, 0}
		ts = append(ts, side)
		ts = append(ts, capTriangle(Vector{0, -r, 0}, b0, b1))
	}
	return NewTriangleMesh(ts)
}

// NewSphereMesh builds a sphere of radius 0.5 centered at the origin from
// latitude stacks and longitude slices.
func NewSphereMesh(stacks, slices int) *Mesh {
	const r = 0.5
	point := func(stack, slice int) Vertex {
		lat := float64(stack) / float64(stacks) * math.Pi
		lon := float64(slice) / float64(slices) * 2 * math.Pi
		p := Vector{
			r * math.Sin(lat) * math.Cos(lon),
			r * math.Cos(lat),
			r * math.Sin(lat) * math.Sin(lon),
		}
		return Vertex{
			Position: p,
			Normal:   p.Normalize(),
			Texture: Vector{
				float64(slice) / float64(slices),
				1 - float64(stack)/float64(stacks),
				0,
			},
		}
	}
	var ts []*Triangle
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := point(i, j)
			b := point(i, j+1)
			c := point(i+1, j+1)
			d := point(i+1, j)
			if i > 0 {
				ts = append(ts, NewTriangle(a, b, c))
			}
			if i < stacks-1 {
				ts = append(ts, NewTriangle(a, c, d))
			}
		}
	}
	return NewTriangleMesh(ts)
}

// capTriangle builds a flat end-cap fan segment with radial texture
// coordinates. The points must wind counter-clockwise seen from outside.
func capTriangle(center, p1, p2 Vector) *Triangle {
	t := NewTriangleForPoints(center, p1, p2)
	t.V1.Texture = Vector{0.5, 0.5, 0}
	t.V2.Texture = Vector{0.5 + p1.X, 0.5 + p1.Z, 0}
	t.V3.Texture = Vector{0.5 + p2.X, 0.5 + p2.Z, 0}
	return t
}
