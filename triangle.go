package scenery

// Vertex carries the attributes interpolated across a face. Output is
// filled in by the shader's vertex stage.
type Vertex struct {
	Position Vector
	Normal   Vector
	Texture  Vector
	Color    Color
	Output   VectorW
}

func (v Vertex) Outside() bool {
	return v.Output.Outside()
}

// InterpolateVertexes blends three vertexes with perspective-correct
// barycentric weights. b.W holds the normalization factor.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = interpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = interpolateVectors(v1.Normal, v2.Normal, v3.Normal, b).Normalize()
	v.Texture = interpolateVectors(v1.Texture, v2.Texture, v3.Texture, b)
	v.Color = interpolateColors(v1.Color, v2.Color, v3.Color, b)
	v.Output = interpolateVectorWs(v1.Output, v2.Output, v3.Output, b)
	return v
}

func interpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateColors(c1, c2, c3 Color, b VectorW) Color {
	n := Color{}
	n = n.Add(c1.MulScalar(b.X))
	n = n.Add(c2.MulScalar(b.Y))
	n = n.Add(c3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateVectorWs(v1, v2, v3, b VectorW) VectorW {
	n := VectorW{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

// Triangle is a single face of a mesh.
type Triangle struct {
	V1, V2, V3 Vertex
}

func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	return &Triangle{v1, v2, v3}
}

// NewTriangleForPoints builds a triangle from bare positions with a
// computed face normal.
func NewTriangleForPoints(p1, p2, p3 Vector) *Triangle {
	t := Triangle{}
	t.V1.Position = p1
	t.V2.Position = p2
	t.V3.Position = p3
	n := t.Normal()
	t.V1.Normal = n
	t.V2.Normal = n
	t.V3.Normal = n
	return &t
}

// Normal returns the geometric face normal.
func (t *Triangle) Normal() Vector {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// FixNormals fills in any zero vertex normals with the face normal.
func (t *Triangle) FixNormals() {
	n := t.Normal()
	zero := Vector{}
	if t.V1.Normal == zero {
		t.V1.Normal = n
	}
	if t.V2.Normal == zero {
		t.V2.Normal = n
	}
	if t.V3.Normal == zero {
		t.V3.Normal = n
	}
}

func (t *Triangle) SetColor(c Color) {
	t.V1.Color = c
	t.V2.Color = c
	t.V3.Color = c
}

func (t *Triangle) BoundingBox() Box {
	min := t.V1.Position.Min(t.V2.Position).Min(t.V3.Position)
	max := t.V1.Position.Max(t.V2.Position).Max(t.V3.Position)
	return Box{min, max}
}

func (t *Triangle) Transform(matrix Matrix) {
	t.V1.Position = matrix.MulPosition(t.V1.Position)
	t.V2.Position = matrix.MulPosition(t.V2.Position)
	t.V3.Position = matrix.MulPosition(t.V3.Position)
	n := matrix.Inverse().Transpose()
	t.V1.Normal = n.MulDirection(t.V1.Normal).Normalize()
	t.V2.Normal = n.MulDirection(t.V2.Normal).Normalize()
	t.V3.Normal = n.MulDirection(t.V3.Normal).Normalize()
}

// Line is a segment, drawn as a thin screen-space quad.
type Line struct {
	V1, V2 Vertex
}

func NewLine(v1, v2 Vertex) *Line {
	return &Line{v1, v2}
}

func NewLineForPoints(p1, p2 Vector) *Line {
	l := Line{}
	l.V1.Position = p1
	l.V2.Position = p2
	return &l
}

func (l *Line) BoundingBox() Box {
	min := l.V1.Position.Min(l.V2.Position)
	max := l.V1.Position.Max(l.V2.Position)
	return Box{min, max}
}

func (l *Line) Transform(matrix Matrix) {
	l.V1.Position = matrix.MulPosition(l.V1.Position)
	l.V2.Position = matrix.MulPosition(l.V2.Position)
}
