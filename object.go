package scenery

// Object pairs a mesh with its model transform and surface appearance.
// Objects are what the renderer consumes.
type Object struct {
	Mesh           *Mesh
	Texture        Texture
	Color          Color
	Material       Material
	Matrix         Matrix
	UVScale        Vector
	UseVertexColor bool
}

func NewEmptyObject() *Object {
	return &Object{Matrix: Identity(), Color: White, Material: DefaultMaterial(), UVScale: Vector{1, 1, 0}}
}

func NewObjectFromMesh(mesh *Mesh) *Object {
	o := NewEmptyObject()
	o.Mesh = mesh
	return o
}

func NewObjectFromFile(path string) (*Object, error) {
	mesh, err := LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	return NewObjectFromMesh(mesh), nil
}

// SetColor sets the object's flat color and stamps it onto the mesh
// vertex colors for shaders that read them.
func (o *Object) SetColor(c Color) {
	o.Color = c
	if o.Mesh != nil {
		o.Mesh.SetColor(c)
	}
}

// SampleTexture applies the object's UV scale before sampling. Returns
// Transparent when the object has no texture.
func (o *Object) SampleTexture(u, v float64) Color {
	if o.Texture == nil {
		return Transparent
	}
	return o.Texture.Sample(u*o.UVScale.X, v*o.UVScale.Y)
}
