package scenery

import "math"

// Shader transforms vertexes into clip space and shades fragments.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// ModelShader is implemented by shaders whose matrix combines the view
// projection with a per-object model transform. Transformed returns a
// copy with the model matrix folded in; the receiver is not modified.
type ModelShader interface {
	Shader
	Transformed(model Matrix) Shader
}

// Light is one entry of the fixed light array: a point light with
// separate diffuse and specular colors.
type Light struct {
	Position          Vector
	DiffuseColor      Color
	SpecularColor     Color
	FocalStrength     float64
	SpecularIntensity float64
}

// PhongShader lights fragments with a global ambient term plus the
// scene's point lights, modulated by each object's material preset and
// texture or flat color.
type PhongShader struct {
	Matrix         Matrix
	CameraPosition Vector
	GlobalAmbient  Color
	Lights         []Light
	UseLighting    bool
	EnableOutline  bool
	OutlineColor   Color
	OutlineFactor  float64
}

func NewPhongShader(matrix Matrix, cameraPosition Vector) *PhongShader {
	return &PhongShader{
		Matrix:         matrix,
		CameraPosition: cameraPosition,
		GlobalAmbient:  Gray(0.2),
		UseLighting:    true,
		OutlineColor:   Black,
		OutlineFactor:  0,
	}
}

func (s *PhongShader) Transformed(model Matrix) Shader {
	c := *s
	c.Matrix = s.Matrix.Mul(model)
	return &c
}

func (s *PhongShader) Vertex(v Vertex) Vertex {
	v.Output = s.Matrix.MulPositionW(v.Position)
	normalMatrix := s.Matrix.Inverse().Transpose()
	v.Normal = normalMatrix.MulDirection(v.Normal).Normalize()
	return v
}

func (s *PhongShader) Fragment(v Vertex, fromObject *Object) Color {
	if s.EnableOutline && s.OutlineFactor > 0 {
		viewDirection := s.CameraPosition.Sub(v.Position).Normalize()
		if math.Abs(viewDirection.Dot(v.Normal)) < s.OutlineFactor {
			return s.OutlineColor
		}
	}
	if fromObject.UseVertexColor {
		return v.Color
	}

	color := fromObject.Color
	sample := fromObject.SampleTexture(v.Texture.X, v.Texture.Y)
	if sample.A > 0 {
		color = color.Lerp(sample.DivScalar(sample.A), sample.A)
	}
	if !s.UseLighting {
		return color
	}

	mat := fromObject.Material
	light := s.GlobalAmbient.Mul(mat.AmbientColor).MulScalar(mat.AmbientStrength)
	for _, l := range s.Lights {
		toLight := l.Position.Sub(v.Position).Normalize()
		diffuse := math.Max(v.Normal.Dot(toLight), 0)
		if diffuse <= 0 {
			continue
		}
		light = light.Add(l.DiffuseColor.Mul(mat.DiffuseColor).MulScalar(diffuse))

		shininess := mat.Shininess
		if shininess <= 0 {
			shininess = l.FocalStrength
		}
		if shininess <= 0 {
			continue
		}
		camera := s.CameraPosition.Sub(v.Position).Normalize()
		reflected := toLight.Negate().Reflect(v.Normal)
		specular := math.Max(camera.Dot(reflected), 0)
		if specular > 0 {
			specular = math.Pow(specular, shininess) * l.SpecularIntensity
			light = light.Add(l.SpecularColor.Mul(mat.SpecularColor).MulScalar(specular))
		}
	}
	if color.A < 1 {
		return color.Mul(light).Min(White).DivScalar(color.A).Alpha(color.A)
	}
	return color.Mul(light).Min(White).Alpha(color.A)
}

// ToonShader implements cel shading: diffuse intensity is snapped onto a
// small set of bands.
type ToonShader struct {
	Matrix         Matrix
	LightDirection Vector
	ColorSteps     map[float64]Color
}

func NewToonShader(matrix Matrix, lightDirection Vector) *ToonShader {
	return &ToonShader{
		Matrix:         matrix,
		LightDirection: lightDirection.Normalize(),
		ColorSteps: map[float64]Color{
			0.8: HexColor("ffffaa"),
			0.5: HexColor("ff8844"),
			0.2: HexColor("a12c00"),
			0.0: HexColor("4d1100"),
		},
	}
}

func (s *ToonShader) Transformed(model Matrix) Shader {
	c := *s
	c.Matrix = s.Matrix.Mul(model)
	return &c
}

func (s *ToonShader) Vertex(v Vertex) Vertex {
	v.Output = s.Matrix.MulPositionW(v.Position)
	normalMatrix := s.Matrix.Inverse().Transpose()
	v.Normal = normalMatrix.MulDirection(v.Normal).Normalize()
	return v
}

func (s *ToonShader) Fragment(v Vertex, fromObject *Object) Color {
	intensity := math.Max(0, v.Normal.Dot(s.LightDirection))
	var band Color
	switch {
	case intensity > 0.8:
		band = s.ColorSteps[0.8]
	case intensity > 0.5:
		band = s.ColorSteps[0.5]
	case intensity > 0.2:
		band = s.ColorSteps[0.2]
	default:
		band = s.ColorSteps[0.0]
	}
	sample := fromObject.SampleTexture(v.Texture.X, v.Texture.Y)
	if sample.A > 0 {
		return sample.Mul(band)
	}
	return fromObject.Color.Mul(band)
}

// SolidColorShader renders everything in one color, optionally extruding
// vertexes along their normals. Drawing a mesh through it with a small
// Thickness before the main pass produces a silhouette outline.
type SolidColorShader struct {
	Matrix    Matrix
	Color     Color
	Thickness float64
}

func NewSolidColorShader(matrix Matrix, color Color) *SolidColorShader {
	return &SolidColorShader{Matrix: matrix, Color: color}
}

func (s *SolidColorShader) Transformed(model Matrix) Shader {
	c := *s
	c.Matrix = s.Matrix.Mul(model)
	return &c
}

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	p := v.Position.Add(v.Normal.MulScalar(s.Thickness))
	v.Output = s.Matrix.MulPositionW(p)
	return v
}

func (s *SolidColorShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}
