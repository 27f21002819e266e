package scenery

import (
	"image/png"
	"io"
	"log/slog"
	"math"
)

// Scene holds the camera, the objects to render and the rasterization
// context.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          Shader
	eye, center, up Vector
	fovy, aspect    float64
}

// NewScene returns a scene rendering size*scale square pixels. scale is
// a supersampling factor applied to both dimensions.
func NewScene(eye, center, up Vector, fovy float64, size, scale int, shader Shader) *Scene {
	aspect := 1.0
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{context, nil, shader, eye, center, up, fovy, aspect}
}

// AddObject adds an object to the scene.
func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

// AddObjects is a convenience method to add multiple objects.
func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

// FitObjectsToScene widens the field of view until every object's
// bounding box is inside the frustum, and returns the resulting
// view-projection matrix.
func (s *Scene) FitObjectsToScene(near, far float64) Matrix {
	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil {
			boxes = append(boxes, o.Mesh.BoundingBox().Transform(o.Matrix))
		}
	}
	viewMatrix := LookAt(s.eye, s.center, s.up)
	if len(boxes) == 0 {
		return viewMatrix.Perspective(s.fovy, s.aspect, near, far)
	}
	sceneBox := BoxForBoxes(boxes)

	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := viewMatrix.MulPosition(corner)
		// The camera looks down -Z in view space; depth from the camera
		// plane drives the angle.
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 {
			continue
		}
		if a := math.Atan(math.Abs(p.X) / absZ); a > maxAngleX {
			maxAngleX = a
		}
		if a := math.Atan(math.Abs(p.Y) / absZ); a > maxAngleY {
			maxAngleY = a
		}
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/s.aspect)
	// 5% padding so nothing touches the frame edge.
	fovyDeg := Degrees(math.Max(fovyFromX, fovyFromY)) * 1.05

	return viewMatrix.Perspective(fovyDeg, s.aspect, near, far)
}

// ViewProjection returns the camera matrix for the scene's parameters.
func (s *Scene) ViewProjection(near, far float64) Matrix {
	return LookAt(s.eye, s.center, s.up).Perspective(s.fovy, s.aspect, near, far)
}

func (s *Scene) render(fit bool) {
	if fit {
		if ms, ok := s.Shader.(interface{ SetMatrix(Matrix) }); ok {
			ms.SetMatrix(s.FitObjectsToScene(1, 999))
		}
	}
	for _, o := range s.Objects {
		if o.Mesh == nil {
			slog.Warn("object skipped: nil mesh")
			continue
		}
		s.Context.DrawObject(o)
	}
}

// Draw renders the scene plus any extra objects to a PNG file.
func (s *Scene) Draw(fit bool, path string, objects []*Object) error {
	s.AddObjects(objects)
	s.render(fit)
	return SavePNG(path, s.Context.Image())
}

// DrawToWriter renders the scene plus any extra objects and encodes the
// image to the writer.
func (s *Scene) DrawToWriter(fit bool, writer io.Writer, objects []*Object) error {
	s.AddObjects(objects)
	s.render(fit)
	return png.Encode(writer, s.Context.Image())
}

// SetMatrix lets Scene.render retarget PhongShader when fitting.
func (s *PhongShader) SetMatrix(m Matrix) { s.Matrix = m }

// SetMatrix lets Scene.render retarget ToonShader when fitting.
func (s *ToonShader) SetMatrix(m Matrix) { s.Matrix = m }
