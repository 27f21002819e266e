package scenery

// Clipping runs in homogeneous clip space, after the vertex stage and
// before perspective division. Each frustum plane is expressed as a
// signed distance on the shader Output; points with non-negative
// distance are inside.

var clipPlanes = []func(VectorW) float64{
	func(v VectorW) float64 { return v.W + v.X },
	func(v VectorW) float64 { return v.W - v.X },
	func(v VectorW) float64 { return v.W + v.Y },
	func(v VectorW) float64 { return v.W - v.Y },
	func(v VectorW) float64 { return v.W + v.Z },
	func(v VectorW) float64 { return v.W - v.Z },
}

func lerpVertex(a, b Vertex, t float64) Vertex {
	v := Vertex{}
	v.Position = a.Position.Lerp(b.Position, t)
	v.Normal = a.Normal.Lerp(b.Normal, t).Normalize()
	v.Texture = a.Texture.Lerp(b.Texture, t)
	v.Color = a.Color.Lerp(b.Color, t)
	v.Output = a.Output.Add(b.Output.Sub(a.Output).MulScalar(t))
	return v
}

func clipPolygon(vertexes []Vertex) []Vertex {
	for _, plane := range clipPlanes {
		if len(vertexes) == 0 {
			return nil
		}
		output := make([]Vertex, 0, len(vertexes)+1)
		prev := vertexes[len(vertexes)-1]
		prevDist := plane(prev.Output)
		for _, v := range vertexes {
			dist := plane(v.Output)
			if dist*prevDist < 0 {
				t := prevDist / (prevDist - dist)
				output = append(output, lerpVertex(prev, v, t))
			}
			if dist >= 0 {
				output = append(output, v)
			}
			prev = v
			prevDist = dist
		}
		vertexes = output
	}
	return vertexes
}

// ClipTriangle clips a triangle against the view frustum, fanning the
// resulting polygon back into triangles. Returns nil when fully outside.
func ClipTriangle(t *Triangle) []*Triangle {
	polygon := clipPolygon([]Vertex{t.V1, t.V2, t.V3})
	var result []*Triangle
	for i := 2; i < len(polygon); i++ {
		result = append(result, NewTriangle(polygon[0], polygon[i-1], polygon[i]))
	}
	return result
}

// ClipLine clips a segment against the view frustum. Returns nil when
// fully outside.
func ClipLine(l *Line) *Line {
	v1, v2 := l.V1, l.V2
	for _, plane := range clipPlanes {
		d1 := plane(v1.Output)
		d2 := plane(v2.Output)
		if d1 < 0 && d2 < 0 {
			return nil
		}
		if d1 < 0 {
			v1 = lerpVertex(v1, v2, d1/(d1-d2))
		} else if d2 < 0 {
			v2 = lerpVertex(v2, v1, d2/(d2-d1))
		}
	}
	return NewLine(v1, v2)
}
