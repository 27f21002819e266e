package scenery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clipVertex(x, y, z, w float64) Vertex {
	return Vertex{Output: VectorW{x, y, z, w}}
}

func TestClipTriangleFullyInside(t *testing.T) {
	tri := NewTriangle(
		clipVertex(0, 0, 0, 1),
		clipVertex(0.5, 0, 0, 1),
		clipVertex(0, 0.5, 0, 1))
	out := ClipTriangle(tri)
	assert.Len(t, out, 1)
	assert.Equal(t, tri.V1.Output, out[0].V1.Output)
}

func TestClipTriangleFullyOutside(t *testing.T) {
	tri := NewTriangle(
		clipVertex(2, 0, 0, 1),
		clipVertex(3, 0, 0, 1),
		clipVertex(2, 1, 0, 1))
	assert.Empty(t, ClipTriangle(tri))
}

func TestClipTriangleStraddling(t *testing.T) {
	tri := NewTriangle(
		clipVertex(0, 0, 0, 1),
		clipVertex(2, 0, 0, 1),
		clipVertex(0, 2, 0, 1))
	out := ClipTriangle(tri)
	assert.NotEmpty(t, out)
	for _, ct := range out {
		for _, v := range []Vertex{ct.V1, ct.V2, ct.V3} {
			assert.False(t, v.Output.Outside(), "clipped vertex still outside: %+v", v.Output)
		}
	}
}

func TestClipLine(t *testing.T) {
	inside := ClipLine(NewLine(clipVertex(0, 0, 0, 1), clipVertex(0.5, 0.5, 0, 1)))
	assert.NotNil(t, inside)

	outside := ClipLine(NewLine(clipVertex(2, 2, 0, 1), clipVertex(3, 3, 0, 1)))
	assert.Nil(t, outside)

	cut := ClipLine(NewLine(clipVertex(0, 0, 0, 1), clipVertex(2, 0, 0, 1)))
	assert.NotNil(t, cut)
	assert.InDelta(t, 1, cut.V2.Output.X, eps)
}
