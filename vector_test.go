package scenery

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorCross(t *testing.T) {
	x := Vector{1, 0, 0}
	y := Vector{0, 1, 0}
	assert.Equal(t, Vector{0, 0, 1}, x.Cross(y))
	assert.Equal(t, Vector{0, 0, -1}, y.Cross(x))
}

func TestVectorNormalize(t *testing.T) {
	v := Vector{3, 4, 0}.Normalize()
	assert.InDelta(t, 1, v.Length(), eps)
	assert.True(t, v.NearEqual(Vector{0.6, 0.8, 0}, eps))

	// degenerate input must not produce NaNs
	z := Vector{}.Normalize()
	assert.Equal(t, Vector{}, z)
}

func TestVectorReflect(t *testing.T) {
	incoming := Vector{1, -1, 0}.Normalize()
	up := Vector{0, 1, 0}
	got := incoming.Reflect(up)
	assert.True(t, got.NearEqual(Vector{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}, eps))
}

func TestVectorLerp(t *testing.T) {
	a := Vector{0, 0, 0}
	b := Vector{2, 4, 6}
	assert.True(t, a.Lerp(b, 0.5).NearEqual(Vector{1, 2, 3}, eps))
	assert.True(t, a.Lerp(b, 0).NearEqual(a, eps))
	assert.True(t, a.Lerp(b, 1).NearEqual(b, eps))
}

func TestVectorPerpendicular(t *testing.T) {
	v := Vector{3, 0, 0}
	p := v.Perpendicular()
	assert.InDelta(t, 0, v.Dot(p), eps)
	assert.InDelta(t, 1, p.Length(), eps)
}

func TestVectorWOutside(t *testing.T) {
	assert.False(t, VectorW{0, 0, 0, 1}.Outside())
	assert.False(t, VectorW{1, -1, 1, 1}.Outside())
	assert.True(t, VectorW{1.01, 0, 0, 1}.Outside())
	assert.True(t, VectorW{0, 0, 0, -1}.Outside())
}
