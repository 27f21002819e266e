package scenery

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlmostEqualNearZero(t *testing.T) {
	// rotating (0,1,0) a quarter turn about X leaves this residue in Y
	noise := math.Sin(math.Pi) / 2
	assert.True(t, AlmostEqual(0, noise, 1e-9))
	assert.True(t, AlmostEqual(noise, 0, 1e-9))
	assert.True(t, AlmostEqual(0, 0, 1e-9))
	assert.False(t, AlmostEqual(0, 1e-6, 1e-9))
}

func TestAlmostEqualRelative(t *testing.T) {
	assert.True(t, AlmostEqual(1e12, 1e12*(1+1e-12), 1e-9))
	assert.False(t, AlmostEqual(1e12, 1e12*1.01, 1e-9))
}

func TestSavePNGRoundTrip(t *testing.T) {
	im := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	im.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(path, im))

	back, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 2, back.Bounds().Dx())
}
