package scenery

import (
	"image"
	"image/png"
	"math"
	"os"

	"github.com/beorn7/floats"
)

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// AlmostEqual compares two floats with both an absolute and a relative
// tolerance, so that it behaves sensibly near zero and for large values.
// The absolute check covers operands at or near zero, where a purely
// relative comparison degenerates to exact equality.
func AlmostEqual(a, b, tolerance float64) bool {
	if math.Abs(a-b) <= tolerance {
		return true
	}
	return floats.AlmostEqual(a, b, tolerance)
}

// LoadImage decodes an image file using any of the registered formats.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	return im, err
}

// SavePNG writes an image to disk.
func SavePNG(path string, im image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, im)
}
