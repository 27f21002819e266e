package scenery

import (
	"bytes"
	"errors"
	"image"
	"math"
	"net/http"
	"time"

	_ "image/jpeg" // register the decoders the scene loader relies on
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nfnt/resize"
)

// MaxTextureSize caps the pixel dimensions of loaded textures. Larger
// images are downscaled before sampling; nothing in a software rasterizer
// benefits from source images beyond this.
const MaxTextureSize = 2048

// Texture samples a color for a UV coordinate.
type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) Texture {
	b := im.Bounds()
	if b.Dx() > MaxTextureSize || b.Dy() > MaxTextureSize {
		im = resize.Thumbnail(MaxTextureSize, MaxTextureSize, im, resize.Bilinear)
		b = im.Bounds()
	}
	return &ImageTexture{
		Width:  b.Dx(),
		Height: b.Dy(),
		Image:  im,
	}
}

// LoadTexture decodes an image file into a texture.
func LoadTexture(path string) (Texture, error) {
	im, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

// LoadTextureFromURL fetches and decodes a texture over HTTP.
func LoadTextureFromURL(url string) (Texture, error) {
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("texture fetch: " + resp.Status)
	}
	im, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

// TextureFromBytes decodes an in-memory image into a texture.
func TextureFromBytes(data []byte) (Texture, error) {
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

// Sample returns the nearest texel. Coordinates wrap, and V is flipped so
// that v=0 is the bottom of the image, matching mesh UV conventions.
func (t *ImageTexture) Sample(u, v float64) Color {
	u = u - math.Floor(u)
	v = v - math.Floor(v)
	v = 1 - v

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return MakeColor(t.Image.At(x, y))
}

// BilinearSample blends the four texels around the coordinate.
func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = u - math.Floor(u)
	v = v - math.Floor(v)
	v = 1 - v

	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	at := func(x, y int) Color {
		x = ClampInt(x, 0, t.Width-1)
		y = ClampInt(y, 0, t.Height-1)
		return MakeColor(t.Image.At(x, y))
	}
	c00 := at(x0, y0)
	c10 := at(x0+1, y0)
	c01 := at(x0, y0+1)
	c11 := at(x0+1, y0+1)
	top := c00.Lerp(c10, dx)
	bottom := c01.Lerp(c11, dx)
	return top.Lerp(bottom, dy)
}
