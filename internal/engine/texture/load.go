// Package texture decodes, resizes and uploads the scene's textures, and
// generates procedural stand-ins when a file is missing.
package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ErrEmptyImage is returned for images with zero width or height.
var ErrEmptyImage = errors.New("texture: empty image")

// Load reads and decodes the image at path and downscales it so neither
// side exceeds maxSize. maxSize <= 0 keeps the original size.
func Load(path string, maxSize int) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Fit(img, maxSize), nil
}

// Decode decodes a JPEG, PNG or BMP image into NRGBA, the layout uploaded
// to the GPU.
func Decode(r io.Reader) (*image.NRGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: %w", format, ErrEmptyImage)
	}
	return ToNRGBA(src), nil
}

// ToNRGBA converts img to an NRGBA image with its origin at (0, 0).
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Fit downscales img with Catmull-Rom filtering so that its longer side is
// maxSize, keeping the aspect ratio. Images already small enough are
// returned as is.
func Fit(img *image.NRGBA, maxSize int) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}

	nw, nh := maxSize, maxSize
	if w > h {
		nh = max(1, h*maxSize/w)
	} else {
		nw = max(1, w*maxSize/h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FlipVertical mirrors img top to bottom in place. GL expects the first row
// of texel data at the bottom.
func FlipVertical(img *image.NRGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
