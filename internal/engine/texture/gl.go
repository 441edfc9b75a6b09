package texture

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadOptions controls sampling of an uploaded texture.
type UploadOptions struct {
	Repeat  bool // repeat wrapping, otherwise clamp to edge
	Mipmaps bool
	// FlipY uploads a vertically flipped copy for bottom-up UVs.
	FlipY bool
}

// Upload creates a GL texture from img. A GL context must be current.
func Upload(img *image.NRGBA, opts UploadOptions) uint32 {
	if opts.FlipY {
		flipped := image.NewNRGBA(img.Bounds())
		copy(flipped.Pix, img.Pix)
		FlipVertical(flipped)
		img = flipped
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	wrap := int32(gl.CLAMP_TO_EDGE)
	if opts.Repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}

// Solid creates a 1x1 texture of the given color.
func Solid(r, g, b, a uint8) uint32 {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	copy(img.Pix, []uint8{r, g, b, a})
	return Upload(img, UploadOptions{Repeat: true})
}

// Delete releases a texture created by Upload.
func Delete(texID uint32) {
	if texID != 0 {
		gl.DeleteTextures(1, &texID)
	}
}
