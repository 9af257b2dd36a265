package internal

import (
	"errors"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// TextureFromImage uploads img to a texture that blends with what is drawn below it.
func TextureFromImage(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New("empty image")
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_RGBA32),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
