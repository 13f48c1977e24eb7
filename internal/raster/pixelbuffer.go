package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// PixelBuffer is a 32-bit BGR raster. Each pixel occupies four bytes in B, G,
// R order followed by an unused byte. Rows are Stride bytes apart.
type PixelBuffer struct {
	Width, Height int
	Stride        int
	Pix           []byte
}

// NewPixelBuffer allocates a black buffer with a tightly packed stride.
func NewPixelBuffer(width, height int) *PixelBuffer {
	stride := width * BytesPerPixel
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}
}

// BGRAt returns the blue, green and red bytes of pixel (x,y).
func (b *PixelBuffer) BGRAt(x, y int) (blue, green, red byte) {
	i := y*b.Stride + x*BytesPerPixel
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// ColorModel implements image.Image.
func (b *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image. The padding byte is ignored and pixels are
// reported fully opaque.
func (b *PixelBuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.RGBA{}
	}
	blue, green, red := b.BGRAt(x, y)
	return color.RGBA{R: red, G: green, B: blue, A: 0xff}
}

// ToRGBA copies the buffer into an opaque *image.RGBA.
func (b *PixelBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for y := 0; y < b.Height; y++ {
		src := b.Pix[y*b.Stride : y*b.Stride+b.Width*BytesPerPixel]
		dst := img.Pix[y*img.Stride : y*img.Stride+b.Width*4]
		for i := 0; i < len(src); i += BytesPerPixel {
			dst[i] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i]
			dst[i+3] = 0xff
		}
	}
	return img
}

// Fit scales the buffer onto a new width x height canvas.
func Fit(b *PixelBuffer, width, height int) (*image.RGBA, error) {
	if b == nil {
		return nil, errors.New("nil pixel buffer")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	src := b.ToRGBA()
	if width == b.Width && height == b.Height {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
