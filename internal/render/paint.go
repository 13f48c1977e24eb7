package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/banshee-data/kinectstreams/internal/skeleton"
	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for joint discs.
const circleSegments = 32

// Paint rasterises prims onto dst in order, composited over existing pixels.
// Primitives falling wholly outside dst are skipped.
func Paint(dst draw.Image, prims []Primitive) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	off := skeleton.Point2D{X: float64(b.Min.X), Y: float64(b.Min.Y)}

	for _, p := range prims {
		var style Style
		z.Reset(b.Dx(), b.Dy())
		switch p := p.(type) {
		case Point:
			if !intersects(b, p.Center, p.Center, p.Radius) {
				continue
			}
			disc(z, sub(p.Center, off), p.Radius)
			style = p.Style
		case Line:
			half := p.Thickness / 2
			if !intersects(b, p.A, p.B, half) {
				continue
			}
			segment(z, sub(p.A, off), sub(p.B, off), half)
			style = p.Style
		default:
			continue
		}
		z.Draw(dst, b, image.NewUniform(style.Color), image.Point{})
	}
}

func disc(z *vector.Rasterizer, c skeleton.Point2D, r float64) {
	z.MoveTo(float32(c.X+r), float32(c.Y))
	for i := 1; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		z.LineTo(float32(c.X+r*math.Cos(a)), float32(c.Y+r*math.Sin(a)))
	}
	z.ClosePath()
}

// segment fills the rectangle of width 2*half centred on a-b. A degenerate
// segment is drawn as a disc.
func segment(z *vector.Rasterizer, a, b skeleton.Point2D, half float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		disc(z, a, half)
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
}

func intersects(r image.Rectangle, a, b skeleton.Point2D, pad float64) bool {
	minX, maxX := math.Min(a.X, b.X)-pad, math.Max(a.X, b.X)+pad
	minY, maxY := math.Min(a.Y, b.Y)-pad, math.Max(a.Y, b.Y)+pad
	return maxX > float64(r.Min.X) && minX < float64(r.Max.X) &&
		maxY > float64(r.Min.Y) && minY < float64(r.Max.Y)
}

func sub(p, q skeleton.Point2D) skeleton.Point2D {
	return skeleton.Point2D{X: p.X - q.X, Y: p.Y - q.Y}
}
