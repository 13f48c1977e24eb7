package render

import (
	"image/color"

	"github.com/banshee-data/kinectstreams/internal/skeleton"
)

// Fixed primitive geometry in display pixels.
const (
	PointRadius   = 10
	LineThickness = 8
)

// Style is shared by every primitive of a skeleton.
type Style struct {
	Color color.RGBA
}

// DefaultStyle is light blue.
var DefaultStyle = Style{Color: color.RGBA{R: 173, G: 216, B: 230, A: 255}}

// Primitive is either a Point or a Line.
type Primitive interface {
	primitive()
}

// Point is a filled disc centred on a joint.
type Point struct {
	Center skeleton.Point2D
	Radius float64
	Style  Style
}

// Line is a bone segment between two joints.
type Line struct {
	A, B      skeleton.Point2D
	Thickness float64
	Style     Style
}

func (Point) primitive() {}
func (Line) primitive()  {}

// ScalePrimitives maps primitive positions from one pixel plane to another by
// multiplying X by sx and Y by sy. Radius and thickness stay in display
// pixels.
func ScalePrimitives(prims []Primitive, sx, sy float64) []Primitive {
	out := make([]Primitive, len(prims))
	for i, p := range prims {
		switch p := p.(type) {
		case Point:
			p.Center = skeleton.Point2D{X: p.Center.X * sx, Y: p.Center.Y * sy}
			out[i] = p
		case Line:
			p.A = skeleton.Point2D{X: p.A.X * sx, Y: p.A.Y * sy}
			p.B = skeleton.Point2D{X: p.B.X * sx, Y: p.B.Y * sy}
			out[i] = p
		default:
			out[i] = p
		}
	}
	return out
}
