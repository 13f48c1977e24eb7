package render

import (
	"github.com/banshee-data/kinectstreams/internal/sensor"
	"github.com/banshee-data/kinectstreams/internal/skeleton"
)

// Render projects sk for mode and returns its primitives: one Point per
// trackable joint in JointType order, then one Line per bone whose endpoints
// are both trackable, in skeleton.Bones order.
func Render(sk *skeleton.Skeleton, mode sensor.Mode, mapper sensor.CoordinateMapper) []Primitive {
	pts := skeleton.ProjectSkeleton(sk, mapper, mode)
	return FromProjected(&pts, DefaultStyle)
}

// FromProjected builds primitives from already projected joints.
func FromProjected(pts *[skeleton.JointCount]skeleton.ProjectedPoint, style Style) []Primitive {
	out := make([]Primitive, 0, skeleton.JointCount+len(skeleton.Bones))
	for _, p := range pts {
		if !p.Tracked {
			continue
		}
		out = append(out, Point{Center: p.Point, Radius: PointRadius, Style: style})
	}
	for _, b := range skeleton.Bones {
		from, to := pts[b.From], pts[b.To]
		// An untracked endpoint sits at a fallback position; never anchor a
		// bone there.
		if !from.Tracked || !to.Tracked {
			continue
		}
		out = append(out, Line{A: from.Point, B: to.Point, Thickness: LineThickness, Style: style})
	}
	return out
}

// RenderBodies renders every tracked body in order.
func RenderBodies(bodies []skeleton.Body, mode sensor.Mode, mapper sensor.CoordinateMapper) []Primitive {
	var out []Primitive
	for i := range bodies {
		if !bodies[i].IsTracked {
			continue
		}
		out = append(out, Render(&bodies[i].Skeleton, mode, mapper)...)
	}
	return out
}
