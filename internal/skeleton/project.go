package skeleton

import (
	"math"

	"github.com/banshee-data/kinectstreams/internal/sensor"
)

// DefaultBound is the camera-space extent, in metres, mapped onto half a
// canvas by ScaleTo when no explicit bound is configured.
const DefaultBound = 1.0

// Point2D is a position in display pixels.
type Point2D struct {
	X, Y float64
}

// ProjectedPoint is a joint placed on the display plane together with
// whether it may be drawn.
type ProjectedPoint struct {
	Point   Point2D
	Tracked bool
}

// Project maps a camera-space position onto the image plane used by mode.
// Depth and infrared share the depth plane. An infinite coordinate from the
// mapper is replaced with 0 on that axis only.
func Project(pos sensor.CameraSpacePoint, mapper sensor.CoordinateMapper, mode sensor.Mode) Point2D {
	var x, y float32
	if mode == sensor.ModeColor {
		p := mapper.MapCameraPointToColorSpace(pos)
		x, y = p.X, p.Y
	} else {
		p := mapper.MapCameraPointToDepthSpace(pos)
		x, y = p.X, p.Y
	}
	return Point2D{X: finiteOrZero(x), Y: finiteOrZero(y)}
}

func finiteOrZero(v float32) float64 {
	f := float64(v)
	if math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ProjectSkeleton projects every joint of sk.
func ProjectSkeleton(sk *Skeleton, mapper sensor.CoordinateMapper, mode sensor.Mode) [JointCount]ProjectedPoint {
	var out [JointCount]ProjectedPoint
	for i := range sk {
		out[i] = ProjectedPoint{
			Point:   Project(sk[i].Position, mapper, mode),
			Tracked: IsTrackable(sk[i].TrackingState),
		}
	}
	return out
}

// Scale maps raw in [-maxBound, +maxBound] linearly onto [0, maxPixel] with
// 0 at the centre, clamping anything outside the canvas to its edge.
func Scale(maxPixel, maxBound, raw float64) float64 {
	v := (maxPixel/maxBound/2)*raw + maxPixel/2
	if v > maxPixel {
		return maxPixel
	}
	if v < 0 {
		return 0
	}
	return v
}

// ScaleTo maps a normalized point onto a width x height canvas. Y is negated
// first because sensor up is canvas down.
func ScaleTo(p Point2D, width, height, boundX, boundY float64) Point2D {
	return Point2D{
		X: Scale(width, boundX, p.X),
		Y: Scale(height, boundY, -p.Y),
	}
}

// ScaleSkeleton places each joint's camera-space X and Y directly onto the
// canvas with ScaleTo, bypassing the sensor's camera model.
func ScaleSkeleton(sk *Skeleton, width, height, boundX, boundY float64) [JointCount]ProjectedPoint {
	var out [JointCount]ProjectedPoint
	for i := range sk {
		pos := sk[i].Position
		out[i] = ProjectedPoint{
			Point:   ScaleTo(Point2D{X: float64(pos.X), Y: float64(pos.Y)}, width, height, boundX, boundY),
			Tracked: IsTrackable(sk[i].TrackingState),
		}
	}
	return out
}
