package skeleton

import (
	"math"
	"testing"

	"github.com/banshee-data/kinectstreams/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMapper returns the same colour and depth coordinates for every point.
type fixedMapper struct {
	color sensor.ColorSpacePoint
	depth sensor.DepthSpacePoint
}

func (m fixedMapper) MapCameraPointToColorSpace(sensor.CameraSpacePoint) sensor.ColorSpacePoint {
	return m.color
}

func (m fixedMapper) MapCameraPointToDepthSpace(sensor.CameraSpacePoint) sensor.DepthSpacePoint {
	return m.depth
}

var inf = float32(math.Inf(1))

func TestJointTypes(t *testing.T) {
	assert.Equal(t, 25, JointCount)
	assert.Equal(t, "SpineBase", SpineBase.String())
	assert.Equal(t, "ThumbRight", ThumbRight.String())
	assert.Equal(t, "JointType(25)", JointType(25).String())
	assert.False(t, JointType(-1).Valid())

	sk := NewSkeleton()
	for i, j := range sk {
		assert.Equal(t, JointType(i), j.Type)
		assert.Equal(t, NotTracked, j.TrackingState)
	}
}

func TestBones(t *testing.T) {
	seen := make(map[Bone]bool)
	for _, b := range Bones {
		require.True(t, b.From.Valid(), "bone %v", b)
		require.True(t, b.To.Valid(), "bone %v", b)
		assert.NotEqual(t, b.From, b.To)
		assert.False(t, seen[b], "duplicate bone %v", b)
		seen[b] = true
	}

	// Every joint is reachable from the graph.
	touched := make(map[JointType]bool)
	for _, b := range Bones {
		touched[b.From] = true
		touched[b.To] = true
	}
	assert.Len(t, touched, JointCount)
}

func TestIsTrackable(t *testing.T) {
	assert.False(t, IsTrackable(NotTracked))
	assert.True(t, IsTrackable(Inferred))
	assert.True(t, IsTrackable(Tracked))
}

func TestProject_SelectsPlane(t *testing.T) {
	m := fixedMapper{
		color: sensor.ColorSpacePoint{X: 100, Y: 200},
		depth: sensor.DepthSpacePoint{X: 10, Y: 20},
	}
	pos := sensor.CameraSpacePoint{Z: 2}

	assert.Equal(t, Point2D{X: 100, Y: 200}, Project(pos, m, sensor.ModeColor))
	assert.Equal(t, Point2D{X: 10, Y: 20}, Project(pos, m, sensor.ModeDepth))
	assert.Equal(t, Point2D{X: 10, Y: 20}, Project(pos, m, sensor.ModeInfrared))
}

func TestProject_InfinityFallsToOrigin(t *testing.T) {
	tests := []struct {
		name  string
		color sensor.ColorSpacePoint
		want  Point2D
	}{
		{"x infinite", sensor.ColorSpacePoint{X: inf, Y: 5}, Point2D{X: 0, Y: 5}},
		{"y negative infinite", sensor.ColorSpacePoint{X: 7, Y: -inf}, Point2D{X: 7, Y: 0}},
		{"both infinite", sensor.ColorSpacePoint{X: inf, Y: inf}, Point2D{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(sensor.CameraSpacePoint{}, fixedMapper{color: tt.color}, sensor.ModeColor)
			assert.Equal(t, tt.want, got)
		})
	}

	got := Project(sensor.CameraSpacePoint{}, fixedMapper{depth: sensor.DepthSpacePoint{X: 3, Y: inf}}, sensor.ModeDepth)
	assert.Equal(t, Point2D{X: 3, Y: 0}, got)
}

func TestScale(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{0, 320},
		{1, 640},
		{2, 640},
		{-1, 0},
		{-2, 0},
		{0.5, 480},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Scale(640, 1.0, tt.raw), 1e-9, "raw=%v", tt.raw)
	}
	assert.InDelta(t, 480.0, Scale(640, 2.0, 1.0), 1e-9)
}

func TestScaleTo_InvertsY(t *testing.T) {
	got := ScaleTo(Point2D{X: 0.5, Y: 0.5}, 640, 480, 1, 1)
	assert.InDelta(t, 480.0, got.X, 1e-9)
	assert.InDelta(t, 120.0, got.Y, 1e-9)

	got = ScaleTo(Point2D{X: -3, Y: -3}, 640, 480, 1, 1)
	assert.Equal(t, Point2D{X: 0, Y: 480}, got)
}

func TestProjectSkeleton(t *testing.T) {
	sk := NewSkeleton()
	sk.Set(Head, sensor.CameraSpacePoint{Z: 2}, Tracked)
	sk.Set(Neck, sensor.CameraSpacePoint{Z: 2}, Inferred)

	pts := ProjectSkeleton(&sk, fixedMapper{depth: sensor.DepthSpacePoint{X: 1, Y: 2}}, sensor.ModeDepth)
	assert.True(t, pts[Head].Tracked)
	assert.True(t, pts[Neck].Tracked)
	assert.False(t, pts[SpineBase].Tracked)
	for _, p := range pts {
		assert.Equal(t, Point2D{X: 1, Y: 2}, p.Point)
	}
}

func TestScaleSkeleton(t *testing.T) {
	sk := NewSkeleton()
	sk.Set(Head, sensor.CameraSpacePoint{X: 0, Y: 1, Z: 2}, Tracked)

	pts := ScaleSkeleton(&sk, 640, 480, DefaultBound, DefaultBound)
	assert.Equal(t, ProjectedPoint{Point: Point2D{X: 320, Y: 0}, Tracked: true}, pts[Head])
	assert.Equal(t, ProjectedPoint{Point: Point2D{X: 320, Y: 240}}, pts[SpineBase])
}
