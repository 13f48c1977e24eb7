package sensor

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Intrinsics describes an ideal pinhole camera in pixels.
type Intrinsics struct {
	FocalX, FocalY float64
	PrincipalX     float64
	PrincipalY     float64
	Width, Height  int
}

// PinholeMapper is a CoordinateMapper for a sensor whose depth and colour
// cameras are modelled as undistorted pinholes. ColorOffset is the position of
// the colour camera's optical centre in depth camera space.
type PinholeMapper struct {
	Depth       Intrinsics
	Color       Intrinsics
	ColorOffset r3.Vec
}

// DefaultPinholeMapper returns factory-typical calibration for the default
// sensor.
func DefaultPinholeMapper() *PinholeMapper {
	return &PinholeMapper{
		Depth: Intrinsics{
			FocalX: 365.456, FocalY: 365.456,
			PrincipalX: 254.878, PrincipalY: 205.395,
			Width: DepthWidth, Height: DepthHeight,
		},
		Color: Intrinsics{
			FocalX: 1081.372, FocalY: 1081.372,
			PrincipalX: 959.5, PrincipalY: 539.5,
			Width: ColorWidth, Height: ColorHeight,
		},
		ColorOffset: r3.Vec{X: -0.052},
	}
}

// MapCameraPointToColorSpace implements CoordinateMapper.
func (m *PinholeMapper) MapCameraPointToColorSpace(p CameraSpacePoint) ColorSpacePoint {
	v := r3.Sub(toVec(p), m.ColorOffset)
	x, y := m.Color.project(v)
	return ColorSpacePoint{X: x, Y: y}
}

// MapCameraPointToDepthSpace implements CoordinateMapper.
func (m *PinholeMapper) MapCameraPointToDepthSpace(p CameraSpacePoint) DepthSpacePoint {
	x, y := m.Depth.project(toVec(p))
	return DepthSpacePoint{X: x, Y: y}
}

// project returns +Inf on both axes for points on or behind the image plane.
func (in Intrinsics) project(v r3.Vec) (float32, float32) {
	if v.Z <= 0 || math.IsNaN(v.Z) {
		inf := float32(math.Inf(1))
		return inf, inf
	}
	// Camera +Y is up, image +Y is down.
	u := in.PrincipalX + in.FocalX*v.X/v.Z
	w := in.PrincipalY - in.FocalY*v.Y/v.Z
	return float32(u), float32(w)
}

func toVec(p CameraSpacePoint) r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
