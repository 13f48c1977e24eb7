package sensor

import (
	"fmt"
	"strings"
)

// Mode selects which stream is displayed and therefore which image plane
// joints are projected into.
type Mode int

const (
	ModeColor Mode = iota
	ModeDepth
	ModeInfrared
)

func (m Mode) String() string {
	switch m {
	case ModeColor:
		return "color"
	case ModeDepth:
		return "depth"
	case ModeInfrared:
		return "infrared"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String (case-insensitive).
// "colour" and "ir" are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "color", "colour":
		return ModeColor, nil
	case "depth":
		return ModeDepth, nil
	case "infrared", "ir":
		return ModeInfrared, nil
	}
	return 0, fmt.Errorf("unknown display mode %q", s)
}

// CameraSpacePoint is a position in metres relative to the depth sensor's
// optical centre. +Y is up, +Z points away from the sensor.
type CameraSpacePoint struct {
	X, Y, Z float32
}

// ColorSpacePoint is a pixel coordinate on the colour image plane.
type ColorSpacePoint struct {
	X, Y float32
}

// DepthSpacePoint is a pixel coordinate on the depth image plane. Infrared
// frames share this plane.
type DepthSpacePoint struct {
	X, Y float32
}

// CoordinateMapper maps camera-space positions onto the sensor's image planes.
// Implementations signal a point that cannot be projected (behind the sensor,
// outside the calibrated volume) by returning infinite components.
type CoordinateMapper interface {
	MapCameraPointToColorSpace(p CameraSpacePoint) ColorSpacePoint
	MapCameraPointToDepthSpace(p CameraSpacePoint) DepthSpacePoint
}

// Frame descriptions of the default (Kinect v2 class) sensor.
const (
	ColorWidth     = 1920
	ColorHeight    = 1080
	DepthWidth     = 512
	DepthHeight    = 424
	InfraredWidth  = DepthWidth
	InfraredHeight = DepthHeight

	// Reliable depth range in millimetres.
	DepthMinReliableDistance uint16 = 500
	DepthMaxReliableDistance uint16 = 4500
)
