// Package sensor holds the vocabulary shared between the raster converter and
// the skeletal projector: display modes, the camera and image-plane point
// types, and the coordinate-mapping capability supplied by the sensor's
// camera model.
//
// Key types: Mode, CameraSpacePoint, CoordinateMapper.
package sensor
