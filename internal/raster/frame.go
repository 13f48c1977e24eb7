package raster

import (
	"errors"
	"fmt"
)

// ErrInvalidFrame is returned when a frame's dimensions or sample buffer do
// not agree. The frame should be skipped; it is not worth retrying.
var ErrInvalidFrame = errors.New("invalid frame")

// BytesPerPixel of the display format.
const BytesPerPixel = 4

// FrameKind identifies the stream a RawFrame came from.
type FrameKind int

const (
	KindColor FrameKind = iota
	KindDepth
	KindInfrared
)

func (k FrameKind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindDepth:
		return "depth"
	case KindInfrared:
		return "infrared"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ColorFormat is the byte order of a raw 32-bit colour sample.
type ColorFormat int

const (
	FormatBGRA ColorFormat = iota
	FormatRGBA
	FormatARGB
)

func (f ColorFormat) String() string {
	switch f {
	case FormatBGRA:
		return "bgra"
	case FormatRGBA:
		return "rgba"
	case FormatARGB:
		return "argb"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// RawFrame is one snapshot delivered by the sensor. Colour frames carry Bytes
// in ColorFormat order; depth and infrared frames carry one sample per pixel
// in Samples. MinDepth and MaxDepth bound the reliable depth range
// (inclusive) and are ignored for other kinds.
type RawFrame struct {
	Width, Height int
	Kind          FrameKind
	ColorFormat   ColorFormat
	Bytes         []byte
	Samples       []uint16
	MinDepth      uint16
	MaxDepth      uint16
}

// Validate checks the frame's buffer against its dimensions.
func (f *RawFrame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFrame, f.Width, f.Height)
	}
	n := f.Width * f.Height
	switch f.Kind {
	case KindColor:
		if f.ColorFormat < FormatBGRA || f.ColorFormat > FormatARGB {
			return fmt.Errorf("%w: unsupported colour format %v", ErrInvalidFrame, f.ColorFormat)
		}
		if len(f.Bytes) != n*BytesPerPixel {
			return fmt.Errorf("%w: %s frame %dx%d has %d bytes, want %d",
				ErrInvalidFrame, f.Kind, f.Width, f.Height, len(f.Bytes), n*BytesPerPixel)
		}
	case KindDepth, KindInfrared:
		if len(f.Samples) != n {
			return fmt.Errorf("%w: %s frame %dx%d has %d samples, want %d",
				ErrInvalidFrame, f.Kind, f.Width, f.Height, len(f.Samples), n)
		}
	default:
		return fmt.Errorf("%w: unknown frame kind %v", ErrInvalidFrame, f.Kind)
	}
	return nil
}
