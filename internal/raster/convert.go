package raster

import "fmt"

// Convert turns a raw frame into a display buffer according to its kind.
func Convert(f *RawFrame) (*PixelBuffer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	switch f.Kind {
	case KindColor:
		return convertColor(f), nil
	case KindDepth:
		return convertDepth(f), nil
	default:
		return convertInfrared(f), nil
	}
}

// ConvertColor repacks a colour frame into BGRA. A BGRA source is copied
// unchanged.
func ConvertColor(f *RawFrame) (*PixelBuffer, error) {
	if f.Kind != KindColor {
		return nil, kindMismatch(f, KindColor)
	}
	return Convert(f)
}

// ConvertDepth maps each in-range depth sample to its low byte and every
// out-of-range sample to black.
func ConvertDepth(f *RawFrame) (*PixelBuffer, error) {
	if f.Kind != KindDepth {
		return nil, kindMismatch(f, KindDepth)
	}
	return Convert(f)
}

// ConvertInfrared keeps the high byte of each infrared sample.
func ConvertInfrared(f *RawFrame) (*PixelBuffer, error) {
	if f.Kind != KindInfrared {
		return nil, kindMismatch(f, KindInfrared)
	}
	return Convert(f)
}

func convertColor(f *RawFrame) *PixelBuffer {
	buf := NewPixelBuffer(f.Width, f.Height)
	src, dst := f.Bytes, buf.Pix
	switch f.ColorFormat {
	case FormatBGRA:
		copy(dst, src)
	case FormatRGBA:
		for i := 0; i < len(src); i += BytesPerPixel {
			dst[i] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i]
			dst[i+3] = src[i+3]
		}
	case FormatARGB:
		for i := 0; i < len(src); i += BytesPerPixel {
			dst[i] = src[i+3]
			dst[i+1] = src[i+2]
			dst[i+2] = src[i+1]
			dst[i+3] = src[i]
		}
	}
	return buf
}

func convertDepth(f *RawFrame) *PixelBuffer {
	buf := NewPixelBuffer(f.Width, f.Height)
	lo, hi := f.MinDepth, f.MaxDepth
	j := 0
	for _, d := range f.Samples {
		var intensity byte
		if d >= lo && d <= hi {
			// Only the low byte survives; an in-range reading with a zero low
			// byte renders the same as "no data".
			intensity = byte(d)
		}
		buf.Pix[j] = intensity
		buf.Pix[j+1] = intensity
		buf.Pix[j+2] = intensity
		j += BytesPerPixel
	}
	return buf
}

func convertInfrared(f *RawFrame) *PixelBuffer {
	buf := NewPixelBuffer(f.Width, f.Height)
	j := 0
	for _, v := range f.Samples {
		intensity := byte(v >> 8)
		buf.Pix[j] = intensity
		buf.Pix[j+1] = intensity
		buf.Pix[j+2] = intensity
		j += BytesPerPixel
	}
	return buf
}

func kindMismatch(f *RawFrame, want FrameKind) error {
	return fmt.Errorf("%w: got %s frame, want %s", ErrInvalidFrame, f.Kind, want)
}
