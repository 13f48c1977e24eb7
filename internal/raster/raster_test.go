package raster

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depthFrame(w, h int, lo, hi uint16, samples ...uint16) *RawFrame {
	return &RawFrame{Width: w, Height: h, Kind: KindDepth, Samples: samples, MinDepth: lo, MaxDepth: hi}
}

func TestConvertDepth_ReliableRange(t *testing.T) {
	tests := []struct {
		name  string
		depth uint16
		want  byte
	}{
		{"in range", 1000, 232},
		{"below range", 100, 0},
		{"above range", 5000, 0},
		{"min inclusive", 500, byte(500 % 256)},
		{"max inclusive", 4500, byte(4500 % 256)},
		{"in range with zero low byte", 1024, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Convert(depthFrame(1, 1, 500, 4500, tt.depth))
			require.NoError(t, err)
			b, g, r := buf.BGRAt(0, 0)
			assert.Equal(t, tt.want, b)
			assert.Equal(t, tt.want, g)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestConvertDepth_AllSamples(t *testing.T) {
	samples := make([]uint16, 0, 4600)
	for d := uint16(0); d < 4600; d++ {
		samples = append(samples, d)
	}
	buf, err := ConvertDepth(depthFrame(len(samples), 1, 500, 4500, samples...))
	require.NoError(t, err)
	for x, d := range samples {
		want := byte(0)
		if d >= 500 && d <= 4500 {
			want = byte(d % 256)
		}
		b, g, r := buf.BGRAt(x, 0)
		if b != want || g != want || r != want {
			t.Fatalf("depth %d: got (%d,%d,%d), want %d", d, b, g, r, want)
		}
	}
}

func TestConvertInfrared(t *testing.T) {
	f := &RawFrame{Width: 2, Height: 2, Kind: KindInfrared, Samples: []uint16{0x1ABF, 0, 0xFFFF, 0x00FF}}
	buf, err := ConvertInfrared(f)
	require.NoError(t, err)

	want := []byte{
		0x1A, 0x1A, 0x1A, 0,
		0, 0, 0, 0,
		0xFF, 0xFF, 0xFF, 0,
		0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, buf.Pix); diff != "" {
		t.Errorf("infrared pixels mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 8, buf.Stride)
}

func TestConvertColor_BGRARoundTrip(t *testing.T) {
	src := []byte{
		1, 2, 3, 255, 4, 5, 6, 255, 7, 8, 9, 255,
		10, 11, 12, 255, 13, 14, 15, 255, 16, 17, 18, 255,
	}
	f := &RawFrame{Width: 3, Height: 2, Kind: KindColor, ColorFormat: FormatBGRA, Bytes: src}
	buf, err := ConvertColor(f)
	require.NoError(t, err)
	assert.Equal(t, 12, buf.Stride)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			i := y*12 + x*4
			b, g, r := buf.BGRAt(x, y)
			assert.Equal(t, [3]byte{src[i], src[i+1], src[i+2]}, [3]byte{b, g, r})
		}
	}

	// The output must not alias the sensor's buffer.
	src[0] = 99
	b, _, _ := buf.BGRAt(0, 0)
	assert.Equal(t, byte(1), b)
}

func TestConvertColor_Repack(t *testing.T) {
	tests := []struct {
		format ColorFormat
		in     []byte
	}{
		{FormatRGBA, []byte{30, 20, 10, 255}},
		{FormatARGB, []byte{255, 30, 20, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			buf, err := Convert(&RawFrame{Width: 1, Height: 1, Kind: KindColor, ColorFormat: tt.format, Bytes: tt.in})
			require.NoError(t, err)
			assert.Equal(t, []byte{10, 20, 30, 255}, buf.Pix)
		})
	}
}

func TestConvert_InvalidFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame *RawFrame
	}{
		{"zero width", &RawFrame{Width: 0, Height: 1, Kind: KindDepth}},
		{"negative height", &RawFrame{Width: 1, Height: -1, Kind: KindInfrared}},
		{"short depth", depthFrame(2, 2, 0, 10, 1, 2, 3)},
		{"long infrared", &RawFrame{Width: 1, Height: 1, Kind: KindInfrared, Samples: []uint16{1, 2}}},
		{"short colour", &RawFrame{Width: 2, Height: 1, Kind: KindColor, Bytes: make([]byte, 7)}},
		{"bad colour format", &RawFrame{Width: 1, Height: 1, Kind: KindColor, ColorFormat: ColorFormat(7), Bytes: make([]byte, 4)}},
		{"unknown kind", &RawFrame{Width: 1, Height: 1, Kind: FrameKind(9)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Convert(tt.frame)
			assert.Nil(t, buf)
			assert.True(t, errors.Is(err, ErrInvalidFrame), "got %v", err)
		})
	}
}

func TestConvert_KindMismatch(t *testing.T) {
	f := depthFrame(1, 1, 0, 10, 5)
	_, err := ConvertInfrared(f)
	assert.ErrorIs(t, err, ErrInvalidFrame)
	_, err = ConvertColor(f)
	assert.ErrorIs(t, err, ErrInvalidFrame)
	_, err = ConvertDepth(&RawFrame{Width: 1, Height: 1, Kind: KindInfrared, Samples: []uint16{1}})
	assert.ErrorIs(t, err, ErrInvalidFrame)
}

func TestPixelBuffer_Image(t *testing.T) {
	buf := NewPixelBuffer(2, 1)
	copy(buf.Pix, []byte{10, 20, 30, 0, 1, 2, 3, 0})

	assert.Equal(t, color.RGBA{R: 30, G: 20, B: 10, A: 255}, buf.At(0, 0))
	assert.Equal(t, color.RGBA{}, buf.At(5, 0))

	img := buf.ToRGBA()
	assert.Equal(t, []byte{30, 20, 10, 255, 3, 2, 1, 255}, img.Pix)
}

func TestFit(t *testing.T) {
	f := depthFrame(2, 2, 0, 1000, 200, 200, 200, 200)
	buf, err := Convert(f)
	require.NoError(t, err)

	same, err := Fit(buf, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, same.RGBAAt(1, 1))

	big, err := Fit(buf, 8, 6)
	require.NoError(t, err)
	assert.Equal(t, 8, big.Bounds().Dx())
	assert.Equal(t, 6, big.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, big.RGBAAt(4, 3))

	_, err = Fit(buf, 0, 10)
	assert.Error(t, err)
	_, err = Fit(nil, 10, 10)
	assert.Error(t, err)
}
