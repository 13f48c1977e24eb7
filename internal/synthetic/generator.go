// Package synthetic generates deterministic sensor ticks (colour, depth and
// infrared frames plus a walking body) for demos and tests.
package synthetic

import (
	"math"
	"math/rand"

	"github.com/banshee-data/kinectstreams/internal/pipeline"
	"github.com/banshee-data/kinectstreams/internal/raster"
	"github.com/banshee-data/kinectstreams/internal/sensor"
	"github.com/banshee-data/kinectstreams/internal/skeleton"
)

// restPose is a standing body in camera space, metres, facing the sensor at
// the origin of the body frame.
var restPose = [skeleton.JointCount]sensor.CameraSpacePoint{
	skeleton.SpineBase:     {X: 0, Y: -0.05},
	skeleton.SpineMid:      {X: 0, Y: 0.25},
	skeleton.Neck:          {X: 0, Y: 0.55},
	skeleton.Head:          {X: 0, Y: 0.70},
	skeleton.ShoulderLeft:  {X: -0.18, Y: 0.48},
	skeleton.ElbowLeft:     {X: -0.25, Y: 0.22},
	skeleton.WristLeft:     {X: -0.28, Y: -0.02},
	skeleton.HandLeft:      {X: -0.29, Y: -0.08},
	skeleton.ShoulderRight: {X: 0.18, Y: 0.48},
	skeleton.ElbowRight:    {X: 0.25, Y: 0.22},
	skeleton.WristRight:    {X: 0.28, Y: -0.02},
	skeleton.HandRight:     {X: 0.29, Y: -0.08},
	skeleton.HipLeft:       {X: -0.09, Y: -0.10},
	skeleton.KneeLeft:      {X: -0.10, Y: -0.50},
	skeleton.AnkleLeft:     {X: -0.10, Y: -0.88},
	skeleton.FootLeft:      {X: -0.11, Y: -0.92, Z: -0.10},
	skeleton.HipRight:      {X: 0.09, Y: -0.10},
	skeleton.KneeRight:     {X: 0.10, Y: -0.50},
	skeleton.AnkleRight:    {X: 0.10, Y: -0.88},
	skeleton.FootRight:     {X: 0.11, Y: -0.92, Z: -0.10},
	skeleton.SpineShoulder: {X: 0, Y: 0.48},
	skeleton.HandTipLeft:   {X: -0.30, Y: -0.16},
	skeleton.ThumbLeft:     {X: -0.26, Y: -0.10},
	skeleton.HandTipRight:  {X: 0.30, Y: -0.16},
	skeleton.ThumbRight:    {X: 0.26, Y: -0.10},
}

// Generator produces one FrameSet per call to Next.
type Generator struct {
	frame int

	// Configuration
	ColorWidth, ColorHeight int
	DepthWidth, DepthHeight int
	BodyCount               int
	BodyDistance            float32 // metres from the sensor
	Jitter                  float32 // metres of per-joint noise
	InferredFraction        float64 // share of joints reported Inferred
	DropHead                bool    // report Head as NotTracked

	rng *rand.Rand
}

// NewGenerator returns a generator at native sensor resolution seeded with
// seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		ColorWidth:       sensor.ColorWidth,
		ColorHeight:      sensor.ColorHeight,
		DepthWidth:       sensor.DepthWidth,
		DepthHeight:      sensor.DepthHeight,
		BodyCount:        1,
		BodyDistance:     2.5,
		Jitter:           0.005,
		InferredFraction: 0.1,
		rng:              rand.New(rand.NewSource(seed)),
	}
}

// Next generates the next tick.
func (g *Generator) Next() pipeline.FrameSet {
	g.frame++
	return pipeline.FrameSet{
		Color:    g.colorFrame(),
		Depth:    g.depthFrame(),
		Infrared: g.infraredFrame(),
		Bodies:   g.bodies(),
	}
}

func (g *Generator) colorFrame() *raster.RawFrame {
	w, h := g.ColorWidth, g.ColorHeight
	pix := make([]byte, w*h*raster.BytesPerPixel)
	shift := g.frame * 4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * raster.BytesPerPixel
			pix[i] = byte((x + shift) * 255 / max(w, 1))
			pix[i+1] = byte(y * 255 / max(h, 1))
			pix[i+2] = 0x60
			pix[i+3] = 0xff
		}
	}
	return &raster.RawFrame{Width: w, Height: h, Kind: raster.KindColor, ColorFormat: raster.FormatBGRA, Bytes: pix}
}

// depthFrame is a back wall with a nearer disc where the body stands and a
// band of invalid returns along the bottom rows.
func (g *Generator) depthFrame() *raster.RawFrame {
	w, h := g.DepthWidth, g.DepthHeight
	samples := make([]uint16, w*h)
	cx, cy := float64(w)/2, float64(h)/2
	r := float64(min(w, h)) / 4
	near := uint16(g.BodyDistance * 1000)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := uint16(3500 + x)
			switch {
			case y >= h-h/16:
				d = 0
			case math.Hypot(float64(x)-cx, float64(y)-cy) < r:
				d = near + uint16(g.rng.Intn(40))
			}
			samples[y*w+x] = d
		}
	}
	return &raster.RawFrame{
		Width: w, Height: h, Kind: raster.KindDepth, Samples: samples,
		MinDepth: sensor.DepthMinReliableDistance, MaxDepth: sensor.DepthMaxReliableDistance,
	}
}

func (g *Generator) infraredFrame() *raster.RawFrame {
	w, h := g.DepthWidth, g.DepthHeight
	samples := make([]uint16, w*h)
	for i := range samples {
		x, y := i%w, i/w
		samples[i] = uint16((x*y + g.frame*97) % 65536)
	}
	return &raster.RawFrame{Width: w, Height: h, Kind: raster.KindInfrared, Samples: samples}
}

func (g *Generator) bodies() []skeleton.Body {
	bodies := make([]skeleton.Body, g.BodyCount)
	phase := float64(g.frame) * 0.2
	for b := range bodies {
		sk := skeleton.NewSkeleton()
		offsetX := float32(b)*0.8 - float32(g.BodyCount-1)*0.4
		swing := float32(math.Sin(phase+float64(b))) * 0.12
		for j := skeleton.JointType(0); j < skeleton.JointCount; j++ {
			p := restPose[j]
			switch j {
			case skeleton.ElbowLeft, skeleton.WristLeft, skeleton.HandLeft, skeleton.HandTipLeft, skeleton.ThumbLeft,
				skeleton.KneeRight, skeleton.AnkleRight, skeleton.FootRight:
				p.Z += swing
			case skeleton.ElbowRight, skeleton.WristRight, skeleton.HandRight, skeleton.HandTipRight, skeleton.ThumbRight,
				skeleton.KneeLeft, skeleton.AnkleLeft, skeleton.FootLeft:
				p.Z -= swing
			}
			p.X += offsetX + g.noise()
			p.Y += g.noise()
			p.Z += g.BodyDistance + g.noise()

			state := skeleton.Tracked
			if g.rng.Float64() < g.InferredFraction {
				state = skeleton.Inferred
			}
			if g.DropHead && j == skeleton.Head {
				state = skeleton.NotTracked
			}
			sk.Set(j, p, state)
		}
		bodies[b] = skeleton.Body{TrackingID: uint64(1000 + b), IsTracked: true, Skeleton: sk}
	}
	return bodies
}

func (g *Generator) noise() float32 {
	return (g.rng.Float32()*2 - 1) * g.Jitter
}
