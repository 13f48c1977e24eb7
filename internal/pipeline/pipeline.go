package pipeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/banshee-data/kinectstreams/internal/config"
	"github.com/banshee-data/kinectstreams/internal/monitoring"
	"github.com/banshee-data/kinectstreams/internal/raster"
	"github.com/banshee-data/kinectstreams/internal/render"
	"github.com/banshee-data/kinectstreams/internal/sensor"
	"github.com/banshee-data/kinectstreams/internal/skeleton"
)

// FrameSet is everything the sensor delivered for one tick. Any frame may be
// nil when the sensor did not produce it.
type FrameSet struct {
	Color    *raster.RawFrame
	Depth    *raster.RawFrame
	Infrared *raster.RawFrame
	Bodies   []skeleton.Body
}

// Output is the result of one tick.
type Output struct {
	FrameID    uuid.UUID
	Mode       sensor.Mode
	Raster     *raster.PixelBuffer // nil when the active stream had no frame
	Primitives []render.Primitive  // in canvas pixels
	Composite  *image.RGBA         // nil unless compositing is enabled
	Width      int                 // canvas size
	Height     int
}

// Pipeline is not safe for concurrent use; SetMode must not race Process.
type Pipeline struct {
	cfg    *config.DisplayConfig
	mapper sensor.CoordinateMapper
	mode   sensor.Mode
}

// New validates cfg and returns a pipeline. mapper may be nil only with the
// scaled projection.
func New(cfg *config.DisplayConfig, mapper sensor.CoordinateMapper) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.DefaultDisplayConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid display config: %w", err)
	}
	if mapper == nil && cfg.GetProjection() == config.ProjectionMapper {
		return nil, errors.New("mapper projection requires a coordinate mapper")
	}
	monitoring.SetVerbose(cfg.GetVerbose())
	return &Pipeline{cfg: cfg, mapper: mapper, mode: cfg.GetMode()}, nil
}

// Mode returns the active display mode.
func (p *Pipeline) Mode() sensor.Mode { return p.mode }

// SetMode switches the displayed stream from the next Process call on.
func (p *Pipeline) SetMode(m sensor.Mode) {
	if m != p.mode {
		monitoring.Logf("display mode %s -> %s", p.mode, m)
	}
	p.mode = m
}

// Process runs one tick. An error wrapping raster.ErrInvalidFrame means the
// active frame was malformed and the tick should be skipped.
func (p *Pipeline) Process(fs FrameSet) (*Output, error) {
	out := &Output{FrameID: uuid.New(), Mode: p.mode}

	if f := fs.frameFor(p.mode); f != nil {
		buf, err := raster.Convert(p.withDepthRange(f))
		if err != nil {
			monitoring.Logf("skipping %s frame %s: %v", p.mode, out.FrameID, err)
			return nil, fmt.Errorf("convert %s frame: %w", p.mode, err)
		}
		out.Raster = buf
	}

	planeW, planeH := planeSize(p.mode, out.Raster)
	out.Width, out.Height = planeW, planeH
	if w, h := p.cfg.GetCanvasWidth(), p.cfg.GetCanvasHeight(); w > 0 && h > 0 {
		out.Width, out.Height = w, h
	}

	if p.cfg.GetDrawSkeletons() {
		out.Primitives = p.renderBodies(fs.Bodies, planeW, planeH, out.Width, out.Height)
	}

	if p.cfg.GetComposite() {
		img, err := p.composite(out)
		if err != nil {
			return nil, err
		}
		out.Composite = img
	}

	monitoring.Debugf("frame %s mode=%s canvas=%dx%d bodies=%d primitives=%d",
		out.FrameID, out.Mode, out.Width, out.Height, len(fs.Bodies), len(out.Primitives))
	return out, nil
}

func (fs *FrameSet) frameFor(m sensor.Mode) *raster.RawFrame {
	switch m {
	case sensor.ModeDepth:
		return fs.Depth
	case sensor.ModeInfrared:
		return fs.Infrared
	default:
		return fs.Color
	}
}

// withDepthRange applies the configured reliable range override to a copy of
// a depth frame. The sensor's frame is never modified.
func (p *Pipeline) withDepthRange(f *raster.RawFrame) *raster.RawFrame {
	lo, hi := p.cfg.GetDepthMinMM(), p.cfg.GetDepthMaxMM()
	if f.Kind != raster.KindDepth || (lo == 0 && hi == 0) {
		return f
	}
	c := *f
	if lo != 0 {
		c.MinDepth = uint16(lo)
	}
	if hi != 0 {
		c.MaxDepth = uint16(hi)
	}
	return &c
}

func (p *Pipeline) renderBodies(bodies []skeleton.Body, planeW, planeH, w, h int) []render.Primitive {
	if p.cfg.GetProjection() == config.ProjectionScaled {
		var prims []render.Primitive
		bx, by := p.cfg.GetSkeletonBoundX(), p.cfg.GetSkeletonBoundY()
		for i := range bodies {
			if !bodies[i].IsTracked {
				continue
			}
			pts := skeleton.ScaleSkeleton(&bodies[i].Skeleton, float64(w), float64(h), bx, by)
			prims = append(prims, render.FromProjected(&pts, render.DefaultStyle)...)
		}
		return prims
	}

	prims := render.RenderBodies(bodies, p.mode, p.mapper)
	if w == planeW && h == planeH {
		return prims
	}
	return render.ScalePrimitives(prims, float64(w)/float64(planeW), float64(h)/float64(planeH))
}

func (p *Pipeline) composite(out *Output) (*image.RGBA, error) {
	var img *image.RGBA
	if out.Raster != nil {
		var err error
		img, err = raster.Fit(out.Raster, out.Width, out.Height)
		if err != nil {
			return nil, fmt.Errorf("fit raster to canvas: %w", err)
		}
	} else {
		img = image.NewRGBA(image.Rect(0, 0, out.Width, out.Height))
	}
	render.Paint(img, out.Primitives)
	return img, nil
}

// planeSize is the pixel plane joints are projected into: the converted
// frame when there is one, otherwise the sensor's native size for m.
func planeSize(m sensor.Mode, buf *raster.PixelBuffer) (int, int) {
	if buf != nil {
		return buf.Width, buf.Height
	}
	switch m {
	case sensor.ModeDepth:
		return sensor.DepthWidth, sensor.DepthHeight
	case sensor.ModeInfrared:
		return sensor.InfraredWidth, sensor.InfraredHeight
	default:
		return sensor.ColorWidth, sensor.ColorHeight
	}
}
