package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/kinectstreams/internal/sensor"
)

// DefaultConfigPath is the path to the canonical display defaults file.
const DefaultConfigPath = "config/display.defaults.json"

// Projection names accepted by the projection field.
const (
	ProjectionMapper = "mapper" // joints placed by the sensor's coordinate mapper
	ProjectionScaled = "scaled" // camera-space X/Y scaled onto the canvas
)

// DisplayConfig controls how frames and skeletons are presented. Fields left
// nil fall back to the defaults returned by the Get* methods, so partial
// files are safe.
type DisplayConfig struct {
	Mode       *string `json:"mode,omitempty"`       // "color", "depth" or "infrared"
	Projection *string `json:"projection,omitempty"` // "mapper" or "scaled"

	// Canvas size in pixels. Zero means the native size of the active frame.
	CanvasWidth  *int `json:"canvas_width,omitempty"`
	CanvasHeight *int `json:"canvas_height,omitempty"`

	// Camera-space extent in metres mapped onto half the canvas by the
	// scaled projection.
	SkeletonBoundX *float64 `json:"skeleton_bound_x,omitempty"`
	SkeletonBoundY *float64 `json:"skeleton_bound_y,omitempty"`

	// Reliable depth range override in millimetres. Zero keeps the range
	// reported with each frame.
	DepthMinMM *int `json:"depth_min_mm,omitempty"`
	DepthMaxMM *int `json:"depth_max_mm,omitempty"`

	Composite     *bool `json:"composite,omitempty"`
	DrawSkeletons *bool `json:"draw_skeletons,omitempty"`
	Verbose       *bool `json:"verbose,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyDisplayConfig returns a DisplayConfig with all fields nil.
func EmptyDisplayConfig() *DisplayConfig {
	return &DisplayConfig{}
}

// DefaultDisplayConfig returns a config with every field populated with its
// default value.
func DefaultDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Mode:           ptrString("color"),
		Projection:     ptrString(ProjectionMapper),
		CanvasWidth:    ptrInt(0),
		CanvasHeight:   ptrInt(0),
		SkeletonBoundX: ptrFloat64(1.0),
		SkeletonBoundY: ptrFloat64(1.0),
		DepthMinMM:     ptrInt(0),
		DepthMaxMM:     ptrInt(0),
		Composite:      ptrBool(true),
		DrawSkeletons:  ptrBool(true),
		Verbose:        ptrBool(false),
	}
}

// LoadDisplayConfig loads a DisplayConfig from a JSON file. The file must
// have a .json extension and be at most 1MB.
func LoadDisplayConfig(path string) (*DisplayConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyDisplayConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents. Panics if the file cannot be loaded; intended
// for test setup.
func MustLoadDefaultConfig() *DisplayConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadDisplayConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *DisplayConfig) Validate() error {
	if c.Mode != nil {
		if _, err := sensor.ParseMode(*c.Mode); err != nil {
			return err
		}
	}

	if c.Projection != nil {
		switch *c.Projection {
		case ProjectionMapper, ProjectionScaled:
		default:
			return fmt.Errorf("projection must be %q or %q, got %q", ProjectionMapper, ProjectionScaled, *c.Projection)
		}
	}

	if c.CanvasWidth != nil && *c.CanvasWidth < 0 {
		return fmt.Errorf("canvas_width must be non-negative, got %d", *c.CanvasWidth)
	}
	if c.CanvasHeight != nil && *c.CanvasHeight < 0 {
		return fmt.Errorf("canvas_height must be non-negative, got %d", *c.CanvasHeight)
	}

	if c.SkeletonBoundX != nil && *c.SkeletonBoundX <= 0 {
		return fmt.Errorf("skeleton_bound_x must be positive, got %f", *c.SkeletonBoundX)
	}
	if c.SkeletonBoundY != nil && *c.SkeletonBoundY <= 0 {
		return fmt.Errorf("skeleton_bound_y must be positive, got %f", *c.SkeletonBoundY)
	}

	lo, hi := c.GetDepthMinMM(), c.GetDepthMaxMM()
	if lo < 0 || lo > 0xffff || hi < 0 || hi > 0xffff {
		return fmt.Errorf("depth range must be within 0..65535, got %d..%d", lo, hi)
	}
	if hi != 0 && lo > hi {
		return fmt.Errorf("depth_min_mm %d exceeds depth_max_mm %d", lo, hi)
	}

	return nil
}

// GetMode returns the parsed display mode or the default (colour).
func (c *DisplayConfig) GetMode() sensor.Mode {
	if c.Mode == nil {
		return sensor.ModeColor
	}
	m, err := sensor.ParseMode(*c.Mode)
	if err != nil {
		return sensor.ModeColor // default on parse error
	}
	return m
}

// GetProjection returns the projection name or the default.
func (c *DisplayConfig) GetProjection() string {
	if c.Projection == nil || *c.Projection == "" {
		return ProjectionMapper
	}
	return *c.Projection
}

// GetCanvasWidth returns the canvas_width value or the default.
func (c *DisplayConfig) GetCanvasWidth() int {
	if c.CanvasWidth == nil {
		return 0
	}
	return *c.CanvasWidth
}

// GetCanvasHeight returns the canvas_height value or the default.
func (c *DisplayConfig) GetCanvasHeight() int {
	if c.CanvasHeight == nil {
		return 0
	}
	return *c.CanvasHeight
}

// GetSkeletonBoundX returns the skeleton_bound_x value or the default.
func (c *DisplayConfig) GetSkeletonBoundX() float64 {
	if c.SkeletonBoundX == nil {
		return 1.0
	}
	return *c.SkeletonBoundX
}

// GetSkeletonBoundY returns the skeleton_bound_y value or the default.
func (c *DisplayConfig) GetSkeletonBoundY() float64 {
	if c.SkeletonBoundY == nil {
		return 1.0
	}
	return *c.SkeletonBoundY
}

// GetDepthMinMM returns the depth_min_mm value or the default.
func (c *DisplayConfig) GetDepthMinMM() int {
	if c.DepthMinMM == nil {
		return 0
	}
	return *c.DepthMinMM
}

// GetDepthMaxMM returns the depth_max_mm value or the default.
func (c *DisplayConfig) GetDepthMaxMM() int {
	if c.DepthMaxMM == nil {
		return 0
	}
	return *c.DepthMaxMM
}

// GetComposite returns the composite value or the default.
func (c *DisplayConfig) GetComposite() bool {
	if c.Composite == nil {
		return true
	}
	return *c.Composite
}

// GetDrawSkeletons returns the draw_skeletons value or the default.
func (c *DisplayConfig) GetDrawSkeletons() bool {
	if c.DrawSkeletons == nil {
		return true
	}
	return *c.DrawSkeletons
}

// GetVerbose returns the verbose value or the default.
func (c *DisplayConfig) GetVerbose() bool {
	if c.Verbose == nil {
		return false
	}
	return *c.Verbose
}
