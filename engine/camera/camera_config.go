package camera

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Default perspective parameters used for fields a ProjectionConfig leaves empty.
const (
	DefaultFieldOfView float32 = 45.0
	DefaultAspectRatio float32 = 1.0
	DefaultNearPlane   float32 = 0.1
	DefaultFarPlane    float32 = 100.0
)

// ErrInvalidConfig is wrapped by every validation error returned from CameraConfig.Validate.
var ErrInvalidConfig = errors.New("invalid camera config")

// CameraConfig is the YAML representation of a camera's initial state.
//
// Example:
//
//	position: [0, 5, -10]
//	view_center: [0, 0, 0]
//	up_vector: [0, 1, 0]
//	projection:
//	  field_of_view: 60
//	  aspect_ratio: 1.777
//	  near_plane: 0.1
//	  far_plane: 1000
//	viewport: {left: 0, bottom: 0, width: 1920, height: 1080}
//	sensitivity: {translate: 0.5, scale: 2, rotate: 0.25}
type CameraConfig struct {
	// Position is the eye position. Omitted means the origin.
	Position *[3]float32 `yaml:"position"`
	// ViewCenter is the look-at point. Omitted means (0, 0, 1).
	ViewCenter *[3]float32 `yaml:"view_center"`
	// UpVector is the camera up vector. Omitted means (0, 1, 0).
	UpVector *[3]float32 `yaml:"up_vector"`
	// Projection configures a perspective projection. Omitted leaves the projection unset.
	Projection *ProjectionConfig `yaml:"projection"`
	// ViewPort configures the viewport rectangle. Omitted leaves the viewport unset.
	ViewPort *ViewPortConfig `yaml:"viewport"`
	// Sensitivity overrides the interaction multipliers; zero fields keep the default of 1.
	Sensitivity SensitivityConfig `yaml:"sensitivity"`
}

// ProjectionConfig holds perspective parameters. Zero fields fall back to the Default* constants.
type ProjectionConfig struct {
	FieldOfView float32 `yaml:"field_of_view"`
	AspectRatio float32 `yaml:"aspect_ratio"`
	NearPlane   float32 `yaml:"near_plane"`
	FarPlane    float32 `yaml:"far_plane"`
}

// ViewPortConfig holds the viewport rectangle in pixels.
type ViewPortConfig struct {
	Left   float32 `yaml:"left"`
	Bottom float32 `yaml:"bottom"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// SensitivityConfig holds the interaction multipliers.
type SensitivityConfig struct {
	Translate float32 `yaml:"translate"`
	Scale     float32 `yaml:"scale"`
	Rotate    float32 `yaml:"rotate"`
}

// LoadCameraConfig reads and validates a YAML camera configuration file.
//
// Parameters:
//   - path: path of the YAML file
//
// Returns:
//   - *CameraConfig: the parsed configuration
//   - error: error if the file cannot be read, parsed or validated
func LoadCameraConfig(path string) (*CameraConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read camera config %s: %w", path, err)
	}
	cfg, err := ParseCameraConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load camera config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseCameraConfig decodes and validates a YAML camera configuration.
// Unknown keys are rejected. An empty document yields the default configuration.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *CameraConfig: the parsed configuration
//   - error: error if decoding or validation fails
func ParseCameraConfig(data []byte) (*CameraConfig, error) {
	cfg := &CameraConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode camera config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a usable camera.
//
// Returns:
//   - error: an error wrapping ErrInvalidConfig, or nil
func (cfg *CameraConfig) Validate() error {
	position, viewCenter, up := cfg.pose()
	if common.IsNullVec3(viewCenter.Sub(position)) {
		return fmt.Errorf("%w: position and view_center coincide at %v", ErrInvalidConfig, position)
	}
	if common.IsNullVec3(up) {
		return fmt.Errorf("%w: up_vector must not be zero", ErrInvalidConfig)
	}
	if common.IsNullVec3(common.Normalize(viewCenter.Sub(position)).Cross(common.Normalize(up))) {
		return fmt.Errorf("%w: up_vector %v is parallel to the viewing direction", ErrInvalidConfig, up)
	}

	if p := cfg.projection(); p != nil {
		if p.FieldOfView <= 0 || p.FieldOfView >= 180 {
			return fmt.Errorf("%w: field_of_view must be in (0, 180) degrees, got %v", ErrInvalidConfig, p.FieldOfView)
		}
		if p.AspectRatio <= 0 {
			return fmt.Errorf("%w: aspect_ratio must be positive, got %v", ErrInvalidConfig, p.AspectRatio)
		}
		if p.NearPlane <= 0 {
			return fmt.Errorf("%w: near_plane must be positive, got %v", ErrInvalidConfig, p.NearPlane)
		}
		if p.FarPlane <= p.NearPlane {
			return fmt.Errorf("%w: far_plane (%v) must be greater than near_plane (%v)", ErrInvalidConfig, p.FarPlane, p.NearPlane)
		}
	}

	if vp := cfg.ViewPort; vp != nil {
		if vp.Width <= 0 || vp.Height <= 0 {
			return fmt.Errorf("%w: viewport size must be positive, got %vx%v", ErrInvalidConfig, vp.Width, vp.Height)
		}
	}

	s := cfg.Sensitivity
	if s.Translate < 0 || s.Scale < 0 || s.Rotate < 0 {
		return fmt.Errorf("%w: sensitivities must not be negative, got %+v", ErrInvalidConfig, s)
	}
	return nil
}

// Options converts the configuration into builder options for NewCamera.
//
// Returns:
//   - []CameraBuilderOption: options reproducing the configured state
func (cfg *CameraConfig) Options() []CameraBuilderOption {
	position, viewCenter, up := cfg.pose()
	options := []CameraBuilderOption{
		WithPosition(position),
		WithViewCenter(viewCenter),
		WithUpVector(up),
		WithTranslateSensitivity(common.Coalesce(cfg.Sensitivity.Translate, 1)),
		WithScaleSensitivity(common.Coalesce(cfg.Sensitivity.Scale, 1)),
		WithRotateSensitivity(common.Coalesce(cfg.Sensitivity.Rotate, 1)),
	}
	if p := cfg.projection(); p != nil {
		options = append(options, WithPerspective(p.FieldOfView, p.AspectRatio, p.NearPlane, p.FarPlane))
	}
	if vp := cfg.ViewPort; vp != nil {
		options = append(options, WithViewPort(vp.Left, vp.Bottom, vp.Width, vp.Height))
	}
	return options
}

// pose returns the configured pose with identity-pose defaults for omitted vectors.
func (cfg *CameraConfig) pose() (position, viewCenter, up mgl32.Vec3) {
	position = mgl32.Vec3(common.ValueOr(cfg.Position, [3]float32{0, 0, 0}))
	viewCenter = mgl32.Vec3(common.ValueOr(cfg.ViewCenter, [3]float32{0, 0, 1}))
	up = mgl32.Vec3(common.ValueOr(cfg.UpVector, [3]float32{0, 1, 0}))
	return position, viewCenter, up
}

// projection returns the projection section with defaults applied, or nil if it is omitted.
func (cfg *CameraConfig) projection() *ProjectionConfig {
	if cfg.Projection == nil {
		return nil
	}
	return &ProjectionConfig{
		FieldOfView: common.Coalesce(cfg.Projection.FieldOfView, DefaultFieldOfView),
		AspectRatio: common.Coalesce(cfg.Projection.AspectRatio, DefaultAspectRatio),
		NearPlane:   common.Coalesce(cfg.Projection.NearPlane, DefaultNearPlane),
		FarPlane:    common.Coalesce(cfg.Projection.FarPlane, DefaultFarPlane),
	}
}
