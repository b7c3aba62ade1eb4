package camera

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestParseCameraConfig(t *testing.T) {
	data := []byte(`
position: [0, 5, -10]
view_center: [0, 0, 0]
up_vector: [0, 1, 0]
projection:
  field_of_view: 60
  aspect_ratio: 2
  far_plane: 500
viewport: {left: 0, bottom: 0, width: 1920, height: 1080}
sensitivity: {translate: 0.5, rotate: 0.25}
`)
	cfg, err := ParseCameraConfig(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cam := NewCamera(cfg.Options()...)
	assertVec(t, "position", cam.Position(), mgl32.Vec3{0, 5, -10})
	assertVec(t, "view center", cam.ViewCenter(), mgl32.Vec3{0, 0, 0})
	if cam.ProjectionType() != ProjectionTypePerspective {
		t.Errorf("expected perspective projection")
	}
	if cam.FieldOfView() != 60 || cam.AspectRatio() != 2 || cam.NearPlane() != DefaultNearPlane || cam.FarPlane() != 500 {
		t.Errorf("unexpected projection parameters: %v %v %v %v",
			cam.FieldOfView(), cam.AspectRatio(), cam.NearPlane(), cam.FarPlane())
	}
	if _, _, w, h := cam.ViewPort(); w != 1920 || h != 1080 {
		t.Errorf("unexpected viewport size %vx%v", w, h)
	}
	if cam.TranslateSensitivity() != 0.5 || cam.ScaleSensitivity() != 1 || cam.RotateSensitivity() != 0.25 {
		t.Errorf("unexpected sensitivities %v %v %v",
			cam.TranslateSensitivity(), cam.ScaleSensitivity(), cam.RotateSensitivity())
	}
}

func TestParseCameraConfigEmpty(t *testing.T) {
	cfg, err := ParseCameraConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cam := NewCamera(cfg.Options()...)
	identity := NewCamera()
	if cam.ViewMatrix() != identity.ViewMatrix() {
		t.Errorf("empty config expected identity pose, got position %v center %v", cam.Position(), cam.ViewCenter())
	}
	if cam.ProjectionType() != ProjectionTypeNone {
		t.Errorf("empty config expected no projection")
	}
}

func TestParseCameraConfigErrors(t *testing.T) {
	testCases := map[string]struct {
		yaml    string
		invalid bool
	}{
		"UnknownKey":         {yaml: "zoom: 3\n"},
		"Malformed":          {yaml: "position: [0, 1\n"},
		"CoincidentCenter":   {yaml: "position: [0, 0, 1]\n", invalid: true},
		"ZeroUp":             {yaml: "up_vector: [0, 0, 0]\n", invalid: true},
		"ParallelUp":         {yaml: "up_vector: [0, 0, 5]\n", invalid: true},
		"FieldOfViewTooWide": {yaml: "projection: {field_of_view: 180}\n", invalid: true},
		"NegativeAspect":     {yaml: "projection: {aspect_ratio: -1}\n", invalid: true},
		"NegativeNear":       {yaml: "projection: {near_plane: -0.1}\n", invalid: true},
		"FarBeforeNear":      {yaml: "projection: {near_plane: 10, far_plane: 5}\n", invalid: true},
		"EmptyViewPort":      {yaml: "viewport: {width: 0, height: 10}\n", invalid: true},
		"NegativeScale":      {yaml: "sensitivity: {scale: -2}\n", invalid: true},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseCameraConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error, got config %+v", cfg)
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadCameraConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte("position: [1, 2, 3]\nview_center: [1, 2, 4]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCameraConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg.Position != [3]float32{1, 2, 3} {
		t.Errorf("unexpected position %v", *cfg.Position)
	}

	if _, err := LoadCameraConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
