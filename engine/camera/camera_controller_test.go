package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraControllerDefaults(t *testing.T) {
	cc := NewCameraController(NewCamera())

	if cc.Mode() != NavigationModeOrbit {
		t.Errorf("expected orbit mode, got %v", cc.Mode())
	}
	if cc.MouseSensitivity() != 0.25 || cc.PanSpeed() != 0.01 || cc.MoveSpeed() != 5 || cc.RollSpeed() != 45 {
		t.Errorf("unexpected defaults: %v %v %v %v", cc.MouseSensitivity(), cc.PanSpeed(), cc.MoveSpeed(), cc.RollSpeed())
	}
}

func TestCameraControllerDrag(t *testing.T) {
	testCases := map[string]struct {
		mode   NavigationMode
		button int
		check  func(t *testing.T, cam Camera)
	}{
		"OrbitLeft": {
			mode:   NavigationModeOrbit,
			button: common.MouseButtonLeft,
			check: func(t *testing.T, cam Camera) {
				assertVec(t, "view center", cam.ViewCenter(), mgl32.Vec3{0, 0, 1})
				if cam.Position() == (mgl32.Vec3{}) {
					t.Errorf("expected the position to orbit")
				}
				if d := cam.ViewVector().Len(); math.Abs(float64(d-1)) > tolerance {
					t.Errorf("expected orbit distance 1, got %f", d)
				}
			},
		},
		"FlyLeft": {
			mode:   NavigationModeFly,
			button: common.MouseButtonLeft,
			check: func(t *testing.T, cam Camera) {
				assertVec(t, "position", cam.Position(), mgl32.Vec3{})
				if vecNear(cam.ViewCenter(), mgl32.Vec3{0, 0, 1}) {
					t.Errorf("expected the view center to move")
				}
			},
		},
		"OrbitRight": {
			mode:   NavigationModeOrbit,
			button: common.MouseButtonRight,
			check: func(t *testing.T, cam Camera) {
				assertVec(t, "position", cam.Position(), mgl32.Vec3{})
				if vecNear(cam.UpVector(), mgl32.Vec3{0, 1, 0}) {
					t.Errorf("expected the camera to roll")
				}
			},
		},
		"Middle": {
			mode:   NavigationModeOrbit,
			button: common.MouseButtonMiddle,
			check: func(t *testing.T, cam Camera) {
				assertVec(t, "position", cam.Position(), mgl32.Vec3{0.1, 0, 0})
				assertVec(t, "view center", cam.ViewCenter(), mgl32.Vec3{0.1, 0, 1})
			},
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			cam := NewCamera()
			cc := NewCameraController(cam, WithMode(tt.mode))

			cc.MouseDown(tt.button, 100, 100)
			cc.MouseMove(110, 100)
			tt.check(t, cam)

			cc.MouseUp(tt.button, 110, 100)
			before := cam.Position()
			cc.MouseMove(200, 200)
			if cam.Position() != before {
				t.Errorf("camera moved after the drag ended")
			}
		})
	}
}

func TestCameraControllerMouseUpOtherButton(t *testing.T) {
	cam := NewCamera()
	cc := NewCameraController(cam, WithMode(NavigationModeFly))

	cc.MouseDown(common.MouseButtonLeft, 0, 0)
	cc.MouseUp(common.MouseButtonRight, 0, 0)
	cc.MouseMove(20, 0)

	if vecNear(cam.ViewCenter(), mgl32.Vec3{0, 0, 1}) {
		t.Errorf("releasing another button should not end the drag")
	}
}

func TestCameraControllerScroll(t *testing.T) {
	cam := NewCamera(WithViewCenter(mgl32.Vec3{0, 0, 10}))
	cc := NewCameraController(cam)

	cc.Scroll(1)
	assertVec(t, "position", cam.Position(), mgl32.Vec3{0, 0, 1})
	cc.Scroll(-2)
	assertVec(t, "position", cam.Position(), mgl32.Vec3{0, 0, -1})
	cc.Scroll(0)
	assertVec(t, "position", cam.Position(), mgl32.Vec3{0, 0, -1})
}

func TestCameraControllerUpdate(t *testing.T) {
	testCases := map[string]struct {
		keys     []uint32
		dt       float32
		position mgl32.Vec3
	}{
		"Forward":        {keys: []uint32{common.KeyW}, dt: 0.5, position: mgl32.Vec3{0, 0, 1}},
		"Back":           {keys: []uint32{common.KeyS}, dt: 0.5, position: mgl32.Vec3{0, 0, -1}},
		"Rise":           {keys: []uint32{common.KeySpace}, dt: 0.25, position: mgl32.Vec3{0, 0.5, 0}},
		"StrafeRight":    {keys: []uint32{common.KeyD}, dt: 0.5, position: mgl32.Vec3{-1, 0, 0}},
		"OpposingCancel": {keys: []uint32{common.KeyW, common.KeyS}, dt: 0.5, position: mgl32.Vec3{}},
		"Boost":          {keys: []uint32{common.KeyW, common.KeyLeftShift}, dt: 0.5, position: mgl32.Vec3{0, 0, 4}},
		"ZeroDelta":      {keys: []uint32{common.KeyW}, dt: 0, position: mgl32.Vec3{}},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			cam := NewCamera()
			cc := NewCameraController(cam, WithMoveSpeed(2), WithBoostFactor(4))
			for _, k := range tt.keys {
				cc.KeyDown(k)
			}
			cc.Update(tt.dt)

			assertVec(t, "position", cam.Position(), tt.position)
			assertVec(t, "view vector", cam.ViewVector(), mgl32.Vec3{0, 0, 1})
		})
	}
}

func TestCameraControllerKeyRelease(t *testing.T) {
	cam := NewCamera()
	cc := NewCameraController(cam)

	cc.KeyDown(common.KeyW)
	cc.KeyUp(common.KeyW)
	cc.Update(1)

	assertVec(t, "position", cam.Position(), mgl32.Vec3{})
}

func TestCameraControllerRollKeys(t *testing.T) {
	cam := NewCamera()
	cc := NewCameraController(cam, WithRollSpeed(10), WithMode(NavigationModeFly))

	cc.KeyDown(common.KeyE)
	cc.Update(1)

	s, c := degSinCos(10)
	assertVec(t, "up", cam.UpVector(), mgl32.Vec3{-s, c, 0})
}

func TestCameraControllerModeToggle(t *testing.T) {
	cc := NewCameraController(NewCamera())

	cc.KeyDown(common.KeyF)
	if cc.Mode() != NavigationModeFly {
		t.Fatalf("expected fly mode after F, got %v", cc.Mode())
	}
	// Auto-repeat while held does not toggle again.
	cc.KeyDown(common.KeyF)
	if cc.Mode() != NavigationModeFly {
		t.Errorf("expected key repeat to be ignored, got %v", cc.Mode())
	}
	cc.KeyUp(common.KeyF)
	cc.KeyDown(common.KeyF)
	if cc.Mode() != NavigationModeOrbit {
		t.Errorf("expected orbit mode after second press, got %v", cc.Mode())
	}

	cc.SetMode(NavigationModeFly)
	if cc.Mode().String() != "fly" {
		t.Errorf("expected fly, got %v", cc.Mode())
	}
}

func TestCameraControllerReset(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{4, 4, 4}), WithViewCenter(mgl32.Vec3{}))
	cc := NewCameraController(cam)

	cc.KeyDown(common.KeyR)

	assertVec(t, "position", cam.Position(), mgl32.Vec3{})
	assertVec(t, "view center", cam.ViewCenter(), mgl32.Vec3{0, 0, 1})
	if cc.Camera() != cam {
		t.Errorf("controller returned a different camera")
	}
}
