package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

// noDrag marks that no mouse button is held.
const noDrag = -1

// cameraControllerImpl is the single implementation of CameraController.
// Input state is guarded by the controller's own mutex; camera calls are made after it is released
// so a position-changed callback may safely query the controller.
type cameraControllerImpl struct {
	mu *sync.Mutex

	camera Camera
	mode   NavigationMode

	// Drag state
	dragButton   int
	lastX, lastY int32

	heldKeys map[uint32]bool

	mouseSensitivity float32 // degrees per pixel
	panSpeed         float32 // local units per pixel
	moveSpeed        float32 // local units per second
	rollSpeed        float32 // degrees per second
	boostFactor      float32 // movement multiplier while Shift is held
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller driving cam with sensible defaults (orbit mode).
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:         &sync.Mutex{},
		camera:     cam,
		mode:       NavigationModeOrbit,
		dragButton: noDrag,
		heldKeys:   make(map[uint32]bool),

		mouseSensitivity: 0.25,
		panSpeed:         0.01,
		moveSpeed:        5.0,
		rollSpeed:        45.0,
		boostFactor:      4.0,
	}

	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) Mode() NavigationMode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode
}

func (cc *cameraControllerImpl) SetMode(mode NavigationMode) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.mode = mode
}

// --- pointerCameraController implementation ---

func (cc *cameraControllerImpl) MouseDown(button int, x, y int32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.dragButton = button
	cc.lastX = x
	cc.lastY = y
}

func (cc *cameraControllerImpl) MouseUp(button int, x, y int32) {
	cc.MouseMove(x, y)

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.dragButton == button {
		cc.dragButton = noDrag
	}
}

func (cc *cameraControllerImpl) MouseMove(x, y int32) {
	cc.mu.Lock()
	if cc.dragButton == noDrag {
		cc.mu.Unlock()
		return
	}
	dx := float32(x - cc.lastX)
	dy := float32(y - cc.lastY)
	cc.lastX = x
	cc.lastY = y
	button, mode := cc.dragButton, cc.mode
	sensitivity, panSpeed := cc.mouseSensitivity, cc.panSpeed
	cc.mu.Unlock()

	if dx == 0 && dy == 0 {
		return
	}

	switch button {
	case common.MouseButtonLeft:
		if mode == NavigationModeOrbit {
			if dx != 0 {
				cc.camera.PanAboutViewCenter(-dx * sensitivity)
			}
			if dy != 0 {
				cc.camera.TiltAboutViewCenter(dy * sensitivity)
			}
			return
		}
		if dx != 0 {
			cc.camera.Pan(dx * sensitivity)
		}
		if dy != 0 {
			cc.camera.Tilt(-dy * sensitivity)
		}
	case common.MouseButtonRight:
		if dx == 0 {
			return
		}
		if mode == NavigationModeOrbit {
			cc.camera.RollAboutViewCenter(dx * sensitivity)
			return
		}
		cc.camera.Roll(dx * sensitivity)
	case common.MouseButtonMiddle:
		// The scene follows the cursor, so the camera moves against the drag.
		cc.camera.Translate(mgl32.Vec3{-dx * panSpeed, dy * panSpeed, 0}, TranslateViewCenter)
	}
}

func (cc *cameraControllerImpl) Scroll(delta float32) {
	if delta == 0 {
		return
	}
	cc.camera.Zoom(delta * WheelStep)
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) PanSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.panSpeed
}

// --- keyboardCameraController implementation ---

func (cc *cameraControllerImpl) KeyDown(keyCode uint32) {
	cc.mu.Lock()
	wasHeld := cc.heldKeys[keyCode]
	cc.heldKeys[keyCode] = true
	if !wasHeld && keyCode == common.KeyF {
		if cc.mode == NavigationModeOrbit {
			cc.mode = NavigationModeFly
		} else {
			cc.mode = NavigationModeOrbit
		}
	}
	cc.mu.Unlock()

	if !wasHeld && keyCode == common.KeyR {
		cc.camera.ResetViewToIdentity()
	}
}

func (cc *cameraControllerImpl) KeyUp(keyCode uint32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	delete(cc.heldKeys, keyCode)
}

func (cc *cameraControllerImpl) Update(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}

	cc.mu.Lock()
	move := cc.heldAxis(common.KeyD, common.KeyA, common.KeySpace, common.KeyC, common.KeyW, common.KeyS)
	roll := cc.keyAxis(common.KeyE, common.KeyQ)
	speed := cc.moveSpeed * deltaTime
	if cc.heldKeys[common.KeyLeftShift] || cc.heldKeys[common.KeyRightShift] {
		speed *= cc.boostFactor
	}
	rollAngle := roll * cc.rollSpeed * deltaTime
	mode := cc.mode
	cc.mu.Unlock()

	if move != (mgl32.Vec3{}) {
		cc.camera.Translate(move.Mul(speed), TranslateViewCenter)
	}
	if rollAngle != 0 {
		if mode == NavigationModeOrbit {
			cc.camera.RollAboutViewCenter(rollAngle)
		} else {
			cc.camera.Roll(rollAngle)
		}
	}
}

func (cc *cameraControllerImpl) MoveSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.moveSpeed
}

func (cc *cameraControllerImpl) RollSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rollSpeed
}

// --- internal helpers ---

// keyAxis returns +1 when only positive is held, -1 when only negative is held, otherwise 0.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) keyAxis(positive, negative uint32) float32 {
	var v float32
	if cc.heldKeys[positive] {
		v++
	}
	if cc.heldKeys[negative] {
		v--
	}
	return v
}

// heldAxis combines three key pairs into a camera-local direction (x = right, y = up, z = forward).
// Caller must hold the mutex.
func (cc *cameraControllerImpl) heldAxis(right, left, up, down, forward, back uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		cc.keyAxis(right, left),
		cc.keyAxis(up, down),
		cc.keyAxis(forward, back),
	}
}
