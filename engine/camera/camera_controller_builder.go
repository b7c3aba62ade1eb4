package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithMode sets the initial navigation mode.
//
// Parameters:
//   - mode: NavigationModeOrbit or NavigationModeFly
//
// Returns:
//   - CameraControllerOption: functional option to set the mode
func WithMode(mode NavigationMode) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mode = mode
	}
}

// WithMouseSensitivity sets the mouse drag sensitivity.
//
// Parameters:
//   - sensitivity: degrees of rotation per dragged pixel
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithPanSpeed sets the middle-drag pan speed.
//
// Parameters:
//   - speed: camera-local units per dragged pixel
//
// Returns:
//   - CameraControllerOption: functional option to set pan speed
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = speed
	}
}

// WithMoveSpeed sets the held-key movement speed.
//
// Parameters:
//   - speed: camera-local units per second
//
// Returns:
//   - CameraControllerOption: functional option to set move speed
func WithMoveSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveSpeed = speed
	}
}

// WithRollSpeed sets the held-key roll speed.
//
// Parameters:
//   - speed: degrees per second
//
// Returns:
//   - CameraControllerOption: functional option to set roll speed
func WithRollSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rollSpeed = speed
	}
}

// WithBoostFactor sets the movement multiplier applied while Shift is held.
//
// Parameters:
//   - factor: speed multiplier
//
// Returns:
//   - CameraControllerOption: functional option to set the boost factor
func WithBoostFactor(factor float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.boostFactor = factor
	}
}
