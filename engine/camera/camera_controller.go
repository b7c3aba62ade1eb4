package camera

// NavigationMode selects how pointer drags rotate the camera.
type NavigationMode int

const (
	// NavigationModeOrbit rotates the camera around its view center.
	NavigationModeOrbit NavigationMode = iota
	// NavigationModeFly rotates the viewing direction around the camera position.
	NavigationModeFly
)

// String returns the mode name.
func (m NavigationMode) String() string {
	switch m {
	case NavigationModeOrbit:
		return "orbit"
	case NavigationModeFly:
		return "fly"
	default:
		return "unknown"
	}
}

// CameraController defines the union interface for camera input handling.
// A controller turns already-decoded window input (mouse buttons, cursor positions, wheel notches
// and virtual key codes) into Camera operations. Embeds both pointerCameraController and
// keyboardCameraController so mouse and keyboard navigation work simultaneously from a single
// controller instance.
type CameraController interface {
	pointerCameraController
	keyboardCameraController

	// Camera returns the camera driven by this controller.
	//
	// Returns:
	//   - Camera: the controlled camera
	Camera() Camera

	// Mode returns the current navigation mode.
	//
	// Returns:
	//   - NavigationMode: orbit or fly
	Mode() NavigationMode

	// SetMode switches between orbit and fly navigation.
	//
	// Parameters:
	//   - mode: the new navigation mode
	SetMode(mode NavigationMode)
}

// pointerCameraController defines mouse-driven control methods.
// Left drag rotates (orbit or fly depending on mode), right drag rolls, middle drag pans the
// camera and its view center together, and the wheel zooms toward the view center.
type pointerCameraController interface {
	// MouseDown starts a drag with the given button at the cursor position.
	// A drag already in progress with another button is replaced.
	//
	// Parameters:
	//   - button: mouse button code (common.MouseButtonLeft, Right or Middle)
	//   - x, y: cursor position in window pixels (y grows downward)
	MouseDown(button int, x, y int32)

	// MouseUp ends the drag started with button. Releases of other buttons are ignored.
	//
	// Parameters:
	//   - button: mouse button code
	//   - x, y: cursor position in window pixels
	MouseUp(button int, x, y int32)

	// MouseMove applies the cursor motion since the previous event to the camera while dragging.
	//
	// Parameters:
	//   - x, y: cursor position in window pixels
	MouseMove(x, y int32)

	// Scroll zooms the camera. One wheel notch (delta 1) corresponds to WheelStep zoom units.
	//
	// Parameters:
	//   - delta: wheel notches, positive = zoom in
	Scroll(delta float32)

	// MouseSensitivity returns the rotation applied per dragged pixel.
	//
	// Returns:
	//   - float32: degrees per pixel
	MouseSensitivity() float32

	// PanSpeed returns the camera-local translation applied per middle-dragged pixel.
	//
	// Returns:
	//   - float32: local units per pixel
	PanSpeed() float32
}

// keyboardCameraController defines held-key movement methods.
// W/S move forward/back, A/D strafe, Space/C rise/sink, Q/E roll, Shift boosts movement.
// R resets the camera to the identity pose and F toggles the navigation mode.
type keyboardCameraController interface {
	// KeyDown records a key press.
	//
	// Parameters:
	//   - keyCode: virtual key code (see common.Key*)
	KeyDown(keyCode uint32)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - keyCode: virtual key code
	KeyUp(keyCode uint32)

	// Update integrates the held movement keys over deltaTime and applies them to the camera.
	// Should be called once per engine tick.
	//
	// Parameters:
	//   - deltaTime: elapsed time in seconds
	Update(deltaTime float32)

	// MoveSpeed returns the held-key translation speed.
	//
	// Returns:
	//   - float32: local units per second
	MoveSpeed() float32

	// RollSpeed returns the held-key roll speed.
	//
	// Returns:
	//   - float32: degrees per second
	RollSpeed() float32
}
