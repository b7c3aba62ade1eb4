package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's eye position.
//
// Parameters:
//   - position: world-space eye position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(position mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setPosition(position)
	}
}

// WithViewCenter sets the point the camera looks toward.
//
// Parameters:
//   - viewCenter: world-space look-at point
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's view center
func WithViewCenter(viewCenter mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setViewCenter(viewCenter)
	}
}

// WithUpVector sets the camera's up vector.
//
// Parameters:
//   - up: up vector, expected to be perpendicular to the viewing direction
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUpVector(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setUpVector(up)
	}
}

// WithPerspective configures a perspective projection.
//
// Parameters:
//   - fieldOfView: vertical field of view in degrees
//   - aspectRatio: width / height
//   - nearPlane: near plane distance
//   - farPlane: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's projection
func WithPerspective(fieldOfView, aspectRatio, nearPlane, farPlane float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setPerspectiveProjection(fieldOfView, aspectRatio, nearPlane, farPlane)
	}
}

// WithViewPort sets the pixel rectangle the camera renders into.
//
// Parameters:
//   - left, bottom: lower-left corner in pixels
//   - width, height: size in pixels
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's viewport
func WithViewPort(left, bottom, width, height float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setViewPort(left, bottom, width, height)
	}
}

// WithTranslateSensitivity sets the multiplier applied to Translate input.
//
// Parameters:
//   - sensitivity: world units per local unit
//
// Returns:
//   - CameraBuilderOption: functional option to set the translate sensitivity
func WithTranslateSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.translateSensitivity = sensitivity
	}
}

// WithScaleSensitivity sets the distance travelled per WheelStep of Zoom input.
//
// Parameters:
//   - sensitivity: world units per wheel step
//
// Returns:
//   - CameraBuilderOption: functional option to set the scale sensitivity
func WithScaleSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.scaleSensitivity = sensitivity
	}
}

// WithRotateSensitivity sets the multiplier applied to orbit angles.
//
// Parameters:
//   - sensitivity: multiplier for the *AboutViewCenter angles
//
// Returns:
//   - CameraBuilderOption: functional option to set the rotate sensitivity
func WithRotateSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotateSensitivity = sensitivity
	}
}

// WithPositionChangedCallback registers the position-changed callback at construction.
//
// Parameters:
//   - callback: function receiving the new position
//
// Returns:
//   - CameraBuilderOption: functional option to set the callback
func WithPositionChangedCallback(callback func(position mgl32.Vec3)) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.onPositionChanged = callback
	}
}
