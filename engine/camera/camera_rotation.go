package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Sign conventions: the rotation builders negate the angle for tilt and roll, and the camera-relative
// Pan/Roll entry points negate the caller's angle before building. Net effect per operator:
//
//	Tilt(a)                 -a about right      Pan(a)                -a about up
//	Roll(a)                 +a about forward    TiltAboutViewCenter   +a*s about right
//	PanAboutViewCenter      +a*s about up       RollAboutViewCenter   -a*s about forward
//
// where s is the rotate sensitivity.

func (c *cameraImpl) TiltRotation(angle float32) mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tiltRotation(angle)
}

func (c *cameraImpl) PanRotation(angle float32) mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panRotation(angle)
}

func (c *cameraImpl) PanRotationAbout(angle float32, axis mgl32.Vec3) mgl32.Quat {
	return common.AxisAngle(axis, angle)
}

func (c *cameraImpl) RollRotation(angle float32) mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rollRotation(angle)
}

func (c *cameraImpl) Tilt(angle float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotate(c.tiltRotation(angle))
}

func (c *cameraImpl) Pan(angle float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotate(c.panRotation(-angle))
}

func (c *cameraImpl) PanAbout(angle float32, axis mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotate(common.AxisAngle(axis, -angle))
}

func (c *cameraImpl) Roll(angle float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotate(c.rollRotation(-angle))
}

func (c *cameraImpl) TiltAboutViewCenter(angle float32) {
	c.mu.Lock()
	q := c.tiltRotation(-angle * c.rotateSensitivity)
	c.unlockAndNotify(c.rotateAboutViewCenter(q))
}

func (c *cameraImpl) PanAboutViewCenter(angle float32) {
	c.mu.Lock()
	q := c.panRotation(angle * c.rotateSensitivity)
	c.unlockAndNotify(c.rotateAboutViewCenter(q))
}

func (c *cameraImpl) PanAboutViewCenterAxis(angle float32, axis mgl32.Vec3) {
	c.mu.Lock()
	q := common.AxisAngle(axis, angle*c.rotateSensitivity)
	c.unlockAndNotify(c.rotateAboutViewCenter(q))
}

func (c *cameraImpl) RollAboutViewCenter(angle float32) {
	c.mu.Lock()
	q := c.rollRotation(angle * c.rotateSensitivity)
	c.unlockAndNotify(c.rotateAboutViewCenter(q))
}

func (c *cameraImpl) Rotate(q mgl32.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotate(q)
}

func (c *cameraImpl) RotateAboutViewCenter(q mgl32.Quat) {
	c.mu.Lock()
	c.unlockAndNotify(c.rotateAboutViewCenter(q))
}

// --- internal helpers ---
// All helpers below require the caller to hold the mutex.

// tiltRotation rotates by -angle about the local right axis, cross(up, forward).
func (c *cameraImpl) tiltRotation(angle float32) mgl32.Quat {
	xBasis := common.Normalize(c.upVector.Cross(common.Normalize(c.cameraToCenter)))
	return common.AxisAngle(xBasis, -angle)
}

func (c *cameraImpl) panRotation(angle float32) mgl32.Quat {
	return common.AxisAngle(c.upVector, angle)
}

// rollRotation rotates by -angle about the camera-to-center vector.
func (c *cameraImpl) rollRotation(angle float32) mgl32.Quat {
	return common.AxisAngle(c.cameraToCenter, -angle)
}

// rotate turns the viewing direction and up vector by q with the camera position as pivot.
// The position does not change, so no notification is due.
func (c *cameraImpl) rotate(q mgl32.Quat) {
	c.upVector = q.Rotate(c.upVector)
	c.cameraToCenter = q.Rotate(c.cameraToCenter)
	c.viewCenter = c.position.Add(c.cameraToCenter)
	c.orthonormalizeUp()
	c.markViewDirty()
}

// rotateAboutViewCenter orbits the position around the fixed view center by q.
// It returns false, with every field untouched, when the rotated up vector's y component
// would fall below GimbalThreshold.
func (c *cameraImpl) rotateAboutViewCenter(q mgl32.Quat) bool {
	up := q.Rotate(c.upVector)
	if up.Y() < GimbalThreshold {
		return false
	}
	c.upVector = up
	c.cameraToCenter = q.Rotate(c.cameraToCenter)
	c.position = c.viewCenter.Sub(c.cameraToCenter)
	c.orthonormalizeUp()
	c.markViewDirty()
	return true
}
