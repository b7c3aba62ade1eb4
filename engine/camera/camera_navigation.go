package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func (c *cameraImpl) Translate(vLocal mgl32.Vec3, option TranslationOption) {
	c.mu.Lock()
	c.translate(vLocal, option)
	c.unlockAndNotify(true)
}

func (c *cameraImpl) TranslateWorld(vWorld mgl32.Vec3, option TranslationOption) {
	c.mu.Lock()
	c.translateWorld(vWorld, option)
	c.unlockAndNotify(true)
}

func (c *cameraImpl) Zoom(size float32) {
	c.mu.Lock()
	moved := c.zoom(size)
	c.unlockAndNotify(moved)
}

// translate converts vLocal into a world-space delta along the camera's right, up and forward axes,
// applies it, and then re-derives the up vector so it stays perpendicular to the new viewing direction.
// Caller must hold the mutex.
func (c *cameraImpl) translate(vLocal mgl32.Vec3, option TranslationOption) {
	var vWorld mgl32.Vec3
	if !common.FuzzyIsNull(vLocal.X()) {
		x := common.Normalize(c.cameraToCenter.Cross(c.upVector))
		vWorld = vWorld.Add(x.Mul(vLocal.X() * c.translateSensitivity))
	}
	if !common.FuzzyIsNull(vLocal.Y()) {
		vWorld = vWorld.Add(c.upVector.Mul(vLocal.Y() * c.translateSensitivity))
	}
	if !common.FuzzyIsNull(vLocal.Z()) {
		z := common.Normalize(c.cameraToCenter)
		vWorld = vWorld.Add(z.Mul(vLocal.Z() * c.translateSensitivity))
	}

	c.applyWorldDelta(vWorld, option)
	c.orthonormalizeUp()
}

// translateWorld applies vWorld unchanged. The up vector is left alone so the roll is preserved.
// Caller must hold the mutex.
func (c *cameraImpl) translateWorld(vWorld mgl32.Vec3, option TranslationOption) {
	c.applyWorldDelta(vWorld, option)
}

func (c *cameraImpl) applyWorldDelta(vWorld mgl32.Vec3, option TranslationOption) {
	c.position = c.position.Add(vWorld)
	if option == TranslateViewCenter {
		c.viewCenter = c.viewCenter.Add(vWorld)
	}
	c.cameraToCenter = c.viewCenter.Sub(c.position)
	c.markViewDirty()
}

// zoom moves the position along the viewing direction. It reports false and leaves the camera
// untouched when the move would reach or pass the view center. Landing exactly on the center is
// rejected too, unlike a plain sign check, so cameraToCenter never becomes zero through a zoom.
// Caller must hold the mutex.
func (c *cameraImpl) zoom(size float32) bool {
	prevPosition, prevCameraToCenter := c.position, c.cameraToCenter

	step := common.Normalize(c.cameraToCenter).Mul(c.scaleSensitivity * math32.Abs(size/WheelStep))
	if size > 0 {
		c.position = c.position.Add(step)
	} else {
		c.position = c.position.Sub(step)
	}
	c.cameraToCenter = c.viewCenter.Sub(c.position)

	if c.cameraToCenter.Dot(prevCameraToCenter) <= 0 {
		c.position = prevPosition
		c.cameraToCenter = prevCameraToCenter
		return false
	}

	c.markViewDirty()
	return true
}

// orthonormalizeUp re-derives the up vector from the current viewing direction:
// right = cross(forward, up), up = normalize(cross(right, forward)).
// When up is parallel to a non-zero viewing direction, up is rebuilt from the world axis least
// aligned with it. With a zero viewing direction the previous up vector is kept.
// Caller must hold the mutex.
func (c *cameraImpl) orthonormalizeUp() {
	x := common.Normalize(c.cameraToCenter.Cross(c.upVector))
	up := common.Normalize(x.Cross(c.cameraToCenter))
	if up != (mgl32.Vec3{}) {
		c.upVector = up
		return
	}
	forward := common.Normalize(c.cameraToCenter)
	if forward == (mgl32.Vec3{}) {
		return
	}
	axis := leastAlignedAxis(forward)
	c.upVector = common.Normalize(axis.Sub(forward.Mul(axis.Dot(forward))))
}

// leastAlignedAxis returns the world basis vector with the smallest absolute component in v.
func leastAlignedAxis(v mgl32.Vec3) mgl32.Vec3 {
	ax, ay, az := math32.Abs(v.X()), math32.Abs(v.Y()), math32.Abs(v.Z())
	switch {
	case ax <= ay && ax <= az:
		return mgl32.Vec3{1, 0, 0}
	case ay <= az:
		return mgl32.Vec3{0, 1, 0}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}
