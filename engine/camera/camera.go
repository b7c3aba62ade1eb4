package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionType identifies how the projection matrix is built.
type ProjectionType int

const (
	// ProjectionTypeNone means no projection has been configured; the projection matrix is identity.
	ProjectionTypeNone ProjectionType = iota
	// ProjectionTypePerspective builds the projection from field of view, aspect ratio and clip planes.
	ProjectionTypePerspective
)

// TranslationOption selects whether a translation moves the view center along with the camera.
type TranslationOption int

const (
	// TranslateViewCenter moves the view center by the same world delta as the position,
	// keeping the camera-to-center vector fixed.
	TranslateViewCenter TranslationOption = iota
	// DontTranslateViewCenter moves only the position; the distance and direction to the
	// view center change.
	DontTranslateViewCenter
)

const (
	// WheelStep is the zoom input that corresponds to one scaleSensitivity unit of travel
	// (one notch of a typical mouse wheel).
	WheelStep float32 = 120

	// GimbalThreshold is the minimum y component (dimensionless, the up vector is near unit length)
	// the up vector may have after an orbit about the view center. Orbits that would push it lower
	// are rejected.
	GimbalThreshold float32 = 0.1
)

// CacheStats counts matrix rebuilds since the camera was created.
type CacheStats struct {
	ViewRebuilds           uint64
	ViewProjectionRebuilds uint64
	ProjectionRebuilds     uint64
	ViewPortRebuilds       uint64
}

type cameraImpl struct {
	mu *sync.Mutex

	position       mgl32.Vec3
	viewCenter     mgl32.Vec3
	upVector       mgl32.Vec3
	cameraToCenter mgl32.Vec3

	projectionType ProjectionType
	fieldOfView    float32 // degrees
	aspectRatio    float32
	nearPlane      float32
	farPlane       float32

	left, bottom, width, height float32

	translateSensitivity float32
	scaleSensitivity     float32
	rotateSensitivity    float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
	viewPortMatrix       mgl32.Mat4

	viewMatrixDirty           bool
	viewProjectionMatrixDirty bool

	stats CacheStats

	onPositionChanged func(position mgl32.Vec3)
}

// Camera defines the interface for the camera system.
// The camera owns the eye position, view center, up vector and projection parameters, derives the
// view and projection matrices on demand, and implements interactive navigation (translate, zoom,
// tilt, pan, roll) either about the camera itself or about the view center.
//
// All angles are in degrees. Every method is safe to call from multiple goroutines; each call is
// applied atomically with respect to the others.
type Camera interface {
	// Position returns the eye position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	Position() mgl32.Vec3

	// SetPosition sets the eye position and refreshes the camera-to-center vector.
	//
	// Parameters:
	//   - position: world-space eye position
	SetPosition(position mgl32.Vec3)

	// ViewCenter returns the point the camera looks toward.
	//
	// Returns:
	//   - mgl32.Vec3: the view center
	ViewCenter() mgl32.Vec3

	// SetViewCenter sets the look-at point and refreshes the camera-to-center vector.
	//
	// Parameters:
	//   - viewCenter: world-space look-at point
	SetViewCenter(viewCenter mgl32.Vec3)

	// UpVector returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	UpVector() mgl32.Vec3

	// SetUpVector sets the up vector verbatim. It is not orthonormalized until the next
	// rotation or local translation.
	//
	// Parameters:
	//   - up: the new up vector
	SetUpVector(up mgl32.Vec3)

	// ViewVector returns the camera-to-center vector (view center minus position).
	//
	// Returns:
	//   - mgl32.Vec3: the un-normalized viewing direction
	ViewVector() mgl32.Vec3

	// ResetViewToIdentity places the camera at the origin looking down +Z with +Y up.
	ResetViewToIdentity()

	// ProjectionType returns how the projection matrix is currently built.
	//
	// Returns:
	//   - ProjectionType: the projection type
	ProjectionType() ProjectionType

	// SetPerspectiveProjection sets all perspective parameters, switches to a perspective
	// projection and rebuilds the projection matrix.
	//
	// Parameters:
	//   - fieldOfView: vertical field of view in degrees
	//   - aspectRatio: width / height
	//   - nearPlane: near clipping plane distance
	//   - farPlane: far clipping plane distance
	SetPerspectiveProjection(fieldOfView, aspectRatio, nearPlane, farPlane float32)

	// FieldOfView returns the vertical field of view in degrees.
	FieldOfView() float32

	// SetFieldOfView sets the vertical field of view in degrees.
	// Values fuzzy-equal to the current one are ignored.
	SetFieldOfView(fieldOfView float32)

	// AspectRatio returns the aspect ratio (width / height).
	AspectRatio() float32

	// SetAspectRatio sets the aspect ratio. Values fuzzy-equal to the current one are ignored.
	SetAspectRatio(aspectRatio float32)

	// NearPlane returns the near clipping plane distance.
	NearPlane() float32

	// SetNearPlane sets the near clipping plane distance. Values fuzzy-equal to the current one are ignored.
	SetNearPlane(nearPlane float32)

	// FarPlane returns the far clipping plane distance.
	FarPlane() float32

	// SetFarPlane sets the far clipping plane distance. Values fuzzy-equal to the current one are ignored.
	SetFarPlane(farPlane float32)

	// SetViewPort sets the pixel rectangle the camera renders into and rebuilds the viewport matrix.
	//
	// Parameters:
	//   - left, bottom: lower-left corner in pixels
	//   - width, height: size in pixels
	SetViewPort(left, bottom, width, height float32)

	// ViewPort returns the pixel rectangle set by SetViewPort.
	//
	// Returns:
	//   - left, bottom, width, height: the viewport rectangle
	ViewPort() (left, bottom, width, height float32)

	// ViewMatrix returns the look-at matrix for the current position, view center and up vector.
	// The matrix is rebuilt only when one of those changed since the last call.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view, rebuilt only when either changed.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// ViewPortMatrix returns the transform from normalized device coordinates to the viewport rectangle.
	//
	// Returns:
	//   - mgl32.Mat4: the viewport matrix
	ViewPortMatrix() mgl32.Mat4

	// Frustum returns the normalized frustum planes of the current view-projection matrix.
	//
	// Returns:
	//   - common.Frustum: the view frustum
	Frustum() common.Frustum

	// Translate moves the camera along its local axes (x = right, y = up, z = toward the view center),
	// scaled by the translate sensitivity, and re-orthonormalizes the up vector.
	//
	// Parameters:
	//   - vLocal: displacement in camera-local units
	//   - option: whether the view center moves with the camera
	Translate(vLocal mgl32.Vec3, option TranslationOption)

	// TranslateWorld moves the camera by a world-space displacement without touching the up vector.
	//
	// Parameters:
	//   - vWorld: displacement in world units
	//   - option: whether the view center moves with the camera
	TranslateWorld(vWorld mgl32.Vec3, option TranslationOption)

	// Zoom moves the camera toward (size > 0) or away from (size < 0) the view center by
	// scaleSensitivity * |size / WheelStep|. A zoom that would reach or cross the view center is ignored.
	// Landing exactly on the view center counts as reaching it, so the viewing direction never
	// collapses to zero through Zoom.
	//
	// Parameters:
	//   - size: signed zoom magnitude in wheel units
	Zoom(size float32)

	// TiltRotation returns the rotation used by Tilt: -angle about the camera's local right axis.
	TiltRotation(angle float32) mgl32.Quat

	// PanRotation returns the rotation used by Pan: angle about the up vector.
	PanRotation(angle float32) mgl32.Quat

	// PanRotationAbout returns angle about an arbitrary axis.
	PanRotationAbout(angle float32, axis mgl32.Vec3) mgl32.Quat

	// RollRotation returns the rotation used by Roll: -angle about the camera-to-center vector.
	RollRotation(angle float32) mgl32.Quat

	// Tilt rotates the viewing direction up or down around the camera position.
	Tilt(angle float32)

	// Pan rotates the viewing direction around the up vector at the camera position.
	Pan(angle float32)

	// PanAbout rotates the viewing direction around an arbitrary axis at the camera position.
	PanAbout(angle float32, axis mgl32.Vec3)

	// Roll rotates the up vector around the viewing direction.
	Roll(angle float32)

	// TiltAboutViewCenter orbits the camera vertically around the view center.
	// The angle is scaled by the rotate sensitivity.
	TiltAboutViewCenter(angle float32)

	// PanAboutViewCenter orbits the camera around the up vector through the view center.
	// The angle is scaled by the rotate sensitivity.
	PanAboutViewCenter(angle float32)

	// PanAboutViewCenterAxis orbits the camera around an arbitrary axis through the view center.
	// The angle is scaled by the rotate sensitivity.
	PanAboutViewCenterAxis(angle float32, axis mgl32.Vec3)

	// RollAboutViewCenter rolls the camera around the viewing direction while keeping the view center fixed.
	// The angle is scaled by the rotate sensitivity.
	RollAboutViewCenter(angle float32)

	// Rotate rotates the up vector and viewing direction by q around the camera position.
	// The view center swings around the camera.
	//
	// Parameters:
	//   - q: the rotation to apply
	Rotate(q mgl32.Quat)

	// RotateAboutViewCenter rotates the camera by q around the view center.
	// The rotation is rejected when the rotated up vector's y component falls below GimbalThreshold.
	//
	// Parameters:
	//   - q: the rotation to apply
	RotateAboutViewCenter(q mgl32.Quat)

	// TranslateSensitivity returns the multiplier applied to Translate input.
	TranslateSensitivity() float32

	// SetTranslateSensitivity sets the multiplier applied to Translate input.
	SetTranslateSensitivity(sensitivity float32)

	// ScaleSensitivity returns the distance travelled per WheelStep of Zoom input.
	ScaleSensitivity() float32

	// SetScaleSensitivity sets the distance travelled per WheelStep of Zoom input.
	SetScaleSensitivity(sensitivity float32)

	// RotateSensitivity returns the multiplier applied to the *AboutViewCenter angles.
	RotateSensitivity() float32

	// SetRotateSensitivity sets the multiplier applied to the *AboutViewCenter angles.
	SetRotateSensitivity(sensitivity float32)

	// SetPositionChangedCallback registers the function called after Translate, TranslateWorld, Zoom or
	// an orbit moves the camera position. The callback runs synchronously before the mutating call
	// returns, after the camera lock is released, so it may read from the camera.
	//
	// Parameters:
	//   - callback: function receiving the new position (or nil to disable)
	SetPositionChangedCallback(callback func(position mgl32.Vec3))

	// CacheStats returns how many times each cached matrix has been rebuilt.
	//
	// Returns:
	//   - CacheStats: the rebuild counters
	CacheStats() CacheStats
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera in the identity pose (at the origin, looking down +Z, +Y up)
// with unit sensitivities and no projection configured.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		translateSensitivity: 1.0,
		scaleSensitivity:     1.0,
		rotateSensitivity:    1.0,
		viewMatrix:           mgl32.Ident4(),
		projectionMatrix:     mgl32.Ident4(),
		viewProjectionMatrix: mgl32.Ident4(),
		viewPortMatrix:       mgl32.Ident4(),
	}
	c.resetViewToIdentity()
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPosition(position)
}

func (c *cameraImpl) ViewCenter() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewCenter
}

func (c *cameraImpl) SetViewCenter(viewCenter mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setViewCenter(viewCenter)
}

func (c *cameraImpl) UpVector() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.upVector
}

func (c *cameraImpl) SetUpVector(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setUpVector(up)
}

func (c *cameraImpl) ViewVector() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cameraToCenter
}

func (c *cameraImpl) ResetViewToIdentity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetViewToIdentity()
}

func (c *cameraImpl) ProjectionType() ProjectionType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionType
}

func (c *cameraImpl) SetPerspectiveProjection(fieldOfView, aspectRatio, nearPlane, farPlane float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPerspectiveProjection(fieldOfView, aspectRatio, nearPlane, farPlane)
}

func (c *cameraImpl) FieldOfView() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldOfView
}

func (c *cameraImpl) SetFieldOfView(fieldOfView float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setProjectionParameter(&c.fieldOfView, fieldOfView)
}

func (c *cameraImpl) AspectRatio() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspectRatio
}

func (c *cameraImpl) SetAspectRatio(aspectRatio float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setProjectionParameter(&c.aspectRatio, aspectRatio)
}

func (c *cameraImpl) NearPlane() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nearPlane
}

func (c *cameraImpl) SetNearPlane(nearPlane float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setProjectionParameter(&c.nearPlane, nearPlane)
}

func (c *cameraImpl) FarPlane() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.farPlane
}

func (c *cameraImpl) SetFarPlane(farPlane float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setProjectionParameter(&c.farPlane, farPlane)
}

func (c *cameraImpl) SetViewPort(left, bottom, width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setViewPort(left, bottom, width, height)
}

func (c *cameraImpl) ViewPort() (left, bottom, width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.bottom, c.width, c.height
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentViewMatrix()
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentViewProjectionMatrix()
}

func (c *cameraImpl) ViewPortMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewPortMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustumFromMatrix(c.currentViewProjectionMatrix())
}

func (c *cameraImpl) TranslateSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.translateSensitivity
}

func (c *cameraImpl) SetTranslateSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translateSensitivity = sensitivity
}

func (c *cameraImpl) ScaleSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scaleSensitivity
}

func (c *cameraImpl) SetScaleSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scaleSensitivity = sensitivity
}

func (c *cameraImpl) RotateSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotateSensitivity
}

func (c *cameraImpl) SetRotateSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotateSensitivity = sensitivity
}

func (c *cameraImpl) SetPositionChangedCallback(callback func(position mgl32.Vec3)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPositionChanged = callback
}

func (c *cameraImpl) CacheStats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// --- internal helpers ---
// All helpers below require the caller to hold the mutex.

func (c *cameraImpl) setPosition(position mgl32.Vec3) {
	c.position = position
	c.cameraToCenter = c.viewCenter.Sub(position)
	c.markViewDirty()
}

func (c *cameraImpl) setViewCenter(viewCenter mgl32.Vec3) {
	c.viewCenter = viewCenter
	c.cameraToCenter = viewCenter.Sub(c.position)
	c.markViewDirty()
}

func (c *cameraImpl) setUpVector(up mgl32.Vec3) {
	c.upVector = up
	c.markViewDirty()
}

func (c *cameraImpl) resetViewToIdentity() {
	c.setPosition(mgl32.Vec3{0, 0, 0})
	c.setViewCenter(mgl32.Vec3{0, 0, 1})
	c.setUpVector(mgl32.Vec3{0, 1, 0})
}

// markViewDirty invalidates the view matrix and everything derived from it.
func (c *cameraImpl) markViewDirty() {
	c.viewMatrixDirty = true
	c.viewProjectionMatrixDirty = true
}

func (c *cameraImpl) setPerspectiveProjection(fieldOfView, aspectRatio, nearPlane, farPlane float32) {
	c.fieldOfView = fieldOfView
	c.aspectRatio = aspectRatio
	c.nearPlane = nearPlane
	c.farPlane = farPlane
	c.projectionType = ProjectionTypePerspective
	c.updatePerspectiveProjection()
}

// setProjectionParameter assigns value to field unless they are fuzzy-equal, then rebuilds the
// projection if it is a perspective projection.
func (c *cameraImpl) setProjectionParameter(field *float32, value float32) {
	if common.FuzzyCompare(*field, value) {
		return
	}
	*field = value
	if c.projectionType == ProjectionTypePerspective {
		c.updatePerspectiveProjection()
	}
}

func (c *cameraImpl) updatePerspectiveProjection() {
	c.projectionMatrix = common.Perspective(c.fieldOfView, c.aspectRatio, c.nearPlane, c.farPlane)
	c.viewProjectionMatrixDirty = true
	c.stats.ProjectionRebuilds++
}

func (c *cameraImpl) setViewPort(left, bottom, width, height float32) {
	c.left = left
	c.bottom = bottom
	c.width = width
	c.height = height
	c.viewPortMatrix = common.ViewportMatrix(left, bottom, width, height)
	c.stats.ViewPortRebuilds++
}

func (c *cameraImpl) currentViewMatrix() mgl32.Mat4 {
	if c.viewMatrixDirty {
		c.viewMatrix = common.LookAt(c.position, c.viewCenter, c.upVector)
		c.viewMatrixDirty = false
		c.stats.ViewRebuilds++
	}
	return c.viewMatrix
}

func (c *cameraImpl) currentViewProjectionMatrix() mgl32.Mat4 {
	if c.viewMatrixDirty || c.viewProjectionMatrixDirty {
		c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.currentViewMatrix())
		c.viewProjectionMatrixDirty = false
		c.stats.ViewProjectionRebuilds++
	}
	return c.viewProjectionMatrix
}

// unlockAndNotify releases the mutex and, when moved is true, reports the current position to the
// position-changed callback. Caller must hold the mutex; it is released on return.
func (c *cameraImpl) unlockAndNotify(moved bool) {
	position, callback := c.position, c.onPositionChanged
	c.mu.Unlock()
	if moved && callback != nil {
		callback(position)
	}
}
