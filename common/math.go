package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// fuzzyScale is the relative precision used by FuzzyCompare. Two values compare equal when their
// difference is at most 1/fuzzyScale of the smaller magnitude (five significant decimal digits).
const fuzzyScale = 100000

// FuzzyEpsilon is the absolute threshold below which FuzzyIsNull treats a value as zero.
const FuzzyEpsilon = 0.00001

// Abs returns the absolute value of v.
// math32.Abs only accepts float32; this generic form backs FuzzyCompare and FuzzyIsNull for both widths.
//
// Parameters:
//   - v: the value
//
// Returns:
//   - T: |v|
func Abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// FuzzyCompare reports whether a and b are equal within a relative tolerance.
// The comparison is relative, so it never matches a non-zero value against exactly zero.
//
// Parameters:
//   - a, b: the values to compare
//
// Returns:
//   - bool: true if a and b are equal within tolerance
func FuzzyCompare[T constraints.Float](a, b T) bool {
	return Abs(a-b)*fuzzyScale <= min(Abs(a), Abs(b))
}

// FuzzyIsNull reports whether v is within FuzzyEpsilon of zero.
//
// Parameters:
//   - v: the value to test
//
// Returns:
//   - bool: true if |v| <= FuzzyEpsilon
func FuzzyIsNull[T constraints.Float](v T) bool {
	return Abs(v) <= FuzzyEpsilon
}

// IsNullVec3 reports whether every component of v is fuzzy-null.
func IsNullVec3(v mgl32.Vec3) bool {
	return FuzzyIsNull(v[0]) && FuzzyIsNull(v[1]) && FuzzyIsNull(v[2])
}

// Normalize returns v scaled to unit length.
// A vector whose length is already fuzzy-equal to one is returned unchanged, and a zero-length
// vector yields the zero vector instead of propagating NaN.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the unit vector, or the zero vector
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	lenSq := v.Dot(v)
	if FuzzyIsNull(lenSq - 1) {
		return v
	}
	if FuzzyIsNull(lenSq) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / math32.Sqrt(lenSq))
}

// AxisAngle builds a unit quaternion rotating by angle degrees around axis.
// The axis does not need to be normalized. A zero-length axis yields the identity rotation.
//
// Parameters:
//   - axis: rotation axis in world space
//   - angle: rotation angle in degrees (counter-clockwise looking down the axis)
//
// Returns:
//   - mgl32.Quat: the rotation quaternion
func AxisAngle(axis mgl32.Vec3, angle float32) mgl32.Quat {
	axis = Normalize(axis)
	if axis == (mgl32.Vec3{}) {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(mgl32.DegToRad(angle), axis).Normalize()
}

// Perspective creates an OpenGL-convention perspective projection matrix (clip depth [-1, 1]).
// Degenerate parameters (zero aspect, zero field of view, or near == far) produce the identity
// matrix rather than a matrix containing Inf or NaN.
//
// Parameters:
//   - fovY: vertical field of view in degrees
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	if near == far || aspect == 0 {
		return mgl32.Ident4()
	}
	if math32.Sin(mgl32.DegToRad(fovY)/2) == 0 {
		return mgl32.Ident4()
	}
	return mgl32.Perspective(mgl32.DegToRad(fovY), aspect, near, far)
}

// ViewportMatrix creates the viewport transform mapping normalized device coordinates
// ([-1, 1] on x and y, [-1, 1] depth) onto the pixel rectangle starting at (left, bottom)
// with depth mapped to [0, 1].
//
// Parameters:
//   - left, bottom: lower-left corner of the viewport in pixels
//   - width, height: viewport size in pixels
//
// Returns:
//   - mgl32.Mat4: the viewport matrix (column-major)
func ViewportMatrix(left, bottom, width, height float32) mgl32.Mat4 {
	w2 := width / 2
	h2 := height / 2
	return mgl32.Mat4{
		w2, 0, 0, 0,
		0, h2, 0, 0,
		0, 0, 0.5, 0,
		left + w2, bottom + h2, 0.5, 1,
	}
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
// When eye and center coincide the identity matrix is returned, and an up vector parallel to the
// viewing direction collapses the side axis to zero instead of producing NaN.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
//
// Returns:
//   - mgl32.Mat4: the view matrix (column-major)
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	z := eye.Sub(center)
	if IsNullVec3(z) {
		return mgl32.Ident4()
	}
	z = Normalize(z)
	x := Normalize(up.Cross(z))
	y := z.Cross(x)

	return mgl32.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}
