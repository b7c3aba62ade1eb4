package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFuzzyCompare(t *testing.T) {
	testCases := map[string]struct {
		a, b float64
		want bool
	}{
		"Equal":           {a: 60, b: 60, want: true},
		"WithinRelative":  {a: 100000, b: 100000.5, want: true},
		"OutsideRelative": {a: 1, b: 1.001, want: false},
		"ZeroAndZero":     {a: 0, b: 0, want: true},
		"ZeroAndTiny":     {a: 0, b: 1e-12, want: false},
		"OppositeSigns":   {a: -1, b: 1, want: false},
	}
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := FuzzyCompare(tt.a, tt.b); got != tt.want {
				t.Errorf("FuzzyCompare(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := FuzzyCompare(float32(tt.a), float32(tt.b)); got != tt.want {
				t.Errorf("float32 FuzzyCompare(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFuzzyIsNull(t *testing.T) {
	testCases := map[string]struct {
		v    float32
		want bool
	}{
		"Zero":         {v: 0, want: true},
		"Tiny":         {v: 1e-7, want: true},
		"NegativeTiny": {v: -5e-6, want: true},
		"Small":        {v: 1e-3, want: false},
		"Negative":     {v: -1, want: false},
	}
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := FuzzyIsNull(tt.v); got != tt.want {
				t.Errorf("FuzzyIsNull(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	testCases := map[string]struct {
		v, want mgl32.Vec3
	}{
		"Zero":   {v: mgl32.Vec3{}, want: mgl32.Vec3{}},
		"Axis":   {v: mgl32.Vec3{0, 0, 5}, want: mgl32.Vec3{0, 0, 1}},
		"Unit":   {v: mgl32.Vec3{1, 0, 0}, want: mgl32.Vec3{1, 0, 0}},
		"Skewed": {v: mgl32.Vec3{3, 4, 0}, want: mgl32.Vec3{0.6, 0.8, 0}},
	}
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := Normalize(tt.v); !got.ApproxEqualThreshold(tt.want, 1e-6) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestAxisAngle(t *testing.T) {
	if q := AxisAngle(mgl32.Vec3{}, 45); q != mgl32.QuatIdent() {
		t.Errorf("zero axis expected identity, got %v", q)
	}

	q := AxisAngle(mgl32.Vec3{0, 3, 0}, 90)
	got := q.Rotate(mgl32.Vec3{0, 0, 1})
	if !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("90 degrees about +Y expected to take +Z to +X, got %v", got)
	}
	if l := q.Len(); math.Abs(float64(l-1)) > 1e-6 {
		t.Errorf("expected unit quaternion, got length %v", l)
	}
}

func TestLookAt(t *testing.T) {
	testCases := map[string]struct {
		eye, center, up mgl32.Vec3
	}{
		"Identity": {eye: mgl32.Vec3{}, center: mgl32.Vec3{0, 0, 1}, up: mgl32.Vec3{0, 1, 0}},
		"Offset":   {eye: mgl32.Vec3{3, 2, -5}, center: mgl32.Vec3{0, 0, 0}, up: mgl32.Vec3{0, 1, 0}},
		"Tilted":   {eye: mgl32.Vec3{1, 1, 1}, center: mgl32.Vec3{-2, 0, 4}, up: mgl32.Vec3{0.2, 1, 0}},
	}
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			want := mgl32.LookAtV(tt.eye, tt.center, tt.up)
			if got := LookAt(tt.eye, tt.center, tt.up); !got.ApproxEqualThreshold(want, 1e-5) {
				t.Errorf("LookAt expected\n%v\ngot\n%v", want, got)
			}
		})
	}

	if got := LookAt(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}); got != mgl32.Ident4() {
		t.Errorf("coincident eye and center expected identity, got %v", got)
	}
}

func TestPerspective(t *testing.T) {
	want := mgl32.Perspective(mgl32.DegToRad(60), 1.5, 0.1, 100)
	if got := Perspective(60, 1.5, 0.1, 100); !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Perspective expected\n%v\ngot\n%v", want, got)
	}

	degenerate := map[string][4]float32{
		"ZeroAspect":      {60, 0, 0.1, 100},
		"NearEqualsFar":   {60, 1, 10, 10},
		"ZeroFieldOfView": {0, 1, 0.1, 100},
	}
	for name, p := range degenerate {
		t.Run(name, func(t *testing.T) {
			if got := Perspective(p[0], p[1], p[2], p[3]); got != mgl32.Ident4() {
				t.Errorf("expected identity, got %v", got)
			}
		})
	}
}

func TestViewportMatrix(t *testing.T) {
	m := ViewportMatrix(0, 0, 200, 100)

	testCases := map[string]struct {
		ndc  mgl32.Vec4
		want mgl32.Vec3
	}{
		"BottomLeftNear": {ndc: mgl32.Vec4{-1, -1, -1, 1}, want: mgl32.Vec3{0, 0, 0}},
		"TopRightFar":    {ndc: mgl32.Vec4{1, 1, 1, 1}, want: mgl32.Vec3{200, 100, 1}},
	}
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := m.Mul4x1(tt.ndc).Vec3(); !got.ApproxEqualThreshold(tt.want, 1e-5) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
