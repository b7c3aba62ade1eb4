package culling

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCullCamera(t *testing.T) {
	// Identity pose looks down +Z.
	cam := camera.NewCamera(camera.WithPerspective(90, 1, 0.5, 50))

	spheres := []Sphere{
		{Center: mgl32.Vec3{0, 0, 10}, Radius: 1},
		{Center: mgl32.Vec3{0, 0, -10}, Radius: 1},
		{Center: mgl32.Vec3{0, 0, 80}, Radius: 1},
		{Center: mgl32.Vec3{0, 0, 55}, Radius: 10},
		{Center: mgl32.Vec3{30, 0, 10}, Radius: 1},
	}
	want := []bool{true, false, false, true, false}

	testCases := map[string][]CullerOption{
		"Inline":  nil,
		"Batched": {WithWorkers(3), WithBatchSize(2)},
	}
	for name, options := range testCases {
		t.Run(name, func(t *testing.T) {
			c := NewCuller(options...)
			defer c.Close()

			got := c.CullCamera(cam, spheres)
			if len(got) != len(want) {
				t.Fatalf("expected %d results, got %d", len(want), len(got))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("sphere %d at %v: visible = %v, want %v", i, spheres[i].Center, got[i], want[i])
				}
			}
		})
	}
}

func TestCullLargeBatch(t *testing.T) {
	cam := camera.NewCamera(camera.WithPerspective(60, 1, 0.1, 100))
	c := NewCuller(WithWorkers(4), WithBatchSize(16))
	defer c.Close()

	spheres := make([]Sphere, 1000)
	for i := range spheres {
		z := float32(5)
		if i%2 == 1 {
			z = -5
		}
		spheres[i] = Sphere{Center: mgl32.Vec3{0, 0, z}, Radius: 0.5}
	}

	got := c.CullCamera(cam, spheres)
	for i, v := range got {
		if v != (i%2 == 0) {
			t.Fatalf("sphere %d: visible = %v", i, v)
		}
	}
	if c.Workers() != 4 {
		t.Errorf("expected 4 workers, got %d", c.Workers())
	}
}

func TestCullEmpty(t *testing.T) {
	c := NewCuller()
	defer c.Close()

	if got := c.CullCamera(camera.NewCamera(), nil); len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
}
