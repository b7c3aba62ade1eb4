package culling

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a world-space bounding sphere.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Culler tests bounding volumes against a camera frustum.
// Large inputs are split into batches that run on a reusable worker pool.
type Culler interface {
	// Cull reports, per sphere, whether it is at least partially inside the frustum.
	//
	// Parameters:
	//   - frustum: the frustum to test against
	//   - spheres: the bounding spheres
	//
	// Returns:
	//   - []bool: visibility flags, index-aligned with spheres
	Cull(frustum common.Frustum, spheres []Sphere) []bool

	// CullCamera is Cull against the camera's current view-projection frustum.
	//
	// Parameters:
	//   - cam: the camera providing the frustum
	//   - spheres: the bounding spheres
	//
	// Returns:
	//   - []bool: visibility flags, index-aligned with spheres
	CullCamera(cam camera.Camera, spheres []Sphere) []bool

	// Workers returns the number of pool workers.
	//
	// Returns:
	//   - int: the configured worker count
	Workers() int

	// Close stops the worker pool. The culler must not be used afterwards.
	Close()
}

type culler struct {
	// pool manages a bounded set of reusable goroutines. Workers persist across frames,
	// avoiding per-frame goroutine spawn/teardown overhead.
	pool      worker.DynamicWorkerPool
	workers   int
	batchSize int
	closeOnce sync.Once
}

var _ Culler = &culler{}

// CullerOption is a functional option for configuring a Culler.
type CullerOption func(*culler)

// WithWorkers sets the number of pool workers. Values <= 0 keep the default (NumCPU-1, at least 1).
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - CullerOption: option function to apply
func WithWorkers(n int) CullerOption {
	return func(c *culler) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithBatchSize sets how many spheres a single task tests. Inputs no larger than one batch
// are tested on the calling goroutine.
//
// Parameters:
//   - n: spheres per task (values <= 0 keep the default of 256)
//
// Returns:
//   - CullerOption: option function to apply
func WithBatchSize(n int) CullerOption {
	return func(c *culler) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// NewCuller creates a Culler backed by a worker pool.
//
// Parameters:
//   - options: functional options to configure the culler
//
// Returns:
//   - Culler: the newly created culler
func NewCuller(options ...CullerOption) Culler {
	c := &culler{
		workers:   max(runtime.NumCPU()-1, 1),
		batchSize: 256,
	}
	for _, option := range options {
		option(c)
	}

	// Initialize the pool after options so WithWorkers can override the default.
	c.pool = worker.NewDynamicWorkerPool(c.workers, 4*c.workers, time.Second)
	return c
}

func (c *culler) Cull(frustum common.Frustum, spheres []Sphere) []bool {
	visible := make([]bool, len(spheres))
	if len(spheres) <= c.batchSize {
		cullRange(frustum, spheres, visible)
		return visible
	}

	// pool.Wait() blocks until workers idle-exit, so a WaitGroup provides the per-call barrier.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(spheres); start += c.batchSize {
		end := min(start+c.batchSize, len(spheres))
		wg.Add(1)
		batch, out := spheres[start:end], visible[start:end]
		c.pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				cullRange(frustum, batch, out)
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
	return visible
}

func (c *culler) CullCamera(cam camera.Camera, spheres []Sphere) []bool {
	return c.Cull(cam.Frustum(), spheres)
}

func (c *culler) Workers() int {
	return c.workers
}

func (c *culler) Close() {
	c.closeOnce.Do(c.pool.Stop)
}

// cullRange writes one visibility flag per sphere into out. Batches never overlap.
func cullRange(frustum common.Frustum, spheres []Sphere, out []bool) {
	for i, s := range spheres {
		out[i] = frustum.IntersectsSphere(s.Center, s.Radius)
	}
}
