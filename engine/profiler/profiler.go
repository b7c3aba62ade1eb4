package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
)

// Profiler tracks frame rate, camera matrix rebuild rates and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	logger         *log.Logger
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastStats      camera.CacheStats
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often statistics are logged.
//
// Parameters:
//   - interval: time between log lines
//
// Returns:
//   - ProfilerOption: option function to apply
func WithUpdateInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithLogger sets the logger statistics are written to. Defaults to the standard logger.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		p.logger = logger
	}
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		logger:         log.Default(),
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, per-second view and view-projection rebuilds, projection and viewport
// rebuilds since the last log line, heap usage and GC count.
//
// Parameters:
//   - stats: the camera's current rebuild counters
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(stats camera.CacheStats) bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	seconds := elapsed.Seconds()
	if seconds <= 0 {
		seconds = 1
	}
	fps := float64(p.frameCount) / seconds
	viewRate := float64(stats.ViewRebuilds-p.lastStats.ViewRebuilds) / seconds
	viewProjRate := float64(stats.ViewProjectionRebuilds-p.lastStats.ViewProjectionRebuilds) / seconds
	projections := stats.ProjectionRebuilds - p.lastStats.ProjectionRebuilds
	viewPorts := stats.ViewPortRebuilds - p.lastStats.ViewPortRebuilds

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024

	p.logger.Printf("[Profiler] FPS: %.2f | View rebuilds: %.1f/s | ViewProj rebuilds: %.1f/s | Projection rebuilds: %d | Viewport rebuilds: %d | Heap: %.2f MB | GC: %d",
		fps, viewRate, viewProjRate, projections, viewPorts, allocMB, p.memStats.NumGC)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastStats = stats
	return true
}
