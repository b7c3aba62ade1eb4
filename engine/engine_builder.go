package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/Carmen-Shannon/oxy-camera/engine/profiler"
	"github.com/Carmen-Shannon/oxy-camera/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfilerOptions configures the profiler used when profiling is enabled.
//
// Parameters:
//   - options: profiler options such as profiler.WithLogger or profiler.WithUpdateInterval
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfilerOptions(options ...profiler.ProfilerOption) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = profiler.NewProfiler(options...)
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// The controller and tick callback are updated at this rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(fps)
	}
}

// WithWindow sets the window whose input drives the controller and whose resizes update the camera.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithController sets the camera controller driven by window input and the tick loop.
//
// Parameters:
//   - ctrl: the controller (its camera becomes the engine's camera)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(ctrl camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = ctrl
	}
}

// WithRenderFrameLimit sets the render loop frame rate cap in frames per second.
// Pass 0 to uncap the render loop.
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped, default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
