package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/Carmen-Shannon/oxy-camera/engine/profiler"
	"github.com/Carmen-Shannon/oxy-camera/engine/window"
)

// engine implements the Engine interface.
// Coordinates the engine tick, render, and window threads around a single camera controller.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window     window.Window
	controller camera.CameraController

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the engine.
// It forwards window input to the camera controller, keeps the camera's viewport and aspect ratio in
// sync with the window, and runs the tick and render loops.
type Engine interface {
	// Window returns the underlying window, or nil for a headless engine.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Controller returns the camera controller, or nil if none was configured.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController

	// Camera returns the controller's camera, or nil if no controller was configured.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick, after the controller update.
	// Must be called before Run.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame. This is where the camera
	// matrices are read and uploaded. Must be called before Run.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets the render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop. Must be called before Run.
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the engine loops and blocks until the window closes or Quit is called.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// When both a window and a controller are configured, window input is routed to the controller
// and window resizes update the camera's aspect ratio and viewport.
//
// Parameters:
//   - options: functional options for engine configuration (window, controller, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		profiler:         profiler.NewProfiler(),
		engineTickRate:   time.Second / 60,
		renderFrameLimit: time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil && e.controller != nil {
		e.bindWindow()
	}

	return e
}

// bindWindow routes window events to the controller and applies the initial window size.
func (e *engine) bindWindow() {
	ctrl := e.controller
	e.window.SetResizeCallback(e.applyViewport)
	e.window.SetScrollCallback(ctrl.Scroll)
	e.window.SetKeyDownCallback(ctrl.KeyDown)
	e.window.SetKeyUpCallback(ctrl.KeyUp)
	e.window.SetMouseDownCallback(ctrl.MouseDown)
	e.window.SetMouseUpCallback(ctrl.MouseUp)
	e.window.SetMouseMoveCallback(ctrl.MouseMove)
	e.applyViewport(e.window.Width(), e.window.Height())
}

// applyViewport matches the camera viewport and aspect ratio to a framebuffer size.
// Zero sizes (minimized windows) are ignored.
func (e *engine) applyViewport(width, height int) {
	if e.controller == nil || width <= 0 || height <= 0 {
		return
	}
	cam := e.controller.Camera()
	cam.SetAspectRatio(float32(width) / float32(height))
	cam.SetViewPort(0, 0, float32(width), float32(height))
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Camera() camera.Camera {
	if e.controller == nil {
		return nil
	}
	return e.controller.Camera()
}

// Run launches the engine goroutines. With a window it runs the message loop on the calling thread;
// headless engines block until Quit. All goroutines have exited when Run returns.
func (e *engine) Run() {
	e.running.Store(true)
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handle launches the engine, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Each tick updates the controller (held-key movement) and then fires the tick callback.
// Listens for dynamic rate changes via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.controller != nil {
				e.controller.Update(dt)
			}
			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleRender runs the render loop in its own goroutine, capped by renderFrameLimit.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.profilingEnabled.Load() && e.profiler != nil {
				var stats camera.CacheStats
				if cam := e.Camera(); cam != nil {
					stats = cam.CacheStats()
				}
				e.profiler.Tick(stats)
			}

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					select {
					case <-e.quitChannel:
						return
					case <-time.After(remaining):
					}
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}

	// Non-blocking send - if channel is full, replace the pending value
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

// tickInterval converts a rate in Hz to a ticker period, defaulting to 60Hz for non-positive rates.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
