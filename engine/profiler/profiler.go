package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler is the viewer's frame clock. Tick once per frame to get the delta time the
// camera and input consume; when logging is enabled it also reports frame rate and
// memory statistics at a fixed interval.
type Profiler struct {
	now func() time.Time

	lastFrame time.Time
	deltaTime float32
	started   bool

	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	fps            float64
	logging        bool

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithLogging enables the periodic stats log line.
//
// Parameters:
//   - enabled: whether to log stats each interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogging(enabled bool) ProfilerOption {
	return func(p *Profiler) {
		p.logging = enabled
	}
}

// WithInterval sets how often frame rate is sampled (and logged when enabled).
//
// Parameters:
//   - interval: sampling interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithClock replaces the wall clock, for deterministic timing.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second; logging is off.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame. The first tick returns 0.
//
// Returns:
//   - float32: seconds elapsed since the previous tick
func (p *Profiler) Tick() float32 {
	currentTime := p.now()
	if !p.started {
		p.started = true
		p.lastFrame = currentTime
		p.lastTime = currentTime
		p.deltaTime = 0
		return 0
	}

	p.deltaTime = float32(currentTime.Sub(p.lastFrame).Seconds())
	p.lastFrame = currentTime
	p.frameCount++

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed >= p.updateInterval {
		p.fps = float64(p.frameCount) / elapsed.Seconds()
		if p.logging {
			p.logStats(elapsed)
		}
		p.frameCount = 0
		p.lastTime = currentTime
	}

	return p.deltaTime
}

// DeltaTime returns the delta computed by the last Tick.
//
// Returns:
//   - float32: seconds between the last two ticks
func (p *Profiler) DeltaTime() float32 {
	return p.deltaTime
}

// FPS returns the frame rate measured over the last completed interval.
//
// Returns:
//   - float64: frames per second, 0 before the first interval completes
func (p *Profiler) FPS() float64 {
	return p.fps
}

// SetLogging toggles the periodic stats log line.
//
// Parameters:
//   - enabled: whether to log stats each interval
func (p *Profiler) SetLogging(enabled bool) {
	p.logging = enabled
}

// logStats writes FPS, frame time and memory statistics to the log.
func (p *Profiler) logStats(elapsed time.Duration) {
	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
	}

	log.Printf("[Profiler] FPS: %.2f | Frame Time: %.3f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs) | Sys: %.2f MB",
		p.fps, float64(p.deltaTime)*1000, allocMB, allocRateMB, gcCount-p.lastGCCount, lastPauseUs, sysMB)

	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
}
