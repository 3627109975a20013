package profiler

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfilerTick(t *testing.T) {
	cases := []struct {
		name  string
		steps []time.Duration
		want  []float32
	}{
		{"first_tick_is_zero", []time.Duration{0}, []float32{0}},
		{"steady_60hz", []time.Duration{0, 16 * time.Millisecond, 16 * time.Millisecond}, []float32{0, 0.016, 0.016}},
		{"hitch", []time.Duration{0, 10 * time.Millisecond, 250 * time.Millisecond}, []float32{0, 0.010, 0.250}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(1000, 0)}
			p := NewProfiler(WithClock(clock.now))
			for i, step := range c.steps {
				clock.advance(step)
				got := p.Tick()
				if diff := got - c.want[i]; diff > 1e-6 || diff < -1e-6 {
					t.Fatalf("tick %d: delta = %f, want %f", i, got, c.want[i])
				}
				if p.DeltaTime() != got {
					t.Fatalf("DeltaTime() = %f, want %f", p.DeltaTime(), got)
				}
			}
		})
	}
}

func TestProfilerFPS(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(time.Second), WithLogging(true))

	p.Tick()
	for i := 0; i < 50; i++ {
		clock.advance(20 * time.Millisecond)
		p.Tick()
	}
	if fps := p.FPS(); fps < 49.9 || fps > 50.1 {
		t.Fatalf("fps = %f, want 50", fps)
	}
}
