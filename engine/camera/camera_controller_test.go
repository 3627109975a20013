package camera

import (
	"math"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/datalens/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCameraControllerOptions(t *testing.T) {
	cc := NewCameraController(
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithYaw(0),
		WithPitch(10),
		WithMovementSpeed(4),
		WithMouseSensitivity(0.2),
		WithZoom(60),
		WithTargetDistance(8),
		WithTarget(mgl32.Vec3{0, 1, 0}),
		WithSmoothing(0.25),
		WithFrameRateIndependentSmoothing(true),
	)

	p := cc.Pose()
	if p.Position != (mgl32.Vec3{1, 2, 3}) || p.Yaw != 0 || p.Pitch != 10 {
		t.Fatalf("first-person state not applied: %+v", p)
	}
	if cc.MovementSpeed() != 4 || cc.MouseSensitivity() != 0.2 {
		t.Fatalf("tunables = %f / %f", cc.MovementSpeed(), cc.MouseSensitivity())
	}
	if cc.Zoom() != 60 || cc.FieldOfView() != 60 {
		t.Fatalf("zoom = %f / %f", cc.Zoom(), cc.FieldOfView())
	}
	if cc.TargetDistance() != 8 || cc.Target() != (mgl32.Vec3{0, 1, 0}) || cc.TargetSmooth() != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("orbit state not applied: %+v", p)
	}
	if l := cc.Limits(); l.Smoothing != 0.25 || !l.FrameRateIndependent {
		t.Fatalf("limits = %+v", l)
	}
	// yaw 0 looks down +X; the basis must be rebuilt after options.
	if !vecNear(p.Forward, mgl32.Vec3{0.9848, 0.1736, 0}, 1e-3) {
		t.Fatalf("forward = %v", p.Forward)
	}
	if !vecNear(cc.OrbitPosition(), mgl32.Vec3{0, 1, 8}, eps) {
		t.Fatalf("orbit position = %v", cc.OrbitPosition())
	}
}

func TestNewCameraControllerClampsOptions(t *testing.T) {
	limits := DefaultLimits()

	t.Run("distance_below_floor", func(t *testing.T) {
		cc := NewCameraController(WithTargetDistance(0))
		if cc.TargetDistance() != limits.MinDistance {
			t.Fatalf("distance = %f, want %f", cc.TargetDistance(), limits.MinDistance)
		}
		if cc.Pose().TargetDistanceSmooth != limits.MinDistance {
			t.Fatalf("smoothed distance = %f", cc.Pose().TargetDistanceSmooth)
		}
		m := cc.ViewMatrix(ModeOrbit)
		for _, v := range m {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Fatalf("degenerate orbit view %v", m)
			}
		}
	})

	t.Run("zoom_above_max", func(t *testing.T) {
		cc := NewCameraController(WithZoom(500))
		if cc.Zoom() != limits.MaxZoom || cc.FieldOfView() != limits.MaxZoom {
			t.Fatalf("zoom = %f fov = %f, want %f", cc.Zoom(), cc.FieldOfView(), limits.MaxZoom)
		}
	})

	t.Run("limits_applied_after_values", func(t *testing.T) {
		l := limits
		l.MinDistance = 3
		cc := NewCameraController(WithTargetDistance(1), WithLimits(l))
		if cc.TargetDistance() != 3 {
			t.Fatalf("distance = %f, want 3", cc.TargetDistance())
		}
	})
}

func TestCameraControllerDelegates(t *testing.T) {
	t.Run("keyboard", func(t *testing.T) {
		cc := NewCameraController()
		cc.ProcessKeyboard(Forward, 1)
		if !vecNear(cc.Position(), mgl32.Vec3{0, 0, -2}, eps) {
			t.Fatalf("position = %v", cc.Position())
		}
	})

	t.Run("mouse_first_person", func(t *testing.T) {
		cc := NewCameraController()
		cc.ProcessMouseMovement(20, 10000, ModeFirstPerson, false, true)
		if cc.Pitch() != 89 {
			t.Fatalf("pitch = %f, want 89", cc.Pitch())
		}
		if !mgl32.FloatEqualThreshold(cc.Yaw(), -89, eps) {
			t.Fatalf("yaw = %f, want -89", cc.Yaw())
		}
	})

	t.Run("scroll_and_set_zoom", func(t *testing.T) {
		cc := NewCameraController()
		cc.ProcessMouseScroll(-10, ModeFirstPerson)
		cc.ProcessMouseScroll(-1000, ModeFirstPerson)
		if cc.Zoom() != 150 {
			t.Fatalf("zoom = %f, want 150", cc.Zoom())
		}
		cc.SetZoom(1)
		if cc.Zoom() != 5 {
			t.Fatalf("zoom = %f, want 5", cc.Zoom())
		}
		if cc.FieldOfView() != DefaultZoom {
			t.Fatalf("field of view should lag until Update, got %f", cc.FieldOfView())
		}
		cc.Update(1.0 / 60)
		if cc.FieldOfView() >= DefaultZoom || cc.FieldOfView() <= 5 {
			t.Fatalf("field of view = %f, want between 5 and %f", cc.FieldOfView(), DefaultZoom)
		}
	})

	t.Run("reset_idempotent", func(t *testing.T) {
		cc := NewCameraController()
		cc.ProcessMouseMovement(40, 40, ModeOrbit, false, true)
		cc.Reset(mgl32.Vec3{1, 2, 3}, -90, -10, 5)
		first := cc.Pose()
		cc.Reset(mgl32.Vec3{1, 2, 3}, -90, -10, 5)
		if cc.Pose() != first {
			t.Fatalf("reset not idempotent")
		}
	})

	t.Run("view_matrix_by_mode", func(t *testing.T) {
		cc := NewCameraController(WithPosition(mgl32.Vec3{7, 0, 0}))
		cc.Update(1.0 / 60)
		if eye := common.EyeFromView(cc.ViewMatrix(ModeFirstPerson)); !vecNear(eye, cc.EyePosition(ModeFirstPerson), eps) {
			t.Fatalf("first-person eye = %v, want %v", eye, cc.EyePosition(ModeFirstPerson))
		}
		if eye := common.EyeFromView(cc.ViewMatrix(ModeOrbit)); !vecNear(eye, cc.OrbitPosition(), eps) {
			t.Fatalf("orbit eye = %v, want %v", eye, cc.OrbitPosition())
		}
	})

	t.Run("set_limits_reclamps", func(t *testing.T) {
		cc := NewCameraController()
		limits := cc.Limits()
		limits.MinDistance = 10
		limits.MaxZoom = 30
		cc.SetLimits(limits)
		if cc.TargetDistance() != 10 {
			t.Fatalf("distance = %f, want 10", cc.TargetDistance())
		}
		if cc.Zoom() != 30 {
			t.Fatalf("zoom = %f, want 30", cc.Zoom())
		}
	})
}

func TestCameraControllerConcurrentAccess(t *testing.T) {
	cc := NewCameraController()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				cc.SetMouseSensitivity(0.1)
				cc.SetMovementSpeed(3)
				_ = cc.ViewMatrix(ModeOrbit)
			}
		}()
	}
	for j := 0; j < 200; j++ {
		cc.ProcessMouseMovement(1, 1, ModeOrbit, false, true)
		cc.Update(1.0 / 60)
	}
	wg.Wait()
}
