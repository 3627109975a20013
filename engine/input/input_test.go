package input

import (
	"testing"

	"github.com/Carmen-Shannon/datalens/common"
	"github.com/Carmen-Shannon/datalens/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

type fakeCursor struct {
	calls []bool
}

func (c *fakeCursor) SetCursorCaptured(captured bool) {
	c.calls = append(c.calls, captured)
}

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

func TestHandlerModeToggle(t *testing.T) {
	cursor := &fakeCursor{}
	h := NewHandler(camera.NewCameraController(), cursor)

	if h.Mode() != camera.ModeOrbit || h.Captured() {
		t.Fatalf("handler should start in orbit with a free cursor")
	}
	if h.CrosshairTarget() != CrosshairMax {
		t.Fatalf("crosshair target = %f, want %f", h.CrosshairTarget(), CrosshairMax)
	}

	h.OnKey(common.KeyGraveAccent, true)
	if h.Mode() != camera.ModeFirstPerson || !h.Captured() {
		t.Fatalf("toggle should enter first-person and capture")
	}
	if h.CrosshairTarget() != 0 {
		t.Fatalf("crosshair target = %f, want 0", h.CrosshairTarget())
	}

	// key repeat while held does not toggle again
	h.OnKey(common.KeyGraveAccent, true)
	if h.Mode() != camera.ModeFirstPerson {
		t.Fatalf("repeat toggled mode")
	}

	h.OnKey(common.KeyGraveAccent, false)
	h.OnKey(common.KeyGraveAccent, true)
	if h.Mode() != camera.ModeOrbit || h.Captured() {
		t.Fatalf("second toggle should return to orbit and release")
	}

	want := []bool{true, false}
	if len(cursor.calls) != len(want) {
		t.Fatalf("cursor calls = %v, want %v", cursor.calls, want)
	}
	for i := range want {
		if cursor.calls[i] != want[i] {
			t.Fatalf("cursor calls = %v, want %v", cursor.calls, want)
		}
	}
}

func TestHandlerCursor(t *testing.T) {
	t.Run("first_mouse_suppressed", func(t *testing.T) {
		cc := camera.NewCameraController()
		h := NewHandler(cc, &fakeCursor{}, WithMode(camera.ModeFirstPerson))

		h.OnCursorPos(400, 300)
		if cc.Yaw() != camera.DefaultYaw || cc.Pitch() != camera.DefaultPitch {
			t.Fatalf("first event moved the camera: yaw %f pitch %f", cc.Yaw(), cc.Pitch())
		}

		h.OnCursorPos(420, 280)
		if !mgl32.FloatEqualThreshold(cc.Yaw(), camera.DefaultYaw+1, 1e-4) {
			t.Fatalf("yaw = %f, want %f", cc.Yaw(), camera.DefaultYaw+1)
		}
		// cursor moved up the screen, so pitch rises
		if !mgl32.FloatEqualThreshold(cc.Pitch(), 1, 1e-4) {
			t.Fatalf("pitch = %f, want 1", cc.Pitch())
		}
	})

	t.Run("ignored_while_free", func(t *testing.T) {
		cc := camera.NewCameraController()
		h := NewHandler(cc, &fakeCursor{})
		before := cc.Pose()
		h.OnCursorPos(0, 0)
		h.OnCursorPos(100, 100)
		if cc.Pose() != before {
			t.Fatalf("free cursor moved the camera")
		}
	})

	t.Run("orbit_drag_rotates", func(t *testing.T) {
		cc := camera.NewCameraController()
		h := NewHandler(cc, &fakeCursor{})
		h.OnMouseButton(common.MouseButtonLeft, true)
		h.Process(0)
		if !h.Captured() {
			t.Fatalf("held left button should capture in orbit mode")
		}
		h.OnCursorPos(0, 0)
		h.OnCursorPos(20, 0)
		if !mgl32.FloatEqualThreshold(cc.Pose().Phi, 1, 1e-4) {
			t.Fatalf("phi = %f, want 1", cc.Pose().Phi)
		}

		h.OnMouseButton(common.MouseButtonLeft, false)
		h.Process(0)
		if h.Captured() {
			t.Fatalf("release should free the cursor")
		}
	})

	t.Run("right_button_pans", func(t *testing.T) {
		cc := camera.NewCameraController()
		h := NewHandler(cc, &fakeCursor{})
		h.OnMouseButton(common.MouseButtonRight, true)
		h.Process(0)
		h.OnCursorPos(0, 0)
		h.OnCursorPos(10, 0)
		if cc.Target() == (mgl32.Vec3{}) {
			t.Fatalf("pan did not move the target")
		}
		if cc.Pose().Phi != camera.DefaultPhi {
			t.Fatalf("pan rotated the orbit")
		}
	})

	t.Run("ui_blocks_capture", func(t *testing.T) {
		h := NewHandler(camera.NewCameraController(), &fakeCursor{})
		h.SetUIWantsMouse(true)
		h.OnMouseButton(common.MouseButtonLeft, true)
		h.Process(0)
		if h.Captured() {
			t.Fatalf("overlay should block orbit capture")
		}
	})
}

func TestHandlerApply(t *testing.T) {
	cursor := &fakeCursor{}
	h := NewHandler(camera.NewCameraController(), cursor)

	h.Apply(WithToggleKey(common.KeyTab), WithBoost(2), WithConstrainPitch(false))
	if h.toggleKey != common.KeyTab || h.boost != 2 || h.constrainPitch {
		t.Fatalf("options not applied: toggle %d boost %f constrain %v", h.toggleKey, h.boost, h.constrainPitch)
	}
	if h.Mode() != camera.ModeOrbit || len(cursor.calls) != 0 {
		t.Fatalf("apply without a mode change touched the cursor: %v", cursor.calls)
	}

	h.OnKey(common.KeyGraveAccent, true)
	if h.Mode() != camera.ModeOrbit {
		t.Fatalf("replaced toggle key still switches mode")
	}
	h.OnKey(common.KeyTab, true)
	if h.Mode() != camera.ModeFirstPerson || !h.Captured() {
		t.Fatalf("new toggle key should enter first-person")
	}

	h.Apply(WithMode(camera.ModeOrbit))
	if h.Captured() || cursor.calls[len(cursor.calls)-1] {
		t.Fatalf("mode change through Apply should release the cursor: %v", cursor.calls)
	}
}

func TestHandlerScroll(t *testing.T) {
	cc := camera.NewCameraController()
	h := NewHandler(cc, &fakeCursor{})

	h.OnScroll(2)
	if cc.TargetDistance() != camera.DefaultTargetDistance-2 {
		t.Fatalf("orbit distance = %f", cc.TargetDistance())
	}

	h.ToggleMode()
	h.OnScroll(10)
	if cc.Zoom() != camera.DefaultZoom-10 {
		t.Fatalf("zoom = %f", cc.Zoom())
	}
}

func TestHandlerProcessMovement(t *testing.T) {
	cases := []struct {
		name string
		keys []uint32
		dt   float32
		want mgl32.Vec3
	}{
		{"forward", []uint32{common.KeyW}, 0.5, mgl32.Vec3{0, 0, -1}},
		{"backward", []uint32{common.KeyS}, 0.5, mgl32.Vec3{0, 0, 1}},
		{"strafe_left", []uint32{common.KeyA}, 0.5, mgl32.Vec3{-1, 0, 0}},
		{"strafe_right", []uint32{common.KeyD}, 0.5, mgl32.Vec3{1, 0, 0}},
		{"up", []uint32{common.KeyE}, 0.5, mgl32.Vec3{0, 1, 0}},
		{"down", []uint32{common.KeyQ}, 0.5, mgl32.Vec3{0, -1, 0}},
		{"opposites_cancel", []uint32{common.KeyW, common.KeyS}, 0.5, mgl32.Vec3{}},
		{"boost", []uint32{common.KeyW, common.KeyLeftShift}, 0.5, mgl32.Vec3{0, 0, -11}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cc := camera.NewCameraController()
			h := NewHandler(cc, &fakeCursor{}, WithMode(camera.ModeFirstPerson))
			for _, k := range c.keys {
				h.OnKey(k, true)
			}
			h.Process(c.dt)
			if !vecNear(cc.Position(), c.want) {
				t.Fatalf("position = %v, want %v", cc.Position(), c.want)
			}
		})
	}

	t.Run("orbit_ignores_keys", func(t *testing.T) {
		cc := camera.NewCameraController()
		h := NewHandler(cc, &fakeCursor{})
		h.OnKey(common.KeyW, true)
		h.Process(1)
		if cc.Position() != (mgl32.Vec3{}) {
			t.Fatalf("orbit mode moved the first-person position")
		}
	})

	t.Run("custom_bindings", func(t *testing.T) {
		cc := camera.NewCameraController()
		h := NewHandler(cc, &fakeCursor{},
			WithMode(camera.ModeFirstPerson),
			WithBindings(Bindings{camera.Forward: common.KeyUp}),
		)
		h.OnKey(common.KeyW, true)
		h.Process(1)
		if cc.Position() != (mgl32.Vec3{}) {
			t.Fatalf("unbound key moved the camera")
		}
		h.OnKey(common.KeyUp, true)
		h.Process(1)
		if !vecNear(cc.Position(), mgl32.Vec3{0, 0, -2}) {
			t.Fatalf("position = %v", cc.Position())
		}
	})
}
