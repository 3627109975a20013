package input

import (
	"github.com/Carmen-Shannon/datalens/common"
	"github.com/Carmen-Shannon/datalens/engine/camera"
)

// CrosshairMax is the crosshair size shown while the cursor is free.
const CrosshairMax float32 = 0.01

// DefaultBoost is added to the frame delta while the boost key is held.
const DefaultBoost float32 = 5

// Cursor is the window-side collaborator that grabs or releases the mouse cursor.
type Cursor interface {
	// SetCursorCaptured hides and locks the cursor when captured, restores it otherwise.
	//
	// Parameters:
	//   - captured: whether the cursor should be captured
	SetCursorCaptured(captured bool)
}

// Bindings maps first-person movement directions to key codes.
type Bindings map[camera.Movement]uint32

// movementOrder fixes the order keys are applied in each frame.
var movementOrder = []camera.Movement{
	camera.Forward, camera.Backward, camera.Left, camera.Right, camera.Up, camera.Down,
}

// DefaultBindings returns WASD for planar movement, E for up and Q for down.
//
// Returns:
//   - Bindings: the default key bindings
func DefaultBindings() Bindings {
	return Bindings{
		camera.Forward:  common.KeyW,
		camera.Backward: common.KeyS,
		camera.Left:     common.KeyA,
		camera.Right:    common.KeyD,
		camera.Up:       common.KeyE,
		camera.Down:     common.KeyQ,
	}
}

// Handler is the per-application input context. It owns the interaction mode, cursor
// capture state and the last cursor position, and turns raw window events into camera
// calls. Window callbacks and Process must run on the same (main) thread.
type Handler struct {
	controller camera.CameraController
	cursor     Cursor

	mode     camera.Mode
	captured bool

	firstMouse   bool
	lastX, lastY float64

	keys    map[uint32]bool
	buttons map[uint32]bool

	bindings       Bindings
	toggleKey      uint32
	boostKey       uint32
	boost          float32
	constrainPitch bool
	uiWantsMouse   bool
}

// HandlerOption is a functional option for configuring a Handler.
type HandlerOption func(*Handler)

// WithBindings replaces the movement key bindings.
//
// Parameters:
//   - bindings: movement to key code map
//
// Returns:
//   - HandlerOption: option function to apply
func WithBindings(bindings Bindings) HandlerOption {
	return func(h *Handler) {
		h.bindings = bindings
	}
}

// WithToggleKey sets the key that switches between orbit and first-person mode.
//
// Parameters:
//   - key: key code
//
// Returns:
//   - HandlerOption: option function to apply
func WithToggleKey(key uint32) HandlerOption {
	return func(h *Handler) {
		h.toggleKey = key
	}
}

// WithBoostKey sets the key that speeds up first-person movement.
//
// Parameters:
//   - key: key code
//
// Returns:
//   - HandlerOption: option function to apply
func WithBoostKey(key uint32) HandlerOption {
	return func(h *Handler) {
		h.boostKey = key
	}
}

// WithBoost sets the seconds added to the movement delta while the boost key is held.
//
// Parameters:
//   - boost: extra seconds of movement per frame
//
// Returns:
//   - HandlerOption: option function to apply
func WithBoost(boost float32) HandlerOption {
	return func(h *Handler) {
		h.boost = boost
	}
}

// WithMode sets the starting interaction mode.
//
// Parameters:
//   - mode: camera.ModeOrbit or camera.ModeFirstPerson
//
// Returns:
//   - HandlerOption: option function to apply
func WithMode(mode camera.Mode) HandlerOption {
	return func(h *Handler) {
		h.mode = mode
	}
}

// WithConstrainPitch toggles first-person pitch clamping.
//
// Parameters:
//   - constrain: whether to clamp pitch
//
// Returns:
//   - HandlerOption: option function to apply
func WithConstrainPitch(constrain bool) HandlerOption {
	return func(h *Handler) {
		h.constrainPitch = constrain
	}
}

// NewHandler creates an input context driving controller and capturing through cursor.
// It starts in orbit mode with the cursor free.
//
// Parameters:
//   - controller: the camera to drive
//   - cursor: the window used to capture and release the cursor
//   - options: functional options to configure the handler
//
// Returns:
//   - *Handler: the newly created handler
func NewHandler(controller camera.CameraController, cursor Cursor, options ...HandlerOption) *Handler {
	h := &Handler{
		controller:     controller,
		cursor:         cursor,
		mode:           camera.ModeOrbit,
		firstMouse:     true,
		keys:           make(map[uint32]bool),
		buttons:        make(map[uint32]bool),
		bindings:       DefaultBindings(),
		toggleKey:      common.KeyGraveAccent,
		boostKey:       common.KeyLeftShift,
		boost:          DefaultBoost,
		constrainPitch: true,
	}
	for _, opt := range options {
		opt(h)
	}
	if h.mode == camera.ModeFirstPerson {
		h.focus()
	}
	return h
}

// Mode returns the active interaction mode.
func (h *Handler) Mode() camera.Mode {
	return h.mode
}

// Captured reports whether the cursor is currently captured.
func (h *Handler) Captured() bool {
	return h.captured
}

// SetUIWantsMouse tells the handler an overlay is using the mouse, which stops orbit
// clicks from capturing the cursor.
func (h *Handler) SetUIWantsMouse(wants bool) {
	h.uiWantsMouse = wants
}

// Apply reconfigures a live handler with the same options NewHandler accepts. Held keys
// and buttons are kept. A mode change through WithMode captures or releases the cursor
// like ToggleMode does.
//
// Parameters:
//   - options: functional options to apply
func (h *Handler) Apply(options ...HandlerOption) {
	mode := h.mode
	for _, opt := range options {
		opt(h)
	}
	if h.mode == mode {
		return
	}
	if h.mode == camera.ModeFirstPerson {
		h.focus()
	} else {
		h.unfocus()
	}
}

// SetBindings replaces the movement key bindings.
func (h *Handler) SetBindings(bindings Bindings) {
	h.bindings = bindings
}

// ToggleMode switches between orbit and first-person. Entering first-person captures
// the cursor; returning to orbit releases it.
func (h *Handler) ToggleMode() {
	if h.mode == camera.ModeOrbit {
		h.mode = camera.ModeFirstPerson
		h.focus()
		return
	}
	h.mode = camera.ModeOrbit
	h.unfocus()
}

// OnKey records a key transition. A press of the toggle key switches modes.
//
// Parameters:
//   - key: key code
//   - pressed: true on press (or repeat), false on release
func (h *Handler) OnKey(key uint32, pressed bool) {
	wasDown := h.keys[key]
	h.keys[key] = pressed
	if pressed && !wasDown && key == h.toggleKey {
		h.ToggleMode()
	}
}

// OnMouseButton records a mouse button transition.
//
// Parameters:
//   - button: mouse button code
//   - pressed: true on press, false on release
func (h *Handler) OnMouseButton(button uint32, pressed bool) {
	h.buttons[button] = pressed
}

// OnCursorPos converts an absolute cursor position into a delta and forwards it to the
// camera while the cursor is captured. The first position after a release only seeds
// the previous position, so capture never produces a jump. The right mouse button pans.
//
// Parameters:
//   - x, y: cursor position in window coordinates (y grows downward)
func (h *Handler) OnCursorPos(x, y float64) {
	if h.firstMouse {
		h.lastX = x
		h.lastY = y
		h.firstMouse = false
	}

	xoffset := float32(x - h.lastX)
	yoffset := float32(h.lastY - y)
	h.lastX = x
	h.lastY = y

	if !h.captured {
		return
	}
	pan := h.buttons[common.MouseButtonRight]
	h.controller.ProcessMouseMovement(xoffset, yoffset, h.mode, pan, h.constrainPitch)
}

// OnScroll forwards a vertical scroll delta for the active mode.
//
// Parameters:
//   - yoffset: scroll delta (positive scrolls in)
func (h *Handler) OnScroll(yoffset float32) {
	h.controller.ProcessMouseScroll(yoffset, h.mode)
}

// Process applies held-state input once per frame. In orbit mode a held mouse button
// captures the cursor and releasing all buttons frees it. In first-person mode held
// movement keys move the camera, with the boost key adding to the delta.
//
// Parameters:
//   - deltaTime: seconds since the previous frame
func (h *Handler) Process(deltaTime float32) {
	if h.mode == camera.ModeOrbit && !h.uiWantsMouse {
		held := h.buttons[common.MouseButtonLeft] || h.buttons[common.MouseButtonRight]
		switch {
		case held && !h.captured:
			h.focus()
		case !held && h.captured:
			h.unfocus()
		}
	}

	if h.mode != camera.ModeFirstPerson {
		return
	}

	dt := deltaTime
	if h.keys[h.boostKey] {
		dt += h.boost
	}
	for _, movement := range movementOrder {
		key, ok := h.bindings[movement]
		if ok && h.keys[key] {
			h.controller.ProcessKeyboard(movement, dt)
		}
	}
}

// CrosshairTarget returns the size the crosshair should grow or shrink toward:
// hidden while the cursor is captured, CrosshairMax otherwise.
func (h *Handler) CrosshairTarget() float32 {
	if h.captured {
		return 0
	}
	return CrosshairMax
}

func (h *Handler) focus() {
	h.captured = true
	if h.cursor != nil {
		h.cursor.SetCursorCaptured(true)
	}
}

func (h *Handler) unfocus() {
	h.captured = false
	h.firstMouse = true
	if h.cursor != nil {
		h.cursor.SetCursorCaptured(false)
	}
}
