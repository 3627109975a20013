package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW           = 87  // W key (ASCII)
	KeyA           = 65  // A key (ASCII)
	KeyS           = 83  // S key (ASCII)
	KeyD           = 68  // D key (ASCII)
	KeyQ           = 81  // Q key (ASCII)
	KeyE           = 69  // E key (ASCII)
	KeyF           = 70  // F key (ASCII)
	KeyR           = 82  // R key (ASCII)
	KeySpace       = 32  // Spacebar (ASCII)
	KeyGraveAccent = 96  // ` / ~ key (ASCII)
	KeyEsc         = 256 // Escape key (GLFW)
	KeyTab         = 258 // Tab key (GLFW)
	KeyUp          = 265 // Up arrow (GLFW)
	KeyDown        = 264 // Down arrow (GLFW)
	KeyLeft        = 263 // Left arrow (GLFW)
	KeyRight       = 262 // Right arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// Mouse button codes, matching glfw.MouseButton values.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// keyNames maps the names accepted in configuration files to key codes.
var keyNames = map[string]uint32{
	"W": KeyW, "A": KeyA, "S": KeyS, "D": KeyD, "Q": KeyQ, "E": KeyE, "F": KeyF, "R": KeyR,
	"SPACE":         KeySpace,
	"GRAVE":         KeyGraveAccent,
	"GRAVE_ACCENT":  KeyGraveAccent,
	"ESCAPE":        KeyEsc,
	"TAB":           KeyTab,
	"UP":            KeyUp,
	"DOWN":          KeyDown,
	"LEFT":          KeyLeft,
	"RIGHT":         KeyRight,
	"LEFT_SHIFT":    KeyLeftShift,
	"RIGHT_SHIFT":   KeyRightShift,
	"LEFT_CONTROL":  KeyLeftControl,
	"RIGHT_CONTROL": KeyRightControl,
}

// KeyByName looks up a key code by its configuration name. Lookup is case-insensitive.
//
// Parameters:
//   - name: key name such as "W", "left_shift" or "grave"
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyByName(name string) (uint32, bool) {
	code, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	return code, ok
}
