// SPDX-License-Identifier: MIT

package render

import "fmt"

// PolygonMode is how triangles are rasterized.
type PolygonMode int

const (
	// Fill rasterizes solid triangles (the default).
	Fill PolygonMode = iota
	// Wireframe rasterizes triangle edges only.
	Wireframe
)

// Toggle returns the other mode: Fill → Wireframe → Fill.
func (m PolygonMode) Toggle() PolygonMode {
	if m == Wireframe {
		return Fill
	}

	return Wireframe
}

func (m PolygonMode) String() string {
	switch m {
	case Fill:
		return "fill"
	case Wireframe:
		return "wireframe"
	default:
		return fmt.Sprintf("PolygonMode(%d)", int(m))
	}
}

// Key is the subset of keyboard keys the renderer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyX
)

// Action is what happened to a key.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// State is the per-window render state. The zero value is Fill, open.
type State struct {
	Mode        PolygonMode
	ShouldClose bool
}

// HandleKey returns the state after key event (k, a):
//   - Escape pressed → ShouldClose.
//   - X pressed      → polygon mode toggled.
//
// Releases, repeats and other keys leave s unchanged.
func (s State) HandleKey(k Key, a Action) State {
	if a != Press {
		return s
	}
	switch k {
	case KeyEscape:
		s.ShouldClose = true
	case KeyX:
		s.Mode = s.Mode.Toggle()
	}

	return s
}
