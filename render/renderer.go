// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/katalvlaran/lgebra/scene"
)

// Renderer drives frames for one scene. It is not safe for concurrent use;
// the window's event loop owns it.
type Renderer struct {
	scene   scene.Scene
	layout  Layout
	state   State
	applied PolygonMode
	frames  int
}

// NewRenderer validates sc and resolves its layout.
func NewRenderer(sc scene.Scene) (*Renderer, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	l, err := ParseLayout(sc.Layout)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return &Renderer{scene: sc, layout: l, state: State{}, applied: Fill}, nil
}

// State returns the current render state.
func (r *Renderer) State() State { return r.state }

// Layout returns the upload layout.
func (r *Renderer) Layout() Layout { return r.layout }

// Frames returns how many frames were uploaded successfully.
func (r *Renderer) Frames() int { return r.frames }

// HandleKey feeds one key event into the state.
func (r *Renderer) HandleKey(k Key, a Action) {
	r.state = r.state.HandleKey(k, a)
}

// Step renders the frame at time t into sink.
//
// If sink also implements PolygonModeSink and the mode changed since the last
// successful Step, the new mode is applied before the uniforms are uploaded.
//
// Errors: ErrClosed once Escape was pressed; ErrNilSink; frame and sink
// errors, wrapped.
func (r *Renderer) Step(t float64, sink UniformSink) error {
	if r.state.ShouldClose {
		return ErrClosed
	}
	if sink == nil {
		return ErrNilSink
	}

	if ps, ok := sink.(PolygonModeSink); ok && r.state.Mode != r.applied {
		if err := ps.SetPolygonMode(r.state.Mode); err != nil {
			return fmt.Errorf("render: polygon mode %s: %w", r.state.Mode, err)
		}
		r.applied = r.state.Mode
	}

	u, err := Frame(r.scene, t)
	if err != nil {
		return err
	}
	if err := Upload(sink, u, r.layout); err != nil {
		return err
	}
	r.frames++

	return nil
}
