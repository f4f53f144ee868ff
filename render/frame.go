// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/katalvlaran/lgebra/scene"
	"github.com/katalvlaran/lgebra/transform"
)

// Frame builds the uniforms of sc at time t (seconds since start).
//
// Implementation:
//   - Model: identity, each rotation in file order at its angle for t
//     (overwrite semantics: a later rotation about the same plane wins),
//     then Scale, then Translate.
//   - View: identity translated by the camera offset.
//   - Projection: NewPerspective or NewOrthographic with the window aspect.
//
// Errors: projection failures from transform (ErrDegenerateProjection,
// ErrNaNInf), wrapped. A scene that passed Validate does not fail here.
func Frame(sc scene.Scene, t float64) (Uniforms, error) {
	model := transform.NewMatrix4(transform.Identity)
	for _, r := range sc.Model.Rotations {
		model.Rotate(r.AngleAt(t), r.Plane)
	}
	model.Scale(sc.Model.Scale)
	model.Translate(sc.Model.Translate)

	view := transform.NewMatrix4(transform.Identity)
	view.Translate(sc.Camera)

	proj, err := projection(sc)
	if err != nil {
		return Uniforms{}, fmt.Errorf("render: frame at %.3fs: %w", t, err)
	}

	return Uniforms{Model: model, View: view, Projection: proj}, nil
}

func projection(sc scene.Scene) (transform.Matrix4, error) {
	p := sc.Projection
	switch p.Kind {
	case scene.Perspective:
		return transform.NewPerspective(p.Fov, sc.Aspect(), p.Near, p.Far)
	case scene.Orthographic:
		return transform.NewOrthographic(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	default:
		return transform.Matrix4{}, fmt.Errorf("projection kind %q: %w", p.Kind, scene.ErrBadProjection)
	}
}
