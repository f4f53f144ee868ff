// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lgebra/scene"
	"github.com/katalvlaran/lgebra/transform"
)

// Uniform names, uploaded in this order.
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
)

// Layout is the element order a consumer expects for a 4×4 uniform.
type Layout int

const (
	// RowMajor uploads transform's native order unchanged.
	RowMajor Layout = iota
	// ColumnMajor transposes first (OpenGL with transpose=false).
	ColumnMajor
)

func (l Layout) String() string {
	switch l {
	case RowMajor:
		return scene.RowMajor
	case ColumnMajor:
		return scene.ColumnMajor
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout maps "row-major" / "column-major" to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case scene.RowMajor:
		return RowMajor, nil
	case scene.ColumnMajor:
		return ColumnMajor, nil
	default:
		return RowMajor, fmt.Errorf("ParseLayout(%q): %w", s, ErrUnknownLayout)
	}
}

// Apply returns m in layout l.
func (l Layout) Apply(m transform.Matrix4) f32.Mat4 {
	if l == ColumnMajor {
		return m.Transposed().F32()
	}

	return m.F32()
}

// Uniforms are the three matrices a frame hands to the pipeline. They are
// built independently and never multiplied together here.
type Uniforms struct {
	Model      transform.Matrix4
	View       transform.Matrix4
	Projection transform.Matrix4
}

// UniformSink receives one named 4×4 matrix in its final layout.
type UniformSink interface {
	UniformMatrix4(name string, m f32.Mat4) error
}

// PolygonModeSink is optionally implemented by sinks that also own the
// rasterizer state.
type PolygonModeSink interface {
	SetPolygonMode(mode PolygonMode) error
}

// Upload sends model, view and projection to sink in layout l, stopping at
// the first failure.
func Upload(sink UniformSink, u Uniforms, l Layout) error {
	if sink == nil {
		return ErrNilSink
	}
	for _, nm := range []struct {
		name string
		m    transform.Matrix4
	}{
		{UniformModel, u.Model},
		{UniformView, u.View},
		{UniformProjection, u.Projection},
	} {
		if err := sink.UniformMatrix4(nm.name, l.Apply(nm.m)); err != nil {
			return fmt.Errorf("render: upload %s: %w", nm.name, err)
		}
	}

	return nil
}
