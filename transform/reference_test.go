// SPDX-License-Identifier: MIT
// Cross-checks against go-gl/mathgl, which stores matrices column-major.
// Our Transposed() therefore has to match mgl64 cell for cell.

package transform_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lgebra/transform"
)

// requireMatchesMGL compares m (row-major) with the column-major want.
func requireMatchesMGL(t *testing.T, want mgl64.Mat4, m transform.Matrix4) {
	t.Helper()
	cm := m.Transposed()
	for i := range want {
		require.InDeltaf(t, want[i], cm[i], tol, "column-major index %d", i)
	}
}

func TestReference_Rotate(t *testing.T) {
	angles := []float32{-270, -55, 0, 15, 45, 90, 123.5, 180, 359}
	refs := map[transform.Plane]func(float64) mgl64.Mat4{
		transform.PlaneX: mgl64.HomogRotate3DX,
		transform.PlaneY: mgl64.HomogRotate3DY,
		transform.PlaneZ: mgl64.HomogRotate3DZ,
	}
	for p, ref := range refs {
		for _, deg := range angles {
			m := transform.NewMatrix4(transform.Identity)
			m.Rotate(deg, p)
			requireMatchesMGL(t, ref(mgl64.DegToRad(float64(deg))), m)
		}
	}
}

func TestReference_ScaleTranslate(t *testing.T) {
	s := transform.NewMatrix4(transform.Identity)
	s.Scale(transform.Vector3{X: 2, Y: -3, Z: 0.25})
	requireMatchesMGL(t, mgl64.Scale3D(2, -3, 0.25), s)

	tr := transform.NewMatrix4(transform.Identity)
	tr.Translate(transform.Vector3{X: -1.5, Y: 2, Z: 10})
	requireMatchesMGL(t, mgl64.Translate3D(-1.5, 2, 10), tr)
}

func TestReference_Perspective(t *testing.T) {
	for _, fov := range []float32{30, 45, 60, 90, 120} {
		m, err := transform.NewPerspective(fov, 16.0/9.0, 0.1, 100)
		require.NoError(t, err)
		want := mgl64.Perspective(mgl64.DegToRad(float64(fov)), float64(float32(16.0/9.0)), float64(float32(0.1)), 100)
		cm := m.Transposed()
		for i := range want {
			assert.InDeltaf(t, want[i], cm[i], tol, "fov %v index %d", fov, i)
		}
	}
}

// TestReference_Orthographic agrees with mgl64.Ortho except for (2,2): this
// package writes +2/(far-near) where mgl64 writes -2/(far-near).
func TestReference_Orthographic(t *testing.T) {
	m, err := transform.NewOrthographic(-4, 4, -3, 3, 0.5, 50)
	require.NoError(t, err)
	want := mgl64.Ortho(-4, 4, -3, 3, 0.5, 50)

	cm := m.Transposed()
	for i := range want {
		if i == 2*4+2 {
			assert.InDelta(t, -want[i], cm[i], tol)
			continue
		}
		assert.InDeltaf(t, want[i], cm[i], tol, "column-major index %d", i)
	}
}
