// SPDX-License-Identifier: MIT
// Package transform_test contains shared fixtures and assertions.

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lgebra/transform"
)

// tol is the absolute tolerance for trigonometric results in float32.
const tol = 1e-6

// identity16 is the row-major identity written out cell by cell.
var identity16 = transform.Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// requireClose fails the test if any cell of got differs from want by more
// than tol.
func requireClose(t *testing.T, want, got transform.Matrix4, msgAndArgs ...interface{}) {
	t.Helper()
	for i := range want {
		require.InDeltaf(t, want[i], got[i], tol, "cell (%d,%d): %v", i/4, i%4, msgAndArgs)
	}
}

// cell reads (r,c) through the bounds-checked accessor.
func cell(t *testing.T, m transform.Matrix4, r, c int) float32 {
	t.Helper()
	v, err := m.At(r, c)
	require.NoError(t, err)

	return v
}

// touched returns the row-major indices where a and b differ exactly.
func touched(a, b transform.Matrix4) []int {
	var idx []int
	for i := range a {
		if a[i] != b[i] {
			idx = append(idx, i)
		}
	}

	return idx
}
