// SPDX-License-Identifier: MIT
// Package transform: accessors, comparison and layout export.
//
// The transform operations index cells directly; these helpers exist for
// callers that need bounds-checked access, tolerance comparison, or a
// different memory layout for upload.

package transform

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/math/f32"
)

// ---------- Matrix4 ----------

// At returns the coefficient at row r, column c.
// Errors: ErrOutOfRange when r or c is outside [0,4).
func (m *Matrix4) At(r, c int) (float32, error) {
	if !inRange(r, c, dim4) {
		return 0, transformErrorf(fmt.Sprintf("Matrix4.At(%d,%d)", r, c), ErrOutOfRange)
	}

	return m[r*dim4+c], nil
}

// Set assigns v at row r, column c.
// Errors: ErrOutOfRange when r or c is outside [0,4).
func (m *Matrix4) Set(r, c int, v float32) error {
	if !inRange(r, c, dim4) {
		return transformErrorf(fmt.Sprintf("Matrix4.Set(%d,%d)", r, c), ErrOutOfRange)
	}
	m[r*dim4+c] = v

	return nil
}

// Row returns a copy of row r. It panics if r is outside [0,4), like an
// ordinary array index.
func (m Matrix4) Row(r int) [4]float32 {
	return [4]float32{m[r*dim4], m[r*dim4+1], m[r*dim4+2], m[r*dim4+3]}
}

// Diagonal returns (0,0), (1,1), (2,2), (3,3).
func (m Matrix4) Diagonal() [4]float32 {
	return [4]float32{m[0], m[5], m[10], m[15]}
}

// Transposed returns m with rows and columns swapped. Reading the result as a
// flat sequence gives m in column-major order.
func (m Matrix4) Transposed() Matrix4 {
	var t Matrix4
	for r := 0; r < dim4; r++ {
		for c := 0; c < dim4; c++ {
			t[c*dim4+r] = m[r*dim4+c]
		}
	}

	return t
}

// F32 returns m as an x/image f32.Mat4. Both are row-major, so this is a
// plain conversion.
func (m Matrix4) F32() f32.Mat4 {
	return f32.Mat4(m)
}

// IsFinite reports whether every coefficient is neither NaN nor ±Inf.
func (m Matrix4) IsFinite() bool {
	for _, v := range m {
		if isNonFinite(v) {
			return false
		}
	}

	return true
}

// String formats m as four bracketed rows.
func (m Matrix4) String() string {
	return formatRows(m[:], dim4)
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds for every cell.
//
// Behavior highlights:
//   - Negative tolerances are treated by absolute value.
//   - A NaN cell never compares close, not even to another NaN.
//
// Errors: ErrNaNInf when rtol or atol is NaN or ±Inf.
// Complexity: O(16).
func AllClose(a, b Matrix4, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, transformErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		if av == bv {
			continue // also covers equal infinities
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}

// ---------- Matrix3 ----------

// At returns the coefficient at row r, column c.
// Errors: ErrOutOfRange when r or c is outside [0,3).
func (m *Matrix3) At(r, c int) (float32, error) {
	if !inRange(r, c, dim3) {
		return 0, transformErrorf(fmt.Sprintf("Matrix3.At(%d,%d)", r, c), ErrOutOfRange)
	}

	return m[r*dim3+c], nil
}

// Set assigns v at row r, column c.
// Errors: ErrOutOfRange when r or c is outside [0,3).
func (m *Matrix3) Set(r, c int, v float32) error {
	if !inRange(r, c, dim3) {
		return transformErrorf(fmt.Sprintf("Matrix3.Set(%d,%d)", r, c), ErrOutOfRange)
	}
	m[r*dim3+c] = v

	return nil
}

// Transposed returns m with rows and columns swapped.
func (m Matrix3) Transposed() Matrix3 {
	var t Matrix3
	for r := 0; r < dim3; r++ {
		for c := 0; c < dim3; c++ {
			t[c*dim3+r] = m[r*dim3+c]
		}
	}

	return t
}

// F32 returns m as an x/image f32.Mat3.
func (m Matrix3) F32() f32.Mat3 {
	return f32.Mat3(m)
}

// String formats m as three bracketed rows.
func (m Matrix3) String() string {
	return formatRows(m[:], dim3)
}

// ---------- helpers ----------

func inRange(r, c, n int) bool {
	return r >= 0 && r < n && c >= 0 && c < n
}

func formatRows(cells []float32, n int) string {
	var sb strings.Builder
	for r := 0; r < n; r++ {
		sb.WriteByte('[')
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "% .4f", cells[r*n+c])
		}
		sb.WriteByte(']')
		if r < n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
