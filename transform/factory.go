// SPDX-License-Identifier: MIT

package transform

// NewMatrix4 returns a fresh 4×4 matrix filled according to kind.
//
// Behavior:
//   - Empty    → all sixteen coefficients are 0.
//   - Identity → m[r*4+c] = 1 when r == c, else 0.
//   - any other Kind value falls back to the all-zero pattern.
//
// Complexity: O(1).
func NewMatrix4(kind Kind) Matrix4 {
	var m Matrix4
	if kind == Identity {
		for i := 0; i < dim4; i++ {
			m[i*dim4+i] = 1
		}
	}

	return m
}

// NewMatrix3 is the 3×3 counterpart of NewMatrix4 (m[r*3+c]).
func NewMatrix3(kind Kind) Matrix3 {
	var m Matrix3
	if kind == Identity {
		for i := 0; i < dim3; i++ {
			m[i*dim3+i] = 1
		}
	}

	return m
}
