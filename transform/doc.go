// SPDX-License-Identifier: MIT

// Package transform builds the 4×4 (and 3×3) matrices a renderer needs to
// place, orient and project 3D geometry.
//
// 🚀 What is in here?
//
//	A deliberately small, value-semantics toolkit:
//	  • Matrix4 / Matrix3 — fixed arrays of float32 in row-major order
//	  • NewMatrix4 / NewMatrix3 — Empty (all zero) or Identity factories
//	  • Rotate    — axis rotation about X, Y or Z (degrees)
//	  • Scale     — non-uniform scale of the diagonal (multiplies)
//	  • Translate — translation column (overwrites)
//	  • Orthographic / Perspective — projection terms, in place
//	  • NewOrthographic / NewPerspective — checked constructors
//
// ✨ Semantics worth knowing:
//
//   - Rotate and Translate OVERWRITE their cells. Rotating twice about the
//     same axis keeps only the last angle; rotating about two different axes
//     is how combined rotations are built.
//   - Scale MULTIPLIES the diagonal, so Rotate→Scale and Scale→Rotate give
//     different matrices. The order is part of the contract.
//   - Orthographic and Perspective touch only their own cells; start from an
//     identity matrix for a correct projection.
//   - There is no matrix multiplication, inversion or quaternion support.
//
// Layout:
//
//	index(r, c) = r*N + c     (N = 4 for Matrix4, N = 3 for Matrix3)
//
//	A Matrix4 has the same memory layout as golang.org/x/image/math/f32.Mat4,
//	so F32 is a plain conversion. Consumers expecting column-major data
//	(OpenGL with transpose=false) must use Transposed.
//
// Degenerate input:
//
//	The in-place methods never fail; division by zero yields ±Inf/NaN per
//	IEEE 754. NewOrthographic and NewPerspective validate first and return
//	ErrDegenerateProjection (and, under the default numeric policy,
//	ErrNaNInf for non-finite input or output).
//
// ⚙️ Usage:
//
//	model := transform.NewMatrix4(transform.Identity)
//	model.Rotate(-55, transform.PlaneX)
//	model.Scale(transform.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
//	model.Translate(transform.Vector3{Z: -3})
//
//	proj, err := transform.NewPerspective(45, 800.0/600.0, 0.1, 100)
//
// Concurrency:
//
//	Matrices are plain values. Distinct matrices may be mutated from
//	different goroutines; the same matrix must be guarded by the caller.
package transform
