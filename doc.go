// Package lgebra is the transform math behind a small OpenGL tutorial
// renderer: the part that is more than thin wrapping of a graphics API.
//
// 🚀 What is lgebra?
//
//	A pure-Go, value-semantics toolkit that brings together:
//		• transform: Matrix4 / Matrix3 / Vector3, identity & empty factories,
//		  axis rotation, scale, translation, orthographic & perspective
//		• scene:     YAML scene files (window, camera, projection, animation)
//		• render:    wireframe/fill state, key handling, per-frame uniforms,
//		  row-/column-major upload contract
//
// ✨ Why choose lgebra?
//
//   - Fixed-size arrays: no allocation, no aliasing, copy by assignment
//   - Row-major layout identical to golang.org/x/image/math/f32
//   - Explicit degenerate-projection policy (IEEE in place, errors when checked)
//   - No global state: the polygon mode travels in a render.State value
//
// Layout:
//
//	transform/  — matrix/vector types and the transform operations
//	scene/      — scene description, defaults, validation
//	render/     — state machine, frame builder, uniform upload
//	cmd/lgebra/ — headless frame driver
//
//	go get github.com/katalvlaran/lgebra/transform
package lgebra
