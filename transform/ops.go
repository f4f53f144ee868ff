// SPDX-License-Identifier: MIT
// Package transform: in-place model/view transforms.
//
// Rotate and Translate overwrite their cells; Scale multiplies the diagonal.
// This asymmetry is part of the public contract: per-frame code resets a single
// axis rotation by calling Rotate again, and relies on Scale seeing whatever
// the diagonal already holds.

package transform

import "math"

// degPerHalfTurn converts between degrees and radians together with math.Pi.
const degPerHalfTurn = 180.0

// radians converts degrees to radians in float64 precision.
func radians(deg float32) float64 {
	return float64(deg) * math.Pi / degPerHalfTurn
}

// Rotate writes the rotation by degrees about plane p into the matching 2×2
// sub-block of m:
//
//	PlaneX: (1,1)=cos  (1,2)=-sin  (2,1)=sin  (2,2)=cos
//	PlaneY: (0,0)=cos  (0,2)=sin   (2,0)=-sin (2,2)=cos
//	PlaneZ: (0,0)=cos  (0,1)=-sin  (1,0)=sin  (1,1)=cos
//
// Previous values in those four cells are discarded; an unknown plane leaves
// m unchanged. Trigonometry runs in float64 before narrowing to float32.
func (m *Matrix4) Rotate(degrees float32, p Plane) {
	s64, c64 := math.Sincos(radians(degrees))
	s, c := float32(s64), float32(c64)

	switch p {
	case PlaneX:
		m[1*dim4+1], m[1*dim4+2] = c, -s
		m[2*dim4+1], m[2*dim4+2] = s, c
	case PlaneY:
		m[0*dim4+0], m[0*dim4+2] = c, s
		m[2*dim4+0], m[2*dim4+2] = -s, c
	case PlaneZ:
		m[0*dim4+0], m[0*dim4+1] = c, -s
		m[1*dim4+0], m[1*dim4+1] = s, c
	}
}

// Scale multiplies the first three diagonal cells by v.X, v.Y and v.Z.
// The homogeneous cell (3,3) and every off-diagonal cell are left alone.
func (m *Matrix4) Scale(v Vector3) {
	m[0*dim4+0] *= v.X
	m[1*dim4+1] *= v.Y
	m[2*dim4+2] *= v.Z
}

// Translate overwrites the translation column: (0,3)=v.X, (1,3)=v.Y, (2,3)=v.Z.
// Repeated calls replace the offset, they do not accumulate it.
func (m *Matrix4) Translate(v Vector3) {
	m[0*dim4+3] = v.X
	m[1*dim4+3] = v.Y
	m[2*dim4+3] = v.Z
}
