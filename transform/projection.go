// SPDX-License-Identifier: MIT

package transform

import "math"

// Orthographic writes the orthographic scale and offset terms into m:
//
//	(0,0) = 2/(r-l)   (0,3) = -(r+l)/(r-l)
//	(1,1) = 2/(t-b)   (1,3) = -(t+b)/(t-b)
//	(2,2) = 2/(f-n)   (2,3) = -(f+n)/(f-n)
//
// No other cell is touched, so m should start as identity. Degenerate input
// (r=l, t=b, f=n) yields IEEE ±Inf/NaN; see NewOrthographic for the checked form.
func (m *Matrix4) Orthographic(left, right, bottom, top, near, far float32) {
	rl := right - left
	tb := top - bottom
	fn := far - near

	m[0*dim4+0] = 2 / rl
	m[1*dim4+1] = 2 / tb
	m[2*dim4+2] = 2 / fn

	m[0*dim4+3] = -(right + left) / rl
	m[1*dim4+3] = -(top + bottom) / tb
	m[2*dim4+3] = -(far + near) / fn
}

// Perspective writes the perspective terms into m, with f = 1/tan(fov/2):
//
//	(0,0) = f/aspect
//	(1,1) = f
//	(2,2) = -(far+near)/(far-near)
//	(2,3) = -(2·far·near)/(far-near)
//	(3,2) = -1
//
// fovDegrees is the full vertical field of view in degrees. Cells not listed
// are left untouched. Degenerate input yields IEEE ±Inf/NaN.
func (m *Matrix4) Perspective(fovDegrees, aspect, near, far float32) {
	f := 1 / math.Tan(radians(fovDegrees)/2)
	fn := far - near

	m[0*dim4+0] = float32(f / float64(aspect))
	m[1*dim4+1] = float32(f)
	m[2*dim4+2] = -(far + near) / fn
	m[2*dim4+3] = -(2 * far * near) / fn
	m[3*dim4+2] = -1
}

// NewOrthographic returns an identity matrix with the orthographic terms
// applied, after validating the input.
//
// Implementation:
//   - Stage 1: resolve options; optionally reject non-finite parameters.
//   - Stage 2: ValidateOrthographic (always).
//   - Stage 3: build from identity; optionally reject a non-finite result
//     (float32 overflow for extremely thin boxes).
//
// Errors: ErrDegenerateProjection, ErrNaNInf.
func NewOrthographic(left, right, bottom, top, near, far float32, opts ...Option) (Matrix4, error) {
	o := NewOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(left, right, bottom, top, near, far); err != nil {
			return Matrix4{}, transformErrorf("NewOrthographic", err)
		}
	}
	if err := ValidateOrthographic(left, right, bottom, top, near, far); err != nil {
		return Matrix4{}, transformErrorf("NewOrthographic", err)
	}

	m := NewMatrix4(Identity)
	m.Orthographic(left, right, bottom, top, near, far)
	if o.validateNaNInf && !m.IsFinite() {
		return Matrix4{}, transformErrorf("NewOrthographic: result", ErrNaNInf)
	}

	return m, nil
}

// NewPerspective returns the standard perspective matrix after validating the
// input. It starts from an Empty matrix, so every cell Perspective does not
// write (including (3,3)) is zero and w receives -z. The policy mirrors
// NewOrthographic; WithEpsilon tunes the singular-tangent check.
//
// Errors: ErrDegenerateProjection, ErrNaNInf.
func NewPerspective(fovDegrees, aspect, near, far float32, opts ...Option) (Matrix4, error) {
	o := NewOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(fovDegrees, aspect, near, far); err != nil {
			return Matrix4{}, transformErrorf("NewPerspective", err)
		}
	}
	if err := ValidatePerspective(fovDegrees, aspect, near, far, o.eps); err != nil {
		return Matrix4{}, transformErrorf("NewPerspective", err)
	}

	m := NewMatrix4(Empty)
	m.Perspective(fovDegrees, aspect, near, far)
	if o.validateNaNInf && !m.IsFinite() {
		return Matrix4{}, transformErrorf("NewPerspective: result", ErrNaNInf)
	}

	return m, nil
}
