// SPDX-License-Identifier: MIT
// Package: transform
//
// Purpose:
//  - Single source of truth for the projection preconditions.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// All checks are pure, allocate nothing on success and run in O(1).

package transform

import "math"

// ValidateOrthographic checks the three divisors of the orthographic terms.
//
// Errors: ErrDegenerateProjection when right == left, top == bottom or
// far == near.
func ValidateOrthographic(left, right, bottom, top, near, far float32) error {
	if right == left {
		return transformErrorf("ValidateOrthographic: right == left", ErrDegenerateProjection)
	}
	if top == bottom {
		return transformErrorf("ValidateOrthographic: top == bottom", ErrDegenerateProjection)
	}
	if far == near {
		return transformErrorf("ValidateOrthographic: far == near", ErrDegenerateProjection)
	}

	return nil
}

// ValidatePerspective checks aspect, depth range and the tangent of fov/2.
//
// The tangent is rejected when |cos(fov/2)| ≤ eps (singular: fov = 180°,
// 540°, …) or |sin(fov/2)| ≤ eps (zero: fov = 0°, 360°, …), so that
// f = 1/tan(fov/2) stays finite and non-zero.
//
// Errors: ErrDegenerateProjection; ErrNaNInf when eps is not finite.
func ValidatePerspective(fovDegrees, aspect, near, far float32, eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return transformErrorf("ValidatePerspective: eps", ErrNaNInf)
	}
	if aspect == 0 {
		return transformErrorf("ValidatePerspective: aspect == 0", ErrDegenerateProjection)
	}
	if far == near {
		return transformErrorf("ValidatePerspective: far == near", ErrDegenerateProjection)
	}

	s, c := math.Sincos(radians(fovDegrees) / 2)
	if math.Abs(c) <= eps {
		return transformErrorf("ValidatePerspective: tan(fov/2) singular", ErrDegenerateProjection)
	}
	if math.Abs(s) <= eps {
		return transformErrorf("ValidatePerspective: tan(fov/2) == 0", ErrDegenerateProjection)
	}

	return nil
}

// ValidateFinite returns ErrNaNInf if any value is NaN or ±Inf.
func ValidateFinite(values ...float32) error {
	for _, v := range values {
		if isNonFinite(v) {
			return transformErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

func isNonFinite(v float32) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}
