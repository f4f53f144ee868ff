// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// All checked entry points return these sentinels (optionally wrapped with an
// operation tag); tests and callers MUST match them via errors.Is.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateProjection is returned when projection parameters force a
	// division by zero (right=left, top=bottom, far=near, aspect=0) or a
	// singular tangent (fov/2 an odd multiple of 90°, or tan(fov/2)=0).
	ErrDegenerateProjection = errors.New("transform: degenerate projection")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (projection inputs/outputs, tolerances).
	ErrNaNInf = errors.New("transform: NaN or Inf encountered")

	// ErrOutOfRange indicates that a row or column index is outside the matrix.
	ErrOutOfRange = errors.New("transform: index out of range")

	// ErrUnknownKind is returned by ParseKind for an unrecognized name.
	ErrUnknownKind = errors.New("transform: unknown matrix kind")

	// ErrUnknownPlane is returned by ParsePlane for an unrecognized name.
	ErrUnknownPlane = errors.New("transform: unknown rotation plane")
)

// transformErrorf tags err with the operation name, keeping errors.Is intact.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
