// SPDX-License-Identifier: MIT

// Package transform: value types and the two construction/rotation tags.
// Matrices are fixed-size arrays so that assignment copies them and no two
// matrices can ever share storage.
package transform

import (
	"fmt"
	"strings"
)

// Vector3 is a 3-component input vector (translation offset, scale factors).
// The transform operations read it and never modify it.
type Vector3 struct {
	X, Y, Z float32
}

// Matrix3 is a 3×3 matrix stored row-major: m[3*r + c].
type Matrix3 [9]float32

// Matrix4 is a 4×4 homogeneous transform stored row-major: m[4*r + c].
type Matrix4 [16]float32

// Dimensions of the two matrix types.
const (
	dim3 = 3
	dim4 = 4
)

// Kind selects the fill pattern used by NewMatrix4 / NewMatrix3.
type Kind int

const (
	// Empty fills every coefficient with 0.
	Empty Kind = iota
	// Identity puts 1 on the main diagonal and 0 elsewhere.
	Identity
)

// String returns the lower-case name of k, or "Kind(n)" for unknown values.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Identity:
		return "identity"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "empty" / "identity" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty":
		return Empty, nil
	case "identity":
		return Identity, nil
	default:
		return Empty, transformErrorf(fmt.Sprintf("ParseKind(%q)", s), ErrUnknownKind)
	}
}

// Plane names the axis a rotation is performed about.
//
//   - PlaneX rotates the Y–Z sub-block (about the X axis).
//   - PlaneY rotates the X–Z sub-block (about the Y axis).
//   - PlaneZ rotates the X–Y sub-block (about the Z axis).
type Plane int

const (
	PlaneX Plane = iota
	PlaneY
	PlaneZ
)

// String returns "x", "y", "z", or "Plane(n)" for unknown values.
func (p Plane) String() string {
	switch p {
	case PlaneX:
		return "x"
	case PlaneY:
		return "y"
	case PlaneZ:
		return "z"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// ParsePlane maps "x" / "y" / "z" (case-insensitive) to a Plane.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return PlaneX, nil
	case "y":
		return PlaneY, nil
	case "z":
		return PlaneZ, nil
	default:
		return PlaneX, transformErrorf(fmt.Sprintf("ParsePlane(%q)", s), ErrUnknownPlane)
	}
}

// MarshalText implements encoding.TextMarshaler ("x", "y", "z").
func (p Plane) MarshalText() ([]byte, error) {
	switch p {
	case PlaneX, PlaneY, PlaneZ:
		return []byte(p.String()), nil
	default:
		return nil, transformErrorf("Plane.MarshalText", ErrUnknownPlane)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler via ParsePlane.
func (p *Plane) UnmarshalText(text []byte) error {
	v, err := ParsePlane(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}
