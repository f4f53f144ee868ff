// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrBadWindow is returned for a non-positive window width or height.
	ErrBadWindow = errors.New("scene: invalid window size")

	// ErrBadLayout is returned for a layout other than row-major/column-major.
	ErrBadLayout = errors.New("scene: invalid layout")

	// ErrBadProjection is returned for an unknown projection kind or
	// parameters the projection cannot be built from.
	ErrBadProjection = errors.New("scene: invalid projection")

	// ErrBadModel is returned for non-finite model transform values.
	ErrBadModel = errors.New("scene: invalid model transform")

	// ErrDecode wraps YAML syntax and type errors.
	ErrDecode = errors.New("scene: decode failed")
)

// sceneErrorf tags a sentinel (and an optional cause) with the failing field.
func sceneErrorf(tag string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", tag, sentinel)
	}

	return fmt.Errorf("%s: %w: %w", tag, sentinel, cause)
}
