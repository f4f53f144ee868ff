// SPDX-License-Identifier: MIT

package render_test

import (
	"errors"

	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lgebra/render"
)

var errSinkDown = errors.New("sink down")

// upload is one recorded UniformMatrix4 call.
type upload struct {
	name string
	m    f32.Mat4
}

// recordingSink records every call; failOn makes the named uniform fail.
type recordingSink struct {
	uploads []upload
	modes   []render.PolygonMode
	failOn  string
}

func (s *recordingSink) UniformMatrix4(name string, m f32.Mat4) error {
	if name == s.failOn {
		return errSinkDown
	}
	s.uploads = append(s.uploads, upload{name: name, m: m})

	return nil
}

func (s *recordingSink) SetPolygonMode(mode render.PolygonMode) error {
	s.modes = append(s.modes, mode)

	return nil
}

// uniformOnlySink implements UniformSink but not PolygonModeSink.
type uniformOnlySink struct{ n int }

func (s *uniformOnlySink) UniformMatrix4(string, f32.Mat4) error {
	s.n++

	return nil
}
