// SPDX-License-Identifier: MIT

package scene

import (
	"math"

	"github.com/katalvlaran/lgebra/transform"
)

// Projection kinds.
const (
	Perspective  = "perspective"
	Orthographic = "orthographic"
)

// Upload layouts.
const (
	RowMajor    = "row-major"
	ColumnMajor = "column-major"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTitle  = "lgebra"
	defaultFov    = 45
	defaultNear   = 0.1
	defaultFar    = 100
	defaultCamZ   = -3

	fullTurn = 360.0
)

// Scene is the full frame description.
type Scene struct {
	Window     Window            `yaml:"window"`
	Layout     string            `yaml:"layout"`
	Projection Projection        `yaml:"projection"`
	Camera     transform.Vector3 `yaml:"camera"`
	Model      Model             `yaml:"model"`
}

// Window carries the framebuffer size; only its ratio reaches the math.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Projection selects and parameterizes the projection matrix.
// Fov is used by Perspective; Left..Top by Orthographic; Near/Far by both.
type Projection struct {
	Kind   string  `yaml:"kind"`
	Fov    float32 `yaml:"fov"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
}

// Rotation is one axis rotation: Degrees at t=0 plus Speed degrees/second.
type Rotation struct {
	Plane   transform.Plane `yaml:"plane"`
	Degrees float32         `yaml:"degrees"`
	Speed   float32         `yaml:"speed"`
}

// Model is applied in order: rotations, then scale, then translate.
type Model struct {
	Rotations []Rotation        `yaml:"rotations"`
	Scale     transform.Vector3 `yaml:"scale"`
	Translate transform.Vector3 `yaml:"translate"`
}

// Default returns the scene used when no file is given: a 45° perspective
// camera three units back from an unrotated, unit-scaled model.
func Default() Scene {
	return Scene{
		Window: Window{Width: defaultWidth, Height: defaultHeight, Title: defaultTitle},
		Layout: ColumnMajor,
		Projection: Projection{
			Kind: Perspective,
			Fov:  defaultFov,
			Near: defaultNear,
			Far:  defaultFar,
			Left: -1, Right: 1, Bottom: -1, Top: 1,
		},
		Camera: transform.Vector3{Z: defaultCamZ},
		Model: Model{
			Scale: transform.Vector3{X: 1, Y: 1, Z: 1},
		},
	}
}

// Aspect is width/height. Call Validate first; a zero height yields +Inf.
func (s Scene) Aspect() float32 {
	return float32(s.Window.Width) / float32(s.Window.Height)
}

// AngleAt returns the angle of r at time t seconds, reduced to (-360,360)
// so long-running animations keep float32 precision.
func (r Rotation) AngleAt(t float64) float32 {
	return float32(math.Mod(float64(r.Degrees)+float64(r.Speed)*t, fullTurn))
}
