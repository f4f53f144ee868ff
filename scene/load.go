// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lgebra/transform"
)

// Parse decodes a YAML scene over Default and validates it.
func Parse(data []byte) (Scene, error) {
	sc := Default()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scene{}, sceneErrorf("Parse", ErrDecode, err)
	}
	if err := sc.Validate(); err != nil {
		return Scene{}, err
	}

	return sc, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: load %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Encode renders sc as YAML; Parse(Encode(sc)) round-trips.
func Encode(sc Scene) ([]byte, error) {
	out, err := yaml.Marshal(sc)
	if err != nil {
		return nil, fmt.Errorf("scene: encode: %w", err)
	}

	return out, nil
}

// Validate checks the window, layout, projection and model, in that order,
// returning the first violation.
func (s Scene) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return sceneErrorf(fmt.Sprintf("window %dx%d", s.Window.Width, s.Window.Height), ErrBadWindow, nil)
	}

	switch s.Layout {
	case RowMajor, ColumnMajor:
	default:
		return sceneErrorf(fmt.Sprintf("layout %q", s.Layout), ErrBadLayout, nil)
	}

	if err := s.validateProjection(); err != nil {
		return err
	}

	return s.validateModel()
}

func (s Scene) validateProjection() error {
	p := s.Projection
	switch p.Kind {
	case Perspective:
		if err := transform.ValidateFinite(p.Fov, p.Near, p.Far); err != nil {
			return sceneErrorf("projection", ErrBadProjection, err)
		}
		err := transform.ValidatePerspective(p.Fov, s.Aspect(), p.Near, p.Far, transform.DefaultEpsilon)
		if err != nil {
			return sceneErrorf("projection", ErrBadProjection, err)
		}
	case Orthographic:
		if err := transform.ValidateFinite(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far); err != nil {
			return sceneErrorf("projection", ErrBadProjection, err)
		}
		if err := transform.ValidateOrthographic(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far); err != nil {
			return sceneErrorf("projection", ErrBadProjection, err)
		}
	default:
		return sceneErrorf(fmt.Sprintf("projection kind %q", p.Kind), ErrBadProjection, nil)
	}

	return nil
}

func (s Scene) validateModel() error {
	m := s.Model
	for i, r := range m.Rotations {
		if err := transform.ValidateFinite(r.Degrees, r.Speed); err != nil {
			return sceneErrorf(fmt.Sprintf("model.rotations[%d]", i), ErrBadModel, err)
		}
	}
	if err := transform.ValidateFinite(m.Scale.X, m.Scale.Y, m.Scale.Z); err != nil {
		return sceneErrorf("model.scale", ErrBadModel, err)
	}
	if err := transform.ValidateFinite(m.Translate.X, m.Translate.Y, m.Translate.Z); err != nil {
		return sceneErrorf("model.translate", ErrBadModel, err)
	}
	if err := transform.ValidateFinite(s.Camera.X, s.Camera.Y, s.Camera.Z); err != nil {
		return sceneErrorf("camera", ErrBadModel, err)
	}

	return nil
}
