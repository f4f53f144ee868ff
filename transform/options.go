// SPDX-License-Identifier: MIT

// Package transform: functional numeric policy for the checked projection
// constructors (NewOrthographic, NewPerspective).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag changes what the constructors accept.
//   - Safe by construction: WithX panics only on nonsensical values.
package transform

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used to decide that tan(fov/2) is
	// singular (|cos| ≤ eps) or zero (|sin| ≤ eps).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf rejects non-finite parameters and results.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "transform: WithEpsilon: eps must be finite, non-negative"

// Option mutates the internal Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective policy after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the singular-tangent tolerance.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets non-finite parameters through; the checked
// constructors then reject only structurally degenerate input.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// Epsilon reports the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewOptions resolves opts over the defaults, later options overriding
// earlier ones. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
