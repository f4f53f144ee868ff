// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrClosed is returned by Renderer.Step after a close was requested.
	ErrClosed = errors.New("render: renderer closed")

	// ErrNilSink is returned when Upload or Step receives a nil sink.
	ErrNilSink = errors.New("render: nil uniform sink")

	// ErrUnknownLayout is returned by ParseLayout for an unrecognized name.
	ErrUnknownLayout = errors.New("render: unknown layout")
)
