// SPDX-License-Identifier: MIT

// Package scene describes, in YAML, everything a frame needs to build its
// model, view and projection matrices: window size (for the aspect ratio),
// upload layout, projection parameters, camera offset and the animated model
// transform.
//
// A minimal file:
//
//	window: {width: 800, height: 600}
//	projection: {kind: perspective, fov: 45, near: 0.1, far: 100}
//	model:
//	  rotations:
//	    - {plane: x, degrees: -55}
//	    - {plane: z, speed: 50}   # degrees per second
//
// Every omitted field keeps the value from Default. Parse and Load validate
// the result and report problems with the sentinels in errors.go.
package scene
