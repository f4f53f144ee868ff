// SPDX-License-Identifier: MIT

// Package render is the thin, GL-free layer between a scene and a graphics
// pipeline. It owns three things the pipeline itself should not:
//
//   - State: the polygon mode (fill/wireframe) and the close request, as an
//     immutable value updated by HandleKey. There is no package-level flag.
//   - Frame: the model, view and projection matrices for a point in time.
//   - Upload: handing those matrices to a UniformSink in the layout the
//     consumer expects. transform produces row-major data; a ColumnMajor
//     layout transposes before upload.
//
// Window creation, shader compilation and buffer setup live behind the
// UniformSink (and optional PolygonModeSink) interfaces.
package render
