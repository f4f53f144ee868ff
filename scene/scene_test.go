// SPDX-License-Identifier: MIT

package scene_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lgebra/scene"
	"github.com/katalvlaran/lgebra/transform"
)

const tutorialScene = `
window: {width: 1280, height: 720, title: "Learning OpenGL"}
layout: row-major
projection:
  kind: perspective
  fov: 60
  near: 0.5
  far: 50
camera: {x: 0, y: -1, z: -5}
model:
  rotations:
    - {plane: x, degrees: -55}
    - {plane: Z, speed: 90}
  scale: {x: 0.5, y: 0.5, z: 0.5}
  translate: {x: 1}
`

func TestDefault_IsValid(t *testing.T) {
	sc := scene.Default()
	require.NoError(t, sc.Validate())
	assert.Equal(t, scene.Perspective, sc.Projection.Kind)
	assert.Equal(t, scene.ColumnMajor, sc.Layout)
	assert.InDelta(t, 800.0/600.0, sc.Aspect(), 1e-6)
	assert.Equal(t, transform.Vector3{X: 1, Y: 1, Z: 1}, sc.Model.Scale)
}

func TestParse_Full(t *testing.T) {
	sc, err := scene.Parse([]byte(tutorialScene))
	require.NoError(t, err)

	assert.Equal(t, scene.Window{Width: 1280, Height: 720, Title: "Learning OpenGL"}, sc.Window)
	assert.Equal(t, scene.RowMajor, sc.Layout)
	assert.Equal(t, float32(60), sc.Projection.Fov)
	assert.Equal(t, transform.Vector3{Y: -1, Z: -5}, sc.Camera)
	require.Len(t, sc.Model.Rotations, 2)
	assert.Equal(t, scene.Rotation{Plane: transform.PlaneX, Degrees: -55}, sc.Model.Rotations[0])
	assert.Equal(t, scene.Rotation{Plane: transform.PlaneZ, Speed: 90}, sc.Model.Rotations[1])
	assert.Equal(t, transform.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, sc.Model.Scale)
	assert.Equal(t, transform.Vector3{X: 1}, sc.Model.Translate)
}

// TestParse_KeepsDefaults fills omitted fields from Default.
func TestParse_KeepsDefaults(t *testing.T) {
	sc, err := scene.Parse([]byte("window: {width: 640}\n"))
	require.NoError(t, err)

	def := scene.Default()
	assert.Equal(t, 640, sc.Window.Width)
	assert.Equal(t, def.Window.Height, sc.Window.Height)
	assert.Equal(t, def.Projection, sc.Projection)
	assert.Equal(t, def.Camera, sc.Camera)

	empty, err := scene.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, def, empty)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"syntax", "window: [", scene.ErrDecode},
		{"unknown plane", "model: {rotations: [{plane: w}]}", transform.ErrUnknownPlane},
		{"zero height", "window: {height: 0}", scene.ErrBadWindow},
		{"negative width", "window: {width: -1}", scene.ErrBadWindow},
		{"layout", "layout: diagonal", scene.ErrBadLayout},
		{"kind", "projection: {kind: fisheye}", scene.ErrBadProjection},
		{"flat depth", "projection: {near: 1, far: 1}", transform.ErrDegenerateProjection},
		{"singular fov", "projection: {fov: 180}", transform.ErrDegenerateProjection},
		{"ortho box", "projection: {kind: orthographic, left: 2, right: 2}", transform.ErrDegenerateProjection},
		{"ortho nan", "projection: {kind: orthographic, top: .nan}", transform.ErrNaNInf},
		{"rotation inf", "model: {rotations: [{plane: y, speed: .inf}]}", scene.ErrBadModel},
		{"scale nan", "model: {scale: {x: .nan}}", scene.ErrBadModel},
		{"camera inf", "camera: {z: -.inf}", scene.ErrBadModel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_ProjectionWrapsBoth keeps both the scene and transform sentinels.
func TestParse_ProjectionWrapsBoth(t *testing.T) {
	_, err := scene.Parse([]byte("projection: {near: 2, far: 2}"))
	require.ErrorIs(t, err, scene.ErrBadProjection)
	require.ErrorIs(t, err, transform.ErrDegenerateProjection)
}

func TestEncode_RoundTrip(t *testing.T) {
	sc, err := scene.Parse([]byte(tutorialScene))
	require.NoError(t, err)

	out, err := scene.Encode(sc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "plane: z")

	back, err := scene.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, sc, back)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tutorialScene), 0o600))

	sc, err := scene.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, sc.Window.Width)

	_, err = scene.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("layout: sideways"), 0o600))
	_, err = scene.Load(bad)
	require.ErrorIs(t, err, scene.ErrBadLayout)
	assert.Contains(t, err.Error(), bad)
}

func TestRotation_AngleAt(t *testing.T) {
	r := scene.Rotation{Plane: transform.PlaneZ, Degrees: 10, Speed: 50}
	assert.InDelta(t, 10, r.AngleAt(0), 1e-6)
	assert.InDelta(t, 60, r.AngleAt(1), 1e-6)
	assert.InDelta(t, 10, r.AngleAt(7.2), 1e-4, "360° wrap")

	neg := scene.Rotation{Degrees: -30, Speed: -100}
	got := neg.AngleAt(10)
	assert.InDelta(t, math.Mod(-1030, 360), got, 1e-4)
	assert.Greater(t, got, float32(-360))
}
