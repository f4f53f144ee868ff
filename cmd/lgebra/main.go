// SPDX-License-Identifier: MIT

// Command lgebra runs a scene headlessly: it builds the model, view and
// projection uniforms for a number of frames and prints what a GPU pipeline
// would receive.
//
// Usage:
//
//	lgebra [-frames N] [-fps F] [-keys 30:x,90:escape] [-dump] [scene.yaml]
//
// Without a scene file the built-in default scene is used. -keys injects key
// presses at given frame numbers (x toggles wireframe, escape closes).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lgebra/render"
	"github.com/katalvlaran/lgebra/scene"
	"github.com/katalvlaran/lgebra/transform"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lgebra: ")

	frames := flag.Int("frames", 3, "number of frames to render")
	fps := flag.Float64("fps", 60, "simulated frames per second")
	keys := flag.String("keys", "", "comma-separated frame:key presses (keys: x, escape)")
	dump := flag.Bool("dump", false, "print the effective scene as YAML and exit")
	flag.Parse()

	sc := scene.Default()
	if path := flag.Arg(0); path != "" {
		var err error
		if sc, err = scene.Load(path); err != nil {
			log.Fatal(err)
		}
	}

	if *dump {
		out, err := scene.Encode(sc)
		if err != nil {
			log.Fatal(err)
		}
		_, _ = os.Stdout.Write(out)
		return
	}

	presses, err := parseKeys(*keys)
	if err != nil {
		log.Fatal(err)
	}
	if *fps <= 0 {
		log.Fatalf("-fps must be positive, got %v", *fps)
	}

	if err := run(os.Stdout, sc, *frames, *fps, presses); err != nil {
		log.Fatal(err)
	}
}

// run steps the renderer frame by frame, feeding the scheduled key presses
// before each frame.
func run(w io.Writer, sc scene.Scene, frames int, fps float64, presses map[int][]render.Key) error {
	r, err := render.NewRenderer(sc)
	if err != nil {
		return err
	}
	log.Printf("scene %q %dx%d, %s projection, %s upload",
		sc.Window.Title, sc.Window.Width, sc.Window.Height, sc.Projection.Kind, r.Layout())

	sink := &printSink{w: w}
	for i := 0; i < frames; i++ {
		for _, k := range presses[i] {
			r.HandleKey(k, render.Press)
		}
		sink.frame = i
		err := r.Step(float64(i)/fps, sink)
		if errors.Is(err, render.ErrClosed) {
			log.Printf("closed at frame %d", i)
			break
		}
		if err != nil {
			return err
		}
	}
	log.Printf("rendered %d frame(s)", r.Frames())

	return nil
}

// parseKeys reads "frame:key,frame:key".
func parseKeys(s string) (map[int][]render.Key, error) {
	out := make(map[int][]render.Key)
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, item := range strings.Split(s, ",") {
		frame, name, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("-keys: %q: want frame:key", item)
		}
		n, err := strconv.Atoi(frame)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("-keys: %q: bad frame number", item)
		}
		var k render.Key
		switch strings.ToLower(name) {
		case "x":
			k = render.KeyX
		case "escape", "esc":
			k = render.KeyEscape
		default:
			return nil, fmt.Errorf("-keys: %q: unknown key", item)
		}
		out[n] = append(out[n], k)
	}

	return out, nil
}

// printSink writes each uniform as a 4×4 block in its upload order.
type printSink struct {
	w     io.Writer
	frame int
}

func (p *printSink) UniformMatrix4(name string, m f32.Mat4) error {
	_, err := fmt.Fprintf(p.w, "frame %d %s\n%s\n", p.frame, name, transform.Matrix4(m))

	return err
}

func (p *printSink) SetPolygonMode(mode render.PolygonMode) error {
	_, err := fmt.Fprintf(p.w, "frame %d polygon mode %s\n", p.frame, mode)

	return err
}
