// Command snapshot renders a single frame of the solar system offscreen and
// writes it to a PNG, for debugging shaders without opening a window. It
// renders at a supersampled resolution and downscales with Catmull-Rom.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/auyjos/solarsystem/engine/logging"
	"github.com/auyjos/solarsystem/engine/math3d"
	"github.com/auyjos/solarsystem/engine/orbit"
	"github.com/auyjos/solarsystem/engine/raster"
	"github.com/auyjos/solarsystem/engine/scene"
	"github.com/auyjos/solarsystem/engine/shading"
)

func main() {
	width := flag.Int("width", 800, "Output width in pixels")
	height := flag.Int("height", 600, "Output height in pixels")
	simTime := flag.Float64("t", 30, "Simulation time in seconds to render at")
	scale := flag.Int("supersample", 2, "Supersampling factor (1 disables)")
	out := flag.String("o", "frame.png", "Output PNG path")
	flag.Parse()

	logger := logging.New(logging.LevelInfo)

	ss := *scale
	if ss < 1 {
		ss = 1
	}
	rw, rh := *width*ss, *height*ss

	fb := raster.NewFramebuffer(rw, rh, math3d.Color3{R: 0.02, G: 0.02, B: 0.05})
	fb.GenerateStars(800 * ss)

	catalog := scene.DefaultSystem()
	system := orbit.NewSystem(catalog, math3d.V3(float64(rw)/2, float64(rh)/2, 0))
	system.ZoomLvl = float64(ss)
	system.Advance(*simTime)

	sphere := scene.MakeSphere(64, 32)
	ring := scene.MakeFlatRing(scene.RingInnerRadius, scene.RingOuterRadius, 96)

	for i, b := range catalog {
		mesh := sphere
		if b.Kind == scene.KindRing {
			mesh = ring
		}
		raster.DrawMesh(mesh, system.UniformsFor(i), fb, shading.ForKind(b.Kind))
	}
	logger.Info("rendered %d bodies at t=%.1fs (%dx%d)", len(catalog), *simTime, rw, rh)

	src := &image.RGBA{Pix: fb.Pix(), Stride: rw * 4, Rect: image.Rect(0, 0, rw, rh)}
	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		log.Fatal(err)
	}
	logger.Info("wrote %s", *out)
}
