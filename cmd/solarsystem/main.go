// Command solarsystem renders an animated solar system with a software
// rasterizer and procedurally shaded planets. The window, input polling and
// final blit go through ebiten; everything between clear and present is CPU.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/auyjos/solarsystem/engine/input"
	"github.com/auyjos/solarsystem/engine/logging"
	"github.com/auyjos/solarsystem/engine/math3d"
	"github.com/auyjos/solarsystem/engine/orbit"
	"github.com/auyjos/solarsystem/engine/raster"
	"github.com/auyjos/solarsystem/engine/scene"
	"github.com/auyjos/solarsystem/engine/shading"
)

const (
	sphereSegments = 48
	sphereRings    = 24
	starCount      = 800
)

var background = math3d.Color3{R: 0.02, G: 0.02, B: 0.05}

// renderBody pairs a body's catalog index with its mesh and shader. Bodies
// whose mesh failed to load are simply absent from this list; the orbit
// system still tracks them so children keep orbiting correctly.
type renderBody struct {
	index int
	mesh  *scene.Mesh
	shade raster.ShadeFunc
}

// Game implements ebiten.Game: Update advances the simulation with real
// elapsed time, Draw runs the software pipeline into the framebuffer and
// blits it.
type Game struct {
	fb     *raster.Framebuffer
	system *orbit.System
	input  *input.State
	bodies []renderBody

	lastTime time.Time
}

// NewGame assembles the scene. Meshes are built (or loaded) once here and
// shared read-only across all frames.
func NewGame(w, h int, modelPath string, stars bool, logger *logging.Logger) *Game {
	catalog := scene.DefaultSystem()

	fb := raster.NewFramebuffer(w, h, background)
	if stars {
		fb.GenerateStars(starCount)
	}

	g := &Game{
		fb:       fb,
		system:   orbit.NewSystem(catalog, math3d.V3(float64(w)/2, float64(h)/2, 0)),
		input:    input.NewState(),
		lastTime: time.Now(),
	}

	sphere := scene.MakeSphere(sphereSegments, sphereRings)
	ring := scene.MakeFlatRing(scene.RingInnerRadius, scene.RingOuterRadius, 64)

	// Models are loaded once and shared between bodies referencing the same
	// path. A failed load skips the referencing bodies for this session;
	// everything else renders normally.
	cache := map[string]*scene.Mesh{}
	loadModel := func(path string) *scene.Mesh {
		if m, ok := cache[path]; ok {
			return m
		}
		m, err := scene.LoadOBJ(path)
		if err != nil {
			logger.Warn("model %s unavailable, bodies using it are skipped: %v", path, err)
			m = nil
		} else {
			logger.Info("model %s: %d triangles", path, len(m.Triangles))
		}
		cache[path] = m
		return m
	}

	for i, b := range catalog {
		mesh := sphere
		switch {
		case b.Kind == scene.KindRing:
			mesh = ring
		case b.Model != "":
			mesh = loadModel(b.Model)
		case modelPath != "":
			mesh = loadModel(modelPath)
		}
		if mesh == nil {
			continue
		}
		g.bodies = append(g.bodies, renderBody{index: i, mesh: mesh, shade: shading.ForKind(b.Kind)})
		logger.Debug("body %s (%s): %d triangles", b.Name, b.Kind, len(mesh.Triangles))
	}
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastTime).Seconds()
	g.lastTime = now
	// Cap frame time so a stall doesn't teleport the planets.
	if dt > 0.25 {
		dt = 0.25
	}

	controls := g.input.Poll(dt)
	if g.input.Quit() {
		return ebiten.Termination
	}

	g.system.Apply(controls)
	g.system.Advance(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.fb.Clear()

	wire := g.input.Wireframe()
	for _, rb := range g.bodies {
		u := g.system.UniformsFor(rb.index)
		if wire {
			raster.DrawMeshWire(rb.mesh, u, g.fb, math3d.Color3{R: 0.3, G: 0.9, B: 0.4})
		} else {
			raster.DrawMesh(rb.mesh, u, g.fb, rb.shade)
		}
	}

	screen.WritePixels(g.fb.Pix())

	info := fmt.Sprintf("FPS: %.0f  TPS: %.0f\nTime: %.1fs  Zoom: %.2f\nSpin: %s  Orbit: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.system.Time, g.system.ZoomLvl,
		pausedLabel(g.system.SpinPaused), pausedLabel(g.system.OrbitPaused))
	ebitenutil.DebugPrint(screen, info)

	controls := "Arrows: pan | S/A: zoom | Q/W E/R T/Y: rotate\nSpace: pause spin | O: pause orbit | L: wireframe | Esc: quit"
	ebitenutil.DebugPrintAt(screen, controls, 10, g.fb.H-36)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.W, g.fb.H
}

func pausedLabel(paused bool) string {
	if paused {
		return "paused"
	}
	return "running"
}

func main() {
	width := flag.Int("width", 800, "Window width in pixels")
	height := flag.Int("height", 600, "Window height in pixels")
	modelPath := flag.String("model", "", "Optional OBJ model to use for planets instead of generated spheres")
	stars := flag.Bool("stars", true, "Draw the star field background")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	game := NewGame(*width, *height, *modelPath, *stars, logger)
	logger.Info("solar system: %d bodies, %dx%d", len(game.bodies), *width, *height)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Solar System (Software Renderer)")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
