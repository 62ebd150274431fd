// Package input polls the keyboard through ebiten and turns it into the
// discrete control signals the simulation consumes: pan, zoom, the three
// system rotations, the pause toggles and quit. The key map lives here; the
// rest of the engine never sees ebiten key codes.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/auyjos/solarsystem/engine/orbit"
)

// Tuning for held keys, in units per second of real time.
const (
	panSpeed  = 240.0 // screen pixels
	zoomSpeed = 0.9   // zoom level
	rotSpeed  = 1.6   // radians
)

// State tracks per-frame keyboard state.
type State struct {
	quit      bool
	wireframe bool
}

func NewState() *State { return &State{} }

// Poll reads the keyboard and returns the control deltas for a frame that
// lasted dt real seconds. Held keys scale with dt so control speed is
// independent of frame rate; toggles fire once per key press.
func (s *State) Poll(dt float64) orbit.Controls {
	var c orbit.Controls

	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		c.PanX += panSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		c.PanX -= panSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		c.PanY -= panSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		c.PanY += panSpeed * dt
	}

	if ebiten.IsKeyPressed(ebiten.KeyS) {
		c.Zoom += zoomSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		c.Zoom -= zoomSpeed * dt
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		c.RotX -= rotSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		c.RotX += rotSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		c.RotY -= rotSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		c.RotY += rotSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyT) {
		c.RotZ -= rotSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyY) {
		c.RotZ += rotSpeed * dt
	}

	c.ToggleSpin = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	c.ToggleOrbit = inpututil.IsKeyJustPressed(ebiten.KeyO)

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.wireframe = !s.wireframe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.quit = true
	}

	return c
}

// Quit reports whether the user asked to close the app.
func (s *State) Quit() bool { return s.quit }

// Wireframe reports whether the wireframe view is toggled on.
func (s *State) Wireframe() bool { return s.wireframe }
