// Package orbit owns the per-session animation state: accumulated spin and
// orbital angles for every body, the pause flags, and the camera/system
// transform. Each frame it derives one Uniforms bundle per body for the
// rasterizer. Nothing here is global; the whole state is an explicit value
// advanced by the render loop.
package orbit

import (
	"math"

	"github.com/auyjos/solarsystem/engine/math3d"
	"github.com/auyjos/solarsystem/engine/scene"
)

// Controls is one frame's worth of already-scaled input deltas from the
// window driver. Pan is in screen pixels, Rot in radians, Zoom is an
// additive factor change. The driver scales key state by real elapsed time
// before handing these over, so nothing here depends on frame rate.
type Controls struct {
	PanX, PanY       float64
	Zoom             float64
	RotX, RotY, RotZ float64
	ToggleSpin       bool
	ToggleOrbit      bool
}

const (
	minZoom = 0.3
	maxZoom = 3.0
)

type bodyState struct {
	spin  float64 // accumulated spin angle, radians
	orbit float64 // accumulated orbital angle, radians
}

// System is the complete animation state for one session.
type System struct {
	Bodies []scene.Body

	SpinPaused  bool
	OrbitPaused bool

	// Camera/system transform, driven by input.
	Pan      math3d.Vec3
	ZoomLvl  float64
	Rotation math3d.Vec3

	// Screen-space pivot the whole system is centered on.
	Center math3d.Vec3

	Time   float64
	states []bodyState
	index  map[string]int // body name -> slice index, for parent lookup
}

// NewSystem builds the animation state for a body catalog, centered on the
// given screen position.
func NewSystem(bodies []scene.Body, center math3d.Vec3) *System {
	s := &System{
		Bodies:  bodies,
		ZoomLvl: 1,
		Center:  center,
		states:  make([]bodyState, len(bodies)),
		index:   make(map[string]int, len(bodies)),
	}
	for i, b := range bodies {
		s.index[b.Name] = i
	}
	return s
}

// Apply folds one frame of control input into the camera state and pause
// flags.
func (s *System) Apply(c Controls) {
	s.Pan.X += c.PanX
	s.Pan.Y += c.PanY
	s.ZoomLvl += c.Zoom
	if s.ZoomLvl < minZoom {
		s.ZoomLvl = minZoom
	}
	if s.ZoomLvl > maxZoom {
		s.ZoomLvl = maxZoom
	}
	s.Rotation.X += c.RotX
	s.Rotation.Y += c.RotY
	s.Rotation.Z += c.RotZ
	if c.ToggleSpin {
		s.SpinPaused = !s.SpinPaused
	}
	if c.ToggleOrbit {
		s.OrbitPaused = !s.OrbitPaused
	}
}

// Advance integrates spin and orbital angles by dt seconds of real elapsed
// time. Spin and orbit pause independently; paused angles simply stop
// accumulating and resume where they left off.
func (s *System) Advance(dt float64) {
	s.Time += dt
	for i, b := range s.Bodies {
		if !s.SpinPaused {
			s.states[i].spin += b.SpinRate * dt
		}
		if !s.OrbitPaused {
			s.states[i].orbit += b.OrbitRate * dt
		}
	}
}

// SpinAngle returns body i's accumulated spin angle.
func (s *System) SpinAngle(i int) float64 { return s.states[i].spin }

// OrbitAngle returns body i's accumulated orbital angle.
func (s *System) OrbitAngle(i int) float64 { return s.states[i].orbit }

// rawPosition is body i's position relative to the system pivot, before the
// camera transform: the parent chain's position plus this body's orbital
// offset, tilted into its orbital plane. A valid parent chain visits each
// body at most once, so recursion is capped at the catalog size; a cyclic
// configuration bottoms out at the pivot instead of recursing forever.
func (s *System) rawPosition(i int) math3d.Vec3 {
	return s.chainPosition(i, len(s.Bodies))
}

func (s *System) chainPosition(i, depth int) math3d.Vec3 {
	b := s.Bodies[i]

	var pivot math3d.Vec3
	if b.Parent != "" && depth > 0 {
		if pi, ok := s.index[b.Parent]; ok && pi != i {
			pivot = s.chainPosition(pi, depth-1)
		}
	}

	if b.OrbitRadius == 0 {
		return pivot
	}
	sa, ca := math.Sincos(s.states[i].orbit)
	offset := math3d.V3(ca*b.OrbitRadius, 0, sa*b.OrbitRadius)
	// Constant axis tilt of the orbital plane.
	offset = math3d.RotateXYZ(offset, math3d.V3(b.Inclination, 0, 0))
	return pivot.Add(offset)
}

// Position returns body i's position relative to the system pivot (camera
// transform not applied). Exposed for tests and debugging overlays.
func (s *System) Position(i int) math3d.Vec3 { return s.rawPosition(i) }

// global returns the camera/system transform: system rotation, zoom, then
// translation to the screen pivot plus pan.
func (s *System) global() math3d.Mat4 {
	m := math3d.Mat4RotateX(s.Rotation.X)
	m = math3d.Mat4RotateY(s.Rotation.Y).Mul(m)
	m = math3d.Mat4RotateZ(s.Rotation.Z).Mul(m)
	m = math3d.Mat4Scale(s.ZoomLvl, s.ZoomLvl, s.ZoomLvl).Mul(m)
	t := s.Center.Add(s.Pan)
	return math3d.Mat4Translate(t.X, t.Y, t.Z).Mul(m)
}

// UniformsFor builds body i's per-draw Uniforms for the current frame:
// global transform ∘ translate(orbit position) ∘ rotate(spin about local up)
// ∘ scale(radius). Translating before rotating keeps the body spinning about
// its own axis while it orbits.
func (s *System) UniformsFor(i int) scene.Uniforms {
	b := s.Bodies[i]
	p := s.rawPosition(i)

	model := math3d.Mat4Scale(b.Radius, b.Radius, b.Radius)
	model = math3d.Mat4RotateY(s.states[i].spin).Mul(model)
	model = math3d.Mat4Translate(p.X, p.Y, p.Z).Mul(model)
	model = s.global().Mul(model)

	return scene.Uniforms{
		Model: model,
		Time:  s.Time,
		Kind:  b.Kind,
		Bands: b.Bands,
		Spot:  b.Spot,
		Seed:  b.Seed,
	}
}
