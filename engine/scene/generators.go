package scene

import (
	"math"

	"github.com/auyjos/solarsystem/engine/math3d"
)

// MakeSphere builds a unit-radius UV sphere from latitude/longitude bands.
// Normals equal positions on a unit sphere, which the shaders rely on to
// recover latitude independent of spin.
func MakeSphere(segments, rings int) *Mesh {
	if segments < 8 {
		segments = 8
	}
	if rings < 4 {
		rings = 4
	}

	m := NewMesh()
	at := func(ring, seg int) Vertex {
		theta := float64(ring) / float64(rings) * math.Pi
		phi := float64(seg) / float64(segments) * 2 * math.Pi
		st, ct := math.Sincos(theta)
		sp, cp := math.Sincos(phi)
		p := math3d.V3(cp*st, ct, sp*st)
		return Vertex{
			Pos:    p,
			Normal: p,
			UV:     math3d.Vec2{X: float64(seg) / float64(segments), Y: float64(ring) / float64(rings)},
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			v00 := at(ring, seg)
			v01 := at(ring, seg+1)
			v10 := at(ring+1, seg)
			v11 := at(ring+1, seg+1)
			if ring > 0 {
				m.AddTriangle(v00, v10, v01) // skip degenerate cap triangles
			}
			if ring < rings-1 {
				m.AddTriangle(v01, v10, v11)
			}
		}
	}
	return m
}

// Stock ring extents in model units (the owning body's radius is 1).
const (
	RingInnerRadius = 1.4
	RingOuterRadius = 2.2
)

// MakeFlatRing builds a flat annulus in the XZ plane, two triangles per
// segment. Radii are in model units so the ring scales with its body.
func MakeFlatRing(innerR, outerR float64, segments int) *Mesh {
	if segments < 12 {
		segments = 12
	}

	m := NewMesh()
	up := math3d.V3(0, 1, 0)
	rim := func(r, angle, u float64) Vertex {
		s, c := math.Sincos(angle)
		return Vertex{
			Pos:    math3d.V3(r*c, 0, r*s),
			Normal: up,
			UV:     math3d.Vec2{X: u, Y: angle / (2 * math.Pi)},
		}
	}

	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * math.Pi
		a1 := float64(i+1) / float64(segments) * 2 * math.Pi
		m.AddQuad(
			rim(innerR, a0, 0),
			rim(outerR, a0, 1),
			rim(outerR, a1, 1),
			rim(innerR, a1, 0),
		)
	}
	return m
}
