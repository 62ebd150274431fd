// Package shading synthesizes planetary surface colors procedurally. Every
// shader is a pure function of (fragment, uniforms): the same inputs always
// produce the same color, with no texture sampling and no random source.
package shading

import (
	"math"

	"github.com/auyjos/solarsystem/engine/math3d"
)

// latticeHash maps an integer lattice point to [0,1) with coordinate-mixing
// primes and an avalanche step. The salt keeps the all-zero point from
// hashing to zero, which would pin the origin. No random source: the lattice
// never changes between runs.
func latticeHash(x, y, z int64) float64 {
	h := uint64(x)*73856093 ^ uint64(y)*19349663 ^ uint64(z)*83492791 ^ 0x9e3779b97f4a7c15
	h ^= h >> 13
	h *= 0x9e3779b97f4a7c15
	h ^= h >> 31
	return float64(h%1_000_000) / 1_000_000
}

// fade is the smooth interpolation curve applied between lattice points.
func fade(t float64) float64 { return t * t * (3 - 2*t) }

// Noise3 is deterministic 3D value noise in [0,1): trilinear interpolation
// of hashed lattice corners with a smoothstep fade.
func Noise3(p math3d.Vec3) float64 {
	x0, y0, z0 := math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)
	fx, fy, fz := fade(p.X-x0), fade(p.Y-y0), fade(p.Z-z0)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	corner := func(dx, dy, dz int64) float64 {
		return latticeHash(ix+dx, iy+dy, iz+dz)
	}

	c00 := lerp(corner(0, 0, 0), corner(1, 0, 0), fx)
	c10 := lerp(corner(0, 1, 0), corner(1, 1, 0), fx)
	c01 := lerp(corner(0, 0, 1), corner(1, 0, 1), fx)
	c11 := lerp(corner(0, 1, 1), corner(1, 1, 1), fx)

	return lerp(lerp(c00, c10, fy), lerp(c01, c11, fy), fz)
}

// FBM sums octaves of Noise3 with frequency doubling and amplitude halving
// per octave, normalized back to [0,1).
func FBM(p math3d.Vec3, octaves int) float64 {
	sum := 0.0
	amp := 0.5
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += amp * Noise3(p)
		norm += amp
		p = p.Scale(2)
		amp *= 0.5
	}
	return sum / norm
}

// Turbulence is FBM over folded noise, producing the billowy variation used
// for cloud and atmosphere layers. Result in [0,1).
func Turbulence(p math3d.Vec3, octaves int) float64 {
	sum := 0.0
	amp := 0.5
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += amp * math.Abs(2*Noise3(p)-1)
		norm += amp
		p = p.Scale(2)
		amp *= 0.5
	}
	return sum / norm
}

// smoothstep is the usual cubic threshold: 0 below edge0, 1 above edge1,
// smooth in between. Feature layers blend through it instead of hard cuts.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
