package shading

import (
	"math"

	"github.com/auyjos/solarsystem/engine/math3d"
	"github.com/auyjos/solarsystem/engine/raster"
	"github.com/auyjos/solarsystem/engine/scene"
)

// ForKind returns the shading function for a body kind. The kind set is
// closed, so dispatch is a single switch resolved once per draw call.
func ForKind(kind scene.BodyKind) raster.ShadeFunc {
	switch kind {
	case scene.KindSun:
		return ShadeSun
	case scene.KindEarth:
		return ShadeEarth
	case scene.KindGasGiant:
		return ShadeGasGiant
	case scene.KindVenus:
		return ShadeVenus
	case scene.KindNeptune:
		return ShadeNeptune
	case scene.KindUranus:
		return ShadeUranus
	case scene.KindMoon:
		return ShadeMoon
	case scene.KindRing:
		return ShadeRing
	default:
		return ShadeDefault
	}
}

// surfacePoint projects the interpolated model-space position back onto the
// unit sphere. Latitude read from its Y is independent of the body's current
// spin and orbit, so polar features stay geographically fixed.
func surfacePoint(f raster.Fragment) math3d.Vec3 {
	return f.LocalPos.Normalize()
}

// facing is how directly the fragment's surface faces the viewer, in [0,1].
// The model matrix carries the fragment's normal into screen space, where
// the view axis is Z. Used for limb darkening.
func facing(f raster.Fragment, u scene.Uniforms) float64 {
	n := u.Model.TransformDir(f.Normal).Normalize()
	return math.Abs(n.Z)
}

// drift rotates a model-space anchor about the polar axis, for features that
// creep slowly across a surface over time.
func drift(anchor math3d.Vec3, angle float64) math3d.Vec3 {
	s, c := math.Sincos(angle)
	return math3d.V3(anchor.X*c+anchor.Z*s, anchor.Y, -anchor.X*s+anchor.Z*c)
}

// spotMask is a smooth-thresholded distance field around an anchor point on
// the unit sphere: 1 at the center, 0 beyond radius+soft.
func spotMask(p, anchor math3d.Vec3, radius, soft float64) float64 {
	return 1 - smoothstep(radius, radius+soft, p.Sub(anchor.Normalize()).Len())
}

// ShadeSun layers a limb-darkened radial gradient, animated granulation
// turbulence, a drifting prominence hot spot and a slow global pulse.
func ShadeSun(f raster.Fragment, u scene.Uniforms) math3d.Color3 {
	p := surfacePoint(f)

	// Base gradient: white-hot where the surface faces us, deep orange at
	// the limb.
	c := ramp([]math3d.Color3{sunEdge, sunMid, sunCore}, facing(f, u))

	// Granulation: boiling cell structure that churns with time.
	gr := Turbulence(p.Scale(6).Add(math3d.V3(u.Seed, u.Time*0.15, -u.Time*0.1)), 4)
	c = c.Scale(0.82 + 0.36*gr)

	// Prominence: a bright region that creeps around the equator.
	anchor := drift(math3d.V3(1, 0.2, 0), u.Time*0.07+u.Seed)
	c = blendLab(c, sunFlare, 0.7*spotMask(p, anchor, 0.35, 0.3))

	// Slow pulse so the whole disk breathes.
	return c.Scale(0.96 + 0.04*math.Sin(u.Time*2.2+u.Seed)).Clamp()
}

// ShadeEarth builds continents from FBM elevation, classifies climate zones
// with interpolated thresholds, pins ice caps to latitude and overlays
// drifting clouds.
func ShadeEarth(f raster.Fragment, u scene.Uniforms) math3d.Color3 {
	p := surfacePoint(f)

	// Continent elevation. Static relative to the surface: the coordinates
	// are model space, so the terrain spins with the body.
	e := FBM(p.Scale(2.3).Add(math3d.V3(u.Seed, u.Seed*0.7, u.Seed*1.3)), 5)

	// Climate zones, interpolated at every boundary to avoid banding.
	c := earthOcean
	c = blendLab(c, earthShoal, smoothstep(0.42, 0.50, e))
	c = blendLab(c, earthBeach, smoothstep(0.50, 0.53, e))
	c = blendLab(c, earthGrass, smoothstep(0.53, 0.58, e))
	c = blendLab(c, earthRock, smoothstep(0.63, 0.71, e))
	c = blendLab(c, earthSnow, smoothstep(0.74, 0.82, e))

	// Polar ice from latitude alone, jittered so the cap edge is ragged.
	capEdge := math.Abs(p.Y) + 0.08*(Noise3(p.Scale(5))-0.5)
	c = blendLab(c, earthSnow, smoothstep(0.78, 0.9, capEdge))

	// Cloud deck drifting east over the surface.
	cl := Turbulence(drift(p, u.Time*0.03).Scale(3.1).Add(math3d.V3(0, u.Seed, u.Time*0.01)), 4)
	c = blendLab(c, earthCloud, 0.85*smoothstep(0.48, 0.62, cl))

	return c.Scale(0.55 + 0.45*facing(f, u)).Clamp()
}

// ShadeGasGiant paints latitude bands warped by turbulence, with a slowly
// drifting storm spot blended over them.
func ShadeGasGiant(f raster.Fragment, u scene.Uniforms) math3d.Color3 {
	p := surfacePoint(f)
	bands := u.Bands
	if bands <= 0 {
		bands = 8
	}

	// Band structure: latitude striping warped by atmospheric turbulence
	// and sliding slowly with time.
	swirl := Turbulence(p.Scale(3).Add(math3d.V3(u.Time*0.04, u.Seed, 0)), 4) - 0.5
	s := 0.5 + 0.5*math.Sin(p.Y*math.Pi*bands+swirl*2.6+u.Time*0.05)
	c := ramp(gasBands, s)

	// Fine wisps along the flow direction.
	wisp := FBM(math3d.V3(p.X*2, p.Y*9, p.Z*2).Add(math3d.V3(u.Time*0.06, 0, u.Seed)), 4)
	c = c.Scale(0.88 + 0.24*wisp)

	// The great storm: an oval that drifts against the rotation.
	anchor := drift(u.Spot, -u.Time*0.02)
	storm := spotMask(p, anchor, 0.22, 0.18)
	c = blendLab(c, gasSpot, 0.8*storm)
	// Darker collar swirling around the spot.
	c = c.Scale(1 - 0.25*(spotMask(p, anchor, 0.34, 0.12)-storm))

	return c.Scale(0.6 + 0.4*facing(f, u)).Clamp()
}

// ShadeVenus is an opaque sulfur cloud deck: heavy turbulence over a warm
// two-tone base, chevron banding, and a bright haze rim at the limb.
func ShadeVenus(f raster.Fragment, u scene.Uniforms) math3d.Color3 {
	p := surfacePoint(f)

	deck := Turbulence(drift(p, u.Time*0.05).Scale(2.4).Add(math3d.V3(u.Seed, 0, u.Seed)), 5)
	c := blendLab(venusDeep, venusHaze, deck)

	// Y-shaped chevron streaks characteristic of the upper cloud flow.
	chevron := math.Sin(p.Y*4 + deck*3 + u.Time*0.08)
	c = c.Scale(0.9 + 0.1*chevron)

	// Haze glow toward the limb.
	rim := 1 - facing(f, u)
	c = blendLab(c, venusGlow, 0.5*rim*rim)

	return c.Clamp()
}

// ShadeNeptune is deep blue banding with a dark storm and white cirrus
// streaks racing at high latitude.
func ShadeNeptune(f raster.Fragment, u scene.Uniforms) math3d.Color3 {
	p := surfacePoint(f)
	bands := u.Bands
	if bands <= 0 {
		bands = 5
	}

	swirl := Turbulence(p.Scale(2.6).Add(math3d.V3(u.Seed, u.Time*0.03, 0)), 4) - 0.5
	s := 0.5 + 0.5*math.Sin(p.Y*math.Pi*bands+swirl*2.0+u.Time*0.03)
	c := ramp(neptuneBands, s)

	// Dark spot, slowly wandering.
	anchor := drift(u.Spot, u.Time*0.015)
	c = blendLab(c, neptuneSpot, 0.75*spotMask(p, anchor, 0.2, 0.16))

	// Cirrus: thin bright streaks stretched along longitude.
	streak := FBM(math3d.V3(p.X*2, p.Y*12, p.Z*2).Add(math3d.V3(u.Time*0.09, u.Seed, 0)), 4)
	c = blendLab(c, neptuneCirrus, 0.6*smoothstep(0.64, 0.74, streak))

	return c.Scale(0.55 + 0.45*facing(f, u)).Clamp()
}

// ShadeUranus is nearly featureless: a pale cyan globe with faint bands, a
// brighter polar hood and a whisper of haze.
func ShadeUranus(f raster.Fragment, u scene.Uniforms) math3d.Color3 {
	p := surfacePoint(f)
	bands := u.Bands
	if bands <= 0 {
		bands = 4
	}

	c := uranusBase
	faint := 0.5 + 0.5*math.Sin(p.Y*math.Pi*bands+u.Time*0.02+u.Seed)
	c = blendLab(c, uranusBand, 0.25*faint)

	c = blendLab(c, uranusPolar, smoothstep(0.6, 0.92, math.Abs(p.Y)))

	haze := Turbulence(p.Scale(2).Add(math3d.V3(u.Time*0.02, u.Seed, 0)), 3)
	c = c.Scale(0.94 + 0.08*haze)

	return c.Scale(0.6 + 0.4*facing(f, u)).Clamp()
}

// ShadeMoon is gray regolith with a set of fixed craters derived from the
// body seed, each a smooth-edged floor with a brightened rim.
func ShadeMoon(f raster.Fragment, u scene.Uniforms) math3d.Color3 {
	p := surfacePoint(f)

	regolith := FBM(p.Scale(5).Add(math3d.V3(u.Seed, u.Seed, u.Seed)), 4)
	c := blendLab(moonDark, moonLight, regolith)

	// Craters at deterministic positions salted by the seed.
	seed := int64(u.Seed * 1024)
	for i := int64(0); i < 7; i++ {
		dir := math3d.V3(
			latticeHash(seed+i, 11, 3)*2-1,
			latticeHash(seed+i, 23, 5)*2-1,
			latticeHash(seed+i, 37, 7)*2-1,
		).Normalize()
		r := 0.08 + 0.12*latticeHash(seed+i, 53, 13)

		d := p.Sub(dir).Len()
		floor := 1 - smoothstep(r*0.75, r, d)
		rim := smoothstep(r*0.8, r, d) * (1 - smoothstep(r, r*1.25, d))
		c = c.Scale(1 - 0.35*floor)
		c = blendLab(c, moonRim, 0.5*rim)
	}

	// The one large named crater sits at the configured anchor.
	if u.Spot.Len() > 0 {
		d := p.Sub(u.Spot.Normalize()).Len()
		c = c.Scale(1 - 0.3*(1-smoothstep(0.2, 0.3, d)))
		c = blendLab(c, moonRim, 0.55*smoothstep(0.24, 0.3, d)*(1-smoothstep(0.3, 0.4, d)))
	}

	return c.Scale(0.5 + 0.5*facing(f, u)).Clamp()
}

// ShadeRing colors a flat annulus by radius: noise-banded dust and ice with
// a smooth division gap, fading at both edges.
func ShadeRing(f raster.Fragment, u scene.Uniforms) math3d.Color3 {
	// Radius in the ring plane, in model units.
	r := math.Hypot(f.LocalPos.X, f.LocalPos.Z)
	t := (r - scene.RingInnerRadius) / (scene.RingOuterRadius - scene.RingInnerRadius)

	// Concentric banding from 1D noise along the radius, shimmering slowly.
	n := Noise3(math3d.V3(r*14, u.Seed, u.Time*0.02))
	c := blendLab(ringDust, ringIce, n)

	// Division gap: a dark lane around t = 0.55, smooth on both sides.
	gap := 1 - smoothstep(0, 0.06, math.Abs(t-0.55))
	c = blendLab(c, ringGap, 0.85*gap)

	// Fade to thin dust at the inner and outer rims.
	edge := smoothstep(0, 0.08, t) * (1 - smoothstep(0.92, 1, t))
	return c.Scale(0.35 + 0.65*edge).Clamp()
}

// ShadeDefault is the fallback for unknown kinds: a dim latitude gradient
// with a single noise layer, enough to show geometry.
func ShadeDefault(f raster.Fragment, u scene.Uniforms) math3d.Color3 {
	p := surfacePoint(f)
	n := FBM(p.Scale(3).Add(math3d.V3(u.Seed, 0, 0)), 3)
	g := 0.35 + 0.3*(p.Y*0.5+0.5) + 0.2*n
	return math3d.Color3{R: g, G: g, B: g}.Scale(0.5 + 0.5*facing(f, u)).Clamp()
}
