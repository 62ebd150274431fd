package shading

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/auyjos/solarsystem/engine/math3d"
)

// Zone colors are declared as hex and blended in Lab space, which keeps the
// transitions between climate zones perceptually even (no brightness dips at
// the midpoint the way straight RGB blending has).

func hex(s string) math3d.Color3 {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("shading: bad palette color " + s)
	}
	return math3d.Color3{R: c.R, G: c.G, B: c.B}
}

// blendLab interpolates two colors through Lab space.
func blendLab(a, b math3d.Color3, t float64) math3d.Color3 {
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	m := ca.BlendLab(cb, t).Clamped()
	return math3d.Color3{R: m.R, G: m.G, B: m.B}
}

// ramp maps t in [0,1] onto a multi-stop palette with Lab blending between
// adjacent stops.
func ramp(stops []math3d.Color3, t float64) math3d.Color3 {
	if len(stops) == 1 || t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	f := t * float64(len(stops)-1)
	i := int(f)
	return blendLab(stops[i], stops[i+1], f-float64(i))
}

var (
	sunCore    = hex("#fff4c2")
	sunMid     = hex("#ffae33")
	sunEdge    = hex("#e3501a")
	sunFlare   = hex("#ffffd9")
	earthOcean = hex("#0b3d91")
	earthShoal = hex("#1f6eb5")
	earthBeach = hex("#d9c18a")
	earthGrass = hex("#3a7d2e")
	earthRock  = hex("#6e5f4b")
	earthSnow  = hex("#f2f4f5")
	earthCloud = hex("#ffffff")
	venusHaze  = hex("#e6c67a")
	venusDeep  = hex("#a66a28")
	venusGlow  = hex("#f7e3ae")
	moonDark   = hex("#4a4a4f")
	moonLight  = hex("#9a9aa0")
	moonRim    = hex("#c8c8cc")
	ringDust   = hex("#b8a98c")
	ringIce    = hex("#ded6c2")
	ringGap    = hex("#5a5246")

	gasBands = []math3d.Color3{
		hex("#c9a06a"), hex("#e8d4a8"), hex("#a9713d"), hex("#f0e0bd"), hex("#8c5a32"),
	}
	gasSpot = hex("#c2452e")

	neptuneBands = []math3d.Color3{
		hex("#1b3a8f"), hex("#2d5fd0"), hex("#4377e0"), hex("#2a4bb4"),
	}
	neptuneSpot   = hex("#102458")
	neptuneCirrus = hex("#dbe7ff")

	uranusBase  = hex("#9fd8dd")
	uranusBand  = hex("#7fc4cf")
	uranusPolar = hex("#c3ecec")
)
