package scene

import "github.com/auyjos/solarsystem/engine/math3d"

// BodyKind selects the procedural shader for a celestial body. The set is
// closed; shading dispatch is a single switch over it.
type BodyKind uint8

const (
	KindDefault BodyKind = iota
	KindSun
	KindEarth
	KindGasGiant
	KindVenus
	KindNeptune
	KindUranus
	KindMoon
	KindRing
)

func (k BodyKind) String() string {
	switch k {
	case KindSun:
		return "sun"
	case KindEarth:
		return "earth"
	case KindGasGiant:
		return "gas-giant"
	case KindVenus:
		return "venus"
	case KindNeptune:
		return "neptune"
	case KindUranus:
		return "uranus"
	case KindMoon:
		return "moon"
	case KindRing:
		return "ring"
	default:
		return "default"
	}
}

// Body is the static configuration of one celestial body. Rates are radians
// per second of elapsed simulation time; Radius is the model scale in screen
// units. Parent names the body this one orbits ("" = the system pivot).
type Body struct {
	Name        string
	Kind        BodyKind
	Radius      float64
	OrbitRadius float64
	OrbitRate   float64
	SpinRate    float64
	Inclination float64 // fixed orbital-plane tilt, radians
	Parent      string
	Model       string // optional OBJ asset; "" uses the generated sphere

	Bands float64
	Spot  math3d.Vec3
	Seed  float64
}

// DefaultSystem returns the stock body catalog: the sun at the pivot, six
// planets, a moon around the planet named "earth" and a ring attached to the
// gas giant. Rates are tuned for a watchable animation at real-time speed.
func DefaultSystem() []Body {
	return []Body{
		{Name: "sol", Kind: KindSun, Radius: 42, SpinRate: 0.10, Seed: 3.1},
		{Name: "venus", Kind: KindVenus, Radius: 14, OrbitRadius: 70, OrbitRate: 0.46, SpinRate: 0.12, Inclination: 0.06, Seed: 8.8},
		{Name: "earth", Kind: KindEarth, Radius: 18, OrbitRadius: 105, OrbitRate: 0.30, SpinRate: 0.55, Inclination: 0.00, Bands: 0, Seed: 1.7},
		{Name: "luna", Kind: KindMoon, Radius: 6, OrbitRadius: 30, OrbitRate: 1.10, SpinRate: 0.25, Inclination: 0.18, Parent: "earth", Spot: math3d.V3(0.6, 0.25, 0.75), Seed: 5.2},
		{Name: "jove", Kind: KindGasGiant, Radius: 30, OrbitRadius: 165, OrbitRate: 0.16, SpinRate: 0.80, Inclination: 0.10, Bands: 9, Spot: math3d.V3(0.8, -0.35, 0.48), Seed: 2.4},
		{Name: "jove-ring", Kind: KindRing, Radius: 30, SpinRate: 0.05, Parent: "jove", Seed: 2.4},
		{Name: "neptune", Kind: KindNeptune, Radius: 16, OrbitRadius: 215, OrbitRate: 0.10, SpinRate: 0.60, Inclination: 0.22, Bands: 5, Spot: math3d.V3(-0.7, 0.3, 0.65), Seed: 6.5},
		{Name: "uranus", Kind: KindUranus, Radius: 15, OrbitRadius: 255, OrbitRate: 0.07, SpinRate: 0.45, Inclination: 0.30, Bands: 4, Seed: 9.9},
	}
}
