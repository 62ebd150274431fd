package math3d

import "math"

// Color3 is an RGB color with components in [0,1].
type Color3 struct {
	R, G, B float64
}

func (c Color3) Scale(s float64) Color3 {
	return Color3{c.R * s, c.G * s, c.B * s}
}

func (c Color3) Add(o Color3) Color3 {
	return Color3{
		math.Min(c.R+o.R, 1),
		math.Min(c.G+o.G, 1),
		math.Min(c.B+o.B, 1),
	}
}

func (c Color3) Mul(o Color3) Color3 {
	return Color3{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Lerp blends toward o by t in [0,1]. Zone boundaries in the shaders are
// interpolated through here instead of hard-switched.
func (c Color3) Lerp(o Color3, t float64) Color3 {
	return Color3{
		c.R + (o.R-c.R)*t,
		c.G + (o.G-c.G)*t,
		c.B + (o.B-c.B)*t,
	}
}

// Clamp saturates all components to [0,1].
func (c Color3) Clamp() Color3 {
	return Color3{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA returns 8-bit components for framebuffer storage.
func (c Color3) RGBA() (r, g, b uint8) {
	return uint8(clamp01(c.R) * 255), uint8(clamp01(c.G) * 255), uint8(clamp01(c.B) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
