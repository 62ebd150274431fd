// Package raster implements the CPU rasterization stage: the framebuffer
// with its depth buffer, the vertex transform step, triangle scan conversion
// with barycentric interpolation, and a Bresenham line primitive.
package raster

import (
	"math"

	"github.com/auyjos/solarsystem/engine/math3d"
)

// DepthFar is the "infinitely far" depth sentinel written by Clear.
var DepthFar = math.Inf(1)

// Framebuffer owns one frame's color grid (RGBA bytes, row-major) and the
// parallel depth grid. It is exclusively owned by the render loop.
type Framebuffer struct {
	W, H int

	pix   []byte
	depth []float64

	// Cleared-frame template: background color with the star field baked in.
	template []byte
}

// NewFramebuffer allocates a framebuffer cleared to the background color.
func NewFramebuffer(w, h int, background math3d.Color3) *Framebuffer {
	fb := &Framebuffer{
		W:        w,
		H:        h,
		pix:      make([]byte, w*h*4),
		depth:    make([]float64, w*h),
		template: make([]byte, w*h*4),
	}
	r, g, b := background.RGBA()
	for i := 0; i < len(fb.template); i += 4 {
		fb.template[i] = r
		fb.template[i+1] = g
		fb.template[i+2] = b
		fb.template[i+3] = 255
	}
	fb.Clear()
	return fb
}

// GenerateStars bakes a deterministic star field into the clear template.
// Positions and brightness come from a fixed LCG so every run and every
// frame sees the same sky. Brighter stars get a one-pixel cross.
func (fb *Framebuffer) GenerateStars(count int) {
	const (
		a = 1103515245
		c = 12345
		m = 1 << 31
	)
	seed := uint64(12345)
	next := func() uint64 {
		seed = (a*seed + c) % m
		return seed
	}

	put := func(x, y int, brightness float64) {
		if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
			return
		}
		i := (y*fb.W + x) * 4
		fb.template[i] = uint8(255 * brightness)
		fb.template[i+1] = uint8(255 * brightness)
		fb.template[i+2] = uint8(255 * brightness * 0.9) // slight blue tint
	}

	for n := 0; n < count; n++ {
		x := int(next() % uint64(fb.W))
		y := int(next() % uint64(fb.H))
		brightness := 0.3 + float64(next()%70)/100
		put(x, y, brightness)
		if brightness > 0.8 {
			put(x-1, y, brightness*0.5)
			put(x+1, y, brightness*0.5)
			put(x, y-1, brightness*0.5)
			put(x, y+1, brightness*0.5)
		}
	}
	fb.Clear()
}

// Clear resets every color cell to the background template and every depth
// cell to the far sentinel.
func (fb *Framebuffer) Clear() {
	copy(fb.pix, fb.template)
	for i := range fb.depth {
		fb.depth[i] = DepthFar
	}
}

// DepthPass reports whether a candidate depth would win at (x, y).
func (fb *Framebuffer) DepthPass(x, y int, depth float64) bool {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return false
	}
	return depth < fb.depth[y*fb.W+x]
}

// Write stores color and depth at (x, y) if the pixel is in bounds and the
// candidate depth is strictly nearer than the stored one. Color and depth
// are updated together or not at all.
func (fb *Framebuffer) Write(x, y int, depth float64, c math3d.Color3) {
	if !fb.DepthPass(x, y, depth) {
		return
	}
	fb.depth[y*fb.W+x] = depth
	i := (y*fb.W + x) * 4
	r, g, b := c.RGBA()
	fb.pix[i] = r
	fb.pix[i+1] = g
	fb.pix[i+2] = b
	fb.pix[i+3] = 255
}

// SetPixel writes color without a depth test. Used by the line primitive.
func (fb *Framebuffer) SetPixel(x, y int, c math3d.Color3) {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return
	}
	i := (y*fb.W + x) * 4
	r, g, b := c.RGBA()
	fb.pix[i] = r
	fb.pix[i+1] = g
	fb.pix[i+2] = b
	fb.pix[i+3] = 255
}

// At returns the stored color at (x, y).
func (fb *Framebuffer) At(x, y int) math3d.Color3 {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return math3d.Color3{}
	}
	i := (y*fb.W + x) * 4
	return math3d.Color3{
		R: float64(fb.pix[i]) / 255,
		G: float64(fb.pix[i+1]) / 255,
		B: float64(fb.pix[i+2]) / 255,
	}
}

// DepthAt returns the stored depth at (x, y), or the far sentinel out of
// bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return DepthFar
	}
	return fb.depth[y*fb.W+x]
}

// Pix exposes the color grid for presentation. The caller must treat it as
// read-only; the framebuffer never reads back from the display.
func (fb *Framebuffer) Pix() []byte { return fb.pix }
