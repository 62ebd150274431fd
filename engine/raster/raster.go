package raster

import (
	"math"

	"github.com/auyjos/solarsystem/engine/math3d"
	"github.com/auyjos/solarsystem/engine/scene"
)

// Triangles whose doubled signed area is below this are treated as
// degenerate and skipped before any division happens.
const minTriangleArea = 1e-9

// Fragment is one candidate pixel produced during rasterization: the pixel
// coordinate, interpolated depth, interpolated model-space attributes and the
// barycentric weights it was built from. Fragments live only for the duration
// of one shade call.
type Fragment struct {
	X, Y  int
	Depth float64

	Normal   math3d.Vec3 // interpolated model-space normal
	LocalPos math3d.Vec3 // interpolated model-space position

	W0, W1, W2 float64
}

// ShadeFunc maps a fragment plus the draw call's uniforms to a color. Shade
// functions are pure and total: every input produces a color.
type ShadeFunc func(Fragment, scene.Uniforms) math3d.Color3

// TransformVertex runs the vertex stage: the model matrix maps the position
// to screen space (with homogeneous divide), while the model-space position
// and normal ride along untouched for the shaders. Normals are not put
// through an inverse-transpose because all body scaling is uniform.
func TransformVertex(v scene.Vertex, u scene.Uniforms) scene.Vertex {
	v.Screen = u.Model.TransformPoint(v.Pos)
	return v
}

// edge is the signed-area test: positive when p is on one side of ab,
// negative on the other, zero on the edge.
func edge(a, b, p math3d.Vec3) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// Rasterize scan-converts one screen-space triangle into fb. For every pixel
// center inside the triangle (all barycentric weights non-negative, edges
// included) it interpolates depth and model-space attributes, depth-tests,
// and on a pass shades and writes color+depth as one update. Fragments that
// fail the depth test are discarded with no side effect.
func Rasterize(v0, v1, v2 scene.Vertex, u scene.Uniforms, fb *Framebuffer, shade ShadeFunc) {
	p0, p1, p2 := v0.Screen, v1.Screen, v2.Screen

	area := edge(p0, p1, p2)
	if math.Abs(area) < minTriangleArea {
		return
	}
	inv := 1 / area

	minX := int(math.Floor(math.Min(p0.X, math.Min(p1.X, p2.X))))
	maxX := int(math.Ceil(math.Max(p0.X, math.Max(p1.X, p2.X))))
	minY := int(math.Floor(math.Min(p0.Y, math.Min(p1.Y, p2.Y))))
	maxY := int(math.Ceil(math.Max(p0.Y, math.Max(p1.Y, p2.Y))))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.W-1 {
		maxX = fb.W - 1
	}
	if maxY > fb.H-1 {
		maxY = fb.H - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math3d.V3(float64(x), float64(y), 0)

			// Dividing by the signed area makes the weights winding-
			// independent: inside pixels have all three non-negative.
			w0 := edge(p1, p2, p) * inv
			w1 := edge(p2, p0, p) * inv
			w2 := edge(p0, p1, p) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			depth := w0*p0.Z + w1*p1.Z + w2*p2.Z
			if !fb.DepthPass(x, y, depth) {
				continue
			}

			frag := Fragment{
				X:     x,
				Y:     y,
				Depth: depth,
				Normal: math3d.Vec3{
					X: w0*v0.Normal.X + w1*v1.Normal.X + w2*v2.Normal.X,
					Y: w0*v0.Normal.Y + w1*v1.Normal.Y + w2*v2.Normal.Y,
					Z: w0*v0.Normal.Z + w1*v1.Normal.Z + w2*v2.Normal.Z,
				},
				LocalPos: math3d.Vec3{
					X: w0*v0.Pos.X + w1*v1.Pos.X + w2*v2.Pos.X,
					Y: w0*v0.Pos.Y + w1*v1.Pos.Y + w2*v2.Pos.Y,
					Z: w0*v0.Pos.Z + w1*v1.Pos.Z + w2*v2.Pos.Z,
				},
				W0: w0, W1: w1, W2: w2,
			}
			fb.Write(x, y, depth, shade(frag, u))
		}
	}
}

// DrawMesh transforms and rasterizes every triangle of a mesh with one
// Uniforms bundle. Degenerate triangles are skipped inside Rasterize.
func DrawMesh(m *scene.Mesh, u scene.Uniforms, fb *Framebuffer, shade ShadeFunc) {
	for _, tri := range m.Triangles {
		v0 := TransformVertex(tri.V[0], u)
		v1 := TransformVertex(tri.V[1], u)
		v2 := TransformVertex(tri.V[2], u)
		Rasterize(v0, v1, v2, u, fb, shade)
	}
}

// DrawLine walks an integer Bresenham line from (x0,y0) to (x1,y1). It does
// no depth testing and writes directly, for stroked rather than filled
// primitives.
func DrawLine(fb *Framebuffer, x0, y0, x1, y1 int, c math3d.Color3) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawMeshWire strokes every triangle's edges, for the wireframe view.
func DrawMeshWire(m *scene.Mesh, u scene.Uniforms, fb *Framebuffer, c math3d.Color3) {
	for _, tri := range m.Triangles {
		p0 := u.Model.TransformPoint(tri.V[0].Pos)
		p1 := u.Model.TransformPoint(tri.V[1].Pos)
		p2 := u.Model.TransformPoint(tri.V[2].Pos)
		DrawLine(fb, int(p0.X), int(p0.Y), int(p1.X), int(p1.Y), c)
		DrawLine(fb, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), c)
		DrawLine(fb, int(p2.X), int(p2.Y), int(p0.X), int(p0.Y), c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
