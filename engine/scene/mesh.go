// Package scene holds the data model shared by the rendering pipeline:
// vertices, triangles, meshes, the celestial body catalog and the per-draw
// Uniforms bundle. Meshes are built once at startup and read-only afterwards.
package scene

import "github.com/auyjos/solarsystem/engine/math3d"

// Vertex is a single mesh vertex. Pos and Normal are model space and never
// change after load; Screen is filled in by the vertex transform stage each
// frame (screen-space X/Y plus depth in Z).
type Vertex struct {
	Pos    math3d.Vec3
	Normal math3d.Vec3
	UV     math3d.Vec2
	Screen math3d.Vec3
}

// Triangle is exactly three vertices. Winding order is whatever the source
// mesh provides; the rasterizer does not cull by winding.
type Triangle struct {
	V [3]Vertex
}

// Mesh is an ordered sequence of triangles.
type Mesh struct {
	Triangles []Triangle
}

func NewMesh() *Mesh { return &Mesh{} }

func (m *Mesh) AddTriangle(v0, v1, v2 Vertex) {
	m.Triangles = append(m.Triangles, Triangle{V: [3]Vertex{v0, v1, v2}})
}

func (m *Mesh) AddQuad(v0, v1, v2, v3 Vertex) {
	m.AddTriangle(v0, v1, v2)
	m.AddTriangle(v0, v2, v3)
}

// Uniforms is the immutable per-draw-call parameter bundle. A fresh value is
// built for every body every frame and never mutated mid-draw.
type Uniforms struct {
	Model math3d.Mat4
	Time  float64
	Kind  BodyKind

	// Body-specific shading parameters.
	Bands float64     // band count for banded atmospheres
	Spot  math3d.Vec3 // anchor for storm spots / craters, model space
	Seed  float64     // noise phase offset so bodies of one kind differ
}
