package scene

import (
	"math"
	"testing"
)

func TestMakeSphereUnitRadius(t *testing.T) {
	m := MakeSphere(16, 8)
	if len(m.Triangles) == 0 {
		t.Fatal("sphere has no triangles")
	}
	// 16 segments x 8 rings: one triangle per cell at the caps, two
	// everywhere else.
	want := 16 * (2*(8-2) + 2)
	if len(m.Triangles) != want {
		t.Errorf("triangle count = %d, want %d", len(m.Triangles), want)
	}

	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			if math.Abs(v.Pos.Len()-1) > 1e-9 {
				t.Fatalf("vertex %v not on unit sphere (r=%v)", v.Pos, v.Pos.Len())
			}
			if math.Abs(v.Normal.Sub(v.Pos).Len()) > 1e-9 {
				t.Fatalf("normal %v differs from position %v", v.Normal, v.Pos)
			}
		}
	}
}

func TestMakeSphereMinimumResolution(t *testing.T) {
	m := MakeSphere(1, 1) // clamped up internally
	if len(m.Triangles) == 0 {
		t.Fatal("clamped sphere has no triangles")
	}
}

func TestMakeFlatRingExtents(t *testing.T) {
	m := MakeFlatRing(1.4, 2.2, 32)
	if len(m.Triangles) != 64 {
		t.Errorf("triangle count = %d, want 64", len(m.Triangles))
	}
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			if v.Pos.Y != 0 {
				t.Fatalf("ring vertex off the XZ plane: %v", v.Pos)
			}
			r := math.Hypot(v.Pos.X, v.Pos.Z)
			if r < 1.4-1e-9 || r > 2.2+1e-9 {
				t.Fatalf("ring vertex radius %v outside [1.4, 2.2]", r)
			}
			if v.Normal != (tri.V[0].Normal) {
				t.Fatalf("ring normals not uniform")
			}
		}
	}
}

func TestMeshAddQuad(t *testing.T) {
	m := NewMesh()
	var v [4]Vertex
	m.AddQuad(v[0], v[1], v[2], v[3])
	if len(m.Triangles) != 2 {
		t.Errorf("AddQuad produced %d triangles, want 2", len(m.Triangles))
	}
}
