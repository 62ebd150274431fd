package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/auyjos/solarsystem/engine/math3d"
)

const quadOBJ = `# a unit quad in the XY plane
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJQuadFan(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(m.Triangles) != 2 {
		t.Fatalf("quad fan produced %d triangles, want 2", len(m.Triangles))
	}
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			if v.Normal != (math3d.V3(0, 0, 1)) {
				t.Errorf("normal = %v, want (0,0,1)", v.Normal)
			}
			if v.Pos.Z != 0 {
				t.Errorf("position off-plane: %v", v.Pos)
			}
		}
	}
	// First triangle must keep the fan origin.
	if got := m.Triangles[0].V[0].Pos; got != m.Triangles[1].V[0].Pos {
		t.Errorf("fan triangles do not share the first vertex: %v vs %v", got, m.Triangles[1].V[0].Pos)
	}
}

func TestParseOBJNormalization(t *testing.T) {
	// A model far from the origin and larger than the unit cube must come
	// back centered with max half-extent 1.
	doc := `
v 100 100 100
v 110 100 100
v 110 110 100
f 1 2 3
`
	m, err := ParseOBJ(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	maxExtent := 0.0
	for _, v := range m.Triangles[0].V {
		maxExtent = math.Max(maxExtent, math.Max(math.Abs(v.Pos.X), math.Max(math.Abs(v.Pos.Y), math.Abs(v.Pos.Z))))
	}
	if math.Abs(maxExtent-1) > 1e-9 {
		t.Errorf("max extent after normalization = %v, want 1", maxExtent)
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	doc := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	m, err := ParseOBJ(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(m.Triangles) != 1 {
		t.Fatalf("triangles = %d, want 1", len(m.Triangles))
	}
}

func TestParseOBJMissingNormalsFallBackRadial(t *testing.T) {
	doc := `
v 0 0 1
v 1 0 0
v 0 1 0
f 1 2 3
`
	m, err := ParseOBJ(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	for _, v := range m.Triangles[0].V {
		if v.Pos.Len() > 1e-9 && math.Abs(v.Normal.Len()-1) > 1e-9 {
			t.Errorf("fallback normal not unit length: %v", v.Normal)
		}
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no faces", "v 0 0 0\nv 1 0 0\nv 0 1 0\n"},
		{"index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"bad vertex", "v one two three\nf 1 1 1\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tc.doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ("testdata/does-not-exist.obj"); err == nil {
		t.Error("expected error for missing file")
	}
}
