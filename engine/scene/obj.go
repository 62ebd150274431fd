package scene

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/auyjos/solarsystem/engine/math3d"
)

// LoadOBJ reads a Wavefront OBJ file and returns its triangles as a Mesh.
// Faces with more than three vertices are fan-triangulated. Positions are
// recentered and scaled so the model fits a unit sphere, matching the
// generated sphere meshes the renderer otherwise uses.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ parses OBJ data from r. Only v/vn/vt/f records are interpreted;
// everything else (groups, materials, comments) is skipped.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions []math3d.Vec3
		normals   []math3d.Vec3
		uvs       []math3d.Vec2
		faces     [][]objIndex
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texcoord needs 2 components", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad texcoord", lineNo)
			}
			uvs = append(uvs, math3d.Vec2{X: u, Y: v})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := make([]objIndex, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := parseIndex(ref, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face = append(face, idx)
			}
			faces = append(faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	center, invScale := normalization(positions)

	vertexAt := func(idx objIndex) Vertex {
		v := Vertex{Pos: positions[idx.pos].Sub(center).Scale(invScale)}
		if idx.norm >= 0 {
			v.Normal = normals[idx.norm].Normalize()
		} else {
			// No normals in the file: a sphere-like model is well served
			// by the radial direction.
			v.Normal = v.Pos.Normalize()
		}
		if idx.uv >= 0 {
			v.UV = uvs[idx.uv]
		}
		return v
	}

	m := NewMesh()
	for _, face := range faces {
		for i := 1; i < len(face)-1; i++ {
			m.AddTriangle(vertexAt(face[0]), vertexAt(face[i]), vertexAt(face[i+1]))
		}
	}
	return m, nil
}

type objIndex struct {
	pos, uv, norm int // resolved 0-based, -1 when absent
}

// parseIndex resolves one face vertex reference (v, v/vt, v/vt/vn or v//vn),
// including OBJ's negative relative indices.
func parseIndex(ref string, nPos, nUV, nNorm int) (objIndex, error) {
	idx := objIndex{uv: -1, norm: -1}
	parts := strings.Split(ref, "/")

	resolve := func(s string, n int) (int, error) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("bad index %q", s)
		}
		if i < 0 {
			i = n + i // relative to end
		} else {
			i--
		}
		if i < 0 || i >= n {
			return 0, fmt.Errorf("index %q out of range", s)
		}
		return i, nil
	}

	var err error
	if idx.pos, err = resolve(parts[0], nPos); err != nil {
		return idx, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if idx.uv, err = resolve(parts[1], nUV); err != nil {
			return idx, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if idx.norm, err = resolve(parts[2], nNorm); err != nil {
			return idx, err
		}
	}
	return idx, nil
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("need 3 components")
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("bad component %q", fields[i])
		}
		out[i] = v
	}
	return math3d.V3(out[0], out[1], out[2]), nil
}

// normalization returns the model center and the scale factor that maps the
// largest half-extent to 1, so loaded models occupy the same unit volume as
// generated spheres.
func normalization(positions []math3d.Vec3) (math3d.Vec3, float64) {
	if len(positions) == 0 {
		return math3d.Vec3{}, 1
	}
	min, max := positions[0], positions[0]
	for _, p := range positions[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}
	center := min.Add(max).Scale(0.5)
	half := math.Max(max.X-min.X, math.Max(max.Y-min.Y, max.Z-min.Z)) / 2
	if half < 1e-12 {
		return center, 1
	}
	return center, 1 / half
}
