package scenery

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ reads a Wavefront OBJ file into a mesh. Faces with more than
// three vertexes are fanned into triangles. Malformed directives and
// out-of-range indices are reported with their line number.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadOBJFromReader(file)
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

// objData accumulates the referenced-by-index vertex attributes while
// the face directives are resolved.
type objData struct {
	positions []Vector
	texcoords []Vector
	normals   []Vector
	triangles []*Triangle
}

func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	var data objData
	scanner := bufio.NewScanner(r)
	lineno := 0

	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		keyword, args := fields[0], fields[1:]

		var err error
		switch keyword {
		case "v":
			err = data.addVector(&data.positions, args, 3)
		case "vt":
			err = data.addVector(&data.texcoords, args, 2)
		case "vn":
			err = data.addVector(&data.normals, args, 3)
		case "f":
			err = data.addFace(args)
		}
		if err != nil {
			return nil, fmt.Errorf("obj line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewTriangleMesh(data.triangles), nil
}

func (d *objData) addVector(dst *[]Vector, args []string, want int) error {
	if len(args) < want {
		return fmt.Errorf("expected %d components, got %d", want, len(args))
	}
	var c [3]float64
	for i := 0; i < want; i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("bad component %q", args[i])
		}
		c[i] = f
	}
	*dst = append(*dst, Vector{c[0], c[1], c[2]})
	return nil
}

func (d *objData) addFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face needs at least 3 vertexes, got %d", len(args))
	}
	corners := make([]Vertex, len(args))
	for i, arg := range args {
		v, err := d.corner(arg)
		if err != nil {
			return err
		}
		corners[i] = v
	}
	for i := 1; i < len(corners)-1; i++ {
		t := NewTriangle(corners[0], corners[i], corners[i+1])
		t.FixNormals()
		d.triangles = append(d.triangles, t)
	}
	return nil
}

// corner resolves one "v", "v/vt", "v//vn" or "v/vt/vn" face vertex.
func (d *objData) corner(arg string) (Vertex, error) {
	var v Vertex
	refs := strings.Split(arg, "/")
	if len(refs) > 3 {
		return v, fmt.Errorf("bad face vertex %q", arg)
	}

	p, err := resolveIndex(refs[0], len(d.positions))
	if err != nil {
		return v, err
	}
	if p < 0 {
		return v, fmt.Errorf("face vertex %q has no position", arg)
	}
	v.Position = d.positions[p]

	if len(refs) > 1 {
		vt, err := resolveIndex(refs[1], len(d.texcoords))
		if err != nil {
			return v, err
		}
		if vt >= 0 {
			v.Texture = d.texcoords[vt]
		}
	}
	if len(refs) > 2 {
		vn, err := resolveIndex(refs[2], len(d.normals))
		if err != nil {
			return v, err
		}
		if vn >= 0 {
			v.Normal = d.normals[vn]
		}
	}
	return v, nil
}

// resolveIndex turns a 1-based (or negative, counting from the end) OBJ
// index into a slice offset. An empty reference resolves to -1.
func resolveIndex(ref string, length int) (int, error) {
	if ref == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", ref)
	}
	if n < 0 {
		n += length + 1
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("index %s out of range", ref)
	}
	return n - 1, nil
}
