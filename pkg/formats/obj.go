// Package formats provides readers and writers for mesh interchange files.
//
// The Wavefront OBJ codec exposes vertex positions for editing and carries
// every other statement through unchanged.
package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/radial-offset/pkg/math"
	"github.com/Faultbox/radial-offset/pkg/mesh"
)

// OBJ format errors.
var (
	ErrInvalidOBJVertex = errors.New("invalid OBJ vertex")
	ErrInvalidOBJFace   = errors.New("invalid OBJ face")
)

// maxOBJLine bounds a single statement; long face lines on dense meshes exceed bufio's default.
const maxOBJLine = 4 << 20

// OBJ is a decoded Wavefront OBJ file.
type OBJ struct {
	Mesh     *mesh.Mesh
	Warnings []string

	lines []objLine
}

// objLine is one source line. vertex is -1 for anything that is not a "v" statement.
type objLine struct {
	text   string
	vertex int
	orig   math.Vec3 // Position as parsed, to detect edits
	extra  []string  // Fields after x y z (w or vertex colors)
}

// LoadOBJ reads an OBJ file from disk. The mesh is named after the first "o"
// statement, or the file name when there is none.
func LoadOBJ(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	obj, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if obj.Mesh.Name == "" {
		obj.Mesh.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return obj, nil
}

// ReadOBJ decodes OBJ data.
func ReadOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{Mesh: &mesh.Mesh{}}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxOBJLine)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		line := objLine{text: text, vertex: -1}

		fields := strings.Fields(text)
		if len(fields) > 0 {
			switch fields[0] {
			case "v":
				co, err := parseVertex(fields[1:])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				line.vertex = len(obj.Mesh.Vertices)
				line.orig = co
				line.extra = fields[4:]
				obj.Mesh.Vertices = append(obj.Mesh.Vertices, mesh.Vertex{Co: co})
			case "f":
				face, err := parseFace(fields[1:], len(obj.Mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				obj.Mesh.Faces = append(obj.Mesh.Faces, face)
			case "o":
				if obj.Mesh.Name == "" && len(fields) > 1 {
					obj.Mesh.Name = strings.Join(fields[1:], " ")
				} else if len(fields) > 1 {
					obj.Warnings = append(obj.Warnings,
						fmt.Sprintf("line %d: additional object %q merged into %q", lineNo, strings.Join(fields[1:], " "), obj.Mesh.Name))
				}
			}
		}
		obj.lines = append(obj.lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseVertex(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("%w: want at least 3 coordinates, got %d", ErrInvalidOBJVertex, len(fields))
	}
	var c [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: %v", ErrInvalidOBJVertex, err)
		}
		c[i] = float32(f)
	}
	return math.FromArray(c), nil
}

// parseFace resolves "v", "v/vt", "v//vn" and "v/vt/vn" references, including
// negative (relative) indices, to 0-based vertex indices.
func parseFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: want at least 3 vertices, got %d", ErrInvalidOBJFace, len(fields))
	}
	face := make([]int, len(fields))
	for i, ref := range fields {
		head, _, _ := strings.Cut(ref, "/")
		n, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOBJFace, ref)
		}
		idx := n - 1
		if n < 0 {
			idx = vertexCount + n
		}
		if n == 0 || idx < 0 || idx >= vertexCount {
			return nil, fmt.Errorf("%w: vertex reference %d out of range (have %d)", ErrInvalidOBJFace, n, vertexCount)
		}
		face[i] = idx
	}
	return face, nil
}

// Write encodes the OBJ. Vertices whose position is unchanged keep their
// original text; moved vertices are written with the shortest exact float32
// representation. All other lines are reproduced verbatim.
func (o *OBJ) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range o.lines {
		text := line.text
		if line.vertex >= 0 {
			co := o.Mesh.Vertices[line.vertex].Co
			if co != line.orig {
				text = formatVertex(co, line.extra)
			}
		}
		if _, err := bw.WriteString(text); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveTo writes the OBJ to path, creating parent directories as needed.
func (o *OBJ) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := o.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatVertex(co math.Vec3, extra []string) string {
	var b strings.Builder
	b.WriteString("v")
	for _, c := range co.Array() {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	for _, e := range extra {
		b.WriteByte(' ')
		b.WriteString(e)
	}
	return b.String()
}
