// Package mesh provides an owned vertex container with a selection flag per vertex.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/radial-offset/pkg/math"
)

// Mesh errors.
var (
	ErrVertexIndex = errors.New("vertex index out of range")
)

// Vertex is a single mesh vertex.
type Vertex struct {
	Co     math.Vec3 // Position in object-local space
	Select bool      // Part of the current editing selection
}

// Mesh holds vertex positions and polygon connectivity.
// Faces index into Vertices and are never modified by position edits.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    [][]int
}

// New creates a mesh from bare positions with nothing selected.
func New(name string, positions ...math.Vec3) *Mesh {
	m := &Mesh{Name: name, Vertices: make([]Vertex, len(positions))}
	for i, p := range positions {
		m.Vertices[i].Co = p
	}
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// IsEmpty returns true if the mesh has no vertex data.
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Vertices) == 0
}

// Selected returns the indices of selected vertices in ascending order.
func (m *Mesh) Selected() []int {
	var out []int
	for i, v := range m.Vertices {
		if v.Select {
			out = append(out, i)
		}
	}
	return out
}

// HasSelection reports whether at least one vertex is selected.
func (m *Mesh) HasSelection() bool {
	for _, v := range m.Vertices {
		if v.Select {
			return true
		}
	}
	return false
}

// Select flags the given vertices as selected. Nothing changes if any index is invalid.
func (m *Mesh) Select(indices ...int) error {
	for _, i := range indices {
		if i < 0 || i >= len(m.Vertices) {
			return fmt.Errorf("%w: %d (mesh has %d vertices)", ErrVertexIndex, i, len(m.Vertices))
		}
	}
	for _, i := range indices {
		m.Vertices[i].Select = true
	}
	return nil
}

// SelectAll flags every vertex as selected.
func (m *Mesh) SelectAll() {
	for i := range m.Vertices {
		m.Vertices[i].Select = true
	}
}

// DeselectAll clears every selection flag.
func (m *Mesh) DeselectAll() {
	for i := range m.Vertices {
		m.Vertices[i].Select = false
	}
}

// Positions returns a copy of the positions at the given indices, in order.
func (m *Mesh) Positions(indices []int) []math.Vec3 {
	out := make([]math.Vec3, len(indices))
	for n, i := range indices {
		out[n] = m.Vertices[i].Co
	}
	return out
}

// SetPositions writes positions back to the given indices.
// positions[n] is stored at indices[n].
func (m *Mesh) SetPositions(indices []int, positions []math.Vec3) {
	for n, i := range indices {
		m.Vertices[i].Co = positions[n]
	}
}

// Bounds returns the axis-aligned bounds of the vertices at the given indices.
// ok is false when indices is empty.
func (m *Mesh) Bounds(indices []int) (lo, hi math.Vec3, ok bool) {
	if len(indices) == 0 {
		return lo, hi, false
	}
	lo = m.Vertices[indices[0]].Co
	hi = lo
	for _, i := range indices[1:] {
		co := m.Vertices[i].Co
		lo = lo.Min(co)
		hi = hi.Max(co)
	}
	return lo, hi, true
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{Name: m.Name, Vertices: make([]Vertex, len(m.Vertices))}
	copy(c.Vertices, m.Vertices)
	if m.Faces != nil {
		c.Faces = make([][]int, len(m.Faces))
		for i, f := range m.Faces {
			c.Faces[i] = append([]int(nil), f...)
		}
	}
	return c
}
