// Package editor models the editing host the radial offset transform runs in:
// a scene of objects, per-object interaction modes, undo history and the
// operator that ties them to the transform.
package editor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Faultbox/radial-offset/pkg/math"
	"github.com/Faultbox/radial-offset/pkg/mesh"
)

// Mode is an object's interaction mode.
type Mode int

const (
	ModeObject Mode = iota // Whole-object access; vertex data is authoritative
	ModeEdit               // Vertex editing in progress
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeObject:
		return "OBJECT"
	case ModeEdit:
		return "EDIT"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Object is a scene object. Mesh is nil for non-mesh objects.
type Object struct {
	Name   string
	Mesh   *mesh.Mesh
	Matrix math.Mat4 // Object to world transform

	edit sync.Mutex // Held for the duration of WithMode
	mu   sync.Mutex // Guards mode
	mode Mode
}

// NewObject creates an object in edit mode with an identity transform.
func NewObject(name string, m *mesh.Mesh) *Object {
	return &Object{
		Name:   name,
		Mesh:   m,
		Matrix: math.Identity(),
		mode:   ModeEdit,
	}
}

// Mode returns the current interaction mode.
func (o *Object) Mode() Mode {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mode
}

// SetMode changes the interaction mode.
func (o *Object) SetMode(m Mode) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.mode = m
}

// IsMesh reports whether the object carries mesh data.
func (o *Object) IsMesh() bool {
	return o.Mesh != nil
}

// WithMode holds the object exclusively, switches it to m, runs fn and
// restores the previous mode on every exit path, including a panic in fn.
// Concurrent callers on the same object are serialized.
func (o *Object) WithMode(m Mode, fn func(*mesh.Mesh) error) error {
	o.edit.Lock()
	defer o.edit.Unlock()

	o.mu.Lock()
	prev := o.mode
	o.mode = m
	o.mu.Unlock()

	defer o.SetMode(prev)

	return fn(o.Mesh)
}

// WorldToLocal converts a world-space point into the object's local space.
func (o *Object) WorldToLocal(p math.Vec3) (math.Vec3, error) {
	if o.Matrix.IsIdentity() {
		return p, nil
	}
	if !o.Matrix.Invertible() {
		return math.Vec3{}, ErrSingularMatrix
	}
	return o.Matrix.Inverse().TransformPoint(p), nil
}

// ErrSingularMatrix is returned when an object's transform cannot be inverted.
var ErrSingularMatrix = errors.New("object transform is not invertible")

// Scene holds objects, the active object and the 3D cursor.
type Scene struct {
	Objects []*Object
	Active  *Object
	Cursor  math.Vec3 // World space
}

// NewScene creates a scene whose active object is the first one given.
func NewScene(objects ...*Object) *Scene {
	s := &Scene{Objects: objects}
	if len(objects) > 0 {
		s.Active = objects[0]
	}
	return s
}

// Add appends an object and makes it active.
func (s *Scene) Add(o *Object) {
	s.Objects = append(s.Objects, o)
	s.Active = o
}
