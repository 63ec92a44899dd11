package editor

import (
	"sync"

	"github.com/Faultbox/radial-offset/pkg/math"
	"github.com/Faultbox/radial-offset/pkg/mesh"
)

// DefaultUndoSteps is the history depth used when none is configured.
const DefaultUndoSteps = 32

// Step is one undoable position edit.
type Step struct {
	Name    string
	Object  *Object
	Indices []int
	Before  []math.Vec3 // Positions to restore on undo, parallel to Indices
	After   []math.Vec3 // Positions to restore on redo, parallel to Indices
}

// History is a bounded undo/redo stack.
type History struct {
	mu    sync.Mutex
	limit int
	undo  []Step
	redo  []Step
}

// NewHistory creates a history holding at most limit steps.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultUndoSteps
	}
	return &History{limit: limit}
}

// Push records a step and discards anything that could be redone.
func (h *History) Push(s Step) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undo = append(h.undo, s)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = nil
}

// Undo reverts the most recent step. ok is false when there is nothing to undo.
func (h *History) Undo() (Step, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) == 0 {
		return Step{}, false
	}
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	s.restore(s.Before)
	h.redo = append(h.redo, s)
	return s, true
}

// Redo reapplies the most recently undone step.
func (h *History) Redo() (Step, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return Step{}, false
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	s.restore(s.After)
	h.undo = append(h.undo, s)
	return s, true
}

// Len returns the number of undoable and redoable steps.
func (h *History) Len() (undo, redo int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo), len(h.redo)
}

func (s Step) restore(positions []math.Vec3) {
	_ = s.Object.WithMode(ModeObject, func(m *mesh.Mesh) error {
		m.SetPositions(s.Indices, positions)
		return nil
	})
}
