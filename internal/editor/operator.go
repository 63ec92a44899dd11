package editor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/radial-offset/internal/radial"
	"github.com/Faultbox/radial-offset/pkg/math"
	"github.com/Faultbox/radial-offset/pkg/mesh"
)

// PollMessage explains why the operator is unavailable.
const PollMessage = "Active object must be a mesh with selected vertices"

// OperatorName is the label recorded in the undo history.
const OperatorName = "Radial Offset"

// Status is the outcome of an operator run.
type Status int

const (
	StatusFinished Status = iota
	StatusCancelled
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusFinished:
		return "FINISHED"
	case StatusCancelled:
		return "CANCELLED"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Settings are the user-facing operator properties.
type Settings struct {
	Offset math.Vec3   // Per-axis radial offset; 0 disables the axis
	Point  radial.Mode // Reference point mode
	Custom *math.Vec3  // Object-space point for radial.ModeCustom
}

// DefaultSettings returns offset (0.1, 0.1, 0) measured from the object origin.
func DefaultSettings() Settings {
	return Settings{
		Offset: math.Vec3{X: 0.1, Y: 0.1, Z: 0},
		Point:  radial.ModeObject,
	}
}

// RadialOffset runs the transform on the scene's active object as a single
// undoable step.
type RadialOffset struct {
	engine  *radial.Engine
	history *History
	log     *zap.Logger
}

// NewRadialOffset creates the operator. history may be nil to disable undo.
func NewRadialOffset(engine *radial.Engine, history *History, log *zap.Logger) *RadialOffset {
	if log == nil {
		log = zap.NewNop()
	}
	return &RadialOffset{engine: engine, history: history, log: log}
}

// Poll reports whether the operator can run: the active object must be a
// mesh with at least one selected vertex.
func (op *RadialOffset) Poll(s *Scene) bool {
	o := s.Active
	return o != nil && o.IsMesh() && o.Mesh.HasSelection()
}

// Execute applies the transform to the active object. Precondition failures
// return StatusCancelled with an error wrapping radial.ErrCancelled and leave
// the mesh untouched.
func (op *RadialOffset) Execute(s *Scene, set Settings) (Status, radial.Result, error) {
	o := s.Active
	if o == nil || !o.IsMesh() {
		return op.cancel(radial.ErrNoVertices)
	}

	cursor, err := o.WorldToLocal(s.Cursor)
	if err != nil && set.Point == radial.ModeCursor {
		return op.cancel(fmt.Errorf("%w: %w", radial.ErrInvalidPoint, err))
	}

	ref, err := radial.NewReference(set.Point, set.Custom, &cursor)
	if err != nil {
		return op.cancel(err)
	}

	var res radial.Result
	err = o.WithMode(ModeObject, func(m *mesh.Mesh) error {
		var aerr error
		res, aerr = op.engine.Apply(m, radial.Request{Offset: set.Offset, Reference: ref})
		return aerr
	})
	if err != nil {
		return op.cancel(err)
	}

	if op.history != nil {
		op.history.Push(Step{
			Name:    OperatorName,
			Object:  o,
			Indices: res.Indices,
			Before:  res.Before,
			After:   res.After,
		})
	}
	op.log.Info("radial offset finished",
		zap.String("object", o.Name),
		zap.String("point", set.Point.String()),
		zap.Int("selected", len(res.Indices)),
		zap.Int("displaced", res.Displaced()))
	return StatusFinished, res, nil
}

func (op *RadialOffset) cancel(err error) (Status, radial.Result, error) {
	if !errors.Is(err, radial.ErrCancelled) {
		err = fmt.Errorf("%w: %w", radial.ErrCancelled, err)
	}
	op.log.Warn("radial offset cancelled", zap.Error(err))
	return StatusCancelled, radial.Result{}, err
}
