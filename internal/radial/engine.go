// Package radial implements the radial offset transform: vertices are pushed
// away from (or pulled toward) a reference point along their per-axis masked
// radial direction.
package radial

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/radial-offset/pkg/math"
	"github.com/Faultbox/radial-offset/pkg/mesh"
)

// Status values reported to a Recorder.
const (
	StatusFinished  = "finished"
	StatusCancelled = "cancelled"
)

// Request describes one invocation of the transform.
type Request struct {
	Offset    math.Vec3 // Signed per-axis distance; 0 disables the axis
	Reference Reference
}

// Result summarizes a finished invocation.
type Result struct {
	Point      math.Vec3 // Resolved reference point
	Mask       Mask
	Indices    []int       // Selected vertex indices, in mesh order
	Before     []math.Vec3 // Positions prior to the transform, parallel to Indices
	After      []math.Vec3 // Positions written back, parallel to Indices
	Degenerate int         // Vertices left in place because they sat on the reference point
}

// Displaced returns how many selected vertices were moved.
func (r Result) Displaced() int {
	if r.Mask.IsEmpty() {
		return 0
	}
	return len(r.Indices) - r.Degenerate
}

// Recorder receives one observation per invocation.
type Recorder interface {
	Observe(mode Mode, status string, displaced, degenerate int, elapsed time.Duration)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-invocation diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.rec = r
	}
}

// Engine runs the transform. It holds no per-mesh state and may be shared.
type Engine struct {
	log *zap.Logger
	rec Recorder
	now func() time.Time
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply offsets the selected vertices of m in place.
//
// Precondition failures wrap ErrCancelled and leave m untouched. Unselected
// vertices are neither read nor written.
func (e *Engine) Apply(m *mesh.Mesh, req Request) (Result, error) {
	start := e.now()
	res, err := e.apply(m, req)

	mode := ModeObject
	if req.Reference != nil {
		mode = req.Reference.Mode()
	}
	status := StatusFinished
	if err != nil {
		status = StatusCancelled
		e.log.Info("radial offset cancelled",
			zap.String("mode", mode.String()),
			zap.Error(err))
	} else {
		point := res.Point.Array()
		e.log.Debug("radial offset applied",
			zap.String("mode", mode.String()),
			zap.String("axes", res.Mask.String()),
			zap.Float32s("point", point[:]),
			zap.Int("selected", len(res.Indices)),
			zap.Int("degenerate", res.Degenerate))
	}
	if e.rec != nil {
		e.rec.Observe(mode, status, res.Displaced(), res.Degenerate, e.now().Sub(start))
	}
	return res, err
}

func (e *Engine) apply(m *mesh.Mesh, req Request) (Result, error) {
	if m.IsEmpty() {
		return Result{}, ErrNoVertices
	}
	if req.Reference == nil {
		return Result{}, ErrMissingPoint
	}
	if !req.Offset.IsFinite() {
		return Result{}, fmt.Errorf("%w: offset %v is not finite", ErrCancelled, req.Offset)
	}

	sel := m.Selected()
	if len(sel) == 0 {
		return Result{}, ErrEmptySelection
	}

	before := m.Positions(sel)
	point, err := req.Reference.Resolve(before)
	if err != nil {
		return Result{}, err
	}
	if !point.IsFinite() {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPoint, point)
	}

	after := make([]math.Vec3, len(before))
	copy(after, before)
	degenerate := Displace(after, point, req.Offset)
	m.SetPositions(sel, after)

	return Result{
		Point:      point,
		Mask:       BuildMask(req.Offset),
		Indices:    sel,
		Before:     before,
		After:      after,
		Degenerate: degenerate,
	}, nil
}
