package radial

import (
	"fmt"

	"github.com/Faultbox/radial-offset/pkg/math"
)

// Reference resolves the point radial directions are measured from.
// The implementations are Object, Bounding, Custom and Cursor.
type Reference interface {
	// Mode reports which variant this is.
	Mode() Mode
	// Resolve returns the reference point for the selected positions.
	Resolve(selected []math.Vec3) (math.Vec3, error)

	reference()
}

// Object measures from the object-local origin.
type Object struct{}

// Bounding measures from the center of the selection's axis-aligned bounding box.
type Bounding struct{}

// Custom measures from an explicit point in object-local space.
type Custom struct {
	Point math.Vec3
}

// Cursor measures from the 3D cursor, already expressed in object-local space.
type Cursor struct {
	Point math.Vec3
}

func (Object) Mode() Mode { return ModeObject }
func (Bounding) Mode() Mode { return ModeBounding }
func (Custom) Mode() Mode { return ModeCustom }
func (Cursor) Mode() Mode { return ModeCursor }

func (Object) reference() {}
func (Bounding) reference() {}
func (Custom) reference() {}
func (Cursor) reference() {}

// Resolve returns (0,0,0) regardless of the selection.
func (Object) Resolve([]math.Vec3) (math.Vec3, error) {
	return math.Vec3{}, nil
}

// Resolve returns min + (max-min)*0.5 over selected.
func (Bounding) Resolve(selected []math.Vec3) (math.Vec3, error) {
	if len(selected) == 0 {
		return math.Vec3{}, ErrEmptySelection
	}
	lo, hi := selected[0], selected[0]
	for _, p := range selected[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return hi.Sub(lo).Scale(0.5).Add(lo), nil
}

// Resolve returns the custom point verbatim.
func (c Custom) Resolve([]math.Vec3) (math.Vec3, error) {
	return c.Point, nil
}

// Resolve returns the cursor point verbatim.
func (c Cursor) Resolve([]math.Vec3) (math.Vec3, error) {
	return c.Point, nil
}

// NewReference builds the Reference for mode. custom is required for
// ModeCustom and cursor for ModeCursor; a nil pointer there yields ErrMissingPoint.
func NewReference(mode Mode, custom, cursor *math.Vec3) (Reference, error) {
	switch mode {
	case ModeObject:
		return Object{}, nil
	case ModeBounding:
		return Bounding{}, nil
	case ModeCustom:
		if custom == nil {
			return nil, fmt.Errorf("%w (mode %s)", ErrMissingPoint, mode)
		}
		return Custom{Point: *custom}, nil
	case ModeCursor:
		if cursor == nil {
			return nil, fmt.Errorf("%w (mode %s)", ErrMissingPoint, mode)
		}
		return Cursor{Point: *cursor}, nil
	default:
		return nil, fmt.Errorf("unknown reference point mode %s", mode)
	}
}
