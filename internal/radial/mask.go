package radial

import "github.com/Faultbox/radial-offset/pkg/math"

// Mask holds a 0/1 weight per axis. A zero weight removes the axis from both
// the direction computation and the displacement.
type Mask math.Vec3

// BuildMask returns 0 for every axis whose offset is exactly zero and 1 otherwise.
func BuildMask(offset math.Vec3) Mask {
	var m math.Vec3
	for _, a := range math.Axes {
		if offset.Get(a) != 0 {
			m.Set(a, 1)
		}
	}
	return Mask(m)
}

// Active reports whether axis a participates.
func (m Mask) Active(a math.Axis) bool {
	return math.Vec3(m).Get(a) != 0
}

// IsEmpty reports whether no axis participates.
func (m Mask) IsEmpty() bool {
	return math.Vec3(m).IsZero()
}

// Apply zeroes the excluded components of v.
func (m Mask) Apply(v math.Vec3) math.Vec3 {
	return v.Mul(math.Vec3(m))
}

// String renders the active axes, e.g. "xy", or "-" when none are active.
func (m Mask) String() string {
	s := ""
	for _, a := range math.Axes {
		if m.Active(a) {
			s += a.String()
		}
	}
	if s == "" {
		return "-"
	}
	return s
}
