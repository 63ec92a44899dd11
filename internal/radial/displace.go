package radial

import "github.com/Faultbox/radial-offset/pkg/math"

// Direction returns the unit radial direction from point to co, restricted to
// the axes in mask. degenerate is true when co coincides with point on every
// active axis; the direction is then the zero vector.
func Direction(co, point math.Vec3, mask Mask) (dir math.Vec3, degenerate bool) {
	diff := mask.Apply(co.Sub(point))
	if diff.IsZero() {
		return math.Vec3{}, true
	}
	return diff.Normalize(), false
}

// Offset displaces a single position along its masked radial direction.
// Axes with a zero offset are returned exactly as given.
func Offset(co, point, offset math.Vec3, mask Mask) (math.Vec3, bool) {
	dir, degenerate := Direction(co, point, mask)
	if degenerate {
		return co, true
	}
	for _, a := range math.Axes {
		d := offset.Get(a)
		if d == 0 {
			continue
		}
		co.Set(a, co.Get(a)+dir.Get(a)*d)
	}
	return co, false
}

// Displace offsets every position in place and returns how many were
// degenerate (left untouched).
func Displace(positions []math.Vec3, point, offset math.Vec3) int {
	mask := BuildMask(offset)
	if mask.IsEmpty() {
		return 0
	}
	degenerate := 0
	for i, co := range positions {
		out, deg := Offset(co, point, offset, mask)
		if deg {
			degenerate++
			continue
		}
		positions[i] = out
	}
	return degenerate
}
