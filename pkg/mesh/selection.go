package mesh

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrSelectionSyntax is returned for malformed selection expressions.
var ErrSelectionSyntax = errors.New("invalid selection")

// ParseSelection turns an expression such as "0-3,7" into sorted, unique
// vertex indices for a mesh with count vertices. "all" selects everything and
// an empty expression selects nothing. Ranges are inclusive.
func ParseSelection(expr string, count int) ([]int, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	if strings.EqualFold(expr, "all") {
		out := make([]int, count)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		if hi >= count {
			return nil, fmt.Errorf("%w: %d (mesh has %d vertices)", ErrVertexIndex, hi, count)
		}
		for i := lo; i <= hi; i++ {
			seen[i] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out, nil
}

func parseRange(part string) (lo, hi int, err error) {
	a, b, isRange := strings.Cut(part, "-")
	lo, err = strconv.Atoi(strings.TrimSpace(a))
	if err != nil || lo < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrSelectionSyntax, part)
	}
	if !isRange {
		return lo, lo, nil
	}
	hi, err = strconv.Atoi(strings.TrimSpace(b))
	if err != nil || hi < lo {
		return 0, 0, fmt.Errorf("%w: %q", ErrSelectionSyntax, part)
	}
	return lo, hi, nil
}
