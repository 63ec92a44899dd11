package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/radial-offset/internal/radial"
	"github.com/Faultbox/radial-offset/pkg/math"
	"github.com/Faultbox/radial-offset/pkg/mesh"
)

func TestObserve(t *testing.T) {
	m := New()
	m.Observe(radial.ModeBounding, radial.StatusFinished, 4, 1, time.Millisecond)
	m.Observe(radial.ModeBounding, radial.StatusCancelled, 0, 0, time.Microsecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invocations.WithLabelValues("bounding", "finished")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invocations.WithLabelValues("bounding", "cancelled")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Displaced))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Degenerate))
}

func TestEngineReportsToMetrics(t *testing.T) {
	m := New()
	eng := radial.New(radial.WithRecorder(m))

	msh := mesh.New("ring",
		math.Vec3{X: 1},
		math.Vec3{Y: 1},
		math.Vec3{X: -1},
	)
	msh.SelectAll()
	_, err := eng.Apply(msh, radial.Request{Offset: math.Vec3{X: 0.1, Y: 0.1}, Reference: radial.Object{}})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invocations.WithLabelValues("object", "finished")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Displaced))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Observe(radial.ModeCursor, radial.StatusFinished, 2, 0, time.Millisecond)

	path := filepath.Join(t.TempDir(), "radoff.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `radoff_invocations_total{mode="cursor",status="finished"} 1`), out)
	assert.True(t, strings.Contains(out, "radoff_vertices_displaced_total 2"), out)
}
