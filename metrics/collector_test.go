package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/overlay"
)

func TestCollectorObserveSelection(t *testing.T) {
	c := NewCollector(Config{Namespace: "test", Subsystem: "rings"}, nil)

	c.ObserveSelection(overlay.SelectionStats{
		Operation: overlay.Difference,
		Total:     5,
		Excluded:  1,
		Selected:  3,
		Reversed:  2,
	})
	c.ObserveSelection(overlay.SelectionStats{Operation: overlay.Difference, Total: 1})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.selectionsTotal.WithLabelValues("difference")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.ringsTotal.WithLabelValues("difference", OutcomeSelected)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ringsTotal.WithLabelValues("difference", OutcomeReversed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ringsTotal.WithLabelValues("difference", OutcomeExcluded)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ringsTotal.WithLabelValues("difference", OutcomeRejected)))
}

func TestCollectorAsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(Config{}, reg)
	require.Same(t, reg, c.Registry())

	a := overlay.NewBox(0, 0, 10, 10)
	b := overlay.NewBox(2, 2, 4, 4)
	overlay.SelectRings(overlay.Union, a, b, overlay.RingSet{}, overlay.WithObserver(c))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.selectionsTotal.WithLabelValues("union")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ringsTotal.WithLabelValues("union", OutcomeSelected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ringsTotal.WithLabelValues("union", OutcomeRejected)))

	n, err := testutil.GatherAndCount(reg, "overlay_selection_selections_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollectorWriteTextfile(t *testing.T) {
	c := NewCollector(Config{Namespace: "ringselect"}, nil)
	c.ObserveSelection(overlay.SelectionStats{Operation: overlay.Intersection, Total: 2, Selected: 1})

	path := filepath.Join(t.TempDir(), "ringselect.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `ringselect_selection_selections_total{operation="intersection"} 1`))
}

func TestCollectorWriteTextfileEmptyPath(t *testing.T) {
	c := NewCollector(Config{}, nil)
	assert.ErrorIs(t, c.WriteTextfile(""), ErrNoTextfilePath)
}
