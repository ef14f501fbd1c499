package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchscore/distfield"
	"github.com/katalvlaran/sketchscore/evaluate"
	"github.com/katalvlaran/sketchscore/pixel"
	"github.com/katalvlaran/sketchscore/report"
)

// sampleMetrics builds a small real result to render.
func sampleMetrics(t *testing.T) evaluate.ErrorMetrics {
	t.Helper()
	opts := evaluate.DefaultOptions()
	opts.CanvasSize = 20
	opts.GridSize = 10

	sess, err := evaluate.NewSession([]pixel.Coord{{Row: 10, Col: 10}}, opts)
	require.NoError(t, err)
	_, err = sess.AddObservation([]pixel.Coord{{Row: 0, Col: 0}, {Row: 19, Col: 19}})
	require.NoError(t, err)

	m, err := sess.FullResult()
	require.NoError(t, err)
	return m
}

// TestRenderGridHeatmap produces a self-contained HTML document.
func TestRenderGridHeatmap(t *testing.T) {
	var buf bytes.Buffer
	err := report.RenderGridHeatmap(&buf, sampleMetrics(t), "grid test")
	require.NoError(t, err)

	html := buf.String()
	require.True(t, strings.Contains(html, "echarts"), "missing echarts bootstrap")
	require.True(t, strings.Contains(html, "grid test"), "missing title")
}

// TestRenderFieldHeatmap downsamples a canvas-sized field.
func TestRenderFieldHeatmap(t *testing.T) {
	f, err := distfield.Build(100, 100, []pixel.Coord{{Row: 50, Col: 50}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.RenderFieldHeatmap(&buf, f, 5, "field test"))
	require.True(t, strings.Contains(buf.String(), "field test"))
}

// TestRenderFieldHeatmap_BadStride rejects non-positive strides.
func TestRenderFieldHeatmap_BadStride(t *testing.T) {
	f, err := distfield.Build(10, 10, []pixel.Coord{{Row: 0, Col: 0}})
	require.NoError(t, err)
	require.ErrorIs(t, report.RenderFieldHeatmap(&bytes.Buffer{}, f, 0, "x"), report.ErrBadStride)
}
