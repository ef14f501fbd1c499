package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/sketchscore/distfield"
	"github.com/katalvlaran/sketchscore/evaluate"
)

// ErrBadStride indicates a non-positive downsampling stride.
var ErrBadStride = errors.New("report: stride must be positive")

// viridisColors is the visual-map gradient for all heatmaps.
var viridisColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// RenderGridHeatmap writes an HTML heatmap of the per-block maxima behind
// the top-K score. Block (0,0) is the canvas top-left; rows grow downward.
func RenderGridHeatmap(w io.Writer, m evaluate.ErrorMetrics, title string) error {
	size := len(m.Grid)
	data := make([]opts.HeatMapData, 0, size*size)
	maxVal := 0
	for i, row := range m.Grid {
		for j, v := range row {
			if v > maxVal {
				maxVal = v
			}
			// echarts y grows upward; flip rows so the chart matches the canvas.
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, size - 1 - i, v}})
		}
	}

	hm := newHeatMap(title,
		fmt.Sprintf("top5=%.1f%% mean=%.1f%% pixels=%d", m.TopK, m.Mean, m.PixelCount),
		axisLabels(size, 1), maxVal)
	hm.AddSeries("block maxima", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))

	return hm.Render(w)
}

// RenderFieldHeatmap writes an HTML heatmap of a distance field, sampling
// every stride-th cell per axis to keep the payload reasonable for
// canvas-sized fields.
func RenderFieldHeatmap(w io.Writer, f *distfield.Field, stride int, title string) error {
	if stride <= 0 {
		return ErrBadStride
	}
	rows := (f.Rows() + stride - 1) / stride
	cols := (f.Cols() + stride - 1) / stride
	data := make([]opts.HeatMapData, 0, rows*cols)
	maxVal := 0
	for r := 0; r < f.Rows(); r += stride {
		for c := 0; c < f.Cols(); c += stride {
			v := f.At(r, c)
			if v > maxVal {
				maxVal = v
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{c / stride, rows - 1 - r/stride, v}})
		}
	}

	hm := newHeatMap(title,
		fmt.Sprintf("%d×%d field, stride %d", f.Rows(), f.Cols(), stride),
		axisLabels(cols, stride), maxVal)
	hm.AddSeries("distance", data)

	return hm.Render(w)
}

// newHeatMap builds a square category heatmap with the shared cosmetics.
func newHeatMap(title, subtitle string, labels []string, maxVal int) *charts.HeatMap {
	if maxVal == 0 {
		maxVal = 1
	}
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "760px",
			Height:    "760px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      labels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxVal),
			InRange:    &opts.VisualMapInRange{Color: viridisColors},
		}),
	)
	hm.SetXAxis(labels)
	return hm
}

// axisLabels names n category ticks spaced stride cells apart.
func axisLabels(n, stride int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%d", i*stride)
	}
	return out
}
