// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dashboard

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/js-arias/tsinfo/hist"
	"github.com/js-arias/tsinfo/tsinfo"
	"golang.org/x/exp/slices"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A histPlot is a plot of the bars of a histogram.
type histPlot struct {
	h     hist.Histogram
	fill  color.Color
	style draw.LineStyle
}

// DataRange implements the plot.DataRanger interface.
func (hp *histPlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	if len(hp.h.Count) == 0 {
		return 0, 1, 0, 1
	}
	yMax = slices.Max(hp.h.Count)
	if yMax == 0 {
		yMax = 1
	}
	return hp.h.Dividers[0], hp.h.Dividers[len(hp.h.Dividers)-1], 0, yMax
}

// Plot implements the plot.Plotter interface.
func (hp *histPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	c.SetLineStyle(hp.style)

	for i, v := range hp.h.Count {
		if v == 0 {
			continue
		}
		x0 := trX(hp.h.Dividers[i])
		x1 := trX(hp.h.Dividers[i+1])
		y0 := trY(0)
		y1 := trY(v)

		pts := []vg.Point{
			{X: x0, Y: y0},
			{X: x0, Y: y1},
			{X: x1, Y: y1},
			{X: x1, Y: y0},
			{X: x0, Y: y0},
		}
		c.FillPolygon(hp.fill, pts)

		var p vg.Path
		p.Move(pts[0])
		for _, pt := range pts[1:] {
			p.Line(pt)
		}
		c.Stroke(p)
	}
}

// HistPlot returns a static plot of a histogram.
func HistPlot(h hist.Histogram, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	p.Add(&histPlot{
		h:     h,
		fill:  color.RGBA{127, 188, 165, 255},
		style: plotter.DefaultLineStyle,
	})
	return p
}

// ColumnHist returns a static plot
// of the histogram of a table column.
// Count columns (names that start with "num_")
// use integer bins.
func ColumnHist(tab tsinfo.Table, col string, cfg Config) (*plot.Plot, error) {
	data, err := tab.Float(col)
	if err != nil {
		return nil, err
	}

	var h hist.Histogram
	yLabel := "count"
	switch {
	case strings.HasPrefix(col, "num_"):
		bins := cfg.SiteBins
		if col == "num_mutations" {
			bins = cfg.NodeBins
		}
		h = hist.Range(data, 0, bins)
		if cfg.LogY {
			h = h.Log10()
			yLabel = "log(count)"
		}
	case col == "time":
		h = cfg.timeHist(data)
	default:
		h = hist.Uniform(data, cfg.AxisBins)
	}
	return HistPlot(h, col, yLabel), nil
}

// ScatterPlot returns a static scatter plot
// of two columns of a table.
// If colorCol is defined,
// the points are colored using the values
// of that column,
// scaled to the range of the column.
// Only the points inside the windows
// of the configuration are plotted.
func ScatterPlot(tab tsinfo.Table, x, y, colorCol string, cfg Config) (*plot.Plot, error) {
	xv, err := tab.Float(x)
	if err != nil {
		return nil, err
	}
	yv, err := tab.Float(y)
	if err != nil {
		return nil, err
	}
	pts := hist.NewPoints(xv, yv).Filter(cfg.XRange, cfg.YRange)

	var all []float64
	if colorCol != "" {
		all, err = tab.Float(colorCol)
		if err != nil {
			return nil, err
		}
	}

	// points with a non-finite coordinate
	// (e.g., nodes without ancestors)
	// are not plotted.
	var xys plotter.XYs
	var cv []float64
	for i, r := range pts.Index {
		if !isFinite(pts.X[i]) || !isFinite(pts.Y[i]) {
			continue
		}
		xys = append(xys, plotter.XY{X: pts.X[i], Y: pts.Y[i]})
		if all != nil {
			cv = append(cv, all[r])
		}
	}
	scale(cv)

	p := plot.New()
	p.X.Label.Text = x
	p.Y.Label.Text = y

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("scatter plot: %v", err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(2)
	g := cfg.gradient()
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		gs := sc.GlyphStyle
		if cv == nil {
			gs.Color = g.Gradient(0.5)
			return gs
		}
		gs.Color = g.Gradient(cv[i])
		return gs
	}
	p.Add(sc)
	return p, nil
}

// Scale rescales the finite values
// to the range [0, 1].
func scale(v []float64) {
	var vals []float64
	for _, x := range v {
		if !isFinite(x) {
			continue
		}
		vals = append(vals, x)
	}
	if len(vals) == 0 {
		return
	}
	lo := slices.Min(vals)
	hi := slices.Max(vals)
	for i, x := range v {
		switch {
		case !isFinite(x):
			v[i] = 0
		case hi > lo:
			v[i] = (x - lo) / (hi - lo)
		default:
			v[i] = 0.5
		}
	}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// valid formats of a static plot
var formats = []string{"svg", "png", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

// Format returns the image format
// from the extension of a file name.
func Format(name string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if !slices.Contains(formats, ext) {
		return "", fmt.Errorf("unknown plot format %q", ext)
	}
	return ext, nil
}

// WritePlot writes a static plot
// with the size defined in the configuration
// (in pixels, at 96 dots per inch).
func WritePlot(w io.Writer, p *plot.Plot, cfg Config, format string) error {
	width := vg.Length(cfg.PlotWidth) * vg.Inch / 96
	height := vg.Length(cfg.PlotHeight) * vg.Inch / 96
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("while writing plot: %v", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("while writing plot: %v", err)
	}
	return nil
}
