// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dashboard

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/js-arias/tsinfo/gradient"
	"github.com/js-arias/tsinfo/hist"
	"github.com/js-arias/tsinfo/tsinfo"
)

// A Section is a set of charts of a dashboard.
type Section string

// Valid dashboard sections.
const (
	// Size of the tree sequence tables.
	Overview Section = "overview"

	// Mutation positions and times,
	// and mutations per site and per node.
	Mutations Section = "mutations"

	// Edge spans and branch lengths.
	Edges Section = "edges"

	// Node times, ancestor spans,
	// and mutations per node.
	Nodes Section = "nodes"
)

// Sections is the list of all sections
// in the order used in a dashboard.
var Sections = []Section{
	Overview,
	Mutations,
	Edges,
	Nodes,
}

// ParseSection returns a section from its name.
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, v := range Sections {
		if v == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown dashboard section %q", name)
}

// number of color classes
// used in scatter plots.
const numClasses = 5

// Page returns an HTML page with the charts
// of the given sections.
// If no section is given,
// all sections will be included.
func Page(inf *tsinfo.Info, cfg Config, sections ...Section) (*components.Page, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		sections = Sections
	}

	page := components.NewPage()
	page.PageTitle = "tsinfo dashboard"
	for _, s := range sections {
		var ch []components.Charter
		switch s {
		case Overview:
			ch = OverviewCharts(inf, cfg)
		case Mutations:
			var err error
			ch, err = MutationCharts(inf, cfg)
			if err != nil {
				return nil, err
			}
		case Edges:
			ch = EdgeCharts(inf, cfg)
		case Nodes:
			ch = NodeCharts(inf, cfg)
		default:
			return nil, fmt.Errorf("unknown dashboard section %q", s)
		}
		page.AddCharts(ch...)
	}
	return page, nil
}

// Render writes an HTML dashboard.
func Render(w io.Writer, inf *tsinfo.Info, cfg Config, sections ...Section) error {
	page, err := Page(inf, cfg, sections...)
	if err != nil {
		return err
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("while writing dashboard: %v", err)
	}
	return nil
}

// OverviewCharts returns a chart
// with the size of the tables.
func OverviewCharts(inf *tsinfo.Info, cfg Config) []components.Charter {
	s := inf.Summary()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(cfg.PlotWidth, cfg.PlotHeight)),
		charts.WithTitleOpts(opts.Title{
			Title:    "Tree sequence",
			Subtitle: fmt.Sprintf("sequence length %s", humanize.Commaf(s.SequenceLength)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	labels := []string{"trees", "samples", "nodes", "edges", "sites", "mutations"}
	vals := []int{s.Trees, s.Samples, s.Nodes, s.Edges, s.Sites, s.Mutations}
	data := make([]opts.BarData, len(vals))
	for i, v := range vals {
		data[i] = opts.BarData{
			Name:  humanize.Comma(int64(v)),
			Value: v,
		}
	}
	bar.SetXAxis(labels).AddSeries("count", data)
	return []components.Charter{bar}
}

// MutationCharts returns the charts of the mutation table:
// a scatter plot of position and time,
// colored by the fraction of descendants
// that inherit the mutation,
// histograms of the position and time
// of the points inside the plot windows,
// and the histograms of mutations per site
// and mutations per node.
func MutationCharts(inf *tsinfo.Info, cfg Config) ([]components.Charter, error) {
	mt, err := inf.Mutations()
	if err != nil {
		return nil, fmt.Errorf("mutations dashboard: %v", err)
	}

	pts := hist.NewPoints(mt.Position, mt.Time).Filter(cfg.XRange, cfg.YRange)
	frac := make([]float64, pts.Len())
	hover := make([][]any, pts.Len())
	for i, r := range pts.Index {
		if d := mt.NumDescendants[r]; d > 0 {
			frac[i] = float64(mt.NumInheritors[r]) / float64(d)
		}
		hover[i] = []any{mt.Node[r], mt.NodeFlags[r]}
	}

	scatter := newScatter(cfg, "Mutations", fmt.Sprintf("%s mutations", humanize.Comma(int64(pts.Len()))), "position", "time")
	addClasses(scatter, pts, frac, hover, "inheritors", cfg.gradient())

	timeH := cfg.timeHist(pts.Y).NormHeight()
	posH := hist.Uniform(pts.X, cfg.AxisBins).NormHeight()

	siteH, yName := countHist(inf.SitesNumMutations(), cfg.SiteBins, cfg.LogY)
	nodeH, _ := countHist(inf.NodesNumMutations(), cfg.NodeBins, cfg.LogY)

	ch := []components.Charter{
		scatter,
		histBar(cfg, "Time", "", "time", "density", timeH),
		histBar(cfg, "Position", "", "position", "density", posH),
		histBar(cfg, "Mutations per site", "", "mutations", yName, siteH),
		histBar(cfg, "Mutations per node", "", "mutations", yName, nodeH),
	}
	if len(cfg.TimeStages) > 0 {
		ch = append(ch, stageBar(cfg, mt.Time))
	}
	return ch, nil
}

// StageBar returns a chart with the number of mutations
// assigned to each time stage.
func stageBar(cfg Config, times []float64) *charts.Bar {
	labels, counts := StageCounts(cfg, times)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(cfg.PlotWidth/2, cfg.PlotHeight)),
		charts.WithTitleOpts(opts.Title{
			Title:    "Mutations per stage",
			Subtitle: fmt.Sprintf("%s stages", humanize.Comma(int64(len(labels)))),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "stage"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)

	xs := make([]string, len(labels))
	data := make([]opts.BarData, len(labels))
	for i, a := range labels {
		xs[i] = strconv.FormatFloat(a, 'g', 4, 64)
		data[i] = opts.BarData{Value: counts[i]}
	}
	bar.SetXAxis(xs).AddSeries("count", data)
	return bar
}

// StageCounts returns the time stages of a configuration
// and the number of times assigned to each stage.
// A time is assigned to the oldest stage
// that is younger than or equal to the time,
// or to the youngest stage
// if the time is younger than all stages.
// Non-finite times are ignored.
func StageCounts(cfg Config, times []float64) (stages []float64, counts []int) {
	st := cfg.stages()
	stages = st.Stages()
	counts = make([]int, len(stages))
	for _, t := range times {
		if math.IsInf(t, 0) || math.IsNaN(t) {
			continue
		}
		i, _ := slices.BinarySearch(stages, st.ClosestStage(t))
		counts[i]++
	}
	return stages, counts
}

// EdgeCharts returns the charts of the edge table:
// a scatter plot of the span and parent time,
// colored by branch length,
// and histograms of the span and branch length.
func EdgeCharts(inf *tsinfo.Info, cfg Config) []components.Charter {
	et := inf.Edges()

	span := et.Span()
	brLen := make([]float64, et.Len())
	for i := range brLen {
		brLen[i] = et.ParentTime[i] - et.ChildTime[i]
	}

	pts := hist.NewPoints(span, et.ParentTime).Filter(cfg.XRange, cfg.YRange)
	var maxLen float64
	for _, r := range pts.Index {
		maxLen = math.Max(maxLen, brLen[r])
	}
	frac := make([]float64, pts.Len())
	hover := make([][]any, pts.Len())
	for i, r := range pts.Index {
		if maxLen > 0 {
			frac[i] = brLen[r] / maxLen
		}
		hover[i] = []any{et.Parent[r], et.Child[r]}
	}

	scatter := newScatter(cfg, "Edges", fmt.Sprintf("%s edges", humanize.Comma(int64(pts.Len()))), "span", "parent time")
	addClasses(scatter, pts, frac, hover, "branch length", cfg.gradient())

	spanH := hist.Uniform(pts.X, cfg.AxisBins)
	lenH := hist.Uniform(brLen, cfg.AxisBins)
	return []components.Charter{
		scatter,
		histBar(cfg, "Edge span", "", "span", "count", spanH),
		histBar(cfg, "Branch length", "", "time", "count", lenH),
	}
}

// NodeCharts returns the charts of the node table:
// histograms of node times,
// ancestors span,
// and mutations per node.
// Nodes without ancestors are counted apart.
func NodeCharts(inf *tsinfo.Info, cfg Config) []components.Charter {
	nt := inf.Nodes()

	var noAnc int
	for _, sp := range nt.AncestorsSpan {
		if math.IsInf(sp, -1) {
			noAnc++
		}
	}

	timeH := cfg.timeHist(nt.Time)
	spanH := hist.Uniform(nt.AncestorsSpan, cfg.AxisBins)
	mutH, yName := countHist(nt.NumMutations, cfg.NodeBins, cfg.LogY)

	return []components.Charter{
		histBar(cfg, "Node time", fmt.Sprintf("%s nodes", humanize.Comma(int64(nt.Len()))), "time", "count", timeH),
		histBar(cfg, "Ancestors span", fmt.Sprintf("%s nodes without ancestor", humanize.Comma(int64(noAnc))), "span", "count", spanH),
		histBar(cfg, "Mutations per node", "", "mutations", yName, mutH),
	}
}

func countHist(counts []int, bins int, logY bool) (hist.Histogram, string) {
	h := hist.Range(hist.Ints(counts), 0, bins)
	if logY {
		return h.Log10(), "log(Count)"
	}
	return h, "Count"
}

func initOpts(width, height int) opts.Initialization {
	return opts.Initialization{
		Width:  strconv.Itoa(width) + "px",
		Height: strconv.Itoa(height) + "px",
	}
}

func newScatter(cfg Config, title, subtitle, xName, yName string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(cfg.PlotWidth, cfg.PlotHeight)),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)
	return scatter
}

// AddClasses adds the points to a scatter plot,
// with a series for each class of values.
// Values are expected to be between 0 and 1.
func addClasses(scatter *charts.Scatter, pts hist.Points, vals []float64, hover [][]any, name string, g gradient.Gradienter) {
	classes := make([][]opts.ScatterData, numClasses)
	for i := range pts.X {
		c := min(int(vals[i]*numClasses), numClasses-1)
		v := []any{pts.X[i], pts.Y[i]}
		v = append(v, hover[i]...)
		classes[c] = append(classes[c], opts.ScatterData{
			Value:      v,
			SymbolSize: 10,
		})
	}

	for c, data := range classes {
		if len(data) == 0 {
			continue
		}
		lo := c * 100 / numClasses
		hi := (c + 1) * 100 / numClasses
		color := gradient.Hex(g.Gradient((float64(c) + 0.5) / numClasses))
		scatter.AddSeries(fmt.Sprintf("%s %d-%d%%", name, lo, hi), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color, Opacity: opts.Float(0.6)}),
		)
	}
}

func histBar(cfg Config, title, subtitle, xName, yName string, h hist.Histogram) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(cfg.PlotWidth/2, cfg.PlotHeight)),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)

	labels := make([]string, len(h.Count))
	data := make([]opts.BarData, len(h.Count))
	for i, c := range h.Count {
		labels[i] = strconv.FormatFloat(h.Dividers[i], 'g', 4, 64)
		data[i] = opts.BarData{Value: c}
	}
	bar.SetXAxis(labels).AddSeries(yName, data)
	return bar
}
