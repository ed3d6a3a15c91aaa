// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dashboard_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/js-arias/tsinfo/dashboard"
	"github.com/js-arias/tsinfo/hist"
	"github.com/js-arias/tsinfo/tseq"
	"github.com/js-arias/tsinfo/tsinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Recurrent returns a balanced tree
// with four samples
// and a recurrent mutation at site 0:
//
//	2.00┊    6    ┊
//	    ┊  ┏━┻━┓  ┊
//	1.00┊  4   5  ┊
//	    ┊ ┏┻┓ ┏┻┓ ┊
//	0.00┊ 0 1 2 3 ┊
//	    0        10
func recurrent(t testing.TB) *tsinfo.Info {
	t.Helper()

	tb := tseq.NewTables(10)
	for range 4 {
		tb.AddNode(tseq.Sample, 0)
	}
	tb.AddNode(0, 1)
	tb.AddNode(0, 1)
	tb.AddNode(0, 2)

	tb.AddEdge(0, 10, 4, 0)
	tb.AddEdge(0, 10, 4, 1)
	tb.AddEdge(0, 10, 5, 2)
	tb.AddEdge(0, 10, 5, 3)
	tb.AddEdge(0, 10, 6, 4)
	tb.AddEdge(0, 10, 6, 5)

	tb.AddSite(1, "A")
	tb.AddSite(6, "C")
	tb.AddMutation(0, 4, "T", tseq.Null)
	tb.AddMutation(0, 0, "A", 0)
	tb.AddMutation(1, 5, "G", tseq.Null)
	require.NoError(t, tb.Sort())

	ts, err := tb.TreeSequence()
	require.NoError(t, err)
	return tsinfo.New(ts)
}

func TestConfig(t *testing.T) {
	in := `# tsinfo dashboard
plot_width: 1200
log_y: true
gradient: iridescent
x_range:
  min: 0
  max: 5
`
	cfg, err := dashboard.ReadConfig(strings.NewReader(in))
	require.NoError(t, err)

	want := dashboard.DefaultConfig()
	want.PlotWidth = 1200
	want.LogY = true
	want.Gradient = "iridescent"
	want.XRange = hist.Window{Min: 0, Max: 5}
	assert.Equal(t, want, cfg)

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))
	got, err := dashboard.ReadConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	empty, err := dashboard.ReadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, dashboard.DefaultConfig(), empty)
}

func TestConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown option":  "plot_depth: 10\n",
		"bad gradient":    "gradient: sepia\n",
		"negative size":   "plot_width: -1\n",
		"few bins":        "site_bins: 1\n",
		"inverted range":  "y_range:\n  min: 5\n  max: 1\n",
		"unsorted stages": "time_stages: [2, 1, 0]\n",
	}
	for name, in := range tests {
		_, err := dashboard.ReadConfig(strings.NewReader(in))
		assert.Error(t, err, name)
	}
}

func TestParseSection(t *testing.T) {
	s, err := dashboard.ParseSection(" Mutations ")
	require.NoError(t, err)
	assert.Equal(t, dashboard.Mutations, s)

	_, err = dashboard.ParseSection("sites")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	inf := recurrent(t)
	cfg := dashboard.DefaultConfig()
	cfg.LogY = true

	var buf bytes.Buffer
	require.NoError(t, dashboard.Render(&buf, inf, cfg))
	html := buf.String()

	for _, title := range []string{
		"Tree sequence",
		"Mutations per site",
		"Mutations per node",
		"Edge span",
		"Branch length",
		"Ancestors span",
		"1 nodes without ancestor",
		"log(Count)",
	} {
		assert.Contains(t, html, title)
	}
}

func TestRenderSections(t *testing.T) {
	inf := recurrent(t)

	var buf bytes.Buffer
	require.NoError(t, dashboard.Render(&buf, inf, dashboard.DefaultConfig(), dashboard.Nodes))
	html := buf.String()
	assert.Contains(t, html, "Ancestors span")
	assert.NotContains(t, html, "Edge span")

	err := dashboard.Render(&buf, inf, dashboard.DefaultConfig(), dashboard.Section("sites"))
	assert.Error(t, err)

	bad := dashboard.DefaultConfig()
	bad.Gradient = "sepia"
	assert.Error(t, dashboard.Render(&buf, inf, bad))
}

func TestMutationCharts(t *testing.T) {
	inf := recurrent(t)
	cfg := dashboard.DefaultConfig()

	ch, err := dashboard.MutationCharts(inf, cfg)
	require.NoError(t, err)
	assert.Len(t, ch, 5)

	// unchained mutations on the same node
	tb := inf.TreeSeq().Tables()
	tb.AddMutation(1, 5, "T", tseq.Null)
	ts, err := tb.TreeSequence()
	require.NoError(t, err)
	_, err = dashboard.MutationCharts(tsinfo.New(ts), cfg)
	assert.Error(t, err)
}

func TestStaticPlots(t *testing.T) {
	inf := recurrent(t)
	cfg := dashboard.DefaultConfig()

	mt, err := inf.Mutations()
	require.NoError(t, err)

	p, err := dashboard.ScatterPlot(mt, "position", "time", "num_inheritors", cfg)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, dashboard.WritePlot(&buf, p, cfg, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	// ancestors span of the root is not plotted
	nt := inf.Nodes()
	p, err = dashboard.ScatterPlot(nt, "time", "ancestors_span", "", cfg)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, dashboard.WritePlot(&buf, p, cfg, "png"))
	assert.NotZero(t, buf.Len())

	p, err = dashboard.ColumnHist(mt, "num_descendants", cfg)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, dashboard.WritePlot(&buf, p, cfg, "svg"))

	_, err = dashboard.ScatterPlot(mt, "position", "derived_state", "", cfg)
	assert.Error(t, err)
	_, err = dashboard.ColumnHist(mt, "weight", cfg)
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	f, err := dashboard.Format("mutations.SVG")
	require.NoError(t, err)
	assert.Equal(t, "svg", f)

	_, err = dashboard.Format("mutations.html")
	assert.Error(t, err)
}

func TestRenderTimeStages(t *testing.T) {
	inf := recurrent(t)
	cfg := dashboard.DefaultConfig()
	cfg.TimeStages = []float64{0, 0.5}

	var buf bytes.Buffer
	require.NoError(t, dashboard.Render(&buf, inf, cfg, dashboard.Mutations, dashboard.Nodes))
	assert.Contains(t, buf.String(), "Node time")
	assert.Contains(t, buf.String(), "Mutations per stage")

	ch, err := dashboard.MutationCharts(inf, cfg)
	require.NoError(t, err)
	assert.Len(t, ch, 6)
}

func TestStageCounts(t *testing.T) {
	cfg := dashboard.DefaultConfig()
	cfg.TimeStages = []float64{0, 0.5, 2}

	stages, counts := dashboard.StageCounts(cfg, []float64{0, 1, 1, 0.5, 3, math.Inf(-1)})
	assert.Equal(t, []float64{0, 0.5, 2}, stages)
	assert.Equal(t, []int{1, 3, 1}, counts)
}
