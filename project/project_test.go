// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/js-arias/tsinfo/dashboard"
	"github.com/js-arias/tsinfo/project"
	"github.com/js-arias/tsinfo/tseq"
	"github.com/js-arias/tsinfo/tsinfo"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Nodes, "nodes.tab"},
		{project.Edges, "edges.tab"},
		{project.Sites, "sites.tab"},
		{project.Mutations, "mutations.tab"},
		{project.Stages, "stages.tab"},
		{project.Dashboard, "dashboard.yaml"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project.tab")

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)
	if np.Name() != name {
		t.Errorf("name: got %q, want %q", np.Name(), name)
	}

	if prev := np.Add(project.Stages, ""); prev != "stages.tab" {
		t.Errorf("remove: got previous %q, want %q", prev, "stages.tab")
	}
	if path := np.Path(project.Stages); path != "" {
		t.Errorf("remove: got path %q, want empty", path)
	}
}

func TestTables(t *testing.T) {
	dir := t.TempDir()

	tb := tseq.NewTables(10)
	tb.AddNode(tseq.Sample, 0)
	tb.AddNode(tseq.Sample, 0)
	tb.AddNode(0, 1)
	tb.AddEdge(0, 10, 2, 0)
	tb.AddEdge(0, 10, 2, 1)
	tb.AddSite(4, "A")
	tb.AddMutation(0, 1, "C", tseq.Null)

	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	for _, set := range project.TableSets {
		p.Add(set, filepath.Join(dir, string(set)+".tab"))
	}
	if err := p.WriteTables(tb); err != nil {
		t.Fatalf("write tables: %v", err)
	}

	got, err := p.Tables(0)
	if err != nil {
		t.Fatalf("read tables: %v", err)
	}
	if !reflect.DeepEqual(got, tb) {
		t.Errorf("tables: got %v, want %v", got, tb)
	}

	ts, err := p.TreeSeq(0)
	if err != nil {
		t.Fatalf("tree sequence: %v", err)
	}
	if ts.NumMutations() != 1 || ts.SequenceLength() != 10 {
		t.Errorf("tree sequence: got %d mutations, length %v", ts.NumMutations(), ts.SequenceLength())
	}

	st, err := p.Stages()
	if err != nil {
		t.Fatalf("stages: %v", err)
	}
	if len(st) != 0 {
		t.Errorf("stages: got %v, want empty", st.Stages())
	}
}

func TestTablesErrors(t *testing.T) {
	p := project.New()
	if _, err := p.Tables(0); err == nil {
		t.Errorf("undefined nodes: expecting error")
	}

	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.tab")
	if err := os.WriteFile(nodes, []byte("is_sample\ttime\n1\tzero\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	p.Add(project.Nodes, nodes)
	if _, err := p.Tables(0); err == nil {
		t.Errorf("invalid node file: expecting error")
	}
}

func TestDashboard(t *testing.T) {
	dir := t.TempDir()
	p := project.New()

	cfg, err := p.Dashboard()
	if err != nil {
		t.Fatalf("default dashboard: %v", err)
	}
	if !reflect.DeepEqual(cfg, dashboard.DefaultConfig()) {
		t.Errorf("default dashboard: got %+v, want %+v", cfg, dashboard.DefaultConfig())
	}

	stages := filepath.Join(dir, "stages.tab")
	if err := os.WriteFile(stages, []byte("# time stages\n0\n10\n100\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	p.Add(project.Stages, stages)

	dash := filepath.Join(dir, "dashboard.yaml")
	if err := os.WriteFile(dash, []byte("log_y: true\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	p.Add(project.Dashboard, dash)

	cfg, err = p.Dashboard()
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !cfg.LogY {
		t.Errorf("dashboard: log_y not set")
	}
	if want := []float64{0, 10, 100}; !reflect.DeepEqual(cfg.TimeStages, want) {
		t.Errorf("dashboard: time stages: got %v, want %v", cfg.TimeStages, want)
	}

	if err := os.WriteFile(dash, []byte("time_stages: [5, 50]\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	cfg, err = p.Dashboard()
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if want := []float64{5, 50}; !reflect.DeepEqual(cfg.TimeStages, want) {
		t.Errorf("dashboard: time stages: got %v, want %v", cfg.TimeStages, want)
	}
}

func TestTrees(t *testing.T) {
	dir := t.TempDir()

	tb := tseq.NewTables(10)
	tb.AddNode(tseq.Sample, 0)
	tb.AddNode(tseq.Sample, 0)
	tb.AddNode(0, 1)
	tb.AddEdge(0, 10, 2, 0)
	tb.AddEdge(0, 10, 2, 1)
	ts, err := tb.TreeSequence()
	if err != nil {
		t.Fatalf("tree sequence: %v", err)
	}
	tc, err := tsinfo.New(ts).TimeTrees("local", 100)
	if err != nil {
		t.Fatalf("time trees: %v", err)
	}

	p := project.New()
	if _, err := p.Trees(); err == nil {
		t.Errorf("undefined trees: expecting error")
	}
	p.Add(project.Trees, filepath.Join(dir, "trees.tab"))
	if err := p.WriteTrees(tc); err != nil {
		t.Fatalf("write trees: %v", err)
	}

	got, err := p.Trees()
	if err != nil {
		t.Fatalf("read trees: %v", err)
	}
	if names := got.Names(); !reflect.DeepEqual(names, []string{"local.0"}) {
		t.Errorf("trees: got %v, want %v", names, []string{"local.0"})
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}
