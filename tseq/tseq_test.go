// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tseq_test

import (
	"bytes"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/tsinfo/tseq"
)

// TwoTrees returns the tables of a tree sequence
// with a breakpoint at position 5:
//
//	2.00┊   4   ┊   4   ┊
//	    ┊ ┏━┻┓  ┊  ┏┻━┓ ┊
//	1.00┊ ┃  3  ┊  3  ┃ ┊
//	    ┊ ┃ ┏┻┓ ┊ ┏┻┓ ┃ ┊
//	0.00┊ 0 1 2 ┊ 0 1 2 ┊
//	    0       5      10
func twoTrees() *tseq.Tables {
	t := tseq.NewTables(10)
	for range 3 {
		t.AddNode(tseq.Sample, 0)
	}
	t.AddNode(0, 1)
	t.AddNode(0, 2)

	t.AddEdge(0, 10, 3, 1)
	t.AddEdge(0, 5, 3, 2)
	t.AddEdge(0, 10, 4, 3)
	t.AddEdge(0, 5, 4, 0)
	t.AddEdge(5, 10, 3, 0)
	t.AddEdge(5, 10, 4, 2)
	return t
}

func TestSort(t *testing.T) {
	tb := twoTrees()
	if err := tb.Sort(); err != nil {
		t.Fatalf("sort: %v", err)
	}

	var left, right []float64
	var parent, child []int
	for _, e := range tb.Edges {
		left = append(left, e.Left)
		right = append(right, e.Right)
		parent = append(parent, e.Parent)
		child = append(child, e.Child)
	}
	if want := []float64{5, 0, 0, 0, 5, 0}; !reflect.DeepEqual(left, want) {
		t.Errorf("left: got %v, want %v", left, want)
	}
	if want := []float64{10, 10, 5, 5, 10, 10}; !reflect.DeepEqual(right, want) {
		t.Errorf("right: got %v, want %v", right, want)
	}
	if want := []int{3, 3, 3, 4, 4, 4}; !reflect.DeepEqual(parent, want) {
		t.Errorf("parent: got %v, want %v", parent, want)
	}
	if want := []int{0, 1, 2, 0, 2, 3}; !reflect.DeepEqual(child, want) {
		t.Errorf("child: got %v, want %v", child, want)
	}
}

func TestSortSitesAndMutations(t *testing.T) {
	tb := tseq.NewTables(10)
	tb.AddNode(tseq.Sample, 0)
	tb.AddSite(7, "A")
	tb.AddSite(2, "C")
	tb.AddMutation(0, 0, "T", tseq.Null)
	tb.AddMutation(1, 0, "G", tseq.Null)
	tb.AddMutation(0, 0, "A", 0)

	if err := tb.Sort(); err != nil {
		t.Fatalf("sort: %v", err)
	}

	if tb.Sites[0].Position != 2 || tb.Sites[1].Position != 7 {
		t.Errorf("sites: got %v, want positions [2 7]", tb.Sites)
	}
	want := []tseq.Mutation{
		{Site: 0, Node: 0, DerivedState: "G", Parent: tseq.Null},
		{Site: 1, Node: 0, DerivedState: "T", Parent: tseq.Null},
		{Site: 1, Node: 0, DerivedState: "A", Parent: 1},
	}
	if !reflect.DeepEqual(tb.Mutations, want) {
		t.Errorf("mutations: got %v, want %v", tb.Mutations, want)
	}
	if _, err := tb.TreeSequence(); err != nil {
		t.Errorf("sorted tables: unexpected error: %v", err)
	}
}

func TestTrees(t *testing.T) {
	tb := twoTrees()
	tb.Sort()
	ts, err := tb.TreeSequence()
	if err != nil {
		t.Fatalf("tree sequence: %v", err)
	}

	if n := ts.NumTrees(); n != 2 {
		t.Fatalf("trees: got %d, want %d", n, 2)
	}
	if bp := ts.Breakpoints(); !reflect.DeepEqual(bp, []float64{0, 5, 10}) {
		t.Errorf("breakpoints: got %v, want %v", bp, []float64{0, 5, 10})
	}
	if s := ts.Samples(); !reflect.DeepEqual(s, []int{0, 1, 2}) {
		t.Errorf("samples: got %v, want %v", s, []int{0, 1, 2})
	}

	tests := map[string]struct {
		pos     float64
		index   int
		parent  []int
		samples []int
	}{
		"first": {
			pos:     0,
			index:   0,
			parent:  []int{4, 3, 3, 4, tseq.Null},
			samples: []int{1, 1, 1, 2, 3},
		},
		"before breakpoint": {
			pos:     4.999,
			index:   0,
			parent:  []int{4, 3, 3, 4, tseq.Null},
			samples: []int{1, 1, 1, 2, 3},
		},
		"second": {
			pos:     5,
			index:   1,
			parent:  []int{3, 3, 4, 4, tseq.Null},
			samples: []int{1, 1, 1, 2, 3},
		},
	}

	for name, test := range tests {
		tr, err := ts.At(test.pos)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if tr.Index() != test.index {
			t.Errorf("%s: index: got %d, want %d", name, tr.Index(), test.index)
		}
		for n, p := range test.parent {
			if g := tr.Parent(n); g != p {
				t.Errorf("%s: parent of %d: got %d, want %d", name, n, g, p)
			}
			if g := tr.NumSamples(n); g != test.samples[n] {
				t.Errorf("%s: samples of %d: got %d, want %d", name, n, g, test.samples[n])
			}
		}
		if r := tr.Roots(); !reflect.DeepEqual(r, []int{4}) {
			t.Errorf("%s: roots: got %v, want %v", name, r, []int{4})
		}
	}

	if _, err := ts.At(10); err == nil {
		t.Errorf("position at sequence length: expecting error")
	}
	if _, err := ts.At(-1); err == nil {
		t.Errorf("negative position: expecting error")
	}
}

func TestPreorder(t *testing.T) {
	tb := twoTrees()
	tb.Sort()
	ts, err := tb.TreeSequence()
	if err != nil {
		t.Fatalf("tree sequence: %v", err)
	}

	tr := ts.Tree(0)
	got := tr.Preorder(4)
	slices.Sort(got)
	if want := []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("preorder: got %v, want %v", got, want)
	}
	if got := tr.Preorder(3); got[0] != 3 || len(got) != 3 {
		t.Errorf("preorder of 3: got %v", got)
	}
}

func TestInvalidTables(t *testing.T) {
	tests := map[string]func(t *tseq.Tables){
		"zero length": func(t *tseq.Tables) {
			t.Length = 0
		},
		"edge node out of range": func(t *tseq.Tables) {
			t.AddEdge(0, 10, 7, 0)
		},
		"empty interval": func(t *tseq.Tables) {
			t.Edges[0].Right = t.Edges[0].Left
		},
		"edge outside sequence": func(t *tseq.Tables) {
			t.Edges[0].Right = 11
		},
		"child older than parent": func(t *tseq.Tables) {
			t.Nodes[0].Time = 3
		},
		"unsorted edges": func(t *tseq.Tables) {
			t.Edges[0], t.Edges[5] = t.Edges[5], t.Edges[0]
		},
		"two parents": func(t *tseq.Tables) {
			t.AddEdge(2, 10, 4, 3)
		},
		"site outside sequence": func(t *tseq.Tables) {
			t.AddSite(10, "A")
		},
		"unsorted sites": func(t *tseq.Tables) {
			t.AddSite(5, "A")
			t.AddSite(1, "A")
		},
		"mutation without site": func(t *tseq.Tables) {
			t.AddMutation(0, 0, "T", tseq.Null)
		},
		"mutation node out of range": func(t *tseq.Tables) {
			t.AddSite(1, "A")
			t.AddMutation(0, 9, "T", tseq.Null)
		},
		"missing parent mutation": func(t *tseq.Tables) {
			t.AddSite(1, "A")
			t.AddMutation(0, 0, "T", 3)
		},
		"parent after child": func(t *tseq.Tables) {
			t.AddSite(1, "A")
			t.AddMutation(0, 0, "T", 1)
			t.AddMutation(0, 3, "G", tseq.Null)
		},
		"parent on other site": func(t *tseq.Tables) {
			t.AddSite(1, "A")
			t.AddSite(2, "A")
			t.AddMutation(0, 3, "T", tseq.Null)
			t.AddMutation(1, 0, "G", 0)
		},
	}

	for name, mod := range tests {
		tb := twoTrees()
		tb.Sort()
		mod(tb)
		if _, err := tb.TreeSequence(); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestImmutable(t *testing.T) {
	tb := twoTrees()
	tb.Sort()
	ts, err := tb.TreeSequence()
	if err != nil {
		t.Fatalf("tree sequence: %v", err)
	}

	tb.Nodes[0].Time = 100
	if ts.Node(0).Time != 0 {
		t.Errorf("tree sequence modified by changes in tables")
	}
	cp := ts.Tables()
	cp.Edges[0].Left = 1
	if ts.Edge(0).Left != 5 {
		t.Errorf("tree sequence modified by changes in copied tables")
	}
}

func TestTSV(t *testing.T) {
	tb := twoTrees()
	tb.Sort()
	tb.AddSite(1, "A")
	tb.AddSite(6, "C")
	tb.AddMutation(0, 3, "T", tseq.Null)
	tb.AddMutation(0, 1, "A", 0)
	tb.AddMutation(1, 2, "G", tseq.Null)

	var nodes, edges, sites, muts bytes.Buffer
	if err := tb.WriteNodes(&nodes); err != nil {
		t.Fatalf("write nodes: %v", err)
	}
	if err := tb.WriteEdges(&edges); err != nil {
		t.Fatalf("write edges: %v", err)
	}
	if err := tb.WriteSites(&sites); err != nil {
		t.Fatalf("write sites: %v", err)
	}
	if err := tb.WriteMutations(&muts); err != nil {
		t.Fatalf("write mutations: %v", err)
	}
	t.Logf("nodes:\n%s\n", nodes.String())

	nt := tseq.NewTables(0)
	if err := nt.ReadNodes(&nodes); err != nil {
		t.Fatalf("read nodes: %v", err)
	}
	if err := nt.ReadEdges(&edges); err != nil {
		t.Fatalf("read edges: %v", err)
	}
	if err := nt.ReadSites(&sites); err != nil {
		t.Fatalf("read sites: %v", err)
	}
	if err := nt.ReadMutations(&muts); err != nil {
		t.Fatalf("read mutations: %v", err)
	}
	nt.InferLength()

	if !reflect.DeepEqual(nt, tb) {
		t.Errorf("tsv: got %v, want %v", nt, tb)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"missing field": "left\tright\tparent\n0\t10\t1\n",
		"bad number":    "left\tright\tparent\tchild\n0\tten\t1\t0\n",
	}
	for name, in := range tests {
		tb := tseq.NewTables(0)
		if err := tb.ReadEdges(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}

	tb := tseq.NewTables(0)
	if err := tb.ReadMutations(strings.NewReader("# no data\n")); err != nil {
		t.Errorf("empty table: unexpected error: %v", err)
	}
}

func TestInferLength(t *testing.T) {
	tb := tseq.NewTables(0)
	tb.AddSite(3.5, "A")
	tb.InferLength()
	if tb.Length != 4 {
		t.Errorf("length from sites: got %v, want %v", tb.Length, 4.0)
	}

	tb = tseq.NewTables(0)
	tb.InferLength()
	if tb.Length != 1 {
		t.Errorf("length of empty tables: got %v, want %v", tb.Length, 1.0)
	}
}
