// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tseq

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// TreeSeq is an immutable tree sequence.
type TreeSeq struct {
	length    float64
	nodes     []Node
	edges     []Edge
	sites     []Site
	mutations []Mutation

	breaks []float64
}

// TreeSequence validates the tables
// and returns an immutable tree sequence.
// The tables are copied,
// so further changes to the tables
// do not modify the tree sequence.
func (t *Tables) TreeSequence() (*TreeSeq, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	ts := &TreeSeq{
		length:    t.Length,
		nodes:     slices.Clone(t.Nodes),
		edges:     slices.Clone(t.Edges),
		sites:     slices.Clone(t.Sites),
		mutations: slices.Clone(t.Mutations),
	}
	ts.breaks = breakpoints(ts.length, ts.edges)
	return ts, nil
}

func (t *Tables) validate() error {
	if !(t.Length > 0) {
		return fmt.Errorf("invalid sequence length %v", t.Length)
	}

	for i, e := range t.Edges {
		if e.Parent < 0 || e.Parent >= len(t.Nodes) {
			return fmt.Errorf("edge %d: parent %d: node out of range", i, e.Parent)
		}
		if e.Child < 0 || e.Child >= len(t.Nodes) {
			return fmt.Errorf("edge %d: child %d: node out of range", i, e.Child)
		}
		if !(e.Left < e.Right) {
			return fmt.Errorf("edge %d: invalid interval [%v, %v)", i, e.Left, e.Right)
		}
		if e.Left < 0 || e.Right > t.Length {
			return fmt.Errorf("edge %d: interval [%v, %v) outside sequence [0, %v)", i, e.Left, e.Right, t.Length)
		}
		pt := t.Nodes[e.Parent].Time
		ct := t.Nodes[e.Child].Time
		if !(ct < pt) {
			return fmt.Errorf("edge %d: child %d time %v not younger than parent %d time %v", i, e.Child, ct, e.Parent, pt)
		}
		if i == 0 {
			continue
		}
		p := t.Edges[i-1]
		if t.Nodes[p.Parent].Time > pt {
			return fmt.Errorf("edge %d: edges not sorted by parent time", i)
		}
		if t.Nodes[p.Parent].Time == pt && p.Parent > e.Parent {
			return fmt.Errorf("edge %d: edges not sorted by parent", i)
		}
		if p.Parent == e.Parent {
			if p.Child > e.Child || (p.Child == e.Child && p.Left > e.Left) {
				return fmt.Errorf("edge %d: edges not sorted by child and left coordinate", i)
			}
		}
	}

	// a node can not have two parents at the same position
	byChild := make(map[int][]Edge)
	for _, e := range t.Edges {
		byChild[e.Child] = append(byChild[e.Child], e)
	}
	for c, es := range byChild {
		slices.SortFunc(es, func(a, b Edge) int {
			return cmp.Compare(a.Left, b.Left)
		})
		for i := 1; i < len(es); i++ {
			if es[i].Left < es[i-1].Right {
				return fmt.Errorf("node %d: overlapping parent edges at [%v, %v)", c, es[i].Left, es[i-1].Right)
			}
		}
	}

	for i, s := range t.Sites {
		if s.Position < 0 || s.Position >= t.Length {
			return fmt.Errorf("site %d: position %v outside sequence [0, %v)", i, s.Position, t.Length)
		}
		if i > 0 && t.Sites[i-1].Position > s.Position {
			return fmt.Errorf("site %d: sites not sorted by position", i)
		}
	}

	for i, m := range t.Mutations {
		if m.Site < 0 || m.Site >= len(t.Sites) {
			return fmt.Errorf("mutation %d: site %d out of range", i, m.Site)
		}
		if m.Node < 0 || m.Node >= len(t.Nodes) {
			return fmt.Errorf("mutation %d: node %d out of range", i, m.Node)
		}
		if i > 0 && t.Mutations[i-1].Site > m.Site {
			return fmt.Errorf("mutation %d: mutations not sorted by site", i)
		}
		if m.Parent == Null {
			continue
		}
		if m.Parent < 0 || m.Parent >= len(t.Mutations) {
			return fmt.Errorf("mutation %d: parent mutation %d does not exist", i, m.Parent)
		}
		if m.Parent >= i {
			return fmt.Errorf("mutation %d: parent mutation %d must precede its child", i, m.Parent)
		}
		if t.Mutations[m.Parent].Site != m.Site {
			return fmt.Errorf("mutation %d: parent mutation %d is on a different site", i, m.Parent)
		}
	}
	return nil
}

// Breakpoints returns the sorted list of positions
// at which the local tree changes,
// including 0 and the sequence length.
func breakpoints(length float64, edges []Edge) []float64 {
	bp := make(map[float64]bool, 2*len(edges)+2)
	bp[0] = true
	bp[length] = true
	for _, e := range edges {
		bp[e.Left] = true
		bp[e.Right] = true
	}

	ls := make([]float64, 0, len(bp))
	for p := range bp {
		ls = append(ls, p)
	}
	slices.Sort(ls)
	return ls
}

// SequenceLength returns the length of the sequence.
func (ts *TreeSeq) SequenceLength() float64 {
	return ts.length
}

// NumNodes returns the number of nodes.
func (ts *TreeSeq) NumNodes() int { return len(ts.nodes) }

// NumEdges returns the number of edges.
func (ts *TreeSeq) NumEdges() int { return len(ts.edges) }

// NumSites returns the number of sites.
func (ts *TreeSeq) NumSites() int { return len(ts.sites) }

// NumMutations returns the number of mutations.
func (ts *TreeSeq) NumMutations() int { return len(ts.mutations) }

// Node returns the node with the given ID.
func (ts *TreeSeq) Node(id int) Node { return ts.nodes[id] }

// Edge returns the edge with the given ID.
func (ts *TreeSeq) Edge(id int) Edge { return ts.edges[id] }

// Site returns the site with the given ID.
func (ts *TreeSeq) Site(id int) Site { return ts.sites[id] }

// Mutation returns the mutation with the given ID.
func (ts *TreeSeq) Mutation(id int) Mutation { return ts.mutations[id] }

// Samples returns the IDs of the sample nodes.
func (ts *TreeSeq) Samples() []int {
	var s []int
	for i, n := range ts.nodes {
		if n.IsSample() {
			s = append(s, i)
		}
	}
	return s
}

// Breakpoints returns the positions
// at which local trees start,
// plus the sequence length.
func (ts *TreeSeq) Breakpoints() []float64 {
	return slices.Clone(ts.breaks)
}

// NumTrees returns the number of local trees.
func (ts *TreeSeq) NumTrees() int {
	return len(ts.breaks) - 1
}

// Tables returns a copy of the tables of the tree sequence.
func (ts *TreeSeq) Tables() *Tables {
	return &Tables{
		Length:    ts.length,
		Nodes:     slices.Clone(ts.nodes),
		Edges:     slices.Clone(ts.edges),
		Sites:     slices.Clone(ts.sites),
		Mutations: slices.Clone(ts.mutations),
	}
}

// TreeIndex returns the index of the local tree
// that covers the given position.
func (ts *TreeSeq) TreeIndex(pos float64) (int, error) {
	if pos < 0 || pos >= ts.length {
		return 0, fmt.Errorf("position %v outside sequence [0, %v)", pos, ts.length)
	}
	i := sort.Search(len(ts.breaks), func(i int) bool {
		return ts.breaks[i] > pos
	})
	if i == 0 || i >= len(ts.breaks) {
		return 0, fmt.Errorf("position %v not covered by any local tree", pos)
	}
	return i - 1, nil
}

// At returns the local tree that covers the given position.
func (ts *TreeSeq) At(pos float64) (*Tree, error) {
	i, err := ts.TreeIndex(pos)
	if err != nil {
		return nil, err
	}
	return ts.Tree(i), nil
}
