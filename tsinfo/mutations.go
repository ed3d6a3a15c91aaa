// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tsinfo

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/js-arias/tsinfo/tseq"
)

// MutationTable is a table with a row
// for each mutation of a tree sequence,
// in mutation ID order.
type MutationTable struct {
	ID       []int
	Site     []int
	Position []float64
	Node     []int

	// Flags of the node of the mutation
	NodeFlags []uint32

	// Time of the node of the mutation
	Time []float64

	DerivedState []string

	// InheritedState is the ancestral state of the site
	// or the derived state of the parent mutation.
	InheritedState []string

	// NumParents is the number of mutations
	// in the chain of parent mutations.
	NumParents []int

	// NumDescendants is the number of samples
	// below the node of the mutation
	// in the local tree of the site.
	NumDescendants []int

	// NumInheritors is the number of samples
	// that carry the derived state of the mutation,
	// i.e., descendant samples without a closer mutation
	// at the same site.
	NumInheritors []int
}

var mutationCols = []string{
	"id",
	"site",
	"position",
	"node",
	"node_flags",
	"time",
	"derived_state",
	"inherited_state",
	"num_parents",
	"num_descendants",
	"num_inheritors",
}

// Mutations returns the mutation table.
//
// It returns an error if a mutation site
// is not covered by a local tree,
// or if two mutations at the same site and node
// are not in the same chain of parent mutations.
func (inf *Info) Mutations() (*MutationTable, error) {
	ts := inf.ts
	n := ts.NumMutations()
	mt := &MutationTable{
		ID:             make([]int, 0, n),
		Site:           make([]int, 0, n),
		Position:       make([]float64, 0, n),
		Node:           make([]int, 0, n),
		NodeFlags:      make([]uint32, 0, n),
		Time:           make([]float64, 0, n),
		DerivedState:   make([]string, 0, n),
		InheritedState: make([]string, 0, n),
		NumParents:     make([]int, 0, n),
		NumDescendants: make([]int, 0, n),
		NumInheritors:  make([]int, 0, n),
	}

	// mutations are sorted by site,
	// and sites are sorted by position,
	// so local trees are visited from left to right.
	var tr *tseq.Tree
	for start := 0; start < n; {
		site := ts.Mutation(start).Site
		end := start + 1
		for end < n && ts.Mutation(end).Site == site {
			end++
		}

		s := ts.Site(site)
		idx, err := ts.TreeIndex(s.Position)
		if err != nil {
			return nil, fmt.Errorf("mutation %d: site %d: %v", start, site, err)
		}
		if tr == nil || tr.Index() != idx {
			tr = ts.Tree(idx)
		}

		owner, err := siteOwners(ts, start, end)
		if err != nil {
			return nil, fmt.Errorf("site %d: %v", site, err)
		}

		for id := start; id < end; id++ {
			m := ts.Mutation(id)
			nd := ts.Node(m.Node)

			inherited := s.AncestralState
			if m.Parent != tseq.Null {
				inherited = ts.Mutation(m.Parent).DerivedState
			}

			mt.ID = append(mt.ID, id)
			mt.Site = append(mt.Site, site)
			mt.Position = append(mt.Position, s.Position)
			mt.Node = append(mt.Node, m.Node)
			mt.NodeFlags = append(mt.NodeFlags, nd.Flags)
			mt.Time = append(mt.Time, nd.Time)
			mt.DerivedState = append(mt.DerivedState, m.DerivedState)
			mt.InheritedState = append(mt.InheritedState, inherited)
			mt.NumParents = append(mt.NumParents, numParents(ts, id))
			mt.NumDescendants = append(mt.NumDescendants, tr.NumSamples(m.Node))
			mt.NumInheritors = append(mt.NumInheritors, numInheritors(tr, owner, id, m.Node))
		}
		start = end
	}

	return mt, nil
}

// SiteOwners returns, for each node with mutations
// at a site,
// the mutation that defines the state of the node.
// The mutations of the site are in [start, end).
//
// If a node has more than one mutation,
// the mutations must be a chain of parent mutations,
// and the owner is the most recent mutation of the chain.
func siteOwners(ts *tseq.TreeSeq, start, end int) (map[int]int, error) {
	byNode := make(map[int][]int)
	for id := start; id < end; id++ {
		nd := ts.Mutation(id).Node
		byNode[nd] = append(byNode[nd], id)
	}

	owner := make(map[int]int, len(byNode))
	for nd, ms := range byNode {
		for i := 1; i < len(ms); i++ {
			if !isAncestor(ts, ms[i-1], ms[i]) {
				return nil, fmt.Errorf("node %d: mutations %d and %d are not in the same chain of parent mutations", nd, ms[i-1], ms[i])
			}
		}
		owner[nd] = ms[len(ms)-1]
	}
	return owner, nil
}

// IsAncestor returns true if mutation a
// is in the chain of parent mutations of mutation b.
func isAncestor(ts *tseq.TreeSeq, a, b int) bool {
	for p := ts.Mutation(b).Parent; p != tseq.Null; p = ts.Mutation(p).Parent {
		if p == a {
			return true
		}
	}
	return false
}

// NumParents returns the length of the chain
// of parent mutations.
func numParents(ts *tseq.TreeSeq, id int) int {
	var np int
	for p := ts.Mutation(id).Parent; p != tseq.Null; p = ts.Mutation(p).Parent {
		np++
	}
	return np
}

// NumInheritors returns the number of samples
// that inherit the state of a mutation.
// The descent stops at any node
// with another mutation on the same site.
func numInheritors(tr *tseq.Tree, owner map[int]int, id, node int) int {
	if owner[node] != id {
		// shadowed by a more recent mutation
		// on the same node
		return 0
	}

	var ni int
	stack := []int{node}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tr.IsSample(v) {
			ni++
		}
		for _, c := range tr.Children(v) {
			if _, ok := owner[c]; ok {
				continue
			}
			stack = append(stack, c)
		}
	}
	return ni
}

// Len returns the number of rows of the table.
func (mt *MutationTable) Len() int {
	return len(mt.ID)
}

// Columns returns the column names of the table.
func (mt *MutationTable) Columns() []string {
	return slices.Clone(mutationCols)
}

// Float returns the values of a numeric column
// as floats.
func (mt *MutationTable) Float(name string) ([]float64, error) {
	switch name {
	case "id":
		return intsToFloats(mt.ID), nil
	case "site":
		return intsToFloats(mt.Site), nil
	case "position":
		return slices.Clone(mt.Position), nil
	case "node":
		return intsToFloats(mt.Node), nil
	case "node_flags":
		return flagsToFloats(mt.NodeFlags), nil
	case "time":
		return slices.Clone(mt.Time), nil
	case "num_parents":
		return intsToFloats(mt.NumParents), nil
	case "num_descendants":
		return intsToFloats(mt.NumDescendants), nil
	case "num_inheritors":
		return intsToFloats(mt.NumInheritors), nil
	case "derived_state", "inherited_state":
		return nil, fmt.Errorf("mutation table: column %q is not numeric", name)
	}
	return nil, fmt.Errorf("mutation table: unknown column %q", name)
}

// TSV writes the table as a tab-delimited file.
func (mt *MutationTable) TSV(w io.Writer) error {
	return writeTSV(w, "mutation", mutationCols, mt.Len(), mt.row)
}

func (mt *MutationTable) row(i int) []string {
	return []string{
		strconv.Itoa(mt.ID[i]),
		strconv.Itoa(mt.Site[i]),
		formatFloat(mt.Position[i]),
		strconv.Itoa(mt.Node[i]),
		strconv.FormatUint(uint64(mt.NodeFlags[i]), 10),
		formatFloat(mt.Time[i]),
		mt.DerivedState[i],
		mt.InheritedState[i],
		strconv.Itoa(mt.NumParents[i]),
		strconv.Itoa(mt.NumDescendants[i]),
		strconv.Itoa(mt.NumInheritors[i]),
	}
}
