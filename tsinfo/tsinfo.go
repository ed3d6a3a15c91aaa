// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tsinfo derives descriptive tables
// from a tree sequence.
//
// There are three tables:
// a mutation table,
// an edge table,
// and a node table.
// Each table is stored by columns,
// and each column can be accessed by its name,
// so a consumer (for example a plotting function)
// can bind a column to a plot axis.
//
// Tables are recomputed on each call,
// and as the tree sequence is immutable,
// builders can be called concurrently.
package tsinfo

import (
	"fmt"

	"github.com/js-arias/tsinfo/tseq"
)

// Info derives tables from a tree sequence.
type Info struct {
	ts *tseq.TreeSeq
}

// New returns a new Info for a tree sequence.
func New(ts *tseq.TreeSeq) *Info {
	return &Info{ts: ts}
}

// TreeSeq returns the underlying tree sequence.
func (inf *Info) TreeSeq() *tseq.TreeSeq {
	return inf.ts
}

// SitesNumMutations returns the number of mutations
// at each site,
// indexed by site ID.
func (inf *Info) SitesNumMutations() []int {
	c := make([]int, inf.ts.NumSites())
	for i := range inf.ts.NumMutations() {
		c[inf.ts.Mutation(i).Site]++
	}
	return c
}

// NodesNumMutations returns the number of mutations
// on each node,
// indexed by node ID.
func (inf *Info) NodesNumMutations() []int {
	c := make([]int, inf.ts.NumNodes())
	for i := range inf.ts.NumMutations() {
		c[inf.ts.Mutation(i).Node]++
	}
	return c
}

// A Summary is an overview of the size
// of a tree sequence.
type Summary struct {
	SequenceLength float64
	Trees          int
	Samples        int
	Nodes          int
	Edges          int
	Sites          int
	Mutations      int
}

// Summary returns an overview of the tree sequence.
func (inf *Info) Summary() Summary {
	return Summary{
		SequenceLength: inf.ts.SequenceLength(),
		Trees:          inf.ts.NumTrees(),
		Samples:        len(inf.ts.Samples()),
		Nodes:          inf.ts.NumNodes(),
		Edges:          inf.ts.NumEdges(),
		Sites:          inf.ts.NumSites(),
		Mutations:      inf.ts.NumMutations(),
	}
}

// TableNames are the names of the tables
// that can be derived from a tree sequence.
var TableNames = []string{
	"mutations",
	"edges",
	"nodes",
	"sites",
}

// Table returns a table by its name.
func (inf *Info) Table(name string) (Table, error) {
	switch name {
	case "mutations":
		mt, err := inf.Mutations()
		if err != nil {
			return nil, err
		}
		return mt, nil
	case "edges":
		return inf.Edges(), nil
	case "nodes":
		return inf.Nodes(), nil
	case "sites":
		return inf.Sites(), nil
	}
	return nil, fmt.Errorf("unknown table %q", name)
}
