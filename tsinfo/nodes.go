// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tsinfo

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
)

// NoAncestor is the value of the ancestors span
// of a node that is never a child of an edge.
var NoAncestor = math.Inf(-1)

// NodeTable is a table with a row
// for each node of a tree sequence,
// in node ID order.
type NodeTable struct {
	ID           []int
	Flags        []uint32
	Time         []float64
	NumMutations []int

	// AncestorsSpan is the total genomic length
	// over which the node has a parent.
	// If the node has no parent edges
	// the value is NoAncestor.
	AncestorsSpan []float64
}

var nodeCols = []string{
	"id",
	"flags",
	"time",
	"num_mutations",
	"ancestors_span",
}

// Nodes returns the node table.
func (inf *Info) Nodes() *NodeTable {
	ts := inf.ts
	n := ts.NumNodes()
	nt := &NodeTable{
		ID:            make([]int, 0, n),
		Flags:         make([]uint32, 0, n),
		Time:          make([]float64, 0, n),
		NumMutations:  inf.NodesNumMutations(),
		AncestorsSpan: make([]float64, n),
	}

	hasParent := make([]bool, n)
	for id := range ts.NumEdges() {
		e := ts.Edge(id)
		nt.AncestorsSpan[e.Child] += e.Span()
		hasParent[e.Child] = true
	}

	for id := range n {
		nd := ts.Node(id)
		nt.ID = append(nt.ID, id)
		nt.Flags = append(nt.Flags, nd.Flags)
		nt.Time = append(nt.Time, nd.Time)
		if !hasParent[id] {
			nt.AncestorsSpan[id] = NoAncestor
		}
	}
	return nt
}

// Len returns the number of rows of the table.
func (nt *NodeTable) Len() int {
	return len(nt.ID)
}

// Columns returns the column names of the table.
func (nt *NodeTable) Columns() []string {
	return slices.Clone(nodeCols)
}

// Float returns the values of a numeric column
// as floats.
func (nt *NodeTable) Float(name string) ([]float64, error) {
	switch name {
	case "id":
		return intsToFloats(nt.ID), nil
	case "flags":
		return flagsToFloats(nt.Flags), nil
	case "time":
		return slices.Clone(nt.Time), nil
	case "num_mutations":
		return intsToFloats(nt.NumMutations), nil
	case "ancestors_span":
		return slices.Clone(nt.AncestorsSpan), nil
	}
	return nil, fmt.Errorf("node table: unknown column %q", name)
}

// TSV writes the table as a tab-delimited file.
func (nt *NodeTable) TSV(w io.Writer) error {
	return writeTSV(w, "node", nodeCols, nt.Len(), nt.row)
}

func (nt *NodeTable) row(i int) []string {
	return []string{
		strconv.Itoa(nt.ID[i]),
		strconv.FormatUint(uint64(nt.Flags[i]), 10),
		formatFloat(nt.Time[i]),
		strconv.Itoa(nt.NumMutations[i]),
		formatFloat(nt.AncestorsSpan[i]),
	}
}
