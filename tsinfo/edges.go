// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tsinfo

import (
	"fmt"
	"io"
	"slices"
	"strconv"
)

// EdgeTable is a table with a row
// for each edge of a tree sequence,
// in the order stored in the tree sequence.
type EdgeTable struct {
	ID         []int
	Left       []float64
	Right      []float64
	Parent     []int
	Child      []int
	ChildTime  []float64
	ParentTime []float64
}

var edgeCols = []string{
	"id",
	"left",
	"right",
	"parent",
	"child",
	"child_time",
	"parent_time",
}

// Edges returns the edge table.
func (inf *Info) Edges() *EdgeTable {
	ts := inf.ts
	n := ts.NumEdges()
	et := &EdgeTable{
		ID:         make([]int, 0, n),
		Left:       make([]float64, 0, n),
		Right:      make([]float64, 0, n),
		Parent:     make([]int, 0, n),
		Child:      make([]int, 0, n),
		ChildTime:  make([]float64, 0, n),
		ParentTime: make([]float64, 0, n),
	}

	for id := range n {
		e := ts.Edge(id)
		et.ID = append(et.ID, id)
		et.Left = append(et.Left, e.Left)
		et.Right = append(et.Right, e.Right)
		et.Parent = append(et.Parent, e.Parent)
		et.Child = append(et.Child, e.Child)
		et.ChildTime = append(et.ChildTime, ts.Node(e.Child).Time)
		et.ParentTime = append(et.ParentTime, ts.Node(e.Parent).Time)
	}
	return et
}

// Len returns the number of rows of the table.
func (et *EdgeTable) Len() int {
	return len(et.ID)
}

// Columns returns the column names of the table.
func (et *EdgeTable) Columns() []string {
	return slices.Clone(edgeCols)
}

// Span returns the genomic length of each edge.
func (et *EdgeTable) Span() []float64 {
	sp := make([]float64, et.Len())
	for i := range sp {
		sp[i] = et.Right[i] - et.Left[i]
	}
	return sp
}

// Float returns the values of a numeric column
// as floats.
// In addition to the table columns,
// "span" returns the length of each edge.
func (et *EdgeTable) Float(name string) ([]float64, error) {
	switch name {
	case "id":
		return intsToFloats(et.ID), nil
	case "left":
		return slices.Clone(et.Left), nil
	case "right":
		return slices.Clone(et.Right), nil
	case "parent":
		return intsToFloats(et.Parent), nil
	case "child":
		return intsToFloats(et.Child), nil
	case "child_time":
		return slices.Clone(et.ChildTime), nil
	case "parent_time":
		return slices.Clone(et.ParentTime), nil
	case "span":
		return et.Span(), nil
	}
	return nil, fmt.Errorf("edge table: unknown column %q", name)
}

// TSV writes the table as a tab-delimited file.
func (et *EdgeTable) TSV(w io.Writer) error {
	return writeTSV(w, "edge", edgeCols, et.Len(), et.row)
}

func (et *EdgeTable) row(i int) []string {
	return []string{
		strconv.Itoa(et.ID[i]),
		formatFloat(et.Left[i]),
		formatFloat(et.Right[i]),
		strconv.Itoa(et.Parent[i]),
		strconv.Itoa(et.Child[i]),
		formatFloat(et.ChildTime[i]),
		formatFloat(et.ParentTime[i]),
	}
}
