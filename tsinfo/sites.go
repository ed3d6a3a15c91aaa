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

// SiteTable is a table with a row
// for each site of a tree sequence,
// in site ID order.
type SiteTable struct {
	ID             []int
	Position       []float64
	AncestralState []string
	NumMutations   []int
}

var siteCols = []string{
	"id",
	"position",
	"ancestral_state",
	"num_mutations",
}

// Sites returns the site table.
func (inf *Info) Sites() *SiteTable {
	n := inf.ts.NumSites()
	st := &SiteTable{
		ID:             make([]int, 0, n),
		Position:       make([]float64, 0, n),
		AncestralState: make([]string, 0, n),
		NumMutations:   inf.SitesNumMutations(),
	}
	for id := range n {
		s := inf.ts.Site(id)
		st.ID = append(st.ID, id)
		st.Position = append(st.Position, s.Position)
		st.AncestralState = append(st.AncestralState, s.AncestralState)
	}
	return st
}

// Len returns the number of rows of the table.
func (st *SiteTable) Len() int {
	return len(st.ID)
}

// Columns returns the column names of the table.
func (st *SiteTable) Columns() []string {
	return slices.Clone(siteCols)
}

// Float returns the values of a numeric column
// as floats.
func (st *SiteTable) Float(name string) ([]float64, error) {
	switch name {
	case "id":
		return intsToFloats(st.ID), nil
	case "position":
		return slices.Clone(st.Position), nil
	case "num_mutations":
		return intsToFloats(st.NumMutations), nil
	case "ancestral_state":
		return nil, fmt.Errorf("site table: column %q is not numeric", name)
	}
	return nil, fmt.Errorf("site table: unknown column %q", name)
}

// TSV writes the table as a tab-delimited file.
func (st *SiteTable) TSV(w io.Writer) error {
	return writeTSV(w, "site", siteCols, st.Len(), st.row)
}

func (st *SiteTable) row(i int) []string {
	return []string{
		strconv.Itoa(st.ID[i]),
		formatFloat(st.Position[i]),
		st.AncestralState[i],
		strconv.Itoa(st.NumMutations[i]),
	}
}
