// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tseq

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	nodeHeader     = []string{"is_sample", "time"}
	edgeHeader     = []string{"left", "right", "parent", "child"}
	siteHeader     = []string{"position", "ancestral_state"}
	mutationHeader = []string{"site", "node", "derived_state", "parent"}
)

// ReadNodes reads a node table from a TSV file
// and appends the nodes to the tables.
//
// The TSV must contain the following fields:
//
//   - is_sample, 1 if the node is a sample, 0 otherwise
//   - time, the time of the node
//
// Here is an example file:
//
//	# tree sequence nodes
//	is_sample	time
//	1	0
//	1	0
//	0	1.5
func (t *Tables) ReadNodes(r io.Reader) error {
	return readTable(r, nodeHeader, func(row []string, fields map[string]int) error {
		f := "is_sample"
		is, err := strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return fmt.Errorf("field %q: %v", f, err)
		}

		f = "time"
		tm, err := strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return fmt.Errorf("field %q: %v", f, err)
		}

		var flags uint32
		if is != 0 {
			flags = Sample
		}
		t.AddNode(flags, tm)
		return nil
	})
}

// ReadEdges reads an edge table from a TSV file
// and appends the edges to the tables.
//
// The TSV must contain the following fields:
//
//   - left, the left coordinate of the edge interval
//   - right, the right coordinate (not included) of the interval
//   - parent, the ID of the parent node
//   - child, the ID of the child node
//
// Here is an example file:
//
//	# tree sequence edges
//	left	right	parent	child
//	0	10	2	0
//	0	10	2	1
func (t *Tables) ReadEdges(r io.Reader) error {
	return readTable(r, edgeHeader, func(row []string, fields map[string]int) error {
		f := "left"
		left, err := strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return fmt.Errorf("field %q: %v", f, err)
		}

		f = "right"
		right, err := strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return fmt.Errorf("field %q: %v", f, err)
		}

		f = "parent"
		parent, err := strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return fmt.Errorf("field %q: %v", f, err)
		}

		f = "child"
		child, err := strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return fmt.Errorf("field %q: %v", f, err)
		}

		t.AddEdge(left, right, parent, child)
		return nil
	})
}

// ReadSites reads a site table from a TSV file
// and appends the sites to the tables.
//
// The TSV must contain the following fields:
//
//   - position, the genomic position of the site
//   - ancestral_state, the state at the root
//
// Here is an example file:
//
//	# tree sequence sites
//	position	ancestral_state
//	1	A
//	5	G
func (t *Tables) ReadSites(r io.Reader) error {
	return readTable(r, siteHeader, func(row []string, fields map[string]int) error {
		f := "position"
		pos, err := strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return fmt.Errorf("field %q: %v", f, err)
		}

		f = "ancestral_state"
		t.AddSite(pos, strings.TrimSpace(row[fields[f]]))
		return nil
	})
}

// ReadMutations reads a mutation table from a TSV file
// and appends the mutations to the tables.
//
// The TSV must contain the following fields:
//
//   - site, the ID of the site
//   - node, the ID of the node in which the mutation occurs
//   - derived_state, the new state
//   - parent, the ID of the parent mutation,
//     or -1 if the mutation has no parent mutation
//
// Here is an example file:
//
//	# tree sequence mutations
//	site	node	derived_state	parent
//	0	4	T	-1
//	0	1	A	0
func (t *Tables) ReadMutations(r io.Reader) error {
	return readTable(r, mutationHeader, func(row []string, fields map[string]int) error {
		f := "site"
		site, err := strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return fmt.Errorf("field %q: %v", f, err)
		}

		f = "node"
		node, err := strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return fmt.Errorf("field %q: %v", f, err)
		}

		f = "derived_state"
		derived := strings.TrimSpace(row[fields[f]])

		f = "parent"
		parent := Null
		if v := strings.TrimSpace(row[fields[f]]); v != "" {
			parent, err = strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("field %q: %v", f, err)
			}
		}

		t.AddMutation(site, node, derived, parent)
		return nil
	})
}

func readTable(r io.Reader, header []string, add func(row []string, fields map[string]int) error) error {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if errors.Is(err, io.EOF) {
		// empty table
		return nil
	}
	if err != nil {
		return fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return fmt.Errorf("expecting field %q", h)
		}
	}

	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return fmt.Errorf("on row %d: %v", ln, err)
		}
		if err := add(row, fields); err != nil {
			return fmt.Errorf("on row %d: %v", ln, err)
		}
	}
	return nil
}

// InferLength sets the sequence length
// if it is not already defined.
// The length is the largest right coordinate of the edges,
// or, if there are no edges,
// the first integer after the largest site position.
// If the tables are empty, the length is set to 1.
func (t *Tables) InferLength() {
	if t.Length > 0 {
		return
	}

	var l float64
	for _, e := range t.Edges {
		if e.Right > l {
			l = e.Right
		}
	}
	if l == 0 {
		for _, s := range t.Sites {
			if p := math.Floor(s.Position) + 1; p > l {
				l = p
			}
		}
	}
	if l == 0 {
		l = 1
	}
	t.Length = l
}

// WriteNodes writes the node table as a TSV file.
func (t *Tables) WriteNodes(w io.Writer) error {
	rows := make([][]string, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		is := "0"
		if n.IsSample() {
			is = "1"
		}
		rows = append(rows, []string{
			is,
			strconv.FormatFloat(n.Time, 'f', -1, 64),
		})
	}
	return writeTable(w, "nodes", nodeHeader, rows)
}

// WriteEdges writes the edge table as a TSV file.
func (t *Tables) WriteEdges(w io.Writer) error {
	rows := make([][]string, 0, len(t.Edges))
	for _, e := range t.Edges {
		rows = append(rows, []string{
			strconv.FormatFloat(e.Left, 'f', -1, 64),
			strconv.FormatFloat(e.Right, 'f', -1, 64),
			strconv.Itoa(e.Parent),
			strconv.Itoa(e.Child),
		})
	}
	return writeTable(w, "edges", edgeHeader, rows)
}

// WriteSites writes the site table as a TSV file.
func (t *Tables) WriteSites(w io.Writer) error {
	rows := make([][]string, 0, len(t.Sites))
	for _, s := range t.Sites {
		rows = append(rows, []string{
			strconv.FormatFloat(s.Position, 'f', -1, 64),
			s.AncestralState,
		})
	}
	return writeTable(w, "sites", siteHeader, rows)
}

// WriteMutations writes the mutation table as a TSV file.
func (t *Tables) WriteMutations(w io.Writer) error {
	rows := make([][]string, 0, len(t.Mutations))
	for _, m := range t.Mutations {
		rows = append(rows, []string{
			strconv.Itoa(m.Site),
			strconv.Itoa(m.Node),
			m.DerivedState,
			strconv.Itoa(m.Parent),
		})
	}
	return writeTable(w, "mutations", mutationHeader, rows)
}

func writeTable(w io.Writer, name string, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# tree sequence %s\n", name)
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
