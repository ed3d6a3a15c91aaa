// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tseq implements a minimal tree sequence:
// a set of tables (nodes, edges, sites, and mutations)
// that encode the ancestry of a set of sampled genomes
// along a genomic sequence.
//
// A tree sequence is built from a mutable Tables value,
// and then frozen into an immutable TreeSeq,
// that provides read access to the tables
// and to the local trees.
package tseq

import (
	"cmp"
	"fmt"
	"slices"
)

// Null is the ID used for a missing reference
// (for example a mutation without a parent mutation).
const Null = -1

// Sample is the node flag used to mark a sample node.
const Sample uint32 = 1

// A Node is an ancestor or descendant genome.
type Node struct {
	Flags uint32
	Time  float64
}

// IsSample returns true if the node is flagged as a sample.
func (n Node) IsSample() bool {
	return n.Flags&Sample != 0
}

// An Edge indicates that the child node
// inherits from the parent node
// over the genomic interval [Left, Right).
type Edge struct {
	Left   float64
	Right  float64
	Parent int
	Child  int
}

// Span returns the genomic length of the edge.
func (e Edge) Span() float64 {
	return e.Right - e.Left
}

// A Site is a genomic position tracked for state changes.
type Site struct {
	Position       float64
	AncestralState string
}

// A Mutation is a state change at a site,
// that occurs on a node.
type Mutation struct {
	Site         int
	Node         int
	DerivedState string

	// Parent is the ID of the mutation
	// at the same site from which this mutation inherits,
	// or Null.
	Parent int
}

// Tables is a mutable collection of tree sequence tables.
type Tables struct {
	Length    float64
	Nodes     []Node
	Edges     []Edge
	Sites     []Site
	Mutations []Mutation
}

// NewTables creates a new empty collection of tables
// for a sequence of the given length.
func NewTables(length float64) *Tables {
	return &Tables{
		Length: length,
	}
}

// AddNode adds a node and returns its ID.
func (t *Tables) AddNode(flags uint32, time float64) int {
	t.Nodes = append(t.Nodes, Node{Flags: flags, Time: time})
	return len(t.Nodes) - 1
}

// AddEdge adds an edge and returns its ID.
func (t *Tables) AddEdge(left, right float64, parent, child int) int {
	t.Edges = append(t.Edges, Edge{
		Left:   left,
		Right:  right,
		Parent: parent,
		Child:  child,
	})
	return len(t.Edges) - 1
}

// AddSite adds a site and returns its ID.
func (t *Tables) AddSite(position float64, ancestral string) int {
	t.Sites = append(t.Sites, Site{
		Position:       position,
		AncestralState: ancestral,
	})
	return len(t.Sites) - 1
}

// AddMutation adds a mutation and returns its ID.
// Use Null as parent for a mutation
// without a parent mutation.
func (t *Tables) AddMutation(site, node int, derived string, parent int) int {
	t.Mutations = append(t.Mutations, Mutation{
		Site:         site,
		Node:         node,
		DerivedState: derived,
		Parent:       parent,
	})
	return len(t.Mutations) - 1
}

// Sort sorts the tables in the canonical order
// required for a tree sequence.
//
// Edges are sorted by the time of the parent,
// then by parent ID, child ID, and left coordinate.
// Sites are sorted by position,
// and mutations are sorted by site,
// keeping the relative order of mutations at the same site.
// Mutation references to sites and parent mutations
// are updated.
//
// It returns an error if an edge references
// an undefined node.
func (t *Tables) Sort() error {
	for i, e := range t.Edges {
		if e.Parent < 0 || e.Parent >= len(t.Nodes) {
			return fmt.Errorf("edge %d: parent %d: node out of range", i, e.Parent)
		}
		if e.Child < 0 || e.Child >= len(t.Nodes) {
			return fmt.Errorf("edge %d: child %d: node out of range", i, e.Child)
		}
	}

	slices.SortStableFunc(t.Edges, func(a, b Edge) int {
		if c := cmp.Compare(t.Nodes[a.Parent].Time, t.Nodes[b.Parent].Time); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Parent, b.Parent); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Child, b.Child); c != 0 {
			return c
		}
		return cmp.Compare(a.Left, b.Left)
	})

	siteOrder := make([]int, len(t.Sites))
	for i := range siteOrder {
		siteOrder[i] = i
	}
	slices.SortStableFunc(siteOrder, func(a, b int) int {
		return cmp.Compare(t.Sites[a].Position, t.Sites[b].Position)
	})
	siteMap := make([]int, len(t.Sites))
	sites := make([]Site, len(t.Sites))
	for i, old := range siteOrder {
		siteMap[old] = i
		sites[i] = t.Sites[old]
	}
	t.Sites = sites

	for i := range t.Mutations {
		if s := t.Mutations[i].Site; s >= 0 && s < len(siteMap) {
			t.Mutations[i].Site = siteMap[s]
		}
	}

	mutOrder := make([]int, len(t.Mutations))
	for i := range mutOrder {
		mutOrder[i] = i
	}
	slices.SortStableFunc(mutOrder, func(a, b int) int {
		return cmp.Compare(t.Mutations[a].Site, t.Mutations[b].Site)
	})
	mutMap := make([]int, len(t.Mutations))
	muts := make([]Mutation, len(t.Mutations))
	for i, old := range mutOrder {
		mutMap[old] = i
		muts[i] = t.Mutations[old]
	}
	for i := range muts {
		if p := muts[i].Parent; p >= 0 && p < len(mutMap) {
			muts[i].Parent = mutMap[p]
		}
	}
	t.Mutations = muts
	return nil
}
