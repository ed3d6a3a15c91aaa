// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tseq

// A Tree is a local tree,
// the ancestry valid over a genomic interval
// of a tree sequence.
type Tree struct {
	ts    *TreeSeq
	index int
	left  float64
	right float64

	parent   []int
	children [][]int
}

// Tree returns the local tree with the given index.
// Trees are indexed from left to right
// along the sequence.
func (ts *TreeSeq) Tree(index int) *Tree {
	t := &Tree{
		ts:       ts,
		index:    index,
		left:     ts.breaks[index],
		right:    ts.breaks[index+1],
		parent:   make([]int, len(ts.nodes)),
		children: make([][]int, len(ts.nodes)),
	}
	for i := range t.parent {
		t.parent[i] = Null
	}

	// breakpoints include all edge coordinates,
	// so an edge either covers the whole interval
	// or is outside of it.
	for _, e := range ts.edges {
		if e.Left > t.left || e.Right < t.right {
			continue
		}
		t.parent[e.Child] = e.Parent
		t.children[e.Parent] = append(t.children[e.Parent], e.Child)
	}
	return t
}

// Index returns the index of the tree
// in the tree sequence.
func (t *Tree) Index() int {
	return t.index
}

// Interval returns the genomic interval
// [left, right) of the tree.
func (t *Tree) Interval() (left, right float64) {
	return t.left, t.right
}

// Parent returns the parent of a node,
// or Null if the node has no parent
// in the tree.
func (t *Tree) Parent(n int) int {
	return t.parent[n]
}

// Children returns the children of a node.
func (t *Tree) Children(n int) []int {
	return t.children[n]
}

// IsSample returns true if the node is a sample.
func (t *Tree) IsSample(n int) bool {
	return t.ts.nodes[n].IsSample()
}

// Roots returns the roots of the tree,
// i.e., the nodes without a parent
// that have children,
// or that are isolated samples.
func (t *Tree) Roots() []int {
	var roots []int
	for n, p := range t.parent {
		if p != Null {
			continue
		}
		if len(t.children[n]) == 0 && !t.IsSample(n) {
			continue
		}
		roots = append(roots, n)
	}
	return roots
}

// Preorder returns the nodes of the subtree
// rooted at n in preorder.
func (t *Tree) Preorder(n int) []int {
	var nodes []int
	stack := []int{n}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, v)

		ch := t.children[v]
		for i := len(ch) - 1; i >= 0; i-- {
			stack = append(stack, ch[i])
		}
	}
	return nodes
}

// NumSamples returns the number of sample nodes
// in the subtree rooted at n
// (including n).
func (t *Tree) NumSamples(n int) int {
	var ns int
	for _, v := range t.Preorder(n) {
		if t.IsSample(v) {
			ns++
		}
	}
	return ns
}

// Time returns the time of a node.
func (t *Tree) Time(n int) float64 {
	return t.ts.nodes[n].Time
}
