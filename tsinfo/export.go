// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tsinfo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/js-arias/timetree"
	"github.com/js-arias/tsinfo/tseq"
)

// TimeTrees returns the local trees of the tree sequence
// as a collection of time-calibrated trees.
//
// Each root of a local tree defines a tree,
// named with the prefix and the index of the local tree
// (for example "tree.3").
// If a local tree has more than one root,
// the root ID is added to the name
// (for example "tree.3.12").
// Roots without descendant samples are ignored.
// Nodes with a single child are collapsed,
// as time trees are strictly bifurcating.
//
// Node times are multiplied by scale
// and rounded to integers,
// as time trees use integer ages.
// Terminals are named after the node ID
// (for example "N7").
func (inf *Info) TimeTrees(prefix string, scale float64) (*timetree.Collection, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid time scale %v", scale)
	}

	tc := timetree.NewCollection()
	for i := range inf.ts.NumTrees() {
		tr := inf.ts.Tree(i)
		var roots []int
		for _, r := range tr.Roots() {
			top := r
			for len(tr.Children(top)) == 1 {
				top = tr.Children(top)[0]
			}
			if len(tr.Children(top)) == 0 {
				continue
			}
			roots = append(roots, top)
		}

		for _, r := range roots {
			name := prefix + "." + strconv.Itoa(i)
			if len(roots) > 1 {
				name += "." + strconv.Itoa(r)
			}
			t, err := localTimeTree(tr, r, name, scale)
			if err != nil {
				return nil, fmt.Errorf("local tree %d: %v", i, err)
			}
			if err := tc.Add(t); err != nil {
				return nil, fmt.Errorf("local tree %d: %v", i, err)
			}
		}
	}
	return tc, nil
}

func localTimeTree(tr *tseq.Tree, root int, name string, scale float64) (*timetree.Tree, error) {
	age := func(v int) int64 {
		return int64(math.Round(tr.Time(v) * scale))
	}

	t := timetree.New(name, age(root))
	ids := map[int]int{root: 0}
	for _, v := range tr.Preorder(root) {
		if v == root {
			continue
		}
		p := ids[tr.Parent(v)]
		children := tr.Children(v)
		if len(children) == 1 {
			ids[v] = p
			continue
		}

		var taxon string
		if len(children) == 0 {
			taxon = "n" + strconv.Itoa(v)
		}
		id, err := t.Add(p, t.Age(p)-age(v), taxon)
		if err != nil {
			return nil, fmt.Errorf("node %d: %v", v, err)
		}
		ids[v] = id
	}
	return t, nil
}
