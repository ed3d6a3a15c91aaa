// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hist

// A Window is a closed interval
// of an axis of a plot.
// The zero value is an unbounded window.
type Window struct {
	Min float64
	Max float64
}

// IsZero returns true for an unbounded window.
func (w Window) IsZero() bool {
	return w.Min == 0 && w.Max == 0
}

// In returns true if a value is inside the window.
func (w Window) In(v float64) bool {
	if w.IsZero() {
		return true
	}
	return v >= w.Min && v <= w.Max
}

// Points is a set of points of a scatter plot.
type Points struct {
	X []float64
	Y []float64

	// Index is the row of each point
	// in the source table.
	Index []int
}

// NewPoints returns a set of points
// from two columns of a table.
func NewPoints(x, y []float64) Points {
	n := min(len(x), len(y))
	p := Points{
		X:     x[:n:n],
		Y:     y[:n:n],
		Index: make([]int, n),
	}
	for i := range p.Index {
		p.Index[i] = i
	}
	return p
}

// Len returns the number of points.
func (p Points) Len() int {
	return len(p.X)
}

// Filter returns the points inside
// the given X and Y windows.
func (p Points) Filter(xw, yw Window) Points {
	var fp Points
	for i := range p.X {
		if !xw.In(p.X[i]) || !yw.In(p.Y[i]) {
			continue
		}
		fp.X = append(fp.X, p.X[i])
		fp.Y = append(fp.Y, p.Y[i])
		fp.Index = append(fp.Index, p.Index[i])
	}
	return fp
}
