// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hist implements histograms
// of the columns of tree sequence tables.
package hist

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A Histogram is a set of counts
// over a set of bins.
// Bin i is the interval [Dividers[i], Dividers[i+1]),
// except the last bin,
// that includes its right border.
type Histogram struct {
	Dividers []float64
	Count    []float64
}

// New returns the histogram of the data
// using the given bin dividers.
// Values outside the dividers,
// and non-finite values
// (for example a negative infinity used as a sentinel)
// are ignored.
// Dividers must be sorted
// and must have at least two values.
func New(data, dividers []float64) Histogram {
	h := Histogram{
		Dividers: slices.Clone(dividers),
	}
	if len(dividers) < 2 {
		return h
	}
	h.Count = make([]float64, len(dividers)-1)

	lo := dividers[0]
	hi := dividers[len(dividers)-1]
	x := make([]float64, 0, len(data))
	for _, v := range data {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		if v < lo || v > hi {
			continue
		}
		x = append(x, v)
	}
	if len(x) == 0 {
		return h
	}
	slices.Sort(x)

	// the last divider is moved,
	// so the right border of the last bin
	// is included.
	div := slices.Clone(dividers)
	div[len(div)-1] = math.Nextafter(hi, math.Inf(1))
	stat.Histogram(h.Count, div, x, nil)
	return h
}

// Uniform returns the histogram of the data
// using n bins of equal size
// over the range of the finite values of the data.
func Uniform(data []float64, n int) Histogram {
	if n < 1 {
		n = 1
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	switch {
	case lo > hi:
		lo, hi = 0, 1
	case lo == hi:
		lo -= 0.5
		hi += 0.5
	}

	div := make([]float64, n+1)
	floats.Span(div, lo, hi)
	return New(data, div)
}

// Range returns the histogram of the data
// using integer dividers from lo to hi-1
// (i.e., the bins are [lo, lo+1), [lo+1, lo+2), ...
// and the last bin is [hi-2, hi-1]).
func Range(data []float64, lo, hi int) Histogram {
	if hi-lo < 2 {
		hi = lo + 2
	}
	div := make([]float64, 0, hi-lo)
	for i := lo; i < hi; i++ {
		div = append(div, float64(i))
	}
	return New(data, div)
}

// Ints converts integer data to floats.
func Ints(data []int) []float64 {
	f := make([]float64, len(data))
	for i, v := range data {
		f[i] = float64(v)
	}
	return f
}

// Log10 returns a histogram
// with the log10 of the counts.
// Empty bins are set to zero.
func (h Histogram) Log10() Histogram {
	lh := Histogram{
		Dividers: slices.Clone(h.Dividers),
		Count:    make([]float64, len(h.Count)),
	}
	for i, c := range h.Count {
		if c > 0 {
			lh.Count[i] = math.Log10(c)
		}
	}
	return lh
}

// NormHeight returns a histogram
// with the counts scaled
// so the largest count is 1.
func (h Histogram) NormHeight() Histogram {
	nh := Histogram{
		Dividers: slices.Clone(h.Dividers),
		Count:    slices.Clone(h.Count),
	}
	if len(nh.Count) == 0 {
		return nh
	}
	if m := floats.Max(nh.Count); m > 0 {
		floats.Scale(1/m, nh.Count)
	}
	return nh
}

// Total returns the sum of the counts.
func (h Histogram) Total() float64 {
	return floats.Sum(h.Count)
}

// Mids returns the mid point of each bin.
func (h Histogram) Mids() []float64 {
	m := make([]float64, len(h.Count))
	for i := range m {
		m[i] = (h.Dividers[i] + h.Dividers[i+1]) / 2
	}
	return m
}
