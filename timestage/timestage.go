// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package timestage implements a set of time stages
// used to bin node and mutation times.
//
// Times are in the units of the tree sequence
// (usually generations).
package timestage

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

// A Stager is an interface for types
// that return a list of time stages.
type Stager interface {
	Stages() []float64
}

// Stages is a set of time stages.
type Stages map[float64]bool

// New returns an empty set of time stages.
func New() Stages {
	return Stages(make(map[float64]bool))
}

// Read reads one or more time stages from a TSV file.
//
// The TSV must be without header
// and the first column should indicate the time
// of each stage.
// Any other columns will be ignored.
//
// Here is an example file
//
//	# time stages
//	0
//	10
//	100
//	1000
//	10000
func Read(r io.Reader) (Stages, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1

	st := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on line %d: %v", ln, err)
		}

		as := strings.TrimSpace(row[0])
		if as == "" {
			continue
		}
		a, err := strconv.ParseFloat(as, 64)
		if err != nil {
			return nil, fmt.Errorf("on line %d: read %q: %v", ln, as, err)
		}
		st.AddStage(a)
	}

	return st, nil
}

// Add adds time stages from a stager.
func (s Stages) Add(ts Stager) {
	for _, a := range ts.Stages() {
		s[a] = true
	}
}

// AddStage adds a time stage.
func (s Stages) AddStage(a float64) {
	s[a] = true
}

// ClosestStage returns the closest stage
// for a time
// (i.e., the oldest stage
// younger than or equal to the indicated time).
// If the time is younger than all stages
// it returns the youngest stage.
func (s Stages) ClosestStage(t float64) float64 {
	st := s.Stages()
	if len(st) == 0 {
		return t
	}
	i, ok := slices.BinarySearch(st, t)
	if ok {
		return t
	}
	if i == 0 {
		return st[0]
	}
	return st[i-1]
}

// Stages returns a sorted slice
// of the defined time stages.
func (s Stages) Stages() []float64 {
	st := make([]float64, 0, len(s))
	for a := range s {
		st = append(st, a)
	}
	slices.Sort(st)

	return st
}

// Dividers returns the stages
// as the dividers of a histogram.
// If the oldest time is older than the oldest stage,
// it is added as the last divider.
func (s Stages) Dividers(oldest float64) []float64 {
	st := s.Stages()
	if len(st) == 0 || oldest > st[len(st)-1] {
		st = append(st, oldest)
	}
	return st
}

// Write writes time stages into a tab-delimited file.
func (s Stages) Write(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# time stages\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	st := s.Stages()
	for _, a := range st {
		row := []string{
			strconv.FormatFloat(a, 'f', -1, 64),
		}
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
