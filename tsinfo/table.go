// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tsinfo

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// A Table is a table of a tree sequence
// stored by columns.
type Table interface {
	// Len returns the number of rows.
	Len() int

	// Columns returns the names of the columns.
	Columns() []string

	// Float returns the values of a numeric column.
	Float(name string) ([]float64, error)

	// TSV writes the table as a tab-delimited file.
	TSV(w io.Writer) error

	// row returns the values of a row
	// formatted as strings.
	row(i int) []string
}

// Rows returns the rows of a table
// formatted as strings,
// in the order given by Columns.
func Rows(t Table) [][]string {
	rows := make([][]string, 0, t.Len())
	for i := range t.Len() {
		rows = append(rows, t.row(i))
	}
	return rows
}

func writeTSV(w io.Writer, name string, header []string, n int, row func(i int) []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s table\n", name)

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for i := range n {
		if err := tsv.Write(row(i)); err != nil {
			return fmt.Errorf("while writing row %d: %v", i, err)
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

func formatFloat(v float64) string {
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intsToFloats(v []int) []float64 {
	f := make([]float64, len(v))
	for i, x := range v {
		f[i] = float64(x)
	}
	return f
}

func flagsToFloats(v []uint32) []float64 {
	f := make([]float64, len(v))
	for i, x := range v {
		f[i] = float64(x)
	}
	return f
}
