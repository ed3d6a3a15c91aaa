// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/timetree"
	"github.com/js-arias/tsinfo/dashboard"
	"github.com/js-arias/tsinfo/timestage"
	"github.com/js-arias/tsinfo/tseq"
)

// Tables reads the tables of a tree sequence
// from the table files defined in a project.
// The node table is required,
// other tables are optional.
// If length is zero,
// the sequence length will be inferred
// from the tables.
func (p *Project) Tables(length float64) (*tseq.Tables, error) {
	if p.Path(Nodes) == "" {
		return nil, fmt.Errorf("node table not defined in project %q", p.name)
	}

	t := tseq.NewTables(length)
	readers := map[Dataset]func(io.Reader) error{
		Nodes:     t.ReadNodes,
		Edges:     t.ReadEdges,
		Sites:     t.ReadSites,
		Mutations: t.ReadMutations,
	}
	for _, set := range TableSets {
		name := p.Path(set)
		if name == "" {
			continue
		}
		if err := readFile(name, readers[set]); err != nil {
			return nil, err
		}
	}
	t.InferLength()
	return t, nil
}

// TreeSeq reads and validates the tree sequence
// defined in a project.
func (p *Project) TreeSeq(length float64) (*tseq.TreeSeq, error) {
	t, err := p.Tables(length)
	if err != nil {
		return nil, err
	}
	ts, err := t.TreeSequence()
	if err != nil {
		return nil, fmt.Errorf("on project %q: %v", p.name, err)
	}
	return ts, nil
}

// WriteTables writes the tables into the table files
// defined in the project.
// Tables without a file in the project
// are written into a file with the dataset name
// as a prefix (for example "nodes.tab"),
// and the file is added to the project.
func (p *Project) WriteTables(t *tseq.Tables) error {
	writers := map[Dataset]func(io.Writer) error{
		Nodes:     t.WriteNodes,
		Edges:     t.WriteEdges,
		Sites:     t.WriteSites,
		Mutations: t.WriteMutations,
	}
	for _, set := range TableSets {
		name := p.Path(set)
		if name == "" {
			name = string(set) + ".tab"
			p.Add(set, name)
		}
		if err := writeFile(name, writers[set]); err != nil {
			return err
		}
	}
	return nil
}

// Stages reads the time stages file
// defined in a project.
// If no stages are defined,
// it returns an empty set.
func (p *Project) Stages() (timestage.Stages, error) {
	name := p.Path(Stages)
	if name == "" {
		return timestage.New(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := timestage.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return st, nil
}

// Dashboard reads the dashboard configuration
// defined in a project.
// If no configuration is defined,
// it returns the default configuration.
// If the configuration does not define time stages,
// the time stages of the project will be used.
func (p *Project) Dashboard() (dashboard.Config, error) {
	cfg := dashboard.DefaultConfig()
	if name := p.Path(Dashboard); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return dashboard.Config{}, err
		}
		defer f.Close()

		cfg, err = dashboard.ReadConfig(f)
		if err != nil {
			return dashboard.Config{}, fmt.Errorf("on file %q: %v", name, err)
		}
	}

	if len(cfg.TimeStages) == 0 {
		st, err := p.Stages()
		if err != nil {
			return dashboard.Config{}, err
		}
		if len(st) > 0 {
			cfg.TimeStages = st.Stages()
		}
	}
	return cfg, nil
}

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

// WriteTrees writes a tree collection
// into the tree file of the project.
// If the project does not have a tree file,
// it will be written into "trees.tab",
// and the file is added to the project.
func (p *Project) WriteTrees(tc *timetree.Collection) error {
	name := p.Path(Trees)
	if name == "" {
		name = string(Trees) + ".tab"
		p.Add(Trees, name)
	}
	return writeFile(name, tc.TSV)
}

func readFile(name string, read func(io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
