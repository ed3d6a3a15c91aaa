// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add files
// to a tsinfo project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/tsinfo/dashboard"
	"github.com/js-arias/tsinfo/project"
	"github.com/js-arias/tsinfo/timestage"
	"github.com/js-arias/tsinfo/tseq"
)

var Command = &command.Command{
	Usage: "add <project-file> <dataset> <file>",
	Short: "add a file to a tsinfo project",
	Long: `
Command add reads a file of a given dataset type, and if the file is valid, it
adds the file to a tsinfo project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the dataset type of the file. Valid values are:

	nodes      a node table
	edges      an edge table
	sites      a site table
	mutations  a mutation table
	stages     a file with time stages
	dashboard  a dashboard configuration file
	trees      a file of time trees

The third argument is the name of the file. If the project already has a file
for the dataset, the file will be replaced.

To learn about the format of the table files, type 'tsinfo help table-files'.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting dataset type")
	}
	if len(args) < 3 {
		return c.UsageError("expecting file name")
	}

	set := project.Dataset(strings.ToLower(args[1]))
	read, ok := readers[set]
	if !ok {
		return c.UsageError(fmt.Sprintf("unknown dataset %q", args[1]))
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	name := args[2]
	if err := readFile(name, read); err != nil {
		return err
	}

	if prev := p.Add(set, name); prev != "" && prev != name {
		fmt.Fprintf(c.Stderr(), "dataset %q: replacing file %q\n", set, prev)
	}
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

var readers = map[project.Dataset]func(io.Reader) error{
	project.Nodes: func(r io.Reader) error {
		return tseq.NewTables(0).ReadNodes(r)
	},
	project.Edges: func(r io.Reader) error {
		return tseq.NewTables(0).ReadEdges(r)
	},
	project.Sites: func(r io.Reader) error {
		return tseq.NewTables(0).ReadSites(r)
	},
	project.Mutations: func(r io.Reader) error {
		return tseq.NewTables(0).ReadMutations(r)
	},
	project.Stages: func(r io.Reader) error {
		_, err := timestage.Read(r)
		return err
	},
	project.Dashboard: func(r io.Reader) error {
		_, err := dashboard.ReadConfig(r)
		return err
	},
	project.Trees: func(r io.Reader) error {
		_, err := timetree.ReadTSV(r)
		return err
	},
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
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
