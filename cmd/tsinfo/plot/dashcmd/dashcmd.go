// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dashcmd implements a command to write
// an HTML dashboard of a tree sequence.
package dashcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/dashboard"
	"github.com/js-arias/tsinfo/project"
	"github.com/js-arias/tsinfo/tsinfo"
)

var Command = &command.Command{
	Usage: `dashboard [--length <value>] [--config <file>]
	[--logy] [--gradient <name>] [--section <list>]
	[-o|--output <file>] <project-file>`,
	Short: "write an HTML dashboard of a tree sequence",
	Long: `
Command dashboard reads the tree sequence of a tsinfo project and writes an
HTML page with interactive charts of the mutation, edge, and node tables.

The argument of the command is the name of the project file.

By default, the sequence length is inferred from the tables, use the flag
--length to define a different sequence length.

The charts are configured with the dashboard configuration of the project. Use
the flag --config to use a different configuration file. Type 'tsinfo help
dashboard-config' to learn about the configuration options. The flag --logy
sets the histograms of mutations per site and per node to use the log of the
counts. The flag --gradient sets the color scheme of the scatter plots.

By default, all the sections of the dashboard are included. Use the flag
--section with a comma separated list to define the sections to be included.
Valid sections are:

	overview   the size of the tables
	mutations  mutation positions and times, mutations per site and node
	edges      edge spans and branch lengths
	nodes      node times, ancestors span, and mutations per node

By default, the dashboard will be written in the file 'dashboard.html'. Use
the flag --output, or -o, to define a different file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var length float64
var cfgFile string
var logY bool
var gradName string
var sections string
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&length, "length", 0, "")
	c.Flags().StringVar(&cfgFile, "config", "", "")
	c.Flags().BoolVar(&logY, "logy", false, "")
	c.Flags().StringVar(&gradName, "gradient", "", "")
	c.Flags().StringVar(&sections, "section", "", "")
	c.Flags().StringVar(&output, "output", "dashboard.html", "")
	c.Flags().StringVar(&output, "o", "dashboard.html", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	var sec []dashboard.Section
	if sections != "" {
		for _, s := range strings.Split(sections, ",") {
			v, err := dashboard.ParseSection(s)
			if err != nil {
				return c.UsageError(err.Error())
			}
			sec = append(sec, v)
		}
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	ts, err := p.TreeSeq(length)
	if err != nil {
		return err
	}

	if cfgFile != "" {
		p.Add(project.Dashboard, cfgFile)
	}
	cfg, err := p.Dashboard()
	if err != nil {
		return err
	}
	if logY {
		cfg.LogY = true
	}
	if gradName != "" {
		cfg.Gradient = gradName
	}

	return writeDashboard(output, tsinfo.New(ts), cfg, sec)
}

func writeDashboard(name string, inf *tsinfo.Info, cfg dashboard.Config, sec []dashboard.Section) (err error) {
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

	if err := dashboard.Render(f, inf, cfg, sec...); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
