// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package scatter implements a command to draw
// a scatter plot of two columns of a table.
package scatter

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/dashboard"
	"github.com/js-arias/tsinfo/hist"
	"github.com/js-arias/tsinfo/project"
	"github.com/js-arias/tsinfo/tsinfo"
)

var Command = &command.Command{
	Usage: `scatter [--length <value>] [--config <file>]
	[--table <name>] [-x <column>] [-y <column>] [--color <column>]
	[--xmin <value>] [--xmax <value>] [--ymin <value>] [--ymax <value>]
	-o|--output <file> <project-file>`,
	Short: "draw a scatter plot of a table",
	Long: `
Command scatter reads the tree sequence of a tsinfo project and draws a
scatter plot of two columns of a table.

The argument of the command is the name of the project file.

By default, the sequence length is inferred from the tables, use the flag
--length to define a different sequence length.

The flag --table defines the table to be used. Valid values are "mutations",
"edges", "nodes", and "sites". By default it uses the mutation table. The
flags -x and -y define the columns used for the axes of the plot. By default,
the position and the time of the mutations are used. The flag --color defines
a column used to color the points, scaled to the range of the column. By
default the points are colored using "num_inheritors". Type 'tsinfo help info
<table>' to see the columns of a table. Points with a non-finite value (for
example the ancestors span of a root node) are not drawn.

The plot is configured with the dashboard configuration of the project. Use
the flag --config to use a different configuration file. The flags --xmin,
--xmax, --ymin, and --ymax define the windows of the plot axes.

The flag --output, or -o, is required and defines the name of the output
file. The format of the image is defined by the file extension, valid formats
are "svg", "png", "pdf", "eps", "jpg", and "tif".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var length float64
var cfgFile string
var tabName string
var xCol, yCol, colorCol string
var xMin, xMax, yMin, yMax float64
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&length, "length", 0, "")
	c.Flags().StringVar(&cfgFile, "config", "", "")
	c.Flags().StringVar(&tabName, "table", "mutations", "")
	c.Flags().StringVar(&xCol, "x", "position", "")
	c.Flags().StringVar(&yCol, "y", "time", "")
	c.Flags().StringVar(&colorCol, "color", "num_inheritors", "")
	c.Flags().Float64Var(&xMin, "xmin", 0, "")
	c.Flags().Float64Var(&xMax, "xmax", 0, "")
	c.Flags().Float64Var(&yMin, "ymin", 0, "")
	c.Flags().Float64Var(&yMax, "ymax", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if output == "" {
		return c.UsageError("expecting output file, flag --output")
	}
	format, err := dashboard.Format(output)
	if err != nil {
		return c.UsageError(err.Error())
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
	if xMin != 0 || xMax != 0 {
		cfg.XRange = hist.Window{Min: xMin, Max: xMax}
	}
	if yMin != 0 || yMax != 0 {
		cfg.YRange = hist.Window{Min: yMin, Max: yMax}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tab, err := tsinfo.New(ts).Table(tabName)
	if err != nil {
		return err
	}
	plt, err := dashboard.ScatterPlot(tab, xCol, yCol, colorCol, cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := dashboard.WritePlot(f, plt, cfg, format); err != nil {
		return fmt.Errorf("on file %q: %v", output, err)
	}
	return f.Close()
}
