// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(dashboardConfigGuide)
	app.Add(projectsGuide)
	app.Add(tableFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
A tree sequence is stored in several table files. To reduce the burden of
keeping track of many files, a single project file is used to hold the
reference of all files used by tsinfo. This guide explains the structure of
the file, but most of the time, the best way to edit or view this file is by
using tsinfo commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# tsinfo project files
	dataset	path
	nodes	nodes.tab
	edges	edges.tab
	sites	sites.tab
	mutations	mutations.tab
	stages	stages.tab
	dashboard	dashboard.yaml

The valid file types are:

- Node table. Defined by the dataset keyword "nodes". This file is required
  to build a tree sequence. The recommended way to add a node table is by
  using the command 'tsinfo tables add'.
- Edge table. Defined by the dataset keyword "edges".
- Site table. Defined by the dataset keyword "sites".
- Mutation table. Defined by the dataset keyword "mutations".
- Time stages. Defined by the dataset keyword "stages". This file contains
  the times used as the bins of the time histograms of the plots.
- Dashboard configuration. Defined by the dataset keyword "dashboard". This
  file contains the options used to build the plots.
- Time trees. Defined by the dataset keyword "trees". This file contains the
  local trees exported with the command 'tsinfo tree export'.
	`,
}

var tableFilesGuide = &command.Command{
	Usage: "table-files",
	Short: "about tree sequence table files",
	Long: `
In tsinfo, a tree sequence is stored as a set of tab-delimited files, one for
each table. Lines starting with '#' are ignored. Each file must have a header
with the names of the fields, and any other field will be ignored.

A node table has the following fields:

	- is_sample  1 if the node is a sample, 0 otherwise
	- time       the time of the node (0 is the present)

An edge table has the following fields:

	- left    the left coordinate of the genomic interval of the edge
	- right   the right coordinate (not included) of the interval
	- parent  the ID of the parent node
	- child   the ID of the child node

A site table has the following fields:

	- position         the genomic position of the site
	- ancestral_state  the state at the root of the local tree

A mutation table has the following fields:

	- site           the ID of the site
	- node           the ID of the node in which the mutation occurs
	- derived_state  the state after the mutation
	- parent         the ID of the parent mutation, or -1 if the mutation
	                 has no parent mutation

The IDs of nodes, sites and mutations are given by the row order, starting
at 0. Here is an example of an edge table:

	# tree sequence edges
	left	right	parent	child
	0	10	4	0
	0	10	4	1
	0	10	5	2
	0	10	5	3
	0	10	6	4
	0	10	6	5

Use 'tsinfo tables sort' to sort the tables in the order required to build a
tree sequence, and 'tsinfo tables check' to validate the tables.
	`,
}

var dashboardConfigGuide = &command.Command{
	Usage: "dashboard-config",
	Short: "about dashboard configuration files",
	Long: `
The plots produced by tsinfo can be configured with a YAML file. In a project,
the file that contains the configuration is indicated with the "dashboard"
keyword. Options not defined in the file take the default values.

The valid options are:

	- plot_width   width of the main plots, in pixels. Histograms use
	               half of the width. Default: 1000.
	- plot_height  height of the plots, in pixels. Default: 400.
	- log_y        if true, the histograms of mutations per site and per
	               node use the log10 of the counts. Default: false.
	- site_bins    number of bins for the histogram of mutations per site.
	               Default: 29.
	- node_bins    number of bins for the histogram of mutations per node.
	               Default: 10.
	- axis_bins    number of bins of the histograms of scatter plot axes.
	               Default: 10.
	- gradient     color scheme of the scatter plots. Valid values are
	               "gray", "incandescent", "iridescent", and "rainbow".
	               Default: rainbow.
	- x_range      window of the x axis of the scatter plots, with "min"
	               and "max" values. By default the axis is unbounded.
	- y_range      window of the y axis of the scatter plots.
	- time_stages  sorted list of times used as the bins of the time
	               histograms. If not defined, the time stages of the
	               project are used.

Here is an example file:

	# tsinfo dashboard
	plot_width: 1200
	log_y: true
	gradient: iridescent
	x_range:
	  min: 0
	  max: 5000
	`,
}
