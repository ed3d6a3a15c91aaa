// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot is a metapackage for commands
// that plot the tables of a tree sequence.
package plot

import (
	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/cmd/tsinfo/plot/dashcmd"
	"github.com/js-arias/tsinfo/cmd/tsinfo/plot/histcmd"
	"github.com/js-arias/tsinfo/cmd/tsinfo/plot/scatter"
)

var Command = &command.Command{
	Usage: "plot <command> [<argument>...]",
	Short: "commands to plot tree sequence tables",
}

func init() {
	Command.Add(dashcmd.Command)
	Command.Add(histcmd.Command)
	Command.Add(scatter.Command)
}
