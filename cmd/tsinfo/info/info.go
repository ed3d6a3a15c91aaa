// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package info is a metapackage for commands
// that print the tables derived from a tree sequence.
package info

import (
	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/cmd/tsinfo/info/summary"
	"github.com/js-arias/tsinfo/cmd/tsinfo/info/tablecmd"
)

var Command = &command.Command{
	Usage: "info <command> [<argument>...]",
	Short: "commands to describe a tree sequence",
}

func init() {
	Command.Add(summary.Command)
	Command.Add(tablecmd.Mutations)
	Command.Add(tablecmd.Edges)
	Command.Add(tablecmd.Nodes)
	Command.Add(tablecmd.Sites)
}
