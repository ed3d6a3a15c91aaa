// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with the local trees of a tree sequence.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/cmd/tsinfo/tree/export"
	"github.com/js-arias/tsinfo/cmd/tsinfo/tree/list"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for local trees",
}

func init() {
	Command.Add(export.Command)
	Command.Add(list.Command)
}
