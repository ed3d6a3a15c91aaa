// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tables is a metapackage for commands
// that dealt with the table files of a project.
package tables

import (
	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/cmd/tsinfo/tables/add"
	"github.com/js-arias/tsinfo/cmd/tsinfo/tables/check"
	"github.com/js-arias/tsinfo/cmd/tsinfo/tables/sortcmd"
)

var Command = &command.Command{
	Usage: "tables <command> [<argument>...]",
	Short: "commands for tree sequence table files",
}

func init() {
	Command.Add(add.Command)
	Command.Add(check.Command)
	Command.Add(sortcmd.Command)
}
