// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Tsinfo is a tool to describe the tables of a tree sequence.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/tsinfo/cmd/tsinfo/info"
	"github.com/js-arias/tsinfo/cmd/tsinfo/plot"
	"github.com/js-arias/tsinfo/cmd/tsinfo/tables"
	"github.com/js-arias/tsinfo/cmd/tsinfo/tree"
)

var app = &command.Command{
	Usage: "tsinfo <command> [<argument>...]",
	Short: "a tool to describe the tables of a tree sequence",
}

func init() {
	app.Add(tables.Command)
	app.Add(info.Command)
	app.Add(tree.Command)
	app.Add(plot.Command)
}

func main() {
	app.Main()
}
