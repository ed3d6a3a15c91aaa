// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package summary_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/js-arias/tsinfo/cmd/tsinfo/info/summary"
	"github.com/js-arias/tsinfo/project"
	"github.com/js-arias/tsinfo/tseq"
)

func TestSummary(t *testing.T) {
	dir := t.TempDir()

	tb := tseq.NewTables(10)
	tb.AddNode(tseq.Sample, 0)
	tb.AddNode(tseq.Sample, 0)
	tb.AddNode(0, 1)
	tb.AddEdge(0, 10, 2, 0)
	tb.AddEdge(0, 10, 2, 1)
	tb.AddSite(4, "A")
	tb.AddMutation(0, 2, "C", tseq.Null)

	name := filepath.Join(dir, "project.tab")
	p := project.New()
	p.SetName(name)
	for _, set := range project.TableSets {
		p.Add(set, filepath.Join(dir, string(set)+".tab"))
	}
	if err := p.WriteTables(tb); err != nil {
		t.Fatalf("write tables: %v", err)
	}
	if err := p.Write(); err != nil {
		t.Fatalf("write project: %v", err)
	}

	var out bytes.Buffer
	summary.Command.SetStdout(&out)
	if err := summary.Command.Execute([]string{name}); err != nil {
		t.Fatalf("summary: unexpected error: %v", err)
	}

	got := make(map[string]string)
	for _, ln := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		k, v, _ := strings.Cut(ln, "\t")
		got[k] = v
	}
	want := map[string]string{
		"trees":      "1",
		"samples":    "2",
		"mutations":  "1",
		"inheritors": "2",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("summary %q: got %q, want %q", k, got[k], v)
		}
	}
}
