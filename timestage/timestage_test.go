// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package timestage_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/tsinfo/timestage"
)

type nodeTimes struct {
	stages []float64
}

func (n nodeTimes) Stages() []float64 {
	return n.stages
}

func TestStages(t *testing.T) {
	s := timestage.New()

	want := nodeTimes{
		stages: []float64{
			0,
			0.5,
			10,
			100,
			1_000,
			10_000,
		},
	}

	s.Add(want)
	testStages(t, "add", s, want.Stages())

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatalf("unable to write data: %v", err)
	}

	r, err := timestage.Read(&buf)
	if err != nil {
		t.Logf("input data:\n%s\n", buf.String())
		t.Fatalf("unable to read data: %v", err)
	}

	testStages(t, "read", r, want.Stages())
}

func TestRead(t *testing.T) {
	in := "# stages\n100\tlate\n\n0\n10\tearly\textra\n"
	s, err := timestage.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}
	testStages(t, "read", s, []float64{0, 10, 100})

	if _, err := timestage.Read(strings.NewReader("ten\n")); err == nil {
		t.Errorf("invalid time: expecting error")
	}
}

func TestClosestStage(t *testing.T) {
	s := timestage.New()
	for _, a := range []float64{0, 10, 100} {
		s.AddStage(a)
	}

	tests := map[float64]float64{
		0:   0,
		5:   0,
		10:  10,
		99:  10,
		500: 100,
		-1:  0,
	}
	for tm, want := range tests {
		if got := s.ClosestStage(tm); got != want {
			t.Errorf("time %v: got %v, want %v", tm, got, want)
		}
	}
}

func TestDividers(t *testing.T) {
	s := timestage.New()
	for _, a := range []float64{0, 10, 100} {
		s.AddStage(a)
	}

	if d := s.Dividers(50); !reflect.DeepEqual(d, []float64{0, 10, 100}) {
		t.Errorf("dividers: got %v, want %v", d, []float64{0, 10, 100})
	}
	if d := s.Dividers(200); !reflect.DeepEqual(d, []float64{0, 10, 100, 200}) {
		t.Errorf("dividers: got %v, want %v", d, []float64{0, 10, 100, 200})
	}
}

func testStages(t testing.TB, name string, s timestage.Stages, want []float64) {
	t.Helper()

	got := s.Stages()
	if len(got) != len(want) {
		t.Errorf("%s length: got %d stages, want %d", name, len(got), len(want))
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got %v stages, want %v stages", name, got, want)
	}
}
