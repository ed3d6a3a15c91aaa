// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package gradient_test

import (
	"image/color"
	"testing"

	"github.com/js-arias/tsinfo/gradient"
)

func TestParse(t *testing.T) {
	tests := map[string]gradient.Gradienter{
		"":             gradient.RainbowPurpleToRed{},
		"rainbow":      gradient.RainbowPurpleToRed{},
		"Gray":         gradient.Gray{},
		"incandescent": gradient.Incandescent{},
		" iridescent ": gradient.Iridescent{},
	}
	for name, want := range tests {
		g, err := gradient.Parse(name)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", name, err)
			continue
		}
		if g != want {
			t.Errorf("%q: got %T, want %T", name, g, want)
		}
	}

	if _, err := gradient.Parse("viridis"); err == nil {
		t.Errorf("unknown scheme: expecting error")
	}
}

func TestGray(t *testing.T) {
	g := gradient.Gray{}
	tests := map[float64]string{
		-1:  "#c8c8c8",
		0:   "#c8c8c8",
		0.5: "#646464",
		1:   "#000000",
		2:   "#000000",
	}
	for v, want := range tests {
		if h := gradient.Hex(g.Gradient(v)); h != want {
			t.Errorf("value %v: got %s, want %s", v, h, want)
		}
	}
}

func TestHex(t *testing.T) {
	if h := gradient.Hex(color.RGBA{255, 128, 0, 255}); h != "#ff8000" {
		t.Errorf("hex: got %s, want %s", h, "#ff8000")
	}
}
