// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package gradient implements color gradients
// used to color the points of a plot
// by the value of a table column.
package gradient

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/blind"
)

// A Gradienter is a color scheme
// that returns a color for a value
// between 0 and 1.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Names of the defined color schemes.
const (
	GrayName         = "gray"
	IncandescentName = "incandescent"
	IridescentName   = "iridescent"
	RainbowName      = "rainbow"
)

// Parse returns a color scheme from its name.
// An empty name returns the default scheme
// (rainbow).
func Parse(name string) (Gradienter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RainbowName:
		return RainbowPurpleToRed{}, nil
	case GrayName:
		return Gray{}, nil
	case IncandescentName:
		return Incandescent{}, nil
	case IridescentName:
		return Iridescent{}, nil
	}
	return nil, fmt.Errorf("unknown color scheme %q", name)
}

// Hex returns a color as an HTML hex string.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Gray is a gray scale
// from light gray (RGB: 200)
// to black.
type Gray struct{}

func (g Gray) Gradient(v float64) color.Color {
	c := 200 - uint8(clamp(v)*200)
	return color.RGBA{c, c, c, 255}
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}
