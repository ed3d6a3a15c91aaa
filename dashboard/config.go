// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dashboard implements the plots
// of the tables of a tree sequence:
// HTML dashboards with interactive charts,
// and static plots saved as SVG or PNG files.
package dashboard

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/js-arias/tsinfo/gradient"
	"github.com/js-arias/tsinfo/hist"
	"github.com/js-arias/tsinfo/timestage"
	"gopkg.in/yaml.v3"
)

// Config is the set of options
// used to build the plots.
type Config struct {
	// Size of the main plots, in pixels.
	// Histograms use half of the width.
	PlotWidth  int `yaml:"plot_width"`
	PlotHeight int `yaml:"plot_height"`

	// If LogY is true,
	// the count histograms
	// (mutations per site and per node)
	// use the log10 of the counts.
	LogY bool `yaml:"log_y"`

	// Number of bins for the histograms
	// of mutations per site,
	// and mutations per node.
	SiteBins int `yaml:"site_bins"`
	NodeBins int `yaml:"node_bins"`

	// Number of bins for the histograms
	// of the axis of a scatter plot.
	AxisBins int `yaml:"axis_bins"`

	// Name of the color scheme.
	Gradient string `yaml:"gradient"`

	// Windows of the scatter plots.
	// A zero window is unbounded.
	XRange hist.Window `yaml:"x_range"`
	YRange hist.Window `yaml:"y_range"`

	// TimeStages, if defined,
	// are used as the dividers
	// of the time histograms.
	// If not defined,
	// the time stages of the project are used.
	TimeStages []float64 `yaml:"time_stages,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PlotWidth:  1000,
		PlotHeight: 400,
		SiteBins:   29,
		NodeBins:   10,
		AxisBins:   10,
		Gradient:   gradient.RainbowName,
	}
}

// ReadConfig reads a configuration from a YAML file.
// Undefined options take the default values.
//
// Here is an example file:
//
//	# tsinfo dashboard
//	plot_width: 1200
//	plot_height: 500
//	log_y: true
//	gradient: iridescent
//	x_range:
//	  min: 0
//	  max: 5000
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("dashboard config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write writes the configuration as a YAML file.
func (cfg Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("dashboard config: %v", err)
	}
	return enc.Close()
}

// Validate returns an error
// if an option has an invalid value.
func (cfg Config) Validate() error {
	if cfg.PlotWidth <= 0 || cfg.PlotHeight <= 0 {
		return fmt.Errorf("dashboard config: invalid plot size %dx%d", cfg.PlotWidth, cfg.PlotHeight)
	}
	if cfg.SiteBins < 2 {
		return fmt.Errorf("dashboard config: invalid site bins %d", cfg.SiteBins)
	}
	if cfg.NodeBins < 2 {
		return fmt.Errorf("dashboard config: invalid node bins %d", cfg.NodeBins)
	}
	if cfg.AxisBins < 1 {
		return fmt.Errorf("dashboard config: invalid axis bins %d", cfg.AxisBins)
	}
	if cfg.XRange.Min > cfg.XRange.Max {
		return fmt.Errorf("dashboard config: invalid x range [%v, %v]", cfg.XRange.Min, cfg.XRange.Max)
	}
	if cfg.YRange.Min > cfg.YRange.Max {
		return fmt.Errorf("dashboard config: invalid y range [%v, %v]", cfg.YRange.Min, cfg.YRange.Max)
	}
	if !slices.IsSorted(cfg.TimeStages) {
		return fmt.Errorf("dashboard config: time stages must be sorted")
	}
	if _, err := gradient.Parse(cfg.Gradient); err != nil {
		return fmt.Errorf("dashboard config: %v", err)
	}
	return nil
}

func (cfg Config) gradient() gradient.Gradienter {
	g, err := gradient.Parse(cfg.Gradient)
	if err != nil {
		return gradient.RainbowPurpleToRed{}
	}
	return g
}

// TimeHist returns the histogram of a set of times.
// If time stages are defined,
// they are used as the bins,
// with the oldest time added as the last divider.
func (cfg Config) timeHist(data []float64) hist.Histogram {
	if len(cfg.TimeStages) == 0 {
		return hist.Uniform(data, cfg.AxisBins)
	}

	st := cfg.stages()
	oldest := math.Inf(-1)
	for _, v := range data {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		oldest = math.Max(oldest, v)
	}
	return hist.New(data, st.Dividers(oldest))
}

func (cfg Config) stages() timestage.Stages {
	st := timestage.New()
	for _, a := range cfg.TimeStages {
		st.AddStage(a)
	}
	return st
}
