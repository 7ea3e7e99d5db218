// SPDX-License-Identifier: MIT

// Package config holds the runlabel command configuration: defaults, a
// strict JSON loader, and a merge in priority order defaults ← file ← flags.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/runlabel/labeling"
)

// Render formats for the label image.
const (
	RenderGray16 = "gray16"
	RenderColor  = "color"
)

// Sentinel errors.
var (
	ErrNoSource      = errors.New("config: no config source provided")
	ErrMissingInput  = errors.New("config: input path is required")
	ErrUnknownRender = errors.New("config: unknown render format")
)

// Logging selects the level and output format of the command logger.
type Logging struct {
	Level  string `json:"level,omitempty"`
	Format string `json:"format,omitempty"`
}

// Config is the full command configuration.
// Zero values mean "not set" for Merge, except Verify which can only be
// switched on by an override.
type Config struct {
	Input         string  `json:"input,omitempty"`
	Output        string  `json:"output,omitempty"`
	Regions       string  `json:"regions,omitempty"`
	Mode          string  `json:"mode,omitempty"`
	Limit         int     `json:"limit,omitempty"`
	EstimatedRuns int     `json:"estimated_runs,omitempty"`
	Render        string  `json:"render,omitempty"`
	Verify        bool    `json:"verify,omitempty"`
	Logging       Logging `json:"logging"`
}

// Defaults returns the baseline configuration. Input has no default.
func Defaults() Config {
	return Config{
		Mode:          labeling.AreaThreshold.String(),
		Limit:         labeling.DefaultLimit,
		EstimatedRuns: labeling.DefaultEstimatedRuns,
		Render:        RenderGray16,
		Logging:       Logging{Level: "info", Format: "console"},
	}
}

// LoadJSON parses a Config from raw bytes when given, otherwise from the
// file at path. Unknown fields are rejected.
func LoadJSON(path string, raw []byte) (Config, error) {
	var cfg Config
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
	default:
		return cfg, ErrNoSource
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Merge overlays over onto base; the non-zero fields of over win.
func Merge(base, over Config) Config {
	out := base
	if s := strings.TrimSpace(over.Input); s != "" {
		out.Input = s
	}
	if s := strings.TrimSpace(over.Output); s != "" {
		out.Output = s
	}
	if s := strings.TrimSpace(over.Regions); s != "" {
		out.Regions = s
	}
	if s := strings.TrimSpace(over.Mode); s != "" {
		out.Mode = s
	}
	if over.Limit != 0 {
		out.Limit = over.Limit
	}
	if over.EstimatedRuns != 0 {
		out.EstimatedRuns = over.EstimatedRuns
	}
	if s := strings.TrimSpace(over.Render); s != "" {
		out.Render = s
	}
	if over.Verify {
		out.Verify = true
	}
	if s := strings.TrimSpace(over.Logging.Level); s != "" {
		out.Logging.Level = s
	}
	if s := strings.TrimSpace(over.Logging.Format); s != "" {
		out.Logging.Format = s
	}

	return out
}

// Validate checks the fields the labeler and the command depend on.
// Limit-policy problems wrap labeling.ErrInvalidConfiguration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ErrMissingInput
	}
	mode, err := labeling.ParseLimitMode(c.Mode)
	if err != nil {
		return err
	}
	opts := labeling.DefaultOptions()
	opts.Mode, opts.Limit = mode, c.Limit
	if err := opts.Validate(); err != nil {
		return err
	}
	switch strings.ToLower(c.Render) {
	case RenderGray16, RenderColor:
	default:
		return fmt.Errorf("%q: %w", c.Render, ErrUnknownRender)
	}

	return nil
}

// LabelingOptions translates c into labeling options. Call Validate first;
// an unparsable mode is passed through as an invalid LimitMode so that
// labeling.Exec rejects it.
func (c Config) LabelingOptions(l zerolog.Logger) []labeling.Option {
	mode, err := labeling.ParseLimitMode(c.Mode)
	if err != nil {
		mode = labeling.LimitMode(-1)
	}

	return []labeling.Option{
		labeling.WithLimit(mode, c.Limit),
		labeling.WithEstimatedRuns(c.EstimatedRuns),
		labeling.WithLogger(l),
	}
}
