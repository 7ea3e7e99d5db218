// SPDX-License-Identifier: MIT

package labeling

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// LimitMode selects which trees survive as labelled regions.
type LimitMode int

const (
	// AreaThreshold keeps every region whose pixel area is at least the limit.
	AreaThreshold LimitMode = iota
	// RegionCount keeps at most limit regions, largest first.
	RegionCount
)

// Defaults for Options.
const (
	// DefaultLimit keeps every non-empty region under AreaThreshold.
	DefaultLimit = 1
	// DefaultEstimatedRuns pre-sizes the run arena.
	DefaultEstimatedRuns = 1024
)

// String returns the canonical config spelling of m.
func (m LimitMode) String() string {
	switch m {
	case AreaThreshold:
		return "area"
	case RegionCount:
		return "count"
	default:
		return fmt.Sprintf("LimitMode(%d)", int(m))
	}
}

// ParseLimitMode accepts "area", "area-threshold", "count" and "region-count"
// (case-insensitive). Anything else yields ErrUnknownLimitMode.
func ParseLimitMode(s string) (LimitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "area", "area-threshold":
		return AreaThreshold, nil
	case "count", "region-count":
		return RegionCount, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownLimitMode)
	}
}

// Option configures a Labeler.
// Use with New(opts...) or Label(src, opts...).
type Option func(*Options)

// Options holds the configuration of a Labeler.
type Options struct {
	// Mode selects the limit policy. Default AreaThreshold.
	Mode LimitMode

	// Limit is the minimum area (AreaThreshold) or the maximum number of
	// regions (RegionCount). Must be > 0. Default 1.
	Limit int

	// EstimatedRuns pre-sizes the run arena. A performance hint only;
	// negative values are treated as 0.
	EstimatedRuns int

	// Logger receives one Debug event per pipeline stage.
	// Default zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns Options with:
//   - Mode = AreaThreshold, Limit = 1 (every region is kept)
//   - EstimatedRuns = 1024
//   - a disabled logger
func DefaultOptions() Options {
	return Options{
		Mode:          AreaThreshold,
		Limit:         DefaultLimit,
		EstimatedRuns: DefaultEstimatedRuns,
		Logger:        zerolog.Nop(),
	}
}

// WithAreaThreshold keeps regions whose area is >= minArea.
func WithAreaThreshold(minArea int) Option {
	return WithLimit(AreaThreshold, minArea)
}

// WithRegionCount keeps the n largest regions.
func WithRegionCount(n int) Option {
	return WithLimit(RegionCount, n)
}

// WithLimit sets mode and limit together. Validation is deferred to Exec so
// that a bad value is reported as an error rather than a panic.
func WithLimit(mode LimitMode, limit int) Option {
	return func(o *Options) {
		o.Mode = mode
		o.Limit = limit
	}
}

// WithEstimatedRuns sets the initial capacity of the run arena.
func WithEstimatedRuns(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.EstimatedRuns = n
	}
}

// WithLogger installs a structured logger. Events carry component=labeling.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Validate reports ErrUnknownLimitMode or ErrNonPositiveLimit.
func (o Options) Validate() error {
	if o.Mode != AreaThreshold && o.Mode != RegionCount {
		return fmt.Errorf("%v: %w", o.Mode, ErrUnknownLimitMode)
	}
	if o.Limit <= 0 {
		return fmt.Errorf("limit %d: %w", o.Limit, ErrNonPositiveLimit)
	}

	return nil
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
