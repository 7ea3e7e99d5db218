// SPDX-License-Identifier: MIT

package labeling

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/runlabel/raster"
)

// Labeler runs the labeling pipeline. Its run arena and root buffer are
// reused across calls, so labelling many same-sized images through one
// Labeler allocates little beyond the returned Regions.
//
// A Labeler is not safe for concurrent use.
type Labeler struct {
	opts    Options
	log     zerolog.Logger
	runs    arena
	roots   []int
	regions []Region
}

// New creates a Labeler. Options are validated by Exec, not here.
func New(opts ...Option) *Labeler {
	o := gatherOptions(opts)

	return &Labeler{
		opts:  o,
		log:   o.Logger.With().Str("component", "labeling").Logger(),
		runs:  make(arena, 0, o.EstimatedRuns),
		roots: make([]int, 0, o.EstimatedRuns/4),
	}
}

// Options returns the configuration the Labeler was built with.
func (lb *Labeler) Options() Options { return lb.opts }

// Regions returns the regions produced by the last successful Exec,
// indexed by label-1. The slice is not reused by later calls.
func (lb *Labeler) Regions() []Region { return lb.regions }

// Runs returns a copy of the run arena left by the most recent Exec,
// ordered by row then column. Run.Label is valid once that Exec succeeded.
func (lb *Labeler) Runs() []Run {
	out := make([]Run, len(lb.runs))
	copy(out, lb.runs)

	return out
}

// Exec labels src into dst and returns the kept regions ordered by label.
//
// Behavior:
//   - Every non-zero sample of src is foreground; dst must have src's shape.
//   - dst cells of kept regions receive labels 1..K ordered by non-increasing
//     area; every other cell is set to 0.
//   - Configuration and input are validated first; on error dst is untouched.
//
// Errors:
//   - ErrUnknownLimitMode, ErrNonPositiveLimit (ErrInvalidConfiguration).
//   - ErrNilRaster, ErrEmptyRaster, ErrShapeMismatch, ErrLabelOverflow (ErrInvalidInput).
//
// Exec is a package function rather than a method because Go methods cannot
// carry their own type parameters.
func Exec[S raster.Sample, L raster.Label](lb *Labeler, src *raster.Grid[S], dst *raster.Grid[L]) ([]Region, error) {
	if err := lb.opts.Validate(); err != nil {
		return nil, err
	}
	if src == nil || dst == nil {
		return nil, ErrNilRaster
	}
	if src.Rows() <= 0 || src.Cols() <= 0 {
		return nil, ErrEmptyRaster
	}
	if !dst.SameShape(src) {
		return nil, fmt.Errorf("src %dx%d, dst %dx%d: %w",
			src.Rows(), src.Cols(), dst.Rows(), dst.Cols(), ErrShapeMismatch)
	}

	lb.runs = extractRuns(lb.runs[:0], src)
	lb.log.Debug().Int("rows", src.Rows()).Int("cols", src.Cols()).
		Int("runs", len(lb.runs)).Msg("runs extracted")

	var edges int
	lb.runs, edges = buildForest(lb.runs)
	lb.log.Debug().Int("edges", edges).Msg("forest built")

	totalize(lb.runs)

	var regions []Region
	regions, lb.roots = assignLabels(lb.runs, lb.opts.Mode, lb.opts.Limit, lb.roots)
	lb.log.Debug().Int("roots", len(lb.roots)).Int("regions", len(regions)).
		Int("rejected", len(lb.roots)-len(regions)).
		Stringer("mode", lb.opts.Mode).Int("limit", lb.opts.Limit).
		Msg("labels assigned")

	if !fitsLabel[L](len(regions)) {
		return nil, fmt.Errorf("%d regions: %w", len(regions), ErrLabelOverflow)
	}
	render(lb.runs, dst)
	lb.regions = regions

	return regions, nil
}

// Label is a one-shot convenience around New and Exec that allocates an
// int32 label grid of src's shape.
func Label[S raster.Sample](src *raster.Grid[S], opts ...Option) (*raster.Grid[int32], []Region, error) {
	lb := New(opts...)
	if err := lb.opts.Validate(); err != nil {
		return nil, nil, err
	}
	if src == nil {
		return nil, nil, ErrNilRaster
	}
	if src.Rows() <= 0 || src.Cols() <= 0 {
		return nil, nil, ErrEmptyRaster
	}
	dst, err := raster.NewGrid[int32](src.Rows(), src.Cols())
	if err != nil {
		return nil, nil, err
	}
	regions, err := Exec(lb, src, dst)
	if err != nil {
		return nil, nil, err
	}

	return dst, regions, nil
}
