// SPDX-License-Identifier: MIT

// Command runlabel labels the connected foreground regions of an image.
//
// Usage:
//
//	runlabel -in scan.png -out labels.png -regions regions.json -mode count -limit 10
//
// Configuration is merged in the order defaults ← -config file ← flags.
// Exit codes: 0 success, 1 runtime failure, 2 usage or configuration error.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/runlabel/gridgraph"
	cfgpkg "github.com/katalvlaran/runlabel/internal/config"
	"github.com/katalvlaran/runlabel/internal/imageio"
	"github.com/katalvlaran/runlabel/internal/logging"
	"github.com/katalvlaran/runlabel/internal/verify"
	"github.com/katalvlaran/runlabel/labeling"
	"github.com/katalvlaran/runlabel/raster"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// report is the JSON document written by -regions.
type report struct {
	RunID   string            `json:"run_id"`
	Input   string            `json:"input"`
	Rows    int               `json:"rows"`
	Cols    int               `json:"cols"`
	Mode    string            `json:"mode"`
	Limit   int               `json:"limit"`
	Runs    int               `json:"runs"`
	Areas   areaStats         `json:"areas"`
	Regions []labeling.Region `json:"regions"`
}

// areaStats summarises the kept region areas. Zero when fewer than one
// (mean) or two (standard deviation) regions exist.
type areaStats struct {
	Total  int     `json:"total"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

func summarise(regions []labeling.Region) areaStats {
	var s areaStats
	if len(regions) == 0 {
		return s
	}
	areas := make([]float64, len(regions))
	for i, r := range regions {
		areas[i] = float64(r.Area)
		s.Total += r.Area
	}
	if len(areas) == 1 {
		s.Mean = areas[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(areas, nil)

	return s
}

func parseFlags(args []string, stderr io.Writer) (configPath string, over cfgpkg.Config, err error) {
	fs := flag.NewFlagSet("runlabel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", "", "JSON config file")
	fs.StringVar(&over.Input, "in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&over.Output, "out", "", "label image to write (.png, .bmp, .tif)")
	fs.StringVar(&over.Regions, "regions", "", "region report JSON path, - for stdout")
	fs.StringVar(&over.Mode, "mode", "", "limit policy: area or count")
	fs.IntVar(&over.Limit, "limit", 0, "minimum area (area) or region count (count)")
	fs.IntVar(&over.EstimatedRuns, "estimate", 0, "expected number of runs, pre-sizes buffers")
	fs.StringVar(&over.Render, "render", "", "label image style: gray16 or color")
	fs.BoolVar(&over.Verify, "verify", false, "cross-check the result with a flood fill")
	fs.StringVar(&over.Logging.Level, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&over.Logging.Format, "log-format", "", "console or json")
	if err := fs.Parse(args); err != nil {
		return "", over, err
	}
	if fs.NArg() > 0 {
		return "", over, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return configPath, over, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	configPath, over, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "runlabel: %v\n", err)
		return exitUsage
	}

	cfg := cfgpkg.Defaults()
	if configPath != "" {
		file, err := cfgpkg.LoadJSON(configPath, nil)
		if err != nil {
			fmt.Fprintf(stderr, "runlabel: %v\n", err)
			return exitUsage
		}
		cfg = cfgpkg.Merge(cfg, file)
	}
	cfg = cfgpkg.Merge(cfg, over)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "runlabel: %v\n", err)
		return exitUsage
	}

	base, err := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(stderr, "runlabel: %v\n", err)
		return exitUsage
	}
	runID := uuid.NewString()
	base = base.With().Str("run_id", runID).Logger()
	log := logging.Component(base, "cli")

	rep, err := execute(cfg, base)
	if err != nil {
		log.Error().Err(err).Str("in", cfg.Input).Msg("labeling failed")
		if errors.Is(err, labeling.ErrInvalidConfiguration) {
			return exitUsage
		}
		return exitFailure
	}
	rep.RunID = runID
	if err := writeReport(cfg.Regions, rep, stdout); err != nil {
		log.Error().Err(err).Str("regions", cfg.Regions).Msg("writing region report failed")
		return exitFailure
	}

	log.Info().
		Str("in", cfg.Input).
		Int("rows", rep.Rows).
		Int("cols", rep.Cols).
		Int("runs", rep.Runs).
		Int("regions", len(rep.Regions)).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	return exitOK
}

// execute loads the input, labels it, optionally verifies, and writes the
// label image. Gray16 output labels straight into uint16 so that more than
// 65535 regions surface as labeling.ErrLabelOverflow.
func execute(cfg cfgpkg.Config, base zerolog.Logger) (report, error) {
	log := logging.Component(base, "cli")

	img, format, err := imageio.Load(cfg.Input)
	if err != nil {
		return report{}, err
	}
	src, err := raster.FromImage(img)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	log.Debug().Str("format", format).Int("rows", src.Rows()).Int("cols", src.Cols()).Msg("loaded")

	lb := labeling.New(cfg.LabelingOptions(base)...)

	var (
		regions []labeling.Region
		out     image.Image
	)
	if strings.EqualFold(cfg.Render, cfgpkg.RenderColor) {
		dst, _ := raster.NewGrid[int32](src.Rows(), src.Cols())
		if regions, err = labelAndVerify(cfg, lb, src, dst); err != nil {
			return report{}, err
		}
		out = imageio.Colorize(dst)
	} else {
		dst, _ := raster.NewGrid[uint16](src.Rows(), src.Cols())
		if regions, err = labelAndVerify(cfg, lb, src, dst); err != nil {
			return report{}, err
		}
		out = raster.ToGray16(dst)
	}

	if cfg.Output != "" {
		if err := imageio.Save(cfg.Output, out); err != nil {
			return report{}, err
		}
		log.Debug().Str("out", cfg.Output).Msg("label image written")
	}

	opts := lb.Options()
	return report{
		Input:   cfg.Input,
		Rows:    src.Rows(),
		Cols:    src.Cols(),
		Mode:    opts.Mode.String(),
		Limit:   opts.Limit,
		Runs:    len(lb.Runs()),
		Areas:   summarise(regions),
		Regions: regions,
	}, nil
}

func labelAndVerify[L raster.Label](cfg cfgpkg.Config, lb *labeling.Labeler, src *raster.Grid[uint16], dst *raster.Grid[L]) ([]labeling.Region, error) {
	regions, err := labeling.Exec(lb, src, dst)
	if err != nil {
		return nil, err
	}
	if !cfg.Verify {
		return regions, nil
	}

	gg, err := gridgraph.NewGridGraph(src, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	comps := gg.ConnectedComponents()
	opts := lb.Options()
	if err := errors.Join(
		verify.Against(dst, regions, comps),
		verify.Policy(regions, comps, opts.Mode, opts.Limit),
	); err != nil {
		return nil, err
	}

	return regions, nil
}

func writeReport(path string, rep report, stdout io.Writer) (err error) {
	if path == "" {
		return nil
	}
	if rep.Regions == nil {
		rep.Regions = []labeling.Region{}
	}

	w := stdout
	if path != "-" {
		var f *os.File
		if f, err = os.Create(path); err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}
