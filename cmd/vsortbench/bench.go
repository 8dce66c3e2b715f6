package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lakwet/voracious-sort-sub001/radix"
	"github.com/lakwet/voracious-sort-sub001/radix/contrib/gen"
	"github.com/lakwet/voracious-sort-sub001/radix/contrib/sort"
	"github.com/lakwet/voracious-sort-sub001/radix/contrib/workerpool"
)

// parallelFillThreshold is the size above which uniform inputs are generated
// by the worker pool.
const parallelFillThreshold = 4 * gen.ChunkSize

func newBenchCmd(v *viper.Viper, logger func() *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the 16-bit sort over a size sweep of each distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadRunOptions(v)
			if err != nil {
				return err
			}
			results, err := runBench(opts, logger())
			if err != nil {
				return err
			}
			if err := printResults(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if opts.Report != "" {
				if err := writeReport(opts.Report, newReport(results)); err != nil {
					return err
				}
				logger().Info("wrote report", "path", opts.Report, "results", len(results))
			}
			return nil
		},
	}

	addRunFlags(cmd, "1000,100000,1000000")
	cmd.Flags().Int("reps", 5, "Timed repetitions per case")
	cmd.Flags().Int("workers", 0, "Workers for input generation (0: GOMAXPROCS)")
	cmd.Flags().String("report", "", "Write results to this TOML file")
	return cmd
}

// addRunFlags registers the flags shared by bench and verify.
func addRunFlags(cmd *cobra.Command, defaultSizes string) {
	cmd.Flags().String("sizes", defaultSizes, "Comma-separated input sizes")
	cmd.Flags().String("dist", "", "Comma-separated distributions (default: all)")
	cmd.Flags().Uint64("seed", 1, "Seed for randomized distributions")
}

// Result is the timing of one (distribution, size) case.
type Result struct {
	Distribution string  `toml:"distribution"`
	Size         int     `toml:"size"`
	Reps         int     `toml:"reps"`
	MinNs        int64   `toml:"min_ns"`
	MeanNs       int64   `toml:"mean_ns"`
	NsPerElem    float64 `toml:"ns_per_elem"`
	MelemPerSec  float64 `toml:"melem_per_sec"`
}

func runBench(opts runOptions, logger *slog.Logger) ([]Result, error) {
	pool := workerpool.New(opts.Workers)
	defer pool.Close()

	var results []Result
	for _, name := range opts.Distributions {
		g, err := gen.Lookup(name)
		if err != nil {
			return nil, err
		}
		for _, n := range opts.Sizes {
			ref := generate(pool, name, g, n, opts.Seed)
			r, err := timeSort(ref, opts.Reps)
			if err != nil {
				return nil, fmt.Errorf("%s n=%d: %w", name, n, err)
			}
			r.Distribution = name
			logger.Debug("bench case", "dist", name, "n", n, "min_ns", r.MinNs)
			results = append(results, r)
		}
	}
	return results, nil
}

// generate returns the reference input for one case.
func generate(pool *workerpool.Pool, name string, g gen.Generator16, n int, seed uint64) []uint16 {
	if name == "uniform" && n >= parallelFillThreshold {
		return gen.UniformParallel16(pool, n, seed)
	}
	return g(n, seed)
}

// timeSort sorts a fresh copy of ref reps times and reports the timings.
func timeSort(ref []uint16, reps int) (Result, error) {
	data := make([]uint16, len(ref))
	durations := make([]time.Duration, reps)
	for i := range reps {
		copy(data, ref)
		start := time.Now()
		sort.Sort(data)
		durations[i] = time.Since(start)

		if i == 0 && !sort.IsSorted(data) {
			return Result{}, errNotSorted
		}
	}

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	mean := total / time.Duration(reps)
	best := slices.Min(durations)

	r := Result{
		Size:   len(ref),
		Reps:   reps,
		MinNs:  best.Nanoseconds(),
		MeanNs: mean.Nanoseconds(),
	}
	if len(ref) > 0 {
		r.NsPerElem = float64(best.Nanoseconds()) / float64(len(ref))
	}
	if best > 0 {
		r.MelemPerSec = float64(len(ref)) / best.Seconds() / 1e6
	}
	return r, nil
}

func printResults(w io.Writer, results []Result) error {
	fmt.Fprintf(w, "target: %s, block: %d, goarch: %s\n\n", radix.CurrentName(), radix.BlockSize(), runtime.GOARCH)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DIST\tN\tMIN\tMEAN\tNS/ELEM\tMELEM/S\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.3f\t%.1f\t\n",
			r.Distribution, r.Size,
			time.Duration(r.MinNs), time.Duration(r.MeanNs),
			r.NsPerElem, r.MelemPerSec)
	}
	return tw.Flush()
}
