package main

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lakwet/voracious-sort-sub001/radix"
	"github.com/lakwet/voracious-sort-sub001/radix/contrib/gen"
	"github.com/lakwet/voracious-sort-sub001/radix/contrib/sort"
)

var (
	errNotSorted  = errors.New("output not sorted")
	errVerifyFail = errors.New("verification failed")
	allBlockSizes = []int{radix.BlockScalar, radix.BlockQuad, radix.BlockOct}
)

func newVerifyCmd(v *viper.Viper, logger func() *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the sort properties over every distribution and size",
		Long: `verify sorts each (distribution, size) case and checks that the output
keeps the length and multiset of the input, is non-decreasing, is unchanged by
a second sort, is identical across repeated runs and across block sizes 1, 4
and 8.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadRunOptions(v)
			if err != nil {
				return err
			}
			err = runVerify(opts, logger())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d distributions x %d sizes\n",
				len(opts.Distributions), len(opts.Sizes))
			return nil
		},
	}

	addRunFlags(cmd, "0,1,2,3,1000,65536,1000000")
	cmd.Flags().Int("reps", 1, "Repeated runs compared for determinism")
	return cmd
}

func runVerify(opts runOptions, logger *slog.Logger) error {
	var errs []error
	for _, name := range opts.Distributions {
		g, err := gen.Lookup(name)
		if err != nil {
			return err
		}
		for _, n := range opts.Sizes {
			input := g(n, opts.Seed)
			if err := verifyCase(input, opts.Reps); err != nil {
				logger.Warn("verify failed", "dist", name, "n", n, "error", err)
				errs = append(errs, fmt.Errorf("%s n=%d: %w", name, n, err))
				continue
			}
			logger.Debug("verify ok", "dist", name, "n", n)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", errVerifyFail, errors.Join(errs...))
	}
	return nil
}

// verifyCase runs every property check on one input and joins the failures.
func verifyCase(input []uint16, reps int) error {
	want := lo.CountValues(input)
	var (
		first     []uint16
		haveFirst bool
		errs      []error
	)

	for _, block := range allBlockSizes {
		restore, err := radix.SetBlockSize(block)
		if err != nil {
			return err
		}
		for range max(reps, 1) {
			data := slices.Clone(input)
			sort.Sort(data)

			if !haveFirst {
				first, haveFirst = data, true
				errs = append(errs, checkOutput(input, data, want)...)
				continue
			}
			if !slices.Equal(data, first) {
				errs = append(errs, fmt.Errorf("block %d: output differs from first run", block))
			}
		}
		restore()
	}

	again := slices.Clone(first)
	sort.Sort(again)
	if !slices.Equal(again, first) {
		errs = append(errs, errors.New("second sort changed the output"))
	}
	return errors.Join(errs...)
}

// checkOutput checks length, multiset and order of one sorted output.
func checkOutput(input, data []uint16, want map[uint16]int) []error {
	var errs []error
	if len(data) != len(input) {
		errs = append(errs, fmt.Errorf("length %d, want %d", len(data), len(input)))
	}
	if !maps.Equal(lo.CountValues(data), want) {
		errs = append(errs, errors.New("multiset of values changed"))
	}
	if !sort.IsSorted(data) {
		errs = append(errs, errNotSorted)
	}
	return errs
}
