package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/lakwet/voracious-sort-sub001/radix/contrib/gen"
)

// errInvalidConfig is wrapped by every configuration validation error.
var errInvalidConfig = errors.New("invalid configuration")

// runOptions is the configuration shared by bench and verify.
type runOptions struct {
	Sizes         []int
	Distributions []string
	Reps          int
	Seed          uint64
	Workers       int
	Report        string
}

// loadRunOptions reads and validates runOptions from v.
func loadRunOptions(v *viper.Viper) (runOptions, error) {
	sizes, err := toInts(v.Get("sizes"))
	if err != nil {
		return runOptions{}, err
	}
	opts := runOptions{
		Sizes:         sizes,
		Distributions: toStrings(v.Get("dist")),
		Reps:          v.GetInt("reps"),
		Seed:          v.GetUint64("seed"),
		Workers:       v.GetInt("workers"),
		Report:        v.GetString("report"),
	}
	if len(opts.Distributions) == 0 {
		opts.Distributions = gen.Names()
	}
	return opts, opts.validate()
}

func (o runOptions) validate() error {
	if len(o.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", errInvalidConfig)
	}
	for _, n := range o.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", errInvalidConfig, n)
		}
	}
	if len(o.Distributions) == 0 {
		return fmt.Errorf("%w: no distributions", errInvalidConfig)
	}
	for _, d := range o.Distributions {
		if _, err := gen.Lookup(d); err != nil {
			return fmt.Errorf("%w: %w", errInvalidConfig, err)
		}
	}
	if o.Reps < 1 {
		return fmt.Errorf("%w: reps must be at least 1, got %d", errInvalidConfig, o.Reps)
	}
	return nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Compact(parts)
}

// toInts accepts a comma-separated string (flags, environment) or a TOML
// array.
func toInts(val any) ([]int, error) {
	switch v := val.(type) {
	case nil:
		return nil, nil
	case []int:
		return v, nil
	case string:
		var out []int
		for _, p := range splitList(v) {
			n, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("%w: size %q: %w", errInvalidConfig, p, err)
			}
			out = append(out, n)
		}
		return out, nil
	case []any:
		out := make([]int, 0, len(v))
		for _, e := range v {
			switch n := e.(type) {
			case int:
				out = append(out, n)
			case int64:
				out = append(out, int(n))
			default:
				return nil, fmt.Errorf("%w: size %v is not an integer", errInvalidConfig, e)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: sizes has type %T", errInvalidConfig, val)
	}
}

// toStrings is toInts for string lists.
func toStrings(val any) []string {
	switch v := val.(type) {
	case string:
		return splitList(v)
	case []string:
		return v
	case []any:
		return lo.Map(v, func(e any, _ int) string { return fmt.Sprint(e) })
	default:
		return nil
	}
}
