package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lakwet/voracious-sort-sub001/radix"
)

// Report is the TOML document written by bench -report.
type Report struct {
	Target    string    `toml:"target"`
	Block     int       `toml:"block"`
	GOARCH    string    `toml:"goarch"`
	Generated time.Time `toml:"generated"`
	Results   []Result  `toml:"result"`
}

func newReport(results []Result) Report {
	return Report{
		Target:    radix.CurrentName(),
		Block:     radix.BlockSize(),
		GOARCH:    runtime.GOARCH,
		Generated: time.Now().UTC().Truncate(time.Second),
		Results:   results,
	}
}

func writeReport(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return f.Close()
}
