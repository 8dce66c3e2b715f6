package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lakwet/voracious-sort-sub001/radix"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected dispatch target and block size",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "goarch:         %s\n", runtime.GOARCH)
			fmt.Fprintf(w, "target:         %s\n", radix.CurrentName())
			fmt.Fprintf(w, "detected block: %d\n", radix.DetectedBlockSize())
			fmt.Fprintf(w, "block:          %d\n", radix.BlockSize())
			fmt.Fprintf(w, "key widths:     %d %d %d %d %d\n",
				radix.KeyWidth[uint8](), radix.KeyWidth[uint16](), radix.KeyWidth[uint32](),
				radix.KeyWidth[uint64](), radix.KeyWidth[radix.Uint128]())
			return nil
		},
	}
}
