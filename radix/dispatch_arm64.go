//go:build arm64

package radix

import "golang.org/x/sys/cpu"

func init() {
	// Note: cpu.ARM64.HasASIMD is always true for ARMv8+
	if cpu.ARM64.HasASIMD {
		applyLevel(DispatchNEON)
		return
	}
	applyLevel(DispatchScalar)
}
