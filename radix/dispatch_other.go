//go:build !amd64 && !arm64

package radix

func init() {
	// Other architectures run the scalar schedule.
	applyLevel(DispatchScalar)
}
