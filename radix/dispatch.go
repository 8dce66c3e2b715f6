// Copyright 2025 voracious-sort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package radix

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
)

// DispatchLevel represents the instruction set the kernels are tuned for.
type DispatchLevel int

const (
	// DispatchScalar indicates no wide vector unit was detected.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates AVX2 (256-bit) on amd64.
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512F (512-bit) on amd64.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Block sizes accepted by the counting and emission passes.
const (
	BlockScalar = 1
	BlockQuad   = 4
	BlockOct    = 8
)

// ErrInvalidBlockSize is returned when a block size is not 1, 4 or 8.
var ErrInvalidBlockSize = errors.New("radix: invalid block size")

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// detectedBlock is the block size implied by currentLevel.
// Set by init() in dispatch_*.go files.
var detectedBlock int

// blockSize is the block size the kernels use. Read once per sort call.
var blockSize atomic.Int32

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current target,
// for example "avx2", "neon" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// BlockSize returns the number of elements the counting and emission passes
// process per unrolled step.
func BlockSize() int {
	return int(blockSize.Load())
}

// DetectedBlockSize returns the block size chosen from CPU features, before
// any environment or SetBlockSize override.
func DetectedBlockSize() int {
	return detectedBlock
}

// ValidBlockSize reports whether n is a supported block size.
func ValidBlockSize(n int) bool {
	return n == BlockScalar || n == BlockQuad || n == BlockOct
}

// SetBlockSize overrides the block size and returns a function restoring the
// previous value. Output of every kernel is identical for every valid size;
// only throughput changes.
func SetBlockSize(n int) (restore func(), err error) {
	if !ValidBlockSize(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, n)
	}
	prev := blockSize.Swap(int32(n))
	return func() { blockSize.Store(prev) }, nil
}

// NoUnrollEnv checks if the VSORT_NO_UNROLL environment variable is set.
// When set, the kernels use block size 1 regardless of CPU capabilities.
func NoUnrollEnv() bool {
	val := os.Getenv("VSORT_NO_UNROLL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// BlockEnv returns the block size requested through VSORT_BLOCK, if any.
func BlockEnv() (int, bool) {
	val := os.Getenv("VSORT_BLOCK")
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || !ValidBlockSize(n) {
		return 0, false
	}
	return n, true
}

// blockForLevel maps a dispatch level to its block size.
func blockForLevel(level DispatchLevel) int {
	switch level {
	case DispatchAVX512:
		return BlockOct
	case DispatchAVX2, DispatchNEON:
		return BlockQuad
	default:
		return BlockScalar
	}
}

// applyLevel records the detected level and resolves the effective block
// size from the environment.
func applyLevel(level DispatchLevel) {
	currentLevel = level
	detectedBlock = blockForLevel(level)

	block := detectedBlock
	if n, ok := BlockEnv(); ok {
		block = n
	}
	if NoUnrollEnv() {
		block = BlockScalar
	}
	blockSize.Store(int32(block))
}
