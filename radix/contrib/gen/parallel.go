package gen

import "github.com/lakwet/voracious-sort-sub001/radix/contrib/workerpool"

// ChunkSize is the number of elements UniformParallel16 draws from one
// seeded stream.
const ChunkSize = 1 << 16

// UniformParallel16 is Uniform16 for large n, filled by the pool. Chunk c is
// drawn from its own stream seeded by (seed, c), so the output depends only
// on n and seed, not on the number of workers.
func UniformParallel16(p *workerpool.Pool, n int, seed uint64) []uint16 {
	data := make([]uint16, n)
	chunks := (n + ChunkSize - 1) / ChunkSize
	p.ParallelForAtomic(chunks, func(c int) {
		start := c * ChunkSize
		end := min(start+ChunkSize, n)
		r := newRand(seed + uint64(c)*0x2545f4914f6cdd1d)
		for i := start; i < end; i++ {
			data[i] = uint16(r.Uint32())
		}
	})
	return data
}
