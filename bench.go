package resample

import (
	"fmt"
	"time"
)

// warmupIterations is the fixed number of untimed resizes run before
// measurement begins, to let the allocator, caches, and (where
// applicable) the Go scheduler settle into a steady state. This count is
// contractual: it shapes the numbers Benchmark reports, and keeps
// cross-mode comparisons fair.
const warmupIterations = 10

// BenchmarkResult is the outcome of timing one kernel mode over a fixed
// number of full-image resizes.
type BenchmarkResult struct {
	Mode       Mode
	Iterations int
	MeanMillis float64
}

// Benchmark times mode's kernel across warmupIterations untimed runs
// followed by iters timed runs of a full in -> out resize, and returns
// the mean wall-clock milliseconds per resize. The same in/out buffers
// are reused for every iteration; callers should not read out until
// Benchmark returns.
func Benchmark(mode Mode, in []byte, srcW, srcH int, out []byte, dstW, dstH, iters int) (BenchmarkResult, error) {
	if err := validateDims(srcW, srcH, dstW, dstH); err != nil {
		return BenchmarkResult{}, err
	}
	if err := validateBuffers(in, srcW, srcH, out, dstW, dstH); err != nil {
		return BenchmarkResult{}, err
	}
	if iters < 1 {
		return BenchmarkResult{}, fmt.Errorf("resample: validating iterations (iters=%d): %w", iters, ErrBadIterations)
	}

	fn := rowFuncFor(mode)

	for i := 0; i < warmupIterations; i++ {
		runRows(fn, in, srcW, srcH, out, dstW, dstH)
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		runRows(fn, in, srcW, srcH, out, dstW, dstH)
	}
	elapsed := time.Since(start)

	return BenchmarkResult{
		Mode:       mode,
		Iterations: iters,
		MeanMillis: elapsed.Seconds() * 1000.0 / float64(iters),
	}, nil
}
