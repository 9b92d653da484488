package resample

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/deepteams/resample/internal/cpufeature"
	"github.com/deepteams/resample/internal/kernel"
)

// Mode selects which kernel variant the dispatcher invokes.
type Mode int

const (
	// ModeScalar uses bounds-checked, one-pixel-at-a-time scalar code.
	ModeScalar Mode = iota
	// ModeScalarUnsafe uses scalar arithmetic with bounds checks elided.
	ModeScalarUnsafe
	// ModeVectorized processes 4 output columns per step.
	ModeVectorized
	// ModeWide processes 8 output columns per step. Falls back to
	// ModeVectorized at dispatch time if the running CPU lacks 8-wide
	// SIMD (see cpufeature.HasWideSIMD).
	ModeWide
)

func (m Mode) String() string {
	switch m {
	case ModeScalar:
		return "scalar"
	case ModeScalarUnsafe:
		return "scalar-unsafe"
	case ModeVectorized:
		return "vectorized"
	case ModeWide:
		return "wide"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func rowFuncFor(mode Mode) kernel.RowFunc {
	switch mode {
	case ModeScalar:
		return kernel.ResizeRowScalar
	case ModeScalarUnsafe:
		return kernel.ResizeRowScalarUnsafe
	case ModeVectorized:
		return kernel.ResizeRowVectorized
	case ModeWide:
		if !cpufeature.HasWideSIMD() {
			return kernel.ResizeRowVectorized
		}
		return kernel.ResizeRowWide
	default:
		return kernel.ResizeRowScalar
	}
}

// Resize resizes in (srcW x srcH, RGBA8) into out (dstW x dstH, RGBA8)
// using the kernel selected by mode. in and out must not alias. Rows are
// computed in parallel with no ordering guarantee between them; Resize
// blocks until every row has been written.
func Resize(mode Mode, in []byte, srcW, srcH int, out []byte, dstW, dstH int) error {
	if err := validateDims(srcW, srcH, dstW, dstH); err != nil {
		return err
	}
	if err := validateBuffers(in, srcW, srcH, out, dstW, dstH); err != nil {
		return err
	}
	runRows(rowFuncFor(mode), in, srcW, srcH, out, dstW, dstH)
	return nil
}

// ResizeScalar resizes using the Scalar kernel.
func ResizeScalar(in []byte, srcW, srcH int, out []byte, dstW, dstH int) error {
	return Resize(ModeScalar, in, srcW, srcH, out, dstW, dstH)
}

// ResizeScalarUnsafe resizes using the ScalarUnsafe kernel.
func ResizeScalarUnsafe(in []byte, srcW, srcH int, out []byte, dstW, dstH int) error {
	return Resize(ModeScalarUnsafe, in, srcW, srcH, out, dstW, dstH)
}

// ResizeVectorized resizes using the 4-wide Vectorized kernel.
func ResizeVectorized(in []byte, srcW, srcH int, out []byte, dstW, dstH int) error {
	return Resize(ModeVectorized, in, srcW, srcH, out, dstW, dstH)
}

// ResizeWide resizes using the 8-wide Wide kernel (or its Vectorized
// fallback on machines without wide SIMD).
func ResizeWide(in []byte, srcW, srcH int, out []byte, dstW, dstH int) error {
	return Resize(ModeWide, in, srcW, srcH, out, dstW, dstH)
}

// runRows invokes fn once per output row, across a worker pool sized to
// GOMAXPROCS (capped so tiny images don't pay goroutine overhead for no
// benefit). Each row's work is independent of every other row's, so
// workers claim rows off a shared atomic cursor with no other
// synchronization needed.
func runRows(fn kernel.RowFunc, in []byte, srcW, srcH int, out []byte, dstW, dstH int) {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > dstH {
		numWorkers = dstH
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers == 1 {
		for yo := 0; yo < dstH; yo++ {
			fn(in, srcW, srcH, out, dstW, dstH, yo)
		}
		return
	}

	var nextRow atomic.Int64
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for {
				yo := int(nextRow.Add(1)) - 1
				if yo >= dstH {
					return
				}
				fn(in, srcW, srcH, out, dstW, dstH, yo)
			}
		}()
	}
	wg.Wait()
}
