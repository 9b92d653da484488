package resample

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Resize, ResizeScalar/.../ResizeWide, and
// Benchmark. Use errors.Is to test for a specific kind; every returned
// error wraps one of these with %w, so wrapping survives the check.
var (
	// ErrBadDimensions is returned when any of the source or destination
	// width/height is less than 1.
	ErrBadDimensions = errors.New("dimensions must be positive")

	// ErrBufferMismatch is returned when a pixel buffer's length does not
	// equal width*height*4.
	ErrBufferMismatch = errors.New("buffer length does not match width*height*4")

	// ErrBadIterations is returned by Benchmark when iters < 1.
	ErrBadIterations = errors.New("iterations must be at least 1")
)

func validateDims(srcW, srcH, dstW, dstH int) error {
	if srcW < 1 || srcH < 1 || dstW < 1 || dstH < 1 {
		return fmt.Errorf("resample: validating dimensions (srcW=%d srcH=%d dstW=%d dstH=%d): %w",
			srcW, srcH, dstW, dstH, ErrBadDimensions)
	}
	return nil
}

func validateBuffers(in []byte, srcW, srcH int, out []byte, dstW, dstH int) error {
	wantIn := int64(srcW) * int64(srcH) * 4
	if int64(len(in)) != wantIn {
		return fmt.Errorf("resample: validating input buffer (len=%d, want %d): %w",
			len(in), wantIn, ErrBufferMismatch)
	}
	wantOut := int64(dstW) * int64(dstH) * 4
	if int64(len(out)) != wantOut {
		return fmt.Errorf("resample: validating output buffer (len=%d, want %d): %w",
			len(out), wantOut, ErrBufferMismatch)
	}
	return nil
}
