package resample

import (
	"errors"
	"testing"
)

func TestBenchmarkBadIterations(t *testing.T) {
	in := make([]byte, 4)
	out := make([]byte, 4)
	if _, err := Benchmark(ModeScalar, in, 1, 1, out, 1, 1, 0); !errors.Is(err, ErrBadIterations) {
		t.Errorf("iters=0: err = %v, want ErrBadIterations", err)
	}
	if _, err := Benchmark(ModeScalar, in, 1, 1, out, 1, 1, -3); !errors.Is(err, ErrBadIterations) {
		t.Errorf("iters=-3: err = %v, want ErrBadIterations", err)
	}
}

func TestBenchmarkValidatesDimsBeforeIterations(t *testing.T) {
	in := make([]byte, 4)
	out := make([]byte, 4)
	if _, err := Benchmark(ModeScalar, in, 0, 1, out, 1, 1, 0); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("err = %v, want ErrBadDimensions", err)
	}
}

func TestBenchmarkReportsMeanOverIterations(t *testing.T) {
	srcW, srcH, dstW, dstH := 16, 16, 32, 32
	in := make([]byte, srcW*srcH*4)
	out := make([]byte, dstW*dstH*4)

	const iters = 3
	result, err := Benchmark(ModeScalar, in, srcW, srcH, out, dstW, dstH, iters)
	if err != nil {
		t.Fatal(err)
	}
	if result.Iterations != iters {
		t.Errorf("Iterations = %d, want %d", result.Iterations, iters)
	}
	if result.Mode != ModeScalar {
		t.Errorf("Mode = %v, want %v", result.Mode, ModeScalar)
	}
	if result.MeanMillis < 0 {
		t.Errorf("MeanMillis = %v, want >= 0", result.MeanMillis)
	}
}

func BenchmarkResizeScalar(b *testing.B) {
	benchmarkMode(b, ModeScalar)
}

func BenchmarkResizeScalarUnsafe(b *testing.B) {
	benchmarkMode(b, ModeScalarUnsafe)
}

func BenchmarkResizeVectorized(b *testing.B) {
	benchmarkMode(b, ModeVectorized)
}

func BenchmarkResizeWide(b *testing.B) {
	benchmarkMode(b, ModeWide)
}

func benchmarkMode(b *testing.B, mode Mode) {
	srcW, srcH, dstW, dstH := 256, 256, 512, 512
	in := make([]byte, srcW*srcH*4)
	out := make([]byte, dstW*dstH*4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Resize(mode, in, srcW, srcH, out, dstW, dstH); err != nil {
			b.Fatal(err)
		}
	}
}
