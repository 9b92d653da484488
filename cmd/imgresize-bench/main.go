// Command imgresize-bench compares the four resize kernels against a PNG
// fixture from the command line.
//
// Usage:
//
//	imgresize-bench [options] <input.png>
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/deepteams/resample"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "imgresize-bench: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("imgresize-bench", flag.ContinueOnError)
	dstW := fs.Int("w", 0, "destination width (0 = same as source)")
	dstH := fs.Int("h", 0, "destination height (0 = same as source)")
	iters := fs.Int("iters", 20, "timed iterations per kernel")
	mode := fs.String("mode", "all", "kernel mode: scalar/scalar-unsafe/vectorized/wide/all")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("missing input file")
	}

	in, srcW, srcH, err := loadRGBA(fs.Arg(0))
	if err != nil {
		return err
	}
	if *dstW <= 0 {
		*dstW = srcW
	}
	if *dstH <= 0 {
		*dstH = srcH
	}
	out := make([]byte, (*dstW)*(*dstH)*4)

	modes, err := parseModes(*mode)
	if err != nil {
		return err
	}

	for _, m := range modes {
		result, err := resample.Benchmark(m, in, srcW, srcH, out, *dstW, *dstH, *iters)
		if err != nil {
			return fmt.Errorf("benchmarking %s: %w", m, err)
		}
		fmt.Printf("%-13s %8.4f ms/frame (%d iters, %dx%d -> %dx%d)\n",
			result.Mode, result.MeanMillis, result.Iterations, srcW, srcH, *dstW, *dstH)
	}
	return nil
}

func parseModes(s string) ([]resample.Mode, error) {
	switch s {
	case "all":
		return []resample.Mode{resample.ModeScalar, resample.ModeScalarUnsafe, resample.ModeVectorized, resample.ModeWide}, nil
	case "scalar":
		return []resample.Mode{resample.ModeScalar}, nil
	case "scalar-unsafe":
		return []resample.Mode{resample.ModeScalarUnsafe}, nil
	case "vectorized":
		return []resample.Mode{resample.ModeVectorized}, nil
	case "wide":
		return []resample.Mode{resample.ModeWide}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want scalar/scalar-unsafe/vectorized/wide/all)", s)
	}
}

// loadRGBA decodes a PNG file into a tightly-packed RGBA8 buffer. PNG
// decoding is outside the resampler's scope (spec OUT-OF-SCOPE: image
// file loading); this exists only to get a realistic pixel buffer into
// the benchmark from a shell.
func loadRGBA(path string) (pix []byte, w, h int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	pix = make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bch, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (x + y*w) * 4
			pix[i+0] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(bch >> 8)
			pix[i+3] = byte(a >> 8)
		}
	}
	return pix, w, h, nil
}
