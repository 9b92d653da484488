// Package resample implements a bilinear image resampler for 8-bit sRGB
// rasters with a linear alpha channel.
//
// Source and destination images are dense, row-major RGBA8 buffers with no
// padding: pixel (x, y) of a W-wide image lives at byte offset 4*(x+y*W).
// R, G, and B are sRGB-encoded; A is linear (unorm). Resizing decodes each
// channel to linear light, blends bilinearly with edge-clamped addressing,
// and re-encodes.
//
// Four interchangeable kernels implement the same per-pixel contract —
// Scalar, ScalarUnsafe, Vectorized (4-wide), and Wide (8-wide) — and are
// guaranteed to produce byte-identical output for the same input. [Mode]
// selects among them; [Resize] dispatches by mode, and [Benchmark] times a
// kernel across warm-up and measured iterations.
package resample
