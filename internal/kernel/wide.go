package kernel

import "github.com/deepteams/resample/internal/geometry"

const vectorWidth8 = 8

// ResizeRowWide resizes one output row processing 8 consecutive output
// columns per step, the same shape as ResizeRowVectorized but twice as
// wide. Tail handling uses an explicit in-bounds mask per lane
// (lane < dstW-xo) rather than relying on over-reading past dstW and
// discarding: masked-out lanes have their column index re-clamped to
// dstW-1 before any gather, so the scalar fallback never reads an
// out-of-range neighbor even when the lane's result will be discarded.
// Masked lanes are never stored.
func ResizeRowWide(in []byte, srcW, srcH int, out []byte, dstW, dstH, yo int) {
	row := geometry.ComputeRow(yo, dstH, srcH)

	for xo := 0; xo < dstW; xo += vectorWidth8 {
		remaining := dstW - xo
		n := vectorWidth8
		if remaining < n {
			n = remaining
		}

		var lowX, highX [vectorWidth8]int
		var qx [vectorWidth8]float32
		for lane := 0; lane < vectorWidth8; lane++ {
			col := xo + lane
			mask := lane < n
			if !mask {
				// Re-clamp the masked-out lane's column so the gather
				// below stays in-bounds; its result is never stored.
				col = dstW - 1
			}
			lowX[lane], highX[lane], qx[lane] = geometry.ComputeColumn(col, dstW, srcW)
		}

		var s11, s21, s12, s22 [vectorWidth8][4]byte
		for lane := 0; lane < vectorWidth8; lane++ {
			s11[lane] = pixelAt(in, srcW, lowX[lane], row.LowY)
			s21[lane] = pixelAt(in, srcW, highX[lane], row.LowY)
			s12[lane] = pixelAt(in, srcW, lowX[lane], row.HighY)
			s22[lane] = pixelAt(in, srcW, highX[lane], row.HighY)
		}

		for lane := 0; lane < n; lane++ {
			px := blend(s11[lane], s21[lane], s12[lane], s22[lane], qx[lane], row.QY)
			putPixel(out, dstW, xo+lane, yo, px)
		}
	}
}
