package kernel

import "github.com/deepteams/resample/internal/geometry"

// ResizeRowScalar resizes one output row using plain, bounds-checked scalar
// arithmetic: one pixel at a time, through the shared scalar codec.
func ResizeRowScalar(in []byte, srcW, srcH int, out []byte, dstW, dstH, yo int) {
	row := geometry.ComputeRow(yo, dstH, srcH)
	for xo := 0; xo < dstW; xo++ {
		lowX, highX, qx := geometry.ComputeColumn(xo, dstW, srcW)
		s11 := pixelAt(in, srcW, lowX, row.LowY)
		s21 := pixelAt(in, srcW, highX, row.LowY)
		s12 := pixelAt(in, srcW, lowX, row.HighY)
		s22 := pixelAt(in, srcW, highX, row.HighY)
		putPixel(out, dstW, xo, yo, blend(s11, s21, s12, s22, qx, row.QY))
	}
}
