package kernel

import "github.com/deepteams/resample/internal/geometry"

// ResizeRowScalarUnsafe computes byte-for-byte the same output as
// ResizeRowScalar, but hints the compiler that every pixel access in this
// row is already known to be in-bounds (BCE: bounds-check elimination),
// trading a little safety margin for throughput. Semantics must match
// ResizeRowScalar exactly; this file contains no algorithmic difference,
// only an access-pattern one.
func ResizeRowScalarUnsafe(in []byte, srcW, srcH int, out []byte, dstW, dstH, yo int) {
	// Prove full-buffer bounds once so the compiler can drop per-access
	// checks inside the loop below.
	_ = in[srcW*srcH*4-1]
	_ = out[dstW*dstH*4-1]

	row := geometry.ComputeRow(yo, dstH, srcH)
	rowBase11 := row.LowY * srcW * 4
	rowBase12 := row.HighY * srcW * 4
	outRowBase := yo * dstW * 4

	for xo := 0; xo < dstW; xo++ {
		lowX, highX, qx := geometry.ComputeColumn(xo, dstW, srcW)

		i11 := rowBase11 + lowX*4
		i21 := rowBase11 + highX*4
		i12 := rowBase12 + lowX*4
		i22 := rowBase12 + highX*4

		s11 := [4]byte{in[i11], in[i11+1], in[i11+2], in[i11+3]}
		s21 := [4]byte{in[i21], in[i21+1], in[i21+2], in[i21+3]}
		s12 := [4]byte{in[i12], in[i12+1], in[i12+2], in[i12+3]}
		s22 := [4]byte{in[i22], in[i22+1], in[i22+2], in[i22+3]}

		px := blend(s11, s21, s12, s22, qx, row.QY)

		o := outRowBase + xo*4
		out[o+0] = px[0]
		out[o+1] = px[1]
		out[o+2] = px[2]
		out[o+3] = px[3]
	}
}
