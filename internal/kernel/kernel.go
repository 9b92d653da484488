// Package kernel implements the four interchangeable resize kernels
// (Scalar, ScalarUnsafe, Vectorized, Wide). Each exposes a single
// row-index entrypoint: it is pure with respect to the input buffer and
// writes only its own disjoint slice of the output buffer, so rows may be
// invoked in any order or concurrently with no synchronization between
// them.
package kernel

import "github.com/deepteams/resample/internal/srgb"

// RowFunc is the shared contract every kernel variant implements.
type RowFunc func(in []byte, srcW, srcH int, out []byte, dstW, dstH, yo int)

func pixelAt(buf []byte, w, x, y int) [4]byte {
	i := (x + y*w) * 4
	return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

func putPixel(buf []byte, w, x, y int, px [4]byte) {
	i := (x + y*w) * 4
	buf[i+0] = px[0]
	buf[i+1] = px[1]
	buf[i+2] = px[2]
	buf[i+3] = px[3]
}

func lerp(a, b, q float32) float32 {
	return a + (b-a)*q
}

// blend performs the five-step per-pixel bilinear blend in linear light:
// decode RGB via the sRGB table, decode A via unorm, lerp each channel
// independently in X then Y, and re-encode.
func blend(s11, s21, s12, s22 [4]byte, qx, qy float32) [4]byte {
	var out [4]byte
	for c := 0; c < 3; c++ {
		v11 := srgb.DecodeSRGB8(s11[c])
		v21 := srgb.DecodeSRGB8(s21[c])
		v12 := srgb.DecodeSRGB8(s12[c])
		v22 := srgb.DecodeSRGB8(s22[c])
		l1 := lerp(v11, v21, qx)
		l2 := lerp(v12, v22, qx)
		out[c] = srgb.EncodeSRGB8(lerp(l1, l2, qy))
	}
	a11 := srgb.DecodeUnorm8(s11[3])
	a21 := srgb.DecodeUnorm8(s21[3])
	a12 := srgb.DecodeUnorm8(s12[3])
	a22 := srgb.DecodeUnorm8(s22[3])
	al1 := lerp(a11, a21, qx)
	al2 := lerp(a12, a22, qx)
	out[3] = srgb.EncodeUnorm8(lerp(al1, al2, qy))
	return out
}
