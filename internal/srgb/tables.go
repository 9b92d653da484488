// Package srgb provides bit-exact conversion between 8-bit sRGB/unorm codes
// and linear float32, matching the Rygorous fast piecewise sRGB encoder.
package srgb

import (
	"math"
	"sync"
)

// minValBits is the bit pattern of 2^(-13), the lower clamp for the fast
// sRGB encoder. ALMOSTONE is 1 - 1ulp, the upper clamp.
const (
	minValBits    uint32 = uint32(127-13) << 23
	almostOneBits uint32 = 0x3f7fffff
)

var (
	minVal    = math.Float32frombits(minValBits)
	almostOne = math.Float32frombits(almostOneBits)
)

// Tables bundles the decode and encode lookup tables used by the codec.
// The zero value is not usable; construct with newTables or use the
// package-level default via ensureDefault.
type Tables struct {
	decode [256]float32   // srgb8ToF32: 8-bit sRGB code -> linear float
	encode [104]uint32    // fp32ToSrgb8Tab4: bias/scale pairs, see EncodeSRGB8
}

var (
	defaultTables *Tables
	defaultOnce   sync.Once
)

// ensureDefault lazily builds the process-wide table set. Table
// construction happens at most once; every subsequent call returns the
// same immutable *Tables, safe for concurrent readers.
func ensureDefault() *Tables {
	defaultOnce.Do(func() {
		defaultTables = newTables()
	})
	return defaultTables
}

// newTables computes the decode and encode tables from the sRGB transfer
// function. The decode table is exact per 8-bit code. The encode table
// approximates the true curve with a 104-bucket piecewise bias/scale fit,
// following the layout described by the Rygorous fast encoder: each
// bucket covers one 3-mantissa-bit/exponent combination of the clamped
// input range, and is fit at its two bit-exact endpoints so that the
// boundary clamp values (2^-13 and 1-1ulp) round-trip exactly.
func newTables() *Tables {
	t := &Tables{}
	for c := 0; c < 256; c++ {
		t.decode[c] = float32(srgbToLinear(float64(c) / 255.0))
	}
	for idx := 0; idx < len(t.encode); idx++ {
		loBits := minValBits + uint32(idx)<<20
		hiBits := loBits + (255 << 12) + 0xfff
		loVal := linearToSrgb255(float64(math.Float32frombits(loBits)))
		hiVal := linearToSrgb255(float64(math.Float32frombits(hiBits)))

		fullBias := loVal*65536.0 + 32768.0
		fullScale := (hiVal - loVal) * 65536.0 / 255.0

		biasTop := uint32(math.Round(fullBias/512.0)) & 0xffff
		scale := uint32(math.Round(fullScale)) & 0xffff
		t.encode[idx] = biasTop<<16 | scale
	}
	return t
}

// srgbToLinear converts a normalized sRGB sample (0..1) to linear light.
func srgbToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// linearToSrgb255 converts a linear sample to an sRGB-encoded value scaled
// to the 0..255 range, without rounding to an integer.
func linearToSrgb255(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	var s float64
	if x <= 0.0031308 {
		s = x * 12.92
	} else {
		s = 1.055*math.Pow(x, 1.0/2.4) - 0.055
	}
	return s * 255.0
}
