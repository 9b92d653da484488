// Package geometry computes the bilinear sampling geometry shared by every
// resize kernel: the mapping from an output pixel center back to the four
// neighboring input pixels and their interpolation factors, with
// edge-clamped addressing.
package geometry

import "math"

// Row holds the Y-axis geometry for one output row. It is invariant across
// every output column in that row, so kernels compute it once per row
// rather than once per pixel.
type Row struct {
	LowY, HighY int
	QY          float32
}

// ComputeRow computes the Y-axis sampling geometry for output row yo.
func ComputeRow(yo, dstH, srcH int) Row {
	lowY, highY, qy := computeAxis(yo, dstH, srcH)
	return Row{LowY: lowY, HighY: highY, QY: qy}
}

// ComputeColumn computes the X-axis sampling geometry for output column xo.
func ComputeColumn(xo, dstW, srcW int) (lowX, highX int, qx float32) {
	return computeAxis(xo, dstW, srcW)
}

// computeAxis implements the shared 1-D geometry: normalize the output
// coordinate to [0,1), map it into source pixel space centered on pixel
// centers, take the two bracketing integer neighbors, and clamp each
// independently to the valid source range. qx/qy themselves are never
// re-clamped: whenever a neighbor is clamped, both neighbors resolve to the
// same edge pixel, so q has no effect there and the edge pixel is repeated
// (clamp-to-edge filtering).
func computeAxis(outPos, dstDim, srcDim int) (low, high int, q float32) {
	u := (float64(outPos) + 0.5) / float64(dstDim)
	s := u*float64(srcDim) - 0.5
	lowF := math.Floor(s)
	lowRaw := int(lowF)
	highRaw := lowRaw + 1
	q = float32(s - lowF)
	low = clamp(lowRaw, 0, srcDim-1)
	high = clamp(highRaw, 0, srcDim-1)
	return low, high, q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
