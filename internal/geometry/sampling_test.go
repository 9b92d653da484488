package geometry

import "testing"

func TestComputeColumnIdentity(t *testing.T) {
	// Equal-size resizing should sample each output column exactly at its
	// matching input column, with zero fractional offset. The high neighbor
	// is the next column (clamped at the right edge) and carries zero weight.
	for i := 0; i < 5; i++ {
		low, high, q := ComputeColumn(i, 5, 5)
		wantHigh := i + 1
		if wantHigh > 4 {
			wantHigh = 4
		}
		if low != i || high != wantHigh {
			t.Errorf("col %d: low=%d high=%d, want %d,%d", i, low, high, i, wantHigh)
		}
		if q != 0 {
			t.Errorf("col %d: q=%v, want 0", i, q)
		}
	}
}

func TestComputeColumnSinglePixelSource(t *testing.T) {
	// A 1-wide source must clamp every neighbor to column 0 regardless of
	// destination width.
	for dstW := 1; dstW <= 8; dstW++ {
		for xo := 0; xo < dstW; xo++ {
			low, high, _ := ComputeColumn(xo, dstW, 1)
			if low != 0 || high != 0 {
				t.Errorf("dstW=%d xo=%d: low=%d high=%d, want 0,0", dstW, xo, low, high)
			}
		}
	}
}

func TestComputeColumnClampsAtLeftEdge(t *testing.T) {
	// Upscaling (dst > src) makes the first output column's source
	// coordinate negative; both neighbors must still resolve in-bounds.
	low, high, q := ComputeColumn(0, 4, 1)
	if low < 0 || low > 0 || high < 0 || high > 0 {
		t.Errorf("low=%d high=%d out of [0,0] bounds", low, high)
	}
	if q < 0 {
		t.Errorf("q=%v should not be negative-clamped away", q)
	}
}

func TestComputeColumnClampsAtRightEdge(t *testing.T) {
	low, high, _ := ComputeColumn(3, 4, 1)
	if low != 0 || high != 0 {
		t.Errorf("low=%d high=%d, want 0,0", low, high)
	}
}

func TestComputeRowMatchesColumnShape(t *testing.T) {
	r := ComputeRow(2, 10, 5)
	low, high, q := ComputeColumn(2, 10, 5)
	if r.LowY != low || r.HighY != high || r.QY != q {
		t.Errorf("ComputeRow = %+v, want low=%d high=%d q=%v", r, low, high, q)
	}
}

func TestComputeAxisNeverOutOfRange(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 100}, {100, 1}, {7, 23}, {257, 900}} {
		srcDim, dstDim := dims[0], dims[1]
		for out := 0; out < dstDim; out++ {
			low, high, _ := ComputeColumn(out, dstDim, srcDim)
			if low < 0 || low >= srcDim || high < 0 || high >= srcDim {
				t.Fatalf("srcDim=%d dstDim=%d out=%d: low=%d high=%d out of range", srcDim, dstDim, out, low, high)
			}
		}
	}
}
