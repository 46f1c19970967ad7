package telemetry

import "testing"

func TestHistoryPushAndAt(t *testing.T) {
	h := &FrameHistory{}
	h.Push(0.25, 1, 0.016)
	h.Push(0.50, 0, 0.017)

	if h.Len() != 2 {
		t.Fatalf("len = %d, want 2", h.Len())
	}
	newest, ok := h.At(0)
	if !ok || newest.Alpha != 0.50 {
		t.Errorf("At(0) = %+v, want newest sample", newest)
	}
	oldest, ok := h.At(1)
	if !ok || oldest.Alpha != 0.25 {
		t.Errorf("At(1) = %+v, want oldest sample", oldest)
	}
	if _, ok := h.At(2); ok {
		t.Error("At(2) out of range but reported ok")
	}
}

func TestHistoryWraps(t *testing.T) {
	h := &FrameHistory{}
	for i := 0; i < historySize+10; i++ {
		h.Push(float64(i), 1, 0.016)
	}
	if h.Len() != historySize {
		t.Fatalf("len = %d, want %d", h.Len(), historySize)
	}
	newest, _ := h.At(0)
	if newest.Alpha != float64(historySize+9) {
		t.Errorf("newest alpha = %v, want %v", newest.Alpha, float64(historySize+9))
	}
	oldest, _ := h.At(historySize - 1)
	if oldest.Alpha != float64(10) {
		t.Errorf("oldest alpha = %v, want 10", oldest.Alpha)
	}
}

func TestHistoryAvgDT(t *testing.T) {
	h := &FrameHistory{}
	if h.AvgDT() != 0 {
		t.Errorf("empty AvgDT = %v, want 0", h.AvgDT())
	}
	h.Push(0, 1, 0.010)
	h.Push(0, 1, 0.020)
	if avg := h.AvgDT(); avg < 0.0149 || avg > 0.0151 {
		t.Errorf("AvgDT = %v, want 0.015", avg)
	}
}
