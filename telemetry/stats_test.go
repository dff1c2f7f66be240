package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	values := []float64{5, 1, 3, 2, 4}
	s := summarize(values)

	if s.mean != 3 {
		t.Errorf("mean = %v, want 3", s.mean)
	}
	// Empirical quantiles return sample elements.
	if s.p50 < 2 || s.p50 > 4 {
		t.Errorf("p50 = %v, want a central element", s.p50)
	}
	if s.p10 > s.p50 || s.p50 > s.p90 {
		t.Errorf("quantiles not monotone: %v %v %v", s.p10, s.p50, s.p90)
	}
	if s.p90 > 5 || s.p10 < 1 {
		t.Errorf("quantiles outside sample range: %v %v", s.p10, s.p90)
	}
	if math.Abs(s.std-math.Sqrt(2.5)) > 1e-9 {
		t.Errorf("std = %v, want sqrt(2.5)", s.std)
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	if s := summarize(nil); s != (distSummary{}) {
		t.Errorf("empty sample = %+v, want zeros", s)
	}

	s := summarize([]float64{7})
	if s.mean != 7 || s.p10 != 7 || s.p50 != 7 || s.p90 != 7 {
		t.Errorf("single sample = %+v, want all 7", s)
	}
	if s.std != 0 {
		t.Errorf("single-sample std = %v, want 0", s.std)
	}
}
