package stats

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	if got := Percentile(sorted, 50); got != 6 {
		t.Errorf("Percentile(50) = %f, want 6", got)
	}
	if got := Percentile(sorted, 90); got != 10 {
		t.Errorf("Percentile(90) = %f, want 10", got)
	}
	if got := Percentile(sorted, 0); got != 1 {
		t.Errorf("Percentile(0) = %f, want 1", got)
	}
	if got := Percentile(sorted, 100); got != 10 {
		t.Errorf("Percentile(100) = %f, want 10 (clamped)", got)
	}
}

func TestPercentile_Empty(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile(empty) = %f, want 0", got)
	}
}

func TestNewDistribution(t *testing.T) {
	// Unsorted on purpose.
	d := NewDistribution([]float64{4, 1, 3, 2})
	if d.P25 != 2 {
		t.Errorf("P25 = %f, want 2", d.P25)
	}
	if d.P50 != 3 {
		t.Errorf("P50 = %f, want 3", d.P50)
	}
	if d.P90 != 4 {
		t.Errorf("P90 = %f, want 4", d.P90)
	}
}

func TestNewDistribution_Empty(t *testing.T) {
	d := NewDistribution(nil)
	if d != (Distribution{}) {
		t.Errorf("NewDistribution(nil) = %+v, want zeros", d)
	}
}

func TestComputeTrend_Increasing(t *testing.T) {
	trend := ComputeTrend([]float64{1, 2, 3, 4, 5})
	if math.Abs(trend.Slope-1) > 1e-9 {
		t.Errorf("Slope = %f, want 1", trend.Slope)
	}
	if math.Abs(trend.RSquared-1) > 1e-9 {
		t.Errorf("RSquared = %f, want 1", trend.RSquared)
	}
	if trend.Correlation <= 0 {
		t.Errorf("Correlation = %f, want > 0", trend.Correlation)
	}
}

func TestComputeTrend_Decreasing(t *testing.T) {
	trend := ComputeTrend([]float64{10, 8, 6, 4})
	if trend.Slope >= 0 {
		t.Errorf("Slope = %f, want < 0", trend.Slope)
	}
}

func TestComputeTrend_TooFewPoints(t *testing.T) {
	if trend := ComputeTrend([]float64{1}); trend != (TrendStats{}) {
		t.Errorf("ComputeTrend(one point) = %+v, want zeros", trend)
	}
}
