package trend

import (
	"math"
	"testing"

	"github.com/ngmaloney/pressure-trend/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		before float64
		after  float64
		want   models.Direction
	}{
		{name: "rising", before: 29.90, after: 29.95, want: models.Rising},
		{name: "falling", before: 29.95, after: 29.90, want: models.Falling},
		{name: "unchanged", before: 29.92, after: 29.92, want: models.Steady},
		{name: "small rise is noise", before: 29.920, after: 29.925, want: models.Steady},
		{name: "small fall is noise", before: 29.925, after: 29.920, want: models.Steady},
		{name: "exactly threshold is steady", before: 0, after: 0.01, want: models.Steady},
		{name: "exactly negative threshold is steady", before: 0.01, after: 0, want: models.Steady},
		{name: "NaN falls through to steady", before: math.NaN(), after: 30, want: models.Steady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.before, tt.after); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.before, tt.after, got, tt.want)
			}
		})
	}
}

func TestClassifyThreshold_Boundaries(t *testing.T) {
	const eps = 1e-6
	thresholds := []float64{0.001, 0.01, 0.5, 3}
	bases := []float64{0, 1, 29.92, 1013.2}

	for _, th := range thresholds {
		for _, x := range bases {
			if got := ClassifyThreshold(x, x+th+eps*(1+x), th); got != models.Rising {
				t.Errorf("ClassifyThreshold(%v, %v+t+e, %v) = %v, want Rising", x, x, th, got)
			}
			if got := ClassifyThreshold(x, x-th-eps*(1+x), th); got != models.Falling {
				t.Errorf("ClassifyThreshold(%v, %v-t-e, %v) = %v, want Falling", x, x, th, got)
			}
			if got := ClassifyThreshold(x, x, th); got != models.Steady {
				t.Errorf("ClassifyThreshold(%v, %v, %v) = %v, want Steady", x, x, th, got)
			}
		}
	}
}

func TestReducePeriod(t *testing.T) {
	tests := []struct {
		name    string
		seg3to2 models.Direction
		seg2to1 models.Direction
		inHg3h  float64
		inHg1h  float64
		want    models.Direction
	}{
		{name: "agree rising", seg3to2: models.Rising, seg2to1: models.Rising, want: models.Rising},
		{name: "agree steady", seg3to2: models.Steady, seg2to1: models.Steady, want: models.Steady},
		{name: "steady then falling", seg3to2: models.Steady, seg2to1: models.Falling, want: models.Falling},
		{name: "rising then steady", seg3to2: models.Rising, seg2to1: models.Steady, want: models.Rising},
		{name: "disagree, net fall", seg3to2: models.Rising, seg2to1: models.Falling, inHg3h: 30.00, inHg1h: 29.98, want: models.Falling},
		{name: "disagree, net rise", seg3to2: models.Falling, seg2to1: models.Rising, inHg3h: 29.90, inHg1h: 29.95, want: models.Rising},
		{name: "disagree, net within noise", seg3to2: models.Rising, seg2to1: models.Falling, inHg3h: 30.00, inHg1h: 29.995, want: models.Steady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reducePeriod(tt.seg3to2, tt.seg2to1, tt.inHg3h, tt.inHg1h)
			if got != tt.want {
				t.Errorf("reducePeriod(%v, %v) = %v, want %v", tt.seg3to2, tt.seg2to1, got, tt.want)
			}
		})
	}
}
