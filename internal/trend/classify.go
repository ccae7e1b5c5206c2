// Package trend computes barometric pressure tendency from a current reading and
// three hourly historical readings.
package trend

import "github.com/ngmaloney/pressure-trend/internal/models"

// DefaultThreshold is the smallest change, in inHg, counted as rising or falling
// between two consecutive readings.
const DefaultThreshold = 0.01

// Classify returns the direction from before to after using DefaultThreshold.
// Both values must share a unit; the threshold is calibrated for inHg.
func Classify(before, after float64) models.Direction {
	return ClassifyThreshold(before, after, DefaultThreshold)
}

// ClassifyThreshold returns Rising when after exceeds before by more than threshold,
// Falling when it is lower by more than threshold and Steady otherwise.
// NaN inputs compare false on both sides and therefore classify as Steady.
func ClassifyThreshold(before, after, threshold float64) models.Direction {
	diff := after - before
	switch {
	case diff > threshold:
		return models.Rising
	case diff < -threshold:
		return models.Falling
	default:
		return models.Steady
	}
}

// reducePeriod collapses the 3h->2h and 2h->1h segments into one direction for the
// first two hours. When one segment rises and the other falls, the net change from
// 3h to 1h decides.
func reducePeriod(seg3to2, seg2to1 models.Direction, inHg3h, inHg1h float64) models.Direction {
	switch {
	case seg3to2 == seg2to1:
		return seg3to2
	case seg3to2 == models.Steady:
		return seg2to1
	case seg2to1 == models.Steady:
		return seg3to2
	default:
		return Classify(inHg3h, inHg1h)
	}
}
