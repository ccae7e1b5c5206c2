package models

import "fmt"

// Readings holds one calculation's input, all expressed in the caller's unit
// (for UnitCustom the current value is inHg and the history is hPa).
type Readings struct {
	Current float64
	Past1h  float64 // 1 hour ago
	Past2h  float64 // 2 hours ago
	Past3h  float64 // 3 hours ago
}

// Past returns the history ordered [1h, 2h, 3h] ago
func (r Readings) Past() [3]float64 {
	return [3]float64{r.Past1h, r.Past2h, r.Past3h}
}

// TrendResult is the outcome of a single pressure trend calculation
type TrendResult struct {
	CurrentDisplay float64 `json:"current_pressure_display"`
	CurrentMb      float64 `json:"current_pressure_mb"` // rounded to 0.1
	StationModel   int     `json:"station_model_pressure"`
	ChangeDisplay  float64 `json:"pressure_change_display"`
	ChangeMb       float64 `json:"pressure_change_mb"` // 3-hour change, rounded to 0.1
	TrendValue     int     `json:"trend_value"`        // |ChangeMb| in tenths of mb

	Overall      Direction `json:"overall_trend"`
	FirstPeriod  Direction `json:"first_period_trend"`  // 3h ago to 1h ago
	SecondPeriod Direction `json:"second_period_trend"` // 1h ago to now

	Tendency            TendencyCode `json:"-"`
	TendencyDescription string       `json:"tendency_description"`
	TendencySymbol      string       `json:"tendency_symbol"`

	Unit      Unit   `json:"unit"`
	UnitLabel string `json:"unit_label"`
}

// StationModelCode renders the station model pressure as exactly three digits
func (r TrendResult) StationModelCode() string {
	return fmt.Sprintf("%03d", r.StationModel)
}
