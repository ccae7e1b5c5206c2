package trend

import (
	"errors"
	"fmt"
	"math"

	"github.com/ngmaloney/pressure-trend/internal/models"
)

// Conversion factors
const (
	InHgToMb  = 33.8639 // 1 inHg = 33.8639 mb
	HPaToInHg = 0.02953 // 1 hPa = 0.02953 inHg
	KPaToInHg = 0.2953  // 1 kPa = 10 hPa
)

// MaxPressureMb bounds every normalized reading so the tenths arithmetic stays exact in an int
const MaxPressureMb = 1e6

var (
	// ErrHistoryLength is returned when the history does not hold exactly three readings
	ErrHistoryLength = errors.New("pressure history must hold exactly 3 readings")

	// ErrNonFiniteReading is returned for NaN or infinite readings
	ErrNonFiniteReading = errors.New("pressure reading is not a finite number")

	// ErrReadingOutOfRange is returned when a reading exceeds MaxPressureMb once converted
	ErrReadingOutOfRange = errors.New("pressure reading out of range")
)

// Compute calculates the trend for current and past, where past is ordered
// [1 hour ago, 2 hours ago, 3 hours ago].
func Compute(current float64, past []float64, unit models.Unit) (models.TrendResult, error) {
	if len(past) != 3 {
		return models.TrendResult{}, fmt.Errorf("%w: got %d", ErrHistoryLength, len(past))
	}
	return Calculate(models.Readings{
		Current: current,
		Past1h:  past[0],
		Past2h:  past[1],
		Past3h:  past[2],
	}, unit)
}

// Calculate derives the station-model pressure, the 3-hour change and the
// two-period tendency for r. It holds no state and is safe for concurrent use.
func Calculate(r models.Readings, unit models.Unit) (models.TrendResult, error) {
	if !unit.Valid() {
		return models.TrendResult{}, fmt.Errorf("%w: %d", models.ErrUnknownUnit, int(unit))
	}
	if err := checkFinite(r); err != nil {
		return models.TrendResult{}, err
	}

	in := toInHg(r, unit)
	if err := checkRange(in); err != nil {
		return models.TrendResult{}, err
	}

	currentMb := in.Current * InHgToMb
	mb3h := in.Past3h * InHgToMb

	change := roundTenth(currentMb - mb3h)
	changeMb := change.InexactFloat64()

	overall := models.Steady
	switch change.Sign() {
	case 1:
		overall = models.Rising
	case -1:
		overall = models.Falling
	}

	roundedMb := roundTenth(currentMb)
	currentRoundedMb := roundedMb.InexactFloat64()
	currentDisplay, changeDisplay := toDisplay(unit, in.Current, currentRoundedMb, changeMb)

	first := reducePeriod(
		Classify(in.Past3h, in.Past2h),
		Classify(in.Past2h, in.Past1h),
		in.Past3h, in.Past1h,
	)
	second := Classify(in.Past1h, in.Current)
	code := models.TendencyFor(first, second)

	return models.TrendResult{
		CurrentDisplay:      currentDisplay,
		CurrentMb:           currentRoundedMb,
		StationModel:        stationModel(roundedMb),
		ChangeDisplay:       changeDisplay,
		ChangeMb:            changeMb,
		TrendValue:          int(tenths(change)),
		Overall:             overall,
		FirstPeriod:         first,
		SecondPeriod:        second,
		Tendency:            code,
		TendencyDescription: code.Description(),
		TendencySymbol:      code.Symbol(),
		Unit:                unit,
		UnitLabel:           unit.Label(),
	}, nil
}

// RoundTrip converts value from unit to inHg and back to unit through the same
// display formulas Calculate uses for the current reading.
func RoundTrip(value float64, unit models.Unit) (float64, error) {
	res, err := Calculate(models.Readings{Current: value, Past1h: value, Past2h: value, Past3h: value}, unit)
	if err != nil {
		return 0, err
	}
	return res.CurrentDisplay, nil
}

type namedReading struct {
	name  string
	value float64
}

func named(r models.Readings) []namedReading {
	return []namedReading{
		{"current", r.Current},
		{"1h ago", r.Past1h},
		{"2h ago", r.Past2h},
		{"3h ago", r.Past3h},
	}
}

func checkFinite(r models.Readings) error {
	for _, n := range named(r) {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%w: %s reading is %v", ErrNonFiniteReading, n.name, n.value)
		}
	}
	return nil
}

// checkRange rejects inHg readings whose mb value is not finite or exceeds MaxPressureMb
func checkRange(in models.Readings) error {
	for _, n := range named(in) {
		mb := n.value * InHgToMb
		if math.IsNaN(mb) || math.Abs(mb) > MaxPressureMb {
			return fmt.Errorf("%w: %s reading is %g mb (limit %g)", ErrReadingOutOfRange, n.name, mb, float64(MaxPressureMb))
		}
	}
	return nil
}

// toInHg normalizes every reading to inHg
func toInHg(r models.Readings, unit models.Unit) models.Readings {
	switch unit {
	case models.UnitHPa:
		return scale(r, HPaToInHg, HPaToInHg)
	case models.UnitKPa:
		return scale(r, KPaToInHg, KPaToInHg)
	case models.UnitCustom:
		// current is already inHg, history is hPa
		return scale(r, 1, HPaToInHg)
	default:
		return r
	}
}

func scale(r models.Readings, current, past float64) models.Readings {
	return models.Readings{
		Current: r.Current * current,
		Past1h:  r.Past1h * past,
		Past2h:  r.Past2h * past,
		Past3h:  r.Past3h * past,
	}
}

// toDisplay converts the current pressure and the change back to the caller's unit
func toDisplay(unit models.Unit, currentInHg, currentMb, changeMb float64) (current, change float64) {
	switch unit {
	case models.UnitHPa:
		return currentMb, changeMb
	case models.UnitKPa:
		return currentMb / 10, changeMb / 10
	case models.UnitCustom:
		return currentInHg, changeMb
	default:
		return currentInHg, changeMb / InHgToMb
	}
}
