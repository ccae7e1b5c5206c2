package trend

import "github.com/shopspring/decimal"

// roundTenth rounds v to one decimal place, ties away from zero.
// The tie is judged on the shortest decimal form of v, so 1013.25 becomes 1013.3
// even though its binary value may sit just below the midpoint.
func roundTenth(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(1)
}

// tenths returns |d| expressed as an integer count of tenths.
// d must already be rounded to one decimal place.
func tenths(d decimal.Decimal) int64 {
	return d.Abs().Shift(1).IntPart()
}

// stationModel returns the last three digits of d in tenths, in [0, 999]
func stationModel(d decimal.Decimal) int {
	code := d.Shift(1).IntPart() % 1000
	if code < 0 {
		code += 1000
	}
	return int(code)
}
