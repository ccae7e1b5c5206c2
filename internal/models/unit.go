package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned for a unit selector that is not one of the four supported units
var ErrUnknownUnit = errors.New("unknown pressure unit")

// Unit identifies how the readings handed to the calculator are expressed
type Unit int

const (
	UnitInHg   Unit = iota + 1 // inches of mercury
	UnitHPa                    // hectopascals (== millibars)
	UnitKPa                    // kilopascals
	UnitCustom                 // current in inHg, history in hPa
)

// Units lists the supported units in menu order
var Units = []Unit{UnitInHg, UnitHPa, UnitKPa, UnitCustom}

// ParseUnit accepts a menu choice ("1" to "4") or a unit name such as "hPa".
// Matching ignores case and surrounding whitespace.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "inhg":
		return UnitInHg, nil
	case "2", "hpa":
		return UnitHPa, nil
	case "3", "kpa":
		return UnitKPa, nil
	case "4", "custom":
		return UnitCustom, nil
	}
	return 0, fmt.Errorf("%w: %q (allowed: inHg, hPa, kPa, custom)", ErrUnknownUnit, s)
}

// Valid reports whether u is one of the supported units
func (u Unit) Valid() bool {
	return u >= UnitInHg && u <= UnitCustom
}

func (u Unit) String() string {
	switch u {
	case UnitInHg:
		return "inHg"
	case UnitHPa:
		return "hPa"
	case UnitKPa:
		return "kPa"
	case UnitCustom:
		return "custom"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Label is the display label reported alongside a result
func (u Unit) Label() string {
	switch u {
	case UnitHPa:
		return "hPa"
	case UnitKPa:
		return "kPa"
	case UnitCustom:
		return "hPa (change), inHg (current)"
	default:
		return "inHg"
	}
}

// Description is the long form shown in the unit menu
func (u Unit) Description() string {
	switch u {
	case UnitInHg:
		return "inches of mercury"
	case UnitHPa:
		return "hectopascals"
	case UnitKPa:
		return "kilopascals"
	case UnitCustom:
		return "current in inHg, past in hPa"
	default:
		return ""
	}
}

// InputLabels returns the unit the current reading and the historical readings are entered in.
func (u Unit) InputLabels() (current, past string) {
	if u == UnitCustom {
		return "inHg", "hPa"
	}
	return u.Label(), u.Label()
}

// DisplayLabels returns the units of TrendResult.CurrentDisplay and TrendResult.ChangeDisplay.
func (u Unit) DisplayLabels() (current, change string) {
	if u == UnitCustom {
		return "inHg", "hPa"
	}
	return u.Label(), u.Label()
}

// MarshalText implements encoding.TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
