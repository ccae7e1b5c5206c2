package models

import (
	"fmt"
	"strings"
)

// Direction is the sign of a pressure change
type Direction int

const (
	Steady Direction = iota
	Rising
	Falling
)

func (d Direction) String() string {
	switch d {
	case Steady:
		return "Steady"
	case Rising:
		return "Rising"
	case Falling:
		return "Falling"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if d < Steady || d > Falling {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "steady":
		*d = Steady
	case "rising":
		*d = Rising
	case "falling":
		*d = Falling
	default:
		return fmt.Errorf("invalid direction %q", string(text))
	}
	return nil
}

// TendencyCode is the station-model pressure tendency: the direction over the
// first two hours of the window followed by the direction over the last hour.
type TendencyCode int

const (
	TendencySteady        TendencyCode = iota // =
	TendencySteadyRising                      // =+
	TendencySteadyFalling                     // =-
	TendencyRisingSteady                      // +=
	TendencyRising                            // +
	TendencyRisingFalling                     // +/
	TendencyFallingSteady                     // -=
	TendencyFallingRising                     // -+
	TendencyFalling                           // -
)

// tendencyTable is indexed [first][second] by Direction
var tendencyTable = [3][3]TendencyCode{
	Steady:  {Steady: TendencySteady, Rising: TendencySteadyRising, Falling: TendencySteadyFalling},
	Rising:  {Steady: TendencyRisingSteady, Rising: TendencyRising, Falling: TendencyRisingFalling},
	Falling: {Steady: TendencyFallingSteady, Rising: TendencyFallingRising, Falling: TendencyFalling},
}

var tendencySymbols = [...]string{
	TendencySteady:        "=",
	TendencySteadyRising:  "=+",
	TendencySteadyFalling: "=-",
	TendencyRisingSteady:  "+=",
	TendencyRising:        "+",
	TendencyRisingFalling: "+/",
	TendencyFallingSteady: "-=",
	TendencyFallingRising: "-+",
	TendencyFalling:       "-",
}

// TendencyCodes lists every code
var TendencyCodes = []TendencyCode{
	TendencySteady, TendencySteadyRising, TendencySteadyFalling,
	TendencyRisingSteady, TendencyRising, TendencyRisingFalling,
	TendencyFallingSteady, TendencyFallingRising, TendencyFalling,
}

// TendencyFor returns the code for a (first period, second period) pair.
// It panics if either direction is out of range.
func TendencyFor(first, second Direction) TendencyCode {
	return tendencyTable[first][second]
}

// Periods returns the two directions the code was built from
func (c TendencyCode) Periods() (first, second Direction) {
	return Direction(int(c) / 3), Direction(int(c) % 3)
}

// Symbol returns the station-model symbol, e.g. "+/" for rising then falling
func (c TendencyCode) Symbol() string {
	if c < TendencySteady || c > TendencyFalling {
		return ""
	}
	return tendencySymbols[c]
}

// Description returns "<first> then <second>"
func (c TendencyCode) Description() string {
	first, second := c.Periods()
	return first.String() + " then " + second.String()
}

func (c TendencyCode) String() string {
	return c.Description()
}
