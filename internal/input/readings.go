// Package input turns user-entered text into calculator input.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ngmaloney/pressure-trend/internal/models"
)

// ErrInvalidReading is returned for readings that are missing, non-numeric, non-finite or out of range
var ErrInvalidReading = errors.New("invalid pressure reading")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// MaxReading is the exclusive upper bound on a reading in any unit; it must match the lt tags below
const MaxReading = 10000

// readingsInput mirrors models.Readings with validation rules.
// finite runs first so NaN never reaches the gt comparison.
type readingsInput struct {
	Current float64 `validate:"finite,gt=0,lt=10000"`
	Past1h  float64 `validate:"finite,gt=0,lt=10000"`
	Past2h  float64 `validate:"finite,gt=0,lt=10000"`
	Past3h  float64 `validate:"finite,gt=0,lt=10000"`
}

var fieldNames = map[string]string{
	"Current": "current pressure",
	"Past1h":  "pressure 1 hour ago",
	"Past2h":  "pressure 2 hours ago",
	"Past3h":  "pressure 3 hours ago",
}

// ParseReadings parses the current reading and the readings from 1, 2 and 3 hours ago.
func ParseReadings(current, past1h, past2h, past3h string) (models.Readings, error) {
	raw := []struct {
		field string
		text  string
	}{
		{"Current", current},
		{"Past1h", past1h},
		{"Past2h", past2h},
		{"Past3h", past3h},
	}

	values := make([]float64, len(raw))
	for i, r := range raw {
		v, err := parseFloat(r.text)
		if err != nil {
			return models.Readings{}, fmt.Errorf("%w: %s: %v", ErrInvalidReading, fieldNames[r.field], err)
		}
		values[i] = v
	}

	in := readingsInput{Current: values[0], Past1h: values[1], Past2h: values[2], Past3h: values[3]}
	if err := validate.Struct(in); err != nil {
		return models.Readings{}, describe(err)
	}

	return models.Readings{
		Current: in.Current,
		Past1h:  in.Past1h,
		Past2h:  in.Past2h,
		Past3h:  in.Past3h,
	}, nil
}

// ParseArgs parses four positional readings in the order current, 1h, 2h, 3h ago.
func ParseArgs(args []string) (models.Readings, error) {
	if len(args) != 4 {
		return models.Readings{}, fmt.Errorf("%w: expected 4 readings (current, 1h, 2h, 3h ago), got %d", ErrInvalidReading, len(args))
	}
	return ParseReadings(args[0], args[1], args[2], args[3])
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("value is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}

	fe := verrs[0]
	name := fieldNames[fe.Field()]
	switch fe.Tag() {
	case "finite":
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidReading, name)
	case "gt":
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidReading, name)
	case "lt":
		return fmt.Errorf("%w: %s must be less than %d", ErrInvalidReading, name, MaxReading)
	default:
		return fmt.Errorf("%w: %s failed %q", ErrInvalidReading, name, fe.Tag())
	}
}
