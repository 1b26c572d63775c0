package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// plainNumber matches decimal notation with an optional exponent. It keeps
// out the extra literal forms ParseFloat accepts, such as hex floats,
// digit separators, "Inf" and "NaN".
var plainNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ValidateCoffee checks the add-coffee form and converts it into a record
// payload. Rules are applied in order and the first failure is returned as a
// *ValidationError.
func ValidateCoffee(f CoffeeForm) (NewCoffee, error) {
	name := strings.TrimSpace(f.Name)
	origin := strings.TrimSpace(f.Origin)
	if name == "" {
		return NewCoffee{}, &ValidationError{Field: "name", Err: ErrMissingRequiredField}
	}
	if origin == "" {
		return NewCoffee{}, &ValidationError{Field: "origin", Err: ErrMissingRequiredField}
	}

	out := NewCoffee{Name: name, Origin: origin, RoastLevel: RoastLevels[0]}

	if v, ok, valid := parseOptional(f.GrindSize); ok {
		if !valid || v < 1 || v > 10 {
			return NewCoffee{}, &ValidationError{Field: "grindSize", Err: ErrGrindSizeRange}
		}
		g := int(v)
		out.GrindSize = &g
	}
	if v, ok, valid := parseOptional(f.WaterTemperature); ok {
		if !valid || v < 0 || v > 100 {
			return NewCoffee{}, &ValidationError{Field: "waterTemperature", Err: ErrTemperatureRange}
		}
		out.WaterTemperature = &v
	}
	if v, ok, valid := parseOptional(f.CoffeeAmount); ok {
		if !valid || v < 0 {
			return NewCoffee{}, &ValidationError{Field: "coffeeAmount", Err: ErrNegativeAmount}
		}
		out.CoffeeAmount = &v
	}

	if s := strings.TrimSpace(f.RoastLevel); s != "" {
		lvl, ok := ParseRoastLevel(s)
		if !ok {
			return NewCoffee{}, &ValidationError{Field: "roastLevel", Err: ErrUnknownRoastLevel}
		}
		out.RoastLevel = lvl
	}
	if notes := strings.TrimSpace(f.Notes); notes != "" {
		out.Notes = &notes
	}
	return out, nil
}

// parseOptional reports whether s holds a value and, if so, whether that
// value is a finite number.
func parseOptional(s string) (v float64, present, numeric bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, false
	}
	if !plainNumber.MatchString(s) {
		return 0, true, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true, false
	}
	return v, true, true
}
