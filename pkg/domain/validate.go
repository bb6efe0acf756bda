package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseCarbons converts a raw carbon count. Anything that is not a plain
// positive integer ("2.5", "two", "") is rejected for the given side.
func ParseCarbons(side Side, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{
			Side:   side,
			Field:  "carbons",
			Value:  raw,
			Reason: "carbon count must be an integer",
		}
	}
	if n < 1 {
		return 0, &ValidationError{
			Side:   side,
			Field:  "carbons",
			Value:  raw,
			Reason: "carbon count must be positive",
		}
	}
	return n, nil
}

// CarbonsFromNumber accepts numbers decoded from JSON, where every count is
// a float64. Fractions, NaN, infinities and values below one are rejected
// before any integer conversion.
func CarbonsFromNumber(side Side, f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, &ValidationError{
			Side:   side,
			Field:  "carbons",
			Value:  strconv.FormatFloat(f, 'g', -1, 64),
			Reason: "carbon count must be an integer",
		}
	}
	if f < 1 {
		return 0, &ValidationError{
			Side:   side,
			Field:  "carbons",
			Value:  strconv.FormatFloat(f, 'g', -1, 64),
			Reason: "carbon count must be positive",
		}
	}
	return int(f), nil
}

// ResolveCompound parses a group name and carbon count into a Compound,
// tagging any failure with side.
func ResolveCompound(side Side, group string, carbons int) (Compound, error) {
	g, err := ParseGroup(group)
	if err != nil {
		return Compound{}, &ValidationError{
			Side:   side,
			Field:  "group",
			Value:  group,
			Reason: "unknown functional group",
		}
	}
	c, err := NewCompound(carbons, g)
	if err != nil {
		return Compound{}, WithSide(err, side)
	}
	return c, nil
}
