// Package input turns text typed by the user, in the current display units,
// into canonical values for motion commands.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/devadigapratham/cncdro/units"
)

// Range is a plausible travel range in canonical millimeters
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the range, bounds included
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Translator validates numeric text and converts it to canonical units
type Translator struct {
	// Range is optional; nil accepts every finite value.
	Range *Range
}

// NewTranslator creates a Translator bounded by r (nil for no bound)
func NewTranslator(r *Range) *Translator {
	return &Translator{Range: r}
}

// ParseAndConvert parses text in the given system and returns millimeters
func (t *Translator) ParseAndConvert(text string, system units.System) (float64, error) {
	value, err := parseNumber(text, system == units.Imperial)
	if err != nil {
		return 0, err
	}

	canonical, err := units.ToCanonical(value, system)
	if err != nil {
		return 0, invalid(text, err)
	}

	if t.Range != nil && !t.Range.Contains(canonical) {
		return 0, &InputError{
			Kind: OutOfRange,
			Text: text,
			Err:  fmt.Errorf("%g mm outside [%g, %g] mm", canonical, t.Range.Min, t.Range.Max),
		}
	}
	return canonical, nil
}

// ParseFeedRate parses a feed rate in the given feed units and returns mm/min
func (t *Translator) ParseFeedRate(text string, feedUnits units.FeedRateUnits) (float64, error) {
	value, err := parseNumber(text, false)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, &InputError{Kind: OutOfRange, Text: text, Err: errors.New("feed rate must not be negative")}
	}

	canonical, err := units.ToCanonical(value, feedUnits.System())
	if err != nil {
		return 0, invalid(text, err)
	}
	if feedUnits.PerSecond() {
		canonical *= 60
		if math.IsInf(canonical, 0) {
			return 0, invalid(text, units.ErrNonFinite)
		}
	}
	return canonical, nil
}

// parseNumber reads a decimal number, or with fractions set a mixed
// fraction such as "1 1/2" or "-3/8".
func parseNumber(text string, fractions bool) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, invalid(text, errors.New("empty input"))
	}

	if fractions && strings.Contains(trimmed, "/") {
		return parseMixedFraction(text, trimmed)
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, invalid(text, errors.New("not a number"))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, invalid(text, units.ErrNonFinite)
	}
	return value, nil
}

func parseMixedFraction(text, trimmed string) (float64, error) {
	parts := strings.Fields(trimmed)
	if len(parts) > 2 {
		return 0, invalid(text, errors.New("invalid fraction format"))
	}

	negative := strings.HasPrefix(parts[0], "-")
	var total float64
	for i, part := range parts {
		if i > 0 && (strings.HasPrefix(part, "+") || strings.HasPrefix(part, "-")) {
			return 0, invalid(text, errors.New("sign inside fraction"))
		}
		part = strings.TrimPrefix(part, "-")

		if !strings.Contains(part, "/") {
			// Only the whole part may precede the fraction.
			if i != 0 || len(parts) == 1 {
				return 0, invalid(text, errors.New("invalid fraction format"))
			}
			v, err := strconv.ParseFloat(part, 64)
			if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
				return 0, invalid(text, errors.New("invalid whole part"))
			}
			total += v
			continue
		}

		if i != len(parts)-1 {
			return 0, invalid(text, errors.New("fraction must come last"))
		}
		frac := strings.Split(part, "/")
		if len(frac) != 2 {
			return 0, invalid(text, errors.New("invalid fraction format"))
		}
		num, err := strconv.ParseUint(frac[0], 10, 32)
		if err != nil {
			return 0, invalid(text, errors.New("invalid numerator"))
		}
		den, err := strconv.ParseUint(frac[1], 10, 32)
		if err != nil {
			return 0, invalid(text, errors.New("invalid denominator"))
		}
		if den == 0 {
			return 0, invalid(text, errors.New("division by zero"))
		}
		total += float64(num) / float64(den)
	}

	if negative {
		total = -total
	}
	return total, nil
}
