// Package units converts lengths and feed rates between the canonical unit
// (millimeters) and the display unit systems. Every function here is pure.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MillimetersPerInch is the exact conversion constant between the systems.
const MillimetersPerInch = 25.4

// ErrNonFinite is returned when a NaN or infinite value is converted.
var ErrNonFinite = errors.New("value is not finite")

// System represents a display measurement system
type System int

const (
	// Metric displays millimeters; it is also the canonical system.
	Metric System = iota
	// Imperial displays inches.
	Imperial
)

// String returns the settings name of the system
func (s System) String() string {
	if s == Imperial {
		return "Imperial"
	}
	return "Metric"
}

// ParseSystem maps a settings value to a System, defaulting to Metric
func ParseSystem(value string) System {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "imperial", "inch", "in":
		return Imperial
	default:
		return Metric
	}
}

// Decimals returns the number of decimals a length is displayed with
func (s System) Decimals() int {
	if s == Imperial {
		return 3
	}
	return 2
}

// ToCanonical converts a value expressed in the given system to millimeters
func ToCanonical(value float64, system System) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("convert %v %s: %w", value, UnitLabel(system), ErrNonFinite)
	}
	if system != Imperial {
		return value, nil
	}
	mm := value * MillimetersPerInch
	if math.IsInf(mm, 0) {
		return 0, fmt.Errorf("convert %v %s: overflow: %w", value, UnitLabel(system), ErrNonFinite)
	}
	return mm, nil
}

// FromCanonical converts millimeters to the given system
func FromCanonical(value float64, system System) float64 {
	if system == Imperial {
		return value / MillimetersPerInch
	}
	return value
}

// UnitLabel returns the length label for the system
func UnitLabel(system System) string {
	if system == Imperial {
		return "in"
	}
	return "mm"
}

// FormatLength formats a canonical length in the given system, without label
func FormatLength(value float64, system System) string {
	return formatFixed(FromCanonical(value, system), system.Decimals())
}

// FormatFeedRate formats a canonical mm/min feed rate per minute in the given system
func FormatFeedRate(valuePerMin float64, system System) string {
	return FormatFeedRateUnits(valuePerMin, FeedUnitsFor(system, false))
}

// FormatFeedRateUnits formats a canonical mm/min feed rate in the given feed units
func FormatFeedRateUnits(valuePerMin float64, feedUnits FeedRateUnits) string {
	value := FromCanonical(valuePerMin, feedUnits.System())
	if feedUnits.PerSecond() {
		value /= 60
	}
	return formatFixed(value, feedUnits.System().Decimals()) + " " + feedUnits.String()
}

// formatFixed rounds half away from zero and never prints a negative zero.
// Values too large to scale have no fraction left and print as they are.
func formatFixed(value float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	rounded := value
	if scaled := value * scale; !math.IsInf(scaled, 0) {
		rounded = math.Round(scaled) / scale
	}
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', decimals, 64)
}
