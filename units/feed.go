package units

import "strings"

// FeedRateUnits selects how a feed rate is displayed
type FeedRateUnits int

const (
	MmPerMin FeedRateUnits = iota
	MmPerSec
	InPerMin
	InPerSec
)

// FeedUnitsFor composes feed units from a length system and a time base
func FeedUnitsFor(system System, perSecond bool) FeedRateUnits {
	switch {
	case system == Imperial && perSecond:
		return InPerSec
	case system == Imperial:
		return InPerMin
	case perSecond:
		return MmPerSec
	default:
		return MmPerMin
	}
}

// ParseFeedRateUnits maps a settings value to FeedRateUnits, defaulting to mm/min
func ParseFeedRateUnits(value string) FeedRateUnits {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "mm/sec", "mm_per_sec":
		return MmPerSec
	case "in/min", "in_per_min":
		return InPerMin
	case "in/sec", "in_per_sec":
		return InPerSec
	default:
		return MmPerMin
	}
}

// System returns the length system the units are built on
func (u FeedRateUnits) System() System {
	if u == InPerMin || u == InPerSec {
		return Imperial
	}
	return Metric
}

// PerSecond reports whether the units use seconds as time base
func (u FeedRateUnits) PerSecond() bool {
	return u == MmPerSec || u == InPerSec
}

// WithSystem keeps the time base and swaps the length system
func (u FeedRateUnits) WithSystem(system System) FeedRateUnits {
	return FeedUnitsFor(system, u.PerSecond())
}

func (u FeedRateUnits) String() string {
	suffix := "/min"
	if u.PerSecond() {
		suffix = "/sec"
	}
	return UnitLabel(u.System()) + suffix
}
