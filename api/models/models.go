// api/models/models.go
package models

import (
	"errors"
	"strings"

	"github.com/devadigapratham/cncdro/display"
)

// PreferenceRequest selects a measurement system ("Metric" or "Imperial")
type PreferenceRequest struct {
	System string `json:"system" binding:"required"`
}

// PreferenceResponse describes the active measurement system
type PreferenceResponse struct {
	System    string   `json:"system"`
	UnitLabel string   `json:"unit_label"`
	FeedUnits string   `json:"feed_units"`
	Changed   bool     `json:"changed"`
	Failed    []string `json:"failed_surfaces,omitempty"`
}

// FeedUnitsRequest selects the feed time base
type FeedUnitsRequest struct {
	PerSecond bool `json:"per_second"`
}

// StatusRequest is a machine status report in canonical units
type StatusRequest = display.Status

// ConvertRequest is text typed by the user in the active units
type ConvertRequest struct {
	Text string `json:"text"`
}

// ConvertResponse carries the canonical value for a ConvertRequest
type ConvertResponse struct {
	Text      string  `json:"text"`
	System    string  `json:"system"`
	Canonical float64 `json:"canonical_mm"`
}

// FormatResponse is a canonical length rendered in the active units
type FormatResponse struct {
	Canonical float64 `json:"canonical_mm"`
	Text      string  `json:"text"`
	UnitLabel string  `json:"unit_label"`
}

// StepsResponse lists the jog presets
type StepsResponse struct {
	Steps    []display.Step `json:"steps"`
	Selected int            `json:"selected"`
}

// StepRequest selects a jog preset by index
type StepRequest struct {
	Index *int `json:"index" binding:"required"`
}

// JogFeedRequest is a jog feed typed in the active feed units
type JogFeedRequest struct {
	Text string `json:"text"`
}

// JogRequest moves one axis by the selected step
type JogRequest struct {
	Axis      string `json:"axis" binding:"required"`
	Direction int    `json:"direction" binding:"required"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// ParseAxis validates an axis name
func ParseAxis(axis string) (byte, error) {
	a := strings.ToUpper(strings.TrimSpace(axis))
	if len(a) != 1 || !strings.Contains("XYZ", a) {
		return 0, errors.New("axis must be one of X, Y, Z")
	}
	return a[0], nil
}

// IsValidSystem checks if a measurement system name is recognized
func IsValidSystem(system string) bool {
	switch strings.ToLower(strings.TrimSpace(system)) {
	case "metric", "imperial":
		return true
	}
	return false
}
