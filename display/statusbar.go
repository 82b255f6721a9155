package display

import (
	"errors"
	"fmt"

	"github.com/devadigapratham/cncdro/units"
)

// Status is the part of a machine status report the status bar shows
type Status struct {
	Position Position `json:"position"`
	Feed     float64  `json:"feed"` // mm/min
	Spindle  uint32   `json:"spindle"`
}

// StatusBar shows machine position, feed and spindle speed
type StatusBar struct {
	position  TextSetter
	feed      TextSetter
	status    Status
	perSecond bool
	system    units.System
}

// NewStatusBar creates a status bar writing to the given labels
func NewStatusBar(position, feed TextSetter) *StatusBar {
	return &StatusBar{
		position: position,
		feed:     feed,
	}
}

func (s *StatusBar) Name() string {
	return "status-bar"
}

// Status returns the cached status
func (s *StatusBar) Status() Status {
	return s.status
}

// Update caches a status report and redraws it
func (s *StatusBar) Update(st Status) error {
	s.status = st
	return s.Render(s.system)
}

// SetFeedPerSecond switches the feed readout between per-minute and
// per-second and redraws it
func (s *StatusBar) SetFeedPerSecond(perSecond bool) error {
	s.perSecond = perSecond
	return s.Render(s.system)
}

// Render draws the cached status in the given system
func (s *StatusBar) Render(system units.System) error {
	s.system = system

	feedUnits := units.FeedUnitsFor(system, s.perSecond)
	posErr := s.position.SetText(formatPosition(s.status.Position, system))
	feedErr := s.feed.SetText(fmt.Sprintf("F: %s  S: %d RPM",
		units.FormatFeedRateUnits(s.status.Feed, feedUnits), s.status.Spindle))
	return errors.Join(posErr, feedErr)
}
