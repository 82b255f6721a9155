// Package preference holds the active display measurement system and keeps
// every registered surface in step with it.
package preference

import (
	"fmt"

	"github.com/devadigapratham/cncdro/units"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Surface is anything that renders canonical values in a measurement system
type Surface interface {
	Name() string
	Render(system units.System) error
}

// RenderFailure records a surface that could not be updated
type RenderFailure struct {
	Surface string
	System  units.System
	Err     error
}

func (f *RenderFailure) Error() string {
	return fmt.Sprintf("render %s in %s: %v", f.Surface, f.System, f.Err)
}

func (f *RenderFailure) Unwrap() error {
	return f.Err
}

type registration struct {
	id      uuid.UUID
	surface Surface
}

// Preference is the single writer of the current measurement system. It is
// not safe for concurrent use; it is meant to be driven from the UI loop.
type Preference struct {
	current  units.System
	surfaces []registration
	failures []*RenderFailure
	log      logrus.FieldLogger
}

// New creates a Preference starting at initial
func New(initial units.System, log logrus.FieldLogger) *Preference {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Preference{
		current: initial,
		log:     log,
	}
}

// Current returns the active measurement system
func (p *Preference) Current() units.System {
	return p.current
}

// Register adds a surface, renders it once and returns its registration ID.
// A failed first render is logged only; LastFailures keeps reporting the
// latest broadcast.
func (p *Preference) Register(s Surface) uuid.UUID {
	id := uuid.New()
	p.surfaces = append(p.surfaces, registration{id: id, surface: s})
	p.render(s)
	return id
}

// Unregister removes a surface; it reports whether the ID was known
func (p *Preference) Unregister(id uuid.UUID) bool {
	for i, r := range p.surfaces {
		if r.id == id {
			p.surfaces = append(p.surfaces[:i], p.surfaces[i+1:]...)
			return true
		}
	}
	return false
}

// Surfaces returns the number of registered surfaces
func (p *Preference) Surfaces() int {
	return len(p.surfaces)
}

// Set switches the measurement system and re-renders every surface in
// registration order before returning. It reports whether the system changed.
func (p *Preference) Set(system units.System) bool {
	if system == p.current {
		return false
	}

	p.log.WithFields(logrus.Fields{
		"from": p.current.String(),
		"to":   system.String(),
	}).Info("measurement system changed")

	p.current = system
	p.Refresh()
	return true
}

// Refresh re-renders every surface with the current system. A failing
// surface is logged and skipped.
func (p *Preference) Refresh() {
	p.failures = nil

	// Copy so a surface unregistering itself does not shift the iteration.
	surfaces := make([]registration, len(p.surfaces))
	copy(surfaces, p.surfaces)

	for _, r := range surfaces {
		if err := p.render(r.surface); err != nil {
			p.failures = append(p.failures, err)
		}
	}
}

// LastFailures returns the render failures of the latest Set or Refresh.
// Renders done by Register are not counted.
func (p *Preference) LastFailures() []*RenderFailure {
	return p.failures
}

func (p *Preference) render(s Surface) (failure *RenderFailure) {
	defer func() {
		if r := recover(); r != nil {
			failure = p.fail(s, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := s.Render(p.current); err != nil {
		return p.fail(s, err)
	}
	return nil
}

func (p *Preference) fail(s Surface, err error) *RenderFailure {
	f := &RenderFailure{Surface: s.Name(), System: p.current, Err: err}
	p.log.WithFields(logrus.Fields{
		"surface": f.Surface,
		"system":  f.System.String(),
	}).WithError(err).Warn("surface render failed")
	return f
}
