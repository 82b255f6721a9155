package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devadigapratham/cncdro/units"
)

// Position is a machine position in canonical millimeters
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DRO is the digital readout panel: one label per axis
type DRO struct {
	name   string
	axes   [3]TextSetter
	pos    Position
	system units.System
}

// NewDRO creates a DRO writing to the given X, Y and Z labels
func NewDRO(name string, x, y, z TextSetter) *DRO {
	return &DRO{
		name: name,
		axes: [3]TextSetter{x, y, z},
	}
}

// Name identifies the surface in logs
func (d *DRO) Name() string {
	return d.name
}

// Position returns the cached canonical position
func (d *DRO) Position() Position {
	return d.pos
}

// UpdatePosition caches a new canonical position and redraws it in the
// system the DRO was last rendered with
func (d *DRO) UpdatePosition(p Position) error {
	d.pos = p
	return d.Render(d.system)
}

// Render draws the cached position in the given system
func (d *DRO) Render(system units.System) error {
	d.system = system
	values := [3]float64{d.pos.X, d.pos.Y, d.pos.Z}

	var errs []error
	for i, axis := range "XYZ" {
		text := fmt.Sprintf("%c: %s %s", axis, units.FormatLength(values[i], system), units.UnitLabel(system))
		if err := d.axes[i].SetText(text); err != nil {
			errs = append(errs, fmt.Errorf("axis %c: %w", axis, err))
		}
	}
	return errors.Join(errs...)
}

// formatPosition renders a position on one line with a trailing unit label
func formatPosition(p Position, system units.System) string {
	var b strings.Builder
	for i, v := range [3]float64{p.X, p.Y, p.Z} {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%c: %s", "XYZ"[i], units.FormatLength(v, system))
	}
	fmt.Fprintf(&b, " (%s)", units.UnitLabel(system))
	return b.String()
}
