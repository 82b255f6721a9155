package display

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devadigapratham/cncdro/input"
	"github.com/devadigapratham/cncdro/motion"
	"github.com/devadigapratham/cncdro/units"
)

// Jog step presets, in the units of their own system.
var (
	metricSteps   = []float64{0.1, 1.0, 10, 50}
	imperialSteps = []float64{0.001, 0.01, 0.1, 1.0}
)

// ErrStepIndex is returned when selecting a preset that does not exist
var ErrStepIndex = errors.New("step index out of range")

// DefaultJogFeed is the jog feed rate in mm/min
const DefaultJogFeed = 2000.0

// Step is one jog step preset
type Step struct {
	Label     string  `json:"label"`
	Canonical float64 `json:"canonical"`
}

// JogControl is the set of jog step buttons plus the jog feed entry
type JogControl struct {
	title      TextSetter
	steps      TextSetter
	feed       TextSetter
	table      map[units.System][]float64
	selected   int
	feedPerMin float64
	perSecond  bool
	system     units.System
	sender     motion.Sender
	translator *input.Translator
}

// NewJogControl creates jog controls sending through sender
func NewJogControl(title, steps, feed TextSetter, sender motion.Sender, translator *input.Translator) *JogControl {
	if translator == nil {
		translator = input.NewTranslator(nil)
	}
	return &JogControl{
		title:      title,
		steps:      steps,
		feed:       feed,
		table:      canonicalSteps(),
		selected:   1,
		feedPerMin: DefaultJogFeed,
		sender:     sender,
		translator: translator,
	}
}

// canonicalSteps converts each preset table to millimeters once, so a
// button's label and the distance it sends come from the same number.
func canonicalSteps() map[units.System][]float64 {
	table := make(map[units.System][]float64, 2)
	for system, presets := range map[units.System][]float64{
		units.Metric:   metricSteps,
		units.Imperial: imperialSteps,
	} {
		mm := make([]float64, len(presets))
		for i, v := range presets {
			c, err := units.ToCanonical(v, system)
			if err != nil {
				panic(err)
			}
			mm[i] = c
		}
		table[system] = mm
	}
	return table
}

func (j *JogControl) Name() string {
	return "jog-control"
}

// Steps returns the presets of the current system
func (j *JogControl) Steps() []Step {
	table := j.table[j.system]
	steps := make([]Step, len(table))
	for i, mm := range table {
		steps[i] = Step{
			Label:     units.FormatLength(mm, j.system) + " " + units.UnitLabel(j.system),
			Canonical: mm,
		}
	}
	return steps
}

// SelectStep selects the preset at index i
func (j *JogControl) SelectStep(i int) error {
	if i < 0 || i >= len(j.table[j.system]) {
		return fmt.Errorf("%w: %d", ErrStepIndex, i)
	}
	j.selected = i
	return j.Render(j.system)
}

// Selected returns the index of the selected preset
func (j *JogControl) Selected() int {
	return j.selected
}

// Step returns the selected step in millimeters
func (j *JogControl) Step() float64 {
	return j.table[j.system][j.selected]
}

// Feed returns the jog feed rate in mm/min
func (j *JogControl) Feed() float64 {
	return j.feedPerMin
}

// FeedUnits returns the units the jog feed entry is shown in
func (j *JogControl) FeedUnits() units.FeedRateUnits {
	return units.FeedUnitsFor(j.system, j.perSecond)
}

// SetFeed sets the jog feed rate in mm/min
func (j *JogControl) SetFeed(feedPerMin float64) error {
	j.feedPerMin = feedPerMin
	return j.Render(j.system)
}

// SetFeedFromText parses a feed typed in the current feed units. The
// cached feed is left unchanged when the text is rejected.
func (j *JogControl) SetFeedFromText(text string) error {
	feed, err := j.translator.ParseFeedRate(text, j.FeedUnits())
	if err != nil {
		return err
	}
	return j.SetFeed(feed)
}

// SetFeedPerSecond switches the feed entry between per-minute and per-second
func (j *JogControl) SetFeedPerSecond(perSecond bool) error {
	j.perSecond = perSecond
	return j.Render(j.system)
}

// Jog moves axis by the selected step; direction is +1 or -1
func (j *JogControl) Jog(ctx context.Context, axis byte, direction int) error {
	if direction != 1 && direction != -1 {
		return fmt.Errorf("%w: direction %d", motion.ErrInvalidJog, direction)
	}
	return motion.SendJog(ctx, j.sender, motion.Jog{
		Axis:     axis,
		Distance: float64(direction) * j.Step(),
		Feed:     j.feedPerMin,
	})
}

// Render redraws the step presets and the feed entry in the given system.
// The selected index is kept across systems. Every widget is redrawn even
// when an earlier one fails.
func (j *JogControl) Render(system units.System) error {
	j.system = system

	steps := j.Steps()
	labels := make([]string, len(steps))
	for i, s := range steps {
		if i == j.selected {
			labels[i] = "[" + s.Label + "]"
		} else {
			labels[i] = s.Label
		}
	}

	return errors.Join(
		j.title.SetText(fmt.Sprintf("Step (%s):", units.UnitLabel(system))),
		j.steps.SetText(strings.Join(labels, " | ")),
		j.feed.SetText(units.FormatFeedRateUnits(j.feedPerMin, j.FeedUnits())),
	)
}
