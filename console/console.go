// Package console wires the measurement preference, the display surfaces and
// the input translator into one machine-control panel. Every exported method
// marshals its work onto the UI loop.
package console

import (
	"context"
	"fmt"
	"sort"

	"github.com/devadigapratham/cncdro/display"
	"github.com/devadigapratham/cncdro/input"
	"github.com/devadigapratham/cncdro/loop"
	"github.com/devadigapratham/cncdro/motion"
	"github.com/devadigapratham/cncdro/preference"
	"github.com/devadigapratham/cncdro/settings"
	"github.com/devadigapratham/cncdro/units"
	"github.com/sirupsen/logrus"
)

// Config holds the panel options
type Config struct {
	// Travel bounds user-entered lengths; nil disables the check.
	Travel *input.Range
	// JogFeed is the initial jog feed in mm/min.
	JogFeed float64
}

// Console is the headless machine-control panel
type Console struct {
	loop       *loop.Loop
	pref       *preference.Preference
	translator *input.Translator
	store      *settings.Store
	log        logrus.FieldLogger

	labels    map[string]*display.Label
	dro       *display.DRO
	statusBar *display.StatusBar
	jog       *display.JogControl
}

// New creates a Console starting from the stored preferences
func New(cfg Config, store *settings.Store, sender motion.Sender, log logrus.FieldLogger) (*Console, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	system, err := store.LoadSystem()
	if err != nil {
		return nil, fmt.Errorf("failed to load measurement system: %w", err)
	}
	feedUnits, err := store.LoadFeedUnits()
	if err != nil {
		return nil, fmt.Errorf("failed to load feed units: %w", err)
	}

	c := &Console{
		loop:       loop.New(64),
		pref:       preference.New(system, log),
		translator: input.NewTranslator(cfg.Travel),
		store:      store,
		log:        log,
		labels:     make(map[string]*display.Label),
	}

	c.dro = display.NewDRO("dro", c.label("dro.x"), c.label("dro.y"), c.label("dro.z"))
	c.statusBar = display.NewStatusBar(c.label("status.position"), c.label("status.feed"))
	c.jog = display.NewJogControl(c.label("jog.title"), c.label("jog.steps"), c.label("jog.feed"), sender, c.translator)

	err = c.loop.Do(context.Background(), func() {
		_ = c.statusBar.SetFeedPerSecond(feedUnits.PerSecond())
		_ = c.jog.SetFeedPerSecond(feedUnits.PerSecond())
		if cfg.JogFeed > 0 {
			_ = c.jog.SetFeed(cfg.JogFeed)
		}
		c.pref.Register(c.dro)
		c.pref.Register(c.statusBar)
		c.pref.Register(c.jog)
	})
	if err != nil {
		c.loop.Stop()
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"system":     system.String(),
		"feed_units": feedUnits.WithSystem(system).String(),
	}).Info("console ready")
	return c, nil
}

func (c *Console) label(name string) *display.Label {
	l := display.NewLabel()
	c.labels[name] = l
	return l
}

// System returns the active measurement system
func (c *Console) System(ctx context.Context) (units.System, error) {
	var system units.System
	if err := c.loop.Do(ctx, func() { system = c.pref.Current() }); err != nil {
		return units.Metric, err
	}
	return system, nil
}

// SetSystem switches the measurement system, persists it and returns the
// names of surfaces that failed to redraw
func (c *Console) SetSystem(ctx context.Context, system units.System) (bool, []string, error) {
	var changed bool
	var failed []string
	err := c.loop.Do(ctx, func() {
		changed = c.pref.Set(system)
		for _, f := range c.pref.LastFailures() {
			failed = append(failed, f.Surface)
		}
	})
	if err != nil {
		return false, nil, err
	}

	if changed {
		if err := c.store.SaveSystem(system); err != nil {
			c.log.WithError(err).Error("failed to persist measurement system")
		}
	}
	return changed, failed, nil
}

// FeedUnits returns the units feed rates are displayed in
func (c *Console) FeedUnits(ctx context.Context) (units.FeedRateUnits, error) {
	var u units.FeedRateUnits
	if err := c.loop.Do(ctx, func() { u = c.jog.FeedUnits() }); err != nil {
		return units.MmPerMin, err
	}
	return u, nil
}

// SetFeedPerSecond switches feed readouts between per-minute and per-second
func (c *Console) SetFeedPerSecond(ctx context.Context, perSecond bool) (units.FeedRateUnits, error) {
	var u units.FeedRateUnits
	err := c.loop.Do(ctx, func() {
		if err := c.statusBar.SetFeedPerSecond(perSecond); err != nil {
			c.log.WithError(err).Warn("status bar feed redraw failed")
		}
		if err := c.jog.SetFeedPerSecond(perSecond); err != nil {
			c.log.WithError(err).Warn("jog feed redraw failed")
		}
		u = c.jog.FeedUnits()
	})
	if err != nil {
		return units.MmPerMin, err
	}

	if err := c.store.SaveFeedUnits(u); err != nil {
		c.log.WithError(err).Error("failed to persist feed units")
	}
	return u, nil
}

// UpdateStatus hands a machine status report, in canonical units, to the
// position surfaces
func (c *Console) UpdateStatus(ctx context.Context, st display.Status) error {
	return c.loop.Do(ctx, func() {
		if err := c.dro.UpdatePosition(st.Position); err != nil {
			c.log.WithError(err).Warn("dro update failed")
		}
		if err := c.statusBar.Update(st); err != nil {
			c.log.WithError(err).Warn("status bar update failed")
		}
	})
}

// Texts returns the current text of every label
func (c *Console) Texts(ctx context.Context) (map[string]string, error) {
	texts := make(map[string]string, len(c.labels))
	err := c.loop.Do(ctx, func() {
		for name, l := range c.labels {
			texts[name] = l.Text()
		}
	})
	if err != nil {
		return nil, err
	}
	return texts, nil
}

// LabelNames returns the label names in sorted order
func (c *Console) LabelNames() []string {
	names := make([]string, 0, len(c.labels))
	for name := range c.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DestroyLabel destroys a label, as a toolkit would when its widget goes away
func (c *Console) DestroyLabel(ctx context.Context, name string) (bool, error) {
	var found bool
	err := c.loop.Do(ctx, func() {
		if l, ok := c.labels[name]; ok {
			l.Destroy()
			found = true
		}
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// Convert parses text in the active system and returns millimeters
func (c *Console) Convert(ctx context.Context, text string) (float64, units.System, error) {
	var (
		mm     float64
		system units.System
		perr   error
	)
	err := c.loop.Do(ctx, func() {
		system = c.pref.Current()
		mm, perr = c.translator.ParseAndConvert(text, system)
	})
	if err != nil {
		return 0, units.Metric, err
	}
	return mm, system, perr
}

// Format renders a canonical length in the active system
func (c *Console) Format(ctx context.Context, mm float64) (string, string, error) {
	var text, label string
	err := c.loop.Do(ctx, func() {
		system := c.pref.Current()
		text = units.FormatLength(mm, system)
		label = units.UnitLabel(system)
	})
	if err != nil {
		return "", "", err
	}
	return text, label, nil
}

// Steps returns the jog presets and the selected index
func (c *Console) Steps(ctx context.Context) ([]display.Step, int, error) {
	var steps []display.Step
	var selected int
	err := c.loop.Do(ctx, func() {
		steps = c.jog.Steps()
		selected = c.jog.Selected()
	})
	if err != nil {
		return nil, 0, err
	}
	return steps, selected, nil
}

// SelectStep selects a jog preset
func (c *Console) SelectStep(ctx context.Context, i int) error {
	var serr error
	if err := c.loop.Do(ctx, func() { serr = c.jog.SelectStep(i) }); err != nil {
		return err
	}
	return serr
}

// SetJogFeed parses a jog feed typed in the active feed units
func (c *Console) SetJogFeed(ctx context.Context, text string) (float64, error) {
	var feed float64
	var ferr error
	err := c.loop.Do(ctx, func() {
		ferr = c.jog.SetFeedFromText(text)
		feed = c.jog.Feed()
	})
	if err != nil {
		return 0, err
	}
	return feed, ferr
}

// Jog moves an axis by the selected step
func (c *Console) Jog(ctx context.Context, axis byte, direction int) error {
	var jerr error
	if err := c.loop.Do(ctx, func() { jerr = c.jog.Jog(ctx, axis, direction) }); err != nil {
		return err
	}
	return jerr
}

// Close stops the UI loop and closes the settings store
func (c *Console) Close() error {
	c.loop.Stop()
	return c.store.Close()
}
