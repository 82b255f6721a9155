package display

import (
	"context"
	"testing"

	"github.com/devadigapratham/cncdro/input"
	"github.com/devadigapratham/cncdro/motion"
	"github.com/devadigapratham/cncdro/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDRO() (*DRO, *Label, *Label, *Label) {
	x, y, z := NewLabel(), NewLabel(), NewLabel()
	return NewDRO("dro", x, y, z), x, y, z
}

func TestDRORender(t *testing.T) {
	dro, x, y, z := newTestDRO()

	require.NoError(t, dro.UpdatePosition(Position{X: 50.8, Y: -12.7, Z: 100}))
	assert.Equal(t, "X: 50.80 mm", x.Text())
	assert.Equal(t, "Y: -12.70 mm", y.Text())
	assert.Equal(t, "Z: 100.00 mm", z.Text())

	require.NoError(t, dro.Render(units.Imperial))
	assert.Equal(t, "X: 2.000 in", x.Text())
	assert.Equal(t, "Y: -0.500 in", y.Text())

	// Rendering twice is idempotent and keeps canonical state.
	require.NoError(t, dro.Render(units.Imperial))
	assert.Equal(t, "X: 2.000 in", x.Text())
	assert.Equal(t, Position{X: 50.8, Y: -12.7, Z: 100}, dro.Position())

	// New positions use the system last rendered with.
	require.NoError(t, dro.UpdatePosition(Position{X: 25.4}))
	assert.Equal(t, "X: 1.000 in", x.Text())
}

func TestDRODestroyedAxis(t *testing.T) {
	dro, x, y, z := newTestDRO()
	y.Destroy()

	err := dro.UpdatePosition(Position{X: 1, Y: 2, Z: 3})
	require.ErrorIs(t, err, ErrDestroyed)
	assert.Equal(t, "X: 1.00 mm", x.Text())
	assert.Equal(t, "Z: 3.00 mm", z.Text())
}

func TestStatusBar(t *testing.T) {
	pos, feed := NewLabel(), NewLabel()
	bar := NewStatusBar(pos, feed)

	require.NoError(t, bar.Update(Status{Position: Position{X: 25.4, Y: 50.8, Z: -2.54}, Feed: 1000, Spindle: 12000}))
	assert.Equal(t, "X: 25.40  Y: 50.80  Z: -2.54 (mm)", pos.Text())
	assert.Equal(t, "F: 1000.00 mm/min  S: 12000 RPM", feed.Text())

	require.NoError(t, bar.Render(units.Imperial))
	assert.Equal(t, "X: 1.000  Y: 2.000  Z: -0.100 (in)", pos.Text())
	assert.Equal(t, "F: 39.370 in/min  S: 12000 RPM", feed.Text())

	require.NoError(t, bar.SetFeedPerSecond(true))
	assert.Equal(t, "F: 0.656 in/sec  S: 12000 RPM", feed.Text())
}

func TestJogControlSteps(t *testing.T) {
	title, steps, feed := NewLabel(), NewLabel(), NewLabel()
	rec := motion.NewRecorder()
	jog := NewJogControl(title, steps, feed, rec, nil)

	require.NoError(t, jog.Render(units.Metric))
	assert.Equal(t, "Step (mm):", title.Text())
	assert.Equal(t, "0.10 mm | [1.00 mm] | 10.00 mm | 50.00 mm", steps.Text())
	assert.Equal(t, "2000.00 mm/min", feed.Text())

	require.NoError(t, jog.Render(units.Imperial))
	assert.Equal(t, "Step (in):", title.Text())
	assert.Equal(t, "0.001 in | [0.010 in] | 0.100 in | 1.000 in", steps.Text())
	assert.Equal(t, "78.740 in/min", feed.Text())

	require.NoError(t, jog.SelectStep(2))
	want, err := units.ToCanonical(0.1, units.Imperial)
	require.NoError(t, err)
	assert.Equal(t, want, jog.Step())
	assert.InDelta(t, 2.54, jog.Step(), 1e-12)
	assert.Equal(t, "0.100 in", jog.Steps()[2].Label)

	require.NoError(t, jog.Jog(context.Background(), 'X', 1))
	require.NoError(t, jog.Jog(context.Background(), 'Z', -1))
	assert.Equal(t, []string{
		"$J=G91 G21 X2.54 F2000",
		"$J=G91 G21 Z-2.54 F2000",
	}, rec.Lines())

	assert.Error(t, jog.SelectStep(4))
	assert.Error(t, jog.Jog(context.Background(), 'X', 0))
}

func TestJogControlFeedEntry(t *testing.T) {
	title, steps, feed := NewLabel(), NewLabel(), NewLabel()
	jog := NewJogControl(title, steps, feed, motion.NewRecorder(), input.NewTranslator(nil))
	require.NoError(t, jog.Render(units.Imperial))

	require.NoError(t, jog.SetFeedFromText("100"))
	assert.InDelta(t, 2540.0, jog.Feed(), 1e-9)
	assert.Equal(t, "100.000 in/min", feed.Text())

	err := jog.SetFeedFromText("quick")
	assert.ErrorIs(t, err, input.ErrInvalidFormat)
	assert.InDelta(t, 2540.0, jog.Feed(), 1e-9)

	require.NoError(t, jog.Render(units.Metric))
	require.NoError(t, jog.SetFeedPerSecond(true))
	assert.Equal(t, units.MmPerSec, jog.FeedUnits())
	assert.Equal(t, "42.33 mm/sec", feed.Text())
}

func TestJogControlRejectsOverflowingFeed(t *testing.T) {
	title, steps, feed := NewLabel(), NewLabel(), NewLabel()
	rec := motion.NewRecorder()
	jog := NewJogControl(title, steps, feed, rec, nil)
	require.NoError(t, jog.Render(units.Imperial))
	require.NoError(t, jog.SetFeedPerSecond(true))

	err := jog.SetFeedFromText("1e307")
	assert.ErrorIs(t, err, input.ErrInvalidFormat)
	assert.Equal(t, DefaultJogFeed, jog.Feed())
	assert.Equal(t, "1.312 in/sec", feed.Text())

	require.NoError(t, jog.Jog(context.Background(), 'X', 1))
	assert.Equal(t, []string{"$J=G91 G21 X0.254 F2000"}, rec.Lines())
}

func TestJogControlRenderContinuesPastFailedWidget(t *testing.T) {
	title, steps, feed := NewLabel(), NewLabel(), NewLabel()
	jog := NewJogControl(title, steps, feed, motion.NewRecorder(), nil)
	require.NoError(t, jog.Render(units.Metric))

	title.Destroy()
	err := jog.Render(units.Imperial)
	require.ErrorIs(t, err, ErrDestroyed)
	assert.Equal(t, "0.001 in | [0.010 in] | 0.100 in | 1.000 in", steps.Text())
	assert.Equal(t, "78.740 in/min", feed.Text())
}
