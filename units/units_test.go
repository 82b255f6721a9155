package units

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCanonical(t *testing.T) {
	v, err := ToCanonical(1.0, Imperial)
	require.NoError(t, err)
	assert.Equal(t, 25.4, v)

	v, err = ToCanonical(12.345, Metric)
	require.NoError(t, err)
	assert.Equal(t, 12.345, v)

	v, err = ToCanonical(0.1, Imperial)
	require.NoError(t, err)
	assert.InDelta(t, 2.54, v, 1e-12)
}

func TestToCanonicalRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		for _, s := range []System{Metric, Imperial} {
			_, err := ToCanonical(v, s)
			assert.ErrorIs(t, err, ErrNonFinite)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.001, 25.4, 123.456, -987.654321, 1e6, 1e-6}
	for _, s := range []System{Metric, Imperial} {
		for _, v := range values {
			c, err := ToCanonical(v, s)
			require.NoError(t, err)
			got := FromCanonical(c, s)
			assert.InDelta(t, v, got, 1e-9*math.Max(1, math.Abs(v)), "system %s value %v", s, v)
		}
	}
}

func TestMetricIsIdentity(t *testing.T) {
	for _, v := range []float64{0, 0.1, -3.3333, 1234.5678} {
		c, err := ToCanonical(v, Metric)
		require.NoError(t, err)
		assert.Equal(t, v, c)
		assert.Equal(t, v, FromCanonical(v, Metric))
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		value  float64
		system System
		want   string
	}{
		{100.0, Metric, "100.00"},
		{25.4, Imperial, "1.000"},
		{12.7, Imperial, "0.500"},
		{50.8, Imperial, "2.000"},
		{10.5, Metric, "10.50"},
		{-10.5, Metric, "-10.50"},
		{0, Imperial, "0.000"},
		// half away from zero
		{0.125, Metric, "0.13"},
		{-0.125, Metric, "-0.13"},
		// no negative zero
		{-0.001, Metric, "0.00"},
		{-0.0001, Imperial, "0.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLength(tt.value, tt.system), "FormatLength(%v, %s)", tt.value, tt.system)
	}
}

func TestFormatFeedRate(t *testing.T) {
	assert.Equal(t, "1000.00 mm/min", FormatFeedRate(1000, Metric))
	assert.Equal(t, "39.370 in/min", FormatFeedRate(1000, Imperial))

	assert.Equal(t, "16.67 mm/sec", FormatFeedRateUnits(1000, MmPerSec))
	assert.Equal(t, "0.656 in/sec", FormatFeedRateUnits(1000, InPerSec))
	assert.Equal(t, "2000.00 mm/min", FormatFeedRateUnits(2000, MmPerMin))
}

func TestUnitLabel(t *testing.T) {
	assert.Equal(t, "mm", UnitLabel(Metric))
	assert.Equal(t, "in", UnitLabel(Imperial))
}

func TestParseSystem(t *testing.T) {
	assert.Equal(t, Metric, ParseSystem("Metric"))
	assert.Equal(t, Imperial, ParseSystem("Imperial"))
	assert.Equal(t, Imperial, ParseSystem(" imperial "))
	assert.Equal(t, Imperial, ParseSystem("in"))
	assert.Equal(t, Metric, ParseSystem(""))
	assert.Equal(t, Metric, ParseSystem("furlongs"))

	assert.Equal(t, "Imperial", Imperial.String())
	assert.Equal(t, "Metric", System(42).String())
}

func TestFeedRateUnits(t *testing.T) {
	assert.Equal(t, InPerSec, FeedUnitsFor(Imperial, true))
	assert.Equal(t, MmPerMin, FeedUnitsFor(Metric, false))
	assert.Equal(t, InPerSec, MmPerSec.WithSystem(Imperial))
	assert.Equal(t, MmPerMin, InPerMin.WithSystem(Metric))

	assert.Equal(t, "in/sec", InPerSec.String())
	assert.Equal(t, "mm/min", MmPerMin.String())

	assert.Equal(t, InPerMin, ParseFeedRateUnits("in/min"))
	assert.Equal(t, MmPerSec, ParseFeedRateUnits("mm/sec"))
	assert.Equal(t, MmPerMin, ParseFeedRateUnits("parsecs/fortnight"))
}

func TestToCanonicalOverflow(t *testing.T) {
	_, err := ToCanonical(1e308, Imperial)
	assert.ErrorIs(t, err, ErrNonFinite)

	_, err = ToCanonical(-1e308, Imperial)
	assert.ErrorIs(t, err, ErrNonFinite)

	v, err := ToCanonical(1e308, Metric)
	require.NoError(t, err)
	assert.Equal(t, 1e308, v)
}

func TestFormatLengthLargeValues(t *testing.T) {
	for _, tt := range []struct {
		value  float64
		system System
		suffix string
	}{
		{1e307, Metric, ".00"},
		{1e308, Imperial, ".000"},
		{-1e307, Metric, ".00"},
	} {
		text := FormatLength(tt.value, tt.system)
		assert.NotContains(t, text, "Inf")
		assert.True(t, strings.HasSuffix(text, tt.suffix), "got %q", text)

		back, err := strconv.ParseFloat(text, 64)
		require.NoError(t, err)
		assert.Equal(t, FromCanonical(tt.value, tt.system), back)
	}
}
