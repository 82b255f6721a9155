package settings

import (
	"path/filepath"
	"testing"

	"github.com/devadigapratham/cncdro/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInmemDefaults(t *testing.T) {
	s := NewInmem()
	defer s.Close()

	system, err := s.LoadSystem()
	require.NoError(t, err)
	assert.Equal(t, units.Metric, system)

	feed, err := s.LoadFeedUnits()
	require.NoError(t, err)
	assert.Equal(t, units.MmPerMin, feed)
}

func TestInmemRoundTrip(t *testing.T) {
	s := NewInmem()

	require.NoError(t, s.SaveSystem(units.Imperial))
	require.NoError(t, s.SaveFeedUnits(units.InPerSec))

	system, err := s.LoadSystem()
	require.NoError(t, err)
	assert.Equal(t, units.Imperial, system)

	feed, err := s.LoadFeedUnits()
	require.NoError(t, err)
	assert.Equal(t, units.InPerSec, feed)
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.db")

	s, err := OpenBolt(path)
	require.NoError(t, err)

	system, err := s.LoadSystem()
	require.NoError(t, err)
	assert.Equal(t, units.Metric, system)

	require.NoError(t, s.SaveSystem(units.Imperial))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	system, err = s.LoadSystem()
	require.NoError(t, err)
	assert.Equal(t, units.Imperial, system)
}
