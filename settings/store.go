// Package settings persists the display preferences. Values live in a
// raft.StableStore, either a BoltDB file or memory.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devadigapratham/cncdro/units"
	"github.com/hashicorp/raft"
	raftboltdb "github.com/hashicorp/raft-boltdb/v2"
)

var (
	keyMeasurementSystem = []byte("measurement_system")
	keyFeedRateUnits     = []byte("feed_rate_units")
)

// Store reads and writes the display preferences
type Store struct {
	kv    raft.StableStore
	close func() error
}

// NewStore wraps an existing stable store
func NewStore(kv raft.StableStore) *Store {
	return &Store{
		kv:    kv,
		close: func() error { return nil },
	}
}

// NewInmem creates a Store that keeps values in memory
func NewInmem() *Store {
	return NewStore(raft.NewInmemStore())
}

// OpenBolt opens (or creates) a BoltDB backed Store at path
func OpenBolt(path string) (*Store, error) {
	// Create the directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	bolt, err := raftboltdb.NewBoltStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	return &Store{
		kv:    bolt,
		close: bolt.Close,
	}, nil
}

// LoadSystem returns the stored measurement system, Metric if none is stored
func (s *Store) LoadSystem() (units.System, error) {
	val, err := s.get(keyMeasurementSystem)
	if err != nil {
		return units.Metric, err
	}
	return units.ParseSystem(val), nil
}

// SaveSystem stores the measurement system
func (s *Store) SaveSystem(system units.System) error {
	return s.set(keyMeasurementSystem, system.String())
}

// LoadFeedUnits returns the stored feed units, mm/min if none are stored
func (s *Store) LoadFeedUnits() (units.FeedRateUnits, error) {
	val, err := s.get(keyFeedRateUnits)
	if err != nil {
		return units.MmPerMin, err
	}
	return units.ParseFeedRateUnits(val), nil
}

// SaveFeedUnits stores the feed units
func (s *Store) SaveFeedUnits(u units.FeedRateUnits) error {
	return s.set(keyFeedRateUnits, u.String())
}

// Close closes the underlying store
func (s *Store) Close() error {
	return s.close()
}

func (s *Store) get(key []byte) (string, error) {
	val, err := s.kv.Get(key)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(val), nil
}

func (s *Store) set(key []byte, val string) error {
	if err := s.kv.Set(key, []byte(val)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// isNotFound matches the missing-key errors of both store implementations;
// the in-memory store has no exported sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, raftboltdb.ErrKeyNotFound) || err.Error() == "not found"
}
