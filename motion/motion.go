// Package motion builds the motion commands handed to the machine. Every
// distance and feed it accepts is already canonical (mm, mm/min).
package motion

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// ErrInvalidJog is returned for jogs that must not reach the machine
var ErrInvalidJog = errors.New("invalid jog")

// Jog is an incremental move of one axis
type Jog struct {
	Axis     byte
	Distance float64 // mm
	Feed     float64 // mm/min
}

// Validate checks the jog before it is turned into G-code
func (j Jog) Validate() error {
	if !strings.ContainsRune("XYZABC", rune(j.Axis)) {
		return fmt.Errorf("%w: unknown axis %q", ErrInvalidJog, j.Axis)
	}
	if math.IsNaN(j.Distance) || math.IsInf(j.Distance, 0) {
		return fmt.Errorf("%w: distance %v", ErrInvalidJog, j.Distance)
	}
	if math.IsNaN(j.Feed) || math.IsInf(j.Feed, 0) || j.Feed <= 0 {
		return fmt.Errorf("%w: feed %v", ErrInvalidJog, j.Feed)
	}
	return nil
}

// String renders the GRBL jog line, forcing millimeters with G21
func (j Jog) String() string {
	return fmt.Sprintf("$J=G91 G21 %c%s F%s", j.Axis, number(j.Distance, 4), number(j.Feed, 1))
}

func number(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Sender hands command lines to the machine transport
type Sender interface {
	Send(ctx context.Context, line string) error
}

// SendJog validates a jog and sends it
func SendJog(ctx context.Context, s Sender, j Jog) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if err := s.Send(ctx, j.String()); err != nil {
		return fmt.Errorf("failed to send jog: %w", err)
	}
	return nil
}

// Recorder is a Sender that keeps every line it receives
type Recorder struct {
	mu    sync.RWMutex
	lines []string
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Send records the line
func (r *Recorder) Send(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	return nil
}

// Lines returns a copy of the recorded lines
func (r *Recorder) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]string, len(r.lines))
	copy(lines, r.lines)
	return lines
}
