// Package display contains the surfaces that show canonical machine values
// in the active measurement system: the DRO, the status bar and the jog
// controls.
package display

import (
	"errors"
	"sync"
)

// ErrDestroyed is returned when text is set on a destroyed widget
var ErrDestroyed = errors.New("widget destroyed")

// TextSetter is the only toolkit call a surface makes
type TextSetter interface {
	SetText(text string) error
}

// Label is a headless text widget
type Label struct {
	mu        sync.RWMutex
	text      string
	destroyed bool
}

// NewLabel creates an empty label
func NewLabel() *Label {
	return &Label{}
}

// SetText replaces the label text
func (l *Label) SetText(text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.destroyed {
		return ErrDestroyed
	}
	l.text = text
	return nil
}

// Text returns the label text
func (l *Label) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text
}

// Destroy makes every later SetText fail
func (l *Label) Destroy() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroyed = true
}
