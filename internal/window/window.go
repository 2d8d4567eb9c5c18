// Package window enumerates visible top-level windows and brings one to
// the foreground by its exact title.
package window

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoWindowSelected is returned when an empty title is requested.
	ErrNoWindowSelected = errors.New("no window selected")

	// ErrWindowNotFound is returned when no window carries the requested title.
	ErrWindowNotFound = errors.New("window not found")
)

// Info describes a window and its on-screen geometry.
type Info struct {
	Title  string `json:"title"`
	PID    int    `json:"pid"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Backend is the OS-specific window source.
type Backend interface {
	// Windows returns every window the backend can see, titled or not.
	Windows() ([]Info, error)
	// Activate brings the window to the foreground.
	Activate(w Info) error
}

// Manager lists and activates windows through a Backend.
type Manager struct {
	backend Backend
}

// NewManager returns a Manager over the given backend.
func NewManager(backend Backend) *Manager {
	return &Manager{backend: backend}
}

// List returns all windows with a non-blank title.
func (m *Manager) List() ([]Info, error) {
	all, err := m.backend.Windows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}

	visible := make([]Info, 0, len(all))
	for _, w := range all {
		if strings.TrimSpace(w.Title) == "" {
			continue
		}
		visible = append(visible, w)
	}
	return visible, nil
}

// Find returns the first window whose title equals title exactly.
func (m *Manager) Find(title string) (Info, error) {
	if title == "" {
		return Info{}, ErrNoWindowSelected
	}

	windows, err := m.List()
	if err != nil {
		return Info{}, err
	}
	for _, w := range windows {
		if w.Title == title {
			return w, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %q", ErrWindowNotFound, title)
}

// Activate brings the window titled title to the foreground. It reports
// false without error when no window matches.
func (m *Manager) Activate(title string) (bool, error) {
	w, err := m.Find(title)
	if errors.Is(err, ErrWindowNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := m.backend.Activate(w); err != nil {
		return false, fmt.Errorf("failed to activate window %q: %w", title, err)
	}
	return true, nil
}
