package state

import (
	"image/color"
	"sync"
	"time"

	"github.com/five82/mosdash/internal/widget"
)

// Tile is one grid cell as last painted.
type Tile struct {
	Color      color.RGBA
	Label      string
	Foreground color.RGBA
}

// Reading is the latest text of one polled display. LastUpdated is the time
// of the last successful fetch; failures leave it alone.
type Reading struct {
	Text                string
	ErrorText           string
	HasValue            bool
	LastUpdated         time.Time
	ConsecutiveFailures int
}

// IsStale returns true when the display has failed on several ticks in a row.
func (r Reading) IsStale() bool {
	return r.ConsecutiveFailures >= 2
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Tiles       []Tile
	Clicks      int
	Time        Reading
	Temperature Reading
}

// Store collects display updates from the controller and the pollers.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	now      func() time.Time
}

var _ widget.Display = (*Store)(nil)

// OnColorRotated records a tile's new colour.
func (s *Store) OnColorRotated(slot int, c color.RGBA, label string, foreground color.RGBA) {
	if slot < 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.snapshot.Tiles) <= slot {
		s.snapshot.Tiles = append(s.snapshot.Tiles, Tile{})
	}
	s.snapshot.Tiles[slot] = Tile{Color: c, Label: label, Foreground: foreground}
}

// OnClicksUpdated records the click counter.
func (s *Store) OnClicksUpdated(clicks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Clicks = clicks
}

// OnTimeUpdated replaces the time text. ok is false when text stands in for
// a failed fetch.
func (s *Store) OnTimeUpdated(text string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Time = s.next(s.snapshot.Time, text, "", ok)
}

// OnTemperatureUpdated replaces the temperature value and error lines.
func (s *Store) OnTemperatureUpdated(text, errorText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Temperature = s.next(s.snapshot.Temperature, text, errorText, errorText == "")
}

func (s *Store) next(prev Reading, text, errorText string, ok bool) Reading {
	r := Reading{
		Text:      text,
		ErrorText: errorText,
		HasValue:  ok,
	}
	if ok {
		r.LastUpdated = s.clock()
	} else {
		r.LastUpdated = prev.LastUpdated
		r.ConsecutiveFailures = prev.ConsecutiveFailures + 1
	}
	return r
}

func (s *Store) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Tiles = cloneTiles(s.snapshot.Tiles)
	return snap
}

func cloneTiles(tiles []Tile) []Tile {
	if len(tiles) == 0 {
		return nil
	}
	dup := make([]Tile, len(tiles))
	copy(dup, tiles)
	return dup
}
