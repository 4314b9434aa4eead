package clock

import (
	"sync"
	"time"

	"github.com/x-xyz/goauction/domain"
)

type system struct{}

// New returns the wall clock
func New() domain.Clock {
	return system{}
}

func (system) Now() time.Time {
	return time.Now()
}

// Manual is a clock that only moves when told to. It never goes backwards.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.After(m.now) {
		m.now = t
	}
}
