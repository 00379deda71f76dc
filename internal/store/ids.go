package store

import (
	"sync"

	"github.com/kdfca/academy/internal/dependencies/clock"
	"github.com/kdfca/academy/internal/model"
)

// IDAllocator hands out time-derived record IDs (Unix milliseconds).
// IDs strictly increase even when the clock stalls or steps backwards.
type IDAllocator struct {
	clock clock.Clock

	mu   sync.Mutex
	last int64
}

// NewIDAllocator creates an allocator reading the given clock
func NewIDAllocator(clk clock.Clock) *IDAllocator {
	return &IDAllocator{clock: clk}
}

// Next returns a fresh ID greater than every ID returned or observed so far
func (a *IDAllocator) Next() model.RecordID {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.clock.Now().UnixMilli()
	if id <= a.last {
		id = a.last + 1
	}
	a.last = id
	return model.RecordID(id)
}

// Observe records an ID assigned elsewhere so Next never reissues it
func (a *IDAllocator) Observe(id model.RecordID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if int64(id) > a.last {
		a.last = int64(id)
	}
}
