package batch

import (
	"sync"

	"github.com/seedbatch-dev/seedbatch/internal/model"
)

// Accumulator owns the ordered batch of records. Records are only ever
// appended or cleared all at once; readers get copies.
type Accumulator struct {
	mu      sync.RWMutex
	records []model.Record
}

// NewAccumulator creates an accumulator seeded with records.
func NewAccumulator(records []model.Record) *Accumulator {
	a := &Accumulator{}
	a.Append(records)
	return a
}

// Append adds records after the existing ones and returns the new batch size.
func (a *Accumulator) Append(records []model.Record) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, records...)
	return len(a.records)
}

// Reset discards every record.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = nil
}

// Snapshot returns a copy of the current batch.
func (a *Accumulator) Snapshot() []model.Record {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]model.Record, len(a.records))
	copy(out, a.records)
	return out
}

// Len returns the number of records in the batch.
func (a *Accumulator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.records)
}
