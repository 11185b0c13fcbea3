package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
)

// Memory is an in-memory Store used in tests and when no database is
// configured. Records are kept sorted by (last name, first name) to match
// the Postgres ordering contract.
type Memory struct {
	mu      sync.RWMutex
	records []model.ResearcherRecord
	byID    map[string]int
}

// MemoryOption applies a configuration option to the Memory store.
type MemoryOption func(*Memory)

// WithRecords seeds the store with initial records.
func WithRecords(records ...model.ResearcherRecord) MemoryOption {
	return func(m *Memory) {
		for _, rec := range records {
			m.put(rec)
		}
	}
}

// NewMemory creates an in-memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{byID: make(map[string]int)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Put inserts or replaces a record. Not part of the Store interface: the
// core only reads; mutation exists for seeding and tests.
func (m *Memory) Put(rec model.ResearcherRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(rec)
}

func (m *Memory) put(rec model.ResearcherRecord) {
	if idx, ok := m.byID[rec.ID]; ok {
		m.records[idx] = rec
	} else {
		m.records = append(m.records, rec)
	}
	sort.SliceStable(m.records, func(i, j int) bool {
		a, b := m.records[i], m.records[j]
		if c := strings.Compare(a.LastName, b.LastName); c != 0 {
			return c < 0
		}
		return a.FirstName < b.FirstName
	})
	for i, r := range m.records {
		m.byID[r.ID] = i
	}
}

// ByID implements Store.
func (m *Memory) ByID(_ context.Context, id string) (model.ResearcherRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	idx, ok := m.byID[id]
	if !ok {
		return model.ResearcherRecord{}, ErrNotFound
	}
	return m.records[idx], nil
}

// All implements Store.
func (m *Memory) All(_ context.Context) ([]model.ResearcherRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.ResearcherRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Count implements Store.
func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records), nil
}
