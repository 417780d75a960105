package mcp

import (
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// maxStoredSequences bounds the number of sequences kept for later export.
const maxStoredSequences = 64

// sequenceStore keeps recently generated sequences addressable by ID for the
// lifetime of the server. The oldest entry is evicted once the store is full.
type sequenceStore struct {
	mu      sync.Mutex
	limit   int
	order   []string
	entries map[string][]domain.SequenceEntry
}

func newSequenceStore(limit int) *sequenceStore {
	return &sequenceStore{
		limit:   limit,
		entries: make(map[string][]domain.SequenceEntry),
	}
}

// put stores a sequence and returns its new ID.
func (s *sequenceStore) put(entries []domain.SequenceEntry) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) >= s.limit {
		delete(s.entries, s.order[0])
		s.order = s.order[1:]
	}
	s.order = append(s.order, id)
	s.entries[id] = entries
	return id
}

// get returns a stored sequence or domain.ErrNotFound.
func (s *sequenceStore) get(id string) ([]domain.SequenceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entries, nil
}
