package note

import (
	"context"
	"sync"
)

type memory struct {
	notes map[string]Note
	lock  sync.RWMutex
}

// NewMemory creates a volatile process-local backend. Nothing survives a
// restart.
func NewMemory() Backend {
	return &memory{notes: make(map[string]Note)}
}

func (m *memory) Name() string {
	return "memory"
}

func (m *memory) Get(_ context.Context, id string) (*Note, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	result, ok := m.notes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &result, nil
}

func (m *memory) Set(_ context.Context, id string, req *CreateNoteRequest) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.notes[id] = Note{ID: id, Title: req.Title, Content: req.Content}
	return nil
}

func (m *memory) Keys(_ context.Context) ([]string, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	keys := make([]string, 0, len(m.notes))
	for id := range m.notes {
		keys = append(keys, id)
	}
	return keys, nil
}
