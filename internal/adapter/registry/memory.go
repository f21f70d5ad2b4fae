package registry

import (
	"context"
	"sync"

	"leetbot/internal/domain/ports"
)

// Memory is the fallback registry used when no Redis address is configured.
// Registrations do not survive a restart.
type Memory struct {
	mu    sync.RWMutex
	users map[string]string
}

var _ ports.UserRegistry = (*Memory)(nil)

// NewMemory builds an empty in-process registry.
func NewMemory() *Memory {
	return &Memory{users: map[string]string{}}
}

func (m *Memory) Register(_ context.Context, discordID, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[discordID] = username
	return nil
}

func (m *Memory) Lookup(_ context.Context, discordID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[discordID], nil
}

func (m *Memory) All(_ context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make(map[string]string, len(m.users))
	for id, name := range m.users {
		users[id] = name
	}
	return users, nil
}
