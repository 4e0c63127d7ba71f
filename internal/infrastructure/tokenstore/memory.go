// Package tokenstore holds the local token stores: an in-process store and a
// file store that can seal the token at rest.
package tokenstore

import (
	"context"
	"sync"

	"github.com/jobportal/portal/internal/core/domain"
)

// Memory keeps the token in process memory. Nothing survives a restart.
type Memory struct {
	mu    sync.RWMutex
	token string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", domain.ErrTokenNotFound
	}
	return m.token, nil
}

func (m *Memory) Set(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
