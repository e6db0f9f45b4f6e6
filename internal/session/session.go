// Package session 管理令牌到序列化用户记录的映射。
// 令牌本身是不透明字符串，是否有效由 Policy 决定，存取由 Store 决定。
package session

import (
	"context"
	"sync"
	"time"

	"classboard_backend/internal/util"
)

// Store 单键粒度的原子读写；键被删除或从未写入时 Get 返回 ErrNoSession
type Store interface {
	Put(ctx context.Context, token string, userJSON []byte) error
	Get(ctx context.Context, token string) ([]byte, error)
	Delete(ctx context.Context, token string) error
}

type memoryEntry struct {
	userJSON  []byte
	expiresAt time.Time
}

// MemoryStore 进程内会话表，默认后端
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryStore ttl 为 0 表示不过期
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Put(ctx context.Context, token string, userJSON []byte) error {
	entry := memoryEntry{userJSON: userJSON}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[token] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return nil, util.ErrNoSession
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return nil, util.ErrNoSession
	}
	return entry.userJSON, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
	return nil
}
