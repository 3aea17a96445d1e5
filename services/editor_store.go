package services

import (
	"context"
	"sync"
	"time"
)

// EditorStore 편집 세션 저장소. Get 은 호출자가 자유롭게 수정할 수 있는 사본을 돌려주며
// 변경은 Put 또는 Update 로만 반영된다. 없거나 만료된 세션은 ErrSessionNotFound.
type EditorStore interface {
	Get(ctx context.Context, sessionID string) (*EditorState, error)
	Put(ctx context.Context, state *EditorState, ttl time.Duration) error
	// Update 읽기-수정-쓰기를 원자적으로 수행한다. fn 이 에러를 돌려주면 아무것도 쓰지 않는다.
	Update(ctx context.Context, sessionID string, ttl time.Duration, fn func(*EditorState) error) (*EditorState, error)
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	state     *EditorState
	expiresAt time.Time
}

// MemoryEditorStore 단일 프로세스용 저장소
type MemoryEditorStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryEditorStore creates an empty in-process store.
func NewMemoryEditorStore() *MemoryEditorStore {
	return &MemoryEditorStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryEditorStore) Get(_ context.Context, sessionID string) (*EditorState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		delete(m.entries, sessionID)
		return nil, ErrSessionNotFound
	}
	return entry.state.clone(), nil
}

// Put 세션을 저장하고 만료 시간을 갱신한다. ttl 이 0 이면 만료되지 않는다.
func (m *MemoryEditorStore) Put(_ context.Context, state *EditorState, ttl time.Duration) error {
	entry := memoryEntry{state: state.clone()}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[state.SessionID] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryEditorStore) Update(_ context.Context, sessionID string, ttl time.Duration, fn func(*EditorState) error) (*EditorState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := m.now()
	if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
		delete(m.entries, sessionID)
		return nil, ErrSessionNotFound
	}

	state := entry.state.clone()
	if err := fn(state); err != nil {
		return nil, err
	}

	next := memoryEntry{state: state.clone()}
	if ttl > 0 {
		next.expiresAt = now.Add(ttl)
	}
	m.entries[sessionID] = next
	return state, nil
}

func (m *MemoryEditorStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.entries, sessionID)
	m.mu.Unlock()
	return nil
}

// Sweep 만료된 세션 정리. 삭제한 개수를 돌려준다.
func (m *MemoryEditorStore) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, entry := range m.entries {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}

// Len number of live or not yet swept sessions
func (m *MemoryEditorStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
