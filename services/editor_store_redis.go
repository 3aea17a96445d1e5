package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	editorKeyPrefix = "adminpanel:editor:"
	// 같은 세션을 동시에 고칠 때 WATCH 충돌 재시도 횟수
	maxUpdateAttempts = 10
)

// RedisEditorStore 여러 인스턴스가 세션을 공유할 때 사용하는 저장소 (JSON + TTL).
// Update 는 WATCH/MULTI 로 낙관적 잠금을 건다.
type RedisEditorStore struct {
	rdb redis.UniversalClient
}

// NewRedisEditorStore wraps an existing redis client.
func NewRedisEditorStore(rdb redis.UniversalClient) *RedisEditorStore {
	return &RedisEditorStore{rdb: rdb}
}

func editorKey(sessionID string) string {
	return editorKeyPrefix + sessionID
}

func (r *RedisEditorStore) Get(ctx context.Context, sessionID string) (*EditorState, error) {
	raw, err := r.rdb.Get(ctx, editorKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get editor session: %w", err)
	}

	return decodeEditorState(raw)
}

func decodeEditorState(raw []byte) (*EditorState, error) {
	var state EditorState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode editor session: %w", err)
	}
	return &state, nil
}

func (r *RedisEditorStore) Put(ctx context.Context, state *EditorState, ttl time.Duration) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode editor session: %w", err)
	}
	if err := r.rdb.Set(ctx, editorKey(state.SessionID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set editor session: %w", err)
	}
	return nil
}

func (r *RedisEditorStore) Update(ctx context.Context, sessionID string, ttl time.Duration, fn func(*EditorState) error) (*EditorState, error) {
	key := editorKey(sessionID)

	var updated *EditorState
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("redis get editor session: %w", err)
		}

		state, err := decodeEditorState(raw)
		if err != nil {
			return err
		}
		if err := fn(state); err != nil {
			return err
		}
		next, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("encode editor session: %w", err)
		}

		// 다른 인스턴스가 그 사이 키를 바꿨으면 EXEC 가 redis.TxFailedErr 로 실패한다.
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = state
		return nil
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("update editor session %s: %w", sessionID, redis.TxFailedErr)
}

func (r *RedisEditorStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, editorKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete editor session: %w", err)
	}
	return nil
}
