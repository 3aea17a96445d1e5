package services

import (
	"context"
	"sync"

	"adminpanel/models"
)

// UserAPI 사용자 리소스 호출
type UserAPI interface {
	Create(ctx context.Context, req models.UserRequest) (models.User, error)
	Update(ctx context.Context, id int64, req models.UserRequest) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// RoleWriter 역할 생성/삭제 호출
type RoleWriter interface {
	Create(ctx context.Context, req models.RoleRequest) (models.Role, error)
	Delete(ctx context.Context, id int64) error
}

// formGate 폼 제출 중복 방지
type formGate struct {
	mu      sync.Mutex
	busy    bool
	lastErr string
}

func (g *formGate) enter() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return ErrBusy
	}
	g.busy = true
	return nil
}

// leave clears busy and keeps the message of err (empty on success).
func (g *formGate) leave(err error) {
	g.mu.Lock()
	g.busy = false
	g.lastErr = UserMessage(err)
	g.mu.Unlock()
}

// Busy reports whether a submission is in flight.
func (g *formGate) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// LastError 마지막 제출 실패 메시지
func (g *formGate) LastError() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}
