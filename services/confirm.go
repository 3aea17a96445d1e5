package services

import (
	"context"
	"fmt"

	"adminpanel/models"
)

// Confirmation 확인 모달. 확인 시 한 가지 작업만 실행한다.
type Confirmation struct {
	formGate

	Title   string
	Message string

	action   func(ctx context.Context) error
	activity ActivityRecorder
	kind     string
	details  string
}

// NewConfirmation wraps an arbitrary action.
func NewConfirmation(title, message string, action func(ctx context.Context) error) *Confirmation {
	return &Confirmation{Title: title, Message: message, action: action, activity: NoopActivityRecorder{}}
}

// DeleteUserConfirmation 사용자 삭제 확인
func DeleteUserConfirmation(api UserAPI, activity ActivityRecorder, id int64, label string) *Confirmation {
	c := NewConfirmation("Eliminar usuario",
		fmt.Sprintf("¿Está seguro de eliminar al usuario %s?", label),
		func(ctx context.Context) error { return api.Delete(ctx, id) })
	c.withActivity(activity, models.ActionDeleteUser, fmt.Sprintf("user=%d", id))
	return c
}

// DeleteRoleConfirmation 역할 삭제 확인
func DeleteRoleConfirmation(api RoleWriter, activity ActivityRecorder, id int64, label string) *Confirmation {
	c := NewConfirmation("Eliminar rol",
		fmt.Sprintf("¿Está seguro de eliminar el rol %s?", label),
		func(ctx context.Context) error { return api.Delete(ctx, id) })
	c.withActivity(activity, models.ActionDeleteRole, fmt.Sprintf("role=%d", id))
	return c
}

func (c *Confirmation) withActivity(activity ActivityRecorder, kind, details string) {
	if activity != nil {
		c.activity = activity
	}
	c.kind = kind
	c.details = details
}

// Confirm 작업 실행. 진행 중이면 ErrBusy.
func (c *Confirmation) Confirm(ctx context.Context, actor string) (err error) {
	if err := c.enter(); err != nil {
		return err
	}
	defer func() { c.leave(err) }()

	if err := c.action(ctx); err != nil {
		return err
	}
	if c.kind != "" {
		c.activity.Record(ctx, actor, c.kind, c.details)
	}
	return nil
}
