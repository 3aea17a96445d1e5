package services

import (
	"context"
	"fmt"
	"strings"

	"adminpanel/models"
)

// RoleForm 역할 생성 모달
type RoleForm struct {
	formGate

	api       RoleWriter
	activity  ActivityRecorder
	onSuccess func(models.Role)

	Name        string
	Description string
	Active      bool
}

// NewRoleForm 활성 상태가 기본값인 빈 폼
func NewRoleForm(api RoleWriter, activity ActivityRecorder, onSuccess func(models.Role)) *RoleForm {
	if activity == nil {
		activity = NoopActivityRecorder{}
	}
	return &RoleForm{api: api, activity: activity, onSuccess: onSuccess, Active: true}
}

// roleInput 역할 이름 검증 규칙. 편집기 저장에도 같은 규칙을 쓴다.
type roleInput struct {
	Name string `json:"nombre" validate:"required"`
}

var roleMessages = fieldMessages{
	"nombre": "El nombre del rol es obligatorio",
}

func validateRoleName(name string) error {
	return checkStruct(roleInput{Name: strings.TrimSpace(name)}, roleMessages).orNil()
}

func (f *RoleForm) Validate() error {
	return validateRoleName(f.Name)
}

// Submit creates the role with one call.
func (f *RoleForm) Submit(ctx context.Context, actor string) (role models.Role, err error) {
	if err := f.enter(); err != nil {
		return models.Role{}, err
	}
	defer func() { f.leave(err) }()

	if err := f.Validate(); err != nil {
		return models.Role{}, err
	}

	req := models.RoleRequest{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Active:      f.Active,
	}
	role, err = f.api.Create(ctx, req)
	if err != nil {
		return models.Role{}, err
	}

	f.activity.Record(ctx, actor, models.ActionCreateRole, fmt.Sprintf("role=%d name=%s", role.ID, req.Name))
	if f.onSuccess != nil {
		f.onSuccess(role)
	}
	return role, nil
}
