package client

import (
	"context"
	"fmt"
	"net/http"

	"adminpanel/models"
)

// ModuleService /modulos 리소스
type ModuleService struct {
	c *Client
}

func (s *ModuleService) GetAll(ctx context.Context) ([]models.Module, error) {
	modules := make([]models.Module, 0)
	if err := s.c.getJSON(ctx, "modules", "/modulos", &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// PermissionService 역할별 권한 리소스
type PermissionService struct {
	c *Client
}

// GetByRole 역할에 이미 부여된 권한 목록
func (s *PermissionService) GetByRole(ctx context.Context, roleID int64) ([]models.PermissionRecord, error) {
	records := make([]models.PermissionRecord, 0)
	if err := s.c.getJSON(ctx, "permissions", fmt.Sprintf("/permisos/rol/%d", roleID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SyncRolePermissions 역할의 전체 권한 집합을 한 번에 교체한다.
// 추가/수정/삭제 판정은 백엔드가 수행한다.
func (s *PermissionService) SyncRolePermissions(ctx context.Context, roleID int64, records []models.PermissionRequest) error {
	payload := struct {
		RoleID      int64                      `json:"rolId"`
		Permissions []models.PermissionRequest `json:"permisos"`
	}{
		RoleID:      roleID,
		Permissions: records,
	}
	return s.c.sendJSON(ctx, "permissions", http.MethodPut, fmt.Sprintf("/permisos/rol/%d/sincronizar", roleID), payload, nil)
}
