package client

import (
	"context"
	"fmt"
	"net/http"

	"adminpanel/models"
)

// RoleService /roles 리소스
type RoleService struct {
	c *Client
}

func (s *RoleService) GetAll(ctx context.Context) ([]models.Role, error) {
	roles := make([]models.Role, 0)
	if err := s.c.getJSON(ctx, "roles", "/roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *RoleService) Get(ctx context.Context, id int64) (models.Role, error) {
	var role models.Role
	err := s.c.getJSON(ctx, "roles", fmt.Sprintf("/roles/%d", id), &role)
	return role, err
}

func (s *RoleService) Create(ctx context.Context, req models.RoleRequest) (models.Role, error) {
	var role models.Role
	err := s.c.sendJSON(ctx, "roles", http.MethodPost, "/roles", req, &role)
	return role, err
}

func (s *RoleService) Update(ctx context.Context, id int64, req models.RoleRequest) (models.Role, error) {
	var role models.Role
	err := s.c.sendJSON(ctx, "roles", http.MethodPut, fmt.Sprintf("/roles/%d", id), req, &role)
	return role, err
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	return s.c.sendJSON(ctx, "roles", http.MethodDelete, fmt.Sprintf("/roles/%d", id), nil, nil)
}
