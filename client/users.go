package client

import (
	"context"
	"fmt"
	"net/http"

	"adminpanel/models"
)

// UserService /usuarios 리소스
type UserService struct {
	c *Client
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := s.c.getJSON(ctx, "users", "/usuarios", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := s.c.getJSON(ctx, "users", fmt.Sprintf("/usuarios/%d", id), &user)
	return user, err
}

func (s *UserService) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	var user models.User
	err := s.c.sendJSON(ctx, "users", http.MethodPost, "/usuarios", req, &user)
	return user, err
}

func (s *UserService) Update(ctx context.Context, id int64, req models.UserRequest) (models.User, error) {
	var user models.User
	err := s.c.sendJSON(ctx, "users", http.MethodPut, fmt.Sprintf("/usuarios/%d", id), req, &user)
	return user, err
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.c.sendJSON(ctx, "users", http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil, nil)
}
