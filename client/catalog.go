package client

import (
	"context"
)

// CatalogService 읽기 전용 목록 리소스 (sedes, areas, cargos ...)
type CatalogService[T any] struct {
	c        *Client
	resource string
	path     string
}

func newCatalog[T any](c *Client, resource, path string) *CatalogService[T] {
	return &CatalogService[T]{c: c, resource: resource, path: path}
}

func (s *CatalogService[T]) GetAll(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := s.c.getJSON(ctx, s.resource, s.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}
