package client

import (
	"context"
	"fmt"

	"adminpanel/models"
)

// MaintenanceService /mantenimientos 리소스
type MaintenanceService struct {
	c *Client
}

func (s *MaintenanceService) GetAll(ctx context.Context) ([]models.Maintenance, error) {
	items := make([]models.Maintenance, 0)
	if err := s.c.getJSON(ctx, "maintenance", "/mantenimientos", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id int64) (models.Maintenance, error) {
	var item models.Maintenance
	err := s.c.getJSON(ctx, "maintenance", fmt.Sprintf("/mantenimientos/%d", id), &item)
	return item, err
}
