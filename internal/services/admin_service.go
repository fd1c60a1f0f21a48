package services

import (
	"context"

	"weather-info/internal/models"
	"weather-info/internal/repositories"
)

// AdminService registers popular requests for background refresh.
type AdminService struct {
	popularRepo *repositories.PopularRepository
}

func NewAdminService(popularRepo *repositories.PopularRepository) *AdminService {
	return &AdminService{popularRepo: popularRepo}
}

// SaveTask seeds the popularity set with an admin-registered request.
// The initial score keeps it in the refresh rotation until organic traffic
// takes over.
func (s *AdminService) SaveTask(ctx context.Context, task models.Task) error {
	cmd := models.RefreshCommand{Type: task.Title, Args: task.Args}
	return s.popularRepo.Register(ctx, cmd, 10)
}
