package service

import (
	"time"

	"go-kerat-tracking/internal/repository"
)

type DashboardService interface {
	GetBaglogMovement(days int) ([]repository.BaglogMovementData, error)
	GetProductionStats() (*repository.ProductionStats, error)
}

type dashboardService struct {
	dashRepo repository.DashboardRepository
}

func NewDashboardService(dashRepo repository.DashboardRepository) DashboardService {
	return &dashboardService{dashRepo: dashRepo}
}

func (s *dashboardService) GetBaglogMovement(days int) ([]repository.BaglogMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.dashRepo.GetBaglogMovement(startDate, endDate)
}

func (s *dashboardService) GetProductionStats() (*repository.ProductionStats, error) {
	return s.dashRepo.GetProductionStats()
}
