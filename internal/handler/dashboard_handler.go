package handler

import (
	"strconv"

	"go-kerat-tracking/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetBaglogMovement returns baglog movement data for charts
// Query params: days (default 7)
func (h *DashboardHandler) GetBaglogMovement(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetBaglogMovement(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch baglog movement"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// GetProductionStats returns overview statistics
func (h *DashboardHandler) GetProductionStats(c *fiber.Ctx) error {
	stats, err := h.service.GetProductionStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch production stats"})
	}

	return c.JSON(stats)
}
