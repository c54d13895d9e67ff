package handler

import (
	"go-kerat-tracking/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// MasterHandler melayani master data yang di-fetch halaman scan saat load:
// pilihan pallet, oven, dan bahan baku (join supplier).
type MasterHandler struct {
	repo repository.MasterRepository
}

func NewMasterHandler(repo repository.MasterRepository) *MasterHandler {
	return &MasterHandler{repo: repo}
}

func (h *MasterHandler) GetPallets(c *fiber.Ctx) error {
	pallets, err := h.repo.FindAllPallets()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch pallets"})
	}
	return c.JSON(pallets)
}

func (h *MasterHandler) GetOvens(c *fiber.Ctx) error {
	ovens, err := h.repo.FindAllOvens()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch ovens"})
	}
	return c.JSON(ovens)
}

func (h *MasterHandler) GetBahanBaku(c *fiber.Ctx) error {
	list, err := h.repo.FindAllBahanBaku()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch bahan baku"})
	}
	return c.JSON(list)
}
