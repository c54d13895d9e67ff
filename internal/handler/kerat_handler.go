package handler

import (
	"go-kerat-tracking/internal/service"

	"github.com/gofiber/fiber/v2"
)

type KeratHandler struct {
	service service.KeratService
}

func NewKeratHandler(s service.KeratService) *KeratHandler {
	return &KeratHandler{service: s}
}

// Generate mencetak satu kerat baru. Encoding kode ke gambar QR urusan
// presentasi; response cukup ID-nya.
func (h *KeratHandler) Generate(c *fiber.Ctx) error {
	kerat, err := h.service.Generate()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Kerat created", "data": kerat})
}

func (h *KeratHandler) GetLatest(c *fiber.Ctx) error {
	kerat, err := h.service.GetLatest()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(kerat)
}

func (h *KeratHandler) GetAll(c *fiber.Ctx) error {
	kerats, err := h.service.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(kerats)
}
