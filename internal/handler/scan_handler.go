package handler

import (
	"errors"
	"strconv"
	"time"

	"go-kerat-tracking/internal/apperr"
	"go-kerat-tracking/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ScanRequest adalah satu submit dari halaman scan: lokasi menentukan field
// mana yang wajib (presence check per stage di service).
type ScanRequest struct {
	Lokasi          string `json:"lokasi"`
	IDKerat         string `json:"id_kerat"`
	IDPallet        string `json:"id_pallet"`
	IDOven          string `json:"id_oven"`
	NamaBahanBaku   string `json:"nama_bahan_baku"`
	IDSupplier      string `json:"id_supplier"`
	JumlahBahanBaku int    `json:"jumlah_bahan_baku"`
	JumlahBaglog    string `json:"jumlah_baglog"`
	UsiaBibit       string `json:"usia_bibit"` // format 2006-01-02
	NomorRak        int    `json:"nomor_rak"`
	Baris           int    `json:"baris"`
	Kolom           string `json:"kolom"`
	NomorKumbung    int    `json:"nomor_kumbung"`
}

type ScanHandler struct {
	service service.ScanService
}

func NewScanHandler(s service.ScanService) *ScanHandler {
	return &ScanHandler{service: s}
}

// respondError menerjemahkan taksonomi apperr ke status HTTP. Detail store
// error tidak bocor ke operator.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrUnknownBahanBaku):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}

// Submit menjalankan tepat satu handler stage sesuai lokasi.
func (h *ScanHandler) Submit(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Lokasi == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Please select a Lokasi"})
	}

	var err error
	switch req.Lokasi {
	case "Mixing":
		err = h.service.SubmitMixing(service.MixingInput{
			NamaBahanBaku: req.NamaBahanBaku,
			IDSupplier:    req.IDSupplier,
			Jumlah:        req.JumlahBahanBaku,
		})
	case "Logging":
		err = h.service.SubmitLogging(service.LoggingInput{
			IDKerat:  req.IDKerat,
			IDPallet: req.IDPallet,
		})
	case "Sterilisasi":
		err = h.service.SubmitSterilisasi(service.SterilisasiInput{
			IDPallet: req.IDPallet,
			IDOven:   req.IDOven,
		})
	case "Inokulasi":
		var usiaBibit time.Time
		if req.UsiaBibit != "" {
			usiaBibit, err = time.Parse("2006-01-02", req.UsiaBibit)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "Invalid usia_bibit date, expected YYYY-MM-DD"})
			}
		}
		err = h.service.SubmitInokulasi(service.InokulasiInput{
			IDKerat:      req.IDKerat,
			JumlahBaglog: req.JumlahBaglog,
			UsiaBibit:    usiaBibit,
		})
	case "Inkubasi Masuk":
		err = h.service.SubmitInkubasiMasuk(service.InkubasiMasukInput{
			IDKerat: req.IDKerat,
			Rak:     req.NomorRak,
			Baris:   req.Baris,
			Kolom:   req.Kolom,
		})
	case "Inkubasi Keluar":
		jumlah, convErr := strconv.Atoi(req.JumlahBaglog)
		if convErr != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid jumlah_baglog, expected a number"})
		}
		err = h.service.SubmitInkubasiKeluar(service.InkubasiKeluarInput{
			IDKerat:      req.IDKerat,
			Rak:          req.NomorRak,
			Baris:        req.Baris,
			Kolom:        req.Kolom,
			JumlahBaglog: jumlah,
		})
	case "Kumbung":
		err = h.service.SubmitKumbung(service.KumbungInput{
			IDKerat:      req.IDKerat,
			NomorKumbung: req.NomorKumbung,
			Rak:          req.NomorRak,
			Baris:        req.Baris,
			Kolom:        req.Kolom,
		})
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unknown lokasi: " + req.Lokasi})
	}

	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": req.Lokasi + " data submitted successfully"})
}
