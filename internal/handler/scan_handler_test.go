package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-kerat-tracking/internal/apperr"
	"go-kerat-tracking/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScanService mengembalikan error yang sama untuk semua stage, cukup
// untuk menguji translasi taksonomi error ke status HTTP.
type stubScanService struct {
	err error
}

func (s *stubScanService) SubmitMixing(service.MixingInput) error                 { return s.err }
func (s *stubScanService) SubmitLogging(service.LoggingInput) error               { return s.err }
func (s *stubScanService) SubmitSterilisasi(service.SterilisasiInput) error       { return s.err }
func (s *stubScanService) SubmitInokulasi(service.InokulasiInput) error           { return s.err }
func (s *stubScanService) SubmitInkubasiMasuk(service.InkubasiMasukInput) error   { return s.err }
func (s *stubScanService) SubmitInkubasiKeluar(service.InkubasiKeluarInput) error { return s.err }
func (s *stubScanService) SubmitKumbung(service.KumbungInput) error               { return s.err }

func newScanApp(svcErr error) *fiber.App {
	app := fiber.New()
	h := NewScanHandler(&stubScanService{err: svcErr})
	app.Post("/api/v1/scan", h.Submit)
	return app
}

func postScan(t *testing.T, app *fiber.App, body map[string]interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/scan", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSubmit_RequiresLokasi(t *testing.T) {
	app := newScanApp(nil)
	resp := postScan(t, app, map[string]interface{}{})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestSubmit_UnknownLokasi(t *testing.T) {
	app := newScanApp(nil)
	resp := postScan(t, app, map[string]interface{}{"lokasi": "Gudang"})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestSubmit_Success(t *testing.T) {
	app := newScanApp(nil)
	resp := postScan(t, app, map[string]interface{}{
		"lokasi":    "Logging",
		"id_kerat":  "K001",
		"id_pallet": "P001",
	})
	require.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Logging data submitted successfully")
}

func TestSubmit_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validationf("missing field"), 400},
		{"unknown bahan baku", apperr.ErrUnknownBahanBaku, 400},
		{"not found", apperr.ErrNoActiveBatch, 404},
		{"conflict", apperr.ErrSegmentOccupied, 409},
		{"store", apperr.Store(assert.AnError), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newScanApp(tt.err)
			resp := postScan(t, app, map[string]interface{}{
				"lokasi":    "Logging",
				"id_kerat":  "K001",
				"id_pallet": "P001",
			})
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestSubmit_InvalidKeluarBaglog(t *testing.T) {
	app := newScanApp(nil)
	resp := postScan(t, app, map[string]interface{}{
		"lokasi":        "Inkubasi Keluar",
		"id_kerat":      "K001",
		"nomor_rak":     1,
		"baris":         1,
		"kolom":         "A",
		"jumlah_baglog": "abc",
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestSubmit_InvalidUsiaBibit(t *testing.T) {
	app := newScanApp(nil)
	resp := postScan(t, app, map[string]interface{}{
		"lokasi":        "Inokulasi",
		"id_kerat":      "K001",
		"jumlah_baglog": "10",
		"usia_bibit":    "01-06-2024",
	})
	assert.Equal(t, 400, resp.StatusCode)
}
