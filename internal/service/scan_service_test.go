package service

import (
	"fmt"
	"testing"
	"time"

	"go-kerat-tracking/internal/apperr"
	"go-kerat-tracking/internal/model"
	"go-kerat-tracking/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB membuka SQLite in-memory per test, skema + master data sama
// dengan yang di-seed cmd/api.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Kerat{}, &model.Supplier{}, &model.BahanBaku{},
		&model.Pallet{}, &model.Oven{},
		&model.KomposisiMixing{}, &model.BatchProduksi{}, &model.Mixing{},
		&model.Sterilisasi{}, &model.Inokulasi{}, &model.Inkubasi{},
		&model.BatchTransfer{}, &model.Kumbung{},
	))

	require.NoError(t, db.Create(&[]model.Supplier{
		{ID: "S01", Nama: "CV Rimba Lestari"},
		{ID: "S02", Nama: "UD Tani Makmur"},
	}).Error)
	require.NoError(t, db.Create(&[]model.BahanBaku{
		{ID: "SBK-S01", Nama: "Serbuk Kayu", SupplierID: "S01"},
		{ID: "POL-S02", Nama: "Polar", SupplierID: "S02"},
	}).Error)
	require.NoError(t, db.Create(&[]model.Pallet{{ID: "P001"}, {ID: "P002"}}).Error)
	require.NoError(t, db.Create(&[]model.Oven{{ID: "O001"}}).Error)

	return db
}

func newScanService(db *gorm.DB) ScanService {
	return NewScanService(db, ScanRepos{
		Kerat:       repository.NewKeratRepo(db),
		Komposisi:   repository.NewKomposisiRepo(db),
		Batch:       repository.NewBatchRepo(db),
		Sterilisasi: repository.NewSterilisasiRepo(db),
		Inokulasi:   repository.NewInokulasiRepo(db),
		Inkubasi:    repository.NewInkubasiRepo(db),
		Transfer:    repository.NewTransferRepo(db),
		Kumbung:     repository.NewKumbungRepo(db),
		Master:      repository.NewMasterRepo(db),
	}, nil)
}

func TestSubmitMixing_ExactlyOneCurrentPerFamily(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	submits := []MixingInput{
		{NamaBahanBaku: "Polar", IDSupplier: "S02", Jumlah: 10},
		{NamaBahanBaku: "Polar", IDSupplier: "S02", Jumlah: 12},
		{NamaBahanBaku: "Polar", IDSupplier: "S02", Jumlah: 8},
	}
	wantIDs := []string{"POL-S02-0001", "POL-S02-0002", "POL-S02-0003"}

	for i, in := range submits {
		require.NoError(t, svc.SubmitMixing(in))

		var current []model.KomposisiMixing
		require.NoError(t, db.Where("komposisi_terbaru = ?", true).Find(&current).Error)
		require.Len(t, current, 1, "after submit %d", i+1)
		assert.Equal(t, wantIDs[i], current[0].ID)
	}
}

func TestSubmitMixing_SupplierChangeKeepsOneCurrent(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	// Serbuk Kayu dari dua supplier berbeda: family tetap satu current.
	require.NoError(t, svc.SubmitMixing(MixingInput{NamaBahanBaku: "Serbuk Kayu", IDSupplier: "S01", Jumlah: 5}))
	require.NoError(t, svc.SubmitMixing(MixingInput{NamaBahanBaku: "Serbuk Kayu", IDSupplier: "S02", Jumlah: 6}))

	var current []model.KomposisiMixing
	require.NoError(t, db.Where("komposisi_terbaru = ? AND id_bahan_baku LIKE ?", true, "SBK%").Find(&current).Error)
	require.Len(t, current, 1)
	assert.Equal(t, "SBK-S02-0002", current[0].ID)
}

func TestSubmitMixing_UnknownBahanBaku(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	err := svc.SubmitMixing(MixingInput{NamaBahanBaku: "Sekam Padi", IDSupplier: "S01", Jumlah: 5})
	assert.ErrorIs(t, err, apperr.ErrUnknownBahanBaku)

	var count int64
	db.Model(&model.KomposisiMixing{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitLogging_NoActiveComposition(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	err := svc.SubmitLogging(LoggingInput{IDKerat: "K001", IDPallet: "P001"})
	assert.ErrorIs(t, err, apperr.ErrNoActiveComposition)

	var batches, links int64
	db.Model(&model.BatchProduksi{}).Count(&batches)
	db.Model(&model.Mixing{}).Count(&links)
	assert.Zero(t, batches)
	assert.Zero(t, links)
}

func TestSubmitLogging_MalformedKerat(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	err := svc.SubmitLogging(LoggingInput{IDKerat: "X123", IDPallet: "P001"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestMixingLoggingSterilisasiChain(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	require.NoError(t, svc.SubmitMixing(MixingInput{NamaBahanBaku: "Polar", IDSupplier: "S02", Jumlah: 10}))
	require.NoError(t, svc.SubmitLogging(LoggingInput{IDKerat: "K001", IDPallet: "P001"}))

	var batch model.BatchProduksi
	require.NoError(t, db.First(&batch, "id_kerat = ?", "K001").Error)
	assert.Equal(t, 0, batch.StatusSterilisasi)
	assert.True(t, batch.PenggunaanKerat)

	var links []model.Mixing
	require.NoError(t, db.Where("id_batch_produksi = ?", batch.ID).Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, "POL-S02-0001", links[0].KomposisiID)

	require.NoError(t, svc.SubmitSterilisasi(SterilisasiInput{IDPallet: "P001", IDOven: "O001"}))

	require.NoError(t, db.First(&batch, "id = ?", batch.ID).Error)
	assert.Equal(t, 1, batch.StatusSterilisasi)

	var sterilCount int64
	db.Model(&model.Sterilisasi{}).Where("id_batch_produksi = ?", batch.ID).Count(&sterilCount)
	assert.EqualValues(t, 1, sterilCount)

	// Pallet yang sama, semua batch sudah steril
	err := svc.SubmitSterilisasi(SterilisasiInput{IDPallet: "P001", IDOven: "O001"})
	assert.ErrorIs(t, err, apperr.ErrNoUnsterilizedBatches)
}

func TestSubmitInokulasi_DefaultsBaglogCount(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	require.NoError(t, svc.SubmitMixing(MixingInput{NamaBahanBaku: "Polar", IDSupplier: "S02", Jumlah: 10}))
	require.NoError(t, svc.SubmitLogging(LoggingInput{IDKerat: "K001", IDPallet: "P001"}))

	require.NoError(t, svc.SubmitInokulasi(InokulasiInput{
		IDKerat:      "K001",
		JumlahBaglog: "abc",
		UsiaBibit:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}))

	var row model.Inokulasi
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, 15, row.JumlahBaglog)
}

func TestSubmitInokulasi_NoActiveBatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	err := svc.SubmitInokulasi(InokulasiInput{
		IDKerat:      "K001",
		JumlahBaglog: "10",
		UsiaBibit:    time.Now(),
	})
	assert.ErrorIs(t, err, apperr.ErrNoActiveBatch)
}

func TestSubmitInkubasiMasuk_SegmentOccupied(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	require.NoError(t, svc.SubmitMixing(MixingInput{NamaBahanBaku: "Polar", IDSupplier: "S02", Jumlah: 10}))
	require.NoError(t, svc.SubmitLogging(LoggingInput{IDKerat: "K001", IDPallet: "P001"}))
	require.NoError(t, svc.SubmitLogging(LoggingInput{IDKerat: "K002", IDPallet: "P001"}))

	require.NoError(t, svc.SubmitInkubasiMasuk(InkubasiMasukInput{IDKerat: "K001", Rak: 3, Baris: 7, Kolom: "B"}))

	// Kerat K001 dilepas begitu masuk inkubasi
	var batch model.BatchProduksi
	require.NoError(t, db.First(&batch, "id_kerat = ?", "K001").Error)
	assert.False(t, batch.PenggunaanKerat)

	// Segmen yang sama untuk batch kedua kalah
	err := svc.SubmitInkubasiMasuk(InkubasiMasukInput{IDKerat: "K002", Rak: 3, Baris: 7, Kolom: "B"})
	assert.ErrorIs(t, err, apperr.ErrSegmentOccupied)

	var occupied int64
	db.Model(&model.Inkubasi{}).Where("id_segmen = ? AND waktu_keluar IS NULL", "INK-03B07").Count(&occupied)
	assert.EqualValues(t, 1, occupied)
}

func TestSubmitInkubasiKeluar_EmptySegment(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	err := svc.SubmitInkubasiKeluar(InkubasiKeluarInput{
		IDKerat: "K005", Rak: 1, Baris: 1, Kolom: "A", JumlahBaglog: 10,
	})
	assert.ErrorIs(t, err, apperr.ErrSegmentEmpty)

	var transfers int64
	db.Model(&model.BatchTransfer{}).Count(&transfers)
	assert.Zero(t, transfers)
}

func TestFullPipelineThroughKumbung(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	require.NoError(t, svc.SubmitMixing(MixingInput{NamaBahanBaku: "Polar", IDSupplier: "S02", Jumlah: 10}))
	require.NoError(t, svc.SubmitLogging(LoggingInput{IDKerat: "K001", IDPallet: "P001"}))
	require.NoError(t, svc.SubmitSterilisasi(SterilisasiInput{IDPallet: "P001", IDOven: "O001"}))
	require.NoError(t, svc.SubmitInokulasi(InokulasiInput{IDKerat: "K001", JumlahBaglog: "20", UsiaBibit: time.Now()}))
	require.NoError(t, svc.SubmitInkubasiMasuk(InkubasiMasukInput{IDKerat: "K001", Rak: 1, Baris: 1, Kolom: "A"}))

	// Keluar pakai kerat lain: batch ditemukan lewat segmen
	require.NoError(t, svc.SubmitInkubasiKeluar(InkubasiKeluarInput{
		IDKerat: "K002", Rak: 1, Baris: 1, Kolom: "A", JumlahBaglog: 12,
	}))

	var placement model.Inkubasi
	require.NoError(t, db.First(&placement, "id_segmen = ?", "INK-01A01").Error)
	require.NotNil(t, placement.WaktuKeluar)

	var transfer model.BatchTransfer
	require.NoError(t, db.First(&transfer, "id_kerat = ?", "K002").Error)
	assert.True(t, transfer.PenggunaanKerat)
	assert.Equal(t, 12, transfer.JumlahBaglog)
	assert.Equal(t, placement.BatchProduksiID, transfer.BatchProduksiID)

	// Segmen inkubasi sudah kosong, bisa dipakai batch lain lagi
	require.NoError(t, svc.SubmitLogging(LoggingInput{IDKerat: "K003", IDPallet: "P002"}))
	require.NoError(t, svc.SubmitInkubasiMasuk(InkubasiMasukInput{IDKerat: "K003", Rak: 1, Baris: 1, Kolom: "A"}))

	require.NoError(t, svc.SubmitKumbung(KumbungInput{
		IDKerat: "K002", NomorKumbung: 5, Rak: 3, Baris: 7, Kolom: "B",
	}))

	var kumbung model.Kumbung
	require.NoError(t, db.First(&kumbung, "id_segmen = ?", "KMB/05-03B07").Error)
	assert.Equal(t, transfer.ID, kumbung.BatchTransferID)

	require.NoError(t, db.First(&transfer, "id = ?", transfer.ID).Error)
	assert.False(t, transfer.PenggunaanKerat)

	// Transfer sudah diretire: submit kedua tidak menemukan transfer aktif
	err := svc.SubmitKumbung(KumbungInput{IDKerat: "K002", NomorKumbung: 5, Rak: 4, Baris: 1, Kolom: "A"})
	assert.ErrorIs(t, err, apperr.ErrNoActiveTransfer)
}

func TestSubmitKumbung_SegmentOccupied(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	// Placement kumbung existing di segmen target
	require.NoError(t, db.Create(&model.Kumbung{Segmen: "KMB/05-03B07", BatchTransferID: uuid.New()}).Error)
	// Transfer aktif untuk kerat yang di-scan
	require.NoError(t, db.Create(&model.BatchTransfer{
		KeratID:         "K009",
		InkubasiID:      uuid.New(),
		BatchProduksiID: uuid.New(),
		JumlahBaglog:    10,
		PenggunaanKerat: true,
	}).Error)

	err := svc.SubmitKumbung(KumbungInput{IDKerat: "K009", NomorKumbung: 5, Rak: 3, Baris: 7, Kolom: "B"})
	assert.ErrorIs(t, err, apperr.ErrSegmentOccupied)

	// Transfer tetap aktif: submit gagal tanpa side effect
	var transfer model.BatchTransfer
	require.NoError(t, db.First(&transfer, "id_kerat = ?", "K009").Error)
	assert.True(t, transfer.PenggunaanKerat)
}

func TestSubmitKumbung_NoActiveTransfer(t *testing.T) {
	db := setupTestDB(t)
	svc := newScanService(db)

	err := svc.SubmitKumbung(KumbungInput{IDKerat: "K001", NomorKumbung: 5, Rak: 3, Baris: 7, Kolom: "B"})
	assert.ErrorIs(t, err, apperr.ErrNoActiveTransfer)
}
