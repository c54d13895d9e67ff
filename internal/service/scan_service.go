package service

import (
	"fmt"
	"strconv"
	"time"

	"go-kerat-tracking/internal/apperr"
	"go-kerat-tracking/internal/identifier"
	"go-kerat-tracking/internal/model"
	"go-kerat-tracking/internal/repository"
	"go-kerat-tracking/internal/ws"
	"go-kerat-tracking/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Input per lokasi. Presence check generik jalan lewat tag validate sebelum
// handler stage menyentuh store.

type MixingInput struct {
	NamaBahanBaku string `validate:"required"`
	IDSupplier    string `validate:"required"`
	Jumlah        int    `validate:"required,gt=0"`
}

type LoggingInput struct {
	IDKerat  string `validate:"required,kerat_id"`
	IDPallet string `validate:"required"`
}

type SterilisasiInput struct {
	IDPallet string `validate:"required"`
	IDOven   string `validate:"required"`
}

type InokulasiInput struct {
	IDKerat string `validate:"required"`
	// JumlahBaglog string apa adanya dari form; tidak terparse jatuh ke
	// default 15.
	JumlahBaglog string    `validate:"required"`
	UsiaBibit    time.Time `validate:"required"`
}

type InkubasiMasukInput struct {
	IDKerat string `validate:"required"`
	Rak     int    `validate:"required,gt=0"`
	Baris   int    `validate:"required,gt=0"`
	Kolom   string `validate:"required"`
}

type InkubasiKeluarInput struct {
	// Kerat tujuan transfer: tidak harus kerat yang sama dengan batch-nya
	// (batch dicari lewat segmen), tapi wajib di-scan.
	IDKerat      string `validate:"required,kerat_id"`
	Rak          int    `validate:"required,gt=0"`
	Baris        int    `validate:"required,gt=0"`
	Kolom        string `validate:"required"`
	JumlahBaglog int    `validate:"required,gt=0"`
}

type KumbungInput struct {
	IDKerat      string `validate:"required"`
	NomorKumbung int    `validate:"required,gt=0"`
	Rak          int    `validate:"required,gt=0"`
	Baris        int    `validate:"required,gt=0"`
	Kolom        string `validate:"required"`
}

// ScanService adalah state machine tujuh stage: satu submit = satu attempt
// transaksi yang berdiri sendiri.
type ScanService interface {
	SubmitMixing(in MixingInput) error
	SubmitLogging(in LoggingInput) error
	SubmitSterilisasi(in SterilisasiInput) error
	SubmitInokulasi(in InokulasiInput) error
	SubmitInkubasiMasuk(in InkubasiMasukInput) error
	SubmitInkubasiKeluar(in InkubasiKeluarInput) error
	SubmitKumbung(in KumbungInput) error
}

// ScanRepos mengelompokkan repository yang dipakai scanService supaya
// konstruktornya tidak sepuluh argumen.
type ScanRepos struct {
	Kerat       repository.KeratRepository
	Komposisi   repository.KomposisiRepository
	Batch       repository.BatchRepository
	Sterilisasi repository.SterilisasiRepository
	Inokulasi   repository.InokulasiRepository
	Inkubasi    repository.InkubasiRepository
	Transfer    repository.TransferRepository
	Kumbung     repository.KumbungRepository
	Master      repository.MasterRepository
}

type scanService struct {
	db    *gorm.DB
	repos ScanRepos
	hub   *ws.Hub
}

func NewScanService(db *gorm.DB, repos ScanRepos, hub *ws.Hub) ScanService {
	return &scanService{db: db, repos: repos, hub: hub}
}

func validateInput(in interface{}) error {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		first := errs[0]
		return apperr.Validationf("field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return nil
}

// broadcast kirim stage event ke hub setelah commit. Goroutine supaya submit
// tidak menunggu consumer; hub nil (test) berarti no-op.
func (s *scanService) broadcast(lokasi string, detail map[string]interface{}) {
	if s.hub == nil {
		return
	}
	go s.hub.PublishStage(lokasi, detail)
}

func (s *scanService) SubmitMixing(in MixingInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	// Nama di luar tabel singkatan fatal sebelum write apa pun.
	idBahanBaku, err := identifier.BahanBakuID(in.NamaBahanBaku, in.IDSupplier)
	if err != nil {
		return err
	}
	abbrev := identifier.AbbrevOf(idBahanBaku)

	var komposisi model.KomposisiMixing
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 1. Bahan baku harus terdaftar di master data
		bb, err := s.repos.Master.FindBahanBakuByNama(tx, in.NamaBahanBaku)
		if err != nil {
			return apperr.Store(err)
		}
		if bb == nil {
			return fmt.Errorf("%w: bahan baku %q is not registered", apperr.ErrNotFound, in.NamaBahanBaku)
		}

		// 2. Nonaktifkan komposisi terbaru satu family sebelum pengganti masuk
		if _, err := s.repos.Komposisi.DeactivateByAbbrev(tx, abbrev); err != nil {
			return apperr.Store(err)
		}

		// 3. Snapshot ID existing -> sequence berikutnya
		existing, err := s.repos.Komposisi.FindIDsByAbbrev(tx, abbrev)
		if err != nil {
			return apperr.Store(err)
		}

		// 4. Insert komposisi baru sebagai yang terbaru
		komposisi = model.KomposisiMixing{
			ID:               identifier.NextKomposisiID(idBahanBaku, existing),
			BahanBakuID:      idBahanBaku,
			JumlahDigunakan:  in.Jumlah,
			KomposisiTerbaru: true,
		}
		if err := s.repos.Komposisi.Create(tx, &komposisi); err != nil {
			if apperr.IsUniqueViolation(err) {
				return fmt.Errorf("%w: komposisi %s already exists", apperr.ErrConflict, komposisi.ID)
			}
			return apperr.Store(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcast("Mixing", map[string]interface{}{
		"id_komposisi":  komposisi.ID,
		"id_bahan_baku": komposisi.BahanBakuID,
		"jumlah":        komposisi.JumlahDigunakan,
	})
	return nil
}

func (s *scanService) SubmitLogging(in LoggingInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	var batch model.BatchProduksi
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 1. Komposisi terbaru dibaca duluan: gagal di sini = nol write
		aktif, err := s.repos.Komposisi.FindAllActive(tx)
		if err != nil {
			return apperr.Store(err)
		}
		if len(aktif) == 0 {
			return apperr.ErrNoActiveComposition
		}

		// 2. Batch baru untuk kerat yang di-scan
		batch = model.BatchProduksi{
			KeratID:           in.IDKerat,
			PalletID:          in.IDPallet,
			StatusSterilisasi: 0,
			PenggunaanKerat:   true,
		}
		if err := s.repos.Batch.Create(tx, &batch); err != nil {
			return apperr.Store(err)
		}

		// 3. Satu link Mixing per komposisi terbaru saat ini
		links := make([]model.Mixing, 0, len(aktif))
		for _, k := range aktif {
			links = append(links, model.Mixing{
				BatchProduksiID: batch.ID,
				KomposisiID:     k.ID,
			})
		}
		if err := s.repos.Batch.CreateMixingLinks(tx, links); err != nil {
			return apperr.Store(err)
		}

		// 4. Mirror flag di row kerat
		if err := s.repos.Kerat.SetPenggunaan(tx, in.IDKerat, true); err != nil {
			return apperr.Store(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcast("Logging", map[string]interface{}{
		"id_batch_produksi": batch.ID,
		"id_kerat":          batch.KeratID,
		"id_pallet":         batch.PalletID,
	})
	return nil
}

func (s *scanService) SubmitSterilisasi(in SterilisasiInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	var processed int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 1. Semua batch di pallet yang belum disterilkan
		batches, err := s.repos.Batch.FindUnsterilizedByPallet(tx, in.IDPallet)
		if err != nil {
			return apperr.Store(err)
		}
		if len(batches) == 0 {
			return apperr.ErrNoUnsterilizedBatches
		}

		// 2. Satu row Sterilisasi per batch
		rows := make([]model.Sterilisasi, 0, len(batches))
		ids := make([]uuid.UUID, 0, len(batches))
		for _, b := range batches {
			rows = append(rows, model.Sterilisasi{
				OvenID:          in.IDOven,
				BatchProduksiID: b.ID,
			})
			ids = append(ids, b.ID)
		}
		if err := s.repos.Sterilisasi.CreateBatch(tx, rows); err != nil {
			return apperr.Store(err)
		}

		// 3. Bulk update status batch, sepasang dengan insert di atas
		if err := s.repos.Batch.MarkSterilized(tx, ids); err != nil {
			return apperr.Store(err)
		}
		processed = len(batches)
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcast("Sterilisasi", map[string]interface{}{
		"id_pallet": in.IDPallet,
		"id_oven":   in.IDOven,
		"batches":   processed,
	})
	return nil
}

// jumlah baglog default saat input tidak terparse (kebiasaan lama operator
// mengosongkan field untuk satu kerat penuh).
const defaultJumlahBaglog = 15

func (s *scanService) SubmitInokulasi(in InokulasiInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	jumlah, err := strconv.Atoi(in.JumlahBaglog)
	if err != nil || jumlah <= 0 {
		jumlah = defaultJumlahBaglog
	}

	var inokulasi model.Inokulasi
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 1. Batch aktif untuk kerat yang di-scan
		batch, err := s.repos.Batch.FindActiveByKerat(tx, in.IDKerat)
		if err != nil {
			return apperr.Store(err)
		}
		if batch == nil {
			return apperr.ErrNoActiveBatch
		}

		// 2. Record inokulasi
		inokulasi = model.Inokulasi{
			BatchProduksiID:     batch.ID,
			TanggalBuatInokulan: time.Now(),
			UsiaBibit:           in.UsiaBibit,
			JumlahBaglog:        jumlah,
		}
		if err := s.repos.Inokulasi.Create(tx, &inokulasi); err != nil {
			return apperr.Store(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcast("Inokulasi", map[string]interface{}{
		"id_batch_produksi": inokulasi.BatchProduksiID,
		"jumlah_baglog":     inokulasi.JumlahBaglog,
	})
	return nil
}

func (s *scanService) SubmitInkubasiMasuk(in InkubasiMasukInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	segmen, err := identifier.SegmenID(identifier.ZoneInkubasi, in.Rak, in.Baris, in.Kolom)
	if err != nil {
		return err
	}

	var batch *model.BatchProduksi
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 1. Batch aktif untuk kerat yang di-scan
		batch, err = s.repos.Batch.FindActiveByKerat(tx, in.IDKerat)
		if err != nil {
			return apperr.Store(err)
		}
		if batch == nil {
			return apperr.ErrNoActiveBatch
		}

		// 2. Placement baru; partial unique index yang memutuskan menang/kalah
		// kalau dua submit rebutan segmen yang sama.
		row := model.Inkubasi{
			BatchProduksiID: batch.ID,
			Segmen:          segmen,
		}
		if err := s.repos.Inkubasi.Create(tx, &row); err != nil {
			if apperr.IsUniqueViolation(err) {
				return apperr.ErrSegmentOccupied
			}
			return apperr.Store(err)
		}

		// 3. Kerat dilepas: batch selesai memakai kerat begitu masuk inkubasi
		if err := s.repos.Batch.SetPenggunaanKerat(tx, batch.ID, false); err != nil {
			return apperr.Store(err)
		}
		if err := s.repos.Kerat.SetPenggunaan(tx, batch.KeratID, false); err != nil {
			return apperr.Store(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcast("Inkubasi Masuk", map[string]interface{}{
		"id_batch_produksi": batch.ID,
		"id_segmen":         segmen,
	})
	return nil
}

func (s *scanService) SubmitInkubasiKeluar(in InkubasiKeluarInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	segmen, err := identifier.SegmenID(identifier.ZoneInkubasi, in.Rak, in.Baris, in.Kolom)
	if err != nil {
		return err
	}

	var transfer model.BatchTransfer
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 1. Placement yang masih terisi di segmen itu
		placement, err := s.repos.Inkubasi.FindOccupiedBySegmen(tx, segmen)
		if err != nil {
			return apperr.Store(err)
		}
		if placement == nil {
			return apperr.ErrSegmentEmpty
		}

		// 2. Kosongkan segmen
		if err := s.repos.Inkubasi.SetWaktuKeluar(tx, placement.ID, time.Now()); err != nil {
			return apperr.Store(err)
		}

		// 3. Transfer aktif untuk kerat tujuan
		transfer = model.BatchTransfer{
			KeratID:         in.IDKerat,
			InkubasiID:      placement.ID,
			BatchProduksiID: placement.BatchProduksiID,
			JumlahBaglog:    in.JumlahBaglog,
			PenggunaanKerat: true,
		}
		if err := s.repos.Transfer.Create(tx, &transfer); err != nil {
			return apperr.Store(err)
		}

		// 4. Mirror flag kerat transfer
		if err := s.repos.Kerat.SetPenggunaan(tx, in.IDKerat, true); err != nil {
			return apperr.Store(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcast("Inkubasi Keluar", map[string]interface{}{
		"id_batch_transfer": transfer.ID,
		"id_segmen":         segmen,
		"jumlah_baglog":     transfer.JumlahBaglog,
	})
	return nil
}

func (s *scanService) SubmitKumbung(in KumbungInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	segmen, err := identifier.SegmenID(identifier.KumbungZone(in.NomorKumbung), in.Rak, in.Baris, in.Kolom)
	if err != nil {
		return err
	}

	var placement model.Kumbung
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 1. Transfer aktif untuk kerat yang di-scan
		transfer, err := s.repos.Transfer.FindActiveByKerat(tx, in.IDKerat)
		if err != nil {
			return apperr.Store(err)
		}
		if transfer == nil {
			return apperr.ErrNoActiveTransfer
		}

		// 2. Segmen kumbung sekali pakai: cek dulu, unique index jadi backstop
		// kalau submit lain menyelinap di antara cek dan insert.
		occupied, err := s.repos.Kumbung.ExistsBySegmen(tx, segmen)
		if err != nil {
			return apperr.Store(err)
		}
		if occupied {
			return apperr.ErrSegmentOccupied
		}

		placement = model.Kumbung{
			Segmen:          segmen,
			BatchTransferID: transfer.ID,
		}
		if err := s.repos.Kumbung.Create(tx, &placement); err != nil {
			if apperr.IsUniqueViolation(err) {
				return apperr.ErrSegmentOccupied
			}
			return apperr.Store(err)
		}

		// 3. Transfer selesai, kerat kembali ke pool
		if err := s.repos.Transfer.SetPenggunaanKerat(tx, transfer.ID, false); err != nil {
			return apperr.Store(err)
		}
		if err := s.repos.Kerat.SetPenggunaan(tx, transfer.KeratID, false); err != nil {
			return apperr.Store(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcast("Kumbung", map[string]interface{}{
		"id_segmen":         placement.Segmen,
		"id_batch_transfer": placement.BatchTransferID,
	})
	return nil
}
