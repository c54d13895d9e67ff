package repository

import (
	"sort"
	"time"

	"go-kerat-tracking/internal/model"

	"gorm.io/gorm"
)

// BaglogMovementData untuk chart data
type BaglogMovementData struct {
	Date        string `json:"date"`
	Inoculated  int    `json:"inoculated"`
	Transferred int    `json:"transferred"`
}

// ProductionStats untuk overview stats
type ProductionStats struct {
	TotalKerat           int64 `json:"total_kerat"`
	KeratInUse           int64 `json:"kerat_in_use"`
	ActiveBatches        int64 `json:"active_batches"`
	SterilizationBacklog int64 `json:"sterilization_backlog"`
	OccupiedSegments     int64 `json:"occupied_segments"`
	KumbungPlacements    int64 `json:"kumbung_placements"`
}

type DashboardRepository interface {
	GetProductionStats() (*ProductionStats, error)
	GetBaglogMovement(startDate, endDate time.Time) ([]BaglogMovementData, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

func (r *dashboardRepo) GetProductionStats() (*ProductionStats, error) {
	var stats ProductionStats

	r.db.Model(&model.Kerat{}).Count(&stats.TotalKerat)
	r.db.Model(&model.Kerat{}).Where("penggunaan = ?", true).Count(&stats.KeratInUse)
	r.db.Model(&model.BatchProduksi{}).Where("penggunaan_kerat = ?", true).Count(&stats.ActiveBatches)
	r.db.Model(&model.BatchProduksi{}).Where("status_sterilisasi = ?", 0).Count(&stats.SterilizationBacklog)
	r.db.Model(&model.Inkubasi{}).Where("waktu_keluar IS NULL").Count(&stats.OccupiedSegments)
	r.db.Model(&model.Kumbung{}).Count(&stats.KumbungPlacements)

	return &stats, nil
}

// GetBaglogMovement meng-aggregate jumlah baglog per hari: masuk lewat
// Inokulasi, keluar inkubasi lewat BatchTransfer. Dua query terpisah lalu
// digabung per tanggal.
func (r *dashboardRepo) GetBaglogMovement(startDate, endDate time.Time) ([]BaglogMovementData, error) {
	type dailySum struct {
		Date  string
		Total int
	}

	byDate := map[string]*BaglogMovementData{}

	var inoculated []dailySum
	err := r.db.Model(&model.Inokulasi{}).
		Select("DATE(created_at) as date, COALESCE(SUM(jumlah_baglog), 0) as total").
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Scan(&inoculated).Error
	if err != nil {
		return nil, err
	}
	for _, row := range inoculated {
		byDate[row.Date] = &BaglogMovementData{Date: row.Date, Inoculated: row.Total}
	}

	var transferred []dailySum
	err = r.db.Model(&model.BatchTransfer{}).
		Select("DATE(created_at) as date, COALESCE(SUM(jumlah_baglog), 0) as total").
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Scan(&transferred).Error
	if err != nil {
		return nil, err
	}
	for _, row := range transferred {
		if entry, ok := byDate[row.Date]; ok {
			entry.Transferred = row.Total
		} else {
			byDate[row.Date] = &BaglogMovementData{Date: row.Date, Transferred: row.Total}
		}
	}

	results := make([]BaglogMovementData, 0, len(byDate))
	for _, entry := range byDate {
		results = append(results, *entry)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Date < results[j].Date })

	return results, nil
}
