package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/nikahlink/backend/internal/models"
)

// PublicStats are the aggregate counts shown on the landing page.
type PublicStats struct {
	TotalBiodatas  int64 `json:"total_biodatas"`
	TotalMale      int64 `json:"total_male"`
	TotalFemale    int64 `json:"total_female"`
	TotalMarriages int64 `json:"total_marriages"`
	TotalPremium   int64 `json:"total_premium"`
}

// DashboardStats extends the public counts with revenue for the admin
// dashboard.
type DashboardStats struct {
	PublicStats
	TotalRevenue int64 `json:"total_revenue"`
}

// StatsService computes aggregate counts over biodatas and payments.
type StatsService struct {
	db *gorm.DB
}

var _ IStatsService = (*StatsService)(nil)

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) Public(ctx context.Context) (*PublicStats, error) {
	stats := &PublicStats{}
	biodatas := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&models.Biodata{})
	}

	if err := biodatas().Count(&stats.TotalBiodatas).Error; err != nil {
		return nil, err
	}
	if err := biodatas().Where("biodata_type = ?", models.BiodataTypeMale).Count(&stats.TotalMale).Error; err != nil {
		return nil, err
	}
	if err := biodatas().Where("biodata_type = ?", models.BiodataTypeFemale).Count(&stats.TotalFemale).Error; err != nil {
		return nil, err
	}
	if err := biodatas().Where("marriage_completed = ?", true).Count(&stats.TotalMarriages).Error; err != nil {
		return nil, err
	}
	if err := biodatas().Where("premium = ?", true).Count(&stats.TotalPremium).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	public, err := s.Public(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{PublicStats: *public}
	err = s.db.WithContext(ctx).Model(&models.PaymentRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
