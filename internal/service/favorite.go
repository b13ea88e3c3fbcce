package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nikahlink/backend/internal/metrics"
	"github.com/nikahlink/backend/internal/models"
)

// FavoriteService manages bookmark links. Every mutation is keyed by
// the full (viewer, biodata) pair; a viewer can never touch another
// viewer's links.
type FavoriteService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

var _ IFavoriteService = (*FavoriteService)(nil)

func NewFavoriteService(db *gorm.DB, m *metrics.Metrics) *FavoriteService {
	return &FavoriteService{db: db, metrics: m}
}

// Add bookmarks a biodata for the viewer. Adding an existing bookmark
// is a no-op success.
func (s *FavoriteService) Add(ctx context.Context, viewerEmail string, biodataID int) (*models.FavoriteLink, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Biodata{}).
		Where("biodata_id = ?", biodataID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrBiodataNotFound
	}

	var link models.FavoriteLink
	err := s.db.WithContext(ctx).
		Where(models.FavoriteLink{ViewerEmail: viewerEmail, BiodataID: biodataID}).
		FirstOrCreate(&link).Error
	if err != nil {
		return nil, err
	}
	s.metrics.IncFavoritesAdded()
	return &link, nil
}

// Remove deletes the viewer's bookmark for biodataID. Removing a link
// that does not exist is a success with nothing deleted.
func (s *FavoriteService) Remove(ctx context.Context, viewerEmail string, biodataID int) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("viewer_email = ? AND biodata_id = ?", viewerEmail, biodataID).
		Delete(&models.FavoriteLink{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *FavoriteService) List(ctx context.Context, viewerEmail string) ([]models.FavoriteLink, error) {
	var links []models.FavoriteLink
	err := s.db.WithContext(ctx).
		Where("viewer_email = ?", viewerEmail).
		Order("created_at").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (s *FavoriteService) Find(ctx context.Context, viewerEmail string, biodataID int) (*models.FavoriteLink, error) {
	var link models.FavoriteLink
	err := s.db.WithContext(ctx).
		Where("viewer_email = ? AND biodata_id = ?", viewerEmail, biodataID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFavoriteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}
