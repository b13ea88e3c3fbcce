package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nikahlink/backend/internal/metrics"
	"github.com/nikahlink/backend/internal/models"
	"github.com/nikahlink/backend/internal/types"
)

// maxUpsertAttempts bounds the retry loop when two concurrent creators
// compute the same biodata id and one loses the unique-index race.
const maxUpsertAttempts = 3

// BiodataService owns biodata records: identity assignment, upsert
// keyed by owner email, and lookups.
type BiodataService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

var _ IBiodataService = (*BiodataService)(nil)

func NewBiodataService(db *gorm.DB, m *metrics.Metrics) *BiodataService {
	return &BiodataService{db: db, metrics: m}
}

// Upsert creates or updates the biodata owned by email. New records
// get the next sequential biodata id and premium=false; updates
// replace descriptive fields while preserving the id, the premium
// flag, and the marriage-completed flag.
func (s *BiodataService) Upsert(ctx context.Context, email string, req *types.UpsertBiodataRequest) (*models.Biodata, error) {
	for attempt := 1; attempt <= maxUpsertAttempts; attempt++ {
		biodata, err := s.upsertOnce(ctx, email, req)
		if err == nil {
			return biodata, nil
		}
		// A duplicated key means another writer claimed the computed id
		// (or created the same email) first. Re-running recomputes the
		// id, or turns the create into an update.
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("biodata upsert for %s: exhausted %d attempts", email, maxUpsertAttempts)
}

func (s *BiodataService) upsertOnce(ctx context.Context, email string, req *types.UpsertBiodataRequest) (*models.Biodata, error) {
	var result models.Biodata
	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Biodata
		err := tx.Where("email = ?", email).First(&existing).Error
		switch {
		case err == nil:
			applyFields(&existing, req)
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			result = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			nextID, err := nextBiodataID(tx)
			if err != nil {
				return err
			}
			record := models.Biodata{
				BiodataID: nextID,
				Email:     email,
				Premium:   false,
			}
			applyFields(&record, req)
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			result = record
			created = true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	if created {
		s.metrics.IncBiodatasCreated()
	}
	return &result, nil
}

// nextBiodataID reads the current maximum id inside the caller's
// transaction. The unique index on biodata_id rejects the loser when
// two transactions read the same maximum.
func nextBiodataID(tx *gorm.DB) (int, error) {
	var latest models.Biodata
	err := tx.Order("biodata_id DESC").First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return latest.BiodataID + 1, nil
}

func applyFields(b *models.Biodata, req *types.UpsertBiodataRequest) {
	b.BiodataType = req.BiodataType
	b.Name = req.Name
	b.DateOfBirth = req.DateOfBirth
	b.Height = req.Height
	b.Weight = req.Weight
	b.Age = req.Age
	b.Occupation = req.Occupation
	b.Race = req.Race
	b.FathersName = req.FathersName
	b.MothersName = req.MothersName
	b.PermanentDivision = req.PermanentDivision
	b.PresentDivision = req.PresentDivision
	b.ExpectedPartnerAge = req.ExpectedPartnerAge
	b.ExpectedPartnerHeight = req.ExpectedPartnerHeight
	b.ExpectedPartnerWeight = req.ExpectedPartnerWeight
	b.Mobile = req.Mobile
	if req.ProfileImage != "" {
		b.ProfileImage = req.ProfileImage
	}
}

func (s *BiodataService) GetByID(ctx context.Context, id string) (*models.Biodata, error) {
	var biodata models.Biodata
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&biodata).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBiodataNotFound
		}
		return nil, err
	}
	return &biodata, nil
}

func (s *BiodataService) GetByBiodataID(ctx context.Context, biodataID int) (*models.Biodata, error) {
	var biodata models.Biodata
	if err := s.db.WithContext(ctx).Where("biodata_id = ?", biodataID).First(&biodata).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBiodataNotFound
		}
		return nil, err
	}
	return &biodata, nil
}

func (s *BiodataService) GetByEmail(ctx context.Context, email string) (*models.Biodata, error) {
	var biodata models.Biodata
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&biodata).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBiodataNotFound
		}
		return nil, err
	}
	return &biodata, nil
}

func (s *BiodataService) List(ctx context.Context) ([]models.Biodata, error) {
	var biodatas []models.Biodata
	if err := s.db.WithContext(ctx).Order("biodata_id").Find(&biodatas).Error; err != nil {
		return nil, err
	}
	return biodatas, nil
}

// ListByType returns profiles of one biodata type, for the "related
// profiles" view.
func (s *BiodataService) ListByType(ctx context.Context, biodataType string) ([]models.Biodata, error) {
	var biodatas []models.Biodata
	if err := s.db.WithContext(ctx).Where("biodata_type = ?", biodataType).Order("biodata_id").Find(&biodatas).Error; err != nil {
		return nil, err
	}
	return biodatas, nil
}

// SetPhotoURL stores the uploaded photo URL on the owner's biodata.
func (s *BiodataService) SetPhotoURL(ctx context.Context, email, url string) error {
	res := s.db.WithContext(ctx).Model(&models.Biodata{}).
		Where("email = ?", email).
		Update("profile_image", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBiodataNotFound
	}
	return nil
}
