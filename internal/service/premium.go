package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/nikahlink/backend/internal/metrics"
	"github.com/nikahlink/backend/internal/models"
)

// Premium status values returned by StatusFor.
const (
	PremiumStatusNone     = "none"
	PremiumStatusPending  = models.PremiumStatusPending
	PremiumStatusAccepted = models.PremiumStatusAccepted
)

// Notifier is invoked after a premium approval commits. Failures are
// logged, never surfaced to the caller.
type Notifier interface {
	NotifyPremiumApproved(email string, biodataID int) error
}

// PremiumService drives the none -> pending -> accepted state machine
// and is the only writer of Biodata.Premium and Account.Role. The
// approval transition runs in a single transaction so the two records
// can never be observed half-updated by it.
type PremiumService struct {
	db       *gorm.DB
	notifier Notifier
	metrics  *metrics.Metrics
}

var _ IPremiumService = (*PremiumService)(nil)

func NewPremiumService(db *gorm.DB, notifier Notifier, m *metrics.Metrics) *PremiumService {
	return &PremiumService{db: db, notifier: notifier, metrics: m}
}

// Request creates a pending premium request for the biodata. The
// biodata must exist and belong to email; a second request while one
// is pending is rejected.
func (s *PremiumService) Request(ctx context.Context, email string, biodataID int, name string) (*models.PremiumRequest, error) {
	var biodata models.Biodata
	if err := s.db.WithContext(ctx).Where("biodata_id = ?", biodataID).First(&biodata).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBiodataNotFound
		}
		return nil, err
	}
	if biodata.Email != email {
		return nil, ErrNotOwner
	}

	var pending int64
	if err := s.db.WithContext(ctx).Model(&models.PremiumRequest{}).
		Where("email = ? AND status = ?", email, models.PremiumStatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, ErrRequestPending
	}

	request := models.PremiumRequest{
		Email:     email,
		BiodataID: biodataID,
		Name:      name,
		Status:    models.PremiumStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&request).Error; err != nil {
		return nil, err
	}
	s.metrics.IncPremiumRequested()
	return &request, nil
}

// Approve accepts the pending request for email and synchronizes both
// downstream records: Biodata.Premium and Account.Role. All three
// writes commit or roll back together.
func (s *PremiumService) Approve(ctx context.Context, email string) error {
	var approvedBiodataID int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request models.PremiumRequest
		err := tx.Where("email = ? AND status = ?", email, models.PremiumStatusPending).
			First(&request).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		if err != nil {
			return err
		}

		request.Status = models.PremiumStatusAccepted
		if err := tx.Save(&request).Error; err != nil {
			return err
		}
		approvedBiodataID = request.BiodataID

		res := tx.Model(&models.Biodata{}).
			Where("biodata_id = ?", request.BiodataID).
			Update("premium", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBiodataNotFound
		}

		// The account may not exist yet when the owner never opened a
		// session; creating it here keeps both records in step.
		var account models.Account
		err = tx.Where(models.Account{Email: email}).
			Attrs(models.Account{Name: request.Name}).
			FirstOrCreate(&account).Error
		if err != nil {
			return err
		}
		account.Role = models.RolePremium
		return tx.Save(&account).Error
	})
	if err != nil {
		return err
	}

	s.metrics.IncPremiumApproved()
	if s.notifier != nil {
		if nerr := s.notifier.NotifyPremiumApproved(email, approvedBiodataID); nerr != nil {
			log.Printf("[PremiumService] approval notification for %s failed: %v", email, nerr)
		}
	}
	return nil
}

// StatusFor reports the request state for a biodata id.
func (s *PremiumService) StatusFor(ctx context.Context, biodataID int) (string, error) {
	var request models.PremiumRequest
	err := s.db.WithContext(ctx).
		Where("biodata_id = ?", biodataID).
		Order("created_at DESC").
		First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PremiumStatusNone, nil
	}
	if err != nil {
		return "", err
	}
	return request.Status, nil
}

func (s *PremiumService) List(ctx context.Context) ([]models.PremiumRequest, error) {
	var requests []models.PremiumRequest
	if err := s.db.WithContext(ctx).Order("created_at").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Reconcile sweeps for premium biodatas whose account role is out of
// step (state a crashed writer or manual edit can leave behind) and
// re-applies the account side of the transition. Returns the number of
// accounts repaired.
func (s *PremiumService) Reconcile(ctx context.Context) (int, error) {
	var biodatas []models.Biodata
	if err := s.db.WithContext(ctx).Where("premium = ?", true).Find(&biodatas).Error; err != nil {
		return 0, err
	}

	repaired := 0
	for _, biodata := range biodatas {
		var account models.Account
		err := s.db.WithContext(ctx).Where("email = ?", biodata.Email).First(&account).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			account = models.Account{Email: biodata.Email, Name: biodata.Name, Role: models.RolePremium}
			if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
				return repaired, fmt.Errorf("%w: create account for %s: %v", ErrPartialSync, biodata.Email, err)
			}
			repaired++
			continue
		}
		if err != nil {
			return repaired, err
		}
		if account.Role == models.RolePremium || account.Role == models.RoleAdmin {
			continue
		}
		if err := s.db.WithContext(ctx).Model(&account).Update("role", models.RolePremium).Error; err != nil {
			return repaired, fmt.Errorf("%w: update role for %s: %v", ErrPartialSync, biodata.Email, err)
		}
		repaired++
	}
	return repaired, nil
}
