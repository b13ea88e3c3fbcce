package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nikahlink/backend/internal/models"
)

// AccountService manages membership accounts. Role is only mutated by
// the premium workflow.
type AccountService struct {
	db *gorm.DB
}

var _ IAccountService = (*AccountService)(nil)

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Create registers a new account with the member role. A second create
// for the same email is a validation failure, not an update.
func (s *AccountService) Create(ctx context.Context, email, name string) (*models.Account, error) {
	account := models.Account{
		Email: email,
		Name:  name,
		Role:  models.RoleMember,
	}
	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAccountExists
		}
		return nil, err
	}
	return &account, nil
}

// Ensure returns the account for email, creating it with the member
// role when absent. Used by session issuance.
func (s *AccountService) Ensure(ctx context.Context, email, name string) (*models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).
		Where(models.Account{Email: email}).
		Attrs(models.Account{Name: name, Role: models.RoleMember}).
		FirstOrCreate(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountService) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.WithContext(ctx).Order("created_at").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
