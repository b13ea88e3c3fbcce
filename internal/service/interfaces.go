package service

import (
	"context"

	"github.com/nikahlink/backend/internal/models"
	"github.com/nikahlink/backend/internal/types"
)

// ISessionService issues and verifies session tokens.
type ISessionService interface {
	IssueToken(email, role string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IBiodataService owns biodata records.
type IBiodataService interface {
	Upsert(ctx context.Context, email string, req *types.UpsertBiodataRequest) (*models.Biodata, error)
	GetByID(ctx context.Context, id string) (*models.Biodata, error)
	GetByBiodataID(ctx context.Context, biodataID int) (*models.Biodata, error)
	GetByEmail(ctx context.Context, email string) (*models.Biodata, error)
	List(ctx context.Context) ([]models.Biodata, error)
	ListByType(ctx context.Context, biodataType string) ([]models.Biodata, error)
	SetPhotoURL(ctx context.Context, email, url string) error
}

// IAccountService manages membership accounts.
type IAccountService interface {
	Create(ctx context.Context, email, name string) (*models.Account, error)
	Ensure(ctx context.Context, email, name string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
}

// IPremiumService drives the premium request lifecycle.
type IPremiumService interface {
	Request(ctx context.Context, email string, biodataID int, name string) (*models.PremiumRequest, error)
	Approve(ctx context.Context, email string) error
	StatusFor(ctx context.Context, biodataID int) (string, error)
	List(ctx context.Context) ([]models.PremiumRequest, error)
	Reconcile(ctx context.Context) (int, error)
}

// IFavoriteService manages bookmark links.
type IFavoriteService interface {
	Add(ctx context.Context, viewerEmail string, biodataID int) (*models.FavoriteLink, error)
	Remove(ctx context.Context, viewerEmail string, biodataID int) (int64, error)
	List(ctx context.Context, viewerEmail string) ([]models.FavoriteLink, error)
	Find(ctx context.Context, viewerEmail string, biodataID int) (*models.FavoriteLink, error)
}

// IPaymentService delegates charges to the gateway and audits them.
type IPaymentService interface {
	CreateIntent(ctx context.Context, amount int64) (id, clientSecret string, err error)
	Record(ctx context.Context, email string, biodataID int, amount int64, intentID string) (*models.PaymentRecord, error)
	ListByPayer(ctx context.Context, email string) ([]models.PaymentRecord, error)
	Delete(ctx context.Context, id string) error
}

// IStatsService computes aggregate counts.
type IStatsService interface {
	Public(ctx context.Context) (*PublicStats, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
