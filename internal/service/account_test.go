package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikahlink/backend/internal/models"
	"github.com/nikahlink/backend/internal/service"
	"github.com/nikahlink/backend/internal/testhelpers"
)

func TestCreateAccountRejectsDuplicate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAccountService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user@example.com", "User")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "user@example.com", "User Again")
	assert.ErrorIs(t, err, service.ErrAccountExists)
}

func TestEnsureAccountIsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAccountService(db)
	ctx := context.Background()

	first, err := svc.Ensure(ctx, "user@example.com", "User")
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, first.Role)

	second, err := svc.Ensure(ctx, "user@example.com", "User")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	accounts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestEnsureDoesNotDowngradeRole(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAccountService(db)
	ctx := context.Background()

	_, err := svc.Ensure(ctx, "user@example.com", "User")
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Account{}).
		Where("email = ?", "user@example.com").
		Update("role", models.RolePremium).Error)

	account, err := svc.Ensure(ctx, "user@example.com", "User")
	require.NoError(t, err)
	assert.Equal(t, models.RolePremium, account.Role)
}

func TestGetByEmailNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAccountService(db)

	_, err := svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}
