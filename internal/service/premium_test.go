package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nikahlink/backend/internal/models"
	"github.com/nikahlink/backend/internal/service"
	"github.com/nikahlink/backend/internal/testhelpers"
)

type recordingNotifier struct {
	emails []string
}

func (n *recordingNotifier) NotifyPremiumApproved(email string, biodataID int) error {
	n.emails = append(n.emails, email)
	return nil
}

func setupPremiumTest(t *testing.T) (*service.BiodataService, *service.PremiumService, *recordingNotifier, *gorm.DB) {
	db := testhelpers.SetupTestDatabase(t)
	notifier := &recordingNotifier{}
	biodatas := service.NewBiodataService(db, nil)
	premium := service.NewPremiumService(db, notifier, nil)
	return biodatas, premium, notifier, db
}

func TestRequestThenApproveSynchronizesBothRecords(t *testing.T) {
	biodatas, premium, notifier, db := setupPremiumTest(t)
	ctx := context.Background()

	_, err := biodatas.Upsert(ctx, "a@x.com", upsertRequest("A", "Male"))
	require.NoError(t, err)
	created, err := biodatas.Upsert(ctx, "y@x.com", upsertRequest("Y", "Female"))
	require.NoError(t, err)
	require.Equal(t, 2, created.BiodataID)

	_, err = premium.Request(ctx, "y@x.com", 2, "Y")
	require.NoError(t, err)

	require.NoError(t, premium.Approve(ctx, "y@x.com"))

	biodata, err := biodatas.GetByBiodataID(ctx, 2)
	require.NoError(t, err)
	assert.True(t, biodata.Premium)

	var account models.Account
	require.NoError(t, db.Where("email = ?", "y@x.com").First(&account).Error)
	assert.Equal(t, models.RolePremium, account.Role)

	status, err := premium.StatusFor(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, service.PremiumStatusAccepted, status)

	assert.Equal(t, []string{"y@x.com"}, notifier.emails)
}

func TestRequestRejectsForeignBiodata(t *testing.T) {
	biodatas, premium, _, _ := setupPremiumTest(t)
	ctx := context.Background()

	_, err := biodatas.Upsert(ctx, "owner@x.com", upsertRequest("Owner", "Male"))
	require.NoError(t, err)

	_, err = premium.Request(ctx, "intruder@x.com", 1, "Intruder")
	assert.ErrorIs(t, err, service.ErrNotOwner)
}

func TestRequestRejectsMissingBiodata(t *testing.T) {
	_, premium, _, _ := setupPremiumTest(t)

	_, err := premium.Request(context.Background(), "x@x.com", 99, "X")
	assert.ErrorIs(t, err, service.ErrBiodataNotFound)
}

func TestRequestRejectsSecondPending(t *testing.T) {
	biodatas, premium, _, _ := setupPremiumTest(t)
	ctx := context.Background()

	_, err := biodatas.Upsert(ctx, "owner@x.com", upsertRequest("Owner", "Male"))
	require.NoError(t, err)

	_, err = premium.Request(ctx, "owner@x.com", 1, "Owner")
	require.NoError(t, err)
	_, err = premium.Request(ctx, "owner@x.com", 1, "Owner")
	assert.ErrorIs(t, err, service.ErrRequestPending)
}

func TestApproveWithoutRequest(t *testing.T) {
	_, premium, _, _ := setupPremiumTest(t)

	err := premium.Approve(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, service.ErrRequestNotFound)
}

func TestStatusForWithoutRequest(t *testing.T) {
	biodatas, premium, _, _ := setupPremiumTest(t)
	ctx := context.Background()

	_, err := biodatas.Upsert(ctx, "owner@x.com", upsertRequest("Owner", "Male"))
	require.NoError(t, err)

	status, err := premium.StatusFor(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, service.PremiumStatusNone, status)
}

func TestReconcileRepairsDivergedAccount(t *testing.T) {
	biodatas, premium, _, db := setupPremiumTest(t)
	ctx := context.Background()

	_, err := biodatas.Upsert(ctx, "owner@x.com", upsertRequest("Owner", "Male"))
	require.NoError(t, err)

	// Simulate a crashed writer: biodata flagged premium, account left
	// at member.
	require.NoError(t, db.Model(&models.Biodata{}).
		Where("email = ?", "owner@x.com").Update("premium", true).Error)
	require.NoError(t, db.Create(&models.Account{
		Email: "owner@x.com", Role: models.RoleMember,
	}).Error)

	repaired, err := premium.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	var account models.Account
	require.NoError(t, db.Where("email = ?", "owner@x.com").First(&account).Error)
	assert.Equal(t, models.RolePremium, account.Role)

	// A second sweep finds nothing to repair.
	repaired, err = premium.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, repaired)
}
