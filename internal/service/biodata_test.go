package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikahlink/backend/internal/models"
	"github.com/nikahlink/backend/internal/service"
	"github.com/nikahlink/backend/internal/testhelpers"
	"github.com/nikahlink/backend/internal/types"
)

func upsertRequest(name, biodataType string) *types.UpsertBiodataRequest {
	return &types.UpsertBiodataRequest{
		BiodataType: biodataType,
		Name:        name,
		Age:         28,
		Occupation:  "Engineer",
	}
}

func TestUpsertAssignsSequentialIDs(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewBiodataService(db, nil)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		email := fmt.Sprintf("owner%d@example.com", i)
		biodata, err := svc.Upsert(ctx, email, upsertRequest("Owner", "Male"))
		require.NoError(t, err)
		assert.Equal(t, i, biodata.BiodataID)
	}
}

func TestUpsertFirstTwoOwners(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewBiodataService(db, nil)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, "a@x.com", upsertRequest("A", "Female"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.BiodataID)

	second, err := svc.Upsert(ctx, "b@x.com", upsertRequest("B", "Male"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.BiodataID)
}

func TestUpsertSameOwnerUpdatesInPlace(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewBiodataService(db, nil)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, "owner@example.com", upsertRequest("Before", "Male"))
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, "owner@example.com", upsertRequest("After", "Male"))
	require.NoError(t, err)

	assert.Equal(t, first.BiodataID, second.BiodataID)
	assert.Equal(t, "After", second.Name)

	var count int64
	require.NoError(t, db.Model(&models.Biodata{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertPreservesPremiumAcrossEdits(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewBiodataService(db, nil)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, "owner@example.com", upsertRequest("Owner", "Male"))
	require.NoError(t, err)
	assert.False(t, created.Premium)

	require.NoError(t, db.Model(&models.Biodata{}).
		Where("biodata_id = ?", created.BiodataID).
		Update("premium", true).Error)

	updated, err := svc.Upsert(ctx, "owner@example.com", upsertRequest("Owner Edited", "Male"))
	require.NoError(t, err)
	assert.True(t, updated.Premium)
}

func TestGetByBiodataIDNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewBiodataService(db, nil)

	_, err := svc.GetByBiodataID(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrBiodataNotFound)
}

func TestListByType(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewBiodataService(db, nil)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "m1@x.com", upsertRequest("M1", "Male"))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "f1@x.com", upsertRequest("F1", "Female"))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "m2@x.com", upsertRequest("M2", "Male"))
	require.NoError(t, err)

	males, err := svc.ListByType(ctx, models.BiodataTypeMale)
	require.NoError(t, err)
	assert.Len(t, males, 2)

	females, err := svc.ListByType(ctx, models.BiodataTypeFemale)
	require.NoError(t, err)
	assert.Len(t, females, 1)
}

func TestSetPhotoURLMissingProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewBiodataService(db, nil)

	err := svc.SetPhotoURL(context.Background(), "nobody@example.com", "https://example.com/p.jpg")
	assert.ErrorIs(t, err, service.ErrBiodataNotFound)
}
