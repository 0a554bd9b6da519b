package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

func TestUnitCreateMasterOnly(t *testing.T) {
	svc := NewUnitService(newFakeUnitRepo())

	_, err := svc.Create(context.Background(), unitUser("mgr-1", "unit-1", domain.RoleManager), "Finance")
	requireStatus(t, err, 403)

	unit, err := svc.Create(context.Background(), masterUser("m-1"), "  Finance  ")
	require.NoError(t, err)
	assert.Equal(t, "Finance", unit.Name)
}

func TestUnitCreateDuplicateName(t *testing.T) {
	svc := NewUnitService(newFakeUnitRepo())
	master := masterUser("m-1")

	_, err := svc.Create(context.Background(), master, "Finance")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), master, "Finance")
	requireStatus(t, err, 400)
}

func TestCatalogCreateAndRename(t *testing.T) {
	svc := NewCatalogService(newFakeOperatorRepo(), newFakeServiceRepo())
	ctx := context.Background()

	op, err := svc.CreateOperator(ctx, "Studio X")
	require.NoError(t, err)

	_, err = svc.CreateOperator(ctx, "Studio X")
	requireStatus(t, err, 400)

	renamed, err := svc.UpdateOperator(ctx, op.ID, "Studio Y")
	require.NoError(t, err)
	assert.Equal(t, "Studio Y", renamed.Name)

	created, err := svc.CreateService(ctx, "Video", strPtr("Short promo videos"))
	require.NoError(t, err)
	require.NotNil(t, created.Description)

	updated, err := svc.UpdateService(ctx, created.ID, nil, strPtr("Full videos"))
	require.NoError(t, err)
	assert.Equal(t, "Video", updated.Name)
	assert.Equal(t, "Full videos", *updated.Description)
}
