package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/errors"
)

func TestBulkReclaimContinuesPastFailures(t *testing.T) {
	// Customer 1 exists and holds ONT 10; customer 2 does not exist.
	cust := boundCustomer(1, 5, 3, 10, 11)
	ont := assignedAsset(10, asset.TypeONT, "ONT-10", 1)
	ontEntry := asset.NewAssignment(10, 1)

	customerRepo := &mockCustomerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
			if id == 1 {
				return cust, nil
			}
			return nil, errors.NewNotFoundError("customer")
		},
		updateFunc: func(ctx context.Context, c *customer.Customer) error { return nil },
	}
	assetRepo := &mockAssetRepo{
		findByCustomerIDFunc: func(ctx context.Context, customerID uint) ([]*asset.Asset, error) {
			return []*asset.Asset{ont}, nil
		},
		updateFunc: func(ctx context.Context, a *asset.Asset) error { return nil },
	}
	assignmentRepo := &mockAssignmentRepo{
		findOpenByAssetIDFunc: func(ctx context.Context, assetID uint) (*asset.Assignment, error) {
			return ontEntry, nil
		},
		updateFunc: func(ctx context.Context, entry *asset.Assignment) error { return nil },
	}
	recorder := &mockRecorder{}

	reclaimUC := NewReclaimAssetsUseCase(customerRepo, assetRepo, assignmentRepo, recorder, &mockTxManager{}, noopLogger{})
	uc := NewBulkReclaimUseCase(reclaimUC, noopLogger{})

	result, err := uc.Execute(context.Background(), BulkReclaimCommand{
		ActorID:     9,
		ActorRole:   "Planner",
		CustomerIDs: []uint{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Results, 1)
	assert.Equal(t, []uint{10}, result.Results[0].ReclaimedAssets)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, uint(2), result.Failures[0].CustomerID)

	// One audit entry per reclaimed customer, none for the failure.
	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, auditdomain.ActionReclaim, recorder.recorded[0])
}

func TestBulkReclaimRequiresCustomerIDs(t *testing.T) {
	uc := NewBulkReclaimUseCase(nil, noopLogger{})
	_, err := uc.Execute(context.Background(), BulkReclaimCommand{ActorID: 9, ActorRole: "Planner"})
	assert.True(t, errors.IsValidation(err))
}
