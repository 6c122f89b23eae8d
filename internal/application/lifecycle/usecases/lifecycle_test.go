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

func assignedAsset(id uint, t asset.Type, serial string, customerID uint) *asset.Asset {
	a, _ := asset.NewAsset(t, "test-model", serial, "")
	a.SetID(id)
	_ = a.Assign(customerID)
	return a
}

func faultyAsset(id uint, t asset.Type, serial string) *asset.Asset {
	a, _ := asset.NewAsset(t, "test-model", serial, "")
	a.SetID(id)
	_ = a.MarkFaulty()
	return a
}

func boundCustomer(id uint, splitterID uint, port int, ontID, routerID uint) *customer.Customer {
	c, _ := customer.NewCustomer("Ana Reyes", "12 Oak St", "Northside", "Fiber 300", customer.ConnectionWired)
	c.SetID(id)
	c.BindNetwork(splitterID, port, ontID, routerID, nil)
	_ = c.Activate()
	return c
}

func TestReclaimAssetsFullScenario(t *testing.T) {
	// Customer 1 holds port 3 on splitter 5 with ONT 10 and Router 11.
	cust := boundCustomer(1, 5, 3, 10, 11)
	ont := assignedAsset(10, asset.TypeONT, "ONT-10", 1)
	router := assignedAsset(11, asset.TypeRouter, "RTR-11", 1)
	ontEntry := asset.NewAssignment(10, 1)
	routerEntry := asset.NewAssignment(11, 1)

	customerRepo := &mockCustomerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
			require.Equal(t, uint(1), id)
			return cust, nil
		},
		updateFunc: func(ctx context.Context, c *customer.Customer) error { return nil },
	}
	assetRepo := &mockAssetRepo{
		findByCustomerIDFunc: func(ctx context.Context, customerID uint) ([]*asset.Asset, error) {
			return []*asset.Asset{ont, router}, nil
		},
		updateFunc: func(ctx context.Context, a *asset.Asset) error { return nil },
	}
	assignmentRepo := &mockAssignmentRepo{
		findOpenByAssetIDFunc: func(ctx context.Context, assetID uint) (*asset.Assignment, error) {
			switch assetID {
			case 10:
				return ontEntry, nil
			case 11:
				return routerEntry, nil
			}
			return nil, errors.NewNotFoundError("assignment")
		},
		updateFunc: func(ctx context.Context, entry *asset.Assignment) error { return nil },
	}
	recorder := &mockRecorder{}
	tx := &mockTxManager{}

	uc := NewReclaimAssetsUseCase(customerRepo, assetRepo, assignmentRepo, recorder, tx, noopLogger{})
	result, err := uc.Execute(context.Background(), ReclaimAssetsCommand{ActorID: 9, ActorRole: "Admin", CustomerID: 1})
	require.NoError(t, err)

	assert.Equal(t, []uint{10, 11}, result.ReclaimedAssets)
	require.NotNil(t, result.ReleasedPort)
	assert.Equal(t, 3, *result.ReleasedPort)
	assert.Equal(t, customer.StatusInactive.String(), result.CustomerStatus)

	assert.Equal(t, asset.StatusAvailable, ont.Status())
	assert.Equal(t, asset.StatusAvailable, router.Status())
	assert.False(t, ontEntry.IsOpen())
	assert.False(t, routerEntry.IsOpen())
	assert.Nil(t, cust.SplitterID())
	assert.Nil(t, cust.AssignedPort())

	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, auditdomain.ActionReclaim, recorder.recorded[0])
}

func TestReclaimIsIdempotentForUnboundAssets(t *testing.T) {
	cust := boundCustomer(1, 5, 3, 10, 11)
	released, _ := asset.NewAsset(asset.TypeONT, "m", "ONT-10", "")
	released.SetID(10)

	customerRepo := &mockCustomerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) { return cust, nil },
		updateFunc:   func(ctx context.Context, c *customer.Customer) error { return nil },
	}
	assetRepo := &mockAssetRepo{
		findByCustomerIDFunc: func(ctx context.Context, customerID uint) ([]*asset.Asset, error) {
			// Already back in the pool from an earlier partial reclaim.
			return []*asset.Asset{released}, nil
		},
		updateFunc: func(ctx context.Context, a *asset.Asset) error {
			t.Fatal("available asset must not be touched")
			return nil
		},
	}
	assignmentRepo := &mockAssignmentRepo{}
	uc := NewReclaimAssetsUseCase(customerRepo, assetRepo, assignmentRepo, &mockRecorder{}, &mockTxManager{}, noopLogger{})

	result, err := uc.Execute(context.Background(), ReclaimAssetsCommand{ActorID: 9, ActorRole: "Admin", CustomerID: 1})
	require.NoError(t, err)
	assert.Empty(t, result.ReclaimedAssets)
	assert.Equal(t, customer.StatusInactive.String(), result.CustomerStatus)
}

func TestRetireAssignedAssetFails(t *testing.T) {
	a := assignedAsset(7, asset.TypeONT, "ONT-7", 2)
	assetRepo := &mockAssetRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*asset.Asset, error) { return a, nil },
		updateFunc:   func(ctx context.Context, a *asset.Asset) error { return nil },
	}
	recorder := &mockRecorder{}
	tx := &mockTxManager{}
	uc := NewRetireAssetUseCase(assetRepo, recorder, tx, noopLogger{})

	_, err := uc.Execute(context.Background(), RetireAssetCommand{ActorID: 1, ActorRole: "Admin", AssetID: 7, Reason: "water damage"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransition(err))
	assert.True(t, tx.rolledBack)
	assert.Empty(t, recorder.recorded)
}

func TestRetireAvailableAssetRecordsReason(t *testing.T) {
	a, _ := asset.NewAsset(asset.TypeSwitch, "Cisco C1000", "SW-1", "")
	a.SetID(4)
	assetRepo := &mockAssetRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*asset.Asset, error) { return a, nil },
		updateFunc:   func(ctx context.Context, a *asset.Asset) error { return nil },
	}
	recorder := &mockRecorder{}
	uc := NewRetireAssetUseCase(assetRepo, recorder, &mockTxManager{}, noopLogger{})

	result, err := uc.Execute(context.Background(), RetireAssetCommand{ActorID: 1, ActorRole: "Admin", AssetID: 4, Reason: "end of life"})
	require.NoError(t, err)
	assert.Equal(t, asset.StatusRetired.String(), result.Status)
	require.Len(t, recorder.descriptions, 1)
	assert.Contains(t, recorder.descriptions[0], "end of life")
}

func TestReactivateYieldsPendingNotActive(t *testing.T) {
	cust := boundCustomer(1, 5, 3, 10, 11)
	require.NoError(t, cust.Deactivate())

	customerRepo := &mockCustomerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) { return cust, nil },
		updateFunc:   func(ctx context.Context, c *customer.Customer) error { return nil },
	}
	uc := NewReactivateCustomerUseCase(customerRepo, &mockRecorder{}, &mockTxManager{}, noopLogger{})

	result, err := uc.Execute(context.Background(), ReactivateCustomerCommand{ActorID: 1, ActorRole: "Admin", CustomerID: 1})
	require.NoError(t, err)
	assert.Equal(t, customer.StatusPending.String(), result.Status)
}

func TestReactivateActiveCustomerFails(t *testing.T) {
	cust := boundCustomer(1, 5, 3, 10, 11)

	customerRepo := &mockCustomerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) { return cust, nil },
		updateFunc:   func(ctx context.Context, c *customer.Customer) error { return nil },
	}
	uc := NewReactivateCustomerUseCase(customerRepo, &mockRecorder{}, &mockTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ReactivateCustomerCommand{ActorID: 1, ActorRole: "Admin", CustomerID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransition(err))
}

func TestReplaceFaultyAssetRetiresOldUnit(t *testing.T) {
	old := faultyAsset(10, asset.TypeONT, "ONT-10")
	replacement := availableONT(25)
	cust := boundCustomer(1, 5, 3, 10, 11)

	var claimedFor uint
	assetRepo := &mockAssetRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			if id == 10 {
				return old, nil
			}
			return replacement, nil
		},
		updateFunc: func(ctx context.Context, a *asset.Asset) error { return nil },
		claimAvailableFunc: func(ctx context.Context, assetID, customerID uint) (bool, error) {
			claimedFor = customerID
			return true, nil
		},
	}
	openEntry := asset.NewAssignment(10, 1)
	assignmentRepo := &mockAssignmentRepo{
		findOpenByAssetIDFunc: func(ctx context.Context, assetID uint) (*asset.Assignment, error) {
			return openEntry, nil
		},
		updateFunc: func(ctx context.Context, entry *asset.Assignment) error { return nil },
		createFunc: func(ctx context.Context, entry *asset.Assignment) error { return nil },
	}
	customerRepo := &mockCustomerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) { return cust, nil },
		updateFunc:   func(ctx context.Context, c *customer.Customer) error { return nil },
	}
	recorder := &mockRecorder{}

	uc := NewReplaceFaultyAssetUseCase(customerRepo, assetRepo, assignmentRepo, recorder, &mockTxManager{}, noopLogger{})
	result, err := uc.Execute(context.Background(), ReplaceFaultyAssetCommand{ActorID: 1, ActorRole: "Planner", OldAssetID: 10, NewAssetID: 25})
	require.NoError(t, err)

	assert.Equal(t, asset.StatusRetired.String(), result.OldAssetStatus)
	assert.Equal(t, uint(1), result.CustomerID)
	assert.Equal(t, uint(1), claimedFor)
	assert.False(t, openEntry.IsOpen())
	assert.Equal(t, uint(25), *cust.ONTAssetID())
	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, auditdomain.ActionReplace, recorder.recorded[0])
}

func availableONT(id uint) *asset.Asset {
	a, _ := asset.NewAsset(asset.TypeONT, "test-model", "ONT-NEW", "")
	a.SetID(id)
	return a
}

func TestReplaceFaultyTypeMismatch(t *testing.T) {
	old := faultyAsset(10, asset.TypeONT, "ONT-10")
	wrongType, _ := asset.NewAsset(asset.TypeRouter, "m", "RTR-1", "")
	wrongType.SetID(25)

	assetRepo := &mockAssetRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			if id == 10 {
				return old, nil
			}
			return wrongType, nil
		},
	}
	uc := NewReplaceFaultyAssetUseCase(&mockCustomerRepo{}, assetRepo, &mockAssignmentRepo{}, &mockRecorder{}, &mockTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ReplaceFaultyAssetCommand{ActorID: 1, ActorRole: "Planner", OldAssetID: 10, NewAssetID: 25})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestDeactivateRequiresReason(t *testing.T) {
	uc := NewDeactivateCustomerUseCase(&mockCustomerRepo{}, &mockAssetRepo{}, &mockAssignmentRepo{}, &mockRecorder{}, &mockTxManager{}, noopLogger{})
	_, err := uc.Execute(context.Background(), DeactivateCustomerCommand{ActorID: 1, ActorRole: "Admin", CustomerID: 1, Reason: "  "})
	assert.True(t, errors.IsValidation(err))
}

func TestDeactivateAlreadyInactive(t *testing.T) {
	cust := boundCustomer(1, 5, 3, 10, 11)
	require.NoError(t, cust.Deactivate())

	customerRepo := &mockCustomerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) { return cust, nil },
	}
	uc := NewDeactivateCustomerUseCase(customerRepo, &mockAssetRepo{}, &mockAssignmentRepo{}, &mockRecorder{}, &mockTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), DeactivateCustomerCommand{ActorID: 1, ActorRole: "Admin", CustomerID: 1, Reason: "moved away"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransition(err))
}

func TestReassignToInactiveCustomerFails(t *testing.T) {
	a := assignedAsset(10, asset.TypeONT, "ONT-10", 1)
	inactive := boundCustomer(2, 6, 1, 20, 21)
	require.NoError(t, inactive.Deactivate())

	assetRepo := &mockAssetRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*asset.Asset, error) { return a, nil },
	}
	customerRepo := &mockCustomerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) { return inactive, nil },
	}
	uc := NewReassignAssetUseCase(customerRepo, assetRepo, &mockAssignmentRepo{}, &mockRecorder{}, &mockTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ReassignAssetCommand{ActorID: 1, ActorRole: "Planner", AssetID: 10, NewCustomerID: 2})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestReassignMovesHistoryAndReferences(t *testing.T) {
	a := assignedAsset(10, asset.TypeONT, "ONT-10", 1)
	oldCust := boundCustomer(1, 5, 3, 10, 11)
	newCust := boundCustomer(2, 6, 1, 20, 21)

	customers := map[uint]*customer.Customer{1: oldCust, 2: newCust}
	customerRepo := &mockCustomerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) { return customers[id], nil },
		updateFunc:   func(ctx context.Context, c *customer.Customer) error { return nil },
	}
	assetRepo := &mockAssetRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*asset.Asset, error) { return a, nil },
		updateFunc:   func(ctx context.Context, a *asset.Asset) error { return nil },
	}
	openEntry := asset.NewAssignment(10, 1)
	var newEntry *asset.Assignment
	assignmentRepo := &mockAssignmentRepo{
		findOpenByAssetIDFunc: func(ctx context.Context, assetID uint) (*asset.Assignment, error) { return openEntry, nil },
		updateFunc:            func(ctx context.Context, entry *asset.Assignment) error { return nil },
		createFunc: func(ctx context.Context, entry *asset.Assignment) error {
			newEntry = entry
			return nil
		},
	}
	recorder := &mockRecorder{}

	uc := NewReassignAssetUseCase(customerRepo, assetRepo, assignmentRepo, recorder, &mockTxManager{}, noopLogger{})
	result, err := uc.Execute(context.Background(), ReassignAssetCommand{ActorID: 1, ActorRole: "Planner", AssetID: 10, NewCustomerID: 2})
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.OldCustomerID)
	assert.Equal(t, asset.StatusAssigned, a.Status())
	assert.Equal(t, uint(2), *a.AssignedCustomerID())
	assert.False(t, openEntry.IsOpen())
	require.NotNil(t, newEntry)
	assert.Equal(t, uint(2), newEntry.CustomerID())
	assert.Nil(t, oldCust.ONTAssetID())
	assert.Equal(t, uint(10), *newCust.ONTAssetID())
	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, auditdomain.ActionReassign, recorder.recorded[0])
}
