package usecases

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/errors"
)

func availableAsset(id uint, t asset.Type, serial string) *asset.Asset {
	a, _ := asset.NewAsset(t, "test-model", serial, "")
	a.SetID(id)
	return a
}

func testSplitter(id uint, capacity int) *topology.Splitter {
	s, _ := topology.NewSplitter("1x8 PLC", "cabinet", capacity, 1)
	s.SetID(id)
	return s
}

type onboardFixture struct {
	customerRepo   *mockCustomerRepo
	splitterRepo   *mockSplitterRepo
	assetRepo      *mockAssetRepo
	assignmentRepo *mockAssignmentRepo
	recorder       *mockRecorder
	txManager      *mockTxManager
	uc             *OnboardCustomerUseCase
}

func newOnboardFixture() *onboardFixture {
	f := &onboardFixture{
		customerRepo:   &mockCustomerRepo{},
		splitterRepo:   &mockSplitterRepo{},
		assetRepo:      &mockAssetRepo{},
		assignmentRepo: &mockAssignmentRepo{},
		recorder:       &mockRecorder{},
		txManager:      &mockTxManager{},
	}

	f.splitterRepo.findByIDFunc = func(ctx context.Context, id uint) (*topology.Splitter, error) {
		return testSplitter(id, 8), nil
	}
	f.customerRepo.findOccupiedPortsFunc = func(ctx context.Context, splitterID uint) ([]int, error) {
		return nil, nil
	}
	f.customerRepo.createFunc = func(ctx context.Context, c *customer.Customer) error {
		c.SetID(1)
		return nil
	}
	f.assetRepo.findByIDFunc = func(ctx context.Context, id uint) (*asset.Asset, error) {
		if id == 10 {
			return availableAsset(10, asset.TypeONT, "ONT-10"), nil
		}
		return availableAsset(11, asset.TypeRouter, "RTR-11"), nil
	}
	f.assetRepo.claimAvailableFunc = func(ctx context.Context, assetID, customerID uint) (bool, error) {
		return true, nil
	}
	f.assignmentRepo.createFunc = func(ctx context.Context, entry *asset.Assignment) error {
		return nil
	}

	f.uc = NewOnboardCustomerUseCase(
		f.customerRepo, f.splitterRepo, f.assetRepo, f.assignmentRepo,
		f.recorder, f.txManager, noopLogger{})
	return f
}

func validCommand() OnboardCustomerCommand {
	return OnboardCustomerCommand{
		ActorID:        1,
		ActorRole:      "Planner",
		Name:           "Ana Reyes",
		Address:        "12 Oak St",
		Neighborhood:   "Northside",
		Plan:           "Fiber 300",
		ConnectionType: "Wired",
		SplitterID:     5,
		Port:           3,
		ONTAssetID:     10,
		RouterAssetID:  11,
	}
}

func TestOnboardCustomerSuccess(t *testing.T) {
	f := newOnboardFixture()

	var openedHistory []uint
	f.assignmentRepo.createFunc = func(ctx context.Context, entry *asset.Assignment) error {
		openedHistory = append(openedHistory, entry.AssetID())
		assert.Equal(t, uint(1), entry.CustomerID())
		assert.True(t, entry.IsOpen())
		return nil
	}

	result, err := f.uc.Execute(context.Background(), validCommand())
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.CustomerID)
	assert.Equal(t, customer.StatusPending.String(), result.Status)
	assert.Equal(t, uint(5), result.SplitterID)
	assert.Equal(t, 3, result.Port)
	assert.Equal(t, []uint{10, 11}, openedHistory)
	require.Len(t, f.recorder.recorded, 1)
	assert.Equal(t, auditdomain.ActionCreate, f.recorder.recorded[0])
}

func TestOnboardCustomerMissingFields(t *testing.T) {
	f := newOnboardFixture()

	cmd := validCommand()
	cmd.Neighborhood = ""
	_, err := f.uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsValidation(err))

	cmd = validCommand()
	cmd.ONTAssetID = 0
	_, err = f.uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsValidation(err))
}

func TestOnboardCustomerPortTaken(t *testing.T) {
	f := newOnboardFixture()
	f.customerRepo.findOccupiedPortsFunc = func(ctx context.Context, splitterID uint) ([]int, error) {
		return []int{3, 4}, nil
	}

	_, err := f.uc.Execute(context.Background(), validCommand())
	require.Error(t, err)
	assert.True(t, errors.IsPortConflict(err))
	assert.True(t, f.txManager.rolledBack)
}

func TestOnboardCustomerPortOutOfRange(t *testing.T) {
	f := newOnboardFixture()

	cmd := validCommand()
	cmd.Port = 9
	_, err := f.uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsPortConflict(err))
}

func TestOnboardCustomerAssetTypeMismatch(t *testing.T) {
	f := newOnboardFixture()
	f.assetRepo.findByIDFunc = func(ctx context.Context, id uint) (*asset.Asset, error) {
		// Both ids resolve to ONTs, so the router slot fails.
		return availableAsset(id, asset.TypeONT, fmt.Sprintf("ONT-%d", id)), nil
	}

	_, err := f.uc.Execute(context.Background(), validCommand())
	assert.True(t, errors.IsValidation(err))
}

func TestOnboardCustomerAssetNotAvailableRollsBack(t *testing.T) {
	f := newOnboardFixture()

	// The router claim fails after the customer row and the ONT claim
	// already went through. The transaction must roll back, which frees
	// the port reservation with it.
	f.assetRepo.claimAvailableFunc = func(ctx context.Context, assetID, customerID uint) (bool, error) {
		return assetID != 11, nil
	}

	_, err := f.uc.Execute(context.Background(), validCommand())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeAssetNotAvailable))
	assert.True(t, f.txManager.rolledBack)
	assert.Empty(t, f.recorder.recorded)
}

func TestOnboardCustomerAuditFailureAborts(t *testing.T) {
	f := newOnboardFixture()
	f.recorder.recordFunc = func(ctx context.Context, actorID uint, actorRole string, action auditdomain.Action, description string) error {
		return errors.NewInternalError("audit store down", nil)
	}

	_, err := f.uc.Execute(context.Background(), validCommand())
	require.Error(t, err)
	assert.True(t, f.txManager.rolledBack)
}

func TestOnboardCustomerConcurrentSamePort(t *testing.T) {
	// Two onboardings race for splitter 5 port 3. The mock customer repo
	// stands in for the unique index on (splitter_id, assigned_port):
	// the second insert gets a duplicate key error.
	f := newOnboardFixture()

	var mu sync.Mutex
	taken := make(map[string]bool)
	var nextID uint
	f.customerRepo.createFunc = func(ctx context.Context, c *customer.Customer) error {
		mu.Lock()
		defer mu.Unlock()
		key := fmt.Sprintf("%d:%d", *c.SplitterID(), *c.AssignedPort())
		if taken[key] {
			return fmt.Errorf("UNIQUE constraint failed: customers.splitter_id, customers.assigned_port")
		}
		taken[key] = true
		nextID++
		c.SetID(nextID)
		return nil
	}
	f.customerRepo.findOccupiedPortsFunc = func(ctx context.Context, splitterID uint) ([]int, error) {
		// Both racers pass the pre-check before either row lands.
		return nil, nil
	}

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), validCommand())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
		} else if errors.IsPortConflict(err) {
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}
