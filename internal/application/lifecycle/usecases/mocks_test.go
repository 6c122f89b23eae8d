package usecases

import (
	"context"

	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/logger"
)

type mockCustomerRepo struct {
	createFunc            func(ctx context.Context, c *customer.Customer) error
	updateFunc            func(ctx context.Context, c *customer.Customer) error
	findByIDFunc          func(ctx context.Context, id uint) (*customer.Customer, error)
	listFunc              func(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, error)
	listPagedFunc         func(ctx context.Context, filter customer.ListFilter, page, pageSize int) ([]*customer.Customer, int64, error)
	countByStatusFunc     func(ctx context.Context) (map[customer.Status]int64, error)
	findCreatedSinceFunc  func(ctx context.Context, days int) ([]*customer.Customer, error)
	findOccupiedPortsFunc func(ctx context.Context, splitterID uint) ([]int, error)
	findBySplitterIDFunc  func(ctx context.Context, splitterID uint) ([]*customer.Customer, error)
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	return m.createFunc(ctx, c)
}

func (m *mockCustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	return m.updateFunc(ctx, c)
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockCustomerRepo) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockCustomerRepo) ListPaged(ctx context.Context, filter customer.ListFilter, page, pageSize int) ([]*customer.Customer, int64, error) {
	return m.listPagedFunc(ctx, filter, page, pageSize)
}

func (m *mockCustomerRepo) CountByStatus(ctx context.Context) (map[customer.Status]int64, error) {
	return m.countByStatusFunc(ctx)
}

func (m *mockCustomerRepo) FindCreatedSince(ctx context.Context, days int) ([]*customer.Customer, error) {
	return m.findCreatedSinceFunc(ctx, days)
}

func (m *mockCustomerRepo) FindOccupiedPorts(ctx context.Context, splitterID uint) ([]int, error) {
	return m.findOccupiedPortsFunc(ctx, splitterID)
}

func (m *mockCustomerRepo) FindBySplitterID(ctx context.Context, splitterID uint) ([]*customer.Customer, error) {
	return m.findBySplitterIDFunc(ctx, splitterID)
}

type mockAssetRepo struct {
	createFunc               func(ctx context.Context, a *asset.Asset) error
	updateFunc               func(ctx context.Context, a *asset.Asset) error
	findByIDFunc             func(ctx context.Context, id uint) (*asset.Asset, error)
	findBySerialFunc         func(ctx context.Context, serial string) (*asset.Asset, error)
	findByCustomerIDFunc     func(ctx context.Context, customerID uint) ([]*asset.Asset, error)
	listFunc                 func(ctx context.Context, filter asset.ListFilter) ([]*asset.Asset, error)
	countByTypeAndStatusFunc func(ctx context.Context) (map[asset.Type]map[asset.Status]int64, error)
	findAssignedBeforeFunc   func(ctx context.Context, thresholdDays int) ([]*asset.Asset, error)
	claimAvailableFunc       func(ctx context.Context, assetID, customerID uint) (bool, error)
}

func (m *mockAssetRepo) Create(ctx context.Context, a *asset.Asset) error {
	return m.createFunc(ctx, a)
}

func (m *mockAssetRepo) Update(ctx context.Context, a *asset.Asset) error {
	return m.updateFunc(ctx, a)
}

func (m *mockAssetRepo) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockAssetRepo) FindBySerialNumber(ctx context.Context, serial string) (*asset.Asset, error) {
	return m.findBySerialFunc(ctx, serial)
}

func (m *mockAssetRepo) FindByCustomerID(ctx context.Context, customerID uint) ([]*asset.Asset, error) {
	return m.findByCustomerIDFunc(ctx, customerID)
}

func (m *mockAssetRepo) List(ctx context.Context, filter asset.ListFilter) ([]*asset.Asset, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockAssetRepo) CountByTypeAndStatus(ctx context.Context) (map[asset.Type]map[asset.Status]int64, error) {
	return m.countByTypeAndStatusFunc(ctx)
}

func (m *mockAssetRepo) FindAssignedBefore(ctx context.Context, thresholdDays int) ([]*asset.Asset, error) {
	return m.findAssignedBeforeFunc(ctx, thresholdDays)
}

func (m *mockAssetRepo) ClaimAvailable(ctx context.Context, assetID, customerID uint) (bool, error) {
	return m.claimAvailableFunc(ctx, assetID, customerID)
}

type mockAssignmentRepo struct {
	createFunc               func(ctx context.Context, entry *asset.Assignment) error
	updateFunc               func(ctx context.Context, entry *asset.Assignment) error
	findOpenByAssetIDFunc    func(ctx context.Context, assetID uint) (*asset.Assignment, error)
	findOpenByCustomerIDFunc func(ctx context.Context, customerID uint) ([]*asset.Assignment, error)
	findByAssetIDFunc        func(ctx context.Context, assetID uint) ([]*asset.Assignment, error)
	countAssignedSinceFunc   func(ctx context.Context, days int) (int64, error)
}

func (m *mockAssignmentRepo) Create(ctx context.Context, entry *asset.Assignment) error {
	return m.createFunc(ctx, entry)
}

func (m *mockAssignmentRepo) Update(ctx context.Context, entry *asset.Assignment) error {
	return m.updateFunc(ctx, entry)
}

func (m *mockAssignmentRepo) FindOpenByAssetID(ctx context.Context, assetID uint) (*asset.Assignment, error) {
	return m.findOpenByAssetIDFunc(ctx, assetID)
}

func (m *mockAssignmentRepo) FindOpenByCustomerID(ctx context.Context, customerID uint) ([]*asset.Assignment, error) {
	return m.findOpenByCustomerIDFunc(ctx, customerID)
}

func (m *mockAssignmentRepo) FindByAssetID(ctx context.Context, assetID uint) ([]*asset.Assignment, error) {
	return m.findByAssetIDFunc(ctx, assetID)
}

func (m *mockAssignmentRepo) CountAssignedSince(ctx context.Context, days int) (int64, error) {
	return m.countAssignedSinceFunc(ctx, days)
}

type mockRecorder struct {
	recordFunc   func(ctx context.Context, actorID uint, actorRole string, action auditdomain.Action, description string) error
	recorded     []auditdomain.Action
	descriptions []string
}

func (m *mockRecorder) Record(ctx context.Context, actorID uint, actorRole string, action auditdomain.Action, description string) error {
	m.recorded = append(m.recorded, action)
	m.descriptions = append(m.descriptions, description)
	if m.recordFunc != nil {
		return m.recordFunc(ctx, actorID, actorRole, action, description)
	}
	return nil
}

type mockTxManager struct {
	rolledBack bool
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	err := fn(ctx)
	if err != nil {
		m.rolledBack = true
	}
	return err
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
