package usecases

import (
	"context"

	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/logger"
)

type mockTaskRepo struct {
	createFunc             func(ctx context.Context, t *deployment.Task) error
	updateFunc             func(ctx context.Context, t *deployment.Task) error
	findByIDFunc           func(ctx context.Context, id uint) (*deployment.Task, error)
	listFunc               func(ctx context.Context, filter deployment.TaskFilter) ([]*deployment.Task, error)
	findByCustomerIDFunc   func(ctx context.Context, customerID uint) ([]*deployment.Task, error)
	countByStatusFunc      func(ctx context.Context) (map[deployment.Status]int64, error)
	findCompletedSinceFunc func(ctx context.Context, days int) ([]*deployment.Task, error)
	findOverdueFunc        func(ctx context.Context) ([]*deployment.Task, error)
	findUnassignedFunc     func(ctx context.Context) ([]*deployment.Task, error)
}

func (m *mockTaskRepo) Create(ctx context.Context, t *deployment.Task) error {
	return m.createFunc(ctx, t)
}

func (m *mockTaskRepo) Update(ctx context.Context, t *deployment.Task) error {
	return m.updateFunc(ctx, t)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id uint) (*deployment.Task, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockTaskRepo) List(ctx context.Context, filter deployment.TaskFilter) ([]*deployment.Task, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockTaskRepo) FindByCustomerID(ctx context.Context, customerID uint) ([]*deployment.Task, error) {
	return m.findByCustomerIDFunc(ctx, customerID)
}

func (m *mockTaskRepo) CountByStatus(ctx context.Context) (map[deployment.Status]int64, error) {
	return m.countByStatusFunc(ctx)
}

func (m *mockTaskRepo) FindCompletedSince(ctx context.Context, days int) ([]*deployment.Task, error) {
	return m.findCompletedSinceFunc(ctx, days)
}

func (m *mockTaskRepo) FindOverdue(ctx context.Context) ([]*deployment.Task, error) {
	return m.findOverdueFunc(ctx)
}

func (m *mockTaskRepo) FindUnassigned(ctx context.Context) ([]*deployment.Task, error) {
	return m.findUnassignedFunc(ctx)
}

type mockTechnicianRepo struct {
	createFunc       func(ctx context.Context, t *deployment.Technician) error
	updateFunc       func(ctx context.Context, t *deployment.Technician) error
	findByIDFunc     func(ctx context.Context, id uint) (*deployment.Technician, error)
	findByUserIDFunc func(ctx context.Context, userID uint) (*deployment.Technician, error)
	listFunc         func(ctx context.Context) ([]*deployment.Technician, error)
}

func (m *mockTechnicianRepo) Create(ctx context.Context, t *deployment.Technician) error {
	return m.createFunc(ctx, t)
}

func (m *mockTechnicianRepo) Update(ctx context.Context, t *deployment.Technician) error {
	return m.updateFunc(ctx, t)
}

func (m *mockTechnicianRepo) FindByID(ctx context.Context, id uint) (*deployment.Technician, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockTechnicianRepo) FindByUserID(ctx context.Context, userID uint) (*deployment.Technician, error) {
	return m.findByUserIDFunc(ctx, userID)
}

func (m *mockTechnicianRepo) List(ctx context.Context) ([]*deployment.Technician, error) {
	return m.listFunc(ctx)
}

type mockCustomerRepo struct {
	findByIDFunc func(ctx context.Context, id uint) (*customer.Customer, error)
	updateFunc   func(ctx context.Context, c *customer.Customer) error
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *customer.Customer) error { return nil }

func (m *mockCustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	return m.updateFunc(ctx, c)
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockCustomerRepo) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, error) {
	return nil, nil
}

func (m *mockCustomerRepo) ListPaged(ctx context.Context, filter customer.ListFilter, page, pageSize int) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}

func (m *mockCustomerRepo) CountByStatus(ctx context.Context) (map[customer.Status]int64, error) {
	return nil, nil
}

func (m *mockCustomerRepo) FindCreatedSince(ctx context.Context, days int) ([]*customer.Customer, error) {
	return nil, nil
}

func (m *mockCustomerRepo) FindOccupiedPorts(ctx context.Context, splitterID uint) ([]int, error) {
	return nil, nil
}

func (m *mockCustomerRepo) FindBySplitterID(ctx context.Context, splitterID uint) ([]*customer.Customer, error) {
	return nil, nil
}

type mockRecorder struct {
	recordFunc func(ctx context.Context, actorID uint, actorRole string, action auditdomain.Action, description string) error
	recorded   []auditdomain.Action
}

func (m *mockRecorder) Record(ctx context.Context, actorID uint, actorRole string, action auditdomain.Action, description string) error {
	m.recorded = append(m.recorded, action)
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
