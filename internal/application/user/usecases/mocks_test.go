package usecases

import (
	"context"

	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/domain/user"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type mockUserRepo struct {
	createFunc         func(ctx context.Context, u *user.User) error
	updateFunc         func(ctx context.Context, u *user.User) error
	findByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	findByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	listFunc           func(ctx context.Context) ([]*user.User, error)
	findByIDsFunc      func(ctx context.Context, ids []uint) (map[uint]*user.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return m.createFunc(ctx, u) }
func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return m.updateFunc(ctx, u) }
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return m.findByIDFunc(ctx, id)
}
func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return m.findByUsernameFunc(ctx, username)
}
func (m *mockUserRepo) List(ctx context.Context) ([]*user.User, error) { return m.listFunc(ctx) }
func (m *mockUserRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	return m.findByIDsFunc(ctx, ids)
}

type mockTechnicianRepo struct {
	findByUserIDFunc func(ctx context.Context, userID uint) (*deployment.Technician, error)
}

func (m *mockTechnicianRepo) Create(ctx context.Context, t *deployment.Technician) error { return nil }
func (m *mockTechnicianRepo) Update(ctx context.Context, t *deployment.Technician) error { return nil }
func (m *mockTechnicianRepo) FindByID(ctx context.Context, id uint) (*deployment.Technician, error) {
	return nil, errors.NewNotFoundError("technician")
}
func (m *mockTechnicianRepo) FindByUserID(ctx context.Context, userID uint) (*deployment.Technician, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return nil, errors.NewNotFoundError("technician")
}
func (m *mockTechnicianRepo) List(ctx context.Context) ([]*deployment.Technician, error) {
	return nil, nil
}

type mockTokenService struct {
	generateFunc func(userID uint, role string) (string, string, error)
}

func (m *mockTokenService) GenerateTokenPair(userID uint, role string) (string, string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(userID, role)
	}
	return "access", "refresh", nil
}
func (m *mockTokenService) ValidateAccessToken(token string) (uint, string, error) {
	return 0, "", errors.NewUnauthorizedError("invalid token")
}
func (m *mockTokenService) RefreshTokenPair(refreshToken string) (string, string, error) {
	return "access2", "refresh2", nil
}

type mockRecorder struct {
	recorded  []auditdomain.Action
	recordErr error
}

func (m *mockRecorder) Record(ctx context.Context, actorID uint, actorRole string, action auditdomain.Action, description string) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.recorded = append(m.recorded, action)
	return nil
}

type mockTxManager struct {
	rolledBack bool
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.rolledBack = true
		return err
	}
	return nil
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
