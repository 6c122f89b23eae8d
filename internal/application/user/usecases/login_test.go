package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/domain/user"
	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/errors"
)

func newTestUser(t *testing.T, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser("maria", "s3cret-pass", role, 4)
	require.NoError(t, err)
	u.SetID(7)
	return u
}

func TestLoginSuccess(t *testing.T) {
	u := newTestUser(t, authorization.RolePlanner)
	userRepo := &mockUserRepo{
		findByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return u, nil
		},
		updateFunc: func(ctx context.Context, updated *user.User) error {
			assert.NotNil(t, updated.LastLogin())
			return nil
		},
	}
	recorder := &mockRecorder{}
	uc := NewLoginUseCase(userRepo, &mockTechnicianRepo{}, &mockTokenService{}, recorder, &mockTxManager{}, noopLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "maria", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "Planner", result.Role)
	assert.Equal(t, "access", result.AccessToken)
	assert.Nil(t, result.TechnicianID)
	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, auditdomain.ActionLogin, recorder.recorded[0])
}

func TestLoginWrongPassword(t *testing.T) {
	u := newTestUser(t, authorization.RolePlanner)
	userRepo := &mockUserRepo{
		findByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return u, nil
		},
	}
	recorder := &mockRecorder{}
	uc := NewLoginUseCase(userRepo, &mockTechnicianRepo{}, &mockTokenService{}, recorder, &mockTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "maria", Password: "wrong-password"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized))
	assert.Empty(t, recorder.recorded)
}

func TestLoginUnknownUserMapsToUnauthorized(t *testing.T) {
	userRepo := &mockUserRepo{
		findByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user")
		},
	}
	uc := NewLoginUseCase(userRepo, &mockTechnicianRepo{}, &mockTokenService{}, &mockRecorder{}, &mockTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "ghost", Password: "whatever1"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized))
}

func TestLoginTechnicianGetsCrewLink(t *testing.T) {
	u := newTestUser(t, authorization.RoleTechnician)
	userRepo := &mockUserRepo{
		findByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return u, nil
		},
		updateFunc: func(ctx context.Context, updated *user.User) error { return nil },
	}
	techRepo := &mockTechnicianRepo{
		findByUserIDFunc: func(ctx context.Context, userID uint) (*deployment.Technician, error) {
			assert.Equal(t, uint(7), userID)
			tech, err := deployment.NewTechnician("Jorge", "555-0001", "north")
			require.NoError(t, err)
			tech.SetID(3)
			return tech, nil
		},
	}
	uc := NewLoginUseCase(userRepo, techRepo, &mockTokenService{}, &mockRecorder{}, &mockTxManager{}, noopLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "maria", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotNil(t, result.TechnicianID)
	assert.Equal(t, uint(3), *result.TechnicianID)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	dupRepo := &mockUserRepo{
		createFunc: func(ctx context.Context, u *user.User) error {
			return errDuplicate{}
		},
	}
	tx := &mockTxManager{}
	uc := NewCreateUserUseCase(dupRepo, &mockRecorder{}, tx, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		ActorID:   1,
		ActorRole: "Admin",
		Username:  "maria",
		Password:  "s3cret-pass",
		Role:      "Planner",
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))
	assert.True(t, tx.rolledBack)
}

type errDuplicate struct{}

func (errDuplicate) Error() string {
	return "Error 1062 (23000): Duplicate entry 'maria' for key 'users.uk_users_username'"
}

func TestCreateUserInvalidRole(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepo{}, &mockRecorder{}, &mockTxManager{}, noopLogger{})
	_, err := uc.Execute(context.Background(), CreateUserCommand{
		ActorID:   1,
		ActorRole: "Admin",
		Username:  "maria",
		Password:  "s3cret-pass",
		Role:      "Janitor",
	})
	assert.True(t, errors.IsValidation(err))
}
