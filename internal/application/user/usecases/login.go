// Package usecases covers operator accounts: authentication and the
// admin-facing account management operations.
package usecases

import (
	"context"

	auditapp "fibernet/internal/application/audit"
	"fibernet/internal/domain/audit"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/domain/user"
	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

// TokenService issues and verifies the signed tokens carried by API clients.
type TokenService interface {
	GenerateTokenPair(userID uint, role string) (accessToken string, refreshToken string, err error)
	ValidateAccessToken(token string) (userID uint, role string, err error)
	RefreshTokenPair(refreshToken string) (accessToken string, newRefreshToken string, err error)
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	TechnicianID *uint  `json:"technician_id,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginUseCase struct {
	userRepo       user.Repository
	technicianRepo deployment.TechnicianRepository
	tokens         TokenService
	recorder       auditapp.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	technicianRepo deployment.TechnicianRepository,
	tokens TokenService,
	recorder auditapp.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		technicianRepo: technicianRepo,
		tokens:         tokens,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	u, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if !u.VerifyPassword(cmd.Password) {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	access, refresh, err := uc.tokens.GenerateTokenPair(u.ID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens", err)
	}

	result := &LoginResult{
		UserID:       u.ID(),
		Username:     u.Username(),
		Role:         u.Role().String(),
		AccessToken:  access,
		RefreshToken: refresh,
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		u.RecordLogin()
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return errors.NewInternalError("failed to record login", err)
		}
		return uc.recorder.Record(txCtx, u.ID(), u.Role().String(), audit.ActionLogin, "logged in")
	})
	if err != nil {
		return nil, err
	}

	// Technicians get their crew record id so the UI can scope task views.
	if u.Role() == authorization.RoleTechnician {
		tech, err := uc.technicianRepo.FindByUserID(ctx, u.ID())
		if err == nil {
			id := tech.ID()
			result.TechnicianID = &id
		} else if !errors.IsNotFound(err) {
			uc.logger.Warnw("failed to resolve technician link", "user_id", u.ID(), "error", err)
		}
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())
	return result, nil
}
