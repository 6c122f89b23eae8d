package usecases

import (
	"context"

	auditapp "fibernet/internal/application/audit"
	"fibernet/internal/domain/audit"
	"fibernet/internal/domain/user"
	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type CreateUserCommand struct {
	ActorID    uint
	ActorRole  string
	Username   string
	Password   string
	Role       string
	BcryptCost int
}

type UserResult struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	LastLogin *int64 `json:"last_login,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type CreateUserUseCase struct {
	userRepo  user.Repository
	recorder  auditapp.Recorder
	txManager db.TransactionManager
	logger    logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	recorder auditapp.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, recorder: recorder, txManager: txManager, logger: log}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*UserResult, error) {
	role, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role: " + cmd.Role)
	}

	u, err := user.NewUser(cmd.Username, cmd.Password, role, cmd.BcryptCost)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, u); err != nil {
			if errors.IsDuplicateKeyError(err) {
				return errors.NewConflictError("username already taken: " + u.Username())
			}
			return errors.NewInternalError("failed to create user", err)
		}
		return uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, audit.ActionCreate,
			"created user "+u.Username()+" with role "+role.String())
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "username", u.Username(), "role", role.String())
	return userResult(u), nil
}

func userResult(u *user.User) *UserResult {
	r := &UserResult{
		ID:        u.ID(),
		Username:  u.Username(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt().UnixMilli(),
	}
	if t := u.LastLogin(); t != nil {
		ms := t.UnixMilli()
		r.LastLogin = &ms
	}
	return r
}
