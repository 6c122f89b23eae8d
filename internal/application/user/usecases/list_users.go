package usecases

import (
	"context"

	"fibernet/internal/domain/user"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: log}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]UserResult, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users", err)
	}

	results := make([]UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, *userResult(u))
	}
	return results, nil
}

type GetUserCommand struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, log logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: log}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, cmd GetUserCommand) (*UserResult, error) {
	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	return userResult(u), nil
}
