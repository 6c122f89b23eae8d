package usecases

import (
	"context"

	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenUseCase struct {
	tokens TokenService
	logger logger.Interface
}

func NewRefreshTokenUseCase(tokens TokenService, log logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokens: tokens, logger: log}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	access, refresh, err := uc.tokens.RefreshTokenPair(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	return &RefreshTokenResult{AccessToken: access, RefreshToken: refresh}, nil
}
