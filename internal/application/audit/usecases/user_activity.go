package usecases

import (
	"context"

	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type UserActivityCommand struct {
	UserID uint
	Days   int
}

type UserActivityResult struct {
	UserID  uint          `json:"user_id"`
	Days    int           `json:"days"`
	Entries []EntryResult `json:"entries"`
}

type UserActivityUseCase struct {
	auditRepo auditdomain.Repository
	users     UserDirectory
	logger    logger.Interface
}

func NewUserActivityUseCase(auditRepo auditdomain.Repository, users UserDirectory, log logger.Interface) *UserActivityUseCase {
	return &UserActivityUseCase{auditRepo: auditRepo, users: users, logger: log}
}

func (uc *UserActivityUseCase) Execute(ctx context.Context, cmd UserActivityCommand) (*UserActivityResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}
	if cmd.Days < 1 || cmd.Days > 365 {
		cmd.Days = 30
	}

	entries, err := uc.auditRepo.FindByActorSince(ctx, cmd.UserID, cmd.Days)
	if err != nil {
		uc.logger.Errorw("failed to load user activity", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load user activity", err)
	}

	names, err := uc.users.UsernamesByIDs(ctx, []uint{cmd.UserID})
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve actor names", err)
	}

	results := make([]EntryResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, EntryResult{
			ID:          e.ID(),
			Reference:   e.Reference(),
			ActorID:     e.ActorID(),
			ActorName:   names[e.ActorID()],
			ActorRole:   e.ActorRole(),
			Action:      e.Action().String(),
			Description: e.Description(),
			CreatedAt:   e.CreatedAt(),
		})
	}

	return &UserActivityResult{UserID: cmd.UserID, Days: cmd.Days, Entries: results}, nil
}
