package usecases

import (
	"context"

	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type SummaryCommand struct {
	Days int
}

type SummaryResult struct {
	Days            int              `json:"days"`
	ActionCounts    map[string]int64 `json:"action_counts"`
	PerUserActivity map[string]int64 `json:"per_user_activity"`
}

type SummaryUseCase struct {
	auditRepo auditdomain.Repository
	users     UserDirectory
	logger    logger.Interface
}

func NewSummaryUseCase(auditRepo auditdomain.Repository, users UserDirectory, log logger.Interface) *SummaryUseCase {
	return &SummaryUseCase{auditRepo: auditRepo, users: users, logger: log}
}

func (uc *SummaryUseCase) Execute(ctx context.Context, cmd SummaryCommand) (*SummaryResult, error) {
	if cmd.Days < 1 || cmd.Days > 365 {
		cmd.Days = 7
	}

	actionCounts, err := uc.auditRepo.CountByActionSince(ctx, cmd.Days)
	if err != nil {
		uc.logger.Errorw("failed to summarize audit actions", "error", err)
		return nil, errors.NewInternalError("failed to summarize audit actions", err)
	}

	actorCounts, err := uc.auditRepo.CountByActorSince(ctx, cmd.Days)
	if err != nil {
		return nil, errors.NewInternalError("failed to summarize audit actors", err)
	}

	ids := make([]uint, 0, len(actorCounts))
	for id := range actorCounts {
		ids = append(ids, id)
	}
	names, err := uc.users.UsernamesByIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve actor names", err)
	}

	byAction := make(map[string]int64, len(actionCounts))
	for action, n := range actionCounts {
		byAction[action.String()] = n
	}

	byUser := make(map[string]int64, len(actorCounts))
	for id, n := range actorCounts {
		name := names[id]
		if name == "" {
			name = "unknown"
		}
		byUser[name] = n
	}

	return &SummaryResult{Days: cmd.Days, ActionCounts: byAction, PerUserActivity: byUser}, nil
}
