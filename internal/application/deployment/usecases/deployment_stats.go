package usecases

import (
	"context"

	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type DeploymentStatsResult struct {
	StatusCounts       map[string]int64 `json:"status_counts"`
	CompletedLast7Days int              `json:"completed_last_7_days"`
	OverdueCount       int              `json:"overdue_count"`
	UnassignedCount    int              `json:"unassigned_count"`
}

type DeploymentStatsUseCase struct {
	taskRepo deployment.TaskRepository
	logger   logger.Interface
}

func NewDeploymentStatsUseCase(taskRepo deployment.TaskRepository, log logger.Interface) *DeploymentStatsUseCase {
	return &DeploymentStatsUseCase{taskRepo: taskRepo, logger: log}
}

func (uc *DeploymentStatsUseCase) Execute(ctx context.Context) (*DeploymentStatsResult, error) {
	counts, err := uc.taskRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tasks", "error", err)
		return nil, errors.NewInternalError("failed to count tasks", err)
	}
	byStatus := make(map[string]int64, len(counts))
	for s, n := range counts {
		byStatus[s.String()] = n
	}

	completed, err := uc.taskRepo.FindCompletedSince(ctx, 7)
	if err != nil {
		return nil, errors.NewInternalError("failed to load recent completions", err)
	}
	overdue, err := uc.taskRepo.FindOverdue(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to load overdue tasks", err)
	}
	unassigned, err := uc.taskRepo.FindUnassigned(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to load unassigned tasks", err)
	}

	return &DeploymentStatsResult{
		StatusCounts:       byStatus,
		CompletedLast7Days: len(completed),
		OverdueCount:       len(overdue),
		UnassignedCount:    len(unassigned),
	}, nil
}
