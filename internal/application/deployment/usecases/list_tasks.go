package usecases

import (
	"context"

	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ListTasksCommand struct {
	Status       string
	TechnicianID *uint
	CustomerID   *uint
}

type ListTasksResult struct {
	Tasks []TaskResult `json:"tasks"`
}

type ListTasksUseCase struct {
	taskRepo deployment.TaskRepository
	logger   logger.Interface
}

func NewListTasksUseCase(taskRepo deployment.TaskRepository, log logger.Interface) *ListTasksUseCase {
	return &ListTasksUseCase{taskRepo: taskRepo, logger: log}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, cmd ListTasksCommand) (*ListTasksResult, error) {
	if cmd.Status != "" && !deployment.Status(cmd.Status).IsValid() {
		return nil, errors.NewValidationError("invalid task status: " + cmd.Status)
	}

	tasks, err := uc.taskRepo.List(ctx, deployment.TaskFilter{
		Status:       deployment.Status(cmd.Status),
		TechnicianID: cmd.TechnicianID,
		CustomerID:   cmd.CustomerID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err)
		return nil, errors.NewInternalError("failed to list tasks", err)
	}

	results := make([]TaskResult, 0, len(tasks))
	for _, t := range tasks {
		results = append(results, *taskResult(t))
	}
	return &ListTasksResult{Tasks: results}, nil
}
