package usecases

import (
	"context"

	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type TechnicianTasksCommand struct {
	TechnicianID uint
}

// TechnicianTasksUseCase lists the workload of one technician.
type TechnicianTasksUseCase struct {
	taskRepo       deployment.TaskRepository
	technicianRepo deployment.TechnicianRepository
	logger         logger.Interface
}

func NewTechnicianTasksUseCase(
	taskRepo deployment.TaskRepository,
	technicianRepo deployment.TechnicianRepository,
	log logger.Interface,
) *TechnicianTasksUseCase {
	return &TechnicianTasksUseCase{taskRepo: taskRepo, technicianRepo: technicianRepo, logger: log}
}

func (uc *TechnicianTasksUseCase) Execute(ctx context.Context, cmd TechnicianTasksCommand) (*ListTasksResult, error) {
	if _, err := uc.technicianRepo.FindByID(ctx, cmd.TechnicianID); err != nil {
		return nil, err
	}
	tasks, err := uc.taskRepo.List(ctx, deployment.TaskFilter{TechnicianID: &cmd.TechnicianID})
	if err != nil {
		return nil, errors.NewInternalError("failed to list technician tasks", err)
	}
	results := make([]TaskResult, 0, len(tasks))
	for _, t := range tasks {
		results = append(results, *taskResult(t))
	}
	return &ListTasksResult{Tasks: results}, nil
}

type MyTasksCommand struct {
	CallerUserID uint
}

// MyTasksUseCase resolves the caller's technician record through the
// account link and returns their tasks.
type MyTasksUseCase struct {
	taskRepo       deployment.TaskRepository
	technicianRepo deployment.TechnicianRepository
	logger         logger.Interface
}

func NewMyTasksUseCase(
	taskRepo deployment.TaskRepository,
	technicianRepo deployment.TechnicianRepository,
	log logger.Interface,
) *MyTasksUseCase {
	return &MyTasksUseCase{taskRepo: taskRepo, technicianRepo: technicianRepo, logger: log}
}

func (uc *MyTasksUseCase) Execute(ctx context.Context, cmd MyTasksCommand) (*ListTasksResult, error) {
	tech, err := uc.technicianRepo.FindByUserID(ctx, cmd.CallerUserID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewForbiddenError("no technician record is linked to this account")
		}
		return nil, errors.NewInternalError("failed to resolve technician", err)
	}

	techID := tech.ID()
	tasks, err := uc.taskRepo.List(ctx, deployment.TaskFilter{TechnicianID: &techID})
	if err != nil {
		return nil, errors.NewInternalError("failed to list tasks", err)
	}
	results := make([]TaskResult, 0, len(tasks))
	for _, t := range tasks {
		results = append(results, *taskResult(t))
	}
	return &ListTasksResult{Tasks: results}, nil
}
