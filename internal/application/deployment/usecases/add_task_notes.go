package usecases

import (
	"context"
	"fmt"

	appaudit "fibernet/internal/application/audit"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type AddTaskNotesCommand struct {
	ActorID   uint
	ActorRole string
	TaskID    uint
	Notes     string
}

type AddTaskNotesUseCase struct {
	taskRepo  deployment.TaskRepository
	recorder  appaudit.Recorder
	txManager db.TransactionManager
	logger    logger.Interface
}

func NewAddTaskNotesUseCase(
	taskRepo deployment.TaskRepository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *AddTaskNotesUseCase {
	return &AddTaskNotesUseCase{taskRepo: taskRepo, recorder: recorder, txManager: txManager, logger: log}
}

func (uc *AddTaskNotesUseCase) Execute(ctx context.Context, cmd AddTaskNotesCommand) (*TaskResult, error) {
	if cmd.TaskID == 0 {
		return nil, errors.NewValidationError("task id is required")
	}

	var result *TaskResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		task, err := uc.taskRepo.FindByID(txCtx, cmd.TaskID)
		if err != nil {
			return err
		}
		if err := task.AddNotes(cmd.Notes); err != nil {
			return err
		}
		if err := uc.taskRepo.Update(txCtx, task); err != nil {
			return errors.NewInternalError("failed to update task", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionUpdate,
			fmt.Sprintf("appended notes to task %d", task.ID())); err != nil {
			return err
		}
		result = taskResult(task)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
