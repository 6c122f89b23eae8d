package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fibernet/internal/domain/deployment"
	"fibernet/internal/infrastructure/persistence/mappers"
	"fibernet/internal/infrastructure/persistence/models"
	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
)

var openTaskStatuses = []string{
	deployment.StatusScheduled.String(),
	deployment.StatusInProgress.String(),
}

type TaskRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskRepository(gdb *gorm.DB) deployment.TaskRepository {
	return &TaskRepository{db: gdb, mapper: mappers.NewTaskMapper()}
}

func (r *TaskRepository) Create(ctx context.Context, t *deployment.Task) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, t *deployment.Task) error {
	model := r.mapper.ToModel(t)
	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("task")
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*deployment.Task, error) {
	var model models.TaskModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("task")
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *TaskRepository) List(ctx context.Context, filter deployment.TaskFilter) ([]*deployment.Task, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TaskModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianID)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	var taskModels []models.TaskModel
	if err := query.Order("id").Find(&taskModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return r.toDomainSlice(taskModels), nil
}

func (r *TaskRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]*deployment.Task, error) {
	var taskModels []models.TaskModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&taskModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tasks by customer: %w", err)
	}
	return r.toDomainSlice(taskModels), nil
}

func (r *TaskRepository) CountByStatus(ctx context.Context) (map[deployment.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TaskModel{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	counts := make(map[deployment.Status]int64, len(rows))
	for _, row := range rows {
		counts[deployment.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *TaskRepository) FindCompletedSince(ctx context.Context, days int) ([]*deployment.Task, error) {
	cutoff := biztime.Now().AddDate(0, 0, -days)
	var taskModels []models.TaskModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND updated_at >= ?", deployment.StatusCompleted.String(), cutoff).
		Order("updated_at DESC").
		Find(&taskModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find completed tasks: %w", err)
	}
	return r.toDomainSlice(taskModels), nil
}

func (r *TaskRepository) FindOverdue(ctx context.Context) ([]*deployment.Task, error) {
	var taskModels []models.TaskModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("scheduled_date < ? AND status IN ?", biztime.Now(), openTaskStatuses).
		Order("scheduled_date").
		Find(&taskModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue tasks: %w", err)
	}
	return r.toDomainSlice(taskModels), nil
}

func (r *TaskRepository) FindUnassigned(ctx context.Context) ([]*deployment.Task, error) {
	var taskModels []models.TaskModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("technician_id IS NULL AND status IN ?", openTaskStatuses).
		Order("created_at").
		Find(&taskModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find unassigned tasks: %w", err)
	}
	return r.toDomainSlice(taskModels), nil
}

func (r *TaskRepository) toDomainSlice(taskModels []models.TaskModel) []*deployment.Task {
	tasks := make([]*deployment.Task, len(taskModels))
	for i := range taskModels {
		tasks[i] = r.mapper.ToDomain(&taskModels[i])
	}
	return tasks
}
