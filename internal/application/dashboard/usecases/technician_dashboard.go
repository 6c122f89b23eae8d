package usecases

import (
	"context"
	"fmt"
	"time"

	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type TaskSummary struct {
	ID            uint       `json:"id"`
	CustomerID    uint       `json:"customer_id"`
	Status        string     `json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	Overdue       bool       `json:"overdue"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type TechnicianDashboardResult struct {
	TechnicianID      uint          `json:"technician_id"`
	TechnicianName    string        `json:"technician_name"`
	OpenTasks         []TaskSummary `json:"open_tasks"`
	OverdueCount      int           `json:"overdue_count"`
	RecentCompletions []TaskSummary `json:"recent_completions"`
	UnassignedPool    int           `json:"unassigned_pool"`
}

type TechnicianDashboardCommand struct {
	ActorID uint
}

type TechnicianDashboardUseCase struct {
	taskRepo       deployment.TaskRepository
	technicianRepo deployment.TechnicianRepository
	cache          Cache
	cacheTTL       time.Duration
	logger         logger.Interface
}

func NewTechnicianDashboardUseCase(
	taskRepo deployment.TaskRepository,
	technicianRepo deployment.TechnicianRepository,
	cache Cache,
	cacheTTL time.Duration,
	log logger.Interface,
) *TechnicianDashboardUseCase {
	return &TechnicianDashboardUseCase{
		taskRepo:       taskRepo,
		technicianRepo: technicianRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		logger:         log,
	}
}

func (uc *TechnicianDashboardUseCase) Execute(ctx context.Context, cmd TechnicianDashboardCommand) (*TechnicianDashboardResult, error) {
	tech, err := uc.technicianRepo.FindByUserID(ctx, cmd.ActorID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewForbiddenError("no technician record linked to this account")
		}
		return nil, err
	}

	key := fmt.Sprintf("dashboard:technician:%d", tech.ID())
	return withCache(ctx, uc.cache, uc.logger, key, uc.cacheTTL, func() (*TechnicianDashboardResult, error) {
		return uc.build(ctx, tech)
	})
}

func (uc *TechnicianDashboardUseCase) build(ctx context.Context, tech *deployment.Technician) (*TechnicianDashboardResult, error) {
	techID := tech.ID()
	tasks, err := uc.taskRepo.List(ctx, deployment.TaskFilter{TechnicianID: &techID})
	if err != nil {
		return nil, errors.NewInternalError("failed to load technician tasks", err)
	}

	result := &TechnicianDashboardResult{
		TechnicianID:      techID,
		TechnicianName:    tech.Name(),
		OpenTasks:         []TaskSummary{},
		RecentCompletions: []TaskSummary{},
	}

	weekAgo := biztime.Now().AddDate(0, 0, -7)
	for _, t := range tasks {
		summary := TaskSummary{
			ID:            t.ID(),
			CustomerID:    t.CustomerID(),
			Status:        t.Status().String(),
			ScheduledDate: t.ScheduledDate(),
			Overdue:       t.IsOverdue(),
			UpdatedAt:     t.UpdatedAt(),
		}
		switch {
		case !t.Status().IsTerminal():
			result.OpenTasks = append(result.OpenTasks, summary)
			if summary.Overdue {
				result.OverdueCount++
			}
		case t.Status() == deployment.StatusCompleted && t.UpdatedAt().After(weekAgo):
			result.RecentCompletions = append(result.RecentCompletions, summary)
		}
	}

	unassigned, err := uc.taskRepo.FindUnassigned(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to load unassigned tasks", err)
	}
	result.UnassignedPool = len(unassigned)

	return result, nil
}
