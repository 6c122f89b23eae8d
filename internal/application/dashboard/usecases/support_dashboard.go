package usecases

import (
	"context"
	"time"

	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type CustomerSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Neighborhood string    `json:"neighborhood"`
	Plan         string    `json:"plan"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type SupportDashboardResult struct {
	CustomersByStatus map[string]int64  `json:"customers_by_status"`
	PendingCustomers  []CustomerSummary `json:"pending_customers"`
	RecentSignups     []CustomerSummary `json:"recent_signups"`
	OpenTaskCount     int64             `json:"open_task_count"`
}

type SupportDashboardUseCase struct {
	customerRepo customer.Repository
	taskRepo     deployment.TaskRepository
	cache        Cache
	cacheTTL     time.Duration
	logger       logger.Interface
}

func NewSupportDashboardUseCase(
	customerRepo customer.Repository,
	taskRepo deployment.TaskRepository,
	cache Cache,
	cacheTTL time.Duration,
	log logger.Interface,
) *SupportDashboardUseCase {
	return &SupportDashboardUseCase{
		customerRepo: customerRepo,
		taskRepo:     taskRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       log,
	}
}

func (uc *SupportDashboardUseCase) Execute(ctx context.Context) (*SupportDashboardResult, error) {
	return withCache(ctx, uc.cache, uc.logger, "dashboard:support", uc.cacheTTL, func() (*SupportDashboardResult, error) {
		return uc.build(ctx)
	})
}

func (uc *SupportDashboardUseCase) build(ctx context.Context) (*SupportDashboardResult, error) {
	counts, err := uc.customerRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count customers", err)
	}
	byStatus := make(map[string]int64, len(counts))
	for s, n := range counts {
		byStatus[s.String()] = n
	}

	pending, err := uc.customerRepo.List(ctx, customer.ListFilter{Status: customer.StatusPending})
	if err != nil {
		return nil, errors.NewInternalError("failed to list pending customers", err)
	}

	recent, err := uc.customerRepo.FindCreatedSince(ctx, 7)
	if err != nil {
		return nil, errors.NewInternalError("failed to load recent signups", err)
	}

	taskCounts, err := uc.taskRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count tasks", err)
	}
	openTasks := taskCounts[deployment.StatusScheduled] + taskCounts[deployment.StatusInProgress]

	return &SupportDashboardResult{
		CustomersByStatus: byStatus,
		PendingCustomers:  customerSummaries(pending),
		RecentSignups:     customerSummaries(recent),
		OpenTaskCount:     openTasks,
	}, nil
}

func customerSummaries(customers []*customer.Customer) []CustomerSummary {
	summaries := make([]CustomerSummary, 0, len(customers))
	for _, c := range customers {
		summaries = append(summaries, CustomerSummary{
			ID:           c.ID(),
			Name:         c.Name(),
			Neighborhood: c.Neighborhood(),
			Plan:         c.Plan(),
			Status:       c.Status().String(),
			CreatedAt:    c.CreatedAt(),
		})
	}
	return summaries
}
