package usecases

import (
	"context"
	"time"

	"fibernet/internal/domain/asset"
	"fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

// UserDirectory resolves actor ids to display names.
type UserDirectory interface {
	UsernamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
}

type AuditEntrySummary struct {
	Reference   string    `json:"reference"`
	ActorID     uint      `json:"actor_id"`
	ActorName   string    `json:"actor_name,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserActivitySummary struct {
	ActorID   uint   `json:"actor_id"`
	ActorName string `json:"actor_name,omitempty"`
	Actions   int64  `json:"actions"`
}

type AdminDashboardResult struct {
	AssetsByStatus    map[string]int64      `json:"assets_by_status"`
	CustomersByStatus map[string]int64      `json:"customers_by_status"`
	TasksByStatus     map[string]int64      `json:"tasks_by_status"`
	RecentAudit       []AuditEntrySummary   `json:"recent_audit"`
	WeeklyActivity    []UserActivitySummary `json:"weekly_activity"`
}

type AdminDashboardUseCase struct {
	assetRepo    asset.Repository
	customerRepo customer.Repository
	taskRepo     deployment.TaskRepository
	auditRepo    audit.Repository
	directory    UserDirectory
	cache        Cache
	cacheTTL     time.Duration
	logger       logger.Interface
}

func NewAdminDashboardUseCase(
	assetRepo asset.Repository,
	customerRepo customer.Repository,
	taskRepo deployment.TaskRepository,
	auditRepo audit.Repository,
	directory UserDirectory,
	cache Cache,
	cacheTTL time.Duration,
	log logger.Interface,
) *AdminDashboardUseCase {
	return &AdminDashboardUseCase{
		assetRepo:    assetRepo,
		customerRepo: customerRepo,
		taskRepo:     taskRepo,
		auditRepo:    auditRepo,
		directory:    directory,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       log,
	}
}

func (uc *AdminDashboardUseCase) Execute(ctx context.Context) (*AdminDashboardResult, error) {
	return withCache(ctx, uc.cache, uc.logger, "dashboard:admin", uc.cacheTTL, func() (*AdminDashboardResult, error) {
		return uc.build(ctx)
	})
}

func (uc *AdminDashboardUseCase) build(ctx context.Context) (*AdminDashboardResult, error) {
	assetCounts, err := uc.assetRepo.CountByTypeAndStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count assets", err)
	}
	assetsByStatus := make(map[string]int64)
	for _, statuses := range assetCounts {
		for s, n := range statuses {
			assetsByStatus[s.String()] += n
		}
	}

	customerCounts, err := uc.customerRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count customers", err)
	}
	customersByStatus := make(map[string]int64, len(customerCounts))
	for s, n := range customerCounts {
		customersByStatus[s.String()] = n
	}

	taskCounts, err := uc.taskRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count tasks", err)
	}
	tasksByStatus := make(map[string]int64, len(taskCounts))
	for s, n := range taskCounts {
		tasksByStatus[s.String()] = n
	}

	recent, err := uc.auditRepo.FindRecent(ctx, 20)
	if err != nil {
		return nil, errors.NewInternalError("failed to load recent audit entries", err)
	}
	activity, err := uc.auditRepo.CountByActorSince(ctx, 7)
	if err != nil {
		return nil, errors.NewInternalError("failed to load audit activity", err)
	}

	names := uc.resolveNames(ctx, recent, activity)

	auditSummaries := make([]AuditEntrySummary, 0, len(recent))
	for _, e := range recent {
		auditSummaries = append(auditSummaries, AuditEntrySummary{
			Reference:   e.Reference(),
			ActorID:     e.ActorID(),
			ActorName:   names[e.ActorID()],
			Action:      e.Action().String(),
			Description: e.Description(),
			CreatedAt:   e.CreatedAt(),
		})
	}

	weekly := make([]UserActivitySummary, 0, len(activity))
	for actorID, count := range activity {
		weekly = append(weekly, UserActivitySummary{
			ActorID:   actorID,
			ActorName: names[actorID],
			Actions:   count,
		})
	}

	return &AdminDashboardResult{
		AssetsByStatus:    assetsByStatus,
		CustomersByStatus: customersByStatus,
		TasksByStatus:     tasksByStatus,
		RecentAudit:       auditSummaries,
		WeeklyActivity:    weekly,
	}, nil
}

func (uc *AdminDashboardUseCase) resolveNames(ctx context.Context, recent []*audit.Entry, activity map[uint]int64) map[uint]string {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(recent)+len(activity))
	for _, e := range recent {
		if _, ok := seen[e.ActorID()]; !ok {
			seen[e.ActorID()] = struct{}{}
			ids = append(ids, e.ActorID())
		}
	}
	for actorID := range activity {
		if _, ok := seen[actorID]; !ok {
			seen[actorID] = struct{}{}
			ids = append(ids, actorID)
		}
	}

	names, err := uc.directory.UsernamesByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve actor names", "error", err)
		return map[uint]string{}
	}
	return names
}
