package usecases

import (
	"context"
	"time"

	"fibernet/internal/domain/asset"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type AssetStatusSummary struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Assigned  int64 `json:"assigned"`
	Faulty    int64 `json:"faulty"`
	Retired   int64 `json:"retired"`
}

type FDHUtilization struct {
	FDHID           uint    `json:"fdh_id"`
	Name            string  `json:"name"`
	Splitters       int     `json:"splitters"`
	TotalPorts      int     `json:"total_ports"`
	UsedPorts       int     `json:"used_ports"`
	UtilizationRate float64 `json:"utilization_rate"`
}

type RecentOnboarding struct {
	CustomerID   uint      `json:"customer_id"`
	Name         string    `json:"name"`
	Neighborhood string    `json:"neighborhood"`
	CreatedAt    time.Time `json:"created_at"`
}

type PlannerDashboardResult struct {
	AssetsByType      map[string]AssetStatusSummary `json:"assets_by_type"`
	CustomersByStatus map[string]int64              `json:"customers_by_status"`
	RecentOnboardings []RecentOnboarding            `json:"recent_onboardings"`
	FDHUtilization    []FDHUtilization              `json:"fdh_utilization"`
}

type PlannerDashboardUseCase struct {
	assetRepo    asset.Repository
	customerRepo customer.Repository
	fdhRepo      topology.FDHRepository
	splitterRepo topology.SplitterRepository
	cache        Cache
	cacheTTL     time.Duration
	logger       logger.Interface
}

func NewPlannerDashboardUseCase(
	assetRepo asset.Repository,
	customerRepo customer.Repository,
	fdhRepo topology.FDHRepository,
	splitterRepo topology.SplitterRepository,
	cache Cache,
	cacheTTL time.Duration,
	log logger.Interface,
) *PlannerDashboardUseCase {
	return &PlannerDashboardUseCase{
		assetRepo:    assetRepo,
		customerRepo: customerRepo,
		fdhRepo:      fdhRepo,
		splitterRepo: splitterRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       log,
	}
}

func (uc *PlannerDashboardUseCase) Execute(ctx context.Context) (*PlannerDashboardResult, error) {
	return withCache(ctx, uc.cache, uc.logger, "dashboard:planner", uc.cacheTTL, func() (*PlannerDashboardResult, error) {
		return uc.build(ctx)
	})
}

func (uc *PlannerDashboardUseCase) build(ctx context.Context) (*PlannerDashboardResult, error) {
	assetCounts, err := uc.assetRepo.CountByTypeAndStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count assets", err)
	}
	byType := make(map[string]AssetStatusSummary, len(assetCounts))
	for t, statuses := range assetCounts {
		s := AssetStatusSummary{
			Available: statuses[asset.StatusAvailable],
			Assigned:  statuses[asset.StatusAssigned],
			Faulty:    statuses[asset.StatusFaulty],
			Retired:   statuses[asset.StatusRetired],
		}
		s.Total = s.Available + s.Assigned + s.Faulty + s.Retired
		byType[t.String()] = s
	}

	customerCounts, err := uc.customerRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count customers", err)
	}
	byStatus := make(map[string]int64, len(customerCounts))
	for s, n := range customerCounts {
		byStatus[s.String()] = n
	}

	recent, err := uc.customerRepo.FindCreatedSince(ctx, 7)
	if err != nil {
		return nil, errors.NewInternalError("failed to load recent onboardings", err)
	}
	onboardings := make([]RecentOnboarding, 0, len(recent))
	for _, c := range recent {
		onboardings = append(onboardings, RecentOnboarding{
			CustomerID:   c.ID(),
			Name:         c.Name(),
			Neighborhood: c.Neighborhood(),
			CreatedAt:    c.CreatedAt(),
		})
	}

	utilization, err := uc.fdhUtilization(ctx)
	if err != nil {
		return nil, err
	}

	return &PlannerDashboardResult{
		AssetsByType:      byType,
		CustomersByStatus: byStatus,
		RecentOnboardings: onboardings,
		FDHUtilization:    utilization,
	}, nil
}

func (uc *PlannerDashboardUseCase) fdhUtilization(ctx context.Context) ([]FDHUtilization, error) {
	fdhs, err := uc.fdhRepo.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to list FDH cabinets", err)
	}

	results := make([]FDHUtilization, 0, len(fdhs))
	for _, f := range fdhs {
		splitters, err := uc.splitterRepo.FindByFDHID(ctx, f.ID())
		if err != nil {
			return nil, errors.NewInternalError("failed to list splitters", err)
		}
		u := FDHUtilization{FDHID: f.ID(), Name: f.Name(), Splitters: len(splitters)}
		for _, s := range splitters {
			occupied, err := uc.customerRepo.FindOccupiedPorts(ctx, s.ID())
			if err != nil {
				return nil, errors.NewInternalError("failed to load port occupancy", err)
			}
			u.TotalPorts += s.PortCapacity()
			u.UsedPorts += len(occupied)
		}
		if u.TotalPorts > 0 {
			u.UtilizationRate = float64(u.UsedPorts) / float64(u.TotalPorts)
		}
		results = append(results, u)
	}
	return results, nil
}
