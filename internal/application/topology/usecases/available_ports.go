// Package usecases implements topology reads and writes: the distribution
// hierarchy, port availability and device search.
package usecases

import (
	"context"

	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type AvailablePortsCommand struct {
	SplitterID uint
}

type AvailablePortsResult struct {
	SplitterID     uint  `json:"splitter_id"`
	PortCapacity   int   `json:"port_capacity"`
	UsedPorts      int   `json:"used_ports"`
	AvailablePorts []int `json:"available_ports"`
}

// AvailablePortsUseCase computes free ports from live customer bindings.
// Occupancy is never stored on the splitter, so this cannot drift.
type AvailablePortsUseCase struct {
	splitterRepo topology.SplitterRepository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewAvailablePortsUseCase(
	splitterRepo topology.SplitterRepository,
	customerRepo customer.Repository,
	log logger.Interface,
) *AvailablePortsUseCase {
	return &AvailablePortsUseCase{splitterRepo: splitterRepo, customerRepo: customerRepo, logger: log}
}

func (uc *AvailablePortsUseCase) Execute(ctx context.Context, cmd AvailablePortsCommand) (*AvailablePortsResult, error) {
	splitter, err := uc.splitterRepo.FindByID(ctx, cmd.SplitterID)
	if err != nil {
		return nil, err
	}

	occupied, err := uc.customerRepo.FindOccupiedPorts(ctx, cmd.SplitterID)
	if err != nil {
		uc.logger.Errorw("failed to load port occupancy", "splitter_id", cmd.SplitterID, "error", err)
		return nil, errors.NewInternalError("failed to load port occupancy", err)
	}

	return &AvailablePortsResult{
		SplitterID:     splitter.ID(),
		PortCapacity:   splitter.PortCapacity(),
		UsedPorts:      len(occupied),
		AvailablePorts: splitter.AvailablePorts(occupied),
	}, nil
}
