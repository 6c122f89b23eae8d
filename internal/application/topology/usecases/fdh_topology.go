package usecases

import (
	"context"

	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type FDHTopologyCommand struct {
	FDHID uint
}

type SplitterOccupancy struct {
	SplitterID   uint               `json:"splitter_id"`
	Model        string             `json:"model"`
	Location     string             `json:"location"`
	PortCapacity int                `json:"port_capacity"`
	UsedPorts    int                `json:"used_ports"`
	Customers    []SplitterCustomer `json:"customers"`
}

type SplitterCustomer struct {
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name"`
	Port       int    `json:"port"`
	Status     string `json:"status"`
}

type FDHTopologyResult struct {
	FDH       FDHResult           `json:"fdh"`
	Splitters []SplitterOccupancy `json:"splitters"`
}

// FDHTopologyUseCase reports a hub's splitters with derived occupancy.
type FDHTopologyUseCase struct {
	fdhRepo      topology.FDHRepository
	splitterRepo topology.SplitterRepository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewFDHTopologyUseCase(
	fdhRepo topology.FDHRepository,
	splitterRepo topology.SplitterRepository,
	customerRepo customer.Repository,
	log logger.Interface,
) *FDHTopologyUseCase {
	return &FDHTopologyUseCase{fdhRepo: fdhRepo, splitterRepo: splitterRepo, customerRepo: customerRepo, logger: log}
}

func (uc *FDHTopologyUseCase) Execute(ctx context.Context, cmd FDHTopologyCommand) (*FDHTopologyResult, error) {
	fdh, err := uc.fdhRepo.FindByID(ctx, cmd.FDHID)
	if err != nil {
		return nil, err
	}

	splitters, err := uc.splitterRepo.FindByFDHID(ctx, cmd.FDHID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load splitters", err)
	}

	result := &FDHTopologyResult{
		FDH: FDHResult{
			ID:          fdh.ID(),
			Name:        fdh.Name(),
			Location:    fdh.Location(),
			Region:      fdh.Region(),
			MaxCapacity: fdh.MaxCapacity(),
			HeadendID:   fdh.HeadendID(),
		},
		Splitters: make([]SplitterOccupancy, 0, len(splitters)),
	}

	for _, s := range splitters {
		customers, err := uc.customerRepo.FindBySplitterID(ctx, s.ID())
		if err != nil {
			return nil, errors.NewInternalError("failed to load splitter customers", err)
		}

		occupancy := SplitterOccupancy{
			SplitterID:   s.ID(),
			Model:        s.Model(),
			Location:     s.Location(),
			PortCapacity: s.PortCapacity(),
		}
		for _, c := range customers {
			if c.AssignedPort() == nil || !c.Status().HoldsPort() {
				continue
			}
			occupancy.UsedPorts++
			occupancy.Customers = append(occupancy.Customers, SplitterCustomer{
				CustomerID: c.ID(),
				Name:       c.Name(),
				Port:       *c.AssignedPort(),
				Status:     c.Status().String(),
			})
		}
		result.Splitters = append(result.Splitters, occupancy)
	}

	return result, nil
}
