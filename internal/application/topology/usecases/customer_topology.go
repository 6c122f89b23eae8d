package usecases

import (
	"context"

	"fibernet/internal/domain/asset"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type CustomerTopologyCommand struct {
	CustomerID uint
}

type TopologyAssetInfo struct {
	ID           uint   `json:"id"`
	Type         string `json:"type"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
}

type CustomerTopologyResult struct {
	CustomerID   uint                `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Status       string              `json:"status"`
	Port         *int                `json:"port,omitempty"`
	Splitter     *SplitterResult     `json:"splitter,omitempty"`
	FDH          *FDHResult          `json:"fdh,omitempty"`
	Headend      *HeadendResult      `json:"headend,omitempty"`
	Assets       []TopologyAssetInfo `json:"assets"`
}

// CustomerTopologyUseCase walks the chain from a customer up to its
// headend and down to its installed equipment.
type CustomerTopologyUseCase struct {
	customerRepo customer.Repository
	splitterRepo topology.SplitterRepository
	fdhRepo      topology.FDHRepository
	headendRepo  topology.HeadendRepository
	assetRepo    asset.Repository
	logger       logger.Interface
}

func NewCustomerTopologyUseCase(
	customerRepo customer.Repository,
	splitterRepo topology.SplitterRepository,
	fdhRepo topology.FDHRepository,
	headendRepo topology.HeadendRepository,
	assetRepo asset.Repository,
	log logger.Interface,
) *CustomerTopologyUseCase {
	return &CustomerTopologyUseCase{
		customerRepo: customerRepo,
		splitterRepo: splitterRepo,
		fdhRepo:      fdhRepo,
		headendRepo:  headendRepo,
		assetRepo:    assetRepo,
		logger:       log,
	}
}

func (uc *CustomerTopologyUseCase) Execute(ctx context.Context, cmd CustomerTopologyCommand) (*CustomerTopologyResult, error) {
	cust, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	result := &CustomerTopologyResult{
		CustomerID:   cust.ID(),
		CustomerName: cust.Name(),
		Status:       cust.Status().String(),
		Port:         cust.AssignedPort(),
	}

	assets, err := uc.assetRepo.FindByCustomerID(ctx, cust.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load customer assets", err)
	}
	for _, a := range assets {
		result.Assets = append(result.Assets, TopologyAssetInfo{
			ID:           a.ID(),
			Type:         a.Type().String(),
			Model:        a.Model(),
			SerialNumber: a.SerialNumber(),
			Status:       a.Status().String(),
		})
	}

	if cust.SplitterID() == nil {
		return result, nil
	}

	splitter, err := uc.splitterRepo.FindByID(ctx, *cust.SplitterID())
	if err != nil {
		return nil, err
	}
	result.Splitter = &SplitterResult{
		ID:           splitter.ID(),
		Model:        splitter.Model(),
		Location:     splitter.Location(),
		PortCapacity: splitter.PortCapacity(),
		FDHID:        splitter.FDHID(),
	}

	fdh, err := uc.fdhRepo.FindByID(ctx, splitter.FDHID())
	if err != nil {
		return nil, err
	}
	result.FDH = &FDHResult{
		ID:          fdh.ID(),
		Name:        fdh.Name(),
		Location:    fdh.Location(),
		Region:      fdh.Region(),
		MaxCapacity: fdh.MaxCapacity(),
		HeadendID:   fdh.HeadendID(),
	}

	headend, err := uc.headendRepo.FindByID(ctx, fdh.HeadendID())
	if err != nil {
		return nil, err
	}
	result.Headend = &HeadendResult{
		ID:       headend.ID(),
		Name:     headend.Name(),
		Location: headend.Location(),
		Region:   headend.Region(),
	}

	return result, nil
}
