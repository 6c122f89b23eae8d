package usecases

import (
	"context"

	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ListNodesUseCase struct {
	headendRepo  topology.HeadendRepository
	fdhRepo      topology.FDHRepository
	splitterRepo topology.SplitterRepository
	logger       logger.Interface
}

func NewListNodesUseCase(
	headendRepo topology.HeadendRepository,
	fdhRepo topology.FDHRepository,
	splitterRepo topology.SplitterRepository,
	log logger.Interface,
) *ListNodesUseCase {
	return &ListNodesUseCase{headendRepo: headendRepo, fdhRepo: fdhRepo, splitterRepo: splitterRepo, logger: log}
}

func (uc *ListNodesUseCase) Headends(ctx context.Context) ([]HeadendResult, error) {
	headends, err := uc.headendRepo.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to list headends", err)
	}
	results := make([]HeadendResult, 0, len(headends))
	for _, h := range headends {
		results = append(results, HeadendResult{ID: h.ID(), Name: h.Name(), Location: h.Location(), Region: h.Region()})
	}
	return results, nil
}

func (uc *ListNodesUseCase) FDHs(ctx context.Context, headendID *uint) ([]FDHResult, error) {
	var (
		fdhs []*topology.FDH
		err  error
	)
	if headendID != nil {
		fdhs, err = uc.fdhRepo.FindByHeadendID(ctx, *headendID)
	} else {
		fdhs, err = uc.fdhRepo.List(ctx)
	}
	if err != nil {
		return nil, errors.NewInternalError("failed to list fdhs", err)
	}
	results := make([]FDHResult, 0, len(fdhs))
	for _, f := range fdhs {
		results = append(results, FDHResult{
			ID:          f.ID(),
			Name:        f.Name(),
			Location:    f.Location(),
			Region:      f.Region(),
			MaxCapacity: f.MaxCapacity(),
			HeadendID:   f.HeadendID(),
		})
	}
	return results, nil
}

func (uc *ListNodesUseCase) Splitters(ctx context.Context, fdhID *uint) ([]SplitterResult, error) {
	var (
		splitters []*topology.Splitter
		err       error
	)
	if fdhID != nil {
		splitters, err = uc.splitterRepo.FindByFDHID(ctx, *fdhID)
	} else {
		splitters, err = uc.splitterRepo.List(ctx)
	}
	if err != nil {
		return nil, errors.NewInternalError("failed to list splitters", err)
	}
	results := make([]SplitterResult, 0, len(splitters))
	for _, s := range splitters {
		results = append(results, SplitterResult{
			ID:           s.ID(),
			Model:        s.Model(),
			Location:     s.Location(),
			PortCapacity: s.PortCapacity(),
			FDHID:        s.FDHID(),
		})
	}
	return results, nil
}
