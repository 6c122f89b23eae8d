package usecases

import (
	"context"
	"fmt"

	appaudit "fibernet/internal/application/audit"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type CreateHeadendCommand struct {
	ActorID   uint
	ActorRole string
	Name      string
	Location  string
	Region    string
}

type HeadendResult struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Region   string `json:"region"`
}

type CreateFDHCommand struct {
	ActorID     uint
	ActorRole   string
	Name        string
	Location    string
	Region      string
	MaxCapacity int
	HeadendID   uint
}

type FDHResult struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Region      string `json:"region"`
	MaxCapacity int    `json:"max_capacity"`
	HeadendID   uint   `json:"headend_id"`
}

type CreateSplitterCommand struct {
	ActorID      uint
	ActorRole    string
	Model        string
	Location     string
	PortCapacity int
	FDHID        uint
}

type SplitterResult struct {
	ID           uint   `json:"id"`
	Model        string `json:"model"`
	Location     string `json:"location"`
	PortCapacity int    `json:"port_capacity"`
	FDHID        uint   `json:"fdh_id"`
}

// CreateNodesUseCase groups creation of the three topology node kinds.
type CreateNodesUseCase struct {
	headendRepo  topology.HeadendRepository
	fdhRepo      topology.FDHRepository
	splitterRepo topology.SplitterRepository
	recorder     appaudit.Recorder
	txManager    db.TransactionManager
	logger       logger.Interface
}

func NewCreateNodesUseCase(
	headendRepo topology.HeadendRepository,
	fdhRepo topology.FDHRepository,
	splitterRepo topology.SplitterRepository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *CreateNodesUseCase {
	return &CreateNodesUseCase{
		headendRepo:  headendRepo,
		fdhRepo:      fdhRepo,
		splitterRepo: splitterRepo,
		recorder:     recorder,
		txManager:    txManager,
		logger:       log,
	}
}

func (uc *CreateNodesUseCase) CreateHeadend(ctx context.Context, cmd CreateHeadendCommand) (*HeadendResult, error) {
	h, err := topology.NewHeadend(cmd.Name, cmd.Location, cmd.Region)
	if err != nil {
		return nil, err
	}

	var result *HeadendResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.headendRepo.Create(txCtx, h); err != nil {
			return errors.NewInternalError("failed to create headend", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionCreate,
			fmt.Sprintf("created headend %q (id=%d)", h.Name(), h.ID())); err != nil {
			return err
		}
		result = &HeadendResult{ID: h.ID(), Name: h.Name(), Location: h.Location(), Region: h.Region()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("headend created", "headend_id", result.ID)
	return result, nil
}

func (uc *CreateNodesUseCase) CreateFDH(ctx context.Context, cmd CreateFDHCommand) (*FDHResult, error) {
	f, err := topology.NewFDH(cmd.Name, cmd.Location, cmd.Region, cmd.MaxCapacity, cmd.HeadendID)
	if err != nil {
		return nil, err
	}

	var result *FDHResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.headendRepo.FindByID(txCtx, cmd.HeadendID); err != nil {
			return err
		}
		if err := uc.fdhRepo.Create(txCtx, f); err != nil {
			return errors.NewInternalError("failed to create fdh", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionCreate,
			fmt.Sprintf("created fdh %q (id=%d) under headend %d", f.Name(), f.ID(), cmd.HeadendID)); err != nil {
			return err
		}
		result = &FDHResult{
			ID:          f.ID(),
			Name:        f.Name(),
			Location:    f.Location(),
			Region:      f.Region(),
			MaxCapacity: f.MaxCapacity(),
			HeadendID:   f.HeadendID(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("fdh created", "fdh_id", result.ID)
	return result, nil
}

func (uc *CreateNodesUseCase) CreateSplitter(ctx context.Context, cmd CreateSplitterCommand) (*SplitterResult, error) {
	s, err := topology.NewSplitter(cmd.Model, cmd.Location, cmd.PortCapacity, cmd.FDHID)
	if err != nil {
		return nil, err
	}

	var result *SplitterResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.fdhRepo.FindByID(txCtx, cmd.FDHID); err != nil {
			return err
		}
		if err := uc.splitterRepo.Create(txCtx, s); err != nil {
			return errors.NewInternalError("failed to create splitter", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionCreate,
			fmt.Sprintf("created splitter %q (id=%d) under fdh %d", s.Model(), s.ID(), cmd.FDHID)); err != nil {
			return err
		}
		result = &SplitterResult{
			ID:           s.ID(),
			Model:        s.Model(),
			Location:     s.Location(),
			PortCapacity: s.PortCapacity(),
			FDHID:        s.FDHID(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("splitter created", "splitter_id", result.ID)
	return result, nil
}
