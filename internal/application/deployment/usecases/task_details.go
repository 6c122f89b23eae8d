package usecases

import (
	"context"

	"fibernet/internal/domain/asset"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type TaskDetailsCommand struct {
	TaskID uint
}

type TaskCustomerInfo struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	Status       string `json:"status"`
	SplitterID   *uint  `json:"splitter_id,omitempty"`
	AssignedPort *int   `json:"assigned_port,omitempty"`
}

type TaskAssetInfo struct {
	ID           uint   `json:"id"`
	Type         string `json:"type"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
}

type TaskLocationInfo struct {
	SplitterModel    string `json:"splitter_model,omitempty"`
	SplitterLocation string `json:"splitter_location,omitempty"`
	FDHName          string `json:"fdh_name,omitempty"`
	FDHLocation      string `json:"fdh_location,omitempty"`
}

type TaskDetailsResult struct {
	Task       *TaskResult       `json:"task"`
	Customer   *TaskCustomerInfo `json:"customer"`
	Assets     []TaskAssetInfo   `json:"assets"`
	Location   *TaskLocationInfo `json:"location,omitempty"`
	Technician *TechnicianResult `json:"technician,omitempty"`
}

// TaskDetailsUseCase assembles everything a field crew needs for one
// visit: the task, the customer, the equipment and where to splice in.
type TaskDetailsUseCase struct {
	taskRepo       deployment.TaskRepository
	technicianRepo deployment.TechnicianRepository
	customerRepo   customer.Repository
	assetRepo      asset.Repository
	splitterRepo   topology.SplitterRepository
	fdhRepo        topology.FDHRepository
	logger         logger.Interface
}

func NewTaskDetailsUseCase(
	taskRepo deployment.TaskRepository,
	technicianRepo deployment.TechnicianRepository,
	customerRepo customer.Repository,
	assetRepo asset.Repository,
	splitterRepo topology.SplitterRepository,
	fdhRepo topology.FDHRepository,
	log logger.Interface,
) *TaskDetailsUseCase {
	return &TaskDetailsUseCase{
		taskRepo:       taskRepo,
		technicianRepo: technicianRepo,
		customerRepo:   customerRepo,
		assetRepo:      assetRepo,
		splitterRepo:   splitterRepo,
		fdhRepo:        fdhRepo,
		logger:         log,
	}
}

func (uc *TaskDetailsUseCase) Execute(ctx context.Context, cmd TaskDetailsCommand) (*TaskDetailsResult, error) {
	task, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	cust, err := uc.customerRepo.FindByID(ctx, task.CustomerID())
	if err != nil {
		return nil, err
	}

	result := &TaskDetailsResult{
		Task: taskResult(task),
		Customer: &TaskCustomerInfo{
			ID:           cust.ID(),
			Name:         cust.Name(),
			Address:      cust.Address(),
			Neighborhood: cust.Neighborhood(),
			Status:       cust.Status().String(),
			SplitterID:   cust.SplitterID(),
			AssignedPort: cust.AssignedPort(),
		},
	}

	assets, err := uc.assetRepo.FindByCustomerID(ctx, cust.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load customer assets", err)
	}
	for _, a := range assets {
		result.Assets = append(result.Assets, TaskAssetInfo{
			ID:           a.ID(),
			Type:         a.Type().String(),
			Model:        a.Model(),
			SerialNumber: a.SerialNumber(),
			Status:       a.Status().String(),
		})
	}

	if cust.SplitterID() != nil {
		splitter, err := uc.splitterRepo.FindByID(ctx, *cust.SplitterID())
		if err == nil {
			location := &TaskLocationInfo{
				SplitterModel:    splitter.Model(),
				SplitterLocation: splitter.Location(),
			}
			if fdh, err := uc.fdhRepo.FindByID(ctx, splitter.FDHID()); err == nil {
				location.FDHName = fdh.Name()
				location.FDHLocation = fdh.Location()
			}
			result.Location = location
		}
	}

	if task.TechnicianID() != nil {
		if tech, err := uc.technicianRepo.FindByID(ctx, *task.TechnicianID()); err == nil {
			result.Technician = technicianResult(tech)
		}
	}

	return result, nil
}
