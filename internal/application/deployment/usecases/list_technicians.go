package usecases

import (
	"context"

	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ListTechniciansResult struct {
	Technicians []TechnicianResult `json:"technicians"`
}

type ListTechniciansUseCase struct {
	technicianRepo deployment.TechnicianRepository
	logger         logger.Interface
}

func NewListTechniciansUseCase(technicianRepo deployment.TechnicianRepository, log logger.Interface) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{technicianRepo: technicianRepo, logger: log}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context) (*ListTechniciansResult, error) {
	technicians, err := uc.technicianRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list technicians", "error", err)
		return nil, errors.NewInternalError("failed to list technicians", err)
	}
	results := make([]TechnicianResult, 0, len(technicians))
	for _, t := range technicians {
		results = append(results, *technicianResult(t))
	}
	return &ListTechniciansResult{Technicians: results}, nil
}
