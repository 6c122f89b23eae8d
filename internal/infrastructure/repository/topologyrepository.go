package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fibernet/internal/domain/topology"
	"fibernet/internal/infrastructure/persistence/mappers"
	"fibernet/internal/infrastructure/persistence/models"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
)

type HeadendRepository struct {
	db     *gorm.DB
	mapper mappers.TopologyMapper
}

func NewHeadendRepository(gdb *gorm.DB) topology.HeadendRepository {
	return &HeadendRepository{db: gdb, mapper: mappers.NewTopologyMapper()}
}

func (r *HeadendRepository) Create(ctx context.Context, h *topology.Headend) error {
	model := r.mapper.HeadendToModel(h)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create headend: %w", err)
	}
	h.SetID(model.ID)
	return nil
}

func (r *HeadendRepository) FindByID(ctx context.Context, id uint) (*topology.Headend, error) {
	var model models.HeadendModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("headend")
		}
		return nil, fmt.Errorf("failed to find headend: %w", err)
	}
	return r.mapper.HeadendToDomain(&model), nil
}

func (r *HeadendRepository) List(ctx context.Context) ([]*topology.Headend, error) {
	var headendModels []models.HeadendModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&headendModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list headends: %w", err)
	}
	headends := make([]*topology.Headend, len(headendModels))
	for i := range headendModels {
		headends[i] = r.mapper.HeadendToDomain(&headendModels[i])
	}
	return headends, nil
}

type FDHRepository struct {
	db     *gorm.DB
	mapper mappers.TopologyMapper
}

func NewFDHRepository(gdb *gorm.DB) topology.FDHRepository {
	return &FDHRepository{db: gdb, mapper: mappers.NewTopologyMapper()}
}

func (r *FDHRepository) Create(ctx context.Context, f *topology.FDH) error {
	model := r.mapper.FDHToModel(f)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create fdh: %w", err)
	}
	f.SetID(model.ID)
	return nil
}

func (r *FDHRepository) FindByID(ctx context.Context, id uint) (*topology.FDH, error) {
	var model models.FDHModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("fdh")
		}
		return nil, fmt.Errorf("failed to find fdh: %w", err)
	}
	return r.mapper.FDHToDomain(&model), nil
}

func (r *FDHRepository) FindByHeadendID(ctx context.Context, headendID uint) ([]*topology.FDH, error) {
	var fdhModels []models.FDHModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("headend_id = ?", headendID).
		Order("id").
		Find(&fdhModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find fdhs by headend: %w", err)
	}
	return r.fdhSlice(fdhModels), nil
}

func (r *FDHRepository) List(ctx context.Context) ([]*topology.FDH, error) {
	var fdhModels []models.FDHModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&fdhModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list fdhs: %w", err)
	}
	return r.fdhSlice(fdhModels), nil
}

func (r *FDHRepository) fdhSlice(fdhModels []models.FDHModel) []*topology.FDH {
	fdhs := make([]*topology.FDH, len(fdhModels))
	for i := range fdhModels {
		fdhs[i] = r.mapper.FDHToDomain(&fdhModels[i])
	}
	return fdhs
}

type SplitterRepository struct {
	db     *gorm.DB
	mapper mappers.TopologyMapper
}

func NewSplitterRepository(gdb *gorm.DB) topology.SplitterRepository {
	return &SplitterRepository{db: gdb, mapper: mappers.NewTopologyMapper()}
}

func (r *SplitterRepository) Create(ctx context.Context, s *topology.Splitter) error {
	model := r.mapper.SplitterToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create splitter: %w", err)
	}
	s.SetID(model.ID)
	return nil
}

func (r *SplitterRepository) FindByID(ctx context.Context, id uint) (*topology.Splitter, error) {
	var model models.SplitterModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("splitter")
		}
		return nil, fmt.Errorf("failed to find splitter: %w", err)
	}
	return r.mapper.SplitterToDomain(&model), nil
}

func (r *SplitterRepository) FindByFDHID(ctx context.Context, fdhID uint) ([]*topology.Splitter, error) {
	var splitterModels []models.SplitterModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("fdh_id = ?", fdhID).
		Order("id").
		Find(&splitterModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find splitters by fdh: %w", err)
	}
	return r.splitterSlice(splitterModels), nil
}

func (r *SplitterRepository) List(ctx context.Context) ([]*topology.Splitter, error) {
	var splitterModels []models.SplitterModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&splitterModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list splitters: %w", err)
	}
	return r.splitterSlice(splitterModels), nil
}

func (r *SplitterRepository) splitterSlice(splitterModels []models.SplitterModel) []*topology.Splitter {
	splitters := make([]*topology.Splitter, len(splitterModels))
	for i := range splitterModels {
		splitters[i] = r.mapper.SplitterToDomain(&splitterModels[i])
	}
	return splitters
}
