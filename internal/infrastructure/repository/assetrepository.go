// Package repository contains the gorm-backed implementations of the
// domain repository interfaces. Every method resolves its handle through
// GetTxFromContext so calls join an in-flight transaction transparently.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fibernet/internal/domain/asset"
	"fibernet/internal/infrastructure/persistence/mappers"
	"fibernet/internal/infrastructure/persistence/models"
	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
)

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(gdb *gorm.DB) asset.Repository {
	return &AssetRepository{db: gdb, mapper: mappers.NewAssetMapper()}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("asset")
	}
	return nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("asset")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AssetRepository) FindBySerialNumber(ctx context.Context, serial string) (*asset.Asset, error) {
	var model models.AssetModel
	err := db.GetTxFromContext(ctx, r.db).Where("serial_number = ?", serial).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("asset")
		}
		return nil, fmt.Errorf("failed to find asset by serial: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AssetRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]*asset.Asset, error) {
	var assetModels []models.AssetModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("assigned_customer_id = ?", customerID).
		Find(&assetModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find assets by customer: %w", err)
	}
	return r.toDomainSlice(assetModels), nil
}

func (r *AssetRepository) List(ctx context.Context, filter asset.ListFilter) ([]*asset.Asset, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AssetModel{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}

	var assetModels []models.AssetModel
	if err := query.Order("id").Find(&assetModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return r.toDomainSlice(assetModels), nil
}

func (r *AssetRepository) CountByTypeAndStatus(ctx context.Context) (map[asset.Type]map[asset.Status]int64, error) {
	var rows []struct {
		Type   string
		Status string
		Count  int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Select("type, status, count(*) as count").
		Group("type").Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count assets: %w", err)
	}

	counts := make(map[asset.Type]map[asset.Status]int64)
	for _, row := range rows {
		t := asset.Type(row.Type)
		if counts[t] == nil {
			counts[t] = make(map[asset.Status]int64)
		}
		counts[t][asset.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *AssetRepository) FindAssignedBefore(ctx context.Context, thresholdDays int) ([]*asset.Asset, error) {
	cutoff := biztime.Now().AddDate(0, 0, -thresholdDays)
	var assetModels []models.AssetModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND assigned_at < ?", asset.StatusAssigned.String(), cutoff).
		Order("assigned_at").
		Find(&assetModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find long-assigned assets: %w", err)
	}
	return r.toDomainSlice(assetModels), nil
}

// ClaimAvailable is a conditional update. Under concurrent claims only
// one caller sees RowsAffected == 1.
func (r *AssetRepository) ClaimAvailable(ctx context.Context, assetID, customerID uint) (bool, error) {
	now := biztime.Now()
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Where("id = ? AND status = ?", assetID, asset.StatusAvailable.String()).
		Updates(map[string]interface{}{
			"status":               asset.StatusAssigned.String(),
			"assigned_customer_id": customerID,
			"assigned_at":          now,
			"updated_at":           now,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim asset: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *AssetRepository) toDomainSlice(assetModels []models.AssetModel) []*asset.Asset {
	assets := make([]*asset.Asset, len(assetModels))
	for i := range assetModels {
		assets[i] = r.mapper.ToDomain(&assetModels[i])
	}
	return assets
}
