// Package mappers converts between domain aggregates and persistence
// models. Reconstruct* constructors bypass validation, so a mapper never
// fails on data already in the database.
package mappers

import (
	"fibernet/internal/domain/asset"
	"fibernet/internal/infrastructure/persistence/models"
)

type AssetMapper struct{}

func NewAssetMapper() AssetMapper {
	return AssetMapper{}
}

func (AssetMapper) ToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:                 a.ID(),
		Type:               a.Type().String(),
		Model:              a.Model(),
		SerialNumber:       a.SerialNumber(),
		Status:             a.Status().String(),
		Location:           a.Location(),
		AssignedCustomerID: a.AssignedCustomerID(),
		AssignedAt:         a.AssignedAt(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func (AssetMapper) ToDomain(m *models.AssetModel) *asset.Asset {
	return asset.ReconstructAsset(
		m.ID,
		asset.Type(m.Type),
		m.Model,
		m.SerialNumber,
		asset.Status(m.Status),
		m.Location,
		m.AssignedCustomerID,
		m.AssignedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

type AssignmentMapper struct{}

func NewAssignmentMapper() AssignmentMapper {
	return AssignmentMapper{}
}

func (AssignmentMapper) ToModel(e *asset.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:           e.ID(),
		AssetID:      e.AssetID(),
		CustomerID:   e.CustomerID(),
		AssignedOn:   e.AssignedOn(),
		UnassignedOn: e.UnassignedOn(),
	}
}

func (AssignmentMapper) ToDomain(m *models.AssignmentModel) *asset.Assignment {
	return asset.ReconstructAssignment(m.ID, m.AssetID, m.CustomerID, m.AssignedOn, m.UnassignedOn)
}
