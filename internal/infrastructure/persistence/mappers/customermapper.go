package mappers

import (
	"fibernet/internal/domain/customer"
	"fibernet/internal/infrastructure/persistence/models"
)

type CustomerMapper struct{}

func NewCustomerMapper() CustomerMapper {
	return CustomerMapper{}
}

func (CustomerMapper) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:                c.ID(),
		Name:              c.Name(),
		Address:           c.Address(),
		Neighborhood:      c.Neighborhood(),
		Plan:              c.Plan(),
		ConnectionType:    c.ConnectionType().String(),
		Status:            c.Status().String(),
		SplitterID:        c.SplitterID(),
		AssignedPort:      c.AssignedPort(),
		ONTAssetID:        c.ONTAssetID(),
		RouterAssetID:     c.RouterAssetID(),
		FiberLengthMeters: c.FiberLengthMeters(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}
}

func (CustomerMapper) ToDomain(m *models.CustomerModel) *customer.Customer {
	return customer.ReconstructCustomer(
		m.ID,
		m.Name,
		m.Address,
		m.Neighborhood,
		m.Plan,
		customer.ConnectionType(m.ConnectionType),
		customer.Status(m.Status),
		m.SplitterID,
		m.AssignedPort,
		m.ONTAssetID,
		m.RouterAssetID,
		m.FiberLengthMeters,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
