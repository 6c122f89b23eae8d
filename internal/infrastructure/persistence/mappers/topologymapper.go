package mappers

import (
	"fibernet/internal/domain/topology"
	"fibernet/internal/infrastructure/persistence/models"
)

type TopologyMapper struct{}

func NewTopologyMapper() TopologyMapper {
	return TopologyMapper{}
}

func (TopologyMapper) HeadendToModel(h *topology.Headend) *models.HeadendModel {
	return &models.HeadendModel{
		ID:        h.ID(),
		Name:      h.Name(),
		Location:  h.Location(),
		Region:    h.Region(),
		CreatedAt: h.CreatedAt(),
	}
}

func (TopologyMapper) HeadendToDomain(m *models.HeadendModel) *topology.Headend {
	return topology.ReconstructHeadend(m.ID, m.Name, m.Location, m.Region, m.CreatedAt)
}

func (TopologyMapper) FDHToModel(f *topology.FDH) *models.FDHModel {
	return &models.FDHModel{
		ID:          f.ID(),
		Name:        f.Name(),
		Location:    f.Location(),
		Region:      f.Region(),
		MaxCapacity: f.MaxCapacity(),
		HeadendID:   f.HeadendID(),
		CreatedAt:   f.CreatedAt(),
	}
}

func (TopologyMapper) FDHToDomain(m *models.FDHModel) *topology.FDH {
	return topology.ReconstructFDH(m.ID, m.Name, m.Location, m.Region, m.MaxCapacity, m.HeadendID, m.CreatedAt)
}

func (TopologyMapper) SplitterToModel(s *topology.Splitter) *models.SplitterModel {
	return &models.SplitterModel{
		ID:           s.ID(),
		Model:        s.Model(),
		Location:     s.Location(),
		PortCapacity: s.PortCapacity(),
		FDHID:        s.FDHID(),
		CreatedAt:    s.CreatedAt(),
	}
}

func (TopologyMapper) SplitterToDomain(m *models.SplitterModel) *topology.Splitter {
	return topology.ReconstructSplitter(m.ID, m.Model, m.Location, m.PortCapacity, m.FDHID, m.CreatedAt)
}
