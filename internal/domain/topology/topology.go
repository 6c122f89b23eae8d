// Package topology models the physical fiber distribution hierarchy:
// Headend owns FDHs, an FDH owns splitters, and splitter ports connect
// customers. Port occupancy is derived from customer bindings, never
// stored on the splitter itself.
package topology

import (
	"strings"
	"time"

	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/errors"
)

type Headend struct {
	id        uint
	name      string
	location  string
	region    string
	createdAt time.Time
}

func NewHeadend(name, location, region string) (*Headend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("headend name is required")
	}
	return &Headend{
		name:      name,
		location:  strings.TrimSpace(location),
		region:    strings.TrimSpace(region),
		createdAt: biztime.Now(),
	}, nil
}

func ReconstructHeadend(id uint, name, location, region string, createdAt time.Time) *Headend {
	return &Headend{id: id, name: name, location: location, region: region, createdAt: createdAt}
}

func (h *Headend) ID() uint             { return h.id }
func (h *Headend) Name() string         { return h.name }
func (h *Headend) Location() string     { return h.location }
func (h *Headend) Region() string       { return h.region }
func (h *Headend) CreatedAt() time.Time { return h.createdAt }
func (h *Headend) SetID(id uint)        { h.id = id }

type FDH struct {
	id          uint
	name        string
	location    string
	region      string
	maxCapacity int
	headendID   uint
	createdAt   time.Time
}

func NewFDH(name, location, region string, maxCapacity int, headendID uint) (*FDH, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("fdh name is required")
	}
	if maxCapacity <= 0 {
		return nil, errors.NewValidationError("fdh max capacity must be positive")
	}
	if headendID == 0 {
		return nil, errors.NewValidationError("fdh requires a parent headend")
	}
	return &FDH{
		name:        name,
		location:    strings.TrimSpace(location),
		region:      strings.TrimSpace(region),
		maxCapacity: maxCapacity,
		headendID:   headendID,
		createdAt:   biztime.Now(),
	}, nil
}

func ReconstructFDH(id uint, name, location, region string, maxCapacity int, headendID uint, createdAt time.Time) *FDH {
	return &FDH{
		id:          id,
		name:        name,
		location:    location,
		region:      region,
		maxCapacity: maxCapacity,
		headendID:   headendID,
		createdAt:   createdAt,
	}
}

func (f *FDH) ID() uint             { return f.id }
func (f *FDH) Name() string         { return f.name }
func (f *FDH) Location() string     { return f.location }
func (f *FDH) Region() string       { return f.region }
func (f *FDH) MaxCapacity() int     { return f.maxCapacity }
func (f *FDH) HeadendID() uint      { return f.headendID }
func (f *FDH) CreatedAt() time.Time { return f.createdAt }
func (f *FDH) SetID(id uint)        { f.id = id }

type Splitter struct {
	id           uint
	model        string
	location     string
	portCapacity int
	fdhID        uint
	createdAt    time.Time
}

func NewSplitter(model, location string, portCapacity int, fdhID uint) (*Splitter, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.NewValidationError("splitter model is required")
	}
	if portCapacity <= 0 {
		return nil, errors.NewValidationError("splitter port capacity must be positive")
	}
	if fdhID == 0 {
		return nil, errors.NewValidationError("splitter requires a parent fdh")
	}
	return &Splitter{
		model:        model,
		location:     strings.TrimSpace(location),
		portCapacity: portCapacity,
		fdhID:        fdhID,
		createdAt:    biztime.Now(),
	}, nil
}

func ReconstructSplitter(id uint, model, location string, portCapacity int, fdhID uint, createdAt time.Time) *Splitter {
	return &Splitter{
		id:           id,
		model:        model,
		location:     location,
		portCapacity: portCapacity,
		fdhID:        fdhID,
		createdAt:    createdAt,
	}
}

func (s *Splitter) ID() uint             { return s.id }
func (s *Splitter) Model() string        { return s.model }
func (s *Splitter) Location() string     { return s.location }
func (s *Splitter) PortCapacity() int    { return s.portCapacity }
func (s *Splitter) FDHID() uint          { return s.fdhID }
func (s *Splitter) CreatedAt() time.Time { return s.createdAt }
func (s *Splitter) SetID(id uint)        { s.id = id }

// ValidPort reports whether a port index is addressable on this splitter.
// Ports are numbered 1 through capacity.
func (s *Splitter) ValidPort(port int) bool {
	return port >= 1 && port <= s.portCapacity
}

// AvailablePorts computes the free port numbers given the currently
// occupied ones.
func (s *Splitter) AvailablePorts(occupied []int) []int {
	taken := make(map[int]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}
	free := make([]int, 0, s.portCapacity)
	for p := 1; p <= s.portCapacity; p++ {
		if _, ok := taken[p]; !ok {
			free = append(free, p)
		}
	}
	return free
}
