package topology

import "context"

type HeadendRepository interface {
	Create(ctx context.Context, h *Headend) error
	FindByID(ctx context.Context, id uint) (*Headend, error)
	List(ctx context.Context) ([]*Headend, error)
}

type FDHRepository interface {
	Create(ctx context.Context, f *FDH) error
	FindByID(ctx context.Context, id uint) (*FDH, error)
	FindByHeadendID(ctx context.Context, headendID uint) ([]*FDH, error)
	List(ctx context.Context) ([]*FDH, error)
}

type SplitterRepository interface {
	Create(ctx context.Context, s *Splitter) error
	FindByID(ctx context.Context, id uint) (*Splitter, error)
	FindByFDHID(ctx context.Context, fdhID uint) ([]*Splitter, error)
	List(ctx context.Context) ([]*Splitter, error)
}
