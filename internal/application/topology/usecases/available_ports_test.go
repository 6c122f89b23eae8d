package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type stubSplitterRepo struct {
	findByIDFunc func(ctx context.Context, id uint) (*topology.Splitter, error)
}

func (s *stubSplitterRepo) Create(ctx context.Context, sp *topology.Splitter) error { return nil }
func (s *stubSplitterRepo) FindByID(ctx context.Context, id uint) (*topology.Splitter, error) {
	return s.findByIDFunc(ctx, id)
}
func (s *stubSplitterRepo) FindByFDHID(ctx context.Context, fdhID uint) ([]*topology.Splitter, error) {
	return nil, nil
}
func (s *stubSplitterRepo) List(ctx context.Context) ([]*topology.Splitter, error) { return nil, nil }

type stubCustomerPorts struct {
	customer.Repository
	occupiedFunc func(ctx context.Context, splitterID uint) ([]int, error)
}

func (s *stubCustomerPorts) FindOccupiedPorts(ctx context.Context, splitterID uint) ([]int, error) {
	return s.occupiedFunc(ctx, splitterID)
}

type quietLogger struct{}

func (quietLogger) Debug(msg string, args ...any)                   {}
func (quietLogger) Info(msg string, args ...any)                    {}
func (quietLogger) Warn(msg string, args ...any)                    {}
func (quietLogger) Error(msg string, args ...any)                   {}
func (q quietLogger) With(args ...any) logger.Interface             { return q }
func (q quietLogger) Named(name string) logger.Interface            { return q }
func (quietLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (quietLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (quietLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (quietLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestAvailablePorts(t *testing.T) {
	splitter, err := topology.NewSplitter("1x8 PLC", "cabinet 5", 8, 1)
	require.NoError(t, err)
	splitter.SetID(5)

	splitterRepo := &stubSplitterRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*topology.Splitter, error) {
			return splitter, nil
		},
	}
	customerRepo := &stubCustomerPorts{
		occupiedFunc: func(ctx context.Context, splitterID uint) ([]int, error) {
			return []int{2, 5}, nil
		},
	}

	uc := NewAvailablePortsUseCase(splitterRepo, customerRepo, quietLogger{})
	result, err := uc.Execute(context.Background(), AvailablePortsCommand{SplitterID: 5})
	require.NoError(t, err)

	assert.Equal(t, 8, result.PortCapacity)
	assert.Equal(t, 2, result.UsedPorts)
	assert.Equal(t, []int{1, 3, 4, 6, 7, 8}, result.AvailablePorts)
}

func TestAvailablePortsSplitterNotFound(t *testing.T) {
	splitterRepo := &stubSplitterRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*topology.Splitter, error) {
			return nil, errors.NewNotFoundError("splitter")
		},
	}

	uc := NewAvailablePortsUseCase(splitterRepo, &stubCustomerPorts{}, quietLogger{})
	_, err := uc.Execute(context.Background(), AvailablePortsCommand{SplitterID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
