package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/errors"
)

func pendingCustomer(id uint) *customer.Customer {
	c, _ := customer.NewCustomer("Ana Reyes", "12 Oak St", "Northside", "Fiber 300", customer.ConnectionWired)
	c.SetID(id)
	return c
}

func inProgressTask(id, customerID uint, technicianID *uint) *deployment.Task {
	t, _ := deployment.NewTask(customerID, technicianID, nil, "")
	t.SetID(id)
	_ = t.Start()
	return t
}

func linkedTechnician(id, userID uint) *deployment.Technician {
	tech, _ := deployment.NewTechnician("Sam Ortega", "555-0101", "north")
	tech.SetID(id)
	tech.LinkUser(userID)
	return tech
}

type transitionFixture struct {
	taskRepo       *mockTaskRepo
	technicianRepo *mockTechnicianRepo
	customerRepo   *mockCustomerRepo
	recorder       *mockRecorder
	txManager      *mockTxManager
	uc             *TransitionTaskUseCase
}

func newTransitionFixture(task *deployment.Task, cust *customer.Customer) *transitionFixture {
	f := &transitionFixture{
		taskRepo:       &mockTaskRepo{},
		technicianRepo: &mockTechnicianRepo{},
		customerRepo:   &mockCustomerRepo{},
		recorder:       &mockRecorder{},
		txManager:      &mockTxManager{},
	}
	f.taskRepo.findByIDFunc = func(ctx context.Context, id uint) (*deployment.Task, error) { return task, nil }
	f.taskRepo.updateFunc = func(ctx context.Context, t *deployment.Task) error { return nil }
	f.customerRepo.findByIDFunc = func(ctx context.Context, id uint) (*customer.Customer, error) { return cust, nil }
	f.customerRepo.updateFunc = func(ctx context.Context, c *customer.Customer) error { return nil }
	f.uc = NewTransitionTaskUseCase(f.taskRepo, f.technicianRepo, f.customerRepo, f.recorder, f.txManager, noopLogger{})
	return f
}

func TestCompleteWithShortNotesFails(t *testing.T) {
	techID := uint(3)
	task := inProgressTask(1, 1, &techID)
	cust := pendingCustomer(1)
	f := newTransitionFixture(task, cust)

	_, err := f.uc.Execute(context.Background(), TransitionTaskCommand{
		ActorID:   9,
		ActorRole: "Admin",
		TaskID:    1,
		NewStatus: "Completed",
		Notes:     strings.Repeat("x", 19),
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotesRequired))
	assert.True(t, f.txManager.rolledBack)
	assert.Equal(t, customer.StatusPending, cust.Status())
}

func TestCompleteWithSufficientNotesActivatesCustomer(t *testing.T) {
	techID := uint(3)
	task := inProgressTask(1, 1, &techID)
	cust := pendingCustomer(1)
	f := newTransitionFixture(task, cust)

	result, err := f.uc.Execute(context.Background(), TransitionTaskCommand{
		ActorID:   9,
		ActorRole: "Admin",
		TaskID:    1,
		NewStatus: "Completed",
		Notes:     strings.Repeat("x", 20),
	})
	require.NoError(t, err)

	assert.Equal(t, deployment.StatusCompleted.String(), result.Task.Status)
	assert.Equal(t, customer.StatusActive.String(), result.CustomerStatus)
	assert.Equal(t, customer.StatusActive, cust.Status())
	require.Len(t, f.recorder.recorded, 1)
}

func TestCompleteCountsPreviouslyAppendedNotes(t *testing.T) {
	techID := uint(3)
	task := inProgressTask(1, 1, &techID)
	require.NoError(t, task.AddNotes("installed ont and verified signal levels"))
	cust := pendingCustomer(1)
	f := newTransitionFixture(task, cust)

	// No notes in the completing call; the earlier append satisfies the
	// minimum.
	result, err := f.uc.Execute(context.Background(), TransitionTaskCommand{
		ActorID:   9,
		ActorRole: "Admin",
		TaskID:    1,
		NewStatus: "Completed",
	})
	require.NoError(t, err)
	assert.Equal(t, deployment.StatusCompleted.String(), result.Task.Status)
}

func TestStartOnlyByAssignedTechnicianOrAdmin(t *testing.T) {
	techID := uint(3)

	tests := []struct {
		name      string
		actorID   uint
		actorRole string
		techForID func(userID uint) (*deployment.Technician, error)
		wantErr   bool
	}{
		{
			name:      "admin allowed",
			actorID:   99,
			actorRole: "Admin",
			wantErr:   false,
		},
		{
			name:      "assigned technician allowed",
			actorID:   7,
			actorRole: "Technician",
			techForID: func(userID uint) (*deployment.Technician, error) { return linkedTechnician(3, 7), nil },
			wantErr:   false,
		},
		{
			name:      "other technician forbidden",
			actorID:   8,
			actorRole: "Technician",
			techForID: func(userID uint) (*deployment.Technician, error) { return linkedTechnician(4, 8), nil },
			wantErr:   true,
		},
		{
			name:      "unlinked account forbidden",
			actorID:   8,
			actorRole: "Technician",
			techForID: func(userID uint) (*deployment.Technician, error) { return nil, errors.NewNotFoundError("technician") },
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, _ := deployment.NewTask(1, &techID, nil, "")
			task.SetID(1)
			f := newTransitionFixture(task, pendingCustomer(1))
			if tt.techForID != nil {
				f.technicianRepo.findByUserIDFunc = func(ctx context.Context, userID uint) (*deployment.Technician, error) {
					return tt.techForID(userID)
				}
			}

			_, err := f.uc.Execute(context.Background(), TransitionTaskCommand{
				ActorID:   tt.actorID,
				ActorRole: tt.actorRole,
				TaskID:    1,
				NewStatus: "InProgress",
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTransitionTerminalTask(t *testing.T) {
	techID := uint(3)
	task := inProgressTask(1, 1, &techID)
	require.NoError(t, task.AddNotes("installed ont and verified signal levels"))
	require.NoError(t, task.Complete())
	f := newTransitionFixture(task, pendingCustomer(1))

	_, err := f.uc.Execute(context.Background(), TransitionTaskCommand{
		ActorID:   9,
		ActorRole: "Admin",
		TaskID:    1,
		NewStatus: "Failed",
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeTaskTerminal))
}

func TestAddNotesOnTerminalTaskFails(t *testing.T) {
	techID := uint(3)
	task := inProgressTask(1, 1, &techID)
	require.NoError(t, task.AddNotes("installed ont and verified signal levels"))
	require.NoError(t, task.Complete())

	taskRepo := &mockTaskRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*deployment.Task, error) { return task, nil },
		updateFunc:   func(ctx context.Context, t *deployment.Task) error { return nil },
	}
	uc := NewAddTaskNotesUseCase(taskRepo, &mockRecorder{}, &mockTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), AddTaskNotesCommand{ActorID: 9, ActorRole: "Admin", TaskID: 1, Notes: "late addition"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeTaskTerminal))
}
