// Package usecases powers the in-app helper panel: canned guidance per
// role plus quick actions computed from live inventory state. Everything
// here is read-only and deterministic for a given database state.
package usecases

import (
	"context"
	"fmt"

	"fibernet/internal/domain/asset"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

// lowStockThreshold triggers a restock suggestion for customer premises
// equipment types.
const lowStockThreshold = 5

type Suggestion struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type RoleSuggestionsCommand struct {
	Role string
}

type RoleSuggestionsResult struct {
	Role        string       `json:"role"`
	Suggestions []Suggestion `json:"suggestions"`
}

// RoleSuggestionsUseCase returns the curated guidance list for a role.
type RoleSuggestionsUseCase struct {
	logger logger.Interface
}

func NewRoleSuggestionsUseCase(log logger.Interface) *RoleSuggestionsUseCase {
	return &RoleSuggestionsUseCase{logger: log}
}

func (uc *RoleSuggestionsUseCase) Execute(ctx context.Context, cmd RoleSuggestionsCommand) (*RoleSuggestionsResult, error) {
	role, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role: " + cmd.Role)
	}
	return &RoleSuggestionsResult{Role: role.String(), Suggestions: roleSuggestions[role]}, nil
}

var roleSuggestions = map[authorization.UserRole][]Suggestion{
	authorization.RoleAdmin: {
		{Title: "Review the audit trail", Detail: "Check recent account and inventory changes under Audit."},
		{Title: "Manage accounts", Detail: "Create operator accounts and link technician users from Users."},
		{Title: "Watch weekly activity", Detail: "The admin dashboard shows per-user action counts for the last 7 days."},
	},
	authorization.RolePlanner: {
		{Title: "Check FDH utilization", Detail: "Splitters near capacity appear on the planner dashboard."},
		{Title: "Register incoming stock", Detail: "New equipment must be registered before it can be assigned."},
		{Title: "Retire faulty units", Detail: "Faulty equipment that cannot be repaired should be retired with a reason."},
	},
	authorization.RoleTechnician: {
		{Title: "Start your next task", Detail: "Move a scheduled task to InProgress when you arrive on site."},
		{Title: "Log completion notes", Detail: "Completion requires detailed notes about the work performed."},
		{Title: "Report faulty equipment", Detail: "Mark equipment faulty so planners can schedule a replacement."},
	},
	authorization.RoleSupportAgent: {
		{Title: "Follow up on pending installs", Detail: "Pending customers with no open task need a deployment scheduled."},
		{Title: "Handle deactivations", Detail: "Deactivating a customer reclaims their equipment and frees their port."},
		{Title: "Reactivate returning customers", Detail: "Reactivated customers go back to Pending and need a new install visit."},
	},
}

type QuickAction struct {
	Label  string `json:"label"`
	Reason string `json:"reason"`
	Link   string `json:"link"`
}

type QuickActionsCommand struct {
	Role string
}

type QuickActionsResult struct {
	Role    string        `json:"role"`
	Actions []QuickAction `json:"actions"`
}

// QuickActionsUseCase derives actionable shortcuts from current state:
// low equipment stock, customers waiting on installs, overdue tasks.
type QuickActionsUseCase struct {
	assetRepo    asset.Repository
	customerRepo customer.Repository
	taskRepo     deployment.TaskRepository
	logger       logger.Interface
}

func NewQuickActionsUseCase(
	assetRepo asset.Repository,
	customerRepo customer.Repository,
	taskRepo deployment.TaskRepository,
	log logger.Interface,
) *QuickActionsUseCase {
	return &QuickActionsUseCase{
		assetRepo:    assetRepo,
		customerRepo: customerRepo,
		taskRepo:     taskRepo,
		logger:       log,
	}
}

func (uc *QuickActionsUseCase) Execute(ctx context.Context, cmd QuickActionsCommand) (*QuickActionsResult, error) {
	role, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role: " + cmd.Role)
	}

	actions := []QuickAction{}

	if role == authorization.RoleAdmin || role == authorization.RolePlanner {
		stock, err := uc.lowStockActions(ctx)
		if err != nil {
			return nil, err
		}
		actions = append(actions, stock...)
	}

	if role == authorization.RoleAdmin || role == authorization.RoleSupportAgent {
		pending, err := uc.pendingCustomerAction(ctx)
		if err != nil {
			return nil, err
		}
		actions = append(actions, pending...)
	}

	if role == authorization.RoleAdmin || role == authorization.RoleTechnician || role == authorization.RolePlanner {
		overdue, err := uc.overdueTaskAction(ctx)
		if err != nil {
			return nil, err
		}
		actions = append(actions, overdue...)
	}

	return &QuickActionsResult{Role: role.String(), Actions: actions}, nil
}

func (uc *QuickActionsUseCase) lowStockActions(ctx context.Context) ([]QuickAction, error) {
	counts, err := uc.assetRepo.CountByTypeAndStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count stock", err)
	}

	var actions []QuickAction
	for _, t := range asset.AllTypes() {
		if !t.IsCustomerPremises() {
			continue
		}
		available := counts[t][asset.StatusAvailable]
		if available < lowStockThreshold {
			actions = append(actions, QuickAction{
				Label:  fmt.Sprintf("Restock %s units", t.String()),
				Reason: fmt.Sprintf("only %d available", available),
				Link:   "/assets?type=" + t.String() + "&status=Available",
			})
		}
	}
	return actions, nil
}

func (uc *QuickActionsUseCase) pendingCustomerAction(ctx context.Context) ([]QuickAction, error) {
	counts, err := uc.customerRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count customers", err)
	}
	if pending := counts[customer.StatusPending]; pending > 0 {
		return []QuickAction{{
			Label:  "Schedule pending installs",
			Reason: fmt.Sprintf("%d customers waiting for activation", pending),
			Link:   "/customers?status=Pending",
		}}, nil
	}
	return nil, nil
}

func (uc *QuickActionsUseCase) overdueTaskAction(ctx context.Context) ([]QuickAction, error) {
	overdue, err := uc.taskRepo.FindOverdue(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to load overdue tasks", err)
	}
	if len(overdue) > 0 {
		return []QuickAction{{
			Label:  "Clear overdue tasks",
			Reason: fmt.Sprintf("%d tasks past their scheduled date", len(overdue)),
			Link:   "/deployment/tasks?overdue=true",
		}}, nil
	}
	return nil, nil
}
