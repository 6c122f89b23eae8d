package audit

// Action categorizes what an audit entry records.
type Action string

const (
	ActionLogin      Action = "LOGIN"
	ActionLogout     Action = "LOGOUT"
	ActionCreate     Action = "CREATE"
	ActionUpdate     Action = "UPDATE"
	ActionDelete     Action = "DELETE"
	ActionAssign     Action = "ASSIGN"
	ActionReassign   Action = "REASSIGN"
	ActionReclaim    Action = "RECLAIM"
	ActionReplace    Action = "REPLACE"
	ActionRetire     Action = "RETIRE"
	ActionDeactivate Action = "DEACTIVATE"
	ActionActivate   Action = "ACTIVATE"
	ActionComplete   Action = "COMPLETE"
)

var validActions = map[Action]struct{}{
	ActionLogin:      {},
	ActionLogout:     {},
	ActionCreate:     {},
	ActionUpdate:     {},
	ActionDelete:     {},
	ActionAssign:     {},
	ActionReassign:   {},
	ActionReclaim:    {},
	ActionReplace:    {},
	ActionRetire:     {},
	ActionDeactivate: {},
	ActionActivate:   {},
	ActionComplete:   {},
}

func (a Action) IsValid() bool {
	_, ok := validActions[a]
	return ok
}

func (a Action) String() string {
	return string(a)
}
