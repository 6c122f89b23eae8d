package customer

// Status follows the subscriber lifecycle. Activation only happens through
// a completed deployment task, and reactivation re-enters at Pending.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

var validStatuses = map[Status]struct{}{
	StatusPending:  {},
	StatusActive:   {},
	StatusInactive: {},
}

var statusTransitions = map[Status][]Status{
	StatusPending:  {StatusActive, StatusInactive},
	StatusActive:   {StatusInactive},
	StatusInactive: {StatusPending},
}

func (s Status) IsValid() bool {
	_, ok := validStatuses[s]
	return ok
}

func (s Status) String() string {
	return string(s)
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// HoldsPort reports whether a customer in this status keeps its splitter
// port occupied.
func (s Status) HoldsPort() bool {
	return s == StatusPending || s == StatusActive
}
