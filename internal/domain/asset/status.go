package asset

// Status tracks where an asset sits in its lifecycle.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusAssigned  Status = "Assigned"
	StatusFaulty    Status = "Faulty"
	StatusRetired   Status = "Retired"
)

var validStatuses = map[Status]struct{}{
	StatusAvailable: {},
	StatusAssigned:  {},
	StatusFaulty:    {},
	StatusRetired:   {},
}

// statusTransitions encodes the lifecycle state machine. An assigned asset
// must be released before it can be retired, and retirement is final.
// Available stock can go straight to Faulty for units found dead on
// arrival.
var statusTransitions = map[Status][]Status{
	StatusAvailable: {StatusAssigned, StatusFaulty, StatusRetired},
	StatusAssigned:  {StatusAvailable, StatusFaulty},
	StatusFaulty:    {StatusAvailable, StatusRetired},
	StatusRetired:   {},
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

func (s Status) IsTerminal() bool {
	return s == StatusRetired
}

func AllStatuses() []Status {
	return []Status{StatusAvailable, StatusAssigned, StatusFaulty, StatusRetired}
}
