package asset

// Type classifies a piece of network equipment.
type Type string

const (
	TypeONT       Type = "ONT"
	TypeRouter    Type = "Router"
	TypeSplitter  Type = "Splitter"
	TypeFDH       Type = "FDH"
	TypeSwitch    Type = "Switch"
	TypeCPE       Type = "CPE"
	TypeFiberRoll Type = "FiberRoll"
)

var validTypes = map[Type]struct{}{
	TypeONT:       {},
	TypeRouter:    {},
	TypeSplitter:  {},
	TypeFDH:       {},
	TypeSwitch:    {},
	TypeCPE:       {},
	TypeFiberRoll: {},
}

func (t Type) IsValid() bool {
	_, ok := validTypes[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// IsCustomerPremises reports whether equipment of this type is installed
// at the customer site rather than in the distribution network.
func (t Type) IsCustomerPremises() bool {
	return t == TypeONT || t == TypeRouter || t == TypeCPE
}

func AllTypes() []Type {
	return []Type{TypeONT, TypeRouter, TypeSplitter, TypeFDH, TypeSwitch, TypeCPE, TypeFiberRoll}
}
