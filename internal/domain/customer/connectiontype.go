package customer

type ConnectionType string

const (
	ConnectionWired    ConnectionType = "Wired"
	ConnectionWireless ConnectionType = "Wireless"
)

func (c ConnectionType) IsValid() bool {
	return c == ConnectionWired || c == ConnectionWireless
}

func (c ConnectionType) String() string {
	return string(c)
}
