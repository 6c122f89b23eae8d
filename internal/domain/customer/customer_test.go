package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibernet/internal/shared/errors"
)

func TestNewCustomerValidation(t *testing.T) {
	tests := []struct {
		name         string
		custName     string
		address      string
		neighborhood string
		connType     ConnectionType
		wantErr      bool
	}{
		{name: "valid", custName: "Ana Reyes", address: "12 Oak St", neighborhood: "Northside", connType: ConnectionWired, wantErr: false},
		{name: "missing name", custName: " ", address: "12 Oak St", neighborhood: "Northside", connType: ConnectionWired, wantErr: true},
		{name: "missing address", custName: "Ana Reyes", address: "", neighborhood: "Northside", connType: ConnectionWired, wantErr: true},
		{name: "missing neighborhood", custName: "Ana Reyes", address: "12 Oak St", neighborhood: "", connType: ConnectionWired, wantErr: true},
		{name: "bad connection type", custName: "Ana Reyes", address: "12 Oak St", neighborhood: "Northside", connType: ConnectionType("Carrier Pigeon"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCustomer(tt.custName, tt.address, tt.neighborhood, "Fiber 300", tt.connType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusPending, c.Status())
			assert.Nil(t, c.SplitterID())
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusInactive, true},
		{StatusActive, StatusInactive, true},
		{StatusActive, StatusPending, false},
		{StatusInactive, StatusPending, true},
		{StatusInactive, StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReactivateYieldsPending(t *testing.T) {
	c, err := NewCustomer("Ana Reyes", "12 Oak St", "Northside", "Fiber 300", ConnectionWired)
	require.NoError(t, err)

	require.NoError(t, c.Activate())
	require.NoError(t, c.Deactivate())
	require.NoError(t, c.Reactivate())

	// Reactivation never restores Active directly.
	assert.Equal(t, StatusPending, c.Status())
}

func TestInactiveCannotActivateDirectly(t *testing.T) {
	c, err := NewCustomer("Ben Cho", "3 Elm Ave", "Harbor", "Fiber 100", ConnectionWireless)
	require.NoError(t, err)
	require.NoError(t, c.Deactivate())

	err = c.Activate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransition(err))
}

func TestBindAndReleaseNetwork(t *testing.T) {
	c, err := NewCustomer("Ana Reyes", "12 Oak St", "Northside", "Fiber 300", ConnectionWired)
	require.NoError(t, err)

	fiber := 120.5
	c.BindNetwork(5, 3, 10, 11, &fiber)
	require.NotNil(t, c.SplitterID())
	assert.Equal(t, uint(5), *c.SplitterID())
	assert.Equal(t, 3, *c.AssignedPort())
	assert.Equal(t, uint(10), *c.ONTAssetID())
	assert.Equal(t, uint(11), *c.RouterAssetID())

	c.ReleaseNetwork()
	assert.Nil(t, c.SplitterID())
	assert.Nil(t, c.AssignedPort())
	assert.Nil(t, c.ONTAssetID())
	assert.Nil(t, c.RouterAssetID())
}

func TestReplaceAsset(t *testing.T) {
	c, err := NewCustomer("Ana Reyes", "12 Oak St", "Northside", "Fiber 300", ConnectionWired)
	require.NoError(t, err)
	c.BindNetwork(5, 3, 10, 11, nil)

	c.ReplaceAsset(10, 25)
	assert.Equal(t, uint(25), *c.ONTAssetID())
	assert.Equal(t, uint(11), *c.RouterAssetID())
}

func TestHoldsPort(t *testing.T) {
	assert.True(t, StatusPending.HoldsPort())
	assert.True(t, StatusActive.HoldsPort())
	assert.False(t, StatusInactive.HoldsPort())
}

func TestUpdateDetails(t *testing.T) {
	c, err := NewCustomer("Ana Reyes", "12 Oak St", "Northside", "Fiber 300", ConnectionWired)
	require.NoError(t, err)
	c.BindNetwork(5, 3, 10, 11, nil)

	require.NoError(t, c.UpdateDetails("Ana Reyes-Cruz", "44 Pine Ave", "Northside", "Fiber 600", ConnectionWired))
	assert.Equal(t, "Ana Reyes-Cruz", c.Name())
	assert.Equal(t, "44 Pine Ave", c.Address())
	assert.Equal(t, "Fiber 600", c.Plan())
	// The network binding survives detail edits.
	require.NotNil(t, c.AssignedPort())
	assert.Equal(t, 3, *c.AssignedPort())

	assert.Error(t, c.UpdateDetails("", "44 Pine Ave", "Northside", "Fiber 600", ConnectionWired))
	assert.Error(t, c.UpdateDetails("Ana", "44 Pine Ave", "Northside", "Fiber 600", ConnectionType("Carrier Pigeon")))
	// Failed edits leave the record untouched.
	assert.Equal(t, "Ana Reyes-Cruz", c.Name())
}
