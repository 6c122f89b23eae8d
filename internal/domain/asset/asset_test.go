package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibernet/internal/shared/errors"
)

func TestNewAsset(t *testing.T) {
	tests := []struct {
		name      string
		assetType Type
		model     string
		serial    string
		wantErr   bool
	}{
		{name: "valid ont", assetType: TypeONT, model: "Nokia G-140W", serial: "ONT-0001", wantErr: false},
		{name: "invalid type", assetType: Type("Drone"), model: "X", serial: "S1", wantErr: true},
		{name: "missing model", assetType: TypeRouter, model: "  ", serial: "S2", wantErr: true},
		{name: "missing serial", assetType: TypeRouter, model: "TP-Link", serial: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAsset(tt.assetType, tt.model, tt.serial, "warehouse A")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusAvailable, a.Status())
			assert.Nil(t, a.AssignedCustomerID())
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusAvailable, StatusAssigned, true},
		{StatusAvailable, StatusFaulty, true},
		{StatusAvailable, StatusRetired, true},
		{StatusAssigned, StatusAvailable, true},
		{StatusAssigned, StatusFaulty, true},
		{StatusAssigned, StatusRetired, false},
		{StatusFaulty, StatusAvailable, true},
		{StatusFaulty, StatusRetired, true},
		{StatusFaulty, StatusAssigned, false},
		{StatusRetired, StatusAvailable, false},
		{StatusRetired, StatusAssigned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAssignAndRelease(t *testing.T) {
	a, err := NewAsset(TypeONT, "Nokia G-140W", "ONT-0002", "")
	require.NoError(t, err)

	require.NoError(t, a.Assign(42))
	assert.Equal(t, StatusAssigned, a.Status())
	require.NotNil(t, a.AssignedCustomerID())
	assert.Equal(t, uint(42), *a.AssignedCustomerID())
	assert.NotNil(t, a.AssignedAt())

	// Assigning again without releasing is an invalid transition.
	err = a.Assign(43)
	assert.True(t, errors.IsInvalidTransition(err))

	require.NoError(t, a.Release())
	assert.Equal(t, StatusAvailable, a.Status())
	assert.Nil(t, a.AssignedCustomerID())
}

func TestRetireAssignedAssetFails(t *testing.T) {
	a, err := NewAsset(TypeRouter, "TP-Link AX23", "RTR-0001", "")
	require.NoError(t, err)
	require.NoError(t, a.Assign(7))

	err = a.Retire()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransition(err))
	assert.Equal(t, StatusAssigned, a.Status())
}

func TestRetireIsTerminal(t *testing.T) {
	a, err := NewAsset(TypeSwitch, "Cisco C1000", "SW-0001", "")
	require.NoError(t, err)
	require.NoError(t, a.Retire())

	assert.Error(t, a.Assign(1))
	assert.Error(t, a.Release())
	assert.Error(t, a.MarkFaulty())
	assert.Error(t, a.Retire())
}

func TestFaultyRepairCycle(t *testing.T) {
	a, err := NewAsset(TypeONT, "Huawei HG8010", "ONT-0003", "")
	require.NoError(t, err)
	require.NoError(t, a.Assign(9))
	require.NoError(t, a.MarkFaulty())
	assert.Nil(t, a.AssignedCustomerID())

	require.NoError(t, a.Repair())
	assert.Equal(t, StatusAvailable, a.Status())
}

func TestAssignmentOpenClose(t *testing.T) {
	entry := NewAssignment(10, 1)
	assert.True(t, entry.IsOpen())

	require.NoError(t, entry.Close())
	assert.False(t, entry.IsOpen())
	assert.NotNil(t, entry.UnassignedOn())

	// Closing twice is a conflict, not a silent success.
	assert.Error(t, entry.Close())
}

func TestMarkFaultyFromStock(t *testing.T) {
	// Units found dead on arrival go straight from Available to Faulty
	// without ever being assigned.
	a, err := NewAsset(TypeONT, "Huawei HG8010", "ONT-0004", "warehouse B")
	require.NoError(t, err)

	require.NoError(t, a.MarkFaulty())
	assert.Equal(t, StatusFaulty, a.Status())
	assert.Nil(t, a.AssignedCustomerID())
}

func TestUpdateDetails(t *testing.T) {
	a, err := NewAsset(TypeONT, "Nokia G-140W", "ONT-0005", "warehouse A")
	require.NoError(t, err)

	require.NoError(t, a.UpdateDetails("Nokia G-240W", "van 3"))
	assert.Equal(t, "Nokia G-240W", a.Model())
	assert.Equal(t, "van 3", a.Location())
	// Serial and status are not touched by detail edits.
	assert.Equal(t, "ONT-0005", a.SerialNumber())
	assert.Equal(t, StatusAvailable, a.Status())

	assert.Error(t, a.UpdateDetails("  ", "van 3"))
}

func TestUpdateDetailsOnRetiredAsset(t *testing.T) {
	a, err := NewAsset(TypeSwitch, "Cisco C1000", "SW-0002", "")
	require.NoError(t, err)
	require.NoError(t, a.Retire())

	err = a.UpdateDetails("Cisco C1200", "")
	require.Error(t, err)
	assert.Equal(t, "Cisco C1000", a.Model())
}
