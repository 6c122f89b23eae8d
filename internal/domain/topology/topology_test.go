package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitterAvailablePorts(t *testing.T) {
	s, err := NewSplitter("1x8 PLC", "cabinet 5", 8, 1)
	require.NoError(t, err)

	tests := []struct {
		name     string
		occupied []int
		want     []int
	}{
		{name: "empty splitter", occupied: nil, want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "some taken", occupied: []int{1, 3, 8}, want: []int{2, 4, 5, 6, 7}},
		{name: "full", occupied: []int{1, 2, 3, 4, 5, 6, 7, 8}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.AvailablePorts(tt.occupied))
		})
	}
}

func TestSplitterValidPort(t *testing.T) {
	s, err := NewSplitter("1x16 PLC", "cabinet 2", 16, 1)
	require.NoError(t, err)

	assert.True(t, s.ValidPort(1))
	assert.True(t, s.ValidPort(16))
	assert.False(t, s.ValidPort(0))
	assert.False(t, s.ValidPort(17))
	assert.False(t, s.ValidPort(-3))
}

func TestConstructorValidation(t *testing.T) {
	_, err := NewSplitter("", "loc", 8, 1)
	assert.Error(t, err)

	_, err = NewSplitter("1x8", "loc", 0, 1)
	assert.Error(t, err)

	_, err = NewSplitter("1x8", "loc", 8, 0)
	assert.Error(t, err)

	_, err = NewFDH("FDH-North", "loc", "north", 0, 1)
	assert.Error(t, err)

	_, err = NewHeadend("", "loc", "north")
	assert.Error(t, err)
}
