package deployment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibernet/internal/shared/errors"
)

func TestTaskStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusScheduled, StatusInProgress, true},
		{StatusScheduled, StatusFailed, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusFailed, true},
		{StatusInProgress, StatusScheduled, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusFailed, StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCompleteRequiresMinimumNotes(t *testing.T) {
	task, err := NewTask(1, nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, task.Start())

	// 19 characters is one short of the minimum.
	require.NoError(t, task.AddNotes(strings.Repeat("x", 19)))
	err = task.Complete()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotesRequired))
	assert.Equal(t, StatusInProgress, task.Status())

	require.NoError(t, task.AddNotes("x"))
	require.NoError(t, task.Complete())
	assert.Equal(t, StatusCompleted, task.Status())
}

func TestNotesLengthCountsTextNotTimestamps(t *testing.T) {
	task, err := NewTask(1, nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, task.AddNotes(strings.Repeat("a", 19)))

	// The rendered log carries a timestamp marker but only the note text
	// counts toward the completion minimum.
	assert.Greater(t, len(task.NotesLog()), 19)
	assert.Equal(t, 19, task.NotesTextLength())
}

func TestAddNotesOnTerminalTask(t *testing.T) {
	task, err := NewTask(1, nil, nil, "initial survey done at premises")
	require.NoError(t, err)
	require.NoError(t, task.Start())
	require.NoError(t, task.Complete())

	err = task.AddNotes("one more thing")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeTaskTerminal))
}

func TestFailedTaskIsTerminal(t *testing.T) {
	task, err := NewTask(2, nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, task.Fail())

	assert.True(t, errors.IsType(task.Start(), errors.ErrorTypeTaskTerminal))
	assert.True(t, errors.IsType(task.Complete(), errors.ErrorTypeTaskTerminal))
}

func TestNotesLogRoundTrip(t *testing.T) {
	task, err := NewTask(3, nil, nil, "arrived on site")
	require.NoError(t, err)
	require.NoError(t, task.AddNotes("spliced drop cable"))

	rebuilt := ReconstructTask(3, 3, nil, StatusScheduled, nil, task.NotesLog(), task.CreatedAt(), task.UpdatedAt())
	require.Len(t, rebuilt.Notes(), 2)
	assert.Equal(t, "arrived on site", rebuilt.Notes()[0].Text)
	assert.Equal(t, "spliced drop cable", rebuilt.Notes()[1].Text)
	assert.Equal(t, task.NotesTextLength(), rebuilt.NotesTextLength())
}

func TestIsOverdue(t *testing.T) {
	past := time.Now().UTC().Add(-48 * time.Hour)
	future := time.Now().UTC().Add(48 * time.Hour)

	overdue, err := NewTask(4, nil, &past, "")
	require.NoError(t, err)
	assert.True(t, overdue.IsOverdue())

	upcoming, err := NewTask(5, nil, &future, "")
	require.NoError(t, err)
	assert.False(t, upcoming.IsOverdue())

	started, err := NewTask(6, nil, &past, "")
	require.NoError(t, err)
	require.NoError(t, started.Start())
	assert.False(t, started.IsOverdue())
}
