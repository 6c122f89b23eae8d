// Package deployment models field installation work: technicians and the
// tasks that take a pending customer live.
package deployment

import (
	"fmt"
	"strings"
	"time"

	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/errors"
)

// MinCompletionNotesLength is the cumulative note text a task must carry
// before it can be completed. Timestamp markers do not count.
const MinCompletionNotesLength = 20

// NoteEntry is one appended line in a task's notes log.
type NoteEntry struct {
	At   time.Time
	Text string
}

type Task struct {
	id            uint
	customerID    uint
	technicianID  *uint
	status        Status
	scheduledDate *time.Time
	notes         []NoteEntry
	createdAt     time.Time
	updatedAt     time.Time
}

func NewTask(customerID uint, technicianID *uint, scheduledDate *time.Time, notes string) (*Task, error) {
	if customerID == 0 {
		return nil, errors.NewValidationError("task requires a customer")
	}
	now := biztime.Now()
	t := &Task{
		customerID:    customerID,
		technicianID:  technicianID,
		status:        StatusScheduled,
		scheduledDate: scheduledDate,
		createdAt:     now,
		updatedAt:     now,
	}
	if text := sanitizeNote(notes); text != "" {
		t.notes = append(t.notes, NoteEntry{At: now, Text: text})
	}
	return t, nil
}

func ReconstructTask(
	id uint,
	customerID uint,
	technicianID *uint,
	status Status,
	scheduledDate *time.Time,
	notesLog string,
	createdAt time.Time,
	updatedAt time.Time,
) *Task {
	return &Task{
		id:            id,
		customerID:    customerID,
		technicianID:  technicianID,
		status:        status,
		scheduledDate: scheduledDate,
		notes:         ParseNotesLog(notesLog),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (t *Task) ID() uint                  { return t.id }
func (t *Task) CustomerID() uint          { return t.customerID }
func (t *Task) TechnicianID() *uint       { return t.technicianID }
func (t *Task) Status() Status            { return t.status }
func (t *Task) ScheduledDate() *time.Time { return t.scheduledDate }
func (t *Task) CreatedAt() time.Time      { return t.createdAt }
func (t *Task) UpdatedAt() time.Time      { return t.updatedAt }

func (t *Task) SetID(id uint) {
	t.id = id
}

func (t *Task) Notes() []NoteEntry {
	return t.notes
}

// NotesLog renders the notes as the persisted text form, one timestamped
// line per entry.
func (t *Task) NotesLog() string {
	lines := make([]string, 0, len(t.notes))
	for _, n := range t.notes {
		lines = append(lines, "["+n.At.Format(time.RFC3339)+"] "+n.Text)
	}
	return strings.Join(lines, "\n")
}

// NotesTextLength is the cumulative length of note text, which gates
// completion.
func (t *Task) NotesTextLength() int {
	total := 0
	for _, n := range t.notes {
		total += len(n.Text)
	}
	return total
}

func (t *Task) AssignTechnician(technicianID uint) error {
	if t.status.IsTerminal() {
		return errors.NewTaskTerminalError(t.status.String())
	}
	t.technicianID = &technicianID
	t.updatedAt = biztime.Now()
	return nil
}

// AddNotes appends a timestamped entry to the notes log.
func (t *Task) AddNotes(text string) error {
	if t.status.IsTerminal() {
		return errors.NewTaskTerminalError(t.status.String())
	}
	text = sanitizeNote(text)
	if text == "" {
		return errors.NewValidationError("notes text is required")
	}
	now := biztime.Now()
	t.notes = append(t.notes, NoteEntry{At: now, Text: text})
	t.updatedAt = now
	return nil
}

func (t *Task) Start() error {
	if t.status.IsTerminal() {
		return errors.NewTaskTerminalError(t.status.String())
	}
	if !t.status.CanTransitionTo(StatusInProgress) {
		return errors.NewInvalidTransitionError(t.status.String(), StatusInProgress.String())
	}
	t.status = StatusInProgress
	t.updatedAt = biztime.Now()
	return nil
}

// Complete closes the task. The notes log must document enough of what
// was installed.
func (t *Task) Complete() error {
	if t.status.IsTerminal() {
		return errors.NewTaskTerminalError(t.status.String())
	}
	if !t.status.CanTransitionTo(StatusCompleted) {
		return errors.NewInvalidTransitionError(t.status.String(), StatusCompleted.String())
	}
	if t.NotesTextLength() < MinCompletionNotesLength {
		return errors.NewNotesRequiredError(
			fmt.Sprintf("completion requires notes of at least %d characters", MinCompletionNotesLength))
	}
	t.status = StatusCompleted
	t.updatedAt = biztime.Now()
	return nil
}

func (t *Task) Fail() error {
	if t.status.IsTerminal() {
		return errors.NewTaskTerminalError(t.status.String())
	}
	if !t.status.CanTransitionTo(StatusFailed) {
		return errors.NewInvalidTransitionError(t.status.String(), StatusFailed.String())
	}
	t.status = StatusFailed
	t.updatedAt = biztime.Now()
	return nil
}

// IsOverdue reports whether a scheduled task slipped past its date
// without being started.
func (t *Task) IsOverdue() bool {
	return t.status == StatusScheduled &&
		t.scheduledDate != nil &&
		t.scheduledDate.Before(biztime.Now())
}

// ParseNotesLog parses the persisted text form back into entries. Lines
// that do not carry a timestamp marker are kept with a zero time.
func ParseNotesLog(log string) []NoteEntry {
	if log == "" {
		return nil
	}
	lines := strings.Split(log, "\n")
	entries := make([]NoteEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if end := strings.Index(line, "] "); end > 0 {
				if at, err := time.Parse(time.RFC3339, line[1:end]); err == nil {
					entries = append(entries, NoteEntry{At: at, Text: line[end+2:]})
					continue
				}
			}
		}
		entries = append(entries, NoteEntry{Text: line})
	}
	return entries
}

// sanitizeNote trims and flattens note text onto a single line so the
// persisted log stays parseable.
func sanitizeNote(text string) string {
	text = strings.TrimSpace(text)
	return strings.Join(strings.Fields(text), " ")
}
