// Package biztime centralizes time handling. All persisted timestamps are
// UTC so that mysql and sqlite deployments agree on ordering.
package biztime

import "time"

func Now() time.Time {
	return time.Now().UTC()
}

// ToMillis converts a time to Unix milliseconds for storage.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts Unix milliseconds back into a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FromMillisPtr converts an optional millisecond timestamp.
func FromMillisPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := FromMillis(*ms)
	return &t
}

// ToMillisPtr converts an optional time into milliseconds.
func ToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
