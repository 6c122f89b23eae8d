package usecases

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/shared/logger"
)

type stubAuditRepo struct {
	auditdomain.Repository

	entries []*auditdomain.Entry
	queries int
}

func (s *stubAuditRepo) Query(ctx context.Context, filter auditdomain.QueryFilter, page, pageSize int) ([]*auditdomain.Entry, int64, error) {
	s.queries++
	start := (page - 1) * pageSize
	if start >= len(s.entries) {
		return nil, int64(len(s.entries)), nil
	}
	end := start + pageSize
	if end > len(s.entries) {
		end = len(s.entries)
	}
	return s.entries[start:end], int64(len(s.entries)), nil
}

type stubDirectory struct {
	names map[uint]string
}

func (s *stubDirectory) UsernamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	return s.names, nil
}

type quietLogger struct{}

func (quietLogger) Debug(string, ...any) {}
func (quietLogger) Info(string, ...any) {}
func (quietLogger) Warn(string, ...any) {}
func (quietLogger) Error(string, ...any) {}
func (l quietLogger) With(...any) logger.Interface { return l }
func (l quietLogger) Named(string) logger.Interface { return l }
func (quietLogger) Debugw(string, ...interface{}) {}
func (quietLogger) Infow(string, ...interface{}) {}
func (quietLogger) Warnw(string, ...interface{}) {}
func (quietLogger) Errorw(string, ...interface{}) {}

func seedEntries(t *testing.T, count int) []*auditdomain.Entry {
	t.Helper()
	entries := make([]*auditdomain.Entry, 0, count)
	for i := 0; i < count; i++ {
		e := auditdomain.ReconstructEntry(
			uint(i+1),
			fmt.Sprintf("ref-%03d", i+1),
			7,
			"Planner",
			auditdomain.ActionCreate,
			"registered asset",
			time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(i)*time.Minute),
		)
		entries = append(entries, e)
	}
	return entries
}

func TestExportEntriesCSV(t *testing.T) {
	repo := &stubAuditRepo{entries: seedEntries(t, 3)}
	query := NewQueryEntriesUseCase(repo, &stubDirectory{names: map[uint]string{7: "maria"}}, quietLogger{})
	uc := NewExportEntriesUseCase(query, quietLogger{})

	result, err := uc.Execute(context.Background(), ExportEntriesCommand{Format: ExportCSV})
	require.NoError(t, err)

	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	records, err := csv.NewReader(strings.NewReader(string(result.Payload))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "actor_name", records[0][3])
	assert.Equal(t, "maria", records[1][3])
	assert.Equal(t, "CREATE", records[1][5])
}

func TestExportEntriesJSON(t *testing.T) {
	repo := &stubAuditRepo{entries: seedEntries(t, 2)}
	query := NewQueryEntriesUseCase(repo, &stubDirectory{names: map[uint]string{7: "maria"}}, quietLogger{})
	uc := NewExportEntriesUseCase(query, quietLogger{})

	result, err := uc.Execute(context.Background(), ExportEntriesCommand{Format: ExportJSON})
	require.NoError(t, err)

	assert.Equal(t, "application/json", result.ContentType)

	var entries []EntryResult
	require.NoError(t, json.Unmarshal(result.Payload, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "maria", entries[0].ActorName)
}

func TestExportEntriesPaginatesUntilComplete(t *testing.T) {
	// 120 rows span multiple query pages.
	repo := &stubAuditRepo{entries: seedEntries(t, 120)}
	query := NewQueryEntriesUseCase(repo, &stubDirectory{names: map[uint]string{7: "maria"}}, quietLogger{})
	uc := NewExportEntriesUseCase(query, quietLogger{})

	result, err := uc.Execute(context.Background(), ExportEntriesCommand{Format: ExportJSON})
	require.NoError(t, err)

	var entries []EntryResult
	require.NoError(t, json.Unmarshal(result.Payload, &entries))
	assert.Len(t, entries, 120)
	assert.Greater(t, repo.queries, 1)
}

func TestExportEntriesRejectsUnknownFormat(t *testing.T) {
	repo := &stubAuditRepo{}
	query := NewQueryEntriesUseCase(repo, &stubDirectory{}, quietLogger{})
	uc := NewExportEntriesUseCase(query, quietLogger{})

	_, err := uc.Execute(context.Background(), ExportEntriesCommand{Format: "xml"})
	assert.Error(t, err)
	assert.Zero(t, repo.queries)
}
