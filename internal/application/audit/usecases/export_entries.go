package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

type ExportEntriesCommand struct {
	Format  ExportFormat
	ActorID *uint
	Action  string
	From    *time.Time
	To      *time.Time
}

type ExportEntriesResult struct {
	Format      ExportFormat
	ContentType string
	Filename    string
	Payload     []byte
}

// exportPageSize bounds how many rows one export pulls per query.
const exportPageSize = 1000

type ExportEntriesUseCase struct {
	query  *QueryEntriesUseCase
	logger logger.Interface
}

func NewExportEntriesUseCase(query *QueryEntriesUseCase, log logger.Interface) *ExportEntriesUseCase {
	return &ExportEntriesUseCase{query: query, logger: log}
}

func (uc *ExportEntriesUseCase) Execute(ctx context.Context, cmd ExportEntriesCommand) (*ExportEntriesResult, error) {
	if cmd.Format != ExportJSON && cmd.Format != ExportCSV {
		return nil, errors.NewValidationError("export format must be json or csv")
	}

	entries, err := uc.collect(ctx, cmd)
	if err != nil {
		return nil, err
	}

	stamp := time.Now().UTC().Format("20060102-150405")
	switch cmd.Format {
	case ExportCSV:
		payload, err := renderCSV(entries)
		if err != nil {
			return nil, errors.NewInternalError("failed to render csv export", err)
		}
		return &ExportEntriesResult{
			Format:      ExportCSV,
			ContentType: "text/csv",
			Filename:    "audit-export-" + stamp + ".csv",
			Payload:     payload,
		}, nil
	default:
		payload, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, errors.NewInternalError("failed to render json export", err)
		}
		return &ExportEntriesResult{
			Format:      ExportJSON,
			ContentType: "application/json",
			Filename:    "audit-export-" + stamp + ".json",
			Payload:     payload,
		}, nil
	}
}

func (uc *ExportEntriesUseCase) collect(ctx context.Context, cmd ExportEntriesCommand) ([]EntryResult, error) {
	var all []EntryResult
	for page := 1; ; page++ {
		result, err := uc.query.Execute(ctx, QueryEntriesCommand{
			ActorID:  cmd.ActorID,
			Action:   cmd.Action,
			From:     cmd.From,
			To:       cmd.To,
			Page:     page,
			PageSize: exportPageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, result.Entries...)
		if len(all) >= int(result.Total) || len(result.Entries) == 0 {
			break
		}
	}
	return all, nil
}

func renderCSV(entries []EntryResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "reference", "actor_id", "actor_name", "actor_role", "action", "description", "created_at"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range entries {
		record := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Reference,
			strconv.FormatUint(uint64(e.ActorID), 10),
			e.ActorName,
			e.ActorRole,
			e.Action,
			e.Description,
			e.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
