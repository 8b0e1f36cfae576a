package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pinereel/pinereel/internal/common"
	"github.com/pinereel/pinereel/internal/model"
	"github.com/pinereel/pinereel/internal/service"
)

const defaultListLimit = 20

// SaveRun inserts one analysis run into the history.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.Run) error {
	if run == nil {
		return fmt.Errorf("run cannot be nil")
	}
	if run.ID == "" || run.VideoID == "" {
		return fmt.Errorf("run id and video id are required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, video_id, title, script_type, complexity_score, transcript_source, report_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.VideoID, run.Title, run.ScriptType,
		run.ComplexityScore, run.TranscriptSource, run.ReportPath)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetRun fetches a single run by id.
func (s *SQLiteStorage) GetRun(ctx context.Context, id string) (*model.Run, error) {
	if id == "" {
		return nil, fmt.Errorf("id cannot be empty")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, video_id, title, script_type, complexity_score, transcript_source, report_path, created_at
		FROM runs WHERE id = ?`, id)

	var run model.Run
	err := row.Scan(&run.ID, &run.VideoID, &run.Title, &run.ScriptType,
		&run.ComplexityScore, &run.TranscriptSource, &run.ReportPath, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns returns runs newest first, optionally filtered by video id.
func (s *SQLiteStorage) ListRuns(ctx context.Context, filter service.RunFilter) ([]model.Run, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
		SELECT id, video_id, title, script_type, complexity_score, transcript_source, report_path, created_at
		FROM runs`
	args := make([]any, 0, 3)
	if filter.VideoID != "" {
		query += ` WHERE video_id = ?`
		args = append(args, filter.VideoID)
	}
	query += ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.Run
	for rows.Next() {
		var run model.Run
		if err := rows.Scan(&run.ID, &run.VideoID, &run.Title, &run.ScriptType,
			&run.ComplexityScore, &run.TranscriptSource, &run.ReportPath, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}
