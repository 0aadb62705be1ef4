package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tenderlens/tenderlens/internal/model"
)

// ExtractionRecord is one persisted analysis run.
type ExtractionRecord struct {
	CreatedAt       time.Time                 `json:"created_at"`
	ID              string                    `json:"id"`
	SourceName      string                    `json:"source_name"`
	PrimaryCurrency model.CurrencyCode        `json:"primary_currency,omitempty"`
	Financials      model.ExtractedFinancials `json:"financials"`
	Validation      model.ValidationResult    `json:"validation"`
	MentionCount    int                       `json:"mention_count"`
	Confidence      int                       `json:"confidence"`
	IsValid         bool                      `json:"is_valid"`
}

// payload is the JSON blob stored alongside the indexed columns.
type payload struct {
	Financials model.ExtractedFinancials `json:"financials"`
	Validation model.ValidationResult    `json:"validation"`
}

// SaveExtraction persists a record, assigning an ID when none is set, and
// returns the stored record.
func (s *SQLiteStorage) SaveExtraction(ctx context.Context, rec ExtractionRecord) (*ExtractionRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.MentionCount = len(rec.Financials.Currencies)
	rec.Confidence = rec.Validation.Confidence
	rec.IsValid = rec.Validation.IsValid

	if err := validateRecord(&rec); err != nil {
		return nil, err
	}

	blob, err := json.Marshal(payload{Financials: rec.Financials, Validation: rec.Validation})
	if err != nil {
		return nil, fmt.Errorf("failed to encode extraction payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, source_name, mention_count, primary_currency, confidence, is_valid, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SourceName, rec.MentionCount, string(rec.PrimaryCurrency),
		rec.Confidence, rec.IsValid, string(blob), rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save extraction: %w", err)
	}

	return &rec, nil
}

// GetExtraction loads one record by ID.
func (s *SQLiteStorage) GetExtraction(ctx context.Context, id string) (*ExtractionRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_name, mention_count, primary_currency, confidence, is_valid, payload, created_at
		FROM extractions WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load extraction: %w", err)
	}
	return rec, nil
}

// ListExtractions returns the most recent records, newest first.
func (s *SQLiteStorage) ListExtractions(ctx context.Context, limit int) ([]ExtractionRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_name, mention_count, primary_currency, confidence, is_valid, payload, created_at
		FROM extractions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []ExtractionRecord
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan extraction: %w", scanErr)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate extractions: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*ExtractionRecord, error) {
	var rec ExtractionRecord
	var primary string
	var blob string

	err := row.Scan(&rec.ID, &rec.SourceName, &rec.MentionCount, &primary,
		&rec.Confidence, &rec.IsValid, &blob, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	var p payload
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return nil, fmt.Errorf("corrupt extraction payload: %w", err)
	}
	rec.PrimaryCurrency = model.CurrencyCode(primary)
	rec.Financials = p.Financials
	rec.Validation = p.Validation

	return &rec, nil
}
