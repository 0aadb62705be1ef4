package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tenderlens/tenderlens/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidRecord    = errors.New("invalid extraction record")
	ErrRecordNotFound   = errors.New("extraction record not found")
	ErrInvalidLimit     = errors.New("limit must be positive")
	ErrInvalidMention   = errors.New("invalid currency mention")
	ErrInvalidFinancial = errors.New("invalid extracted financials")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecord validates an extraction record before persistence.
func validateRecord(rec *ExtractionRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if rec.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidRecord)
	}
	if strings.TrimSpace(rec.SourceName) == "" {
		return fmt.Errorf("%w: missing source name", ErrInvalidRecord)
	}
	if rec.Confidence < 0 || rec.Confidence > 100 {
		return fmt.Errorf("%w: confidence must be between 0 and 100", ErrInvalidRecord)
	}
	if err := validateFinancials(&rec.Financials); err != nil {
		return err
	}
	return nil
}

// validateFinancials checks the engine's own invariants before a result
// is written out.
func validateFinancials(f *model.ExtractedFinancials) error {
	if f == nil {
		return fmt.Errorf("%w: financials", ErrNilParameter)
	}
	lastPos := -1
	for i, m := range f.Currencies {
		if m.Amount <= 0 {
			return fmt.Errorf("%w: non-positive amount at index %d", ErrInvalidMention, i)
		}
		if m.Position <= lastPos {
			return fmt.Errorf("%w: currencies not ordered by position", ErrInvalidFinancial)
		}
		lastPos = m.Position
	}
	return nil
}
