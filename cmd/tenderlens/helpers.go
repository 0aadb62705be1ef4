package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tenderlens/tenderlens/internal/config"
	"github.com/tenderlens/tenderlens/internal/currency"
	"github.com/tenderlens/tenderlens/internal/extract"
	"github.com/tenderlens/tenderlens/internal/storage"
)

// newEngine builds the extraction engine with thresholds from config.
func newEngine() *extract.Engine {
	return extract.NewEngine(currency.NewRegistry(), config.EngineConfig())
}

// initStorage initializes the history database with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// readInput reads the document text from a file argument, or from stdin
// when the argument is "-" or absent.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}
