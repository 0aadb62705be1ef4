// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tenderlens/tenderlens/internal/extract"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// EngineConfig builds the extraction thresholds from the loaded viper
// configuration, falling back to the production defaults for any key the
// config file leaves unset.
func EngineConfig() extract.Config {
	cfg := extract.DefaultConfig()

	setInt := func(key string, dst *int) {
		if viper.IsSet(key) {
			*dst = viper.GetInt(key)
		}
	}
	setFloat := func(key string, dst *float64) {
		if viper.IsSet(key) {
			*dst = viper.GetFloat64(key)
		}
	}

	setInt("thresholds.claim_window", &cfg.ClaimWindow)
	setFloat("thresholds.dedupe_amount_tolerance", &cfg.DedupeAmountTolerance)
	setInt("thresholds.dedupe_max_gap", &cfg.DedupeMaxGap)
	setInt("thresholds.budget_window", &cfg.BudgetWindow)
	setInt("thresholds.category_window", &cfg.CategoryWindow)
	setFloat("thresholds.terms_similarity_cutoff", &cfg.TermsSimilarityCutoff)
	setFloat("thresholds.notes_similarity_cutoff", &cfg.NotesSimilarityCutoff)
	setInt("thresholds.max_payment_terms", &cfg.MaxPaymentTerms)
	setInt("thresholds.max_financial_notes", &cfg.MaxFinancialNotes)

	return cfg
}

// DatabasePath resolves the history database location.
func DatabasePath() string {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/tenderlens/tenderlens.db"
	}
	return ExpandPath(dbPath)
}
