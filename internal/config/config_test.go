package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenderlens/tenderlens/internal/extract"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("TENDERLENS_TEST_DIR", "/srv/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "absolute untouched", in: "/var/lib/tenderlens.db", want: "/var/lib/tenderlens.db"},
		{name: "tilde alone", in: "~", want: home},
		{name: "tilde prefix", in: "~/history.db", want: filepath.Join(home, "history.db")},
		{name: "env var", in: "$TENDERLENS_TEST_DIR/history.db", want: "/srv/data/history.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestEngineConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Equal(t, extract.DefaultConfig(), EngineConfig())
}

func TestEngineConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("thresholds.budget_window", 400)
	viper.Set("thresholds.terms_similarity_cutoff", 0.85)
	viper.Set("thresholds.max_payment_terms", 3)

	cfg := EngineConfig()

	assert.Equal(t, 400, cfg.BudgetWindow)
	assert.InDelta(t, 0.85, cfg.TermsSimilarityCutoff, 1e-9)
	assert.Equal(t, 3, cfg.MaxPaymentTerms)

	// Untouched keys keep the production defaults.
	def := extract.DefaultConfig()
	assert.Equal(t, def.ClaimWindow, cfg.ClaimWindow)
	assert.Equal(t, def.CategoryWindow, cfg.CategoryWindow)
	assert.InDelta(t, def.NotesSimilarityCutoff, cfg.NotesSimilarityCutoff, 1e-9)
}

func TestDatabasePath_Default(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("HOME", home)

	got := DatabasePath()
	assert.Equal(t, filepath.Join(home, ".local/share/tenderlens/tenderlens.db"), got)
}

func TestDatabasePath_Configured(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("database.path", "/tmp/custom/lens.db")
	assert.Equal(t, "/tmp/custom/lens.db", DatabasePath())
}
