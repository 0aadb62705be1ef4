package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tenderlens/tenderlens/internal/cli"
	"github.com/tenderlens/tenderlens/internal/currency"
	"github.com/tenderlens/tenderlens/internal/storage"
	"github.com/tenderlens/tenderlens/internal/validate"
)

func extractCmd() *cobra.Command {
	var (
		asJSON bool
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract financial data from a proposal text file (or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, source, err := readInput(args)
			if err != nil {
				return err
			}

			engine := newEngine()
			financials, err := engine.Extract(text)
			if err != nil {
				return fmt.Errorf("extraction failed for %s: %w", source, err)
			}
			verdict := validate.Evaluate(financials)

			if save {
				store, storeErr := initStorage(cmd.Context())
				if storeErr != nil {
					return storeErr
				}
				defer func() { _ = store.Close() }()

				stats := currency.ComputeStatistics(financials.Currencies)
				rec, saveErr := store.SaveExtraction(cmd.Context(), storage.ExtractionRecord{
					SourceName:      source,
					PrimaryCurrency: stats.PrimaryCurrency,
					Financials:      *financials,
					Validation:      verdict,
				})
				if saveErr != nil {
					return saveErr
				}
				slog.Info("Saved extraction", "id", rec.ID, "source", source)
			}

			if asJSON {
				out := struct {
					Financials any `json:"financials"`
					Validation any `json:"validation"`
				}{financials, verdict}
				data, marshalErr := json.MarshalIndent(out, "", "  ")
				if marshalErr != nil {
					return fmt.Errorf("failed to encode result: %w", marshalErr)
				}
				cmd.Println(string(data))
				return nil
			}

			cmd.Print(cli.RenderReport(source, financials, verdict))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw result as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "persist the result to the history database")

	return cmd
}
