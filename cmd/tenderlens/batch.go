package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tenderlens/tenderlens/internal/cli"
	"github.com/tenderlens/tenderlens/internal/currency"
	"github.com/tenderlens/tenderlens/internal/storage"
	"github.com/tenderlens/tenderlens/internal/validate"
)

func batchCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Extract financial data from every .txt file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectTextFiles(args[0])
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no .txt files found in %s", args[0])
			}

			var store *storage.SQLiteStorage
			if save {
				store, err = initStorage(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
			}

			engine := newEngine()
			bar := progressbar.NewOptions(len(files),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Analyzing proposals..."),
			)

			type row struct {
				source     string
				mentions   int
				confidence int
				valid      bool
			}
			var rows []row

			for _, file := range files {
				data, readErr := os.ReadFile(file)
				if readErr != nil {
					return fmt.Errorf("failed to read %s: %w", file, readErr)
				}

				financials, exErr := engine.Extract(string(data))
				if exErr != nil {
					return fmt.Errorf("extraction failed for %s: %w", file, exErr)
				}
				verdict := validate.Evaluate(financials)

				if store != nil {
					stats := currency.ComputeStatistics(financials.Currencies)
					if _, saveErr := store.SaveExtraction(cmd.Context(), storage.ExtractionRecord{
						SourceName:      file,
						PrimaryCurrency: stats.PrimaryCurrency,
						Financials:      *financials,
						Validation:      verdict,
					}); saveErr != nil {
						return saveErr
					}
				}

				rows = append(rows, row{
					source:     filepath.Base(file),
					mentions:   len(financials.Currencies),
					confidence: verdict.Confidence,
					valid:      verdict.IsValid,
				})
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			cmd.Println()

			cmd.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-40s %8s %10s  %s", "Document", "Amounts", "Confidence", "Verdict")))
			for _, r := range rows {
				verdict := cli.SuccessStyle.Render("valid")
				if !r.valid {
					verdict = cli.ErrorStyle.Render("not valid")
				}
				cmd.Println(fmt.Sprintf("%-40s %8d %10d  %s", r.source, r.mentions, r.confidence, verdict))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist every result to the history database")

	return cmd
}

func collectTextFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}
