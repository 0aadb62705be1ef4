package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenderlens/tenderlens/internal/cli"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved extraction results",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent extractions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.ListExtractions(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No saved extractions."))
				return nil
			}

			cmd.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-36s %-19s %8s %10s  %s", "ID", "When", "Amounts", "Confidence", "Source")))
			for _, r := range records {
				cmd.Println(fmt.Sprintf("%-36s %-19s %8d %10d  %s",
					r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.MentionCount, r.Confidence, r.SourceName))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of records to show")

	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved extraction in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rec, err := store.GetExtraction(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cmd.Print(cli.RenderReport(rec.SourceName, &rec.Financials, rec.Validation))
			return nil
		},
	}
}
