package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenderlens/tenderlens/internal/tui"
	"github.com/tenderlens/tenderlens/internal/validate"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <file>",
		Short: "Interactively review the extraction for one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text, source, err := readInput(args)
			if err != nil {
				return err
			}

			engine := newEngine()
			financials, err := engine.Extract(text)
			if err != nil {
				return fmt.Errorf("extraction failed for %s: %w", source, err)
			}

			return tui.Run(source, financials, validate.Evaluate(financials))
		},
	}
}
