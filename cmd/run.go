package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/querydrill/internal/app"
	"github.com/abhisek/querydrill/internal/progress"
)

// runApp loads the catalog and progress sets and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ix, err := resolveIndex(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	progressPath, _ := cmd.Flags().GetString("progress")
	prog, err := progress.Load(progressPath)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	return app.Run(app.Options{
		Index:    ix,
		Progress: prog,
	})
}
