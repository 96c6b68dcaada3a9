package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/querydrill/internal/catalog"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a single question by its global id (no TUI)",
	Long: `Print one question's description and expected result table to stdout.

Useful for scripting and for checking catalog content without launching
the interactive browser.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().Int("question", 0, "Global question id (required)")
	_ = showCmd.MarkFlagRequired("question")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("question")

	ix, err := resolveIndex(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	ex, q, err := ix.QuestionByID(id)
	if err != nil {
		return err
	}
	rq, err := ix.Resolve(ex.ID, q.Variant)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Exercise %s · Variant %s (question #%d)\n\n", rq.Exercise.DisplayNumber, rq.Variant, rq.ID)
	fmt.Fprintln(out, rq.Description)
	fmt.Fprintln(out)
	printTable(out, rq.EvaluableResult)
	return nil
}

// printTable writes the result table with aligned columns.
func printTable(out io.Writer, r catalog.EvaluableResult) {
	widths := make([]int, len(r.Columns))
	for i, col := range r.Columns {
		widths[i] = len(col)
	}
	for _, row := range r.Data {
		for i, cell := range row {
			if i < len(widths) && len(cell.String()) > widths[i] {
				widths[i] = len(cell.String())
			}
		}
	}

	header := make([]string, len(r.Columns))
	sep := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		header[i] = fmt.Sprintf("%-*s", widths[i], col)
		sep[i] = strings.Repeat("-", widths[i])
	}
	fmt.Fprintln(out, strings.Join(header, "  "))
	fmt.Fprintln(out, strings.Join(sep, "  "))

	for _, row := range r.Data {
		cells := make([]string, len(row))
		for i, cell := range row {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			cells[i] = fmt.Sprintf("%-*s", w, cell.String())
		}
		fmt.Fprintln(out, strings.Join(cells, "  "))
	}
}
