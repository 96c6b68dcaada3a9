package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/querydrill/internal/catalog"
)

var rootCmd = &cobra.Command{
	Use:   "querydrill",
	Short: "Browse SQL practice exercises in the terminal",
	Long:  "QueryDrill — terminal browser for a catalog of SQL practice exercises, highlighting what you already attempted or solved.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog JSON file (defaults to the embedded catalog)")
	rootCmd.PersistentFlags().String("progress", "", "Path to a progress JSON file with written/correct question ids")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveIndex returns the catalog index from the --catalog flag, or
// the embedded catalog when the flag is unset.
func resolveIndex(cmd *cobra.Command) (*catalog.Index, error) {
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Default()
}
