package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/tutorstate/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tutorstate",
	Short: "Personalization state resolution for a conversational tutor",
	Long: "Tutorstate resolves a caller's accumulated history and layered\n" +
		"configuration into the behavioral and pedagogical state that governs\n" +
		"the tutor's next interaction.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite archive file (overrides TUTORSTATE_DB env var)")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the archive path using --db flag (highest
// priority), then TUTORSTATE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
