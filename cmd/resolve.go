package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tutorstate/internal/resolve"
	"github.com/abhisek/tutorstate/internal/snapshot"
	"github.com/abhisek/tutorstate/internal/store"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <snapshot.json>",
	Short: "Resolve a caller snapshot into a session state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshot.Load(args[0])
		if err != nil {
			return err
		}

		if pb, _ := cmd.Flags().GetString("playbook"); pb != "" {
			snap.PlaybookID = pb
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()

		assembler := resolve.NewAssembler(resolve.DefaultConfig(), logger)
		state := assembler.Resolve(*snap)

		if save, _ := cmd.Flags().GetBool("save"); save {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return err
			}
			archive, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer archive.Close()

			id, err := archive.Save(cmd.Context(), state)
			if err != nil {
				return fmt.Errorf("archive state: %w", err)
			}
			fmt.Fprintf(os.Stderr, "archived as %s\n", id)
		}

		enc := json.NewEncoder(os.Stdout)
		if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(state)
	},
}

func init() {
	resolveCmd.Flags().String("playbook", "", "Active playbook ID (overrides the snapshot's)")
	resolveCmd.Flags().Bool("save", false, "Archive the resolved state")
	resolveCmd.Flags().Bool("pretty", false, "Indent JSON output")
}
