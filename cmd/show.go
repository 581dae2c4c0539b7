package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorstate/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the latest archived state for a caller",
	RunE: func(cmd *cobra.Command, args []string) error {
		callerID, _ := cmd.Flags().GetString("caller")
		if callerID == "" {
			return fmt.Errorf("--caller is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		archive, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer archive.Close()

		if list, _ := cmd.Flags().GetBool("list"); list {
			entries, err := archive.List(cmd.Context(), callerID, 20)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%s  %s\n", e.ID, e.ResolvedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		}

		state, err := archive.Latest(cmd.Context(), callerID)
		if err != nil {
			return err
		}
		if state == nil {
			return fmt.Errorf("no archived state for caller %q", callerID)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	},
}

func init() {
	showCmd.Flags().String("caller", "", "Caller ID")
	showCmd.Flags().Bool("list", false, "List archive entries instead of printing the latest state")
}
