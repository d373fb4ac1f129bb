package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tutils/lcgrand/seed"
)

// sessionCmd prints a fresh session id and the seed it maps to
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Create a new session id usable as --seed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.NewRandom()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", id, seed.FromUUID(id))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
