package cmd

import (
	"encoding/base64"
	"encoding/gob"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tutils/lcgrand/mask"
)

var (
	cmdlineMask = mask.New(33280939)
)

// packCmd turns an argument line into a single @token
var packCmd = &cobra.Command{
	Use:   "pack ARGS...",
	Short: "Pack arguments into a single @token",
	Long: `Pack an argument line into one opaque token that lcgrand expands again, For example:
  lcgrand pack int 1 10 --seed=42
  lcgrand @<token>`,
	DisableFlagParsing: true,
	Args:               cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := encodeCmdline(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), prefix+s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}

func encodeCmdline(args []string) (string, error) {
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawURLEncoding, w1)
	w3 := cmdlineMask.NewEncoder(w2)
	if err := gob.NewEncoder(w3).Encode(args); err != nil {
		return "", err
	}
	if err := w2.Close(); err != nil {
		return "", err
	}
	return w1.String(), nil
}

func decodeCmdline(s string) ([]string, error) {
	r1 := strings.NewReader(s)
	r2 := base64.NewDecoder(base64.RawURLEncoding, r1)
	r3 := cmdlineMask.NewDecoder(r2)
	var args []string
	if err := gob.NewDecoder(r3).Decode(&args); err != nil {
		return nil, fmt.Errorf("bad token: %w", err)
	}
	return args, nil
}
