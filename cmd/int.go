package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// intCmd represents the int command
var intCmd = &cobra.Command{
	Use:   "int LOW HIGH",
	Short: "Draw integers in [LOW, HIGH]",
	Long: `Draw integers in the inclusive range [LOW, HIGH], For example:
  lcgrand int 1 10 --seed=42
  lcgrand int -- -100 100 --count=20`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		low, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("low: %w", err)
		}
		high, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("high: %w", err)
		}

		cfg := loadDrawConfig()
		d, err := openDrawer(cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		p := newPrinter(cmd.OutOrStdout())
		for i := 0; i < cfg.count; i++ {
			v, err := d.NextInt(low, high)
			if err != nil {
				return err
			}
			p.value(v)
		}
		return p.state(d)
	},
}

func init() {
	rootCmd.AddCommand(intCmd)
}
