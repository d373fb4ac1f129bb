package cmd

import (
	"github.com/spf13/cobra"
)

// floatCmd represents the float command
var floatCmd = &cobra.Command{
	Use:   "float",
	Short: "Draw floats in [0, 1)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadDrawConfig()
		d, err := openDrawer(cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		p := newPrinter(cmd.OutOrStdout())
		for i := 0; i < cfg.count; i++ {
			f, err := d.NextFloat()
			if err != nil {
				return err
			}
			p.value(f)
		}
		return p.state(d)
	},
}

func init() {
	rootCmd.AddCommand(floatCmd)
}
