package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// op is one step of a seq command line
type op struct {
	float     bool
	low, high int64
}

// parseOp reads "float" or "int:LOW:HIGH".
func parseOp(s string) (op, error) {
	if s == "float" {
		return op{float: true}, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] != "int" {
		return op{}, fmt.Errorf("bad op %q, want float or int:LOW:HIGH", s)
	}
	low, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return op{}, fmt.Errorf("bad op %q: %w", s, err)
	}
	high, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return op{}, fmt.Errorf("bad op %q: %w", s, err)
	}
	return op{low: low, high: high}, nil
}

func runOps(p *printer, d drawer, ops []op, rounds int) error {
	for i := 0; i < rounds; i++ {
		for _, o := range ops {
			if o.float {
				f, err := d.NextFloat()
				if err != nil {
					return err
				}
				p.value(f)
				continue
			}
			v, err := d.NextInt(o.low, o.high)
			if err != nil {
				return err
			}
			p.value(v)
		}
	}
	return nil
}

// seqCmd represents the seq command
var seqCmd = &cobra.Command{
	Use:   "seq OP...",
	Short: "Draw an interleaved sequence",
	Long: `Draw values for each OP in order, repeated --count times.
OP is float or int:LOW:HIGH, For example:
  lcgrand seq float int:1:10 --seed=100
  lcgrand seq int:0:1000 float --count=100 --seed=123456789`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops := make([]op, 0, len(args))
		for _, a := range args {
			o, err := parseOp(a)
			if err != nil {
				return err
			}
			ops = append(ops, o)
		}

		cfg := loadDrawConfig()
		d, err := openDrawer(cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		p := newPrinter(cmd.OutOrStdout())
		if err := runOps(p, d, ops, cfg.count); err != nil {
			return err
		}
		return p.state(d)
	},
}

func init() {
	rootCmd.AddCommand(seqCmd)
}
