package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/lcgrand/drawsrv"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Websocket draw server",
	Long: `Start a websocket server handing out one generator per connection.
Clients pick the seed with ?seed=...&stream=..., For example:
  lcgrand serve --listen=ws://0.0.0.0:8080/stream`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := drawsrv.New(
			drawsrv.WithListenAddress(viper.GetString("listen")),
		)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			errc <- s.ListenAndServe()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.Shutdown(shutdownCtx)
		log.Printf("[INFO] served %d draws, last rate %d/s", s.Counter().Value(), s.Counter().RatePerSec())
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", drawsrv.DefaultListenAddress, "websocket listen address")
	viper.BindPFlag("listen", flags.Lookup("listen"))
}
