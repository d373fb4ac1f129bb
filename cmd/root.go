package cmd

import (
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lcgrand",
	Short: "Deterministic random numbers.",
	Long: `Deterministic random numbers from a linear congruential generator.
Repo: https://github.com/tutils/lcgrand
The same seed always gives the same sequence, For example:
  lcgrand int 1 10 --seed=42 --count=5
  lcgrand seq float int:1:10 --seed=100
  lcgrand serve --listen=ws://0.0.0.0:8080/stream
  lcgrand float --remote=ws://127.0.0.1:8080/stream --seed=camera-jitter`,
	SilenceUsage: true,
}

const (
	prefix = "@"
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if len(os.Args) == 2 && strings.HasPrefix(os.Args[1], prefix) {
		args, err := decodeCmdline(os.Args[1][len(prefix):])
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}
		rootCmd.SetArgs(args)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lcgrand.yaml)")
	flags.StringP("seed", "s", "", "seed: integer, UUID or label (default: current time in ms)")
	flags.String("label", "", "seed from a stream name, e.g. camera-jitter")
	flags.String("session", "", "seed from a session UUID, see lcgrand session")
	flags.Int("stream", -1, "derived sub-stream of the seed")
	flags.StringP("remote", "r", "", "draw from a lcgrand server, e.g. ws://127.0.0.1:8080/stream")
	flags.IntP("count", "n", 1, "number of values to draw")

	for _, name := range []string{"seed", "label", "session", "stream", "remote", "count"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".lcgrand" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lcgrand")
	}

	viper.SetEnvPrefix("lcgrand")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
