// Package cmd contains all CLI commands for horalog.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/f3rmion/horalog/internal/config"
	"github.com/f3rmion/horalog/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "horalog",
	Short: "Extract winning hands from mahjong event logs",
	Long: `horalog replays MJAI event logs (.mjson, plain, gzip or zstd) and
rebuilds every player's hand as the round is played. At each win (hora) it
captures the winner's tiles, the winning tile and the claimed han, fu and
yaku, so the scoring can be checked by an external agari validator.

Examples:
  horalog extract game.mjson
  horalog extract logs/2024 -n 50 --seed 7 --format template
  horalog browse logs/2024 -n 200
  horalog stats game.mjson.gz`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/horalog)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntP("samples", "n", 0, "number of wins to draw (default from config, 10)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "random seed for sampling (0 = from the clock)")
	rootCmd.PersistentFlags().Bool("glyphs", false, "render tiles as Unicode mahjong glyphs")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("samples", rootCmd.PersistentFlags().Lookup("samples"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("glyphs", rootCmd.PersistentFlags().Lookup("glyphs"))
}

// initConfig resolves the config directory and enables HORALOG_* overrides.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("HORALOG")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings reads the config file and applies env and flag overrides.
func loadSettings() (config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return cfg, err
	}

	if viper.IsSet("samples") {
		cfg.Samples = viper.GetInt("samples")
	}
	if viper.IsSet("seed") {
		cfg.Seed = viper.GetUint64("seed")
	}
	if viper.IsSet("glyphs") {
		cfg.Glyphs = viper.GetBool("glyphs")
	}
	if viper.IsSet("log_level") {
		cfg.LogLevel = viper.GetString("log_level")
	}
	if viper.IsSet("format") {
		cfg.Format = viper.GetString("format")
	}
	if viper.IsSet("template") {
		cfg.Template = viper.GetString("template")
	}

	return cfg, cfg.Validate()
}

// newLogger builds the stderr logger for a command.
func newLogger(cfg config.Config) *log.Logger {
	return logging.New(os.Stderr, cfg.LogLevel)
}
