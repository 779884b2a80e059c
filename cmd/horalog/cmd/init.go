package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/horalog/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize horalog configuration",
	Long: `Write a config.yaml with the default settings to your config directory.

Settings:
  samples     number of wins to draw (10)
  seed        random seed, 0 seeds from the clock
  format      text, yaml, jsonl or template
  glyphs      render tiles as Unicode glyphs
  log_level   debug, info, warn or error
  template    text/template for the template format

Every setting can also be given as a HORALOG_* environment variable or a flag.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit config.yaml to change the defaults")
	fmt.Fprintln(out, "  2. Run 'horalog stats <log>' to check a log")
	fmt.Fprintln(out, "  3. Run 'horalog extract <log>' to sample winning hands")

	return nil
}
