package cmd

import (
	"github.com/f3rmion/horalog/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractCmd = &cobra.Command{
	Use:   "extract <log>...",
	Short: "Print a random sample of winning hands from event logs",
	Long: `Replay one or more event logs, collect every winning hand, draw a
uniform random sample of them and print it for validation.

Directories are searched for *.mjson, *.mjson.gz, *.json and *.json.gz.
Compression is detected from file contents, not the name.

Formats:
  text      styled summary (default)
  yaml      YAML sequence of samples
  jsonl     one JSON object per line
  template  one line per sample from --template (default: an agari command line)

Examples:
  horalog extract game.mjson
  horalog extract logs/ -n 100 --seed 42 --format jsonl > samples.jsonl
  horalog extract game.mjson --format template --template '{{ tiles .Hand "" }} {{ .WinTile }}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("format", "f", "", "output format: text, yaml, jsonl, template")
	extractCmd.Flags().String("template", "", "text/template used by --format template")

	viper.BindPFlag("format", extractCmd.Flags().Lookup("format"))
	viper.BindPFlag("template", extractCmd.Flags().Lookup("template"))
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	x, err := extractAll(logger, args)
	if err != nil {
		return err
	}

	population := x.Samples()
	samples := drawValid(cfg, population)
	logger.Info("drew samples", "population", len(population), "requested", cfg.Samples, "reported", len(samples))

	return report.Write(cmd.OutOrStdout(), samples, report.Options{
		Format:   cfg.Format,
		Glyphs:   cfg.Glyphs,
		Template: cfg.Template,
	})
}
