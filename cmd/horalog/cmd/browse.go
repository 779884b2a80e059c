package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/horalog/internal/replay"
	"github.com/f3rmion/horalog/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [log]...",
	Short: "Browse a random sample of winning hands in the TUI",
	Long: `Replay one or more event logs, draw a random sample of winning hands
and browse them in an interactive terminal UI.

Without arguments a file picker opens in the current directory.

Controls:
  ↑/↓ or j/k    Navigate samples
  g/G           First / last sample
  /             Filter by yaku name
  c             Clear filter
  y             Copy the sample as YAML
  q, Esc        Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	var model tea.Model
	if len(args) == 0 {
		// Log output would draw over the alt screen, so the picker path
		// replays quietly.
		model = tui.NewApp("", func(path string) ([]replay.Sample, error) {
			x := replay.NewExtractor(nil)
			if err := x.ExtractFile(path); err != nil {
				return nil, err
			}
			return drawValid(cfg, x.Samples()), nil
		}, cfg.Glyphs)
	} else {
		x, err := extractAll(newLogger(cfg), args)
		if err != nil {
			return err
		}
		model = tui.NewBrowser(drawValid(cfg, x.Samples()), cfg.Glyphs)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
