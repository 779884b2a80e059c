package cmd

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/f3rmion/horalog/internal/mjai"
	"github.com/f3rmion/horalog/internal/replay"
	"github.com/f3rmion/horalog/internal/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <log>...",
	Short: "Show event counts and skipped lines for event logs",
	Long: `Replay one or more event logs and print how many events of each type
were seen, how many lines or events had to be skipped, and how many wins
were found. Useful for checking a log before sampling from it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	x, err := extractAll(newLogger(cfg), args)
	if err != nil {
		return err
	}

	return printStats(cmd.OutOrStdout(), x.Stats(), len(replay.Valid(x.Samples())))
}

func printStats(w io.Writer, st replay.Stats, valid int) error {
	fmt.Fprintln(w, report.TitleStyle.Render("Event log stats"))
	fmt.Fprintf(w, "  %s %d\n", report.LabelStyle.Render("Sources:       "), st.Sources)
	fmt.Fprintf(w, "  %s %d\n", report.LabelStyle.Render("Lines:         "), st.Lines)
	fmt.Fprintf(w, "  %s %d\n", report.LabelStyle.Render("Skipped lines: "), st.SkippedLines)
	fmt.Fprintf(w, "  %s %d\n", report.LabelStyle.Render("Skipped events:"), st.SkippedEvents)
	fmt.Fprintf(w, "  %s %d (%d usable)\n", report.LabelStyle.Render("Wins:          "), st.Horas, valid)

	fmt.Fprintln(w)
	fmt.Fprintln(w, report.SubtitleStyle.Render("Event types:"))

	// Most frequent first, ties by name.
	types := slices.SortedFunc(maps.Keys(st.Events), func(a, b mjai.EventType) int {
		if c := cmp.Compare(st.Events[b], st.Events[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for _, t := range types {
		if _, err := fmt.Fprintf(w, "  %-12s %d\n", t, st.Events[t]); err != nil {
			return err
		}
	}
	return nil
}
