// Package report renders win samples for the external agari validator.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/horalog/internal/config"
	"github.com/f3rmion/horalog/internal/replay"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options selects the output format.
type Options struct {
	Format   string // one of the config.Format* values
	Glyphs   bool   // text format only
	Template string // template format only; empty uses DefaultTemplate
}

// Write renders samples to w. Callers pass only the samples to report;
// degenerate ones should already be filtered out.
func Write(w io.Writer, samples []replay.Sample, opts Options) error {
	switch opts.Format {
	case config.FormatText, "":
		return writeText(w, samples, opts.Glyphs)
	case config.FormatYAML:
		return writeYAML(w, samples)
	case config.FormatJSONL:
		return writeJSONL(w, samples)
	case config.FormatTemplate:
		return writeTemplate(w, samples, opts.Template)
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

func writeYAML(w io.Writer, samples []replay.Sample) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(samples); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeJSONL(w io.Writer, samples []replay.Sample) error {
	enc := json.NewEncoder(w)
	for _, s := range samples {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	}
	return nil
}

func writeTemplate(w io.Writer, samples []replay.Sample, text string) error {
	t, err := NewTemplate(text)
	if err != nil {
		return err
	}
	for _, s := range samples {
		line, err := t.Render(s)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, samples []replay.Sample, glyphs bool) error {
	for i, s := range samples {
		if _, err := fmt.Fprintln(w, RenderSample(i+1, s, glyphs)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, SummaryStyle.Render(fmt.Sprintf("%d sample(s)", len(samples))))
	return err
}

var textLabels = []string{"Hand", "Win", "Score", "Yaku", "Dora", "Ura"}

// RenderSample formats one sample as a bordered block.
func RenderSample(n int, s replay.Sample, glyphs bool) string {
	width := labelWidth(textLabels...) + 1
	row := func(label, value string) string {
		return LabelStyle.Render(padLabel(label, width)) + value
	}

	header := TitleStyle.Render(fmt.Sprintf("#%d", n)) + " " +
		SubtitleStyle.Render(s.Round.Label()) + " " +
		ValueStyle.Render(seatLine(s))
	if s.Source != "" {
		header += " " + SourceStyle.Render(fmt.Sprintf("%s:%d", s.Source, s.Line))
	}

	lines := []string{
		header,
		row("Hand", TileStyle.Render(FormatTiles(s.Hand, glyphs))),
		row("Win", TileStyle.Render(winTile(s, glyphs))+" "+MethodStyle(s.IsTsumo).Render(s.WinMethod())),
		row("Score", ScoreStyle.Render(fmt.Sprintf("%d han %d fu", s.Han, s.Fu))),
		row("Yaku", ValueStyle.Render(yakuLine(s))),
	}
	if len(s.Round.DoraMarkers) > 0 {
		lines = append(lines, row("Dora", TileStyle.Render(FormatTiles(s.Round.DoraMarkers, glyphs))))
	}
	if len(s.UraMarkers) > 0 {
		lines = append(lines, row("Ura", TileStyle.Render(FormatTiles(s.UraMarkers, glyphs))))
	}

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func winTile(s replay.Sample, glyphs bool) string {
	if s.WinTile == "" {
		return "?"
	}
	if glyphs {
		return Glyph(s.WinTile)
	}
	return string(s.WinTile)
}

func seatLine(s replay.Sample) string {
	if s.IsTsumo || s.Target < 0 {
		return fmt.Sprintf("seat %d", s.Actor)
	}
	return fmt.Sprintf("seat %d from seat %d", s.Actor, s.Target)
}

func yakuLine(s replay.Sample) string {
	if len(s.Breakdown) == 0 {
		if len(s.Yakus) == 0 {
			return "-"
		}
		return strings.Join(s.Yakus, ", ")
	}
	parts := make([]string, len(s.Breakdown))
	for i, y := range s.Breakdown {
		parts[i] = fmt.Sprintf("%s (%d)", y.Name, y.Han)
	}
	return strings.Join(parts, ", ")
}
