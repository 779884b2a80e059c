package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/f3rmion/horalog/internal/mjai"
	"github.com/f3rmion/horalog/internal/replay"
)

// DefaultTemplate renders one agari validator invocation per sample.
const DefaultTemplate = `agari --hand {{ tiles .Hand "," }} --win {{ .WinTile }}
{{- if .IsTsumo }} --tsumo{{ end }}
{{- if .Round.Bakaze }} --round-wind {{ .Round.Bakaze }}{{ end }}
{{- if .Round.DoraMarkers }} --dora {{ tiles .Round.DoraMarkers "," }}{{ end }}
{{- if .UraMarkers }} --ura {{ tiles .UraMarkers "," }}{{ end }}
{{- " " }}--expect-han {{ .Han }} --expect-fu {{ .Fu }}
{{- if .Yakus }} --expect-yaku {{ quote (join .Yakus ",") }}{{ end }}`

var templateFuncs = template.FuncMap{
	"join":  strings.Join,
	"quote": strconv.Quote,
	"tiles": func(ts []mjai.Tile, sep string) string {
		parts := make([]string, len(ts))
		for i, t := range ts {
			parts[i] = string(t)
		}
		return strings.Join(parts, sep)
	},
	"glyphs": func(ts []mjai.Tile) string {
		return FormatTiles(ts, true)
	},
}

// Template renders samples through a text/template, one line each.
type Template struct {
	tmpl *template.Template
}

// NewTemplate parses text; an empty text selects DefaultTemplate.
func NewTemplate(text string) (*Template, error) {
	if strings.TrimSpace(text) == "" {
		text = DefaultTemplate
	}
	t, err := template.New("sample").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &Template{tmpl: t}, nil
}

// Render executes the template for one sample.
func (t *Template) Render(s replay.Sample) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
