package report

import (
	"strings"

	"github.com/f3rmion/horalog/internal/mjai"
	"github.com/mattn/go-runewidth"
)

// honorGlyphs covers winds and dragons in MJAI notation.
var honorGlyphs = map[mjai.Tile]rune{
	"E": '\U0001F000',
	"S": '\U0001F001',
	"W": '\U0001F002',
	"N": '\U0001F003',
	"C": '\U0001F004', // chun
	"F": '\U0001F005', // hatsu
	"P": '\U0001F006', // haku
}

// suitBase is the glyph of the 1 of each suit.
var suitBase = map[byte]rune{
	'm': '\U0001F007',
	's': '\U0001F010',
	'p': '\U0001F019',
}

// Glyph returns the Unicode mahjong glyph for a tile. Red fives share the
// glyph of the plain five. Unknown tiles are returned as written.
func Glyph(t mjai.Tile) string {
	if r, ok := honorGlyphs[t]; ok {
		return string(r)
	}
	s := string(t)
	if len(s) < 2 || s[0] < '1' || s[0] > '9' {
		return s
	}
	base, ok := suitBase[s[1]]
	if !ok || (len(s) == 3 && s[2] != 'r') || len(s) > 3 {
		return s
	}
	return string(base + rune(s[0]-'1'))
}

// FormatTiles joins tiles with single spaces, as glyphs when requested.
func FormatTiles(tiles []mjai.Tile, glyphs bool) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		if glyphs {
			parts[i] = Glyph(t)
		} else {
			parts[i] = string(t)
		}
	}
	return strings.Join(parts, " ")
}

// padLabel right-pads a label to width display cells. Glyph tiles and CJK
// yaku names are not one cell per rune, so byte or rune counts misalign.
func padLabel(label string, width int) string {
	return runewidth.FillRight(label, width)
}

// labelWidth returns the widest label in display cells.
func labelWidth(labels ...string) int {
	w := 0
	for _, l := range labels {
		w = max(w, runewidth.StringWidth(l))
	}
	return w
}
