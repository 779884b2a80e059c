package replay

import (
	"fmt"

	"github.com/f3rmion/horalog/internal/mjai"
)

// Round is the round-scoped context a sample was captured in.
type Round struct {
	Bakaze      mjai.Tile   `json:"bakaze,omitempty" yaml:"bakaze,omitempty"` // round wind
	Kyoku       int         `json:"kyoku" yaml:"kyoku"`
	Honba       int         `json:"honba" yaml:"honba"`
	Kyotaku     int         `json:"kyotaku" yaml:"kyotaku"` // riichi sticks on the table
	Oya         int         `json:"oya" yaml:"oya"`         // dealer seat
	DoraMarkers []mjai.Tile `json:"dora_markers,omitempty" yaml:"dora_markers,omitempty"`
}

// Label formats the round as e.g. "E1-0".
func (r Round) Label() string {
	wind := string(r.Bakaze)
	if wind == "" {
		wind = "?"
	}
	return fmt.Sprintf("%s%d-%d", wind, r.Kyoku, r.Honba)
}

// Sample is the hand and claimed score of one win, packaged for an external
// agari validator. Samples are values; the slices they hold are not shared
// with the tracker that produced them.
type Sample struct {
	Hand    []mjai.Tile `json:"hand" yaml:"hand"`
	WinTile mjai.Tile   `json:"win_tile" yaml:"win_tile"`
	Han     int         `json:"han" yaml:"han"`
	Fu      int         `json:"fu" yaml:"fu"`
	Yakus   []string    `json:"yakus" yaml:"yakus"`
	IsTsumo bool        `json:"is_tsumo" yaml:"is_tsumo"`

	Actor      int           `json:"actor" yaml:"actor"`
	Target     int           `json:"target" yaml:"target"` // -1 when the log omitted it
	Breakdown  mjai.YakuList `json:"yaku_han,omitempty" yaml:"yaku_han,omitempty"`
	Round      Round         `json:"round" yaml:"round"`
	UraMarkers []mjai.Tile   `json:"ura_markers,omitempty" yaml:"ura_markers,omitempty"`
	Deltas     []int         `json:"deltas,omitempty" yaml:"deltas,omitempty"`

	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// Degenerate reports a broken hora record: no yaku and no han.
func (s Sample) Degenerate() bool {
	return len(s.Yakus) == 0 && s.Han == 0
}

// WinMethod returns "Tsumo" or "Ron".
func (s Sample) WinMethod() string {
	if s.IsTsumo {
		return "Tsumo"
	}
	return "Ron"
}

// Valid returns the samples that are not degenerate, preserving order.
func Valid(samples []Sample) []Sample {
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if !s.Degenerate() {
			out = append(out, s)
		}
	}
	return out
}
