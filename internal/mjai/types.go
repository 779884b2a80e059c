// Package mjai decodes MJAI-style mahjong event logs (.mjson).
package mjai

// Tile is an opaque tile identifier such as "5m", "5mr", "E" or "P".
type Tile string

// EventType is the "type" tag of an event line.
type EventType string

const (
	EventStartGame  EventType = "start_game"
	EventStartKyoku EventType = "start_kyoku"
	EventTsumo      EventType = "tsumo"
	EventDahai      EventType = "dahai"
	EventChi        EventType = "chi"
	EventPon        EventType = "pon"
	EventMinkan     EventType = "minkan"  // open kan called on a discard
	EventAnkan      EventType = "ankan"   // concealed kan
	EventDaikan     EventType = "daikan"  // older name for minkan
	EventKakan      EventType = "kakan"   // added kan onto a pon
	EventDora       EventType = "dora"    // new dora indicator after a kan
	EventReach      EventType = "reach"
	EventHora       EventType = "hora"
	EventRyukyoku   EventType = "ryukyoku"
	EventEndKyoku   EventType = "end_kyoku"
	EventEndGame    EventType = "end_game"
)

// IsCall reports whether t removes "consumed" tiles from the actor's hand.
func (t EventType) IsCall() bool {
	switch t {
	case EventChi, EventPon, EventMinkan, EventDaikan:
		return true
	}
	return false
}

// Event is a single decoded log line. Fields that do not apply to a given
// type are left at their zero value; optional integers are pointers so an
// absent key can be told apart from zero.
type Event struct {
	Type     EventType `json:"type"`
	Actor    *int      `json:"actor,omitempty"`
	Target   *int      `json:"target,omitempty"`
	Pai      Tile      `json:"pai,omitempty"`
	Consumed []Tile    `json:"consumed,omitempty"`

	// start_kyoku
	Tehais     [][]Tile `json:"tehais,omitempty"`
	Bakaze     Tile     `json:"bakaze,omitempty"`
	Kyoku      int      `json:"kyoku,omitempty"`
	Honba      int      `json:"honba,omitempty"`
	Kyotaku    int      `json:"kyotaku,omitempty"`
	Oya        *int     `json:"oya,omitempty"`
	DoraMarker Tile     `json:"dora_marker,omitempty"` // also carried by "dora"

	// hora
	HoraPai        Tile     `json:"hora_pai,omitempty"`
	Yaku           YakuList `json:"yaku,omitempty"`
	Yakus          YakuList `json:"yakus,omitempty"`
	Han            *int     `json:"han,omitempty"`
	Fu             *int     `json:"fu,omitempty"`
	UraMarkers     []Tile   `json:"ura_markers,omitempty"`
	UradoraMarkers []Tile   `json:"uradora_markers,omitempty"`
	Deltas         []int    `json:"deltas,omitempty"`
}

// WinTile returns the winning tile of a hora event: hora_pai when present,
// otherwise pai. It may be empty.
func (e *Event) WinTile() Tile {
	if e.HoraPai != "" {
		return e.HoraPai
	}
	return e.Pai
}

// ClaimedYaku returns whichever of "yaku" or "yakus" the line carried.
func (e *Event) ClaimedYaku() YakuList {
	if len(e.Yaku) > 0 {
		return e.Yaku
	}
	return e.Yakus
}

// UraDora returns the ura-dora indicators under either key.
func (e *Event) UraDora() []Tile {
	if len(e.UraMarkers) > 0 {
		return e.UraMarkers
	}
	return e.UradoraMarkers
}
