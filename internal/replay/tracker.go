// Package replay rebuilds player hands from an event stream and captures a
// Sample at every win.
package replay

import (
	"errors"
	"fmt"
	"slices"

	"github.com/f3rmion/horalog/internal/mjai"
)

// Players is the number of seats at the table.
const Players = 4

var (
	// ErrMissingActor is returned for a player action without an actor.
	ErrMissingActor = errors.New("event has no actor")
	// ErrActorOutOfRange is returned for an actor outside 0..Players-1.
	ErrActorOutOfRange = errors.New("actor out of range")
)

// Tracker holds the four hands of the round being replayed. The zero value
// is ready to use; every traversal needs its own Tracker.
//
// Tracking is best effort. Discards and calls naming a tile the hand does not
// hold are ignored rather than reported, since kan replacement draws and
// similar bookkeeping are not modelled and the log is taken as authoritative.
type Tracker struct {
	hands [Players]Hand
	round Round
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// HandOf returns a copy of a seat's current tiles.
func (t *Tracker) HandOf(seat int) []mjai.Tile {
	if seat < 0 || seat >= Players {
		return nil
	}
	return t.hands[seat].Tiles()
}

// Round returns the context of the current round.
func (t *Tracker) Round() Round {
	r := t.round
	r.DoraMarkers = slices.Clone(r.DoraMarkers)
	return r
}

// Apply advances the state by one event. It returns a Sample for a hora
// event and nil otherwise. An error means the event was skipped and the
// state is unchanged; callers log it and continue.
func (t *Tracker) Apply(ev *mjai.Event) (*Sample, error) {
	switch {
	case ev.Type == mjai.EventStartKyoku:
		t.startKyoku(ev)
		return nil, nil

	case ev.Type == mjai.EventDora:
		if ev.DoraMarker != "" {
			t.round.DoraMarkers = append(t.round.DoraMarkers, ev.DoraMarker)
		}
		return nil, nil

	case ev.Type == mjai.EventTsumo:
		seat, err := actorSeat(ev)
		if err != nil {
			return nil, err
		}
		t.hands[seat].Draw(ev.Pai)
		return nil, nil

	case ev.Type == mjai.EventDahai:
		seat, err := actorSeat(ev)
		if err != nil {
			return nil, err
		}
		t.hands[seat].Remove(ev.Pai)
		return nil, nil

	case ev.Type.IsCall():
		seat, err := actorSeat(ev)
		if err != nil {
			return nil, err
		}
		t.hands[seat].RemoveAll(ev.Consumed)
		return nil, nil

	case ev.Type == mjai.EventHora:
		seat, err := actorSeat(ev)
		if err != nil {
			return nil, err
		}
		s := t.capture(seat, ev)
		return &s, nil
	}

	// ryukyoku, ankan, kakan and anything unknown leave the hands alone.
	return nil, nil
}

func (t *Tracker) startKyoku(ev *mjai.Event) {
	for seat := range t.hands {
		var dealt []mjai.Tile
		if seat < len(ev.Tehais) {
			dealt = ev.Tehais[seat]
		}
		t.hands[seat] = NewHand(dealt)
	}

	t.round = Round{
		Bakaze:  ev.Bakaze,
		Kyoku:   ev.Kyoku,
		Honba:   ev.Honba,
		Kyotaku: ev.Kyotaku,
	}
	if ev.Oya != nil {
		t.round.Oya = *ev.Oya
	}
	if ev.DoraMarker != "" {
		t.round.DoraMarkers = []mjai.Tile{ev.DoraMarker}
	}
}

func (t *Tracker) capture(seat int, ev *mjai.Event) Sample {
	yaku := ev.ClaimedYaku()

	han := yaku.Han()
	if ev.Han != nil {
		han = *ev.Han
	}
	fu := 0
	if ev.Fu != nil {
		fu = *ev.Fu
	}
	target := -1
	if ev.Target != nil {
		target = *ev.Target
	}

	return Sample{
		Hand:       t.hands[seat].Tiles(),
		WinTile:    ev.WinTile(),
		Han:        han,
		Fu:         fu,
		Yakus:      yaku.Names(),
		IsTsumo:    target == seat,
		Actor:      seat,
		Target:     target,
		Breakdown:  slices.Clone(yaku),
		Round:      t.Round(),
		UraMarkers: slices.Clone(ev.UraDora()),
		Deltas:     slices.Clone(ev.Deltas),
	}
}

func actorSeat(ev *mjai.Event) (int, error) {
	if ev.Actor == nil {
		return 0, fmt.Errorf("%s: %w", ev.Type, ErrMissingActor)
	}
	seat := *ev.Actor
	if seat < 0 || seat >= Players {
		return 0, fmt.Errorf("%s: %w: %d", ev.Type, ErrActorOutOfRange, seat)
	}
	return seat, nil
}
