package replay

import (
	"slices"

	"github.com/f3rmion/horalog/internal/mjai"
)

// Hand is the ordered multiset of tiles one player currently holds.
type Hand struct {
	tiles []mjai.Tile
}

// NewHand returns a hand holding a copy of tiles.
func NewHand(tiles []mjai.Tile) Hand {
	return Hand{tiles: slices.Clone(tiles)}
}

// Draw adds a tile to the end of the hand.
func (h *Hand) Draw(t mjai.Tile) {
	h.tiles = append(h.tiles, t)
}

// Remove takes out the first occurrence of t. It reports false, leaving the
// hand unchanged, when t is not held.
func (h *Hand) Remove(t mjai.Tile) bool {
	i := slices.Index(h.tiles, t)
	if i < 0 {
		return false
	}
	h.tiles = slices.Delete(h.tiles, i, i+1)
	return true
}

// RemoveAll removes one occurrence of each tile in ts, skipping tiles that
// are not held, and returns how many were removed.
func (h *Hand) RemoveAll(ts []mjai.Tile) int {
	n := 0
	for _, t := range ts {
		if h.Remove(t) {
			n++
		}
	}
	return n
}

// Tiles returns a copy of the held tiles in hand order.
func (h *Hand) Tiles() []mjai.Tile {
	out := make([]mjai.Tile, len(h.tiles))
	copy(out, h.tiles)
	return out
}

// Len returns the number of tiles held.
func (h *Hand) Len() int {
	return len(h.tiles)
}
