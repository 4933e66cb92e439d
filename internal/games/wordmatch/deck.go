package wordmatch

import (
	"github.com/vovakirdan/word-match/internal/catalog"
	"github.com/vovakirdan/word-match/internal/core"
)

// Card is one word on the grid. Cards are compared by pointer: two cards of
// an invariant noun carry the same Word but are distinct cards.
type Card struct {
	Index   int // Position in the shuffled deck
	Word    string
	Cell    core.Cell
	Bounds  core.Rect
	Matched bool
}

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// LevelState is the deck of the level being played together with the
// pending selection.
type LevelState struct {
	level     catalog.Level
	cards     []*Card
	selection Selection
}

// Load deals a level: one card per word occurrence, shuffled, then placed
// on the grid by shuffled position. All cards start unmatched and the
// selection starts empty.
func Load(level catalog.Level, layout Layout, shuffler Shuffler) *LevelState {
	words := level.Words()
	shuffler.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	cards := make([]*Card, len(words))
	for i, w := range words {
		cards[i] = &Card{
			Index:  i,
			Word:   w,
			Cell:   layout.CellOf(i),
			Bounds: layout.Bounds(i),
		}
	}

	return &LevelState{level: level, cards: cards}
}

// Level returns the level being played.
func (ls *LevelState) Level() catalog.Level {
	return ls.level
}

// Cards returns the deck in grid order.
func (ls *LevelState) Cards() []*Card {
	return ls.cards
}

// Card returns the card at deck position i, or nil.
func (ls *LevelState) Card(i int) *Card {
	if i < 0 || i >= len(ls.cards) {
		return nil
	}
	return ls.cards[i]
}

// CardAt returns the card whose bounds contain the screen point, or nil.
func (ls *LevelState) CardAt(x, y int) *Card {
	for _, c := range ls.cards {
		if c.Bounds.Contains(x, y) {
			return c
		}
	}
	return nil
}

// Selection returns the pending selection.
func (ls *LevelState) Selection() *Selection {
	return &ls.selection
}

// MatchedPairs counts the pairs found so far.
func (ls *LevelState) MatchedPairs() int {
	n := 0
	for _, c := range ls.cards {
		if c.Matched {
			n++
		}
	}
	return n / 2
}

// owns reports whether c belongs to this deck.
func (ls *LevelState) owns(c *Card) bool {
	return c != nil && c.Index >= 0 && c.Index < len(ls.cards) && ls.cards[c.Index] == c
}
