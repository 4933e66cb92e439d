// Package catalog defines word packs: an ordered list of levels, each an
// ordered list of word pairs. A catalog is static data; it is validated once
// when defined and only read afterwards.
package catalog

// WordPair associates a singular with its plural. Invariant nouns use the
// same text for both.
type WordPair struct {
	Singular string `validate:"required"`
	Plural   string `validate:"required"`
}

// Invariant reports whether both forms are the same word.
func (p WordPair) Invariant() bool {
	return p.Singular == p.Plural
}

// Joins reports whether a and b are the two forms of this pair, in either
// order.
func (p WordPair) Joins(a, b string) bool {
	return (a == p.Singular && b == p.Plural) || (a == p.Plural && b == p.Singular)
}

// Level is one stage of play.
type Level struct {
	Name  string
	Pairs []WordPair `validate:"min=1,dive"`
}

// IsPair reports whether the two words form one of the level's pairs.
func (l Level) IsPair(a, b string) bool {
	for _, p := range l.Pairs {
		if p.Joins(a, b) {
			return true
		}
	}
	return false
}

// Words flattens the level into one word per card, two per pair, in pair
// order.
func (l Level) Words() []string {
	words := make([]string, 0, 2*len(l.Pairs))
	for _, p := range l.Pairs {
		words = append(words, p.Singular, p.Plural)
	}
	return words
}

// CardCount returns the number of cards the level deals.
func (l Level) CardCount() int {
	return 2 * len(l.Pairs)
}

// Catalog is a named, ordered sequence of levels.
type Catalog struct {
	ID     string
	Title  string
	Levels []Level `validate:"min=1,dive"`
}

// Len returns the number of levels.
func (c Catalog) Len() int {
	return len(c.Levels)
}

// Level returns the level at the given 0-based index. The second result is
// false past the last level, which callers treat as completion.
func (c Catalog) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.Levels) {
		return Level{}, false
	}
	return c.Levels[index], true
}

// PairCount returns the total number of pairs across all levels.
func (c Catalog) PairCount() int {
	n := 0
	for _, l := range c.Levels {
		n += len(l.Pairs)
	}
	return n
}
