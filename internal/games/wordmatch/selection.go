package wordmatch

// Selection holds up to two chosen, not yet evaluated cards in the order
// they were chosen.
type Selection struct {
	cards [2]*Card
	n     int
}

// Len returns the number of selected cards.
func (s *Selection) Len() int {
	return s.n
}

// Cards returns the selected cards in selection order.
func (s *Selection) Cards() []*Card {
	out := make([]*Card, s.n)
	copy(out, s.cards[:s.n])
	return out
}

// Contains reports whether c is selected.
func (s *Selection) Contains(c *Card) bool {
	for i := 0; i < s.n; i++ {
		if s.cards[i] == c {
			return true
		}
	}
	return false
}

func (s *Selection) add(c *Card) {
	s.cards[s.n] = c
	s.n++
}

func (s *Selection) clear() {
	s.cards = [2]*Card{}
	s.n = 0
}

// MatchOutcome is the result of evaluating a completed two-card selection.
type MatchOutcome struct {
	First   *Card
	Second  *Card
	Matched bool
}

// Evaluated reports whether the outcome came from an evaluation.
func (o MatchOutcome) Evaluated() bool {
	return o.First != nil && o.Second != nil
}

// Involves reports whether c is one of the two evaluated cards.
func (o MatchOutcome) Involves(c *Card) bool {
	return c != nil && (o.First == c || o.Second == c)
}

// Select adds a card to the selection. Matched cards, cards already
// selected, cards from another deck and a third card are ignored. The second
// card triggers evaluation; the returned bool reports whether it ran.
func (ls *LevelState) Select(c *Card) (MatchOutcome, bool) {
	if !ls.owns(c) || c.Matched || ls.selection.Len() >= 2 || ls.selection.Contains(c) {
		return MatchOutcome{}, false
	}

	ls.selection.add(c)
	if ls.selection.Len() < 2 {
		return MatchOutcome{}, false
	}
	return ls.evaluate(), true
}

// evaluate commits the pending pair. A valid pair marks both cards matched.
// The selection is empty afterwards whatever the outcome.
func (ls *LevelState) evaluate() MatchOutcome {
	first, second := ls.selection.cards[0], ls.selection.cards[1]
	out := MatchOutcome{
		First:   first,
		Second:  second,
		Matched: ls.level.IsPair(first.Word, second.Word),
	}
	if out.Matched {
		first.Matched = true
		second.Matched = true
	}
	ls.selection.clear()
	return out
}
