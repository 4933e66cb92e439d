package wordmatch

import (
	"fmt"

	"github.com/vovakirdan/word-match/internal/catalog"
)

// IsLevelComplete reports whether every card is matched.
func IsLevelComplete(cards []*Card) bool {
	for _, c := range cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

// TransitionKind classifies the result of Session.Advance.
type TransitionKind int

const (
	TransitionNone      TransitionKind = iota // level still in play
	TransitionNextLevel                       // next level loaded
	TransitionFinished                        // last level completed
)

// LevelTransition describes what Advance did.
type LevelTransition struct {
	Kind      TransitionKind
	Completed int // 1-indexed number of the level just completed
}

// LevelCompleteMessage is shown after each level.
func LevelCompleteMessage(level int) string {
	return fmt.Sprintf("Level %d Complete!", level)
}

// FinalMessage is shown after the last level.
const FinalMessage = "Congratulations! You finished all levels!"

// Session walks a catalog level by level. The level index only moves
// forward and only through Advance; it equals the level count once the
// session is done.
type Session struct {
	pack     catalog.Catalog
	layout   Layout
	shuffler Shuffler
	index    int
	level    *LevelState
}

// NewSession starts a session on the 0-based start level, clamped to the
// catalog.
func NewSession(pack catalog.Catalog, layout Layout, shuffler Shuffler, start int) *Session {
	s := &Session{
		pack:     pack,
		layout:   layout,
		shuffler: shuffler,
	}
	if start > 0 && start < pack.Len() {
		s.index = start
	}
	if level, ok := pack.Level(s.index); ok {
		s.level = Load(level, layout, shuffler)
	}
	return s
}

// Index returns the 0-based index of the current level.
func (s *Session) Index() int {
	return s.index
}

// LevelCount returns the number of levels in the session.
func (s *Session) LevelCount() int {
	return s.pack.Len()
}

// Level returns the level in play. After the last level it keeps the
// completed deck so it can still be drawn.
func (s *Session) Level() *LevelState {
	return s.level
}

// Done reports whether every level has been completed.
func (s *Session) Done() bool {
	return s.index >= s.pack.Len()
}

// Advance moves to the next level once the current one is complete. Past
// the last level it reports TransitionFinished without touching the
// catalog.
func (s *Session) Advance() LevelTransition {
	if s.Done() || s.level == nil || !IsLevelComplete(s.level.Cards()) {
		return LevelTransition{Kind: TransitionNone}
	}

	s.index++
	tr := LevelTransition{Completed: s.index}

	level, ok := s.pack.Level(s.index)
	if !ok {
		tr.Kind = TransitionFinished
		return tr
	}

	s.level = Load(level, s.layout, s.shuffler)
	tr.Kind = TransitionNextLevel
	return tr
}
