package wordmatch

import "github.com/vovakirdan/word-match/internal/core"

// Phase names what the game is doing this tick.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseReveal   Phase = "reveal"
	PhaseMessage  Phase = "message"
	PhaseFinished Phase = "finished"
)

// CardSnapshot is the observable state of one card.
type CardSnapshot struct {
	Word    string
	Cell    core.Cell
	Matched bool
}

// Snapshot captures the complete game state for deterministic tests.
type Snapshot struct {
	Tick     uint64
	Level    int // 1-indexed, LevelCount+1 once the session is done
	Levels   int
	Phase    Phase
	Cards    []CardSnapshot
	Selected []int // Deck positions in selection order
	Cursor   int
	Message  string
	Quit     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Level:  g.session.Index() + 1,
		Levels: g.session.LevelCount(),
		Cursor: g.cursor,
		Quit:   g.quit,
	}

	switch {
	case g.finished:
		snap.Phase = PhaseFinished
	case len(g.notices) > 0:
		snap.Phase = PhaseMessage
		snap.Message = g.notices[0].text
	case g.revealTicks > 0:
		snap.Phase = PhaseReveal
	default:
		snap.Phase = PhasePlaying
	}

	if ls := g.session.Level(); ls != nil {
		for _, c := range ls.Cards() {
			snap.Cards = append(snap.Cards, CardSnapshot{Word: c.Word, Cell: c.Cell, Matched: c.Matched})
		}
		for _, c := range ls.Selection().Cards() {
			snap.Selected = append(snap.Selected, c.Index)
		}
	}

	return snap
}
