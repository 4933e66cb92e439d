// Package wordmatch implements the word matching game: every card of a
// level is face up, the player picks two cards at a time, and a correct
// singular/plural pair stays matched. Completing a level deals the next one
// until the catalog runs out.
package wordmatch

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/word-match/internal/catalog"
	"github.com/vovakirdan/word-match/internal/config"
	"github.com/vovakirdan/word-match/internal/core"
)

// notice is a message that holds the screen, and suspends input, for a
// number of ticks.
type notice struct {
	text  string
	ticks int
}

// Game drives a Session from per-tick input frames.
//
// Input is suspended while a notice is on screen and while an evaluated
// pair is being revealed. Suspended frames are dropped, not queued.
type Game struct {
	pack       catalog.Catalog
	cfg        config.MatchConfig
	layout     Layout
	logger     *log.Logger
	startLevel int      // 1-indexed, 0 means first level
	shuffler   Shuffler // Fixed shuffler, nil means seeded from RuntimeConfig

	runtime     core.RuntimeConfig
	sessionID   string
	log         *log.Logger // logger tagged with the session id
	session     *Session
	tick        uint64
	revealTicks int
	revealed    MatchOutcome
	notices     []notice
	cursor      int
	quit        bool
	finished    bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the layout and timing.
func WithConfig(cfg config.MatchConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithStartLevel starts the session on a 1-indexed level.
func WithStartLevel(level int) Option {
	return func(g *Game) {
		g.startLevel = level
	}
}

// WithShuffler replaces the seeded card shuffle.
func WithShuffler(s Shuffler) Option {
	return func(g *Game) {
		g.shuffler = s
	}
}

// New creates a game for the given catalog. The catalog is validated here
// so a bad pack fails before play starts.
func New(pack catalog.Catalog, opts ...Option) (*Game, error) {
	if err := catalog.Validate(pack); err != nil {
		return nil, fmt.Errorf("wordmatch: pack %q: %w", pack.ID, err)
	}

	g := &Game{
		pack:   pack,
		cfg:    config.DefaultMatchConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := config.Validate(g.cfg); err != nil {
		return nil, fmt.Errorf("wordmatch: %w", err)
	}
	if g.startLevel < 0 || g.startLevel > pack.Len() {
		return nil, fmt.Errorf("wordmatch: start level %d out of range 1-%d", g.startLevel, pack.Len())
	}
	g.layout = LayoutFrom(g.cfg.Layout)
	return g, nil
}

// ID returns the pack identifier.
func (g *Game) ID() string {
	return g.pack.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.pack.Title != "" {
		return g.pack.Title
	}
	return g.pack.ID
}

// MinSize returns the screen size needed to show the largest level.
func (g *Game) MinSize() (int, int) {
	most := 0
	for _, l := range g.pack.Levels {
		most = max(most, l.CardCount())
	}
	w, h := g.layout.Extent(most)
	return w + g.layout.OriginX, h + 1
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	shuffler := g.shuffler
	if shuffler == nil {
		shuffler = rand.New(rand.NewSource(cfg.Seed))
	}

	start := 0
	if g.startLevel > 0 {
		start = g.startLevel - 1
	}

	g.session = NewSession(g.pack, g.layout, shuffler, start)
	g.tick = 0
	g.revealTicks = 0
	g.revealed = MatchOutcome{}
	g.notices = nil
	g.cursor = 0
	g.quit = false
	g.finished = false
	g.sessionID = uuid.NewString()
	g.log = g.logger.With("session", g.sessionID)

	g.log.Info("session started", "pack", g.pack.ID, "levels", g.pack.Len(), "seed", cfg.Seed)
	g.logLevelLoaded()
}

// SessionID identifies the current session in logs.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.finished {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.quit = true
		g.finished = true
		g.log.Info("quit", "level", g.session.Index()+1)
		return core.StepResult{State: g.State()}
	}

	if len(g.notices) > 0 {
		g.stepNotice()
		return core.StepResult{State: g.State()}
	}

	if g.revealTicks > 0 {
		g.revealTicks--
		if g.revealTicks == 0 {
			g.revealed = MatchOutcome{}
		}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	if g.revealTicks == 0 {
		g.revealed = MatchOutcome{}
		g.checkProgress()
	}

	return core.StepResult{State: g.State()}
}

// stepNotice counts down the message on screen and ends the session once
// the closing message has been shown.
func (g *Game) stepNotice() {
	g.notices[0].ticks--
	if g.notices[0].ticks > 0 {
		return
	}
	g.notices = g.notices[1:]
	g.finishIfDone()
}

// handleInput forwards clicks and keyboard selection to the deck. Anything
// after an evaluation in the same frame is dropped.
func (g *Game) handleInput(in core.InputFrame) {
	ls := g.session.Level()
	if ls == nil {
		return
	}

	for _, p := range in.Pointers {
		if p.Button != core.ButtonLeft {
			continue
		}
		card := ls.CardAt(p.X, p.Y)
		if card == nil || card.Matched {
			continue
		}
		g.cursor = card.Index
		if g.selectCard(card) {
			return
		}
	}

	g.moveCursor(in, len(ls.Cards()))

	if in.Has(core.ActionConfirm) {
		g.selectCard(ls.Card(g.cursor))
	}
}

// moveCursor moves the keyboard cursor across the grid.
func (g *Game) moveCursor(in core.InputFrame, n int) {
	cols := g.layout.Columns
	switch {
	case in.Has(core.ActionLeft):
		if g.cursor > 0 {
			g.cursor--
		}
	case in.Has(core.ActionRight):
		if g.cursor < n-1 {
			g.cursor++
		}
	case in.Has(core.ActionUp):
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case in.Has(core.ActionDown):
		if g.cursor+cols < n {
			g.cursor += cols
		}
	}
}

// selectCard selects a card and starts the reveal hold if that completed a
// pair. It reports whether an evaluation ran.
func (g *Game) selectCard(c *Card) bool {
	out, evaluated := g.session.Level().Select(c)
	if !evaluated {
		return false
	}

	g.log.Debug("pair evaluated",
		"first", out.First.Word,
		"second", out.Second.Word,
		"matched", out.Matched,
	)
	g.revealed = out
	g.revealTicks = g.runtime.TicksFor(g.cfg.Timing.RevealDelayMs)
	return true
}

// checkProgress runs the progression check and queues its messages.
func (g *Game) checkProgress() {
	tr := g.session.Advance()

	switch tr.Kind {
	case TransitionNone:
		return
	case TransitionNextLevel:
		g.log.Info("level complete", "level", tr.Completed)
		g.push(LevelCompleteMessage(tr.Completed), g.cfg.Timing.LevelMessageMs)
		g.cursor = 0
		g.logLevelLoaded()
	case TransitionFinished:
		g.log.Info("level complete", "level", tr.Completed)
		g.log.Info("all levels complete", "levels", g.session.LevelCount())
		g.push(LevelCompleteMessage(tr.Completed), g.cfg.Timing.LevelMessageMs)
		g.push(FinalMessage, g.cfg.Timing.FinalMessageMs)
	}

	g.finishIfDone()
}

// push queues a notice. Zero-length notices are skipped.
func (g *Game) push(text string, ms int) {
	ticks := g.runtime.TicksFor(ms)
	if ticks == 0 {
		return
	}
	g.notices = append(g.notices, notice{text: text, ticks: ticks})
}

func (g *Game) finishIfDone() {
	if len(g.notices) == 0 && g.session.Done() {
		g.finished = true
	}
}

func (g *Game) logLevelLoaded() {
	if ls := g.session.Level(); ls != nil && !g.session.Done() {
		g.log.Debug("level loaded", "level", g.session.Index()+1, "cards", len(ls.Cards()))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.finished,
		Quit:     g.quit,
		Busy:     g.revealTicks > 0 || len(g.notices) > 0,
	}
}
