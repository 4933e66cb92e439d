package wordmatch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-match/internal/catalog"
	"github.com/vovakirdan/word-match/internal/config"
	"github.com/vovakirdan/word-match/internal/core"
)

const testTickRate = 10

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: testTickRate, Seed: 1}
}

func newTestGame(t *testing.T, pack catalog.Catalog, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithShuffler(noShuffle{})}, opts...)
	g, err := New(pack, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(testRuntime())
	return g
}

// clickFrame returns a frame with left clicks on the centers of the given
// deck positions.
func clickFrame(g *Game, positions ...int) core.InputFrame {
	in := core.NewInputFrame()
	for _, i := range positions {
		x, y := g.Session().Level().Card(i).Bounds.Center()
		in.PointerDown(x, y, core.ButtonLeft)
	}
	return in
}

func actionFrame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// idle steps the game n times with empty input.
func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestNewRejectsInvalidSetup(t *testing.T) {
	if _, err := New(catalog.Catalog{ID: "empty"}); err == nil {
		t.Error("New() with an empty catalog should fail")
	}
	if _, err := New(twoLevelPack(), WithStartLevel(3)); err == nil {
		t.Error("New() with start level past the end should fail")
	}

	bad := config.DefaultMatchConfig()
	bad.Layout.Columns = 0
	if _, err := New(twoLevelPack(), WithConfig(bad)); err == nil {
		t.Error("New() with zero columns should fail")
	}
}

func TestGameClickSelectsCard(t *testing.T) {
	g := newTestGame(t, twoLevelPack())

	g.Step(clickFrame(g, 0))

	snap := g.Snapshot()
	if len(snap.Selected) != 1 || snap.Selected[0] != 0 {
		t.Errorf("Selected = %v, expected [0]", snap.Selected)
	}
	if snap.Phase != PhasePlaying {
		t.Errorf("Phase = %s, expected playing", snap.Phase)
	}
}

func TestGameIgnoresOtherButtonsAndMisses(t *testing.T) {
	g := newTestGame(t, twoLevelPack())

	in := core.NewInputFrame()
	x, y := g.Session().Level().Card(0).Bounds.Center()
	in.PointerDown(x, y, core.ButtonRight)
	in.PointerDown(0, 0, core.ButtonLeft)
	g.Step(in)

	if got := g.Snapshot().Selected; len(got) != 0 {
		t.Errorf("Selected = %v, expected none", got)
	}
}

func TestGameRevealHoldsInput(t *testing.T) {
	pack := catalog.Catalog{ID: "people", Levels: []catalog.Level{levelPeople}}
	g := newTestGame(t, pack)
	// Deck: umuntu, abantu, igiti, ibiti. Reveal lasts 500ms = 5 ticks.

	g.Step(clickFrame(g, 0, 2)) // umuntu + igiti: mismatch
	snap := g.Snapshot()
	if snap.Phase != PhaseReveal {
		t.Fatalf("Phase = %s, expected reveal", snap.Phase)
	}
	if len(snap.Selected) != 0 {
		t.Errorf("Selected = %v, expected empty after evaluation", snap.Selected)
	}
	if !g.State().Busy {
		t.Error("State().Busy should be set during the reveal")
	}

	// The mismatched pair is still drawn as chosen.
	ls := g.Session().Level()
	if g.CardColor(ls.Card(0)) != core.ColorYellow || g.CardColor(ls.Card(2)) != core.ColorYellow {
		t.Error("revealed cards should be yellow during the hold")
	}

	// Clicks during the hold are dropped.
	g.Step(clickFrame(g, 0, 1))
	if ls.Card(0).Matched || g.Snapshot().Selected != nil {
		t.Error("input during the reveal should be ignored")
	}

	idle(g, 4)
	if g.Snapshot().Phase != PhasePlaying {
		t.Fatalf("Phase = %s after the hold, expected playing", g.Snapshot().Phase)
	}
	if g.CardColor(ls.Card(0)) != core.ColorGray {
		t.Error("revealed highlight should clear after the hold")
	}

	g.Step(clickFrame(g, 0, 1)) // umuntu + abantu
	if !ls.Card(0).Matched || !ls.Card(1).Matched {
		t.Error("umuntu + abantu should match after the hold")
	}
}

func TestGameSkipsClicksAfterEvaluationInSameFrame(t *testing.T) {
	pack := catalog.Catalog{ID: "people", Levels: []catalog.Level{levelPeople}}
	g := newTestGame(t, pack)

	g.Step(clickFrame(g, 0, 1, 2))

	if got := g.Snapshot().Selected; len(got) != 0 {
		t.Errorf("Selected = %v, third click should be dropped", got)
	}
}

func TestGameFullSession(t *testing.T) {
	timing := config.DefaultMatchConfig()
	timing.Timing.RevealDelayMs = 0
	g := newTestGame(t, twoLevelPack(), WithConfig(timing))

	// Level 1: igiti, ibiti.
	g.Step(clickFrame(g, 0, 1))
	snap := g.Snapshot()
	if snap.Phase != PhaseMessage || snap.Message != "Level 1 Complete!" {
		t.Fatalf("after level 1: phase %s message %q", snap.Phase, snap.Message)
	}
	if snap.Level != 2 || len(snap.Cards) != 6 {
		t.Errorf("expected level 2 dealt, got level %d with %d cards", snap.Level, len(snap.Cards))
	}

	// 1500ms at 10 ticks per second.
	idle(g, 14)
	if g.Snapshot().Phase != PhaseMessage {
		t.Fatal("message should last 15 ticks")
	}
	idle(g, 1)
	if g.Snapshot().Phase != PhasePlaying {
		t.Fatalf("Phase = %s, expected playing", g.Snapshot().Phase)
	}

	// Level 2: inka, inka, ihene, ihene, intama, intama.
	g.Step(clickFrame(g, 0, 1))
	g.Step(clickFrame(g, 2, 3))
	g.Step(clickFrame(g, 4, 5))

	snap = g.Snapshot()
	if snap.Message != "Level 2 Complete!" {
		t.Fatalf("Message = %q, expected level 2 complete", snap.Message)
	}
	if g.State().GameOver {
		t.Fatal("session should not end before the messages are shown")
	}

	idle(g, 15)
	if g.Snapshot().Message != FinalMessage {
		t.Fatalf("Message = %q, expected the final message", g.Snapshot().Message)
	}

	idle(g, 24)
	if g.State().GameOver {
		t.Fatal("final message should last 25 ticks")
	}
	idle(g, 1)

	state := g.State()
	if !state.GameOver || state.Quit {
		t.Errorf("State() = %+v, expected natural completion", state)
	}
	if g.Snapshot().Phase != PhaseFinished {
		t.Errorf("Phase = %s, expected finished", g.Snapshot().Phase)
	}
}

func TestGameWithoutMessagesFinishesAtOnce(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Timing = config.TimingConfig{}
	pack := catalog.Catalog{ID: "trees", Levels: []catalog.Level{levelTrees}}
	g := newTestGame(t, pack, WithConfig(cfg))

	g.Step(clickFrame(g, 0, 1))

	if !g.State().GameOver {
		t.Error("session should end on the completing frame when messages are disabled")
	}
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(t, twoLevelPack())

	g.Step(actionFrame(core.ActionQuit))

	state := g.State()
	if !state.GameOver || !state.Quit {
		t.Errorf("State() = %+v, expected quit", state)
	}

	before := g.Snapshot()
	g.Step(clickFrame(g, 0, 1))
	if g.Snapshot().Cards[0].Matched != before.Cards[0].Matched {
		t.Error("input after quit should be ignored")
	}
}

func TestGameQuitDuringMessage(t *testing.T) {
	g := newTestGame(t, twoLevelPack())
	g.Step(clickFrame(g, 0, 1))
	idle(g, 6) // reveal hold, then the progression check
	if g.Snapshot().Phase != PhaseMessage {
		t.Fatalf("Phase = %s, expected message", g.Snapshot().Phase)
	}

	g.Step(actionFrame(core.ActionQuit))
	if !g.State().Quit {
		t.Error("quit should be honored while a message is shown")
	}
}

func TestGameKeyboardSelection(t *testing.T) {
	g := newTestGame(t, twoLevelPack(), WithStartLevel(2))
	// Deck: inka, inka, ihene, ihene, intama, intama in a 4 column grid.

	g.Step(actionFrame(core.ActionConfirm))
	g.Step(actionFrame(core.ActionRight))
	g.Step(actionFrame(core.ActionConfirm))

	ls := g.Session().Level()
	if !ls.Card(0).Matched || !ls.Card(1).Matched {
		t.Fatal("keyboard selection of both inka cards should match")
	}

	idle(g, 5)
	g.Step(actionFrame(core.ActionDown))
	if g.Snapshot().Cursor != 5 {
		t.Errorf("Cursor = %d after down, expected 5", g.Snapshot().Cursor)
	}
	g.Step(actionFrame(core.ActionDown))
	if g.Snapshot().Cursor != 5 {
		t.Error("cursor should not leave the grid")
	}
	g.Step(actionFrame(core.ActionUp))
	g.Step(actionFrame(core.ActionLeft))
	if g.Snapshot().Cursor != 0 {
		t.Errorf("Cursor = %d, expected 0", g.Snapshot().Cursor)
	}
}

func TestGameDeterministicWithSeed(t *testing.T) {
	play := func() Snapshot {
		g, err := New(twoLevelPack(), WithStartLevel(2))
		if err != nil {
			t.Fatal(err)
		}
		g.Reset(testRuntime())
		g.Step(clickFrame(g, 0, 3))
		return g.Snapshot()
	}

	a, b := play(), play()
	for i := range a.Cards {
		if a.Cards[i] != b.Cards[i] {
			t.Fatalf("same seed produced different games at card %d", i)
		}
	}
}

// recorder captures draw calls.
type recorder struct {
	cards    []string
	colors   []core.Color
	messages []string
}

func (r *recorder) DrawCard(_ core.Rect, fill core.Color, label string) {
	r.cards = append(r.cards, label)
	r.colors = append(r.colors, fill)
}

func (r *recorder) DrawMessage(text string) {
	r.messages = append(r.messages, text)
}

func TestGameDraw(t *testing.T) {
	pack := catalog.Catalog{ID: "people", Levels: []catalog.Level{levelPeople}}
	g := newTestGame(t, pack)
	g.Step(clickFrame(g, 3))             // ibiti selected
	g.Step(actionFrame(core.ActionLeft)) // cursor on igiti

	var r recorder
	g.Draw(&r)

	wantLabels := []string{"umuntu", "abantu", "igiti", "ibiti"}
	wantColors := []core.Color{core.ColorGray, core.ColorGray, core.ColorCyan, core.ColorYellow}
	if len(r.cards) != len(wantLabels) {
		t.Fatalf("drew %d cards, expected %d", len(r.cards), len(wantLabels))
	}
	for i := range wantLabels {
		if r.cards[i] != wantLabels[i] {
			t.Errorf("card %d label = %q, expected %q", i, r.cards[i], wantLabels[i])
		}
		if r.colors[i] != wantColors[i] {
			t.Errorf("card %d color = %v, expected %v", i, r.colors[i], wantColors[i])
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, twoLevelPack())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"igiti", "ibiti", "Level 1/2", "Pairs 0/1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.Step(clickFrame(g, 0, 1))
	idle(g, 6)
	g.Render(screen)
	if row := screen.Row(12); !strings.Contains(row, "Level 1 Complete!") {
		t.Errorf("row 12 = %q, expected the level message", row)
	}

	small := core.NewScreen(20, 4)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Errorf("small screen should show a size warning:\n%s", small.String())
	}
}

func TestGameLogsProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	cfg := config.DefaultMatchConfig()
	cfg.Timing.RevealDelayMs = 0

	g := newTestGame(t, twoLevelPack(), WithLogger(logger), WithConfig(cfg))
	g.Step(clickFrame(g, 0, 1))

	out := buf.String()
	for _, want := range []string{"session started", "pair evaluated", "level complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if g.SessionID() == "" || !strings.Contains(out, g.SessionID()) {
		t.Errorf("log lines should carry session id %q:\n%s", g.SessionID(), out)
	}
}
