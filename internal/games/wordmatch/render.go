package wordmatch

import (
	"fmt"

	"github.com/vovakirdan/word-match/internal/core"
)

// Renderer is what the game needs from a display.
type Renderer interface {
	// DrawCard draws one card with its word.
	DrawCard(bounds core.Rect, fill core.Color, label string)
	// DrawMessage replaces the grid with a centered message.
	DrawMessage(text string)
}

// ScreenRenderer draws onto a core.Screen.
type ScreenRenderer struct {
	Screen *core.Screen
}

// DrawCard draws the card as a colored box with its word centered inside.
func (r ScreenRenderer) DrawCard(bounds core.Rect, fill core.Color, label string) {
	r.Screen.DrawBox(bounds, fill)
	r.Screen.DrawTextIn(bounds, label, fill)
}

// DrawMessage clears the screen and centers the text vertically.
func (r ScreenRenderer) DrawMessage(text string) {
	r.Screen.Clear()
	r.Screen.DrawTextCentered(r.Screen.Height()/2, text, core.ColorBrightWhite)
}

// CardColor returns the fill for a card: matched cards are green, cards
// being chosen or revealed are yellow, the keyboard cursor is cyan.
func (g *Game) CardColor(c *Card) core.Color {
	ls := g.session.Level()
	switch {
	case c.Matched:
		return core.ColorGreen
	case ls.Selection().Contains(c) || g.revealed.Involves(c):
		return core.ColorYellow
	case c.Index == g.cursor && !g.State().Busy:
		return core.ColorCyan
	default:
		return core.ColorGray
	}
}

// Draw sends the current frame to a renderer.
func (g *Game) Draw(r Renderer) {
	if len(g.notices) > 0 {
		r.DrawMessage(g.notices[0].text)
		return
	}

	ls := g.session.Level()
	if ls == nil {
		return
	}
	for _, c := range ls.Cards() {
		r.DrawCard(c.Bounds, g.CardColor(c), c.Word)
	}
}

// Render draws the game into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if w, h := g.MinSize(); dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorWhite)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h), core.ColorGray)
		return
	}

	g.Draw(ScreenRenderer{Screen: dst})
	if len(g.notices) == 0 {
		g.renderHUD(dst)
	}
}

// renderHUD draws the title, level and pair counter on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(g.layout.OriginX, 0, g.Title(), core.ColorBrightWhite)

	ls := g.session.Level()
	if ls == nil {
		return
	}
	level := min(g.session.Index()+1, g.session.LevelCount())
	status := fmt.Sprintf("Level %d/%d  Pairs %d/%d",
		level, g.session.LevelCount(), ls.MatchedPairs(), len(ls.Level().Pairs))
	dst.DrawText(dst.Width()-len(status)-g.layout.OriginX, 0, status, core.ColorWhite)
}
