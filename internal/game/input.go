package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionInsert
	ActionErase
	ActionSubmit
	ActionPalette
	ActionReset
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionSubmit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionErase
	case tcell.KeyCtrlR:
		return ActionReset
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	// Rune keys. Glyphs never contain digits or spaces.
	switch r := ev.Rune(); {
	case r >= '1' && r <= '9':
		return ActionPalette
	case r == ' ':
		return ActionSubmit
	}
	return ActionInsert
}

// HandleKey applies one key press. It reports whether the player asked to
// leave.
func (g *Game) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch keyToAction(ev) {
	case ActionQuit:
		return true
	case ActionInsert:
		if g.state == StatePlaying && len(g.input) < maxInput {
			g.input = append(g.input, ev.Rune())
		}
	case ActionErase:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
	case ActionPalette:
		idx := int(ev.Rune() - '1')
		if active := g.store.Active(); g.state == StatePlaying && idx < len(active) {
			g.Submit(active[idx])
		}
	case ActionSubmit:
		switch g.state {
		case StateComplete:
			g.Continue()
		case StatePlaying:
			if len(g.input) > 0 {
				g.Submit(string(g.input))
				g.input = g.input[:0]
			}
		}
	case ActionReset:
		g.Reset()
	}
	return false
}
