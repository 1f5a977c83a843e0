package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Run is the session loop. Key presses and ticks are handled on this
// goroutine; a second goroutine only reads events from the screen. Run
// returns when the player quits, the screen closes, or ctx is done, and
// records the run before returning.
func (g *Game) Run(ctx context.Context, tick time.Duration) {
	defer g.Close()

	done := make(chan struct{})
	defer close(done)

	// Start an async input reader goroutine.
	eventCh := make(chan tcell.Event, 32)
	go func() {
		defer close(eventCh)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	g.Draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-eventCh:
			if !ok {
				return // screen closed / disconnected
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer.Resize()
			case *tcell.EventKey:
				if g.HandleKey(ev) {
					return
				}
			}
			g.Draw()
		case <-ticker.C:
			g.Tick()
			g.Draw()
		}
	}
}
