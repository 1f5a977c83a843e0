package render

import (
	"fmt"
	"strings"

	"whispergrove/internal/sink"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const barWidth = 20

// DrawHUD renders the harmonics bar, environment, lore, recent feedback,
// and the input line in the bottom rows of the screen.
func (r *Renderer) DrawHUD(s Scene) {
	w, h := r.screen.Size()
	hudY := h - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("Harmonics %s %3.0f%%  Echoes %d", harmonicsBar(s.Stats.Score), s.Stats.Score*100, s.Stats.EchoCount)
	if s.Stats.Packs {
		status += fmt.Sprintf("  Packs %d  Cohesion %.2f", s.Stats.PackCount, s.Stats.PackCohesion)
	}
	r.drawLine(hudY+1, w, status, tcell.StyleDefault.Foreground(MoodColor(s.Stats.Mood)))

	r.drawLine(hudY+2, w, labelLine(r.labels), tcell.StyleDefault.Foreground(tcell.ColorLightSteelBlue))
	r.drawLine(hudY+3, w, "Echo memory: "+strings.Join(s.Echoes, " "), tcell.StyleDefault.Foreground(tcell.ColorSilver))

	lore := s.Lore
	if r.aphorism != "" {
		lore = "“" + r.aphorism + "”"
	}
	r.drawLine(hudY+4, w, lore, tcell.StyleDefault.Foreground(tcell.ColorPlum).Italic(true))

	// Message log (last 2 messages).
	start := max(len(r.messages)-2, 0)
	for i, msg := range r.messages[start:] {
		r.drawLine(hudY+5+i, w, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.drawInput(hudY+7, w, s)
}

// drawInput shows the glyph palette, highlighting suggested glyphs, then the
// pending input.
func (r *Renderer) drawInput(y, w int, s Scene) {
	col := 0
	for i, g := range s.Active {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if _, ok := r.highlights[g]; ok {
			style = style.Foreground(tcell.ColorOrange).Bold(true)
		}
		label := fmt.Sprintf("%d:%s ", i+1, g)
		if col+runewidth.StringWidth(label) >= w {
			break
		}
		col += r.drawText(col, y, label, style)
	}
	prompt := "> " + s.Input
	if col+runewidth.StringWidth(prompt) < w {
		r.drawText(col+1, y, prompt, tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}
}

func harmonicsBar(score float64) string {
	filled := int(score*barWidth + 0.5)
	filled = min(max(filled, 0), barWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

func labelLine(labels []sink.Label) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.Name+": "+l.Value)
	}
	return strings.Join(parts, "  ")
}

func statsLine(s sink.Stats) string {
	line := fmt.Sprintf("Echoes %d  Harmonics %.0f%%", s.EchoCount, s.Score*100)
	if s.Packs {
		line += fmt.Sprintf("  Packs %d", s.PackCount)
	}
	if s.Mood != "" {
		line += "  Mood " + s.Mood
	}
	return line
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawLine draws text truncated to the screen width.
func (r *Renderer) drawLine(y, w int, text string, style tcell.Style) {
	r.drawText(0, y, runewidth.Truncate(text, w, "…"), style)
}

func (r *Renderer) drawCentered(y, w int, text string, style tcell.Style) {
	text = runewidth.Truncate(text, w, "…")
	r.drawText(max((w-runewidth.StringWidth(text))/2, 0), y, text, style)
}

// drawText draws text starting at (x, y), attaching zero-width runes to the
// preceding cell. It returns the number of columns used.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	runes := []rune(text)
	for i := 0; i < len(runes); {
		mainc := runes[i]
		i++
		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}
		r.screen.SetContent(col, y, mainc, combc, style)
		col += max(runewidth.RuneWidth(mainc), 1)
	}
	return col - x
}
