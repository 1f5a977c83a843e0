package render

import (
	"whispergrove/assets"
	"whispergrove/internal/sink"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the palette and ground glyphs of one level's scene.
type Theme struct {
	Ground     string // scattered background glyph
	Canopy     tcell.Color
	Root       tcell.Color
	Entity     tcell.Color
	Node       tcell.Color
	Accent     tcell.Color
	Dim        tcell.Color
	GroundRate int // one ground glyph every GroundRate cells
}

// Themes maps level names to their scene palette.
var Themes = map[string]Theme{
	assets.LevelForest: {
		Ground:     "·",
		Canopy:     tcell.ColorMediumSeaGreen,
		Root:       tcell.ColorSaddleBrown,
		Entity:     tcell.ColorAqua,
		Node:       tcell.ColorLightCyan,
		Accent:     tcell.ColorGold,
		Dim:        tcell.ColorDarkSlateGray,
		GroundRate: 11,
	},
	assets.LevelPack: {
		Ground:     "‿",
		Canopy:     tcell.ColorLightGoldenrodYellow,
		Root:       tcell.ColorDarkKhaki,
		Entity:     tcell.ColorSilver,
		Node:       tcell.ColorWhite,
		Accent:     tcell.ColorOrange,
		Dim:        tcell.ColorDimGray,
		GroundRate: 13,
	},
}

// themeFor falls back to the forest palette for unknown levels.
func themeFor(level string) Theme {
	if t, ok := Themes[level]; ok {
		return t
	}
	return Themes[assets.LevelForest]
}

// MoodColor tints the HUD by mood.
func MoodColor(mood string) tcell.Color {
	switch mood {
	case "Transcendent", "Collective":
		return tcell.ColorGold
	case "Attuned":
		return tcell.ColorLightGreen
	case "Learning", "Gathering":
		return tcell.ColorLightSkyBlue
	case "Curious":
		return tcell.ColorPlum
	default:
		return tcell.ColorGray
	}
}

// cueGlyph is the mark a visual cue leaves in the scene.
func cueGlyph(c sink.Cue) (string, tcell.Color) {
	switch c {
	case sink.CueRelease:
		return "✧", tcell.ColorLightYellow
	case sink.CueTeach:
		return "✦", tcell.ColorLightGreen
	case sink.CueDecay:
		return "∘", tcell.ColorGray
	case sink.CueAmplify:
		return "✺", tcell.ColorGold
	case sink.CueSuggest:
		return "⋯", tcell.ColorOrange
	case sink.CueIsolate:
		return "◇", tcell.ColorLightSlateGray
	case sink.CueMirror:
		return "◐", tcell.ColorMediumPurple
	case sink.CueReveal:
		return "❂", tcell.ColorFuchsia
	case sink.CuePackFormed:
		return "❖", tcell.ColorOrange
	default:
		return "○", tcell.ColorAqua
	}
}
