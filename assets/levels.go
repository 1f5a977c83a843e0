package assets

// Level names, in play order.
const (
	LevelForest = "Whispergrove"
	LevelPack   = "Vessel of First Light"
)

// Forest glyphs.
const (
	GlyphPaired   = "ȹu"
	GlyphSolitary = "ʘa"
	GlyphConnect  = "kə"
	GlyphWater    = "mni"
)

// Pack glyphs.
const (
	GlyphAlpha = "α"
	GlyphBeta  = "β"
	GlyphGamma = "γ"
	GlyphDelta = "δ"
)

// LevelDef holds the static description of one level.
type LevelDef struct {
	Name              string
	Seed              string
	ActiveGlyphs      []string
	InitialVocabulary []string // taught when the level loads
	Intro             string   // aphorism shown on entry
	Welcome           string   // delayed feedback line shown on entry
	Unintelligible    string   // feedback for a glyph outside the active set
	Emerge            string   // delayed line after a release; %s is the glyph
}

// Forest is the opening level.
var Forest = LevelDef{
	Name:              LevelForest,
	Seed:              "∆-echo-n1",
	ActiveGlyphs:      []string{GlyphPaired, GlyphSolitary, GlyphConnect, GlyphWater},
	InitialVocabulary: []string{GlyphWater, GlyphPaired},
	Intro:             "You are no longer listening. You are remembering.",
	Welcome:           "The grove waits for your first glyph.",
	Unintelligible:    "Unintelligible echo. The forest does not understand.",
	Emerge:            "Glyph %s emerges from the forest...",
}

// Pack is the second level, built on the forest vocabulary.
var Pack = LevelDef{
	Name: LevelPack,
	Seed: "pack-echo-n2",
	ActiveGlyphs: []string{
		GlyphPaired, GlyphSolitary, GlyphConnect, GlyphWater,
		GlyphAlpha, GlyphBeta, GlyphGamma, GlyphDelta,
	},
	InitialVocabulary: []string{GlyphAlpha, GlyphBeta, GlyphGamma, GlyphDelta},
	Intro:             "In the vast plains of consciousness, the pack teaches us that we are both one and many.",
	Welcome:           "Welcome to the Vessel of First Light. Learn to form packs and understand collective consciousness.",
	Unintelligible:    "Unintelligible echo. The pack does not understand.",
	Emerge:            "Glyph %s echoes across the plains...",
}

// ForestGlyphBonus is the flat per-glyph harmonics bonus in the forest.
// Glyphs missing from the table earn ForestDefaultBonus.
var ForestGlyphBonus = map[string]float64{
	GlyphPaired:   0.015,
	GlyphSolitary: 0.020,
	GlyphConnect:  0.025,
	GlyphWater:    0.018,
}

// ForestDefaultBonus applies to glyphs without a ForestGlyphBonus entry.
const ForestDefaultBonus = 0.01

// PackPatterns are the glyph runs that form a pack when they end the
// player's pack buffer. Every matching pattern fires.
var PackPatterns = [][]string{
	{GlyphAlpha, GlyphBeta, GlyphGamma},
	{GlyphAlpha, GlyphBeta},
	{GlyphGamma, GlyphDelta},
	{GlyphAlpha, GlyphGamma},
	{GlyphBeta, GlyphDelta},
}

// PackSeed is a pack present when the pack level loads.
type PackSeed struct {
	Members  []string
	Cohesion float64
	X, Y     float64
}

// InitialPacks roam the plains before the player forms any.
var InitialPacks = []PackSeed{
	{Members: []string{GlyphAlpha, GlyphBeta}, Cohesion: 0.6, X: 0.3, Y: 0.4},
	{Members: []string{GlyphGamma}, Cohesion: 1.0, X: 0.8, Y: 0.3},
	{Members: []string{GlyphDelta}, Cohesion: 0.8, X: 0.2, Y: 0.6},
}

// GlyphTones maps glyphs to the base frequency (Hz) of their echo tone.
var GlyphTones = map[string]float64{
	GlyphPaired:   220,
	GlyphSolitary: 277,
	GlyphConnect:  330,
	GlyphWater:    440,
	GlyphAlpha:    196,
	GlyphBeta:     247,
	GlyphGamma:    294,
	GlyphDelta:    370,
}
