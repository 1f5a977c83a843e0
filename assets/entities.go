package assets

// EntityDef describes a responder bound to one trigger glyph.
// Echo is a declarative template parsed once when the entity is built:
//
//	release 'g' | teach 'g' | decay 'g' | amplify harmonics
//	form pack 'g g' | amplify collective | isolate 'Name' | mirror last action
type EntityDef struct {
	Name        string
	Glyph       string
	Response    string
	Affinity    []string
	Echo        string
	Description string
	X, Y        float64 // normalized scene position

	// Hidden entities stay out of the scene until every entity named in
	// RevealAfter has been triggered at least once.
	Hidden      bool
	RevealAfter []string

	// Wolves only.
	Strength  float64
	Influence float64
}

// ForestEntities inhabit Whispergrove.
var ForestEntities = []EntityDef{
	{
		Name:        "Mycolith",
		Glyph:       GlyphWater,
		Response:    "spore-pulse",
		Affinity:    []string{"wet", "memory"},
		Echo:        "release 'ʘa'",
		Description: "A fungal entity that responds to water glyphs",
		X:           0.2,
		Y:           0.7,
	},
	{
		Name:        "Sibroot",
		Glyph:       GlyphPaired,
		Response:    "pulse-rhythm",
		Affinity:    []string{"paired-glyphs", "connection"},
		Echo:        "teach 'kə'",
		Description: "A root entity that thrives on paired communication",
		X:           0.8,
		Y:           0.6,
	},
	{
		Name:        "Winnower",
		Glyph:       GlyphSolitary,
		Response:    "vanish",
		Affinity:    []string{"solitary", "silence"},
		Echo:        "decay 'mni'",
		Description: "A mysterious entity that brings silence",
		X:           0.5,
		Y:           0.3,
	},
	{
		Name:        "Cryptoglyph",
		Glyph:       GlyphConnect,
		Response:    "resonate",
		Affinity:    []string{"patterns", "harmonics"},
		Echo:        "amplify harmonics",
		Description: "A hidden entity that responds to connection patterns",
		X:           0.3,
		Y:           0.4,
		Hidden:      true,
		RevealAfter: []string{"Sibroot", "Mycolith"},
	},
}

// PackWolves roam the Vessel of First Light.
var PackWolves = []EntityDef{
	{
		Name:        "Alpha Wolf",
		Glyph:       GlyphAlpha,
		Response:    "lead-pack",
		Affinity:    []string{"leadership", "strength"},
		Echo:        "form pack 'β γ'",
		Description: "The leader who responds to strong, repeated patterns",
		X:           0.3,
		Y:           0.4,
		Strength:    1.0,
		Influence:   0.8,
	},
	{
		Name:        "Beta Pack",
		Glyph:       GlyphBeta,
		Response:    "follow-alpha",
		Affinity:    []string{"loyalty", "amplification"},
		Echo:        "amplify collective",
		Description: "Follows the alpha's lead and amplifies group actions",
		X:           0.6,
		Y:           0.5,
		Strength:    0.7,
		Influence:   0.6,
	},
	{
		Name:        "Lone Wolf",
		Glyph:       GlyphGamma,
		Response:    "independent-hunt",
		Affinity:    []string{"solitude", "precision"},
		Echo:        "isolate 'Lone Wolf'",
		Description: "Solitary but powerful when isolated",
		X:           0.8,
		Y:           0.3,
		Strength:    0.9,
		Influence:   0.4,
	},
	{
		Name:        "Shadow Pack",
		Glyph:       GlyphDelta,
		Response:    "mirror-actions",
		Affinity:    []string{"reflection", "echo"},
		Echo:        "mirror last action",
		Description: "Mirrors player actions and creates echo effects",
		X:           0.2,
		Y:           0.6,
		Strength:    0.6,
		Influence:   0.5,
	},
}

// ResponseTexts is the feedback shown when an entity answers, keyed by
// response tag.
var ResponseTexts = map[string]string{
	"spore-pulse":      "The Mycolith releases a cloud of luminescent spores that drift upward.",
	"pulse-rhythm":     "The Sibroot pulses with a rhythmic pattern, creating connections in the root network.",
	"vanish":           "The Winnower dissolves into the air, leaving behind a moment of profound silence.",
	"resonate":         "The Cryptoglyph resonates with your harmonics, amplifying the forest's response.",
	"lead-pack":        "The Alpha Wolf raises its head, eyes glowing with ancient wisdom.",
	"follow-alpha":     "The Beta Pack moves in perfect synchronization with your rhythm.",
	"independent-hunt": "The Lone Wolf watches from the shadows, calculating your intent.",
	"mirror-actions":   "The Shadow Pack mirrors your movement, creating echoes in the air.",
}

// RevealText is shown when a hidden entity steps out.
const RevealText = "A hidden entity emerges from the shadows..."
