package assets

// LoreStep is one rung of a level's lore ladder. The first step whose
// thresholds are met is shown.
type LoreStep struct {
	MinEchoes int
	MinScore  float64 // strictly exceeded; 0 means no score requirement
	Text      string
}

// ForestLore is checked top to bottom.
var ForestLore = []LoreStep{
	{MinEchoes: 20, MinScore: 0.9, Text: "You are no longer listening. You are remembering."},
	{MinEchoes: 15, MinScore: 0.7, Text: "The forest speaks in patterns you begin to recognize."},
	{MinEchoes: 10, MinScore: 0.5, Text: "Echoes form connections, meanings emerge."},
	{MinEchoes: 5, MinScore: 0.3, Text: "The roots speak in pairs."},
	{MinEchoes: 2, Text: "Mni knows the thirst."},
	{Text: "When ʘa is called, silence follows."},
}

// PackLore is checked top to bottom.
var PackLore = []LoreStep{
	{MinEchoes: 30, MinScore: 0.8, Text: "The pack's collective consciousness resonates with your own."},
	{MinEchoes: 20, MinScore: 0.6, Text: "Wolf tracks lead to ancient patterns in the grass."},
	{MinEchoes: 10, MinScore: 0.4, Text: "The dawn light reveals the wisdom of the pack."},
	{MinEchoes: 5, Text: "In the vast plains, the wolves teach us unity."},
	{Text: "The wind carries echoes of the pack's ancient song."},
}
