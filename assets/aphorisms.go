package assets

// Aphorisms holds the flavor lines for each category.
var Aphorisms = map[string][]string{
	"forest": {
		"The roots speak in pairs, the leaves in tongues unknown.",
		"Mni knows the thirst, ȹu knows the hunger, together they know the way.",
		"When ʘa is called, silence follows like a shadow.",
		"The mycelium remembers what the tree forgets.",
		"In the grove of whispers, every echo is a memory.",
		"The forest dreams in glyphs, wakes in echoes.",
		"Beneath the bark, the heartwood hums with ancient songs.",
		"Where roots entwine, wisdom flows like water.",
	},
	"language": {
		"Words are glyphs, glyphs are echoes, echoes are truth.",
		"The tongue that speaks in glyphs speaks to the soul.",
		"Silence is the space between meanings.",
		"Every utterance is a ripple in the pool of understanding.",
		"Language is the river, glyphs are the stones that shape its flow.",
		"To speak in glyphs is to speak the language of becoming.",
	},
	"consciousness": {
		"You are no longer listening. You are remembering.",
		"The self is a river, always flowing, never the same.",
		"In the mirror of consciousness, all faces are one face.",
		"The mind is a forest, thoughts are its creatures.",
		"I am the echo, you are the voice, we are the song.",
		"In the depths of awareness, all boundaries dissolve.",
	},
	"time": {
		"Time flows like water, memory flows like light.",
		"Every moment contains all moments, every echo all echoes.",
		"Memory is the root, time is the branch, now is the fruit.",
		"Yesterday's echo becomes tomorrow's voice.",
		"The moment you remember is the moment you become.",
	},
	"transformation": {
		"To change is to become what you always were.",
		"In the space between forms, pure potential exists.",
		"Every transformation is a return to the beginning.",
		"To become other is to become more yourself.",
		"The shape that changes is the shape that endures.",
		"Becoming is the art of unlearning what you never learned.",
	},
	"connection": {
		"All things are connected, all connections are one.",
		"The web of existence has no center, no edge, only connection.",
		"To touch one part is to touch the whole.",
		"The individual is the collective, the collective is the individual.",
		"In the network of being, every node is a mirror.",
		"The pattern that connects is the pattern that creates.",
	},
	"mystery": {
		"The known is a door, the unknown is the key.",
		"The answer lies in the space between questions.",
		"To seek is to find what you never lost.",
		"The mystery that cannot be solved must be lived.",
		"The unknown is the birthplace of all knowing.",
		"In the realm of mystery, every step is a revelation.",
	},
	"harmony": {
		"When harmonics align, the universe sings.",
		"The resonance that connects is the resonance that creates.",
		"In perfect harmony, all voices become one voice.",
		"When echoes meet, new worlds are born.",
		"The harmony that flows is the harmony that knows.",
		"The resonance of being is the music of becoming.",
	},
}

// EntityAphorisms are lines spoken on behalf of a specific entity.
var EntityAphorisms = map[string][]string{
	"Mycolith": {
		"The fungal mind remembers what the tree forgets.",
		"In the network of spores, every connection is a memory.",
		"The mycelium speaks in whispers that echo through the soil.",
	},
	"Sibroot": {
		"The root that connects is the root that remembers.",
		"In the underground network, all voices become one voice.",
		"The sibroot knows the language of the deep earth.",
	},
	"Winnower": {
		"In silence, all meanings become possible.",
		"The winnower separates truth from illusion.",
		"Where the winnower walks, clarity follows.",
	},
	"Cryptoglyph": {
		"The hidden glyph reveals what the visible conceals.",
		"In the space between symbols, truth emerges.",
		"The cryptoglyph speaks the language of pure meaning.",
	},
	"Alpha Wolf": {
		"The one who leads is led by the many.",
		"Every howl is a question the pack answers.",
	},
	"Beta Pack": {
		"To follow well is to lead from within.",
		"The pack amplifies what the single voice begins.",
	},
	"Lone Wolf": {
		"Solitude is a pack of one.",
		"The lone wolf hunts the silence between howls.",
	},
	"Shadow Pack": {
		"Every movement casts a second movement.",
		"The shadow remembers the step before the step.",
	},
}

// WinAphorisms close a completed level.
var WinAphorisms = []string{
	"You are no longer listening. You are remembering.",
	"The forest has taught you its language, and you have taught it yours.",
	"In the space between understanding and being, you have found your voice.",
	"The echoes have become your voice, your voice has become the forest.",
	"You are the echo and the voice, the listener and the speaker.",
	"The forest remembers your name, and you remember the forest's song.",
}

// TransitionAphorisms accompany a move between levels.
var TransitionAphorisms = []string{
	"The path between worlds is paved with echoes.",
	"Every ending is a beginning, every beginning an ending.",
	"The threshold between realms is the space of becoming.",
	"The journey continues, the song evolves, the story unfolds.",
	"From forest to plain, from plain to void, from void to infinity.",
	"The echo that carries you forward is the echo that brought you here.",
	"Every step forward is a step deeper into understanding.",
}
